package infobox

import "context"

// UnknownTitle labels pages whose dump entry carries no title element.
const UnknownTitle = "Neznámý název"

// Page is the raw markup of the latest revision of one wiki page.
type Page struct {
	Title string
	Text  string
}

// PageSource yields pages from a dump collection.
// Implementations hide the container format; each returned page holds the
// text of exactly one page's latest revision, in the order the pages
// appear in the source.
type PageSource interface {
	ReadPages(ctx context.Context) ([]*Page, error)
}
