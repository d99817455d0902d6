// Package etree reads MediaWiki XML dumps using github.com/beevik/etree.
package etree

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/infobox"
)

// Ensure DumpReader implements infobox.PageSource at compile time.
var _ infobox.PageSource = (*DumpReader)(nil)

// DumpReader reads the pages of a MediaWiki XML export file.
type DumpReader struct {
	path string
}

// NewDumpReader creates a DumpReader for the dump at path.
func NewDumpReader(path string) *DumpReader {
	return &DumpReader{path: path}
}

// Path returns the dump file path.
func (r *DumpReader) Path() string {
	return r.path
}

// ReadPages parses the dump file and returns its pages in document order.
func (r *DumpReader) ReadPages(ctx context.Context) ([]*infobox.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	return ParseDump(ctx, f)
}

// ParseDump parses a MediaWiki XML export. Each <page> yields one Page
// holding the text of its last <revision>; pages without revisions are
// skipped. A page without a <title> is labelled infobox.UnknownTitle.
func ParseDump(ctx context.Context, r io.Reader) ([]*infobox.Page, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, infobox.Errorf(infobox.EINVALID, "parsing dump XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, infobox.Errorf(infobox.EINVALID, "empty dump XML")
	}

	pageEls := []*etree.Element{root}
	if root.Tag != "page" {
		pageEls = root.FindElements(".//page")
	}

	pages := make([]*infobox.Page, 0, len(pageEls))
	for _, el := range pageEls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		revisions := el.SelectElements("revision")
		if len(revisions) == 0 {
			continue
		}

		var text string
		if textEl := revisions[len(revisions)-1].SelectElement("text"); textEl != nil {
			text = textEl.Text()
		}

		pages = append(pages, &infobox.Page{
			Title: pageTitle(el),
			Text:  text,
		})
	}

	return pages, nil
}

// pageTitle returns the trimmed <title> text of a page element.
func pageTitle(el *etree.Element) string {
	titleEl := el.SelectElement("title")
	if titleEl == nil {
		return infobox.UnknownTitle
	}
	if title := strings.TrimSpace(titleEl.Text()); title != "" {
		return title
	}
	return infobox.UnknownTitle
}
