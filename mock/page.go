package mock

import (
	"context"

	"github.com/fwojciec/infobox"
)

var _ infobox.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of infobox.PageSource.
type PageSource struct {
	ReadPagesFn func(ctx context.Context) ([]*infobox.Page, error)
}

func (s *PageSource) ReadPages(ctx context.Context) ([]*infobox.Page, error) {
	return s.ReadPagesFn(ctx)
}
