package mock

import (
	"context"

	"github.com/fwojciec/infobox"
)

var _ infobox.DumpService = (*DumpService)(nil)

// DumpService is a mock implementation of infobox.DumpService.
type DumpService struct {
	CreateDumpFn   func(ctx context.Context, dump *infobox.Dump) error
	FindDumpByIDFn func(ctx context.Context, id string) (*infobox.Dump, error)
	FindDumpsFn    func(ctx context.Context, filter infobox.DumpFilter) ([]*infobox.Dump, error)
	DeleteDumpFn   func(ctx context.Context, id string) error
}

func (s *DumpService) CreateDump(ctx context.Context, dump *infobox.Dump) error {
	return s.CreateDumpFn(ctx, dump)
}

func (s *DumpService) FindDumpByID(ctx context.Context, id string) (*infobox.Dump, error) {
	return s.FindDumpByIDFn(ctx, id)
}

func (s *DumpService) FindDumps(ctx context.Context, filter infobox.DumpFilter) ([]*infobox.Dump, error) {
	return s.FindDumpsFn(ctx, filter)
}

func (s *DumpService) DeleteDump(ctx context.Context, id string) error {
	return s.DeleteDumpFn(ctx, id)
}
