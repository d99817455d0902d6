// Package extract provides batch infobox extraction over page sources.
// It coordinates dump reading, title deduplication, concurrent template
// extraction, and ordered assembly of the resulting records.
package extract

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/infobox"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Extractor.Concurrency is not positive.
const DefaultConcurrency = 8

// Extractor applies a template to every page of its sources.
type Extractor struct {
	Sources     []infobox.PageSource
	Template    *infobox.Template
	Concurrency int

	// Anonymous reports the unnamed parameter segments of every extracted
	// page through ProgressExtracted events.
	Anonymous bool
}

// Result holds the outcome of an extraction run.
type Result struct {
	// Pages is the number of distinct pages examined.
	Pages int
	// Repeated is the number of pages skipped because an earlier source
	// already contained a page with the same title.
	Repeated int
	// Skipped is the number of pages without a balanced template invocation.
	Skipped int
	// Bytes is the total size of the page text examined.
	Bytes int
	// Records holds one record per page with a template, in source order.
	Records []*infobox.Record
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string

	// Anonymous holds the segments dropped for lack of a parameter name.
	// It is only set when Extractor.Anonymous is true.
	Anonymous []string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExtracted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
// It is always called from the goroutine that called Run.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position int
	title     string
	record    *infobox.Record
	anonymous []string
}

// Run reads every source in order and extracts the template from each page.
// Pages are processed concurrently; the returned records keep the order in
// which their pages appeared across the sources.
func (e *Extractor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if e.Template == nil {
		return nil, infobox.Errorf(infobox.EINVALID, "extractor template required")
	}

	var all [][]*infobox.Page
	var n int
	for _, src := range e.Sources {
		pages, err := src.ReadPages(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading pages: %w", err)
		}
		all = append(all, pages)
		n += len(pages)
	}

	seen := NewTitleSet(uint(n))
	pages := make([]*infobox.Page, 0, n)
	var repeated, bytes int
	for _, batch := range all {
		// Only titles from earlier sources count as repeats.
		for _, p := range batch {
			if p.Title != infobox.UnknownTitle && seen.Seen(p.Title) {
				repeated++
				continue
			}
			pages = append(pages, p)
			bytes += len(p.Text)
		}
		for _, p := range batch {
			if p.Title != infobox.UnknownTitle {
				seen.Add(p.Title)
			}
		}
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resultCh <- e.processPage(i, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Each page owns exactly one slot.
	results := make([]*infobox.Record, total)
	var completed int
	for r := range resultCh {
		completed++
		results[r.position] = r.record

		if progress == nil {
			continue
		}
		typ := ProgressExtracted
		if r.record == nil {
			typ = ProgressSkipped
		}
		progress(ProgressEvent{
			Type:      typ,
			Completed: completed,
			Total:     total,
			Title:     r.title,
			Anonymous: r.anonymous,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Pages:    total,
		Repeated: repeated,
		Bytes:    bytes,
	}
	for i, rec := range results {
		if rec == nil {
			result.Skipped++
			continue
		}
		rec.Position = i
		result.Records = append(result.Records, rec)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processPage extracts the template from a single page.
func (e *Extractor) processPage(position int, page *infobox.Page) pageResult {
	result := pageResult{position: position, title: page.Title}

	rec, ok := e.Template.Extract(page)
	if !ok {
		return result
	}
	rec.ContentHash = ComputeHash(page.Text)
	result.record = rec

	if e.Anonymous {
		span, _ := e.Template.Locate(page.Text)
		result.anonymous = infobox.AnonymousSegments(e.Template.Inner(span))
	}
	return result
}

// ComputeHash computes a hash of page content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
