package voxpdf

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/model"
)

// PageResult holds the words and paragraphs of one page
type PageResult struct {
	Page       int
	Words      []model.Word
	Paragraphs []model.Paragraph
}

// pageJob pairs a requested page with its position in the request
type pageJob struct {
	pos  int
	page int
}

type pageOutcome struct {
	pos    int
	result PageResult
	err    error
}

// ExtractPages extracts words and paragraphs from the given zero-indexed
// pages of the document at path using a pool of workers. Each worker opens
// its own Document. Results come back in the order the pages were requested.
// If any page fails, no results are returned. Workers stop picking up pages
// after the first failure and the failure earliest in the request is reported.
//
// workers <= 0 uses one worker per CPU.
func ExtractPages(path string, pages []int, workers int, opts ...Option) ([]PageResult, error) {
	if len(pages) == 0 {
		return []PageResult{}, nil
	}

	o := buildOptions(opts)
	e := o.engineFor()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	o.logger.Debug("extracting pages", "path", path, "pages", len(pages), "workers", workers)

	jobs := make(chan pageJob, len(pages))
	outcomes := make(chan pageOutcome, len(pages))
	var failed atomic.Bool

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each worker opens its own document
			doc, err := open(e, path, o)
			if err != nil {
				failed.Store(true)
				for job := range jobs {
					outcomes <- pageOutcome{pos: job.pos, err: err}
				}
				return
			}
			defer doc.Close()

			for job := range jobs {
				if failed.Load() {
					continue
				}
				result, err := extractPage(doc, job.page, o.reassemble)
				if err != nil {
					failed.Store(true)
				}
				outcomes <- pageOutcome{pos: job.pos, result: result, err: err}
			}
		}()
	}

	for i, page := range pages {
		jobs <- pageJob{pos: i, page: page}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]PageResult, len(pages))
	errs := make([]error, len(pages))
	for out := range outcomes {
		results[out.pos] = out.result
		errs[out.pos] = out.err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// extractPage pulls words and paragraphs from one page of an open document
func extractPage(doc *Document, page int, reassemble bool) (PageResult, error) {
	words, err := doc.WordPositions(page)
	if err != nil {
		return PageResult{}, err
	}

	paragraphs, err := doc.Paragraphs(page)
	if err != nil {
		return PageResult{}, err
	}
	if reassemble {
		paragraphs = layout.Reassemble(paragraphs)
	}

	return PageResult{
		Page:       page,
		Words:      words,
		Paragraphs: paragraphs,
	}, nil
}
