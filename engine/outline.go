package engine

import (
	"io"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// tocItem is one flattened outline entry
type tocItem struct {
	title     string
	level     int
	page      int
	paragraph int
}

var disableConfigDir sync.Once

// outline returns the flattened outline of a document, loading it on first use
func (e *PDF) outline(h Handle) ([]tocItem, Code) {
	doc := e.lookup(h)
	if doc == nil {
		return nil, InvalidPDF
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	if doc.reader == nil {
		return nil, InvalidPDF
	}
	if doc.tocLoaded {
		return doc.toc, OK
	}

	items, code := e.loadOutline(doc)
	if code != OK {
		return nil, code
	}
	doc.toc = items
	doc.tocLoaded = true
	return items, OK
}

func (e *PDF) loadOutline(doc *document) ([]tocItem, Code) {
	var present bool
	code := guard(func() Code {
		present = !doc.reader.Trailer().Key("Root").Key("Outlines").IsNull()
		return OK
	})
	if code != OK {
		return nil, code
	}
	if !present {
		return []tocItem{}, OK
	}

	var items []tocItem
	code = guard(func() Code {
		read, err := readOutline(io.NewSectionReader(doc.file, 0, doc.size))
		if err != nil {
			return InvalidPDF
		}
		items = read
		return OK
	})
	if code != OK {
		return nil, code
	}

	items = zeroBasePages(items, doc.pages)
	for i := range items {
		items[i].paragraph = e.resolveParagraph(doc, items[i])
	}
	return items, OK
}

// readOutline walks the outline tree depth first with relaxed validation.
// Item pages are 1-based, 0 when the destination cannot be resolved.
// Untitled items are kept along with their children.
func readOutline(rs io.ReadSeeker) ([]tocItem, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.Cmd = model.LISTBOOKMARKS

	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, err
	}

	root := ctx.Outlines
	if root == nil {
		return []tocItem{}, nil
	}

	// Named destinations resolve through the Dests name tree when present
	_ = ctx.LocateNameTree("Dests", false)

	return walkOutline(ctx, root.IndirectRefEntry("First"), 0, []tocItem{}, map[int]bool{})
}

// walkOutline appends a sibling chain and its descendants to out. seen
// guards against cyclic Next/First links.
func walkOutline(ctx *model.Context, item *types.IndirectRef, level int, out []tocItem, seen map[int]bool) ([]tocItem, error) {
	for ir := item; ir != nil; {
		nr := ir.ObjectNumber.Value()
		if seen[nr] {
			break
		}
		seen[nr] = true

		d, err := ctx.DereferenceDict(*ir)
		if err != nil {
			return nil, err
		}
		if d == nil {
			break
		}

		out = append(out, tocItem{
			title: outlineTitle(ctx, d),
			level: level,
			page:  outlinePage(ctx, d),
		})

		if first := d.IndirectRefEntry("First"); first != nil {
			if out, err = walkOutline(ctx, first, level+1, out, seen); err != nil {
				return nil, err
			}
		}

		ir = d.IndirectRefEntry("Next")
	}
	return out, nil
}

// outlineTitle returns the item's title without control characters, or ""
func outlineTitle(ctx *model.Context, d types.Dict) string {
	obj, err := ctx.Dereference(d["Title"])
	if err != nil || obj == nil {
		return ""
	}
	s, err := model.Text(obj)
	if err != nil {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 32 {
			return -1
		}
		return r
	}, s)
}

// outlinePage resolves the item's Dest, or the D of a GoTo action, to a
// 1-based page number. It returns 0 when there is no usable destination.
func outlinePage(ctx *model.Context, d types.Dict) int {
	dest, ok := d["Dest"]
	if !ok {
		action, err := ctx.DereferenceDict(d["A"])
		if err != nil || action == nil {
			return 0
		}
		if s := action.NameEntry("S"); s == nil || *s != "GoTo" {
			return 0
		}
		dest = action["D"]
	}

	obj, err := ctx.Dereference(dest)
	if err != nil || obj == nil {
		return 0
	}
	if arr, ok := obj.(types.Array); ok && len(arr) == 0 {
		return 0
	}

	page, err := pdfcpu.PageNrFromDestination(ctx, obj)
	if err != nil {
		return 0
	}
	return page
}

// zeroBasePages converts 1-based item pages to zero-based ones, clamping
// them into [0, pages)
func zeroBasePages(items []tocItem, pages int) []tocItem {
	for i := range items {
		page := items[i].page - 1
		if page >= pages {
			page = pages - 1
		}
		if page < 0 {
			page = 0
		}
		items[i].page = page
	}
	return items
}

// resolveParagraph finds the first paragraph on the entry's page whose text
// contains the entry's title. It falls back to 0.
func (e *PDF) resolveParagraph(doc *document, item tocItem) int {
	title := squash(item.title)
	if title == "" {
		return 0
	}

	a, code := e.analyseLocked(doc, item.page)
	if code != OK {
		return 0
	}

	for _, p := range a.paragraphs {
		if strings.Contains(squash(p.Text), title) {
			return p.Index
		}
	}
	return 0
}

// squash lowercases s and drops all whitespace
func squash(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
