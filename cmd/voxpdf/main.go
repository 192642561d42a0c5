// Command voxpdf extracts text, word positions, paragraphs and the table of
// contents from PDF files.
//
// Usage:
//
//	voxpdf [flags] <command> <file.pdf> [page ...]
//
// Commands: info, text, words, paragraphs, toc, export. Pages are
// zero-indexed; when none are given every page is processed.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/voxpdf"
	"github.com/tsawler/voxpdf/engine"
	"github.com/tsawler/voxpdf/export"
	"github.com/tsawler/voxpdf/internal/config"
	"github.com/tsawler/voxpdf/model"
)

const usage = `Usage: voxpdf [flags] <command> <file.pdf> [page ...]

Commands:
  info        page count and number of outline entries
  text        page text
  words       words with bounding boxes and font sizes
  paragraphs  paragraphs with word counts
  toc         table of contents
  export      accessible HTML or Markdown of the whole document

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli carries everything a command needs
type cli struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *engine.PDF
	out    io.Writer
	format string
	title  string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("voxpdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML configuration file")
	output := fs.String("output", "", "Output format: json or text (default from config: json)")
	workers := fs.Int("workers", 0, "Number of workers for words and paragraphs (0 = NumCPU)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	keepHyphens := fs.Bool("keep-hyphens", false, "Do not join words hyphenated across line breaks")
	format := fs.String("format", "html", "Export format: html or markdown")
	title := fs.String("title", "", "Document title for export (default: file name)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "voxpdf: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	// Flags given explicitly win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.Log.Level = *logLevel
		case "keep-hyphens":
			cfg.KeepHyphen = *keepHyphens
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "voxpdf: %v\n", err)
		return 2
	}

	c := &cli{
		cfg:    cfg,
		logger: newLogger(cfg, stderr),
		engine: engine.NewPDFWithConfig(cfg.TextConfig(), cfg.ParagraphConfig()),
		out:    stdout,
		format: *format,
		title:  *title,
	}

	command, path := fs.Arg(0), fs.Arg(1)
	pages, err := parsePages(fs.Args()[2:])
	if err != nil {
		fmt.Fprintf(stderr, "voxpdf: %v\n", err)
		return 2
	}

	if err := c.dispatch(command, path, pages); err != nil {
		fmt.Fprintf(stderr, "voxpdf: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("usage error")

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parsePages(args []string) ([]int, error) {
	pages := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", a)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

func (c *cli) dispatch(command, path string, pages []int) error {
	switch command {
	case "info":
		return c.info(path)
	case "text":
		return c.text(path, pages)
	case "words", "paragraphs":
		return c.extract(command, path, pages)
	case "toc":
		return c.toc(path)
	case "export":
		return c.export(path)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (c *cli) open(path string) (*voxpdf.Document, error) {
	return voxpdf.OpenWithEngine(c.engine, path, voxpdf.WithLogger(c.logger))
}

// allPages fills in every page when none were requested
func allPages(doc *voxpdf.Document, pages []int) []int {
	if len(pages) > 0 {
		return pages
	}
	all := make([]int, doc.PageCount())
	for i := range all {
		all[i] = i
	}
	return all
}

func (c *cli) info(path string) error {
	doc, err := c.open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	toc, err := doc.TableOfContents()
	if err != nil {
		return err
	}

	if c.cfg.Output == "text" {
		fmt.Fprintf(c.out, "file: %s\npages: %d\ntoc entries: %d\n", path, doc.PageCount(), len(toc))
		return nil
	}
	return c.writeJSON(infoJSON{File: path, Pages: doc.PageCount(), TocEntries: len(toc)})
}

func (c *cli) text(path string, pages []int) error {
	doc, err := c.open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	var results []pageTextJSON
	for _, page := range allPages(doc, pages) {
		text, err := doc.Text(page)
		if err != nil {
			return err
		}
		results = append(results, pageTextJSON{Page: page, Text: text})
	}

	if c.cfg.Output == "text" {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(c.out)
			}
			fmt.Fprintf(c.out, "--- page %d ---\n%s\n", r.Page, r.Text)
		}
		return nil
	}
	return c.writeJSON(results)
}

func (c *cli) extract(command, path string, pages []int) error {
	if len(pages) == 0 {
		doc, err := c.open(path)
		if err != nil {
			return err
		}
		pages = allPages(doc, nil)
		doc.Close()
	}

	results, err := voxpdf.ExtractPages(path, pages, c.cfg.Workers,
		voxpdf.WithEngine(c.engine),
		voxpdf.WithLogger(c.logger),
		voxpdf.WithHyphenation(!c.cfg.KeepHyphen))
	if err != nil {
		return err
	}

	if command == "words" {
		var words []wordJSON
		for _, r := range results {
			for _, w := range r.Words {
				words = append(words, newWordJSON(w))
			}
		}
		if c.cfg.Output == "text" {
			for _, w := range words {
				fmt.Fprintf(c.out, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%s\n", w.Page, w.X, w.Y, w.Width, w.Height, w.FontSize, w.Text)
			}
			return nil
		}
		return c.writeJSON(words)
	}

	var paragraphs []paragraphJSON
	for _, r := range results {
		for _, p := range r.Paragraphs {
			paragraphs = append(paragraphs, paragraphJSON{Page: p.PageNumber, Index: p.Index, WordCount: p.WordCount, Text: p.Text})
		}
	}
	if c.cfg.Output == "text" {
		for _, p := range paragraphs {
			fmt.Fprintf(c.out, "[%d:%d] %s\n", p.Page, p.Index, p.Text)
		}
		return nil
	}
	return c.writeJSON(paragraphs)
}

func (c *cli) toc(path string) error {
	doc, err := c.open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	entries, err := doc.TableOfContents()
	if err != nil {
		return err
	}

	if c.cfg.Output == "text" {
		for _, e := range entries {
			fmt.Fprintf(c.out, "%s%s (page %d)\n", strings.Repeat("  ", e.Level), e.Title, e.PageNumber)
		}
		return nil
	}

	out := make([]tocJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, tocJSON{Title: e.Title, Level: e.Level, Page: e.PageNumber, ParagraphIndex: e.ParagraphIndex})
	}
	return c.writeJSON(out)
}

func (c *cli) export(path string) error {
	doc, err := c.open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	title := c.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	book, err := export.Collect(doc, title)
	if err != nil {
		return err
	}

	var rendered string
	switch c.format {
	case "html":
		rendered, err = export.HTML(book)
	case "markdown", "md":
		rendered, err = export.Markdown(book)
	default:
		return fmt.Errorf("%w: unknown export format %q", errUsage, c.format)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(c.out, rendered)
	return err
}

func (c *cli) writeJSON(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

type infoJSON struct {
	File       string `json:"file"`
	Pages      int    `json:"pages"`
	TocEntries int    `json:"toc_entries"`
}

type pageTextJSON struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

type wordJSON struct {
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"font_size"`
}

func newWordJSON(w model.Word) wordJSON {
	return wordJSON{
		Text:     w.Text,
		Page:     w.PageNumber,
		X:        w.Bounds.X,
		Y:        w.Bounds.Y,
		Width:    w.Bounds.Width,
		Height:   w.Bounds.Height,
		FontSize: w.FontSize,
	}
}

type paragraphJSON struct {
	Page      int    `json:"page"`
	Index     int    `json:"index"`
	WordCount int    `json:"word_count"`
	Text      string `json:"text"`
}

type tocJSON struct {
	Title          string `json:"title"`
	Level          int    `json:"level"`
	Page           int    `json:"page"`
	ParagraphIndex int    `json:"paragraph_index"`
}
