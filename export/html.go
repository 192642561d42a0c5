package export

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the book as a standalone, screen-reader friendly HTML page.
// The outline becomes a nested list of links in a <nav>, each page a
// <section>, and paragraphs targeted by the outline become headings.
func HTML(b *Book) (string, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	title := element(atom.Title)
	title.AppendChild(textNode(b.Title))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	if b.Title != "" {
		h1 := element(atom.H1)
		h1.AppendChild(textNode(b.Title))
		body.AppendChild(h1)
	}

	if len(b.Toc) > 0 {
		body.AppendChild(tocNav(b))
	}

	content := element(atom.Main)
	body.AppendChild(content)

	headings := b.headings()
	for _, page := range b.Pages {
		section := element(atom.Section,
			attr("id", fmt.Sprintf("page-%d", page.Number)),
			attr("aria-label", fmt.Sprintf("Page %d", page.Number+1)))

		for _, para := range page.Paragraphs {
			tag := atom.P
			if level, ok := headings[headingKey{page.Number, para.Index}]; ok {
				tag = headingAtom(level)
			}
			n := element(tag, attr("id", anchor(page.Number, para.Index)))
			n.AppendChild(textNode(para.Text))
			section.AppendChild(n)
		}
		content.AppendChild(section)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

// tocNav builds the outline as nested ordered lists. Levels that skip a step
// are attached to the deepest list available.
func tocNav(b *Book) *html.Node {
	nav := element(atom.Nav, attr("aria-label", "Table of contents"))
	top := element(atom.Ol)
	nav.AppendChild(top)

	stack := []*html.Node{top}
	for _, e := range b.Toc {
		for len(stack) > 1 && len(stack)-1 > e.Level {
			stack = stack[:len(stack)-1]
		}
		for len(stack)-1 < e.Level {
			parent := stack[len(stack)-1]
			li := parent.LastChild
			if li == nil {
				li = element(atom.Li)
				parent.AppendChild(li)
			}
			ol := element(atom.Ol)
			li.AppendChild(ol)
			stack = append(stack, ol)
		}

		a := element(atom.A, attr("href", "#"+anchor(e.PageNumber, e.ParagraphIndex)))
		a.AppendChild(textNode(e.Title))
		li := element(atom.Li)
		li.AppendChild(a)
		stack[len(stack)-1].AppendChild(li)
	}

	return nav
}

// headingAtom maps an outline level to h2..h6; h1 is the book title
func headingAtom(level int) atom.Atom {
	switch {
	case level <= 0:
		return atom.H2
	case level == 1:
		return atom.H3
	case level == 2:
		return atom.H4
	case level == 3:
		return atom.H5
	default:
		return atom.H6
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
