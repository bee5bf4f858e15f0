// Package parser renders Markdown documents to HTML and extracts front-matter
// metadata and display titles.
package parser

import (
	"bytes"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
)

// DefaultTitle is used when a document carries no H1 heading.
const DefaultTitle = "Documentation"

const fmDelimiter = "---"

// highlightStyle is the chroma style the stylesheet is generated from.
const highlightStyle = "github"

// Parser converts Markdown to HTML with a configurable extension set.
// It is stateless after construction and safe for concurrent use.
type Parser struct {
	md  goldmark.Markdown
	css string // chroma stylesheet, prefixed onto every rendered fragment
}

// New builds a Parser for the given extension names. Recognized names:
// fenced_code, codehilite, tables, toc, extra. Unknown names are ignored.
func New(extensions []string) *Parser {
	var (
		extenders  []goldmark.Extender
		parserOpts []gmparser.Option
		css        string
	)

	for _, name := range extensions {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "fenced_code":
			// Fenced code blocks are part of goldmark's core parser.
		case "codehilite":
			extenders = append(extenders, highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			))
			css = highlightCSS()
		case "tables":
			extenders = append(extenders, extension.Table)
		case "toc":
			parserOpts = append(parserOpts, gmparser.WithAutoHeadingID())
		case "extra":
			extenders = append(extenders, extension.GFM, extension.DefinitionList, extension.Footnote)
		}
	}

	opts := []goldmark.Option{}
	if len(extenders) > 0 {
		opts = append(opts, goldmark.WithExtensions(extenders...))
	}
	if len(parserOpts) > 0 {
		opts = append(opts, goldmark.WithParserOptions(parserOpts...))
	}

	return &Parser{md: goldmark.New(opts...), css: css}
}

// Parse splits optional front-matter from raw content and renders the body to
// an HTML fragment. It never fails: malformed front-matter degrades to an
// empty mapping and unrenderable content falls back to escaped preformatted
// text. The highlighting stylesheet, when enabled, is prefixed inside a
// <style> block so the fragment is self-contained.
func (p *Parser) Parse(raw string) (string, map[string]string) {
	meta, body := SplitFrontMatter(raw)

	var buf bytes.Buffer
	if err := p.md.Convert([]byte(body), &buf); err != nil {
		buf.Reset()
		buf.WriteString("<pre>")
		buf.WriteString(html.EscapeString(body))
		buf.WriteString("</pre>")
	}

	out := buf.String()
	if p.css != "" {
		out = "<style>" + p.css + "</style>\n" + out
	}
	return out, meta
}

// SplitFrontMatter separates a leading "---"-delimited metadata block from the
// document body. Metadata lines are parsed as "key: value" on the first colon,
// with surrounding quotes stripped from the value; lines without a colon are
// ignored. This is deliberately not a YAML parser: values are flat strings and
// malformed blocks degrade to no metadata.
func SplitFrontMatter(raw string) (map[string]string, string) {
	if !strings.HasPrefix(raw, fmDelimiter) {
		return nil, raw
	}
	parts := strings.SplitN(raw, fmDelimiter, 3)
	if len(parts) < 3 {
		return nil, raw
	}

	meta := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"`)
		value = strings.Trim(value, `'`)
		meta[strings.TrimSpace(key)] = value
	}
	return meta, strings.TrimSpace(parts[2])
}

// ExtractTitle returns the text of the first "# " heading line, or
// DefaultTitle when the content has none. It scans the raw content, so the
// heading is found whether or not front-matter precedes it.
func ExtractTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return DefaultTitle
}

// highlightCSS renders the chroma stylesheet for highlightStyle.
func highlightCSS() string {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(highlightStyle)); err != nil {
		return ""
	}
	return buf.String()
}
