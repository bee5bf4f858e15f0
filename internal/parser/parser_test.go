package parser

import (
	"strings"
	"testing"
)

var defaultExtensions = []string{"fenced_code", "codehilite", "tables", "toc", "extra"}

func TestSplitFrontMatter_RoundTrip(t *testing.T) {
	meta, body := SplitFrontMatter("---\ntitle: Foo\n---\nbody")
	if meta["title"] != "Foo" {
		t.Errorf("title = %q, want Foo", meta["title"])
	}
	if body != "body" {
		t.Errorf("body = %q, want body", body)
	}
}

func TestSplitFrontMatter_Absent(t *testing.T) {
	meta, body := SplitFrontMatter("# Heading\ntext")
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != "# Heading\ntext" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontMatter_Unterminated(t *testing.T) {
	raw := "---\ntitle: Foo\nno closing delimiter"
	meta, body := SplitFrontMatter(raw)
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != raw {
		t.Errorf("body = %q, want original content", body)
	}
}

func TestSplitFrontMatter_QuotedValues(t *testing.T) {
	meta, _ := SplitFrontMatter("---\nauthor: \"Jane Doe\"\nstatus: 'draft'\n---\nbody")
	if meta["author"] != "Jane Doe" {
		t.Errorf("author = %q", meta["author"])
	}
	if meta["status"] != "draft" {
		t.Errorf("status = %q", meta["status"])
	}
}

func TestSplitFrontMatter_LinesWithoutColonIgnored(t *testing.T) {
	meta, _ := SplitFrontMatter("---\ntitle: Foo\njust some text\n---\nbody")
	if len(meta) != 1 {
		t.Errorf("meta = %v, want single title key", meta)
	}
}

func TestSplitFrontMatter_ValueWithColon(t *testing.T) {
	meta, _ := SplitFrontMatter("---\nurl: https://example.com/docs\n---\nbody")
	if meta["url"] != "https://example.com/docs" {
		t.Errorf("url = %q", meta["url"])
	}
}

func TestExtractTitle_FirstH1(t *testing.T) {
	if got := ExtractTitle("# Hello\n\ntext"); got != "Hello" {
		t.Errorf("title = %q, want Hello", got)
	}
}

func TestExtractTitle_Placeholder(t *testing.T) {
	if got := ExtractTitle("no heading here\n## only h2\n"); got != DefaultTitle {
		t.Errorf("title = %q, want %q", got, DefaultTitle)
	}
}

func TestExtractTitle_SkipsFrontMatter(t *testing.T) {
	raw := "---\ntitle: Meta Title\n---\n# Real Title\nbody"
	if got := ExtractTitle(raw); got != "Real Title" {
		t.Errorf("title = %q, want Real Title", got)
	}
}

func TestParse_BasicMarkdown(t *testing.T) {
	p := New(defaultExtensions)
	html, meta := p.Parse("# Hi\n\nSome *text*.")
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if !strings.Contains(html, "Hi</h1>") {
		t.Errorf("html missing heading: %q", html)
	}
	if !strings.Contains(html, "<em>text</em>") {
		t.Errorf("html missing emphasis: %q", html)
	}
}

func TestParse_FrontMatterStripped(t *testing.T) {
	p := New(defaultExtensions)
	html, meta := p.Parse("---\ntitle: Foo\n---\n# Body Heading\n")
	if meta["title"] != "Foo" {
		t.Errorf("meta = %v", meta)
	}
	if strings.Contains(html, "title: Foo") {
		t.Errorf("front-matter leaked into html: %q", html)
	}
	if !strings.Contains(html, "Body Heading</h1>") {
		t.Errorf("html missing heading: %q", html)
	}
}

func TestParse_HighlightStylesheetPrefixed(t *testing.T) {
	p := New(defaultExtensions)
	html, _ := p.Parse("```go\npackage main\n```\n")
	if !strings.HasPrefix(html, "<style>") {
		t.Errorf("html not prefixed with style block: %q", html[:min(len(html), 80)])
	}
	if !strings.Contains(html, "chroma") {
		t.Errorf("html missing chroma classes: %q", html)
	}
}

func TestParse_NoStylesheetWithoutCodehilite(t *testing.T) {
	p := New([]string{"tables"})
	html, _ := p.Parse("plain text")
	if strings.Contains(html, "<style>") {
		t.Errorf("unexpected style block: %q", html)
	}
}

func TestParse_Tables(t *testing.T) {
	p := New(defaultExtensions)
	html, _ := p.Parse("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(html, "<table>") {
		t.Errorf("html missing table: %q", html)
	}
}

func TestParse_UnknownExtensionIgnored(t *testing.T) {
	p := New([]string{"bogus", "tables", ""})
	html, _ := p.Parse("hello")
	if !strings.Contains(html, "<p>hello</p>") {
		t.Errorf("html = %q", html)
	}
}

func TestParse_MalformedNeverFails(t *testing.T) {
	p := New(defaultExtensions)
	inputs := []string{
		"",
		"---",
		"---\n---",
		"```\nunterminated fence",
		"[broken link](",
	}
	for _, in := range inputs {
		html, _ := p.Parse(in)
		_ = html
	}
}
