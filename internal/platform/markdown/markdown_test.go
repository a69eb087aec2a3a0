package markdown_test

import (
	"strings"
	"testing"

	"fieldreport/internal/platform/markdown"
)

type noteMeta struct {
	Month string   `yaml:"month"`
	Hours int      `yaml:"hours"`
	Goal  *float64 `yaml:"goal,omitempty"`
}

func TestFrontmatterRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Encode(noteMeta{Month: "2026-03", Hours: 12}, "# Title\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(rendered, "goal:") {
		t.Fatalf("empty goal must be omitted: %q", rendered)
	}
	meta := noteMeta{}
	body, err := markdown.Decode(rendered, &meta)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if meta.Month != "2026-03" || meta.Hours != 12 {
		t.Fatalf("unexpected meta: %#v", meta)
	}
	if !strings.HasPrefix(body, "\n# Title") {
		t.Fatalf("unexpected body: %q", body)
	}
	if _, err := markdown.Body("---\nbroken"); err == nil {
		t.Fatalf("expected missing separator to fail")
	}
}

func TestBodyHandlesWindowsLineEndingsAndPlainNotes(t *testing.T) {
	t.Parallel()
	body, err := markdown.Body("---\r\nmonth: 2026-03\r\n---\r\n# Relatório\r\n")
	if err != nil {
		t.Fatalf("body: %v", err)
	}
	if body != "# Relatório\n" {
		t.Fatalf("unexpected body: %q", body)
	}
	if got, _ := markdown.Body("# no frontmatter"); got != "# no frontmatter" {
		t.Fatalf("plain note changed: %q", got)
	}
}

func TestBlockReplaceKeepsSurroundingNotes(t *testing.T) {
	t.Parallel()
	block := markdown.Block{Start: "<!-- start -->", End: "<!-- end -->"}
	body := block.Replace("# Report\n", "first")
	if got, ok := block.Extract(body); !ok || got != "first" {
		t.Fatalf("extract = %q, %v", got, ok)
	}
	body += "\nmy notes\n"
	body = block.Replace(body, "second")
	if !strings.Contains(body, "my notes") || !strings.HasPrefix(body, "# Report\n") {
		t.Fatalf("notes lost: %q", body)
	}
	if got, _ := block.Extract(body); got != "second" {
		t.Fatalf("extract after replace = %q", got)
	}
	if _, ok := block.Extract("nothing here"); ok {
		t.Fatalf("expected no block")
	}
}
