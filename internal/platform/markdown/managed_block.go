package markdown

import "strings"

// Block delimits generated content inside a note so user text around it
// survives regeneration.
type Block struct {
	Start string
	End   string
}

// Replace swaps the block's content in body for generated, appending the
// block when body has none.
func (b Block) Replace(body, generated string) string {
	start := strings.Index(body, b.Start)
	end := strings.Index(body, b.End)
	block := b.Start + "\n" + generated + "\n" + b.End

	if start >= 0 && end > start {
		end += len(b.End)
		return body[:start] + block + body[end:]
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}

// Extract returns the content between the markers.
func (b Block) Extract(body string) (string, bool) {
	start := strings.Index(body, b.Start)
	end := strings.Index(body, b.End)
	if start < 0 || end <= start {
		return "", false
	}
	inner := body[start+len(b.Start) : end]
	return strings.TrimSuffix(strings.TrimPrefix(inner, "\n"), "\n"), true
}
