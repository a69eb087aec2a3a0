package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	separator = "---\n"
	closing   = "\n---\n"
)

// Decode splits a note into its YAML frontmatter and body. The frontmatter
// is unmarshalled into meta when meta is non-nil. A note without frontmatter
// is returned whole as the body.
func Decode(content string, meta any) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, closing)
	if idx < 0 {
		return "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	if meta != nil {
		if err := yaml.Unmarshal([]byte(rest[:idx]), meta); err != nil {
			return "", fmt.Errorf("unmarshal frontmatter: %w", err)
		}
	}
	return rest[idx+len(closing):], nil
}

// Body drops the frontmatter without decoding it.
func Body(content string) (string, error) {
	return Decode(content, nil)
}

// Encode renders meta as YAML frontmatter above body.
func Encode(meta any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}
