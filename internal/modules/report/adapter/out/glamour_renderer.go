package out

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	reportout "fieldreport/internal/modules/report/port/out"
	"fieldreport/internal/platform/markdown"
)

type GlamourRenderer struct {
	width int
}

func NewGlamourRenderer(width int) reportout.Renderer {
	return &GlamourRenderer{width: width}
}

// Render drops the frontmatter and renders the note body for the terminal.
func (r *GlamourRenderer) Render(note string) (string, error) {
	body, err := markdown.Body(note)
	if err != nil {
		return "", err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
