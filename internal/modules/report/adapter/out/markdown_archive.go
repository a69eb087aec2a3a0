package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	reportout "fieldreport/internal/modules/report/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/markdown"
	"fieldreport/internal/platform/slug"
)

const SchemaVersion = 1

var reportBlock = markdown.Block{
	Start: "<!-- fieldreport:report:start -->",
	End:   "<!-- fieldreport:report:end -->",
}

// NoteMeta is the frontmatter of an archived report note.
type NoteMeta struct {
	SchemaVersion  int      `yaml:"schema_version"`
	UserID         string   `yaml:"user_id"`
	Name           string   `yaml:"name"`
	Month          string   `yaml:"month"`
	Hours          int      `yaml:"hours"`
	Minutes        int      `yaml:"minutes"`
	ReturnVisits   int      `yaml:"return_visits"`
	BibleStudies   int      `yaml:"bible_studies"`
	Publications   int      `yaml:"publications"`
	ReopenedVisits int      `yaml:"reopened_visits"`
	Letters        int      `yaml:"letters"`
	GoalHours      *float64 `yaml:"goal_hours,omitempty"`
	GeneratedAt    string   `yaml:"generated_at"`
}

// MarkdownArchive writes one note per user and month under
// <dir>/<yyyy>/<mm>-<name>.md.
type MarkdownArchive struct {
	dir string
}

func NewMarkdownArchive(dir string) reportout.ReportArchive {
	return &MarkdownArchive{dir: dir}
}

func (a *MarkdownArchive) Write(_ context.Context, report reportout.ArchivedReport) (string, error) {
	month := report.Summary.Month
	dir := filepath.Join(a.dir, fmt.Sprintf("%04d", month.Year))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%02d-%s.md", int(month.Month), slug.Make(report.Name)))

	body := fmt.Sprintf("# Relatório – %s\n\n", month.Label())
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		previous, splitErr := markdown.Body(string(existing))
		if splitErr != nil {
			return "", fmt.Errorf("read archived report: %w", splitErr)
		}
		body = previous
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read archived report: %w", err)
	}
	body = reportBlock.Replace(body, "```text\n"+report.Text+"\n```")

	meta := NoteMeta{
		SchemaVersion:  SchemaVersion,
		UserID:         report.UserID,
		Name:           report.Name,
		Month:          month.Key(),
		Hours:          report.Summary.Hours,
		Minutes:        report.Summary.Minutes,
		ReturnVisits:   report.Summary.ReturnVisits,
		BibleStudies:   report.Summary.BibleStudies,
		Publications:   report.Summary.Publications,
		ReopenedVisits: report.Summary.ReopenedVisits,
		Letters:        report.Summary.Letters,
		GoalHours:      report.GoalHours,
		GeneratedAt:    report.CreatedAt.Format(time.RFC3339),
	}
	rendered, err := markdown.Encode(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report note: %w", err)
	}
	return path, nil
}

// Read loads an archived note. Relative paths are resolved against the
// archive directory.
func (a *MarkdownArchive) Read(_ context.Context, path string) (string, error) {
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(a.dir, path)
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
		}
		return "", fmt.Errorf("read report note: %w", err)
	}
	return string(content), nil
}

// ReportText returns the generated report inside an archived note.
func ReportText(note string) (string, bool) {
	text, ok := reportBlock.Extract(note)
	if !ok {
		return "", false
	}
	return trimFence(text), true
}

func trimFence(s string) string {
	const prefix, suffix = "```text\n", "\n```"
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) && len(s) >= len(prefix)+len(suffix) {
		return s[len(prefix) : len(s)-len(suffix)]
	}
	return s
}
