package domain

import (
	"time"

	"fieldreport/internal/platform/state"
)

// Document is the per-user copy kept by the remote mirror. Keys match the
// remote collection written by earlier versions of the app.
type Document struct {
	Entries      []state.Entry       `json:"entries"`
	Revisitas    []state.ReturnVisit `json:"revisitas"`
	Estudos      []state.BibleStudy  `json:"estudos"`
	Config       state.Profile       `json:"config"`
	Metas        state.Goal          `json:"metas"`
	MetasAbertas *state.GoalPeriod   `json:"metasAbertas"`
	Anciaos      []state.Elder       `json:"anciaos"`
	LastSync     string              `json:"lastSync,omitempty"`
}

// Extract copies userID's records out of doc.
func Extract(doc state.Document, userID string, now time.Time) Document {
	out := Document{
		Entries:   []state.Entry{},
		Revisitas: []state.ReturnVisit{},
		Estudos:   []state.BibleStudy{},
		Anciaos:   []state.Elder{},
		Config:    doc.Config[userID],
		Metas:     doc.Metas[userID],
		LastSync:  now.UTC().Format(time.RFC3339Nano),
	}
	for _, e := range doc.Entries {
		if e.UserID == userID {
			out.Entries = append(out.Entries, e)
		}
	}
	for _, r := range doc.Revisitas {
		if r.UserID == userID {
			out.Revisitas = append(out.Revisitas, r)
		}
	}
	for _, s := range doc.Estudos {
		if s.UserID == userID {
			out.Estudos = append(out.Estudos, s)
		}
	}
	for _, a := range doc.Anciaos {
		if a.UserID == userID {
			out.Anciaos = append(out.Anciaos, a)
		}
	}
	if period, ok := doc.MetasAbertas[userID]; ok {
		out.MetasAbertas = &period
	}
	return out
}

// MergeInto replaces userID's records in doc with the mirrored ones and
// leaves every other user's records alone. An open goal period is only
// overwritten when the mirror carries one.
func (m Document) MergeInto(doc *state.Document, userID string) {
	doc.Normalize()

	entries := make([]state.Entry, 0, len(doc.Entries)+len(m.Entries))
	for _, e := range doc.Entries {
		if e.UserID != userID {
			entries = append(entries, e)
		}
	}
	doc.Entries = append(entries, m.Entries...)

	visits := make([]state.ReturnVisit, 0, len(doc.Revisitas)+len(m.Revisitas))
	for _, r := range doc.Revisitas {
		if r.UserID != userID {
			visits = append(visits, r)
		}
	}
	doc.Revisitas = append(visits, m.Revisitas...)

	studies := make([]state.BibleStudy, 0, len(doc.Estudos)+len(m.Estudos))
	for _, s := range doc.Estudos {
		if s.UserID != userID {
			studies = append(studies, s)
		}
	}
	doc.Estudos = append(studies, m.Estudos...)

	elders := make([]state.Elder, 0, len(doc.Anciaos)+len(m.Anciaos))
	for _, a := range doc.Anciaos {
		if a.UserID != userID {
			elders = append(elders, a)
		}
	}
	doc.Anciaos = append(elders, m.Anciaos...)

	doc.Config[userID] = m.Config
	doc.Metas[userID] = m.Metas
	if m.MetasAbertas != nil {
		doc.MetasAbertas[userID] = *m.MetasAbertas
	}
	doc.Normalize()
}
