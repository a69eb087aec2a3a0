package out

import (
	"context"

	"fieldreport/internal/modules/contact/domain"
	contactout "fieldreport/internal/modules/contact/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

// StateContactStore keeps return visits in the revisitas list and studies in
// the estudos list of the state document.
type StateContactStore struct {
	repo *state.Repository
}

func NewStateContactStore(repo *state.Repository) contactout.ContactStore {
	return &StateContactStore{repo: repo}
}

func (s *StateContactStore) Save(ctx context.Context, contact domain.Contact) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		upsert(doc, contact)
		return nil
	})
}

func (s *StateContactStore) FindByID(ctx context.Context, kind domain.Kind, id string) (domain.Contact, error) {
	var found domain.Contact
	err := s.repo.View(ctx, func(doc *state.Document) error {
		contact, ok := find(doc, kind, id)
		if !ok {
			return apperrors.ErrNotFound
		}
		found = contact
		return nil
	})
	return found, err
}

func (s *StateContactStore) ListByUser(ctx context.Context, kind domain.Kind, userID string) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := s.repo.View(ctx, func(doc *state.Document) error {
		switch kind {
		case domain.KindReturnVisit:
			for _, r := range doc.Revisitas {
				if r.UserID == userID {
					contacts = append(contacts, fromReturnVisit(r))
				}
			}
		case domain.KindBibleStudy:
			for _, e := range doc.Estudos {
				if e.UserID == userID {
					contacts = append(contacts, fromBibleStudy(e))
				}
			}
		}
		return nil
	})
	return contacts, err
}

func (s *StateContactStore) AppendVisit(ctx context.Context, kind domain.Kind, id string, visit domain.Visit) (domain.Contact, error) {
	var updated domain.Contact
	item := state.HistoryItem{ID: visit.ID, Data: visit.Date, Observacoes: visit.Note}
	err := s.repo.Update(ctx, func(doc *state.Document) error {
		switch kind {
		case domain.KindReturnVisit:
			for i := range doc.Revisitas {
				if doc.Revisitas[i].ID == id {
					doc.Revisitas[i].Historico = append(doc.Revisitas[i].Historico, item)
					updated = fromReturnVisit(doc.Revisitas[i])
					return nil
				}
			}
		case domain.KindBibleStudy:
			for i := range doc.Estudos {
				if doc.Estudos[i].ID == id {
					doc.Estudos[i].Historico = append(doc.Estudos[i].Historico, item)
					updated = fromBibleStudy(doc.Estudos[i])
					return nil
				}
			}
		}
		return apperrors.ErrNotFound
	})
	return updated, err
}

func (s *StateContactStore) Promote(ctx context.Context, returnVisitID string, study domain.Contact) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		idx := -1
		for i, r := range doc.Revisitas {
			if r.ID == returnVisitID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		doc.Estudos = append(doc.Estudos, toBibleStudy(study))
		doc.Revisitas = append(doc.Revisitas[:idx], doc.Revisitas[idx+1:]...)
		return nil
	})
}

func upsert(doc *state.Document, contact domain.Contact) {
	switch contact.Kind {
	case domain.KindReturnVisit:
		record := toReturnVisit(contact)
		for i := range doc.Revisitas {
			if doc.Revisitas[i].ID == contact.ID {
				doc.Revisitas[i] = record
				return
			}
		}
		doc.Revisitas = append(doc.Revisitas, record)
	case domain.KindBibleStudy:
		record := toBibleStudy(contact)
		for i := range doc.Estudos {
			if doc.Estudos[i].ID == contact.ID {
				doc.Estudos[i] = record
				return
			}
		}
		doc.Estudos = append(doc.Estudos, record)
	}
}

func find(doc *state.Document, kind domain.Kind, id string) (domain.Contact, bool) {
	switch kind {
	case domain.KindReturnVisit:
		for _, r := range doc.Revisitas {
			if r.ID == id {
				return fromReturnVisit(r), true
			}
		}
	case domain.KindBibleStudy:
		for _, e := range doc.Estudos {
			if e.ID == id {
				return fromBibleStudy(e), true
			}
		}
	}
	return domain.Contact{}, false
}

func toHistory(visits []domain.Visit) []state.HistoryItem {
	out := make([]state.HistoryItem, 0, len(visits))
	for _, v := range visits {
		out = append(out, state.HistoryItem{ID: v.ID, Data: v.Date, Observacoes: v.Note})
	}
	return out
}

func fromHistory(items []state.HistoryItem) []domain.Visit {
	out := make([]domain.Visit, 0, len(items))
	for _, h := range items {
		out = append(out, domain.Visit{ID: h.ID, Date: h.Data, Note: h.Observacoes})
	}
	return out
}

func toReturnVisit(c domain.Contact) state.ReturnVisit {
	return state.ReturnVisit{
		ID:         c.ID,
		UserID:     c.UserID,
		Nome:       c.Name,
		Endereco:   c.Address,
		Telefone:   c.Phone,
		Publicacao: c.Publication,
		Assunto:    c.Subject,
		Historico:  toHistory(c.History),
	}
}

func fromReturnVisit(r state.ReturnVisit) domain.Contact {
	return domain.Contact{
		ID:          r.ID,
		UserID:      r.UserID,
		Kind:        domain.KindReturnVisit,
		Name:        r.Nome,
		Address:     r.Endereco,
		Phone:       r.Telefone,
		Publication: r.Publicacao,
		Subject:     r.Assunto,
		History:     fromHistory(r.Historico),
	}
}

func toBibleStudy(c domain.Contact) state.BibleStudy {
	return state.BibleStudy{
		ID:        c.ID,
		UserID:    c.UserID,
		Nome:      c.Name,
		Endereco:  c.Address,
		Telefone:  c.Phone,
		DiaHora:   c.Schedule,
		Historico: toHistory(c.History),
	}
}

func fromBibleStudy(e state.BibleStudy) domain.Contact {
	return domain.Contact{
		ID:       e.ID,
		UserID:   e.UserID,
		Kind:     domain.KindBibleStudy,
		Name:     e.Nome,
		Address:  e.Endereco,
		Phone:    e.Telefone,
		Schedule: e.DiaHora,
		History:  fromHistory(e.Historico),
	}
}
