package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	apperrors "fieldreport/internal/platform/errors"
)

// SaveHook observes every successfully persisted document. Hooks run after
// the save and cannot fail it.
type SaveHook func(ctx context.Context, doc Document) error

// Repository owns the in-memory document. Every Update is written through to
// the Store before returning.
type Repository struct {
	mu     sync.Mutex
	store  Store
	logger *slog.Logger
	doc    Document
	loaded bool
	hooks  []namedHook
}

type namedHook struct {
	name string
	fn   SaveHook
}

func NewRepository(store Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

// OnSaved registers a hook under name for logging purposes.
func (r *Repository) OnSaved(name string, hook SaveHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, namedHook{name: name, fn: hook})
}

// View runs fn against the current document. fn must not retain or mutate it.
func (r *Repository) View(ctx context.Context, fn func(doc *Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	return fn(&r.doc)
}

// Update runs fn against the document and persists the result. An error from
// fn aborts before anything is written, so fn must validate before mutating.
// A failed write keeps the in-memory change and reports ErrPersistence.
func (r *Repository) Update(ctx context.Context, fn func(doc *Document) error) error {
	r.mu.Lock()
	if err := r.ensureLoaded(ctx); err != nil {
		r.mu.Unlock()
		return err
	}
	if err := fn(&r.doc); err != nil {
		r.mu.Unlock()
		return err
	}
	saved, hooks, err := r.persistLocked(ctx)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.runHooks(ctx, saved, hooks)
	return nil
}

// Replace swaps the whole document, as an import does.
func (r *Repository) Replace(ctx context.Context, doc Document) error {
	doc.Normalize()
	r.mu.Lock()
	r.doc = doc
	r.loaded = true
	saved, hooks, err := r.persistLocked(ctx)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.runHooks(ctx, saved, hooks)
	return nil
}

// Snapshot returns a deep copy of the current document.
func (r *Repository) Snapshot(ctx context.Context) (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return Document{}, err
	}
	return r.doc.Clone(), nil
}

func (r *Repository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	doc, err := r.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	doc.Normalize()
	r.doc = doc
	r.loaded = true
	return nil
}

func (r *Repository) persistLocked(ctx context.Context) (Document, []namedHook, error) {
	if err := r.store.Write(ctx, r.doc); err != nil {
		r.logger.ErrorContext(ctx, "persist state", "error", err)
		return Document{}, nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	if len(r.hooks) == 0 {
		return Document{}, nil, nil
	}
	hooks := append([]namedHook(nil), r.hooks...)
	return r.doc.Clone(), hooks, nil
}

func (r *Repository) runHooks(ctx context.Context, doc Document, hooks []namedHook) {
	for _, hook := range hooks {
		if err := hook.fn(ctx, doc); err != nil {
			r.logger.WarnContext(ctx, "after-save hook failed", "hook", hook.name, "error", err)
		}
	}
}
