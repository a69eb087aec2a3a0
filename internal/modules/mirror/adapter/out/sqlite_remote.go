package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldreport/internal/modules/mirror/domain"
	mirrorout "fieldreport/internal/modules/mirror/port/out"
	"fieldreport/internal/platform/clock"
)

// SQLiteRemote keeps mirrored documents in the mirror_documents table.
// json_patch gives pushes the same merge semantics as the HTTP endpoint.
type SQLiteRemote struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteRemote(db *sql.DB, clock clock.Clock) mirrorout.Remote {
	return &SQLiteRemote{db: db, clock: clock}
}

func (r *SQLiteRemote) Push(ctx context.Context, userID string, doc domain.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal mirror document: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO mirror_documents (user_id, body, updated_at)
VALUES (?, json(?), ?)
ON CONFLICT(user_id) DO UPDATE SET
  body = json_patch(mirror_documents.body, excluded.body),
  updated_at = excluded.updated_at`,
		userID, string(payload), r.clock.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert mirror document: %w", err)
	}
	return nil
}

func (r *SQLiteRemote) Pull(ctx context.Context, userID string) (domain.Document, bool, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM mirror_documents WHERE user_id = ?`, userID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, false, nil
	}
	if err != nil {
		return domain.Document{}, false, fmt.Errorf("select mirror document: %w", err)
	}
	doc := domain.Document{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return domain.Document{}, false, fmt.Errorf("decode mirror document: %w", err)
	}
	return doc, true, nil
}
