package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FilenamePrefix is shared by every export so older backups sort together.
const FilenamePrefix = "relatorio-campo-backup-"

var errNoUsers = errors.New("Arquivo de backup inválido")

// Filename names the export written on day.
func Filename(day time.Time) string {
	return FilenamePrefix + day.Format("2006-01-02") + ".json"
}

// Validate checks that raw is a JSON object carrying a users array. Other
// containers may be missing and are filled in on decode.
func Validate(raw []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	users, ok := fields["users"]
	if !ok {
		return errNoUsers
	}
	if !bytes.HasPrefix(bytes.TrimSpace(users), []byte("[")) {
		return errNoUsers
	}
	return nil
}
