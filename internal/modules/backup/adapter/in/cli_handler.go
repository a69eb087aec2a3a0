package in

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fieldreport/internal/modules/backup/dto"
	backupin "fieldreport/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Export writes the backup into dir and returns the file path.
func (h CLIHandler) Export(ctx context.Context, dir string) (string, error) {
	out, err := h.usecase.Export(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, out.Filename)
	if err := os.WriteFile(path, out.Data, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

func (h CLIHandler) Import(ctx context.Context, path string) (dto.ImportOutput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dto.ImportOutput{}, fmt.Errorf("read backup: %w", err)
	}
	return h.usecase.Import(ctx, raw)
}
