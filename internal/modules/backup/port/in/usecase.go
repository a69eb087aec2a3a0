package in

import (
	"context"

	"fieldreport/internal/modules/backup/dto"
)

type Usecase interface {
	Export(ctx context.Context) (dto.ExportOutput, error)
	Import(ctx context.Context, raw []byte) (dto.ImportOutput, error)
}
