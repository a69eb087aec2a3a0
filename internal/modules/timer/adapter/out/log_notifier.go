package out

import (
	"context"
	"log/slog"

	timerout "fieldreport/internal/modules/timer/port/out"
)

// LogNotifier surfaces notices through the structured logger. The live
// timer view shows the same notice as a banner.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) timerout.Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notice", "message", message)
}
