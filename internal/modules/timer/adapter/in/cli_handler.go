package in

import (
	"context"

	timerdto "fieldreport/internal/modules/timer/dto"
	timerin "fieldreport/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, categories []string, returnVisitID, studyID string) (timerdto.SessionOutput, error) {
	input := timerdto.StartInput{Categories: categories}
	if returnVisitID != "" {
		input.People = append(input.People, timerdto.PersonInput{Kind: "revisita", ID: returnVisitID})
	}
	if studyID != "" {
		input.People = append(input.People, timerdto.PersonInput{Kind: "estudo", ID: studyID})
	}
	return h.usecase.Start(ctx, input)
}

// Toggle pauses a running session or resumes a paused one.
func (h CLIHandler) Toggle(ctx context.Context) (timerdto.SessionOutput, error) {
	status, err := h.usecase.Status(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	if status.Paused {
		return h.usecase.Resume(ctx)
	}
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (timerdto.SessionOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (timerdto.SessionOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Stop(ctx context.Context, counters timerdto.Counters) (timerdto.StopOutput, error) {
	return h.usecase.Stop(ctx, timerdto.StopInput{Counters: counters})
}

func (h CLIHandler) Cancel(ctx context.Context) error {
	return h.usecase.Cancel(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (timerdto.SessionOutput, error) {
	return h.usecase.Status(ctx)
}
