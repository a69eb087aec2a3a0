package in

import (
	"context"

	accountdto "fieldreport/internal/modules/account/dto"
	accountin "fieldreport/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SignUp(ctx context.Context, name, congregation, role, email, password string) (accountdto.UserOutput, error) {
	return h.usecase.SignUp(ctx, accountdto.SignUpInput{Name: name, Congregation: congregation, Role: role, Email: email, Password: password})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (accountdto.UserOutput, error) {
	return h.usecase.Login(ctx, accountdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (accountdto.UserOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (accountdto.ProfileOutput, error) {
	user, err := h.usecase.Current(ctx)
	if err != nil {
		return accountdto.ProfileOutput{}, err
	}
	return h.usecase.GetProfile(ctx, user.ID)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, name, congregation, role, elderNote string) (accountdto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, accountdto.UpdateProfileInput{Name: name, Congregation: congregation, Role: role, ElderNote: elderNote})
}

func (h CLIHandler) AddElder(ctx context.Context, name, phone string) (accountdto.ElderOutput, error) {
	return h.usecase.AddElder(ctx, accountdto.AddElderInput{Name: name, Phone: phone})
}

func (h CLIHandler) RemoveElder(ctx context.Context, id string) error {
	return h.usecase.RemoveElder(ctx, id)
}

func (h CLIHandler) ListElders(ctx context.Context) ([]accountdto.ElderOutput, error) {
	return h.usecase.ListElders(ctx)
}
