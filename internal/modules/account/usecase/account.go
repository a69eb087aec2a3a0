package usecase

import (
	"context"

	"fieldreport/internal/modules/account/domain"
	accountdto "fieldreport/internal/modules/account/dto"
	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/account/service"
)

type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) accountin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SignUp(ctx context.Context, input accountdto.SignUpInput) (accountdto.UserOutput, error) {
	user, err := i.svc.SignUp(ctx, input.Name, input.Congregation, input.Role, input.Email, input.Password)
	if err != nil {
		return accountdto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Login(ctx context.Context, input accountdto.LoginInput) (accountdto.UserOutput, error) {
	user, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return accountdto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (accountdto.UserOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return accountdto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) GetUser(ctx context.Context, id string) (accountdto.UserOutput, error) {
	user, err := i.svc.GetUser(ctx, id)
	if err != nil {
		return accountdto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) GetProfile(ctx context.Context, userID string) (accountdto.ProfileOutput, error) {
	user, err := i.svc.GetUser(ctx, userID)
	if err != nil {
		return accountdto.ProfileOutput{}, err
	}
	profile, err := i.svc.Profile(ctx, userID)
	if err != nil {
		return accountdto.ProfileOutput{}, err
	}
	role := profile.Role
	if role == "" {
		role = user.Role
	}
	return accountdto.ProfileOutput{
		UserID:       user.ID,
		Name:         profile.DisplayName(user),
		Congregation: profile.DisplayCongregation(user),
		Role:         string(role),
		RoleLabel:    role.Label(),
		ElderNote:    profile.ElderNote,
	}, nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input accountdto.UpdateProfileInput) (accountdto.ProfileOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return accountdto.ProfileOutput{}, err
	}
	if _, err := i.svc.UpdateProfile(ctx, user.ID, input.Name, input.Congregation, input.Role, input.ElderNote); err != nil {
		return accountdto.ProfileOutput{}, err
	}
	return i.GetProfile(ctx, user.ID)
}

func (i *Interactor) SetRole(ctx context.Context, userID, role string) error {
	return i.svc.SetRole(ctx, userID, role)
}

func (i *Interactor) AddElder(ctx context.Context, input accountdto.AddElderInput) (accountdto.ElderOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return accountdto.ElderOutput{}, err
	}
	elder, err := i.svc.AddElder(ctx, user.ID, input.Name, input.Phone)
	if err != nil {
		return accountdto.ElderOutput{}, err
	}
	return toElderOutput(elder), nil
}

func (i *Interactor) RemoveElder(ctx context.Context, id string) error {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return err
	}
	return i.svc.RemoveElder(ctx, user.ID, id)
}

func (i *Interactor) ListElders(ctx context.Context) ([]accountdto.ElderOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return nil, err
	}
	elders, err := i.svc.Elders(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]accountdto.ElderOutput, 0, len(elders))
	for _, elder := range elders {
		out = append(out, toElderOutput(elder))
	}
	return out, nil
}

func (i *Interactor) GetElder(ctx context.Context, id string) (accountdto.ElderOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return accountdto.ElderOutput{}, err
	}
	elder, err := i.svc.Elder(ctx, user.ID, id)
	if err != nil {
		return accountdto.ElderOutput{}, err
	}
	return toElderOutput(elder), nil
}

func toUserOutput(user domain.User) accountdto.UserOutput {
	return accountdto.UserOutput{
		ID:           user.ID,
		Name:         user.Name,
		Congregation: user.Congregation,
		Role:         string(user.Role),
		RoleLabel:    user.Role.Label(),
		Email:        user.Email,
	}
}

func toElderOutput(elder domain.Elder) accountdto.ElderOutput {
	return accountdto.ElderOutput{
		ID:          elder.ID,
		UserID:      elder.UserID,
		Name:        elder.Name,
		Phone:       elder.Phone,
		PhoneDigits: elder.PhoneDigits(),
	}
}
