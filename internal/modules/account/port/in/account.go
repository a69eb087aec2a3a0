package in

import (
	"context"

	"fieldreport/internal/modules/account/dto"
)

type Usecase interface {
	SignUp(ctx context.Context, input dto.SignUpInput) (dto.UserOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.UserOutput, error)
	GetUser(ctx context.Context, id string) (dto.UserOutput, error)
	GetProfile(ctx context.Context, userID string) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
	SetRole(ctx context.Context, userID, role string) error
	AddElder(ctx context.Context, input dto.AddElderInput) (dto.ElderOutput, error)
	RemoveElder(ctx context.Context, id string) error
	ListElders(ctx context.Context) ([]dto.ElderOutput, error)
	GetElder(ctx context.Context, id string) (dto.ElderOutput, error)
}
