package dto

type SignUpInput struct {
	Name         string
	Congregation string
	Role         string
	Email        string
	Password     string
}

type LoginInput struct {
	Email    string
	Password string
}

type UserOutput struct {
	ID           string
	Name         string
	Congregation string
	Role         string
	RoleLabel    string
	Email        string
}

type UpdateProfileInput struct {
	Name         string
	Congregation string
	Role         string
	ElderNote    string
}

type ProfileOutput struct {
	UserID       string
	Name         string
	Congregation string
	Role         string
	RoleLabel    string
	ElderNote    string
}

type AddElderInput struct {
	Name  string
	Phone string
}

type ElderOutput struct {
	ID          string
	UserID      string
	Name        string
	Phone       string
	PhoneDigits string
}
