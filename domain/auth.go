package domain

var (
	MessageSuccessCreateToken = "token created successfully"
	MessageSuccessLogout      = "logged out successfully"
	MessageFailedCreateToken  = "failed to create token"
)

type (
	CreateTokenRequest struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"omitempty"`
	}
)
