package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	Email      string  `json:"email"      validate:"required,email"`
	Name       string  `json:"name"       validate:"required,min=2"`
	Password   string  `json:"password"   validate:"required,min=8"`
	Role       string  `json:"role"       validate:"required,oneof=administrador operador"`
	Department *string `json:"department"`
}

type UpdateProfileRequest struct {
	Name       string  `json:"name"       validate:"required,min=2"`
	Department *string `json:"department"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Active     bool    `json:"active"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}
