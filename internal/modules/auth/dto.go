package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ProtectedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}
