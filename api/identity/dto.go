package identity

// AuthRequest carries operator credentials for registration and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
