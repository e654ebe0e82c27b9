package models

// LoginRequest is the body accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body accepted by POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the reduced user shape echoed by the auth proxies.
// Only id and email are exposed here, metadata stays server-side.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is the success body of POST /api/auth/login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    *AuthUser `json:"user"`
}

// SignupResponse is the success body of POST /api/auth/signup.
// HasSession is false when the backend withheld a session pending
// e-mail confirmation.
type SignupResponse struct {
	Success    bool      `json:"success"`
	HasSession bool      `json:"hasSession"`
	User       *AuthUser `json:"user"`
}

// SessionResponse is the body of GET /api/auth/session. User is null
// for anonymous visitors; the endpoint never errors for them.
type SessionResponse struct {
	User *User `json:"user"`
}

// ErrorResponse is the uniform error body of every portal endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
