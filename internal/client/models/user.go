// Package models defines the request and response shapes exchanged with the
// API server.
package models

// User as returned by the auth endpoints.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// LoginData is the body of POST /api/auth/login.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupData is the body of POST /api/auth/signup.
type SignupData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by login and signup. Token is the bearer credential.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CurrentUser is the payload of GET /api/auth/me.
type CurrentUser struct {
	User User `json:"user"`
}

// ProfileUpdate is the body of PUT /api/profile. Nil fields are left out.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
