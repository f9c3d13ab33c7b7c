// Package api defines the request and response types shared by the HTTP handlers.
package api

// ErrorResponse is the uniform JSON error body returned on any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that complete without a data payload.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RegisterRequest represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation (required fields, email format, password length).
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for the /login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user (no password digest).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthData bundles the authenticated user with the freshly issued token.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AuthResponse is returned by /register and /login on success.
type AuthResponse struct {
	Status string   `json:"status"`
	Data   AuthData `json:"data"`
}

// MovieRequest represents the request body for creating or updating a movie.
type MovieRequest struct {
	Title       string   `json:"title" binding:"required"`
	Overview    string   `json:"overview"`
	ReleaseYear int      `json:"releaseYear" binding:"required"`
	Genres      []string `json:"genres"`
	Runtime     int      `json:"runtime"`
	PosterURL   string   `json:"posterUrl"`
}

// MovieResponse is the JSON view of a movie.
type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseYear int      `json:"releaseYear"`
	Genres      []string `json:"genres"`
	Runtime     int      `json:"runtime"`
	PosterURL   string   `json:"posterUrl"`
	CreatedBy   string   `json:"createdBy"`
}
