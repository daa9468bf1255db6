package models

// User is the authenticated account as echoed by the server.
type User struct {
	UserID string `json:"id,omitempty"`
	Login  string `json:"login"`
	Name   string `json:"name,omitempty"`
}

// Credentials is the request body for login and registration.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Session holds the client's authentication state after a successful login or
// registration.
type Session struct {
	UserID string
	Login  string
	Token  string
}
