package models

// Credentials exist only for the duration of a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the authenticated-user context issued by the backend on login.
type Session struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
}
