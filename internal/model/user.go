package model

// User roles known to the client. The remote may introduce more.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// UserProfile represents the authenticated user as the API reports it.
type UserProfile struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// UserSession is the record held by the session store: the user plus the
// bearer token the API issued at login.
type UserSession struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}
