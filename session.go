package marketfolio

// Role is the access level carried by a session. The backend issues "admin"
// or "user"; anything else (including the empty string) means no access.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session is the authenticated state of the client. Role and UserID are only
// meaningful while Token is non-empty: an empty token is a logged-out session.
type Session struct {
	Token  string
	Role   Role
	UserID int
}

// LoggedIn reports whether the session holds a token.
func (s Session) LoggedIn() bool { return s.Token != "" }
