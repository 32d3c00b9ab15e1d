// Package session carries the authenticated user identity through the
// application as an explicit value. There is no ambient current-user global:
// a Session is begun when a signed-in identity is established, passed into
// every usecase call, and ended (zeroed) at sign-out. All collection paths
// are derived from Session.UserID, which is what enforces tenant scoping.
package session

// Session identifies the signed-in user for the duration of their visit.
// The zero value means "no session".
type Session struct {
	UserID string
	Email  string
}

// Begin starts a session for the given identity.
func Begin(userID, email string) Session {
	return Session{UserID: userID, Email: email}
}

// Active reports whether the session carries a signed-in identity.
func (s Session) Active() bool {
	return s.UserID != ""
}

// End clears the session at sign-out.
func (s *Session) End() {
	*s = Session{}
}
