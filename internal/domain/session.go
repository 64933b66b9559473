package domain

// Session is the persisted client state for one signed-in visitor: the opaque
// upstream access token plus the optionally remembered email. The session
// store owns the lifecycle; everything here just reads it.
type Session struct {
	Token           string
	RememberedEmail string
}

// Authenticated reports whether a usable token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
