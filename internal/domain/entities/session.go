package entities

import "time"

// Session is the inspector signed in on this device. Name is the local part
// of the e-mail used at login.
type Session struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// DevSession is used for every request when authentication is disabled.
func DevSession() Session {
	return Session{Name: "dev", Authenticated: true}
}
