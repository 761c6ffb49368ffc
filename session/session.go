// Package session holds the authenticated identity of the client and the
// four operations that may change it: login, the Google exchange, register
// and logout. Exactly one Session exists per client; it is persisted on
// every change and rehydrated on start.
package session

import "github.com/abimaelfv/titulacion-cli/roles"

// Session is the client-held record of the current identity. Token
// presence means authenticated; FullName absence on an authenticated
// session means the profile still needs completing. Loading is transient
// and never persisted.
type Session struct {
	ID       string     `json:"id,omitempty"`
	Token    string     `json:"token,omitempty"`
	FullName string     `json:"full_name,omitempty"`
	Email    string     `json:"email,omitempty"`
	Role     roles.Role `json:"role,omitempty"`
	Image    string     `json:"image,omitempty"`
	IsJury   bool       `json:"is_jury,omitempty"`
	Loading  bool       `json:"-"`
}

// Authenticated reports whether a credential token is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// ProfileComplete reports whether the authenticated identity has a full
// name on file.
func (s Session) ProfileComplete() bool { return s.Authenticated() && s.FullName != "" }
