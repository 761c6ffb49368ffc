// Package validate wires go-playground/validator with the institutional
// email rule. The institutional domain is deployment configuration, so the
// rule reads it from package state set once at startup.
package validate

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const institutionalTag = "institutional"

var (
	validate *validator.Validate
	initOnce sync.Once

	domainMu sync.RWMutex
	domain   = "udh.edu.pe"
)

// Init sets the institutional domain used by the custom rule. Safe to call
// more than once; the last domain wins.
func Init(institutionalDomain string) {
	domainMu.Lock()
	domain = strings.TrimPrefix(strings.TrimSpace(institutionalDomain), "@")
	domainMu.Unlock()
	ensure()
}

// Domain returns the configured institutional domain.
func Domain() string {
	domainMu.RLock()
	defer domainMu.RUnlock()
	return domain
}

func ensure() {
	initOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation(institutionalTag, institutionalValidation)
	})
}

// institutionalValidation accepts emails whose domain equals the
// configured institutional domain.
func institutionalValidation(fl validator.FieldLevel) bool {
	return emailDomain(fl.Field().String()) == Domain()
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// InstitutionalEmail checks that email is well formed and carries the
// institutional domain.
func InstitutionalEmail(email string) error {
	ensure()
	return validate.Var(email, "required,email,"+institutionalTag)
}

// HostedDomain checks a third-party hosted-domain claim against the
// institutional domain.
func HostedDomain(hd string) bool {
	return strings.ToLower(strings.TrimSpace(hd)) == Domain()
}
