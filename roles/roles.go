// Package roles defines the user roles of the thesis approval workflow and
// the canonical landing route for each of them.
package roles

import (
	"fmt"
	"strings"
)

// Role represents a user's primary role in the workflow.
type Role string

const (
	Estudiante Role = "estudiante" // Thesis student
	Asesor     Role = "asesor"     // Advisor
	Jurado     Role = "jurado"     // Jury member
	Paisi      Role = "paisi"      // Program committee (PAISI)
	Facultad   Role = "facultad"   // Faculty office
	Vri        Role = "vri"        // Research office (VRI)
	Turnitin   Role = "turnitin"   // Turnitin reviewer, shares the VRI screens
	Admin      Role = "admin"      // System administrator
)

// All lists every valid role. Order matters for stable iteration in tests
// and table rendering.
var All = []Role{Estudiante, Asesor, Jurado, Paisi, Facultad, Vri, Turnitin, Admin}

// homes maps every role to its landing route name. Vri and Turnitin share
// the combined review screen.
var homes = map[Role]string{
	Estudiante: "estudiante",
	Asesor:     "asesor",
	Jurado:     "jurado",
	Paisi:      "paisi",
	Facultad:   "facultad",
	Vri:        "vri-turnitin",
	Turnitin:   "vri-turnitin",
	Admin:      "admin",
}

// Parse converts a wire role string into a Role.
func Parse(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := homes[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := homes[r]
	return ok
}

// Home returns the landing route name for the role. A role without a home
// is a configuration error, not a runtime condition: the mapping must stay
// total over the enum, so Home panics rather than falling through.
func (r Role) Home() string {
	home, ok := homes[r]
	if !ok {
		panic(fmt.Sprintf("roles: no home route configured for role %q", r))
	}
	return home
}

func (r Role) String() string { return string(r) }
