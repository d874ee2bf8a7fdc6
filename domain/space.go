package domain

import "fmt"

// Space is a two-valued classification attached to tasks and projects.
// Stored as an integer; validated at every boundary, never trusted beyond it.
type Space int

const (
	SpacePersonal Space = 1
	SpaceWork     Space = 2
)

// Valid reports whether the value is a member of the enum.
func (s Space) Valid() bool {
	return s == SpacePersonal || s == SpaceWork
}

func (s Space) String() string {
	switch s {
	case SpacePersonal:
		return "PERSONAL"
	case SpaceWork:
		return "WORK"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}
