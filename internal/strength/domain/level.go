// Package domain defines password strength levels and the pattern policy used to classify them.
package domain

import (
	"fmt"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// Level is an ordered password strength classification.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Good
	Strong
)

var levelNames = map[Level]string{
	VeryWeak: "VERY_WEAK",
	Weak:     "WEAK",
	Good:     "GOOD",
	Strong:   "STRONG",
}

// String returns the upper snake case name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText encodes the level by name so JSON output stays readable.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "unknown strength level %d", int(l))
	}
	return []byte(l.String()), nil
}

// ParseLevel converts a level name back into a Level.
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return VeryWeak, apperrors.Wrapf(apperrors.ErrInvalidInput, "unknown strength level %q", name)
}
