package model

import (
	"errors"
	"unicode"
)

// Flag marks the completion state of a transaction or posting. The zero
// value means no flag is present.
type Flag rune

const (
	// FlagComplete marks a confirmed transaction, written as '*'.
	FlagComplete Flag = '*'
	// FlagIncomplete marks a transaction needing attention, written as '!'.
	FlagIncomplete Flag = '!'
)

// ErrFlagInvalid is returned for flags that are not a single printable
// non-whitespace character.
var ErrFlagInvalid = errors.New("flag must be a single non-whitespace character")

// NewFlag validates r as a flag character.
func NewFlag(r rune) (Flag, error) {
	if r == 0 || unicode.IsSpace(r) {
		return 0, ErrFlagInvalid
	}
	return Flag(r), nil
}

func (f Flag) String() string { return string(rune(f)) }
