package model

import (
	"errors"
	"unicode"

	"golang.org/x/exp/slices"
)

// MaxCommodityLength is the maximum number of bytes in a commodity name.
const MaxCommodityLength = 24

// Validation errors for commodities, in the order they are checked.
var (
	ErrCommodityEmpty        = errors.New("commodity name cannot be empty")
	ErrCommodityTooLong      = errors.New("commodity name cannot exceed 24 characters")
	ErrCommodityInvalidStart = errors.New("commodity name must start with an uppercase letter")
	ErrCommodityInvalidEnd   = errors.New("commodity name must end with an uppercase letter or a number")
	ErrCommodityInvalidChar  = errors.New("commodity name can only contain uppercase letters, numbers, apostrophes, periods, underscores, or hyphens")
)

// Commodity is a currency or commodity name like "USD" or "RGAGX".
type Commodity string

// NewCommodity validates s as a commodity name. Names are at most 24
// characters, start with an uppercase letter, end with an uppercase letter
// or digit, and may contain apostrophes, periods, underscores, and hyphens
// in between.
func NewCommodity(s string) (Commodity, error) {
	if len(s) == 0 {
		return "", ErrCommodityEmpty
	}
	if len(s) > MaxCommodityLength {
		return "", ErrCommodityTooLong
	}
	runes := []rune(s)
	if !unicode.IsUpper(runes[0]) {
		return "", ErrCommodityInvalidStart
	}
	if len(runes) == 1 {
		return Commodity(s), nil
	}
	last := runes[len(runes)-1]
	if !unicode.IsUpper(last) && !unicode.IsNumber(last) {
		return "", ErrCommodityInvalidEnd
	}
	for _, r := range runes[1 : len(runes)-1] {
		if unicode.IsUpper(r) || unicode.IsNumber(r) {
			continue
		}
		switch r {
		case '\'', '.', '_', '-':
			continue
		}
		return "", ErrCommodityInvalidChar
	}
	return Commodity(s), nil
}

// MustCommodity is like NewCommodity but panics on invalid input.
func MustCommodity(s string) Commodity {
	c, err := NewCommodity(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Commodity) String() string { return string(c) }

// CommoditySet is a set of commodities with deterministic sorted iteration.
type CommoditySet struct {
	members map[Commodity]struct{}
}

// NewCommoditySet builds a set from the given commodities, deduplicating
// repeated names.
func NewCommoditySet(commodities ...Commodity) CommoditySet {
	s := CommoditySet{members: make(map[Commodity]struct{}, len(commodities))}
	for _, c := range commodities {
		s.members[c] = struct{}{}
	}
	return s
}

// Add inserts a commodity into the set.
func (s *CommoditySet) Add(c Commodity) {
	if s.members == nil {
		s.members = make(map[Commodity]struct{})
	}
	s.members[c] = struct{}{}
}

// Contains reports whether the set holds c.
func (s CommoditySet) Contains(c Commodity) bool {
	_, ok := s.members[c]
	return ok
}

// Len returns the number of distinct commodities in the set.
func (s CommoditySet) Len() int { return len(s.members) }

// Sorted returns the members in lexicographic order.
func (s CommoditySet) Sorted() []Commodity {
	out := make([]Commodity, 0, len(s.members))
	for c := range s.members {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Equal reports whether two sets contain the same commodities.
func (s CommoditySet) Equal(other CommoditySet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for c := range s.members {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}
