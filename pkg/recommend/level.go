package recommend

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAbvLevel = errors.New("invalid abv level")
	ErrInvalidAbv      = errors.New("invalid abv")
)

// AbvLevel buckets cocktails by strength. Only levels 0 to 4 are defined.
type AbvLevel int

const (
	AbvLevelLight AbvLevel = iota
	AbvLevelMild
	AbvLevelMedium
	AbvLevelStrong
	AbvLevelVeryStrong
)

// AbvRange is an inclusive percent range.
type AbvRange struct {
	Min, Max int
}

func (r AbvRange) Contains(abv int) bool {
	return r.Min <= abv && abv <= r.Max
}

var abvRanges = [...]AbvRange{
	AbvLevelLight:      {Min: 0, Max: 10},
	AbvLevelMild:       {Min: 11, Max: 20},
	AbvLevelMedium:     {Min: 21, Max: 30},
	AbvLevelStrong:     {Min: 31, Max: 40},
	AbvLevelVeryStrong: {Min: 41, Max: 100},
}

func (l AbvLevel) Valid() bool {
	return l >= AbvLevelLight && l <= AbvLevelVeryStrong
}

// RangeFor returns the abv range of a level, or ErrInvalidAbvLevel.
func RangeFor(level AbvLevel) (AbvRange, error) {
	if !level.Valid() {
		return AbvRange{}, fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidAbvLevel, level, AbvLevelLight, AbvLevelVeryStrong)
	}

	return abvRanges[level], nil
}

// LevelOf maps an abv percentage back to its level.
func LevelOf(abv int) (AbvLevel, error) {
	for level, abvRange := range abvRanges {
		if abvRange.Contains(abv) {
			return AbvLevel(level), nil
		}
	}

	return 0, fmt.Errorf("%w: %d is outside 0-100", ErrInvalidAbv, abv)
}
