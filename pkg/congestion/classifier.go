// Package congestion maps raw vehicle counts to ordinal congestion bands.
package congestion

import (
	"fmt"

	"github.com/lintang-b-s/congestion-router/pkg"
)

type Band uint8

const (
	LOOSE Band = iota
	MODERATE
	CONGESTED
)

var bandNames = [...]string{
	LOOSE:     "Loose",
	MODERATE:  "Moderate",
	CONGESTED: "Congested",
}

// Classify. count < 2 is Loose, 2 <= count < 5 is Moderate, count >= 5 is Congested.
func Classify(count int) Band {
	switch {
	case count < pkg.MODERATE_CONGESTION_MIN:
		return LOOSE
	case count < pkg.HEAVY_CONGESTION_MIN:
		return MODERATE
	default:
		return CONGESTED
	}
}

func (b Band) String() string {
	if int(b) < len(bandNames) {
		return bandNames[b]
	}
	return fmt.Sprintf("Band(%d)", uint8(b))
}

func (b Band) MarshalText() ([]byte, error) {
	if int(b) >= len(bandNames) {
		return nil, fmt.Errorf("invalid congestion band %d", uint8(b))
	}
	return []byte(bandNames[b]), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func ParseBand(s string) (Band, error) {
	for i, name := range bandNames {
		if name == s {
			return Band(i), nil
		}
	}
	return LOOSE, fmt.Errorf("unknown congestion band %q", s)
}
