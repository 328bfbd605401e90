package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a display-friendly percentage string such as "10%". It is stored
// and served verbatim; Fraction parses it once where arithmetic is needed.
type Percent string

// Fraction returns the percentage as a fraction of one, so "10%" yields 0.1.
// A missing "%" suffix is tolerated.
func (p Percent) Fraction() (float64, error) {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(string(p)), "%"))
	if raw == "" {
		return 0, fmt.Errorf("empty percent value %q", string(p))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent value %q: %w", string(p), err)
	}
	return v / 100, nil
}

func (p Percent) String() string {
	return string(p)
}
