package landing

import (
	"fmt"
	"strconv"

	"github.com/flashcode/flashweb/internal/domain"
)

// ToggleRequest is the accordion toggle of one FAQ entry.
type ToggleRequest struct {
	Index int `param:"index"`
}

// ScrollRequest carries window.scrollY.
type ScrollRequest struct {
	Offset string `form:"offset" validate:"required,numeric"`
}

// RevealRequest reports the intersection of a reveal block. A missing ratio
// counts as fully visible.
type RevealRequest struct {
	Section string `param:"section" validate:"required"`
	Ratio   string `form:"ratio" validate:"omitempty,numeric"`
}

// OffsetValue parses Offset.
func (r ScrollRequest) OffsetValue() (float64, error) {
	return parseFloat("offset", r.Offset)
}

// RatioValue parses Ratio, defaulting to 1.
func (r RevealRequest) RatioValue() (float64, error) {
	if r.Ratio == "" {
		return 1, nil
	}
	return parseFloat("ratio", r.Ratio)
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidParameter, name, raw)
	}
	return v, nil
}
