// Package layout maps a layout selector onto the responsive column tiers the
// preview uses. Each tier is the column count from that breakpoint upward.
package layout

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Grid describes column counts per breakpoint. A zero tier inherits the
// narrower one.
type Grid struct {
	Base int `json:"base"`
	MD   int `json:"md,omitempty"`
	LG   int `json:"lg,omitempty"`
	XL   int `json:"xl,omitempty"`
}

// Resolve returns the grid for the selector. "responsive" and unknown
// selectors resolve like "3".
func Resolve(selector model.Layout) Grid {
	switch selector {
	case model.LayoutOneColumn:
		return Grid{Base: 1}
	case model.LayoutTwoColumns:
		return Grid{Base: 1, MD: 2}
	case model.LayoutFourColumns:
		return Grid{Base: 1, MD: 2, LG: 3, XL: 4}
	default:
		return Grid{Base: 1, MD: 2, LG: 3}
	}
}

// Columns returns the widest column count the grid reaches.
func (g Grid) Columns() int {
	widest := g.Base
	for _, n := range []int{g.MD, g.LG, g.XL} {
		if n > widest {
			widest = n
		}
	}
	return widest
}

// Class renders the grid as utility classes, e.g.
// "grid-cols-1 md:grid-cols-2 lg:grid-cols-3".
func (g Grid) Class() string {
	base := g.Base
	if base <= 0 {
		base = 1
	}
	parts := []string{fmt.Sprintf("grid-cols-%d", base)}
	for _, tier := range []struct {
		prefix string
		cols   int
	}{{"md", g.MD}, {"lg", g.LG}, {"xl", g.XL}} {
		if tier.cols > 0 {
			parts = append(parts, fmt.Sprintf("%s:grid-cols-%d", tier.prefix, tier.cols))
		}
	}
	return strings.Join(parts, " ")
}

// GridClass is shorthand for Resolve(selector).Class().
func GridClass(selector model.Layout) string {
	return Resolve(selector).Class()
}
