package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
)

// Heuristic names a distance estimate between two positions.
type Heuristic string

const (
	// Manhattan is |dr| + |dc|; admissible on a 4-connected grid with weights >= 1.
	Manhattan Heuristic = "manhattan"
	// Euclidean is sqrt(dr² + dc²).
	Euclidean Heuristic = "euclidean"
	// Chebyshev is max(|dr|, |dc|).
	Chebyshev Heuristic = "chebyshev"
)

// Heuristics lists the supported heuristics; Manhattan is the default.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Euclidean, Chebyshev}
}

// ParseHeuristic maps a name to a Heuristic. The empty string yields Manhattan.
func ParseHeuristic(s string) (Heuristic, error) {
	h := Heuristic(strings.ToLower(strings.TrimSpace(s)))
	if h == "" {
		return Manhattan, nil
	}
	if !h.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
	return h, nil
}

func (h Heuristic) valid() bool {
	switch h {
	case Manhattan, Euclidean, Chebyshev:
		return true
	}
	return false
}

// Distance returns the estimate between a and b. Unknown heuristics fall
// back to Manhattan.
func (h Heuristic) Distance(a, b grid.Pos) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	switch h {
	case Euclidean:
		return math.Sqrt(dr*dr + dc*dc)
	case Chebyshev:
		return math.Max(dr, dc)
	default:
		return dr + dc
	}
}
