// Package viz computes per-character rendering instructions for the
// monospace model-string visualization.
package viz

import "modelnum/internal/catalog"

// Mark is the rendering instruction for one character.
type Mark uint8

const (
	MarkPlain Mark = iota
	MarkHighlight
	MarkSeparator
)

// Render resolves each requested category to its character range, unions
// the resulting indices, and emits one mark per character of ref: a
// highlighted index wins, otherwise a literal hyphen or colon renders as a
// separator. Categories without a position entry, and range portions past
// the end of ref, are skipped without complaint so the mapper works over
// live input shorter than the canonical string.
func Render(positions catalog.PositionMap, categories []string, ref string) []Mark {
	highlight := make(map[int]struct{})
	for _, id := range categories {
		r, ok := positions[id]
		if !ok {
			continue
		}
		for i := max(r.Start, 0); i < min(r.End, len(ref)); i++ {
			highlight[i] = struct{}{}
		}
	}

	marks := make([]Mark, len(ref))
	for i := 0; i < len(ref); i++ {
		switch {
		case inSet(highlight, i):
			marks[i] = MarkHighlight
		case ref[i] == '-' || ref[i] == ':':
			marks[i] = MarkSeparator
		default:
			marks[i] = MarkPlain
		}
	}
	return marks
}

func inSet(set map[int]struct{}, i int) bool {
	_, ok := set[i]
	return ok
}
