// Package decode turns a raw model string into ordered, resolved
// attributes. Parsing never fails on user input: partial strings are the
// normal state while someone is still typing, so the parser emits what it
// can and reports leftovers as notices.
package decode

import "strings"

// Segment is one hyphen-delimited chunk mapped to its grammar category.
type Segment struct {
	Category string
	Code     string
}

// ParseResult is the ordered segment list plus any trailing segments the
// grammar had no slot for.
type ParseResult struct {
	Segments []Segment
	Extras   []string
}

// dashes maps alternate dash glyphs users paste from documents onto the
// plain hyphen the grammar expects.
var dashes = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‐", "-", // unicode hyphen
)

// Normalize canonicalizes raw input: alternate dashes become hyphens, the
// string is uppercased and trimmed.
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(dashes.Replace(input)))
}

// Parse splits a normalized-on-entry raw string into ordered
// (category, code) pairs per the model-part and feature-part grammars.
//
// The first colon separates the model part from the feature part. Any
// later colon is kept as literal text in the feature part; its segment
// will simply resolve as an unknown code.
//
// Empty segments from doubled separators are dropped. Segments beyond the
// grammar's slots are returned in Extras rather than silently discarded.
func Parse(input string, modelGrammar, featureGrammar []string) ParseResult {
	input = Normalize(input)

	modelPart := input
	featurePart := ""
	if i := strings.Index(input, ":"); i >= 0 {
		modelPart, featurePart = input[:i], input[i+1:]
	}

	var res ParseResult
	mapPart(&res, modelPart, modelGrammar)
	mapPart(&res, featurePart, featureGrammar)
	return res
}

func mapPart(res *ParseResult, part string, grammar []string) {
	segs := splitSegments(part)
	for i, seg := range segs {
		if i < len(grammar) {
			res.Segments = append(res.Segments, Segment{Category: grammar[i], Code: seg})
		} else {
			res.Extras = append(res.Extras, seg)
		}
	}
}

func splitSegments(part string) []string {
	var segs []string
	for _, s := range strings.Split(part, "-") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
