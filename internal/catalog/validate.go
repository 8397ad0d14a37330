package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Validate cross-checks a model type's configuration: position-map keys
// against the catalog, ranges against the reference string, grammar and
// rule and enhancer references against the catalog, and range overlaps
// against the documented allowances. Malformed configuration fails loudly
// here so that runtime decoding never has to.
func Validate(mt *ModelType) error {
	var errs []error

	for id, r := range mt.Positions {
		if !mt.Catalog.Has(id) {
			errs = append(errs, fmt.Errorf("position map references unknown category %q", id))
		}
		if r.Start < 0 || r.End <= r.Start {
			errs = append(errs, fmt.Errorf("category %q: invalid range [%d,%d)", id, r.Start, r.End))
		} else if r.End > len(mt.Reference) {
			errs = append(errs, fmt.Errorf("category %q: range [%d,%d) exceeds reference string length %d",
				id, r.Start, r.End, len(mt.Reference)))
		}
	}

	errs = append(errs, overlapErrors(mt.Positions)...)
	errs = append(errs, grammarErrors(mt, "model grammar", mt.ModelGrammar)...)
	errs = append(errs, grammarErrors(mt, "feature grammar", mt.FeatureGrammar)...)

	for i, rule := range mt.Rules {
		for _, id := range ruleCategories(rule) {
			if !mt.Catalog.Has(id) {
				errs = append(errs, fmt.Errorf("rule %d references unknown category %q", i, id))
			}
		}
		switch rule.Kind {
		case RuleRestriction, RuleInformational, RuleEnablement:
		default:
			errs = append(errs, fmt.Errorf("rule %d: unknown kind %q", i, rule.Kind))
		}
	}

	for _, es := range mt.Enhancers {
		for _, id := range es.Reads {
			if !mt.Catalog.Has(id) {
				errs = append(errs, fmt.Errorf("enhancer %q reads unknown category %q", es.Name, id))
			}
		}
		if !mt.Catalog.Has(es.Writes) {
			errs = append(errs, fmt.Errorf("enhancer %q writes unknown category %q", es.Name, es.Writes))
		}
		if es.Classifier != "" && !mt.Catalog.Has(es.Classifier) {
			errs = append(errs, fmt.Errorf("enhancer %q classifies on unknown category %q", es.Name, es.Classifier))
		}
	}

	for _, nav := range mt.Navigation {
		if !mt.Catalog.Has(nav.Category) {
			errs = append(errs, fmt.Errorf("navigation references unknown category %q", nav.Category))
		}
	}

	return errors.Join(errs...)
}

// overlapErrors reports every pair of ranges that overlap without both
// sides documenting the overlap.
func overlapErrors(pm PositionMap) []error {
	ids := make([]string, 0, len(pm))
	for id := range pm {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var errs []error
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			ra, rb := pm[a], pm[b]
			if ra.Start >= rb.End || rb.Start >= ra.End {
				continue
			}
			if slices.Contains(ra.Overlaps, b) && slices.Contains(rb.Overlaps, a) {
				continue
			}
			errs = append(errs, fmt.Errorf("undocumented position overlap between %q [%d,%d) and %q [%d,%d)",
				a, ra.Start, ra.End, b, rb.Start, rb.End))
		}
	}
	return errs
}

// grammarErrors checks that every grammar slot names a catalog category
// with a position entry, and that slots appear left to right in the
// reference string. Parse order and index arithmetic must agree or the
// visualization lies.
func grammarErrors(mt *ModelType, label string, grammar []string) []error {
	var errs []error
	prev := -1
	for i, id := range grammar {
		if !mt.Catalog.Has(id) {
			errs = append(errs, fmt.Errorf("%s slot %d references unknown category %q", label, i, id))
			continue
		}
		r, ok := mt.Positions[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%s slot %d: category %q has no position entry", label, i, id))
			continue
		}
		if r.Start <= prev {
			errs = append(errs, fmt.Errorf("%s slot %d: category %q at offset %d is out of order", label, i, id, r.Start))
		}
		prev = r.Start
	}
	return errs
}

func ruleCategories(r Rule) []string {
	ids := []string{r.When.Category, r.Affects}
	if r.AndWhen != nil {
		ids = append(ids, r.AndWhen.Category)
	}
	return ids
}
