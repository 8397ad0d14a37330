// Package validate evaluates a model type's dependency rules against a
// decoded attribute list and reports warnings and notes in rule
// declaration order.
package validate

import (
	"slices"

	"modelnum/internal/catalog"
	"modelnum/internal/decode"
)

// Severity classifies a validator finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Warning is one validator finding. Categories names the condition and
// affected categories so the presentation layer can highlight both.
type Warning struct {
	Severity   Severity
	Message    string
	Hint       string
	Categories []string
}

// Evaluate runs every rule in order against the attribute list.
//
// The attribute list is reduced to a category to code map, last write
// wins if a category somehow appears twice. A rule whose condition does
// not hold produces nothing. A rule referencing a category the catalog
// does not define is skipped silently; the load-time validation pass is
// where such rules get reported.
//
// An absent affected category never warns: an incomplete answer is not a
// wrong answer. Enablement rules instead surface the absence as an
// informational note that the option has become available.
func Evaluate(cat *catalog.Catalog, rules []catalog.Rule, attrs []decode.Attribute) []Warning {
	codes := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		codes[attr.Category] = attr.Code
	}

	var out []Warning
	for _, rule := range rules {
		if !referencesKnown(cat, rule) {
			continue
		}
		if !matches(rule.When, codes) {
			continue
		}
		if rule.AndWhen != nil && !matches(*rule.AndWhen, codes) {
			continue
		}

		switch rule.Kind {
		case catalog.RuleInformational:
			out = append(out, finding(SeverityInfo, rule))

		case catalog.RuleRestriction:
			code, present := codes[rule.Affects]
			if present && !slices.Contains(rule.Valid, code) {
				out = append(out, finding(SeverityWarning, rule))
			}

		case catalog.RuleEnablement:
			// Activation, not restriction: hint while the affected
			// category is still unset, stay quiet once it is chosen.
			if _, present := codes[rule.Affects]; !present {
				out = append(out, finding(SeverityInfo, rule))
			}
		}
	}
	return out
}

func matches(c catalog.Condition, codes map[string]string) bool {
	code, ok := codes[c.Category]
	return ok && slices.Contains(c.Codes, code)
}

func referencesKnown(cat *catalog.Catalog, rule catalog.Rule) bool {
	if cat == nil {
		return true
	}
	if !cat.Has(rule.When.Category) || !cat.Has(rule.Affects) {
		return false
	}
	if rule.AndWhen != nil && !cat.Has(rule.AndWhen.Category) {
		return false
	}
	return true
}

func finding(sev Severity, rule catalog.Rule) Warning {
	return Warning{
		Severity:   sev,
		Message:    rule.Message,
		Hint:       rule.Hint,
		Categories: []string{rule.When.Category, rule.Affects},
	}
}
