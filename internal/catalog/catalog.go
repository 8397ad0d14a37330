// Package catalog holds the static configuration for one model type: the
// code catalog, position map, segment grammar, dependency rules, and
// supplemental capacity data. Everything here is immutable after load.
package catalog

import "fmt"

// CodeEntry is one code token and its human-readable description.
// Entries keep the order they were declared in, which is also the order
// reverse search reports them in.
type CodeEntry struct {
	Code        string
	Description string
}

// Category is a named attribute slot in a model string.
type Category struct {
	ID       string
	Name     string
	Position string
	Group    string
	Codes    []CodeEntry

	byCode map[string]int
}

// Describe returns the description for a code, if the category defines it.
func (c *Category) Describe(code string) (string, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return "", false
	}
	return c.Codes[i].Description, true
}

// Catalog is the full set of categories for one model type, in document
// order.
type Catalog struct {
	order []*Category
	byID  map[string]*Category
}

// NewCatalog builds a catalog, rejecting duplicate category IDs and
// duplicate codes within a category.
func NewCatalog(categories []*Category) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Category, len(categories))}
	for _, cat := range categories {
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		cat.byCode = make(map[string]int, len(cat.Codes))
		for i, ce := range cat.Codes {
			if _, dup := cat.byCode[ce.Code]; dup {
				return nil, fmt.Errorf("category %q: duplicate code %q", cat.ID, ce.Code)
			}
			cat.byCode[ce.Code] = i
		}
		c.byID[cat.ID] = cat
		c.order = append(c.order, cat)
	}
	return c, nil
}

// Get looks up a category by ID.
func (c *Catalog) Get(id string) (*Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// Has reports whether the catalog defines the category.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Categories returns all categories in document order. Callers must not
// mutate the returned slice.
func (c *Catalog) Categories() []*Category { return c.order }

// Range is a half-open character range [Start, End) into the
// separator-inclusive canonical string. Overlaps lists the category IDs
// this range is deliberately allowed to overlap with; any other overlap is
// a configuration error.
type Range struct {
	Start    int
	End      int
	Overlaps []string
}

// PositionMap associates category IDs with their character ranges.
type PositionMap map[string]Range

// NavEntry is one row of the navigation structure. It is a rendering aid
// only; the engine never consumes it beyond ordering.
type NavEntry struct {
	Category string
	Name     string
	Indent   bool
}

// RuleKind distinguishes the three dependency-rule behaviors.
type RuleKind string

const (
	// RuleRestriction warns when the affected category's code falls
	// outside the valid set while the condition holds.
	RuleRestriction RuleKind = "restriction"
	// RuleInformational emits a note whenever the condition holds,
	// regardless of the affected code.
	RuleInformational RuleKind = "info"
	// RuleEnablement marks a feature-activation relationship: it hints
	// that an option became available while the affected category is
	// still unset, and validates like a restriction once it is set.
	RuleEnablement RuleKind = "enables"
)

// Condition is a category plus the set of codes that trigger it.
type Condition struct {
	Category string
	Codes    []string
}

// Rule is one dependency rule. AndWhen, when present, must hold together
// with When for the rule to fire.
type Rule struct {
	Kind    RuleKind
	When    Condition
	AndWhen *Condition
	Affects string
	Valid   []string
	Message string
	Hint    string
}

// CapacityRecord is the structured numeric record behind one capacity
// code.
type CapacityRecord struct {
	KW  float64
	BTU int
}

// EnhancerSpec configures one capacity enhancer instance. Classifier names
// the category whose code decides electric/gas/none via the enumerated
// code sets; Writes names the capacity-code category whose description
// receives the derived suffix. Table is keyed by that category's codes.
type EnhancerSpec struct {
	Name          string
	Reads         []string
	Writes        string
	Classifier    string
	ElectricCodes []string
	GasCodes      []string
	Table         map[string]CapacityRecord
}

// ModelType is the complete configuration set for one model type. One
// ModelType is active at a time; switching swaps the whole value.
type ModelType struct {
	ID             string
	Name           string
	Reference      string
	Catalog        *Catalog
	Positions      PositionMap
	Navigation     []NavEntry
	ModelGrammar   []string
	FeatureGrammar []string
	Rules          []Rule
	Enhancers      []EnhancerSpec
}
