package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type fileSchema struct {
	ID             string                 `yaml:"id"`
	Name           string                 `yaml:"name"`
	Reference      string                 `yaml:"reference"`
	ModelGrammar   []string               `yaml:"model_grammar"`
	FeatureGrammar []string               `yaml:"feature_grammar"`
	Categories     []categorySchema       `yaml:"categories"`
	Positions      map[string]rangeSchema `yaml:"positions"`
	Navigation     []navSchema            `yaml:"navigation"`
	Rules          []ruleSchema           `yaml:"rules"`
	Enhancers      []enhancerSchema       `yaml:"enhancers"`
}

type categorySchema struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Position string       `yaml:"position"`
	Group    string       `yaml:"group"`
	Codes    []codeSchema `yaml:"codes"`
}

type codeSchema struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

type rangeSchema struct {
	Start    int      `yaml:"start"`
	End      int      `yaml:"end"`
	Overlaps []string `yaml:"overlaps"`
}

type navSchema struct {
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	Indent   bool   `yaml:"indent"`
}

type conditionSchema struct {
	Category string   `yaml:"category"`
	Codes    []string `yaml:"codes"`
}

type ruleSchema struct {
	Kind    string           `yaml:"kind"`
	When    conditionSchema  `yaml:"when"`
	AndWhen *conditionSchema `yaml:"and_when"`
	Affects string           `yaml:"affects"`
	Valid   []string         `yaml:"valid"`
	Message string           `yaml:"message"`
	Hint    string           `yaml:"hint"`
}

type enhancerSchema struct {
	Name          string                    `yaml:"name"`
	Reads         []string                  `yaml:"reads"`
	Writes        string                    `yaml:"writes"`
	Classifier    string                    `yaml:"classifier"`
	ElectricCodes []string                  `yaml:"electric_codes"`
	GasCodes      []string                  `yaml:"gas_codes"`
	Table         map[string]capacitySchema `yaml:"table"`
}

type capacitySchema struct {
	KW  float64 `yaml:"kw"`
	BTU int     `yaml:"btu"`
}

// Load parses one model type from YAML and validates it. A failed
// validation is a configuration-authoring error and is reported in full,
// not truncated to the first finding.
func Load(data []byte) (*ModelType, error) {
	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse model type config: %w", err)
	}
	if fs.ID == "" {
		return nil, fmt.Errorf("model type config: missing id")
	}

	cats := make([]*Category, 0, len(fs.Categories))
	for _, cs := range fs.Categories {
		cat := &Category{
			ID:       cs.ID,
			Name:     cs.Name,
			Position: cs.Position,
			Group:    cs.Group,
		}
		for _, code := range cs.Codes {
			cat.Codes = append(cat.Codes, CodeEntry{Code: code.Code, Description: code.Description})
		}
		cats = append(cats, cat)
	}
	cat, err := NewCatalog(cats)
	if err != nil {
		return nil, fmt.Errorf("model type %q: %w", fs.ID, err)
	}

	mt := &ModelType{
		ID:             fs.ID,
		Name:           fs.Name,
		Reference:      fs.Reference,
		Catalog:        cat,
		Positions:      make(PositionMap, len(fs.Positions)),
		ModelGrammar:   fs.ModelGrammar,
		FeatureGrammar: fs.FeatureGrammar,
	}
	for id, rs := range fs.Positions {
		mt.Positions[id] = Range{Start: rs.Start, End: rs.End, Overlaps: rs.Overlaps}
	}
	for _, ns := range fs.Navigation {
		mt.Navigation = append(mt.Navigation, NavEntry{Category: ns.Category, Name: ns.Name, Indent: ns.Indent})
	}
	for _, rs := range fs.Rules {
		r := Rule{
			Kind:    RuleKind(rs.Kind),
			When:    Condition{Category: rs.When.Category, Codes: rs.When.Codes},
			Affects: rs.Affects,
			Valid:   rs.Valid,
			Message: rs.Message,
			Hint:    rs.Hint,
		}
		if rs.AndWhen != nil {
			r.AndWhen = &Condition{Category: rs.AndWhen.Category, Codes: rs.AndWhen.Codes}
		}
		mt.Rules = append(mt.Rules, r)
	}
	for _, es := range fs.Enhancers {
		spec := EnhancerSpec{
			Name:          es.Name,
			Reads:         es.Reads,
			Writes:        es.Writes,
			Classifier:    es.Classifier,
			ElectricCodes: es.ElectricCodes,
			GasCodes:      es.GasCodes,
			Table:         make(map[string]CapacityRecord, len(es.Table)),
		}
		for code, rec := range es.Table {
			spec.Table[code] = CapacityRecord{KW: rec.KW, BTU: rec.BTU}
		}
		mt.Enhancers = append(mt.Enhancers, spec)
	}

	if err := Validate(mt); err != nil {
		return nil, fmt.Errorf("model type %q: %w", fs.ID, err)
	}
	return mt, nil
}
