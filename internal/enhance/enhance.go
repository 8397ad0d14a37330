// Package enhance post-processes resolved attributes, appending derived
// data to their descriptions. Enhancers are declared as descriptors and
// run in declaration order, so a later enhancer may read text an earlier
// one produced.
package enhance

import (
	"fmt"
	"slices"
	"strings"

	"modelnum/internal/catalog"
	"modelnum/internal/decode"
)

// DeriveFunc computes a description suffix from the codes of the
// categories the descriptor declares in Reads. Returning ok=false means
// nothing to append.
type DeriveFunc func(codes map[string]string) (suffix string, ok bool)

// Descriptor declares one enhancer: the categories it reads, the single
// category whose description it extends, and the derivation.
type Descriptor struct {
	Name   string
	Reads  []string
	Writes string
	Derive DeriveFunc
}

// Apply runs the descriptors in order, mutating attrs in place. A suffix
// already present at the end of the target description is not appended
// again, so applying twice equals applying once.
func Apply(attrs []decode.Attribute, descs []Descriptor) {
	for _, d := range descs {
		codes := make(map[string]string, len(d.Reads))
		for _, attr := range attrs {
			if slices.Contains(d.Reads, attr.Category) {
				codes[attr.Category] = attr.Code
			}
		}
		suffix, ok := d.Derive(codes)
		if !ok || suffix == "" {
			continue
		}
		for i := range attrs {
			if attrs[i].Category != d.Writes {
				continue
			}
			if !strings.HasSuffix(attrs[i].Description, suffix) {
				attrs[i].Description += suffix
			}
			break
		}
	}
}

// Capacity builds the capacity enhancer from its configuration. The
// classifier category's code decides the heating class by enumerated set
// membership; the capacity table is keyed by the written category's code.
func Capacity(spec catalog.EnhancerSpec) Descriptor {
	return Descriptor{
		Name:   spec.Name,
		Reads:  spec.Reads,
		Writes: spec.Writes,
		Derive: func(codes map[string]string) (string, bool) {
			class := classify(codes[spec.Classifier], spec)
			if class == classNone {
				return "", false
			}
			rec, ok := spec.Table[codes[spec.Writes]]
			if !ok {
				return "", false
			}
			switch class {
			case classElectric:
				return fmt.Sprintf(" (%.1f kW)", rec.KW), true
			case classGas:
				return fmt.Sprintf(" (%d BTU/h)", rec.BTU), true
			}
			return "", false
		},
	}
}

// FromSpecs builds the model type's declared enhancer list in declaration
// order.
func FromSpecs(specs []catalog.EnhancerSpec) []Descriptor {
	descs := make([]Descriptor, 0, len(specs))
	for _, spec := range specs {
		descs = append(descs, Capacity(spec))
	}
	return descs
}

type heatingClass int

const (
	classNone heatingClass = iota
	classElectric
	classGas
)

func classify(code string, spec catalog.EnhancerSpec) heatingClass {
	switch {
	case slices.Contains(spec.ElectricCodes, code):
		return classElectric
	case slices.Contains(spec.GasCodes, code):
		return classGas
	default:
		return classNone
	}
}
