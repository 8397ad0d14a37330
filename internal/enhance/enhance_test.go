package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelnum/internal/catalog"
	"modelnum/internal/decode"
)

func capacitySpec() catalog.EnhancerSpec {
	return catalog.EnhancerSpec{
		Name:          "capacity",
		Reads:         []string{"fuel", "size"},
		Writes:        "size",
		Classifier:    "fuel",
		ElectricCodes: []string{"EL"},
		GasCodes:      []string{"NG", "LP"},
		Table: map[string]catalog.CapacityRecord{
			"040": {KW: 4.5, BTU: 40000},
		},
	}
}

func gasAttrs() []decode.Attribute {
	return []decode.Attribute{
		{Category: "size", Code: "040", Description: "40 gallons"},
		{Category: "fuel", Code: "NG", Description: "Natural gas"},
	}
}

func TestCapacityAppendsGasSuffix(t *testing.T) {
	attrs := gasAttrs()
	Apply(attrs, []Descriptor{Capacity(capacitySpec())})

	assert.Equal(t, "40 gallons (40000 BTU/h)", attrs[0].Description)
	assert.Equal(t, "Natural gas", attrs[1].Description, "only the written category changes")
}

func TestCapacityAppendsElectricSuffix(t *testing.T) {
	attrs := gasAttrs()
	attrs[1].Code = "EL"
	Apply(attrs, []Descriptor{Capacity(capacitySpec())})

	assert.Equal(t, "40 gallons (4.5 kW)", attrs[0].Description)
}

func TestCapacityIsIdempotent(t *testing.T) {
	attrs := gasAttrs()
	descs := []Descriptor{Capacity(capacitySpec())}

	Apply(attrs, descs)
	once := attrs[0].Description
	Apply(attrs, descs)

	assert.Equal(t, once, attrs[0].Description, "second run must not double-append")
}

func TestCapacitySkipsUnclassifiedCode(t *testing.T) {
	attrs := gasAttrs()
	attrs[1].Code = "??"
	Apply(attrs, []Descriptor{Capacity(capacitySpec())})

	assert.Equal(t, "40 gallons", attrs[0].Description)
}

func TestCapacitySkipsMissingTableEntry(t *testing.T) {
	attrs := gasAttrs()
	attrs[0].Code = "999"
	Apply(attrs, []Descriptor{Capacity(capacitySpec())})

	assert.Equal(t, "40 gallons", attrs[0].Description)
}

func TestCapacitySkipsAbsentClassifierCategory(t *testing.T) {
	attrs := gasAttrs()[:1]
	Apply(attrs, []Descriptor{Capacity(capacitySpec())})

	assert.Equal(t, "40 gallons", attrs[0].Description)
}

func TestApplyRunsInDeclarationOrder(t *testing.T) {
	attrs := []decode.Attribute{{Category: "a", Code: "x", Description: "base"}}

	first := Descriptor{
		Name: "first", Reads: []string{"a"}, Writes: "a",
		Derive: func(codes map[string]string) (string, bool) { return " one", true },
	}
	second := Descriptor{
		Name: "second", Reads: []string{"a"}, Writes: "a",
		Derive: func(codes map[string]string) (string, bool) { return " two", true },
	}

	Apply(attrs, []Descriptor{first, second})
	require.Equal(t, "base one two", attrs[0].Description)
}

func TestApplyOnlyPassesDeclaredReads(t *testing.T) {
	attrs := []decode.Attribute{
		{Category: "a", Code: "x"},
		{Category: "b", Code: "y"},
	}
	var seen map[string]string
	Apply(attrs, []Descriptor{{
		Name: "probe", Reads: []string{"a"}, Writes: "a",
		Derive: func(codes map[string]string) (string, bool) {
			seen = codes
			return "", false
		},
	}})

	assert.Equal(t, map[string]string{"a": "x"}, seen)
}
