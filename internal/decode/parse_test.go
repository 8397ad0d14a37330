package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	modelGrammar   = []string{"gen", "size", "voltage", "interprot"}
	featureGrammar = []string{"element", "thermo"}
)

func TestParseMapsSegmentsInOrder(t *testing.T) {
	res := Parse("RN-025-3-0", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 4)
	assert.Empty(t, res.Extras)
	assert.Equal(t, []Segment{
		{Category: "gen", Code: "RN"},
		{Category: "size", Code: "025"},
		{Category: "voltage", Code: "3"},
		{Category: "interprot", Code: "0"},
	}, res.Segments)
}

func TestParsePartialInputIsNotAnError(t *testing.T) {
	res := Parse("RN-02", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 2)
	assert.Equal(t, "gen", res.Segments[0].Category)
	assert.Equal(t, "size", res.Segments[1].Category)
	assert.Equal(t, "02", res.Segments[1].Code)
	assert.Empty(t, res.Extras)
}

func TestParseExtraSegmentsAreSurfaced(t *testing.T) {
	res := Parse("RN-025-3-0-9-Z", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 4)
	assert.Equal(t, []string{"9", "Z"}, res.Extras)
}

func TestParseColonSplitsModelAndFeaturePart(t *testing.T) {
	res := Parse("RN-025-3-0:1-2", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 6)
	assert.Equal(t, Segment{Category: "element", Code: "1"}, res.Segments[4])
	assert.Equal(t, Segment{Category: "thermo", Code: "2"}, res.Segments[5])
}

func TestParseSecondColonStaysInFeaturePart(t *testing.T) {
	// Only the first colon splits; the rest is literal feature text.
	res := Parse("RN:1-2:X", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 3)
	assert.Equal(t, Segment{Category: "thermo", Code: "2:X"}, res.Segments[2])
}

func TestParseDropsEmptySegments(t *testing.T) {
	res := Parse("RN--025---3", modelGrammar, featureGrammar)

	require.Len(t, res.Segments, 3)
	assert.Equal(t, "025", res.Segments[1].Code)
	assert.Equal(t, "3", res.Segments[2].Code)
	assert.Empty(t, res.Extras)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "RN-025", Normalize("  rn–025 "))
	assert.Equal(t, "RN-025", Normalize("rn—025"))
	assert.Equal(t, "A-B", Normalize("a‐b"))
	assert.Equal(t, "", Normalize("   "))
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("", modelGrammar, featureGrammar)
	assert.Empty(t, res.Segments)
	assert.Empty(t, res.Extras)
}
