package decode

import "modelnum/internal/catalog"

// Attribute is one decoded attribute row: the segment's category and raw
// code plus the resolved display fields. Description may later be extended
// by an enhancer.
type Attribute struct {
	Category    string
	Code        string
	Name        string
	Position    string
	Description string
}

// Resolve maps a (category, code) pair to its display record. It is a pure
// function over the catalog: unknown categories and unknown codes resolve
// to placeholder records, never errors, because mid-edit input routinely
// contains both.
func Resolve(cat *catalog.Catalog, categoryID, code string) Attribute {
	attr := Attribute{Category: categoryID, Code: code}

	c, ok := cat.Get(categoryID)
	if !ok {
		attr.Name = "Unknown"
		attr.Position = categoryID
		attr.Description = "Unknown category"
		return attr
	}

	attr.Name = c.Name
	attr.Position = c.Position
	if desc, ok := c.Describe(code); ok {
		attr.Description = desc
	} else {
		attr.Description = "Unknown code"
	}
	return attr
}

// ResolveAll resolves every parsed segment in order.
func ResolveAll(cat *catalog.Catalog, segments []Segment) []Attribute {
	attrs := make([]Attribute, 0, len(segments))
	for _, seg := range segments {
		attrs = append(attrs, Resolve(cat, seg.Category, seg.Code))
	}
	return attrs
}
