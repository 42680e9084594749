package pricing

import (
	"slices"
	"strings"
)

// Class is a canonical material class used for price inference.
type Class string

const (
	ClassFRPOrCarbon       Class = "FRP or Carbon"
	ClassFullCarbon        Class = "Full Carbon"
	ClassPartialCarbon     Class = "Partial Carbon"
	ClassSingleSidedCarbon Class = "Single-sided Carbon"
	ClassDoubleSidedCarbon Class = "Double-sided Carbon"
	ClassOther             Class = "Other"
)

// canonicalOrder fixes iteration order for the classes the default table knows about.
var canonicalOrder = []Class{
	ClassFRPOrCarbon,
	ClassFullCarbon,
	ClassPartialCarbon,
	ClassSingleSidedCarbon,
	ClassDoubleSidedCarbon,
}

// Classifier maps raw material short codes to canonical classes.
type Classifier struct {
	table   map[string]Class
	classes []Class
}

// NewClassifier builds a classifier over a raw code -> class table. The table is copied.
func NewClassifier(table map[string]Class) *Classifier {
	c := &Classifier{table: make(map[string]Class, len(table))}
	seen := make(map[Class]bool)
	for code, class := range table {
		c.table[strings.TrimSpace(code)] = class
		seen[class] = true
	}

	for _, class := range canonicalOrder {
		if seen[class] {
			c.classes = append(c.classes, class)
			delete(seen, class)
		}
	}
	c.classes = append(c.classes, sortedClasses(seen)...)
	return c
}

// Classify returns the canonical class for a raw material code. Unknown or empty
// codes map to ClassOther.
func (c *Classifier) Classify(raw string) Class {
	code := strings.TrimSpace(raw)
	if code == "" {
		return ClassOther
	}
	if class, ok := c.table[code]; ok {
		return class
	}
	return ClassOther
}

// Classes lists every class the table can produce, canonical classes first.
func (c *Classifier) Classes() []Class {
	out := make([]Class, len(c.classes))
	copy(out, c.classes)
	return out
}

func sortedClasses(set map[Class]bool) []Class {
	out := make([]Class, 0, len(set))
	for class := range set {
		out = append(out, class)
	}
	slices.Sort(out)
	return out
}
