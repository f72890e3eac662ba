package insights

import "strings"

// Classify maps a free-text category label to a spending class.
//
// Exact matches against the two vocabularies win. Failing that, we fall back
// to bidirectional substring containment: the label containing a vocabulary
// entry or a vocabulary entry containing the label. Discretionary entries are
// always checked before essential ones, so a label matching both sets
// resolves to Discretionary. No match in either phase yields Unknown.
//
// The substring fallback is deliberately fuzzy: short labels ("in", "gas")
// can match broadly. Keep the phase and set ordering stable so results stay
// reproducible.
func (a *Analyzer) Classify(categoryName string) Classification {
	label := normalize(categoryName)

	if _, ok := a.discretionaryExact[label]; ok {
		return Discretionary
	}
	if _, ok := a.essentialExact[label]; ok {
		return Essential
	}

	for _, entry := range a.discretionary {
		if strings.Contains(label, entry) || strings.Contains(entry, label) {
			return Discretionary
		}
	}
	for _, entry := range a.essential {
		if strings.Contains(label, entry) || strings.Contains(entry, label) {
			return Essential
		}
	}
	return Unknown
}
