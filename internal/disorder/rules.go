package disorder

// Rule is one independent threshold check. Rules never see each other's
// results.
type Rule interface {
	Label() Label
	Matches(in *Input) bool
}

// DefaultRules returns the rule table in declaration order.
func DefaultRules() []Rule {
	return []Rule{
		&InsomniaRule{},
		&SleepAnxietyRule{},
		&ApneaRule{},
		&HypertensionRule{},
		&RestlessLegRule{},
		&NarcolepsyRule{},
	}
}

// Evaluate runs every rule and returns the labels of all that match, in
// rule order. When nothing matches the result is the general label alone.
func Evaluate(rules []Rule, in *Input) []Label {
	var labels []Label
	for _, r := range rules {
		if r.Matches(in) {
			labels = append(labels, r.Label())
		}
	}
	if len(labels) == 0 {
		return []Label{LabelGeneralSleepDisorder}
	}
	return labels
}
