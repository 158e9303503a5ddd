package rules

import "github.com/oasguard/oasguard/walker"

// Builtins returns every built-in rule keyed by its rule id, the set a
// config.Config's Rules map selects from and the walker.Rule slice a
// Walker is ultimately constructed with.
func Builtins() map[string]*walker.Rule {
	rules := []*walker.Rule{
		NewSpecRule(),
		NewNoUnresolvedRefsRule(),
		NewOperation2xxResponseRule(),
		NewOperation4xxResponseRule(),
		NewOperationOperationIDRule(),
		NewOperationSummaryRule(),
		NewTagDescriptionRule(),
		NewNoAmbiguousPathsRule(),
		NewNoIdenticalPathsRule(),
		NewPathParamsDefinedRule(),
		NewBooleanParameterPrefixesRule(),
		NewNoEnumTypeMismatchRule(),
	}
	out := make(map[string]*walker.Rule, len(rules))
	for _, r := range rules {
		out[r.ID] = r
	}
	return out
}
