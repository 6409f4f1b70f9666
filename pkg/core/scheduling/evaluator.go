package scheduling

// Evaluate runs every rule for one candidate-shift pair and accumulates
// all rejections. No short-circuiting: the diagnostics surface a complete
// breakdown per candidate, so each rule is always consulted.
func Evaluate(rules []Rule, env *RuleEnv, emp *Employee, shift *Shift) EvaluationResult {
	var reasons []Reason
	for _, rule := range rules {
		reasons = append(reasons, rule.Check(env, emp, shift)...)
	}
	return EvaluationResult{Reasons: reasons}
}
