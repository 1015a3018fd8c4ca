package service

import "swim-shop-api/internal/utils"

// SourceGuard limits who may post payment notifications.
type SourceGuard struct {
	Rules []string
}

func NewSourceGuard(rules []string) *SourceGuard {
	return &SourceGuard{Rules: rules}
}

// Enabled is false when no rules are configured; every source is then accepted.
func (s *SourceGuard) Enabled() bool {
	return len(s.Rules) > 0
}

// Allowed matches a single IP, CIDR or trailing '*' rule.
func (s *SourceGuard) Allowed(ip string) bool {
	if !s.Enabled() {
		return true
	}
	if ip == "" {
		return false
	}
	return utils.MatchAnyIPRule(ip, s.Rules)
}
