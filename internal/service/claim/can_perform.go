package claim

import "github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"

// CanPerform reports whether role may perform action on c. It never fails.
func (s *Service) CanPerform(role domain.Role, action domain.ActionKind, c *domain.Claim) bool {
	return s.gate.Authorize(role, action, c)
}

// PermittedActions lists what role may do with c right now.
func (s *Service) PermittedActions(role domain.Role, c *domain.Claim) []domain.ActionKind {
	return s.gate.Permitted(role, c)
}
