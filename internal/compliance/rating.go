package compliance

import (
	"strings"

	"ratersync/pkg/contracts/domain"
)

// DetermineRating classifies a project's rating maturity: Confirmed when the
// final rating file has been created and the project passed, Projected in
// every other case. It is total and never fails.
func DetermineRating(p *domain.Project) domain.RatingType {
	if p == nil {
		return domain.RatingProjected
	}
	if p.FinalCreated != "" && strings.EqualFold(p.PassFail, "pass") {
		return domain.RatingConfirmed
	}
	return domain.RatingProjected
}
