package usecase

import "go-consulting-backend/internal/domain"

var budgetScores = map[string]int{
	"less_than_1k":  5,
	"1k_to_3k":      15,
	"3k_to_5k":      25,
	"5k_to_10k":     30,
	"more_than_10k": 35,
}

var urgencyScores = map[string]int{
	"not_urgent":   5,
	"within_month": 15,
	"within_week":  20,
	"urgent":       25,
}

var challengeScores = map[string]int{
	"no_traffic":      15,
	"low_conversions": 18,
	"high_cpa":        20,
	"scaling":         20,
	"competitor":      12,
	"new_project":     10,
	"team_training":   8,
	"audit":           15,
}

var companySizeScores = map[string]int{
	"freelancer": 2,
	"startup":    5,
	"small":      7,
	"medium":     10,
	"large":      10,
}

// qualityScore rates the qualification answers on a 0-100 scale. Budget and
// urgency dominate; infrastructure signals add smaller bumps.
func qualityScore(q *domain.QualificationData) int {
	score := budgetScores[q.Budget] + urgencyScores[q.Urgency] + challengeScores[q.Challenge]

	if q.HasWebsite {
		score += 5
	}
	if q.HasActiveCampaigns {
		score += 5
	}
	score += companySizeScores[q.CompanySize]

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
