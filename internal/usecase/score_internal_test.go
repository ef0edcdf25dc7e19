package usecase

import (
	"testing"

	"go-consulting-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQualityScoreChallengeValues(t *testing.T) {
	// Every challenge value the qualification form submits must contribute
	// its weight; an unrecognized value silently scoring zero hides broken
	// lead ranking.
	expected := map[string]int{
		"no_traffic":      15,
		"low_conversions": 18,
		"high_cpa":        20,
		"scaling":         20,
		"competitor":      12,
		"new_project":     10,
		"team_training":   8,
		"audit":           15,
	}

	for challenge, points := range expected {
		q := &domain.QualificationData{Challenge: challenge}
		assert.Equal(t, points, qualityScore(q), challenge)
	}

	assert.Equal(t, 0, qualityScore(&domain.QualificationData{Challenge: "unknown"}))
}

func TestQualityScoreWeights(t *testing.T) {
	t.Run("components add up", func(t *testing.T) {
		q := &domain.QualificationData{
			Budget:             "more_than_10k",
			Urgency:            "urgent",
			Challenge:          "high_cpa",
			HasWebsite:         true,
			HasActiveCampaigns: true,
			CompanySize:        "medium",
		}
		// 35 + 25 + 20 + 5 + 5 + 10
		assert.Equal(t, 100, qualityScore(q))
	})

	t.Run("empty answers score zero", func(t *testing.T) {
		assert.Equal(t, 0, qualityScore(&domain.QualificationData{}))
	})
}
