package service

import (
	"context"

	"agrovision/entities"
)

type RecommendationService interface {
	Recommendations() []entities.Recommendation
	GenerateAIRecommendations(ctx context.Context) error
}
