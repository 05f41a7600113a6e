package application

import (
	"context"
	"fmt"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

// CatalogService expone el catálogo de planes y add-ons de la landing.
type CatalogService struct {
	repo domain.CatalogRepository
}

func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo planes: %w", err)
	}
	return plans, nil
}

func (s *CatalogService) GetFeatures(ctx context.Context) ([]domain.Feature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo features: %w", err)
	}
	return features, nil
}
