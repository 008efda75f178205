package destinations

import (
	"context"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/Domenick1991/travelgo/internal/repository"
)

type DestinationUseCase interface {
	List(ctx context.Context) ([]domain.Destination, error)
}

type Cache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
}

type DestinationService struct {
	repo  repository.DestinationRepository
	cache Cache
}

func NewDestinationService(repo repository.DestinationRepository, cache Cache) *DestinationService {
	return &DestinationService{repo: repo, cache: cache}
}

// List returns the reference destinations sorted by name, read through the cache.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	destinations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

var _ DestinationUseCase = (*DestinationService)(nil)
