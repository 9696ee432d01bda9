package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/service/ports"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.Rate < 0 {
		return nil, fmt.Errorf("%w: rate must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Capacity:  input.Capacity,
		Rate:      input.Rate,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}
