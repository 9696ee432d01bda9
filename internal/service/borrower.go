package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/service/ports"
)

type BorrowerService struct {
	repo ports.BorrowerRepo
}

func NewBorrowerService(repo ports.BorrowerRepo) *BorrowerService {
	return &BorrowerService{repo: repo}
}

func (s *BorrowerService) Create(ctx context.Context, input domain.CreateBorrowerInput) (*domain.Borrower, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	borrower := &domain.Borrower{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, borrower); err != nil {
		return nil, fmt.Errorf("create borrower: %w", err)
	}

	return borrower, nil
}

func (s *BorrowerService) GetByID(ctx context.Context, id string) (*domain.Borrower, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BorrowerService) List(ctx context.Context) ([]*domain.Borrower, error) {
	return s.repo.List(ctx)
}
