package ports

import (
	"context"

	"github.com/howlil/VenueBooker/internal/domain"
)

type BorrowerRepo interface {
	Create(ctx context.Context, b *domain.Borrower) error
	GetByID(ctx context.Context, id string) (*domain.Borrower, error)
	List(ctx context.Context) ([]*domain.Borrower, error)
}
