package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BorrowerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBorrowerRepo(db *dbpg.DB) *BorrowerRepository {
	return &BorrowerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BorrowerRepository) Create(ctx context.Context, b *domain.Borrower) error {
	query := `INSERT INTO borrowers (id, name, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, b.ID, b.Name, b.TelegramChatID, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert borrower: %w", err)
	}
	return nil
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id string) (*domain.Borrower, error) {
	query := `SELECT id, name, telegram_chat_id, created_at FROM borrowers WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get borrower: %w", err)
	}

	var b domain.Borrower
	if err = row.Scan(&b.ID, &b.Name, &b.TelegramChatID, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBorrowerNotFound
		}
		return nil, fmt.Errorf("scan borrower: %w", err)
	}
	return &b, nil
}

func (r *BorrowerRepository) List(ctx context.Context) ([]*domain.Borrower, error) {
	query := `SELECT id, name, telegram_chat_id, created_at FROM borrowers ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list borrowers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Borrower
	for rows.Next() {
		var b domain.Borrower
		if err = rows.Scan(&b.ID, &b.Name, &b.TelegramChatID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan borrower: %w", err)
		}
		res = append(res, &b)
	}
	return res, rows.Err()
}
