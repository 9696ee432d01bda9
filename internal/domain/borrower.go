package domain

import "time"

// Borrower is the party requesting a venue.
type Borrower struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateBorrowerInput struct {
	Name           string
	TelegramChatID *int64
}
