package service

import (
	"context"
	"testing"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/howlil/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVenueService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Name:     "Hall A",
		Capacity: 200,
		Rate:     150000,
		Type:     "auditorium",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	assert.Equal(t, "Hall A", venue.Name)
	assert.Equal(t, int64(150000), venue.Rate)
}

func TestVenueService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	tests := []struct {
		name  string
		input domain.CreateVenueInput
	}{
		{"missing name", domain.CreateVenueInput{Capacity: 10}},
		{"zero capacity", domain.CreateVenueInput{Name: "Hall A"}},
		{"negative rate", domain.CreateVenueInput{Name: "Hall A", Capacity: 10, Rate: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVenueService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBorrowerService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBorrowerRepo(t)
	svc := NewBorrowerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(123456)
	borrower, err := svc.Create(context.Background(), domain.CreateBorrowerInput{
		Name:           "Alice",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, borrower.ID)
	assert.Equal(t, "Alice", borrower.Name)
	require.NotNil(t, borrower.TelegramChatID)
	assert.Equal(t, chatID, *borrower.TelegramChatID)
}

func TestBorrowerService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockBorrowerRepo(t)
	svc := NewBorrowerService(repo)

	_, err := svc.Create(context.Background(), domain.CreateBorrowerInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBorrowerService_List(t *testing.T) {
	repo := mocks.NewMockBorrowerRepo(t)
	svc := NewBorrowerService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Borrower{{ID: "u1"}, {ID: "u2"}}, nil)

	borrowers, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, borrowers, 2)
}
