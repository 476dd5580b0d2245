package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/estatedesk/leadbook/internal/entity"
)

// MockBuyerRepository
type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) Create(ctx context.Context, b *entity.Buyer, h *entity.BuyerHistory) error {
	args := m.Called(ctx, b, h)
	return args.Error(0)
}

func (m *MockBuyerRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Buyer, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) Update(ctx context.Context, b *entity.Buyer, h *entity.BuyerHistory) error {
	args := m.Called(ctx, b, h)
	return args.Error(0)
}

func (m *MockBuyerRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockBuyerRepository) List(ctx context.Context, q entity.ListQuery) ([]entity.Buyer, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]entity.Buyer), args.Int(1), args.Error(2)
}

func (m *MockBuyerRepository) HistoryByBuyer(ctx context.Context, buyerID string) ([]entity.BuyerHistory, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BuyerHistory), args.Error(1)
}

func (m *MockBuyerRepository) BulkCreate(ctx context.Context, buyers []*entity.Buyer, histories []*entity.BuyerHistory) (int, int, error) {
	args := m.Called(ctx, buyers, histories)
	return args.Int(0), args.Int(1), args.Error(2)
}

func validInput() LeadInput {
	return LeadInput{
		FullName: "Jo Lee",
		Phone:    "9876543210",
	}
}

func actor() entity.Identity {
	return entity.Identity{ID: "user-1", Email: "agent@example.com"}
}
