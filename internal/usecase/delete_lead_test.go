package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/leadbook/internal/entity"
)

func TestDeleteLeadSuccess(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("Delete", mock.Anything, "user-1", "lead-1").Return(nil)

	err := NewDeleteLeadUseCase(repo).Execute(context.Background(), "lead-1", actor())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

// Deleting an id that is already gone reports NotFound, never a silent
// success.
func TestDeleteLeadTwiceReportsNotFound(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("Delete", mock.Anything, "user-1", "lead-1").Return(nil).Once()
	repo.On("Delete", mock.Anything, "user-1", "lead-1").Return(entity.ErrLeadNotFound)

	uc := NewDeleteLeadUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), "lead-1", actor()))

	err := uc.Execute(context.Background(), "lead-1", actor())
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeNotFound, derr.Code)
}

func TestDeleteLeadRequiresIdentity(t *testing.T) {
	repo := new(MockBuyerRepository)

	err := NewDeleteLeadUseCase(repo).Execute(context.Background(), "lead-1", entity.Identity{})

	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeAuthRequired, derr.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
