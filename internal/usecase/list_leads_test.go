package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/leadbook/internal/entity"
)

func TestListLeads(t *testing.T) {
	repo := new(MockBuyerRepository)
	var usedQuery entity.ListQuery
	repo.On("List", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { usedQuery = args.Get(1).(entity.ListQuery) }).
		Return([]entity.Buyer{{ID: "a"}, {ID: "b"}}, 12, nil)

	out, err := NewListLeadsUseCase(repo).Execute(context.Background(), ListFilters{Page: 2, Status: "New"}, actor())

	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 12, out.Total)
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 2, out.Page)

	assert.Equal(t, "user-1", usedQuery.OwnerID)
	assert.Equal(t, PageSize, usedQuery.Limit)
	assert.Equal(t, PageSize, usedQuery.Offset)
}

// A page past the end yields an empty item list, not an error.
func TestListLeadsPageBeyondEnd(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, 12, nil)

	out, err := NewListLeadsUseCase(repo).Execute(context.Background(), ListFilters{Page: 99}, actor())

	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Equal(t, 2, out.TotalPages)
}

func TestListLeadsRequiresIdentity(t *testing.T) {
	repo := new(MockBuyerRepository)

	out, err := NewListLeadsUseCase(repo).Execute(context.Background(), ListFilters{}, entity.Identity{})

	assert.Nil(t, out)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeAuthRequired, derr.Code)
}
