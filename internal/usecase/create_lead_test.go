package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/leadbook/internal/entity"
)

func TestCreateLeadSuccess(t *testing.T) {
	repo := new(MockBuyerRepository)

	var savedLead *entity.Buyer
	var savedHist *entity.BuyerHistory
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedLead = args.Get(1).(*entity.Buyer)
			savedHist = args.Get(2).(*entity.BuyerHistory)
		}).
		Return(nil)

	uc := NewCreateLeadUseCase(repo)
	out, err := uc.Execute(context.Background(), LeadInput{
		FullName:     "Jo Lee",
		Phone:        "9876543210",
		PropertyType: "Apartment",
		BHK:          "TWO",
		Tags:         "urgent, pre-approved",
	}, actor())

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)

	require.NotNil(t, savedLead)
	assert.Equal(t, out.ID, savedLead.ID)
	assert.Equal(t, "user-1", savedLead.OwnerID)
	assert.Equal(t, entity.StatusNew, savedLead.Status)
	assert.Equal(t, []string{"urgent", "pre-approved"}, savedLead.Tags)
	assert.Equal(t, savedLead.CreatedAt, savedLead.UpdatedAt)

	require.NotNil(t, savedHist)
	assert.Equal(t, savedLead.ID, savedHist.BuyerID)
	assert.Equal(t, "agent@example.com", savedHist.ChangedBy)
	assert.Equal(t, savedLead, savedHist.Diff["created"])
}

func TestCreateLeadRequiresIdentity(t *testing.T) {
	repo := new(MockBuyerRepository)
	uc := NewCreateLeadUseCase(repo)

	out, err := uc.Execute(context.Background(), validInput(), entity.Identity{})

	assert.Nil(t, out)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeAuthRequired, derr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLeadValidationFailureTouchesNoStorage(t *testing.T) {
	repo := new(MockBuyerRepository)
	uc := NewCreateLeadUseCase(repo)

	out, err := uc.Execute(context.Background(), LeadInput{
		FullName:     "Jo Lee",
		Phone:        "9876543210",
		PropertyType: "Apartment", // no bhk
	}, actor())

	assert.Nil(t, out)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs.ByField()["bhk"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLeadDuplicatePhone(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(entity.ErrDuplicateLead)

	uc := NewCreateLeadUseCase(repo)
	out, err := uc.Execute(context.Background(), validInput(), actor())

	assert.Nil(t, out)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeDuplicate, derr.Code)
}

func TestCreateLeadStorageFailureIsGeneric(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	uc := NewCreateLeadUseCase(repo)
	out, err := uc.Execute(context.Background(), validInput(), actor())

	assert.Nil(t, out)
	var terr *TechnicalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, CodeStorage, terr.Code)
	assert.NotContains(t, terr.Message, "connection reset")
}
