package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/estatedesk/leadbook/internal/entity"
)

type CreateLeadUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewCreateLeadUseCase(repo entity.BuyerRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

type CreateLeadOutput struct {
	ID string `json:"id"`
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input LeadInput, actor entity.Identity) (*CreateLeadOutput, error) {
	if actor.Anonymous() {
		return nil, &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	lead, verrs := ValidateLeadInput(input)
	if len(verrs) > 0 {
		return nil, verrs
	}

	ts := now()
	lead.ID = uuid.New().String()
	lead.OwnerID = actor.ID
	lead.CreatedAt = ts
	lead.UpdatedAt = ts
	if lead.Status == "" {
		lead.Status = entity.StatusNew
	}

	hist := &entity.BuyerHistory{
		ID:        uuid.New().String(),
		BuyerID:   lead.ID,
		ChangedBy: actor.ChangedBy(),
		ChangedAt: ts,
		Diff:      CreatedDiff(lead),
	}

	if err := uc.Repo.Create(ctx, lead, hist); err != nil {
		if errors.Is(err, entity.ErrDuplicateLead) {
			return nil, &DomainError{Code: CodeDuplicate, Message: entity.ErrDuplicateLead.Error()}
		}
		log.Printf("create lead: storage failure: %v", err)
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to create lead"}
	}

	return &CreateLeadOutput{ID: lead.ID}, nil
}
