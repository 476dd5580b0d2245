package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/estatedesk/leadbook/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewUpdateLeadUseCase(repo entity.BuyerRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute applies an optimistic-concurrency-checked update. versionToken is
// the RFC3339 rendering of the updatedAt the client last saw; a mismatch
// means someone else saved in between, and nothing is written.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input LeadInput, versionToken string, actor entity.Identity) error {
	if actor.Anonymous() {
		return &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	existing, err := uc.Repo.FindByID(ctx, actor.ID, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error()}
		}
		log.Printf("update lead %s: storage failure: %v", id, err)
		return &TechnicalError{Code: CodeStorage, Message: "failed to update lead"}
	}

	lead, verrs := ValidateLeadInput(input)
	if len(verrs) > 0 {
		return verrs
	}

	token, perr := time.Parse(time.RFC3339Nano, versionToken)
	if perr != nil || !token.Equal(existing.UpdatedAt) {
		return &DomainError{Code: CodeConflict, Message: "record was modified by someone else, please refresh and try again"}
	}

	lead.ID = existing.ID
	lead.OwnerID = existing.OwnerID
	lead.CreatedAt = existing.CreatedAt
	lead.UpdatedAt = now()
	if lead.Status == "" {
		lead.Status = existing.Status
	}

	hist := &entity.BuyerHistory{
		ID:        uuid.New().String(),
		BuyerID:   lead.ID,
		ChangedBy: actor.ChangedBy(),
		ChangedAt: lead.UpdatedAt,
		Diff:      ComputeDiff(existing, lead),
	}

	if err := uc.Repo.Update(ctx, lead, hist); err != nil {
		switch {
		case errors.Is(err, entity.ErrLeadNotFound):
			return &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error()}
		case errors.Is(err, entity.ErrDuplicateLead):
			return &DomainError{Code: CodeDuplicate, Message: entity.ErrDuplicateLead.Error()}
		}
		log.Printf("update lead %s: storage failure: %v", id, err)
		return &TechnicalError{Code: CodeStorage, Message: "failed to update lead"}
	}

	return nil
}
