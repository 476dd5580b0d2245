package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/estatedesk/leadbook/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewDeleteLeadUseCase(repo entity.BuyerRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

// Execute removes a lead and its history. Deleting an id that is already
// gone, or one owned by someone else, reports NotFound.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string, actor entity.Identity) error {
	if actor.Anonymous() {
		return &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	if err := uc.Repo.Delete(ctx, actor.ID, id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error()}
		}
		log.Printf("delete lead %s: storage failure: %v", id, err)
		return &TechnicalError{Code: CodeStorage, Message: "failed to delete lead"}
	}

	return nil
}
