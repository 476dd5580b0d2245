package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/estatedesk/leadbook/internal/entity"
)

type GetLeadUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewGetLeadUseCase(repo entity.BuyerRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{Repo: repo}
}

type LeadDetails struct {
	entity.Buyer
	History []entity.BuyerHistory `json:"history"`
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string, actor entity.Identity) (*LeadDetails, error) {
	if actor.Anonymous() {
		return nil, &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	lead, err := uc.Repo.FindByID(ctx, actor.ID, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeNotFound, Message: entity.ErrLeadNotFound.Error()}
		}
		log.Printf("get lead %s: storage failure: %v", id, err)
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to load lead"}
	}

	history, err := uc.Repo.HistoryByBuyer(ctx, lead.ID)
	if err != nil {
		log.Printf("get lead %s: history storage failure: %v", id, err)
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to load lead"}
	}

	return &LeadDetails{Buyer: *lead, History: history}, nil
}
