package usecase

import (
	"context"
	"log"

	"github.com/estatedesk/leadbook/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewListLeadsUseCase(repo entity.BuyerRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

type ListLeadsOutput struct {
	Items      []entity.Buyer `json:"items"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
	Page       int            `json:"page"`
}

// Execute returns one page of the actor's leads, most recently updated
// first. Pages past the end yield an empty item list, not an error.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, filters ListFilters, actor entity.Identity) (*ListLeadsOutput, error) {
	if actor.Anonymous() {
		return nil, &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	q := BuildListQuery(actor, filters)

	items, total, err := uc.Repo.List(ctx, q)
	if err != nil {
		log.Printf("list leads: storage failure: %v", err)
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to list leads"}
	}
	if items == nil {
		items = []entity.Buyer{}
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}

	return &ListLeadsOutput{
		Items:      items,
		Total:      total,
		TotalPages: TotalPages(total),
		Page:       page,
	}, nil
}
