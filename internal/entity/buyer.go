package entity

import (
	"context"
	"time"
)

// Enum value sets. Stored values are exactly these literals; anything else is
// rejected at the validation boundary and ignored in filters.
var (
	Cities        = []string{"Chandigarh", "Mohali", "Zirakpur", "Panchkula", "Other"}
	PropertyTypes = []string{"Apartment", "Villa", "Plot", "Office", "Retail"}
	BHKs          = []string{"ONE", "TWO", "THREE", "FOUR", "Studio"}
	Purposes      = []string{"Buy", "Rent"}
	Timelines     = []string{"IMMEDIATE", "THREE_TO_SIX_MONTHS", "MORE_THAN_SIX_MONTHS", "Exploring"}
	Sources       = []string{"Website", "Referral", "Walk_in", "Call", "Other"}
	Statuses      = []string{"New", "Qualified", "Contacted", "Visited", "Negotiation", "Converted", "Dropped"}
)

const StatusNew = "New"

// Buyer is a prospective property buyer's lead record. Optional string
// fields use "" as absent; optional budgets use nil. UpdatedAt doubles as
// the optimistic-concurrency token.
type Buyer struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	City         string    `json:"city,omitempty"`
	PropertyType string    `json:"propertyType,omitempty"`
	BHK          string    `json:"bhk,omitempty"`
	Purpose      string    `json:"purpose,omitempty"`
	BudgetMin    *int64    `json:"budgetMin,omitempty"`
	BudgetMax    *int64    `json:"budgetMax,omitempty"`
	Timeline     string    `json:"timeline,omitempty"`
	Source       string    `json:"source,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListQuery is the store-agnostic predicate produced by the query builder.
// Zero values mean "no restriction"; Limit == 0 disables pagination (export).
// All reads are owner-scoped, so OwnerID is always set.
type ListQuery struct {
	OwnerID      string
	Search       string
	Status       string
	City         string
	PropertyType string
	Timeline     string
	BudgetMin    *int64
	BudgetMax    *int64
	Offset       int
	Limit        int
}

type BuyerRepositoryInterface interface {
	// Create inserts the lead and its creation history row in one transaction.
	Create(ctx context.Context, b *Buyer, h *BuyerHistory) error

	// FindByID is owner-scoped: a lead owned by someone else reports
	// ErrLeadNotFound, concealing its existence.
	FindByID(ctx context.Context, ownerID, id string) (*Buyer, error)

	// Update applies the mutation and appends the history row in one
	// transaction.
	Update(ctx context.Context, b *Buyer, h *BuyerHistory) error

	// Delete removes the lead; history rows cascade with it.
	Delete(ctx context.Context, ownerID, id string) error

	List(ctx context.Context, q ListQuery) ([]Buyer, int, error)

	HistoryByBuyer(ctx context.Context, buyerID string) ([]BuyerHistory, error)

	// BulkCreate inserts leads with their creation history rows in one
	// transaction, skipping rows that collide with an existing lead.
	// histories[i] belongs to buyers[i].
	BulkCreate(ctx context.Context, buyers []*Buyer, histories []*BuyerHistory) (inserted, skipped int, err error)
}
