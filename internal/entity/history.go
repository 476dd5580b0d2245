package entity

import "time"

// FieldChange records one field's before/after values inside an update diff.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Diff is the payload persisted with each history row. A creation row holds
// the full record under a "created" key; an update row maps field names to
// FieldChange values for the fields whose normalized value differed.
type Diff map[string]any

// BuyerHistory is an append-only audit entry. Rows are written inside the
// same transaction as the mutation they describe and are never edited.
type BuyerHistory struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyerId"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Diff      Diff      `json:"diff"`
}
