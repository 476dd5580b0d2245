package usecase

import (
	"strings"
	"time"

	"github.com/estatedesk/leadbook/internal/entity"
)

// CreatedDiff is the history payload for a freshly created lead: the full
// record under a "created" key.
func CreatedDiff(b *entity.Buyer) entity.Diff {
	return entity.Diff{"created": b}
}

// ComputeDiff reports, field by field, the normalized values that changed
// between two versions of a lead. Tags compare order-sensitively through
// their serialized form. Identity fields and timestamps are not diffed.
func ComputeDiff(before, after *entity.Buyer) entity.Diff {
	diff := entity.Diff{}

	compare := func(field, from, to string) {
		if from != to {
			diff[field] = entity.FieldChange{From: from, To: to}
		}
	}

	compare("fullName", before.FullName, after.FullName)
	compare("email", before.Email, after.Email)
	compare("phone", before.Phone, after.Phone)
	compare("city", before.City, after.City)
	compare("propertyType", before.PropertyType, after.PropertyType)
	compare("bhk", before.BHK, after.BHK)
	compare("purpose", before.Purpose, after.Purpose)
	compare("timeline", before.Timeline, after.Timeline)
	compare("source", before.Source, after.Source)
	compare("status", before.Status, after.Status)
	compare("notes", before.Notes, after.Notes)

	if !equalBudget(before.BudgetMin, after.BudgetMin) {
		diff["budgetMin"] = entity.FieldChange{From: budgetValue(before.BudgetMin), To: budgetValue(after.BudgetMin)}
	}
	if !equalBudget(before.BudgetMax, after.BudgetMax) {
		diff["budgetMax"] = entity.FieldChange{From: budgetValue(before.BudgetMax), To: budgetValue(after.BudgetMax)}
	}

	if strings.Join(before.Tags, ",") != strings.Join(after.Tags, ",") {
		diff["tags"] = entity.FieldChange{From: before.Tags, To: after.Tags}
	}

	return diff
}

func equalBudget(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func budgetValue(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// now is the single clock for lead timestamps. Postgres keeps microsecond
// precision, so anything finer would not survive a round trip and would
// break the version-token comparison.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
