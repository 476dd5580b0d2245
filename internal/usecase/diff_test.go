package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/leadbook/internal/entity"
)

func int64ptr(n int64) *int64 { return &n }

func TestComputeDiffIdenticalLeads(t *testing.T) {
	a := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Status: "New", Tags: []string{"urgent"}}
	b := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Status: "New", Tags: []string{"urgent"}}

	assert.Empty(t, ComputeDiff(a, b))
}

func TestComputeDiffChangedFields(t *testing.T) {
	before := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Status: "New"}
	after := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Status: "Qualified", Notes: "called twice"}

	diff := ComputeDiff(before, after)
	require.Len(t, diff, 2)
	assert.Equal(t, entity.FieldChange{From: "New", To: "Qualified"}, diff["status"])
	assert.Equal(t, entity.FieldChange{From: "", To: "called twice"}, diff["notes"])
}

func TestComputeDiffBudgets(t *testing.T) {
	before := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210"}
	after := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", BudgetMin: int64ptr(5000)}

	diff := ComputeDiff(before, after)
	require.Contains(t, diff, "budgetMin")
	assert.Equal(t, entity.FieldChange{From: nil, To: int64(5000)}, diff["budgetMin"])

	// same value through different pointers is not a change
	before.BudgetMin = int64ptr(5000)
	assert.Empty(t, ComputeDiff(before, after))
}

func TestComputeDiffTagsOrderSensitive(t *testing.T) {
	before := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Tags: []string{"a", "b"}}
	after := &entity.Buyer{FullName: "Jo Lee", Phone: "9876543210", Tags: []string{"b", "a"}}

	diff := ComputeDiff(before, after)
	require.Contains(t, diff, "tags")
	assert.Equal(t, entity.FieldChange{From: []string{"a", "b"}, To: []string{"b", "a"}}, diff["tags"])
}

func TestCreatedDiff(t *testing.T) {
	lead := &entity.Buyer{ID: "lead-1", FullName: "Jo Lee"}
	diff := CreatedDiff(lead)
	require.Len(t, diff, 1)
	assert.Equal(t, lead, diff["created"])
}
