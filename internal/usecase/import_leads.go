package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/estatedesk/leadbook/internal/entity"
)

// ImportRowLimit caps the number of data rows per import. It is a row-count
// ceiling, not a byte limit; a 201-row file fails outright.
const ImportRowLimit = 200

var importHeaders = []string{
	"fullName", "email", "phone", "city", "propertyType", "bhk", "purpose",
	"budgetMin", "budgetMax", "timeline", "source", "notes", "tags", "status",
}

// ImportValidationError reports every failing row of a rejected import. Line
// numbers are 1-based display lines: the header is line 1, the first data
// row is line 2.
type ImportValidationError struct {
	Rows []string
}

func (e *ImportValidationError) Error() string {
	return strings.Join(e.Rows, "\n")
}

type ImportLeadsUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewImportLeadsUseCase(repo entity.BuyerRepositoryInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Repo: repo}
}

type ImportLeadsOutput struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Execute imports a CSV file. Validation is all-or-nothing: a single bad row
// rejects the whole file with every row error listed. Storage-level
// duplicate skipping is the only partial-success point; rows colliding with
// an existing lead are counted as skipped, not failed.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, fileBytes []byte, actor entity.Identity) (*ImportLeadsOutput, error) {
	if actor.Anonymous() {
		return nil, &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	r := csv.NewReader(bytes.NewReader(fileBytes))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidCSV, Message: "could not parse the CSV file"}
	}
	if len(records) == 0 {
		return nil, &DomainError{Code: CodeHeader, Message: "missing header row"}
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range importHeaders {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &DomainError{
			Code:    CodeHeader,
			Message: "missing required headers: " + strings.Join(missing, ", "),
		}
	}

	rows := records[1:]
	if len(rows) > ImportRowLimit {
		return nil, &DomainError{
			Code:    CodeRowLimit,
			Message: fmt.Sprintf("imports are limited to %d data rows, got %d", ImportRowLimit, len(rows)),
		}
	}

	ts := now()
	changedBy := actor.ChangedBy()

	var rowErrs []string
	buyers := make([]*entity.Buyer, 0, len(rows))
	histories := make([]*entity.BuyerHistory, 0, len(rows))
	for i, rec := range rows {
		lead, verrs := ValidateLeadInput(leadInputFromRecord(index, rec))
		if len(verrs) > 0 {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %s", i+2, verrs.Error()))
			continue
		}

		lead.ID = uuid.New().String()
		lead.OwnerID = actor.ID
		lead.CreatedAt = ts
		lead.UpdatedAt = ts
		if lead.Status == "" {
			lead.Status = entity.StatusNew
		}

		buyers = append(buyers, lead)
		histories = append(histories, &entity.BuyerHistory{
			ID:        uuid.New().String(),
			BuyerID:   lead.ID,
			ChangedBy: changedBy,
			ChangedAt: ts,
			Diff:      CreatedDiff(lead),
		})
	}
	if len(rowErrs) > 0 {
		return nil, &ImportValidationError{Rows: rowErrs}
	}

	inserted, skipped, err := uc.Repo.BulkCreate(ctx, buyers, histories)
	if err != nil {
		log.Printf("import leads: storage failure: %v", err)
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to import leads"}
	}

	return &ImportLeadsOutput{Inserted: inserted, Skipped: skipped}, nil
}

func leadInputFromRecord(index map[string]int, rec []string) LeadInput {
	get := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	return LeadInput{
		FullName:     get("fullName"),
		Email:        get("email"),
		Phone:        get("phone"),
		City:         get("city"),
		PropertyType: get("propertyType"),
		BHK:          get("bhk"),
		Purpose:      get("purpose"),
		BudgetMin:    get("budgetMin"),
		BudgetMax:    get("budgetMax"),
		Timeline:     get("timeline"),
		Source:       get("source"),
		Notes:        get("notes"),
		Tags:         get("tags"),
		Status:       get("status"),
	}
}
