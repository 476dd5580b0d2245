package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/estatedesk/leadbook/internal/entity"
)

var exportHeaders = []string{
	"fullName", "email", "phone", "city", "propertyType", "bhk", "purpose",
	"budgetMin", "budgetMax", "timeline", "source", "status", "notes", "tags",
	"createdAt", "updatedAt",
}

type ExportLeadsUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewExportLeadsUseCase(repo entity.BuyerRepositoryInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{Repo: repo}
}

// Execute serializes every lead of the actor matching the filters to CSV
// text, header row included, most recently updated first. Nothing is written
// to storage.
func (uc *ExportLeadsUseCase) Execute(ctx context.Context, filters ListFilters, actor entity.Identity) (string, error) {
	if actor.Anonymous() {
		return "", &DomainError{Code: CodeAuthRequired, Message: "authentication required"}
	}

	q := BuildExportQuery(actor, filters)

	leads, _, err := uc.Repo.List(ctx, q)
	if err != nil {
		log.Printf("export leads: storage failure: %v", err)
		return "", &TechnicalError{Code: CodeStorage, Message: "failed to export leads"}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(exportHeaders)
	for i := range leads {
		w.Write(exportRecord(&leads[i]))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("export leads: csv failure: %v", err)
		return "", &TechnicalError{Code: CodeStorage, Message: "failed to export leads"}
	}

	return buf.String(), nil
}

func exportRecord(b *entity.Buyer) []string {
	return []string{
		b.FullName,
		b.Email,
		b.Phone,
		b.City,
		b.PropertyType,
		b.BHK,
		b.Purpose,
		budgetString(b.BudgetMin),
		budgetString(b.BudgetMax),
		b.Timeline,
		b.Source,
		b.Status,
		b.Notes,
		strings.Join(b.Tags, ","),
		b.CreatedAt.UTC().Format(time.RFC3339),
		b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func budgetString(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}
