package usecase

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/estatedesk/leadbook/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors accumulates field-scoped failures in the order the fields
// were checked. It is returned as a value, never raised.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// ByField groups the messages by field, preserving per-field order, so the
// presentation layer can route each message back to its input control.
func (v ValidationErrors) ByField() map[string][]string {
	m := make(map[string][]string, len(v))
	for _, e := range v {
		m[e.Field] = append(m[e.Field], e.Message)
	}
	return m
}

// ValidateLeadInput normalizes the raw string fields of a submitted form or a
// parsed CSV row into a Buyer. The returned Buyer carries no identity or
// timestamps; callers set ID, OwnerID, CreatedAt and UpdatedAt. All checks
// run and accumulate; nothing fails fast.
func ValidateLeadInput(input LeadInput) (*entity.Buyer, ValidationErrors) {
	var errs ValidationErrors

	fullName := strings.TrimSpace(input.FullName)
	if utf8.RuneCountInString(fullName) < 2 {
		errs = append(errs, ValidationError{"fullName", "must be at least 2 characters"})
	} else if utf8.RuneCountInString(fullName) > 80 {
		errs = append(errs, ValidationError{"fullName", "must not exceed 80 characters"})
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, ValidationError{"email", "must be a valid email address"})
		}
	}

	phone := strings.TrimSpace(input.Phone)
	if len(phone) < 10 {
		errs = append(errs, ValidationError{"phone", "must be at least 10 digits"})
	} else if len(phone) > 15 {
		errs = append(errs, ValidationError{"phone", "must not exceed 15 digits"})
	}

	city := strings.TrimSpace(input.City)
	if city != "" && !isOneOf(entity.Cities, city) {
		errs = append(errs, ValidationError{"city", "is not a recognized city"})
	}

	propertyType := strings.TrimSpace(input.PropertyType)
	if propertyType != "" && !isOneOf(entity.PropertyTypes, propertyType) {
		errs = append(errs, ValidationError{"propertyType", "is not a recognized property type"})
	}

	bhk := strings.TrimSpace(input.BHK)
	if bhk != "" && !isOneOf(entity.BHKs, bhk) {
		errs = append(errs, ValidationError{"bhk", "is not a recognized BHK value"})
	}

	purpose := strings.TrimSpace(input.Purpose)
	if purpose != "" && !isOneOf(entity.Purposes, purpose) {
		errs = append(errs, ValidationError{"purpose", "is not a recognized purpose"})
	}

	timeline := strings.TrimSpace(input.Timeline)
	if timeline != "" && !isOneOf(entity.Timelines, timeline) {
		errs = append(errs, ValidationError{"timeline", "is not a recognized timeline"})
	}

	source := strings.TrimSpace(input.Source)
	if source != "" && !isOneOf(entity.Sources, source) {
		errs = append(errs, ValidationError{"source", "is not a recognized source"})
	}

	status := strings.TrimSpace(input.Status)
	if status != "" && !isOneOf(entity.Statuses, status) {
		errs = append(errs, ValidationError{"status", "is not a recognized status"})
	}

	budgetMin, budgetErrs := parseBudget("budgetMin", input.BudgetMin)
	errs = append(errs, budgetErrs...)
	budgetMax, budgetErrs := parseBudget("budgetMax", input.BudgetMax)
	errs = append(errs, budgetErrs...)

	notes := strings.TrimSpace(input.Notes)
	if utf8.RuneCountInString(notes) > 1000 {
		errs = append(errs, ValidationError{"notes", "must be 1000 characters or less"})
	}

	tags := SplitTags(input.Tags)

	// BHK only means something for residential property types, and for those
	// it is mandatory.
	if (propertyType == "Apartment" || propertyType == "Villa") && bhk == "" {
		errs = append(errs, ValidationError{"bhk", "is required for this property type"})
	}

	if budgetMin != nil && budgetMax != nil && *budgetMax < *budgetMin {
		errs = append(errs, ValidationError{"budgetMax", "must be greater than or equal to min budget"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Buyer{
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		City:         city,
		PropertyType: propertyType,
		BHK:          bhk,
		Purpose:      purpose,
		BudgetMin:    budgetMin,
		BudgetMax:    budgetMax,
		Timeline:     timeline,
		Source:       source,
		Status:       status,
		Notes:        notes,
		Tags:         tags,
	}, nil
}

// SplitTags turns a raw comma-separated tag string into an order-preserving,
// trimmed, de-duplicated list. Empty tokens are dropped.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var tags []string
	for _, tok := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(tok)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func parseBudget(field, raw string) (*int64, ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ValidationErrors{{field, "must be a number"}}
	}
	if n < 0 {
		return nil, ValidationErrors{{field, "must not be negative"}}
	}
	return &n, nil
}

func isOneOf(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
