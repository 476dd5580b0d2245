package usecase

// LeadInput carries the raw, untrusted field values exactly as they arrive
// from a submitted form or one parsed CSV row. Everything stays a string
// until the validator has normalized it; no loosely-typed map crosses this
// boundary.
type LeadInput struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	PropertyType string `json:"propertyType"`
	BHK          string `json:"bhk"`
	Purpose      string `json:"purpose"`
	BudgetMin    string `json:"budgetMin"`
	BudgetMax    string `json:"budgetMax"`
	Timeline     string `json:"timeline"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	Tags         string `json:"tags"`
}

// ListFilters is the raw filter set from the query string. Unknown enum
// values are dropped by the query builder, never matched.
type ListFilters struct {
	Q            string
	Status       string
	City         string
	PropertyType string
	Timeline     string
	Budget       string // "<min>-<max>", either side omissible
	Page         int
}
