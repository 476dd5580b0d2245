package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estatedesk/leadbook/internal/usecase"
)

type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Rows    []string            `json:"rows,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// writeUseCaseError translates the usecase error taxonomy to HTTP. Anything
// outside the expected outcomes collapses to a generic 500 so storage detail
// never leaks.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Message: "invalid input",
			Errors:  verrs.ByField(),
		})
		return
	}

	var rowErr *usecase.ImportValidationError
	if errors.As(err, &rowErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Message: "import failed validation",
			Rows:    rowErr.Rows,
		})
		return
	}

	var derr *usecase.DomainError
	if errors.As(err, &derr) {
		status := http.StatusBadRequest
		switch derr.Code {
		case usecase.CodeAuthRequired:
			status = http.StatusUnauthorized
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeConflict, usecase.CodeDuplicate:
			status = http.StatusConflict
		}
		writeError(w, status, derr.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
}
