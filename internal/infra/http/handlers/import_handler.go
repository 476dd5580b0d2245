package handlers

import (
	"io"
	"net/http"

	"github.com/estatedesk/leadbook/internal/infra/http/middleware"
	"github.com/estatedesk/leadbook/internal/usecase"
)

// maxImportBytes bounds the request body read. The real ceiling is the
// 200-row limit; this only stops a runaway upload before parsing.
const maxImportBytes = 1 << 20

type ImportHandler struct {
	UC *usecase.ImportLeadsUseCase
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{UC: uc}
}

func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	out, err := h.UC.Execute(r.Context(), body, actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadsImported(out.Inserted)
	writeJSON(w, http.StatusCreated, out)
}
