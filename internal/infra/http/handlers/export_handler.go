package handlers

import (
	"net/http"

	"github.com/estatedesk/leadbook/internal/infra/http/middleware"
	"github.com/estatedesk/leadbook/internal/usecase"
)

type ExportHandler struct {
	UC *usecase.ExportLeadsUseCase
}

func NewExportHandler(uc *usecase.ExportLeadsUseCase) *ExportHandler {
	return &ExportHandler{UC: uc}
}

func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	params := r.URL.Query()
	filters := usecase.ListFilters{
		Q:            params.Get("q"),
		Status:       params.Get("status"),
		City:         params.Get("city"),
		PropertyType: params.Get("propertyType"),
		Timeline:     params.Get("timeline"),
		Budget:       params.Get("budget"),
	}

	csvText, err := h.UC.Execute(r.Context(), filters, actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadExport()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="buyer-leads.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvText))
}
