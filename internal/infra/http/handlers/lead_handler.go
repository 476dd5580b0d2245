package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/estatedesk/leadbook/internal/infra/http/middleware"
	"github.com/estatedesk/leadbook/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	GetUC    *usecase.GetLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	getUC *usecase.GetLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
		GetUC:    getUC,
		ListUC:   listUC,
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.CreateUC.Execute(r.Context(), input, actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, out)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	filters := usecase.ListFilters{
		Q:            params.Get("q"),
		Status:       params.Get("status"),
		City:         params.Get("city"),
		PropertyType: params.Get("propertyType"),
		Timeline:     params.Get("timeline"),
		Budget:       params.Get("budget"),
		Page:         page,
	}

	out, err := h.ListUC.Execute(r.Context(), filters, actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	out, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// updateLeadRequest is the lead fields plus the version token the client
// last saw.
type updateLeadRequest struct {
	usecase.LeadInput
	UpdatedAt string `json:"updatedAt"`
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	var req updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), req.LeadInput, req.UpdatedAt, actor)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id"), actor); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
