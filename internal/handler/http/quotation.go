package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/garagedesk/garage-backend-go/internal/domain/quotation"
	"github.com/garagedesk/garage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type QuotationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkSent(w http.ResponseWriter, r *http.Request)
	MarkAccepted(w http.ResponseWriter, r *http.Request)
	ConvertToInvoice(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type QuotationHandlerImpl struct {
	quotationService quotation.QuotationService
}

func NewQuotationHandler(quotationService quotation.QuotationService) QuotationHandler {
	return &QuotationHandlerImpl{quotationService: quotationService}
}

// Create implements QuotationHandler.
func (h *QuotationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req quotation.CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateQuotation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	q, err := h.quotationService.CreateQuotation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Quotation created successfully", q)
}

// GetByID implements QuotationHandler.
func (h *QuotationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	q, err := h.quotationService.GetQuotation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, q)
}

// List implements QuotationHandler.
func (h *QuotationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := quotation.ListQuotationFilter{}
	if kind := query.Get("kind"); kind != "" {
		filter.Kind = &kind
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	quotations, err := h.quotationService.ListQuotations(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, quotations)
}

// Update implements QuotationHandler.
func (h *QuotationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	var req quotation.UpdateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateQuotation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	q, err := h.quotationService.UpdateQuotation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Quotation updated successfully", q)
}

// MarkSent implements QuotationHandler.
func (h *QuotationHandlerImpl) MarkSent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	q, err := h.quotationService.MarkSent(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Quotation marked sent", q)
}

// MarkAccepted implements QuotationHandler.
func (h *QuotationHandlerImpl) MarkAccepted(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	q, err := h.quotationService.MarkAccepted(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Quotation marked accepted", q)
}

// ConvertToInvoice implements QuotationHandler.
func (h *QuotationHandlerImpl) ConvertToInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	invoice, err := h.quotationService.ConvertToInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Invoice created successfully", invoice)
}

// Delete implements QuotationHandler.
func (h *QuotationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Quotation ID is required", nil)
		return
	}

	if err := h.quotationService.DeleteQuotation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Quotation deleted successfully", nil)
}
