package quotation

import (
	"context"
	"fmt"

	"github.com/garagedesk/garage-backend-go/internal/domain/quotation"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/garagedesk/garage-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type QuotationServiceImpl struct {
	db            *database.DB
	quotationRepo quotation.QuotationRepository
}

func NewQuotationService(db *database.DB, quotationRepo quotation.QuotationRepository) quotation.QuotationService {
	return &QuotationServiceImpl{
		db:            db,
		quotationRepo: quotationRepo,
	}
}

func itemsFromRequests(reqs []quotation.LineItemRequest) []quotation.LineItem {
	items := make([]quotation.LineItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, quotation.LineItem{
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		})
	}
	return items
}

func (s *QuotationServiceImpl) CreateQuotation(ctx context.Context, req quotation.CreateQuotationRequest) (quotation.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return quotation.QuotationResponse{}, err
	}

	number, err := s.quotationRepo.NextNumber(ctx, quotation.KindQuotation)
	if err != nil {
		return quotation.QuotationResponse{}, fmt.Errorf("failed to allocate quotation number: %w", err)
	}

	items, totals := quotation.ComputeTotals(itemsFromRequests(req.Items), req.TaxRate)

	q := quotation.Quotation{
		Kind:          quotation.KindQuotation,
		Number:        number,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		VehicleReg:    req.VehicleReg,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TaxRate:       req.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        quotation.StatusDraft,
		Notes:         req.Notes,
	}

	created, err := s.quotationRepo.Create(ctx, q)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	return quotation.ToQuotationResponse(created), nil
}

func (s *QuotationServiceImpl) GetQuotation(ctx context.Context, id string) (quotation.QuotationResponse, error) {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	return quotation.ToQuotationResponse(q), nil
}

func (s *QuotationServiceImpl) ListQuotations(ctx context.Context, filter quotation.ListQuotationFilter) ([]quotation.QuotationResponse, error) {
	quotations, err := s.quotationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]quotation.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		result = append(result, quotation.ToQuotationResponse(q))
	}
	return result, nil
}

func (s *QuotationServiceImpl) UpdateQuotation(ctx context.Context, req quotation.UpdateQuotationRequest) (quotation.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return quotation.QuotationResponse{}, err
	}

	q, err := s.quotationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	if q.Status != quotation.StatusDraft {
		return quotation.QuotationResponse{}, quotation.ErrQuotationNotDraft
	}

	if req.CustomerName != nil {
		q.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		q.CustomerPhone = *req.CustomerPhone
	}
	if req.VehicleReg != nil {
		q.VehicleReg = *req.VehicleReg
	}
	if req.Items != nil {
		q.Items = itemsFromRequests(req.Items)
	}
	if req.TaxRate != nil {
		q.TaxRate = *req.TaxRate
	}
	if req.Notes != nil {
		q.Notes = req.Notes
	}

	items, totals := quotation.ComputeTotals(q.Items, q.TaxRate)
	q.Items = items
	q.Subtotal = totals.Subtotal
	q.TaxAmount = totals.TaxAmount
	q.Total = totals.Total

	updated, err := s.quotationRepo.Update(ctx, q)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	return quotation.ToQuotationResponse(updated), nil
}

func (s *QuotationServiceImpl) MarkSent(ctx context.Context, id string) (quotation.QuotationResponse, error) {
	return s.changeStatus(ctx, id, quotation.StatusDraft, quotation.StatusSent)
}

func (s *QuotationServiceImpl) MarkAccepted(ctx context.Context, id string) (quotation.QuotationResponse, error) {
	return s.changeStatus(ctx, id, quotation.StatusSent, quotation.StatusAccepted)
}

func (s *QuotationServiceImpl) changeStatus(ctx context.Context, id string, from, to quotation.Status) (quotation.QuotationResponse, error) {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	if q.Kind != quotation.KindQuotation || q.Status != from {
		return quotation.QuotationResponse{}, quotation.ErrInvalidStatusChange
	}

	if err := s.quotationRepo.UpdateStatus(ctx, q.ID, to); err != nil {
		return quotation.QuotationResponse{}, err
	}

	q.Status = to
	return quotation.ToQuotationResponse(q), nil
}

func (s *QuotationServiceImpl) ConvertToInvoice(ctx context.Context, id string) (quotation.QuotationResponse, error) {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return quotation.QuotationResponse{}, err
	}
	if q.Kind != quotation.KindQuotation {
		return quotation.QuotationResponse{}, quotation.ErrInvalidStatusChange
	}
	if q.Status == quotation.StatusInvoiced {
		return quotation.QuotationResponse{}, quotation.ErrAlreadyInvoiced
	}
	if q.Status != quotation.StatusAccepted {
		return quotation.QuotationResponse{}, quotation.ErrQuotationNotAccepted
	}

	// Creating the invoice and flipping the quotation to invoiced must land
	// together, or a failed flip would leave an accepted quotation that can
	// be invoiced twice.
	var created quotation.Quotation
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		number, err := s.quotationRepo.NextNumber(txCtx, quotation.KindInvoice)
		if err != nil {
			return fmt.Errorf("failed to allocate invoice number: %w", err)
		}

		invoice := quotation.Quotation{
			Kind:          quotation.KindInvoice,
			Number:        number,
			CustomerName:  q.CustomerName,
			CustomerPhone: q.CustomerPhone,
			VehicleReg:    q.VehicleReg,
			Items:         q.Items,
			Subtotal:      q.Subtotal,
			TaxRate:       q.TaxRate,
			TaxAmount:     q.TaxAmount,
			Total:         q.Total,
			Status:        quotation.StatusSent,
			Notes:         q.Notes,
			QuotationID:   &q.ID,
		}

		created, err = s.quotationRepo.Create(txCtx, invoice)
		if err != nil {
			return err
		}

		return s.quotationRepo.UpdateStatus(txCtx, q.ID, quotation.StatusInvoiced)
	})
	if err != nil {
		return quotation.QuotationResponse{}, err
	}

	return quotation.ToQuotationResponse(created), nil
}

func (s *QuotationServiceImpl) DeleteQuotation(ctx context.Context, id string) error {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.Status != quotation.StatusDraft {
		return quotation.ErrQuotationNotDraft
	}
	return s.quotationRepo.Delete(ctx, id)
}
