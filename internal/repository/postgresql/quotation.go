package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/garagedesk/garage-backend-go/internal/domain/quotation"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type quotationRepositoryImpl struct {
	db *database.DB
}

func NewQuotationRepository(db *database.DB) quotation.QuotationRepository {
	return &quotationRepositoryImpl{db: db}
}

const quotationColumns = `id, kind, number, customer_name, customer_phone, vehicle_reg,
	items, subtotal, tax_rate, tax_amount, total, status, notes, quotation_id, created_at, updated_at`

func scanQuotation(row pgx.Row) (quotation.Quotation, error) {
	var qt quotation.Quotation
	var itemsBytes []byte

	err := row.Scan(
		&qt.ID, &qt.Kind, &qt.Number, &qt.CustomerName, &qt.CustomerPhone, &qt.VehicleReg,
		&itemsBytes, &qt.Subtotal, &qt.TaxRate, &qt.TaxAmount, &qt.Total, &qt.Status,
		&qt.Notes, &qt.QuotationID, &qt.CreatedAt, &qt.UpdatedAt,
	)
	if err != nil {
		return quotation.Quotation{}, err
	}

	_ = json.Unmarshal(itemsBytes, &qt.Items)
	return qt, nil
}

// Create implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) Create(ctx context.Context, qt quotation.Quotation) (quotation.Quotation, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, _ := json.Marshal(qt.Items)

	query := `
		INSERT INTO quotations (
			kind, number, customer_name, customer_phone, vehicle_reg,
			items, subtotal, tax_rate, tax_amount, total, status, notes, quotation_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + quotationColumns

	created, err := scanQuotation(q.QueryRow(ctx, query,
		qt.Kind, qt.Number, qt.CustomerName, qt.CustomerPhone, qt.VehicleReg,
		itemsJSON, qt.Subtotal, qt.TaxRate, qt.TaxAmount, qt.Total, qt.Status,
		qt.Notes, qt.QuotationID,
	))
	if err != nil {
		return quotation.Quotation{}, err
	}
	return created, nil
}

// GetByID implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) GetByID(ctx context.Context, id string) (quotation.Quotation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`

	qt, err := scanQuotation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quotation.Quotation{}, quotation.ErrQuotationNotFound
		}
		return quotation.Quotation{}, err
	}
	return qt, nil
}

// List implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) List(ctx context.Context, filter quotation.ListQuotationFilter) ([]quotation.Quotation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Kind != nil {
		query += fmt.Sprintf(` AND kind = $%d`, argPos)
		args = append(args, *filter.Kind)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(` AND status = $%d`, argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []quotation.Quotation
	for rows.Next() {
		qt, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, qt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotations, nil
}

// Update implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) Update(ctx context.Context, qt quotation.Quotation) (quotation.Quotation, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, _ := json.Marshal(qt.Items)

	query := `
		UPDATE quotations
		SET customer_name = $1, customer_phone = $2, vehicle_reg = $3, items = $4,
			subtotal = $5, tax_rate = $6, tax_amount = $7, total = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + quotationColumns

	updated, err := scanQuotation(q.QueryRow(ctx, query,
		qt.CustomerName, qt.CustomerPhone, qt.VehicleReg, itemsJSON,
		qt.Subtotal, qt.TaxRate, qt.TaxAmount, qt.Total, qt.Notes, qt.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quotation.Quotation{}, quotation.ErrQuotationNotFound
		}
		return quotation.Quotation{}, err
	}
	return updated, nil
}

// UpdateStatus implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status quotation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE quotations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quotation.ErrQuotationNotFound
		}
		return fmt.Errorf("failed to update quotation status: %w", err)
	}
	return nil
}

// Delete implements quotation.QuotationRepository.
func (r *quotationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return quotation.ErrQuotationNotFound
	}
	return nil
}

// NextNumber implements quotation.QuotationRepository. Numbers come from a
// per-kind sequence row so deleted drafts never free a number.
func (r *quotationRepositoryImpl) NextNumber(ctx context.Context, kind quotation.Kind) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO document_sequences (kind, last_value)
		VALUES ($1, 1)
		ON CONFLICT (kind) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value
	`

	var value int64
	if err := q.QueryRow(ctx, query, kind).Scan(&value); err != nil {
		return "", fmt.Errorf("failed to advance document sequence: %w", err)
	}

	prefix := "Q"
	if kind == quotation.KindInvoice {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%04d", prefix, value), nil
}
