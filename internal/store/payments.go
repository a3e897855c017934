package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// ListPayments returns every construction payment record with its received
// payment entries attached.
func ListPayments(ctx context.Context, db Querier) ([]models.ConstructionPayment, error) {
	query := `
		SELECT id, project, total_amount, vat_type, vat_percentage, vat_amount,
		       expected_contract, expected_start, expected_middle, expected_final,
		       created_at, updated_at
		FROM construction_payments
		ORDER BY id ASC
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.ConstructionPayment{}
	index := map[int64]int{}
	for rows.Next() {
		var p models.ConstructionPayment
		err := rows.Scan(
			&p.ID,
			&p.Project,
			&p.TotalAmount,
			&p.VATType,
			&p.VATPercentage,
			&p.VATAmount,
			&p.ExpectedPaymentDates.Contract,
			&p.ExpectedPaymentDates.Start,
			&p.ExpectedPaymentDates.Middle,
			&p.ExpectedPaymentDates.Final,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Payments = []models.PaymentEntry{}
		index[p.ID] = len(payments)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryQuery := `
		SELECT id, payment_id, type, amount, received_at
		FROM payment_entries
		ORDER BY id ASC
	`
	entryRows, err := db.Query(ctx, entryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e models.PaymentEntry
		var paymentID int64
		if err := entryRows.Scan(&e.ID, &paymentID, &e.Type, &e.Amount, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment entry: %w", err)
		}
		if i, ok := index[paymentID]; ok {
			payments[i].Payments = append(payments[i].Payments, e)
		}
	}
	return payments, entryRows.Err()
}

// expectedDateColumns maps the patch keys to their columns
var expectedDateColumns = map[string]string{
	"contract": "expected_contract",
	"start":    "expected_start",
	"middle":   "expected_middle",
	"final":    "expected_final",
}

// UpdateExpectedDates patches the expected payment dates of one record.
// Milestones listed in Clear are nulled, removing their calendar entries.
func UpdateExpectedDates(ctx context.Context, db Querier, id int64, patch models.UpdateExpectedDatesRequest) error {
	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.Contract != nil {
		add("expected_contract", *patch.Contract)
	}
	if patch.Start != nil {
		add("expected_start", *patch.Start)
	}
	if patch.Middle != nil {
		add("expected_middle", *patch.Middle)
	}
	if patch.Final != nil {
		add("expected_final", *patch.Final)
	}
	for _, key := range patch.Clear {
		col, ok := expectedDateColumns[key]
		if !ok {
			return fmt.Errorf("unknown milestone key %q", key)
		}
		sets = append(sets, col+" = NULL")
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE construction_payments SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update expected dates for payment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
