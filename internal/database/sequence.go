package database

import (
	"context"
	"fmt"
)

// Sequence kinds numbered independently per fiscal year.
const (
	SeqJournal         = "journal"
	SeqReceiptVoucher  = "receipt_voucher"
	SeqInvoiceSales    = "invoice_sales"
	SeqInvoicePurchase = "invoice_purchase"
	SeqInvoiceProforma = "invoice_proforma"
)

// NextNumber allocates the next number of a per-year sequence. The counter row
// stays locked until q's transaction ends, so concurrent callers are serialized
// and a rolled-back caller leaves no gap.
func NextNumber(ctx context.Context, q Querier, fiscalYearID int64, kind string) (int64, error) {
	query := `
		INSERT INTO sequences (fiscal_year_id, kind, last_no)
		VALUES ($1, $2, 1)
		ON CONFLICT (fiscal_year_id, kind) DO UPDATE SET last_no = sequences.last_no + 1
		RETURNING last_no
	`

	var n int64
	if err := q.QueryRowContext(ctx, query, fiscalYearID, kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("allocating %s number: %w", kind, err)
	}

	return n, nil
}
