package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, type, code, sheba, card_no, chart_account_id, is_active, created_at
func scanAccount(s scanner) (*cash.Account, error) {
	var a cash.Account

	var typ string

	var code, sheba, cardNo sql.NullString

	if err := s.Scan(&a.ID, &a.Name, &typ, &code, &sheba, &cardNo, &a.ChartAccountID, &a.IsActive, &a.CreatedAt); err != nil {
		return nil, err
	}

	a.Type = cash.AccountType(typ)
	a.Code = code.String
	a.Sheba = sheba.String
	a.CardNo = cardNo.String

	return &a, nil
}

const selectAccountColumns = `id, name, type, code, sheba, card_no, chart_account_id, is_active, created_at`

func (s *Store) CreateAccount(ctx context.Context, a *cash.Account) error {
	query := `
		INSERT INTO cash_accounts (name, type, code, sheba, card_no, chart_account_id, is_active)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id, created_at
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		a.Name, a.Type, a.Code, a.Sheba, a.CardNo, a.ChartAccountID, a.IsActive,
	).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("creating cash account: %w", err)
	}

	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *cash.Account) error {
	query := `
		UPDATE cash_accounts
		SET name = $2, type = $3, code = NULLIF($4, ''), sheba = NULLIF($5, ''), card_no = NULLIF($6, ''),
			chart_account_id = $7, is_active = $8
		WHERE id = $1
	`

	res, err := database.Conn(ctx, s.db).ExecContext(ctx, query,
		a.ID, a.Name, a.Type, a.Code, a.Sheba, a.CardNo, a.ChartAccountID, a.IsActive)
	if err != nil {
		return fmt.Errorf("updating cash account: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", cash.ErrAccountNotFound, a.ID)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id int64) (*cash.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM cash_accounts WHERE id = $1`

	a, err := scanAccount(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", cash.ErrAccountNotFound, id)
		}

		return nil, fmt.Errorf("getting cash account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*cash.Account, error) {
	rows, err := database.Conn(ctx, s.db).QueryContext(ctx,
		`SELECT `+selectAccountColumns+` FROM cash_accounts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing cash accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*cash.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cash account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (s *Store) IsAccountReferenced(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM receipt_vouchers WHERE cash_account_id = $1 OR transfer_to_cash_account_id = $1)
			OR EXISTS (SELECT 1 FROM checks WHERE cash_account_id = $1)
	`

	var used bool
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query, id).Scan(&used); err != nil {
		return false, fmt.Errorf("checking cash account references: %w", err)
	}

	return used, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM cash_accounts WHERE id = $1`, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d", cash.ErrAccountInUse, id)
		}

		return fmt.Errorf("deleting cash account: %w", err)
	}

	return nil
}

// Expected column order: id, fiscal_year_id, voucher_no, voucher_date, type, cash_account_id,
// transfer_to_cash_account_id, person_id, amount, bank_fee, description, status, journal_entry_id, created_at
func scanVoucher(s scanner) (*cash.Voucher, error) {
	var v cash.Voucher

	var voucherNo sql.NullInt64

	var typ, status string

	if err := s.Scan(
		&v.ID, &v.FiscalYearID, &voucherNo, &v.VoucherDate, &typ, &v.CashAccountID,
		&v.TransferToID, &v.PersonID, &v.Amount, &v.BankFee, &v.Description, &status,
		&v.JournalEntryID, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	v.VoucherNo = voucherNo.Int64
	v.Type = cash.VoucherType(typ)
	v.Status = cash.Status(status)

	return &v, nil
}

const selectVoucherColumns = `
	id, fiscal_year_id, voucher_no, voucher_date, type, cash_account_id,
	transfer_to_cash_account_id, person_id, amount, bank_fee, description, status,
	journal_entry_id, created_at
`

func (s *Store) CreateVoucher(ctx context.Context, v *cash.Voucher) error {
	query := `
		INSERT INTO receipt_vouchers (fiscal_year_id, voucher_date, type, cash_account_id,
			transfer_to_cash_account_id, person_id, amount, bank_fee, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		v.FiscalYearID, v.VoucherDate, v.Type, v.CashAccountID,
		v.TransferToID, v.PersonID, v.Amount, v.BankFee, v.Description, v.Status,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: voucher references a missing cash account or fiscal year", cash.ErrAccountNotFound)
		}

		return fmt.Errorf("creating voucher: %w", err)
	}

	return nil
}

func (s *Store) GetVoucher(ctx context.Context, id int64) (*cash.Voucher, error) {
	return s.getVoucher(ctx, id, "")
}

func (s *Store) LockVoucher(ctx context.Context, id int64) (*cash.Voucher, error) {
	return s.getVoucher(ctx, id, " FOR UPDATE")
}

func (s *Store) getVoucher(ctx context.Context, id int64, lock string) (*cash.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM receipt_vouchers WHERE id = $1` + lock

	v, err := scanVoucher(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", cash.ErrVoucherNotFound, id)
		}

		return nil, fmt.Errorf("getting voucher: %w", err)
	}

	return v, nil
}

func (s *Store) ListVouchers(ctx context.Context, filter cash.VoucherFilter) ([]*cash.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM receipt_vouchers WHERE fiscal_year_id = $1`

	args := []any{filter.FiscalYearID}

	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.Type != nil {
		add("type = $%d", *filter.Type)
	}

	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	if filter.CashAccountID != nil {
		args = append(args, *filter.CashAccountID)
		query += fmt.Sprintf(" AND (cash_account_id = $%[1]d OR transfer_to_cash_account_id = $%[1]d)", len(args))
	}

	if filter.From != nil {
		add("voucher_date >= $%d", *filter.From)
	}

	if filter.To != nil {
		add("voucher_date <= $%d", *filter.To)
	}

	query += " ORDER BY voucher_date, voucher_no NULLS LAST, id"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*cash.Voucher

	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning voucher: %w", err)
		}

		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}

func (s *Store) MarkVoucherPosted(ctx context.Context, id, voucherNo, entryID int64) error {
	res, err := database.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE receipt_vouchers SET status = 'posted', voucher_no = $2, journal_entry_id = $3
		WHERE id = $1 AND status = 'draft'`, id, voucherNo, entryID)
	if err != nil {
		return fmt.Errorf("posting voucher: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", cash.ErrVoucherPosted, id)
	}

	return nil
}

func (s *Store) DeleteVoucher(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx,
		`DELETE FROM receipt_vouchers WHERE id = $1 AND status = 'draft'`, id); err != nil {
		return fmt.Errorf("deleting voucher: %w", err)
	}

	return nil
}

func (s *Store) NextVoucherNo(ctx context.Context, fiscalYearID int64) (int64, error) {
	return database.NextNumber(ctx, database.Conn(ctx, s.db), fiscalYearID, database.SeqReceiptVoucher)
}
