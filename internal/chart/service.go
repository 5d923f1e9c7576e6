package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=chart
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id int64) (*Account, error)
	GetAccountByCode(ctx context.Context, fiscalYearID int64, code string) (*Account, error)
	ListAccounts(ctx context.Context, fiscalYearID int64) ([]*Account, error)
	CountAccounts(ctx context.Context, fiscalYearID int64) (int, error)
	// LockAccount holds a row lock on the account until the transaction ends.
	LockAccount(ctx context.Context, id int64) error
	HasPostings(ctx context.Context, id int64) (bool, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	DeleteAccount(ctx context.Context, id int64) error
}

// YearLookup is the part of the fiscal service the chart needs.
type YearLookup interface {
	Get(ctx context.Context, id int64) (*fiscal.Year, error)
}

type Service struct {
	repo     Repository
	years    YearLookup
	tx       database.TxRunner
	template []TemplateAccount
}

type Option func(*Service)

// WithTemplate replaces the built-in seed template.
func WithTemplate(t []TemplateAccount) Option {
	return func(s *Service) {
		s.template = t
	}
}

func NewService(repo Repository, years YearLookup, tx database.TxRunner, opts ...Option) *Service {
	s := &Service{repo: repo, years: years, tx: tx, template: DefaultTemplate()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	FiscalYearID int64
	Code         string
	Title        string
	Type         Type
}

func (s *Service) CreateAccount(ctx context.Context, params CreateParams) (*Account, error) {
	var a *Account

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.years.Get(ctx, params.FiscalYearID); err != nil {
			return err
		}

		var err error

		a, err = s.create(ctx, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// create validates and inserts one account. The caller owns the transaction.
func (s *Service) create(ctx context.Context, params CreateParams) (*Account, error) {
	code := NormalizeCode(params.Code)

	level, err := LevelOf(code)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidAccount)
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidAccount, params.Type)
	}

	if _, err := s.repo.GetAccountByCode(ctx, params.FiscalYearID, code); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
	} else if !isUnknown(err) {
		return nil, err
	}

	a := &Account{
		FiscalYearID: params.FiscalYearID,
		Code:         code,
		Title:        title,
		Level:        level,
		ParentCode:   ParentCode(code),
		Type:         params.Type,
		IsLeaf:       true,
	}

	if a.ParentCode != "" {
		parent, err := s.repo.GetAccountByCode(ctx, params.FiscalYearID, a.ParentCode)
		if err != nil {
			if isUnknown(err) {
				return nil, fmt.Errorf("%w: parent %s of %s does not exist", ErrInvalidCode, a.ParentCode, code)
			}

			return nil, err
		}

		if parent.Type != a.Type {
			return nil, fmt.Errorf("%w: %s is %s, parent %s is %s", ErrTypeMismatch, code, a.Type, parent.Code, parent.Type)
		}

		if err := s.repo.LockAccount(ctx, parent.ID); err != nil {
			return nil, err
		}

		posted, err := s.repo.HasPostings(ctx, parent.ID)
		if err != nil {
			return nil, err
		}

		if posted {
			return nil, fmt.Errorf("%w: %s", ErrParentHasPostings, parent.Code)
		}
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// SeedDefaultChart creates the configured template in an empty fiscal year
// and returns how many accounts were created.
func (s *Service) SeedDefaultChart(ctx context.Context, fiscalYearID int64) (int, error) {
	n, err := s.createAll(ctx, fiscalYearID, s.template, true)
	if err != nil {
		return 0, err
	}

	slog.Info("chart seeded", "fiscal_year_id", fiscalYearID, "accounts", n)

	return n, nil
}

// ImportCSV adds the accounts of a template CSV to a year. Either every row is
// created or none is.
func (s *Service) ImportCSV(ctx context.Context, fiscalYearID int64, r io.Reader) (int, error) {
	accounts, err := ReadTemplate(r)
	if err != nil {
		return 0, err
	}

	n, err := s.createAll(ctx, fiscalYearID, accounts, false)
	if err != nil {
		return 0, err
	}

	slog.Info("chart imported", "fiscal_year_id", fiscalYearID, "accounts", n)

	return n, nil
}

// CopyChart copies every account of one year into another, empty, year.
func (s *Service) CopyChart(ctx context.Context, fromYearID, toYearID int64) (int, error) {
	source, err := s.repo.ListAccounts(ctx, fromYearID)
	if err != nil {
		return 0, err
	}

	template := make([]TemplateAccount, 0, len(source))
	for _, a := range source {
		template = append(template, TemplateAccount{Code: a.Code, Title: a.Title, Type: a.Type})
	}

	return s.createAll(ctx, toYearID, template, true)
}

func (s *Service) createAll(ctx context.Context, fiscalYearID int64, template []TemplateAccount, requireEmpty bool) (int, error) {
	accounts := make([]TemplateAccount, len(template))
	copy(accounts, template)
	sortParentsFirst(accounts)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.years.Get(ctx, fiscalYearID); err != nil {
			return err
		}

		if requireEmpty {
			n, err := s.repo.CountAccounts(ctx, fiscalYearID)
			if err != nil {
				return err
			}

			if n > 0 {
				return fmt.Errorf("%w: %d accounts exist", ErrAlreadySeeded, n)
			}
		}

		for _, t := range accounts {
			if _, err := s.create(ctx, CreateParams{FiscalYearID: fiscalYearID, Code: t.Code, Title: t.Title, Type: t.Type}); err != nil {
				return fmt.Errorf("account %s: %w", t.Code, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(accounts), nil
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context, fiscalYearID int64) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, fiscalYearID)
}

// ResolveLeaf returns the account if it can take postings.
func (s *Service) ResolveLeaf(ctx context.Context, id int64) (*Account, error) {
	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	return leaf(a)
}

func (s *Service) ResolveLeafByCode(ctx context.Context, fiscalYearID int64, code string) (*Account, error) {
	a, err := s.repo.GetAccountByCode(ctx, fiscalYearID, NormalizeCode(code))
	if err != nil {
		return nil, err
	}

	return leaf(a)
}

func leaf(a *Account) (*Account, error) {
	if !a.IsLeaf {
		return nil, fmt.Errorf("%w: %s %s", ErrNotLeafAccount, a.Code, a.Title)
	}

	return a, nil
}

func (s *Service) RenameAccount(ctx context.Context, id int64, title string) (*Account, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidAccount)
	}

	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTitle(ctx, id, title); err != nil {
		return nil, err
	}

	a.Title = title

	return a, nil
}

// DeleteAccount removes a leaf account nothing refers to.
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAccount(ctx, id)
		if err != nil {
			return err
		}

		if !a.IsLeaf {
			return fmt.Errorf("%w: %s has sub-accounts", ErrAccountInUse, a.Code)
		}

		if err := s.repo.LockAccount(ctx, id); err != nil {
			return err
		}

		posted, err := s.repo.HasPostings(ctx, id)
		if err != nil {
			return err
		}

		if posted {
			return fmt.Errorf("%w: %s has postings", ErrAccountInUse, a.Code)
		}

		return s.repo.DeleteAccount(ctx, id)
	})
}

func isUnknown(err error) bool {
	return errors.Is(err, ErrUnknownAccount)
}
