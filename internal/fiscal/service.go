package fiscal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/database"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fiscal
type Repository interface {
	// LockYears serializes writers that must see every year, such as the overlap check.
	LockYears(ctx context.Context) error
	CreateYear(ctx context.Context, y *Year) error
	GetYear(ctx context.Context, id int64) (*Year, error)
	ListYears(ctx context.Context) ([]*Year, error)
	ActiveYear(ctx context.Context) (*Year, error)
	SetActive(ctx context.Context, id int64) error
	SetClosed(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	tx   database.TxRunner
}

func NewService(repo Repository, tx database.TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

type CreateParams struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Service) CreateYear(ctx context.Context, params CreateParams) (*Year, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPeriod)
	}

	start, end := Day(params.StartDate), Day(params.EndDate)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	y := &Year{Name: name, StartDate: start, EndDate: end}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.LockYears(ctx); err != nil {
			return err
		}

		years, err := s.repo.ListYears(ctx)
		if err != nil {
			return err
		}

		for _, other := range years {
			if other.Overlaps(start, end) {
				return fmt.Errorf("%w: %q covers %s..%s", ErrOverlappingPeriod, other.Name,
					other.StartDate.Format(time.DateOnly), other.EndDate.Format(time.DateOnly))
			}
		}

		return s.repo.CreateYear(ctx, y)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("fiscal year created", "year_id", y.ID, "name", y.Name)

	return y, nil
}

// Activate makes id the single active year; the previously active year is
// deactivated in the same transaction.
func (s *Service) Activate(ctx context.Context, id int64) (*Year, error) {
	var y *Year

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		y, err = s.repo.GetYear(ctx, id)
		if err != nil {
			return err
		}

		if y.Closed {
			return fmt.Errorf("%w: %q", ErrYearClosed, y.Name)
		}

		if err := s.repo.SetActive(ctx, id); err != nil {
			return err
		}

		y.IsActive = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	return y, nil
}

func (s *Service) CurrentYear(ctx context.Context) (*Year, error) {
	return s.repo.ActiveYear(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Year, error) {
	return s.repo.GetYear(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Year, error) {
	return s.repo.ListYears(ctx)
}

// YearFor returns the year whose range covers d.
func (s *Service) YearFor(ctx context.Context, d time.Time) (*Year, error) {
	years, err := s.repo.ListYears(ctx)
	if err != nil {
		return nil, err
	}

	for _, y := range years {
		if y.Contains(d) {
			return y, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoYearForDate, d.Format(time.DateOnly))
}

// Close stops a year from accepting further postings. Closed years stay
// reportable. The active year must be switched away from first.
func (s *Service) Close(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		y, err := s.repo.GetYear(ctx, id)
		if err != nil {
			return err
		}

		switch {
		case y.Closed:
			return fmt.Errorf("%w: %q", ErrYearClosed, y.Name)
		case y.IsActive:
			return fmt.Errorf("%w: activate another year before closing %q", ErrActiveYear, y.Name)
		}

		return s.repo.SetClosed(ctx, id)
	})
}

// EnsureOpen returns the year if it exists, is not closed and covers date.
func (s *Service) EnsureOpen(ctx context.Context, id int64, date time.Time) (*Year, error) {
	y, err := s.repo.GetYear(ctx, id)
	if err != nil {
		return nil, err
	}

	if y.Closed {
		return nil, fmt.Errorf("%w: %q", ErrYearClosed, y.Name)
	}

	if !y.Contains(date) {
		return nil, fmt.Errorf("%w: %s not in %q (%s..%s)", ErrDateOutOfPeriod, date.Format(time.DateOnly), y.Name,
			y.StartDate.Format(time.DateOnly), y.EndDate.Format(time.DateOnly))
	}

	return y, nil
}
