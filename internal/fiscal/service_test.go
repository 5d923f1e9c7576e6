package fiscal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/fault"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func year1403() *fiscal.Year {
	return &fiscal.Year{ID: 1, Name: "1403", StartDate: date(2024, 3, 20), EndDate: date(2025, 3, 20), IsActive: true}
}

func TestService_CreateYear(t *testing.T) {
	type testCase struct {
		name      string
		params    fiscal.CreateParams
		setupMock func(m *fiscal.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: fiscal.CreateParams{Name: "1404", StartDate: date(2025, 3, 21), EndDate: date(2026, 3, 20)},
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().LockYears(gomock.Any()).Return(nil)
				m.EXPECT().ListYears(gomock.Any()).Return([]*fiscal.Year{year1403()}, nil)
				m.EXPECT().CreateYear(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, y *fiscal.Year) error {
						y.ID = 2
						return nil
					})
			},
		},
		{
			name:    "EndBeforeStart",
			params:  fiscal.CreateParams{Name: "bad", StartDate: date(2025, 3, 21), EndDate: date(2025, 3, 20)},
			wantErr: fiscal.ErrInvalidPeriod,
		},
		{
			name:    "MissingName",
			params:  fiscal.CreateParams{Name: "  ", StartDate: date(2025, 3, 21), EndDate: date(2026, 3, 20)},
			wantErr: fiscal.ErrInvalidPeriod,
		},
		{
			name:   "OverlapsOnBoundaryDay",
			params: fiscal.CreateParams{Name: "1404", StartDate: date(2025, 3, 20), EndDate: date(2026, 3, 19)},
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().LockYears(gomock.Any()).Return(nil)
				m.EXPECT().ListYears(gomock.Any()).Return([]*fiscal.Year{year1403()}, nil)
			},
			wantErr: fiscal.ErrOverlappingPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := fiscal.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := fiscal.NewService(repo, databasetest.Inline{})
			got, err := svc.CreateYear(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(2), got.ID)
			assert.False(t, got.IsActive)
		})
	}
}

func TestService_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := fiscal.NewMockRepository(ctrl)
	runner := &databasetest.Recorder{}

	next := &fiscal.Year{ID: 2, Name: "1404", StartDate: date(2025, 3, 21), EndDate: date(2026, 3, 20)}

	gomock.InOrder(
		repo.EXPECT().GetYear(gomock.Any(), int64(2)).Return(next, nil),
		repo.EXPECT().SetActive(gomock.Any(), int64(2)).Return(nil),
	)

	got, err := fiscal.NewService(repo, runner).Activate(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, runner.Calls)
}

func TestService_Activate_ClosedYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := fiscal.NewMockRepository(ctrl)

	closed := year1403()
	closed.Closed = true
	repo.EXPECT().GetYear(gomock.Any(), int64(1)).Return(closed, nil)

	_, err := fiscal.NewService(repo, databasetest.Inline{}).Activate(context.Background(), 1)
	require.ErrorIs(t, err, fiscal.ErrYearClosed)
	assert.ErrorIs(t, err, fault.StateConflict)
}

func TestService_CurrentYear_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := fiscal.NewMockRepository(ctrl)
	repo.EXPECT().ActiveYear(gomock.Any()).Return(nil, fiscal.ErrNoActiveYear)

	_, err := fiscal.NewService(repo, databasetest.Inline{}).CurrentYear(context.Background())
	assert.ErrorIs(t, err, fault.NotFound)
}

func TestService_YearFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := fiscal.NewMockRepository(ctrl)
	repo.EXPECT().ListYears(gomock.Any()).Return([]*fiscal.Year{year1403()}, nil).Times(2)

	svc := fiscal.NewService(repo, databasetest.Inline{})

	got, err := svc.YearFor(context.Background(), time.Date(2025, 3, 20, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.YearFor(context.Background(), date(2025, 3, 21))
	assert.ErrorIs(t, err, fiscal.ErrNoYearForDate)
}

func TestService_EnsureOpen(t *testing.T) {
	type testCase struct {
		name      string
		date      time.Time
		setupMock func(m *fiscal.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Open",
			date: date(2024, 6, 1),
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(year1403(), nil)
			},
		},
		{
			name: "FirstAndLastDayIncluded",
			date: date(2025, 3, 20),
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(year1403(), nil)
			},
		},
		{
			name: "DateOutOfPeriod",
			date: date(2024, 3, 19),
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(year1403(), nil)
			},
			wantErr: fiscal.ErrDateOutOfPeriod,
		},
		{
			name: "Closed",
			date: date(2024, 6, 1),
			setupMock: func(m *fiscal.MockRepository) {
				y := year1403()
				y.Closed = true
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(y, nil)
			},
			wantErr: fiscal.ErrYearClosed,
		},
		{
			name: "Unknown",
			date: date(2024, 6, 1),
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(nil, fiscal.ErrUnknownFiscalYear)
			},
			wantErr: fiscal.ErrUnknownFiscalYear,
		},
		{
			name: "StorageFailure",
			date: date(2024, 6, 1),
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().GetYear(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := fiscal.NewMockRepository(ctrl)
			tt.setupMock(repo)

			_, err := fiscal.NewService(repo, databasetest.Inline{}).EnsureOpen(context.Background(), 1, tt.date)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var fe *fault.Error
			if errors.As(tt.wantErr, &fe) {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestService_Close(t *testing.T) {
	tests := []struct {
		name      string
		year      func() *fiscal.Year
		setupMock func(m *fiscal.MockRepository)
		wantErr   error
	}{
		{
			name: "Inactive",
			year: func() *fiscal.Year {
				y := year1403()
				y.IsActive = false
				return y
			},
			setupMock: func(m *fiscal.MockRepository) {
				m.EXPECT().SetClosed(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:    "Active",
			year:    year1403,
			wantErr: fiscal.ErrActiveYear,
		},
		{
			name: "AlreadyClosed",
			year: func() *fiscal.Year {
				y := year1403()
				y.IsActive = false
				y.Closed = true
				return y
			},
			wantErr: fiscal.ErrYearClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := fiscal.NewMockRepository(ctrl)
			repo.EXPECT().GetYear(gomock.Any(), int64(1)).Return(tt.year(), nil)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := fiscal.NewService(repo, databasetest.Inline{}).Close(context.Background(), 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, fault.StateConflict)
		})
	}
}
