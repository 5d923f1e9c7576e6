package check_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/check"
	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

const yearID = int64(1)

var (
	checkDate = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	rules     = check.Rules{Receivable: "1201", Payable: "3101", ChecksReceivable: "1202", ChecksPayable: "3102"}
	bank      = &chart.Account{ID: 102, FiscalYearID: yearID, Code: "1102", Type: chart.TypeAsset, IsLeaf: true}
	byCode    = map[string]int64{"1201": 120, "3101": 310, "1202": 121, "3102": 311}
)

type mocks struct {
	repo    *check.MockRepository
	ledger  *check.MockLedger
	banks   *check.MockBankAccounts
	persons *check.MockPersons
}

func newService(t *testing.T) (*check.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    check.NewMockRepository(ctrl),
		ledger:  check.NewMockLedger(ctrl),
		banks:   check.NewMockBankAccounts(ctrl),
		persons: check.NewMockPersons(ctrl),
	}

	accounts := check.NewMockAccounts(ctrl)
	accounts.EXPECT().ResolveLeafByCode(gomock.Any(), yearID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, code string) (*chart.Account, error) {
			return &chart.Account{ID: byCode[code], FiscalYearID: yearID, Code: code, IsLeaf: true}, nil
		}).AnyTimes()
	m.banks.EXPECT().LedgerAccount(gomock.Any(), yearID, int64(2)).Return(bank, nil).AnyTimes()

	return check.NewService(m.repo, m.ledger, accounts, m.banks, m.persons, databasetest.Inline{}, rules), m
}

// expectPost captures the entry and the bookkeeping that follows it.
func expectPost(t *testing.T, m mocks, to check.Status, captured *journal.PostParams) {
	t.Helper()

	m.ledger.EXPECT().PostWithin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p journal.PostParams) (*journal.Entry, error) {
			*captured = p
			return &journal.Entry{ID: 900}, journal.ValidateLines(p.Lines)
		})
	m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(5), to, int64(900)).Return(nil)
	m.repo.EXPECT().AddTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *check.Transition) error {
			assert.Equal(t, to, tr.To)
			return nil
		})
}

func inSafe(typ check.Type) *check.Check {
	return &check.Check{
		ID: 5, FiscalYearID: yearID, Type: typ, CheckNo: "A-100", Amount: 300_000,
		CashAccountID: 2, PersonID: 7, Status: check.StatusInSafe,
	}
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		typ        check.Type
		wantDebit  int64
		wantCredit int64
		personLine int
	}{
		{typ: check.TypeReceivable, wantDebit: 121, wantCredit: 120, personLine: 1},
		{typ: check.TypePayable, wantDebit: 310, wantCredit: 311, personLine: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			svc, m := newService(t)

			m.persons.EXPECT().RequirePerson(gomock.Any(), int64(7)).Return(nil)
			m.banks.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&cash.Account{ID: 2}, nil)
			m.repo.EXPECT().CreateCheck(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *check.Check) error {
					c.ID = 5
					return nil
				})

			var posted journal.PostParams
			expectPost(t, m, check.StatusInSafe, &posted)

			got, err := svc.Register(context.Background(), check.RegisterParams{
				FiscalYearID: yearID, Type: tt.typ, CheckNo: " A-100 ", CheckDate: checkDate,
				DueDate: checkDate.AddDate(0, 2, 0), Amount: 300_000, CashAccountID: 2, PersonID: 7,
			})
			require.NoError(t, err)

			assert.Equal(t, check.StatusInSafe, got.Status)
			assert.Equal(t, "A-100", got.CheckNo)
			assert.Equal(t, tt.wantDebit, posted.Lines[0].AccountID)
			assert.Equal(t, tt.wantCredit, posted.Lines[1].AccountID)
			assert.Equal(t, int64(7), *posted.Lines[tt.personLine].PersonID)
			assert.Nil(t, posted.Lines[1-tt.personLine].PersonID)
		})
	}
}

func TestService_Register_Invalid(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), check.RegisterParams{
		FiscalYearID: yearID, Type: check.TypeReceivable, CheckNo: "A-1", CheckDate: checkDate,
		DueDate: checkDate.AddDate(0, 0, -1), Amount: 1, CashAccountID: 2, PersonID: 7,
	})
	assert.ErrorIs(t, err, check.ErrInvalidCheck)
}

func TestService_Collect(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockCheck(gomock.Any(), int64(5)).Return(inSafe(check.TypeReceivable), nil)

	var posted journal.PostParams
	expectPost(t, m, check.StatusCollected, &posted)

	got, err := svc.Collect(context.Background(), 5, check.TransitionParams{Date: checkDate})
	require.NoError(t, err)

	assert.Equal(t, check.StatusCollected, got.Status)
	assert.Equal(t, int64(900), *got.JournalEntryID)
	assert.Equal(t, journal.Line{AccountID: 102, Debit: 300_000}, posted.Lines[0])
	assert.Equal(t, journal.Line{AccountID: 121, Credit: 300_000}, posted.Lines[1])
	assert.Equal(t, journal.SourceCheck, posted.SourceType)
}

func TestService_Spend(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockCheck(gomock.Any(), int64(5)).Return(inSafe(check.TypePayable), nil)

	var posted journal.PostParams
	expectPost(t, m, check.StatusSpent, &posted)

	_, err := svc.Spend(context.Background(), 5, check.TransitionParams{Date: checkDate})
	require.NoError(t, err)

	assert.Equal(t, int64(311), posted.Lines[0].AccountID)
	assert.Equal(t, int64(102), posted.Lines[1].AccountID)
}

func TestService_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		check func() *check.Check
		run   func(svc *check.Service) error
	}{
		{
			name:  "CollectPayable",
			check: func() *check.Check { return inSafe(check.TypePayable) },
			run: func(svc *check.Service) error {
				_, err := svc.Collect(context.Background(), 5, check.TransitionParams{Date: checkDate})
				return err
			},
		},
		{
			name:  "SpendReceivable",
			check: func() *check.Check { return inSafe(check.TypeReceivable) },
			run: func(svc *check.Service) error {
				_, err := svc.Spend(context.Background(), 5, check.TransitionParams{Date: checkDate})
				return err
			},
		},
		{
			name: "ReturnCollected",
			check: func() *check.Check {
				c := inSafe(check.TypeReceivable)
				c.Status = check.StatusCollected
				return c
			},
			run: func(svc *check.Service) error {
				_, err := svc.Return(context.Background(), 5, check.TransitionParams{Date: checkDate})
				return err
			},
		},
		{
			name: "CollectTwice",
			check: func() *check.Check {
				c := inSafe(check.TypeReceivable)
				c.Status = check.StatusCollected
				return c
			},
			run: func(svc *check.Service) error {
				_, err := svc.Collect(context.Background(), 5, check.TransitionParams{Date: checkDate})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			m.repo.EXPECT().LockCheck(gomock.Any(), int64(5)).Return(tt.check(), nil)

			assert.ErrorIs(t, tt.run(svc), check.ErrInvalidTransition)
		})
	}
}

func TestService_Collect_OtherYear(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockCheck(gomock.Any(), int64(5)).Return(inSafe(check.TypeReceivable), nil)

	_, err := svc.Collect(context.Background(), 5, check.TransitionParams{FiscalYearID: yearID + 1, Date: checkDate})
	assert.ErrorIs(t, err, check.ErrCrossYear)
}

func TestService_Collect_SameYearExplicit(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockCheck(gomock.Any(), int64(5)).Return(inSafe(check.TypeReceivable), nil)

	var posted journal.PostParams
	expectPost(t, m, check.StatusCollected, &posted)

	_, err := svc.Collect(context.Background(), 5, check.TransitionParams{FiscalYearID: yearID, Date: checkDate})
	require.NoError(t, err)

	assert.Equal(t, yearID, posted.FiscalYearID)
}
