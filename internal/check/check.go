package check

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrInvalidTransition = fault.New(fault.KindStateConflict, "invalid_transition", "check cannot make this transition")
	ErrInvalidCheck      = fault.New(fault.KindValidation, "invalid_check", "invalid check")
	ErrCheckNotFound     = fault.New(fault.KindNotFound, "check_not_found", "check not found")
	ErrCrossYear         = fault.New(fault.KindReferential, "cross_year_check", "check belongs to another fiscal year")
)

type Type string

const (
	TypeReceivable Type = "receivable"
	TypePayable    Type = "payable"
)

type Status string

const (
	StatusInSafe    Status = "in_safe"
	StatusCollected Status = "collected"
	StatusReturned  Status = "returned"
	StatusSpent     Status = "spent"
)

type Action string

const (
	ActionCollect Action = "collect"
	ActionSpend   Action = "spend"
	ActionReturn  Action = "return"
)

// Check is a post-dated check received from or issued to a person.
// JournalEntryID is the entry of the latest transition.
type Check struct {
	ID             int64
	FiscalYearID   int64
	Type           Type
	CheckNo        string
	CheckDate      time.Time
	DueDate        time.Time
	Amount         int64
	CashAccountID  int64
	PersonID       int64
	Status         Status
	JournalEntryID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Transition is one recorded status change.
type Transition struct {
	ID             int64
	CheckID        int64
	From           Status
	To             Status
	JournalEntryID int64
	OccurredOn     time.Time
	CreatedAt      time.Time
}

// Side identifies a posting account by role. The service maps roles to chart
// accounts; the cash account role is the check's bank account.
type Side string

const (
	SideBank             Side = "bank"
	SideReceivable       Side = "receivable"
	SidePayable          Side = "payable"
	SideChecksReceivable Side = "checks_receivable"
	SideChecksPayable    Side = "checks_payable"
)

// Rule is the outcome of a transition: the new status and the accounts the
// posted entry debits and credits with the check amount.
type Rule struct {
	To     Status
	Debit  Side
	Credit Side
}

type ruleKey struct {
	typ    Type
	from   Status
	action Action
}

// transitions is the whole lifecycle. Pairs missing here are invalid.
var transitions = map[ruleKey]Rule{
	{TypeReceivable, StatusInSafe, ActionCollect}: {To: StatusCollected, Debit: SideBank, Credit: SideChecksReceivable},
	{TypeReceivable, StatusInSafe, ActionReturn}:  {To: StatusReturned, Debit: SideReceivable, Credit: SideChecksReceivable},
	{TypePayable, StatusInSafe, ActionSpend}:      {To: StatusSpent, Debit: SideChecksPayable, Credit: SideBank},
	{TypePayable, StatusInSafe, ActionReturn}:     {To: StatusReturned, Debit: SideChecksPayable, Credit: SidePayable},
}

// registration is the entry posted when a check enters the safe.
var registration = map[Type]Rule{
	TypeReceivable: {To: StatusInSafe, Debit: SideChecksReceivable, Credit: SideReceivable},
	TypePayable:    {To: StatusInSafe, Debit: SidePayable, Credit: SideChecksPayable},
}

// Next returns the rule for applying action to a check of type t in status from.
func Next(t Type, from Status, action Action) (Rule, error) {
	r, ok := transitions[ruleKey{t, from, action}]
	if !ok {
		return Rule{}, fmt.Errorf("%w: cannot %s a %s check that is %s", ErrInvalidTransition, action, t, from)
	}

	return r, nil
}

func (c *Check) validate() error {
	switch {
	case c.Type != TypeReceivable && c.Type != TypePayable:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCheck, c.Type)
	case strings.TrimSpace(c.CheckNo) == "":
		return fmt.Errorf("%w: check number is required", ErrInvalidCheck)
	case c.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrInvalidCheck)
	case c.DueDate.Before(c.CheckDate):
		return fmt.Errorf("%w: due date precedes check date", ErrInvalidCheck)
	}

	return nil
}

type ListFilter struct {
	FiscalYearID int64
	Type         *Type
	Status       *Status
	PersonID     *int64
	DueBefore    *time.Time
}
