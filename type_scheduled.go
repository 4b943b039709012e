package wealthdesk

import (
	"github.com/etnz/wealthdesk/date"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of money movement a schedule performs.
type TransactionType string

const (
	Investment        TransactionType = "investment"
	RegularInvestment TransactionType = "regular_investment"
	Withdrawal        TransactionType = "withdrawal"
	RegularWithdrawal TransactionType = "regular_withdrawal"
)

// TransactionTypes lists the accepted transaction types.
var TransactionTypes = []TransactionType{Investment, RegularInvestment, Withdrawal, RegularWithdrawal}

// Valid reports whether t is one of TransactionTypes.
func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Recurring reports whether t repeats on an interval.
func (t TransactionType) Recurring() bool { return t == RegularInvestment || t == RegularWithdrawal }

// Recurrence is the interval between two executions of a regular transaction.
type Recurrence string

const (
	Monthly   Recurrence = "monthly"
	Quarterly Recurrence = "quarterly"
	Annually  Recurrence = "annually"
)

// Valid reports whether r is a known interval.
func (r Recurrence) Valid() bool { return r == Monthly || r == Quarterly || r == Annually }

// ScheduleStatus is the lifecycle status of a scheduled transaction.
type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "active"
	SchedulePaused    ScheduleStatus = "paused"
	ScheduleCancelled ScheduleStatus = "cancelled"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Terminal reports whether no transition leaves s.
func (s ScheduleStatus) Terminal() bool { return s == ScheduleCancelled || s == ScheduleCompleted }

// CanTransition reports whether a schedule may move from one status to another.
//
//	active    -> paused, cancelled, completed
//	paused    -> active, cancelled, completed
//	cancelled, completed -> nothing
func CanTransition(from, to ScheduleStatus) bool {
	if from.Terminal() || from == to {
		return false
	}
	switch to {
	case SchedulePaused:
		return from == ScheduleActive
	case ScheduleActive:
		return from == SchedulePaused
	case ScheduleCancelled, ScheduleCompleted:
		return true
	}
	return false
}

// ScheduledTransaction is a one-off or regular investment/withdrawal on a portfolio fund.
type ScheduledTransaction struct {
	ID                 int             `json:"id,omitempty"`
	PortfolioFundID    int             `json:"portfolio_fund_id"`
	Type               TransactionType `json:"transaction_type"`
	Amount             decimal.Decimal `json:"amount"`
	ExecutionDay       int             `json:"execution_day"`
	NextExecutionDate  date.Date       `json:"next_execution_date"`
	RecurrenceInterval Recurrence      `json:"recurrence_interval,omitempty"`
	MaxExecutions      int             `json:"max_executions,omitempty"`
	TotalExecutions    int             `json:"total_executions"`
	Status             ScheduleStatus  `json:"status"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          date.Date       `json:"created_at"`
}
