package hooks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/query"
)

// ScheduledTransactions reads scheduled transactions and drives their status.
type ScheduledTransactions struct{ base }

func NewScheduledTransactions(a API, cache *query.Client, logger *slog.Logger) *ScheduledTransactions {
	return &ScheduledTransactions{newBase(a, cache, logger)}
}

// List returns the schedules of a portfolio fund, all of them when
// portfolioFundID is 0.
func (h *ScheduledTransactions) List(ctx context.Context, portfolioFundID int) (txs []wealthdesk.ScheduledTransaction, ok bool, err error) {
	return query.Fetch(ctx, h.cache, scheduledKey(portfolioFundID), func(ctx context.Context) ([]wealthdesk.ScheduledTransaction, error) {
		return h.api.ScheduledTransactions(ctx, portfolioFundID)
	})
}

// cached finds transaction id in the cached lists.
func (h *ScheduledTransactions) cached(id int) (wealthdesk.ScheduledTransaction, bool) {
	for _, k := range h.cache.Keys(scheduledPrefix) {
		list, _ := query.GetAs[[]wealthdesk.ScheduledTransaction](h.cache, k)
		for _, tx := range list {
			if tx.ID == id {
				return tx, true
			}
		}
	}
	return wealthdesk.ScheduledTransaction{}, false
}

// Pause suspends an active schedule.
func (h *ScheduledTransactions) Pause(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error) {
	return h.setStatus(ctx, id, wealthdesk.SchedulePaused, "pause scheduled transaction", h.api.PauseScheduledTransaction)
}

// Resume reactivates a paused schedule.
func (h *ScheduledTransactions) Resume(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error) {
	return h.setStatus(ctx, id, wealthdesk.ScheduleActive, "resume scheduled transaction", h.api.ResumeScheduledTransaction)
}

// Cancel terminates a schedule. The backend answers the DELETE with no body.
func (h *ScheduledTransactions) Cancel(ctx context.Context, id int) error {
	_, err := h.setStatus(ctx, id, wealthdesk.ScheduleCancelled, "cancel scheduled transaction",
		func(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error) {
			return wealthdesk.ScheduledTransaction{}, h.api.CancelScheduledTransaction(ctx, id)
		})
	return err
}

func (h *ScheduledTransactions) setStatus(ctx context.Context, id int, to wealthdesk.ScheduleStatus, name string,
	call func(context.Context, int) (wealthdesk.ScheduledTransaction, error)) (wealthdesk.ScheduledTransaction, error) {
	if tx, ok := h.cached(id); ok && !wealthdesk.CanTransition(tx.Status, to) {
		return tx, fmt.Errorf("%w: scheduled transaction %d is %s, cannot become %s", ErrInvalidTransition, id, tx.Status, to)
	}
	m := query.Mutation[int, wealthdesk.ScheduledTransaction]{
		Name: name,
		Keys: func(int) []query.Key { return h.cache.Keys(scheduledPrefix) },
		Apply: mapList(func(id int, list []wealthdesk.ScheduledTransaction) []wealthdesk.ScheduledTransaction {
			return replace(list,
				func(tx wealthdesk.ScheduledTransaction) bool { return tx.ID == id },
				func(tx wealthdesk.ScheduledTransaction) wealthdesk.ScheduledTransaction {
					tx.Status = to
					return tx
				})
		}),
		Fn:          call,
		Invalidates: fixedInvalidates[int, wealthdesk.ScheduledTransaction](scheduledPrefix),
	}
	return query.Mutate(ctx, h.cache, m, id)
}

// ExecutePending asks the backend to run every schedule due by target, then
// invalidates every cached schedule list.
func (h *ScheduledTransactions) ExecutePending(ctx context.Context, target date.Date) (api.ExecutionSummary, error) {
	summary, err := h.api.ExecutePending(ctx, target)
	if err != nil {
		return summary, err
	}
	h.logger.Info("pending scheduled transactions executed", "target_date", summary.TargetDate,
		"executed", summary.Executed, "failed", summary.Failed)
	h.cache.Invalidate(scheduledPrefix)
	return summary, nil
}
