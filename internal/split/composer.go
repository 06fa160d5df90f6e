// Package split builds and validates multi-line allocations for a single
// bank transaction. A Composer owns its working set exclusively; lines are
// discarded on cancel and submitted atomically on save.
package split

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/reconcile-dev/reconcile/internal/balance"
	"github.com/reconcile-dev/reconcile/internal/model"
)

// ValidationError describes a single invalid split line, or the unbalanced
// set as a whole (empty LocalID).
type ValidationError struct {
	LocalID     string
	Description string
}

func (e ValidationError) Error() string {
	if e.LocalID == "" {
		return e.Description
	}
	return fmt.Sprintf("line %s: %s", e.LocalID, e.Description)
}

// Composer is the working state for splitting one transaction.
type Composer struct {
	transactionID string
	amount        decimal.Decimal // the transaction's signed amount
	lines         []model.SplitLine
}

// NewComposer starts a split for the given transaction.
func NewComposer(tx model.BankTransaction) *Composer {
	return &Composer{transactionID: tx.ID, amount: tx.Amount}
}

// TransactionID returns the transaction being split.
func (c *Composer) TransactionID() string { return c.transactionID }

// AddLine appends a new line and returns its local id.
func (c *Composer) AddLine(accountID string, amount decimal.Decimal, description string) string {
	id := uuid.NewString()
	c.lines = append(c.lines, model.SplitLine{
		LocalID:     id,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
	})
	return id
}

// UpdateLine replaces the account/amount/description of an existing line.
func (c *Composer) UpdateLine(localID, accountID string, amount decimal.Decimal, description string) error {
	for i := range c.lines {
		if c.lines[i].LocalID == localID {
			c.lines[i].AccountID = accountID
			c.lines[i].Amount = amount
			c.lines[i].Description = description
			return nil
		}
	}
	return fmt.Errorf("unknown split line %s", localID)
}

// RemoveLine deletes a line from the working set.
func (c *Composer) RemoveLine(localID string) error {
	for i := range c.lines {
		if c.lines[i].LocalID == localID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown split line %s", localID)
}

// Lines returns a copy of the working set.
func (c *Composer) Lines() []model.SplitLine {
	out := make([]model.SplitLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Remaining returns how much of the transaction amount is still
// unallocated: |amount| - sum(|line amounts|).
func (c *Composer) Remaining() decimal.Decimal {
	allocated := decimal.Zero
	for _, l := range c.lines {
		allocated = allocated.Add(l.Amount.Abs())
	}
	return c.amount.Abs().Sub(allocated)
}

// Validate enforces the split invariants: at least one line, every line has
// an account and a non-zero amount, and the absolute line amounts sum to the
// absolute transaction amount within the shared epsilon.
func (c *Composer) Validate() []ValidationError {
	var errs []ValidationError

	if len(c.lines) == 0 {
		errs = append(errs, ValidationError{Description: "split needs at least one line"})
		return errs
	}

	for _, l := range c.lines {
		if l.AccountID == "" {
			errs = append(errs, ValidationError{LocalID: l.LocalID, Description: "missing account"})
		}
		if l.Amount.IsZero() {
			errs = append(errs, ValidationError{LocalID: l.LocalID, Description: "missing amount"})
		}
	}

	if rem := c.Remaining(); !balance.WithinEpsilon(rem) {
		errs = append(errs, ValidationError{
			Description: fmt.Sprintf("lines sum to %s, transaction amount is %s",
				c.amount.Abs().Sub(rem).StringFixed(2), c.amount.Abs().StringFixed(2)),
		})
	}

	return errs
}

// Balanced reports whether the working set currently passes Validate.
func (c *Composer) Balanced() bool {
	return len(c.Validate()) == 0
}
