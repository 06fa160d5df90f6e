// Package session orchestrates one reconciliation workspace: it owns the
// session/transaction snapshot, runs every mutating action against the
// backend, and reloads the full aggregate after each mutation so derived
// balances always come from the server.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/reconcile-dev/reconcile/internal/api"
	"github.com/reconcile-dev/reconcile/internal/balance"
	"github.com/reconcile-dev/reconcile/internal/model"
	"github.com/reconcile-dev/reconcile/internal/period"
	"github.com/reconcile-dev/reconcile/internal/split"
)

var (
	// ErrSessionCompleted rejects mutators against a COMPLETED session
	// before any request is sent. The server enforces the same rule.
	ErrSessionCompleted = errors.New("session is completed; reopen it to make changes")
	// ErrNotBalanced rejects complete while the difference exceeds epsilon.
	ErrNotBalanced = errors.New("session is not balanced")
	// ErrNotCompleted rejects reopen on a session that was never completed.
	ErrNotCompleted = errors.New("only a completed session can be reopened")
	// ErrConfirmationRequired rejects reopen without explicit confirmation.
	ErrConfirmationRequired = errors.New("reopen requires confirmation")
	// ErrNoSession rejects actions before a session has loaded.
	ErrNoSession = errors.New("no session loaded")
	// ErrUnknownTransaction rejects actions on ids absent from the feed.
	ErrUnknownTransaction = errors.New("transaction not in current session")
)

// Controller drives the reconciliation workspace. All methods are safe for
// concurrent use; overlapping reloads are resolved by sequence number, not
// by blocking.
type Controller struct {
	client *api.Client
	now    func() time.Time

	mu      sync.Mutex
	state   PageState
	loadSeq uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the period-fallback clock (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a Controller over the given API client.
func NewController(client *api.Client, opts ...Option) *Controller {
	c := &Controller{client: client, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current page state.
func (c *Controller) State() PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// update applies an immutable transition to the page state.
func (c *Controller) update(fn func(PageState) PageState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = fn(c.state.clone())
}

// LoadConfig fetches the available accounts and capability flag. The
// default account (or the first) becomes the selection.
func (c *Controller) LoadConfig(ctx context.Context) error {
	cfg, err := c.client.GetConfig(ctx)
	if err != nil {
		c.update(func(s PageState) PageState {
			s.PageError = "failed to load reconciliation config: " + err.Error()
			return s
		})
		return err
	}

	c.update(func(s PageState) PageState {
		s.Accounts = cfg.Accounts
		s.CanReconcile = cfg.CanReconcile
		s.CapabilityReason = cfg.Reason
		s.PageError = ""
		if s.SelectedAccountID == "" && len(cfg.Accounts) > 0 {
			s.SelectedAccountID = cfg.Accounts[0].ID
			for _, a := range cfg.Accounts {
				if a.IsDefault {
					s.SelectedAccountID = a.ID
					break
				}
			}
		}
		return s
	})
	return nil
}

// LoadSession fetches the full session aggregate and transaction feed,
// replacing any prior snapshot wholesale. An empty periodID lets the
// backend resolve the current period. Each call carries an incrementing
// sequence number; a response that resolves after a newer load has been
// issued is discarded without error, so the latest request always wins.
func (c *Controller) LoadSession(ctx context.Context, bankAccountID, periodID string) error {
	var seq uint64
	c.mu.Lock()
	c.loadSeq++
	seq = c.loadSeq
	c.state.Loading = true
	c.mu.Unlock()

	envelope, err := c.client.GetSession(ctx, bankAccountID, periodID)
	if err != nil {
		return c.failLoad(seq, err)
	}
	txs, err := c.client.ListTransactions(ctx, bankAccountID, api.ScopeAll)
	if err != nil {
		return c.failLoad(seq, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return nil // stale response, a newer load owns the snapshot
	}

	s := c.state.clone()
	sess := envelope.Session
	s.Session = &sess
	s.Transactions = txs
	s.Periods = period.Resolve(envelope.Periods, c.now())
	s.SelectedAccountID = bankAccountID
	s.SelectedPeriodID = sess.Period.ID
	s.SoftLocked = balance.SoftLocked(sess.ReconciledPercent)
	s.Loading = false
	s.PageError = ""
	c.state = s
	return nil
}

// failLoad records a page-level error for the newest load only; the
// previous snapshot stays visible underneath the banner.
func (c *Controller) failLoad(seq uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return nil
	}
	s := c.state.clone()
	s.Loading = false
	s.PageError = "failed to load session: " + err.Error()
	c.state = s
	return err
}

// Reload re-fetches the current selection.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	accountID, periodID := c.state.SelectedAccountID, c.state.SelectedPeriodID
	c.mu.Unlock()
	if accountID == "" {
		return ErrNoSession
	}
	return c.LoadSession(ctx, accountID, periodID)
}

// ToggleInclude flips whether a transaction counts toward the cleared
// balance. The flip is applied optimistically, reverted on request failure,
// and resynced by a full reload on success.
func (c *Controller) ToggleInclude(ctx context.Context, transactionID string) error {
	c.mu.Lock()
	if c.state.Session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.state.Completed() {
		c.mu.Unlock()
		return ErrSessionCompleted
	}
	sessionID := c.state.Session.ID
	tx, ok := c.state.Transaction(transactionID)
	c.mu.Unlock()
	if !ok {
		return ErrUnknownTransaction
	}

	included := !tx.IncludedInSession
	c.setIncluded(transactionID, included)

	err := c.client.ToggleInclude(ctx, api.ToggleIncludeParams{
		TransactionID: transactionID,
		SessionID:     sessionID,
		Included:      included,
	})
	if err != nil {
		c.setIncluded(transactionID, !included) // roll back the optimistic flip
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller) setIncluded(transactionID string, included bool) {
	c.update(func(s PageState) PageState {
		for i := range s.Transactions {
			if s.Transactions[i].ID == transactionID {
				s.Transactions[i].IncludedInSession = included
			}
		}
		return s
	})
}

// OpenMatches fetches match candidates for one transaction. Its loading
// flag is tracked separately from the page-level one so the rest of the
// feed stays interactive while the picker loads.
func (c *Controller) OpenMatches(ctx context.Context, transactionID string) ([]model.MatchCandidate, error) {
	c.update(func(s PageState) PageState { s.MatchesLoading = true; return s })
	candidates, err := c.client.ListMatches(ctx, transactionID)
	c.update(func(s PageState) PageState { s.MatchesLoading = false; return s })
	if err != nil {
		c.setActionError(err)
		return nil, err
	}
	return candidates, nil
}

// ConfirmMatch applies a confirmed candidate. On failure the error is
// surfaced without touching the snapshot, so the caller can keep the picker
// open and retry.
func (c *Controller) ConfirmMatch(ctx context.Context, transactionID string, candidate model.MatchCandidate) error {
	if err := c.mutable(); err != nil {
		return err
	}
	err := c.client.ConfirmMatch(ctx, api.ConfirmMatchParams{
		BankTransactionID: transactionID,
		JournalEntryID:    candidate.JournalEntryID,
		MatchConfidence:   candidate.Confidence,
	})
	if err != nil {
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// Unmatch reverses a prior match, moving the transaction back toward NEW.
func (c *Controller) Unmatch(ctx context.Context, transactionID string) error {
	sessionID, err := c.mutableSession()
	if err != nil {
		return err
	}
	if err := c.client.Unmatch(ctx, sessionID, transactionID); err != nil {
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// SetExcluded excludes a transaction from the feed, or restores it.
func (c *Controller) SetExcluded(ctx context.Context, transactionID string, excluded bool) error {
	sessionID, err := c.mutableSession()
	if err != nil {
		return err
	}
	if err := c.client.SetExcluded(ctx, sessionID, transactionID, excluded); err != nil {
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// CreateSplit validates the composer's working set and submits it
// atomically. An invalid set never reaches the network layer; its
// validation errors come back joined so the caller can render them inline.
func (c *Controller) CreateSplit(ctx context.Context, composer *split.Composer) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if verrs := composer.Validate(); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("split is not valid: %s", strings.Join(msgs, "; "))
	}

	params := api.CreateSplitParams{BankTransactionID: composer.TransactionID()}
	for _, line := range composer.Lines() {
		params.Splits = append(params.Splits, api.SplitParams{
			AccountID:   line.AccountID,
			Amount:      line.Amount,
			Description: line.Description,
		})
	}
	if err := c.client.CreateSplit(ctx, params); err != nil {
		// The backend stays the final authority even on sets we validated.
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// CreateAdjustment posts a fee/interest correction against the session.
// No local balancing happens; the reload picks up the new cleared balance.
func (c *Controller) CreateAdjustment(ctx context.Context, adj model.Adjustment) error {
	sessionID, err := c.mutableSession()
	if err != nil {
		return err
	}
	if adj.Amount.IsZero() {
		return errors.New("adjustment amount is required")
	}
	if adj.AccountName == "" {
		return errors.New("adjustment target account is required")
	}
	apiErr := c.client.CreateAdjustment(ctx, api.CreateAdjustmentParams{
		SessionID:   sessionID,
		Type:        string(adj.Type),
		Amount:      adj.Amount,
		AccountName: adj.AccountName,
	})
	if apiErr != nil {
		c.setActionError(apiErr)
		return apiErr
	}
	return c.Reload(ctx)
}

// Complete marks the session completed. The gate is checked client-side
// and re-validated by the server; a rejection's detail is surfaced
// verbatim in the action banner.
func (c *Controller) Complete(ctx context.Context) error {
	c.mu.Lock()
	st := c.state
	c.mu.Unlock()

	switch {
	case st.Session == nil:
		return ErrNoSession
	case st.Completed():
		return ErrSessionCompleted
	case !st.CanComplete():
		return ErrNotBalanced
	}

	if err := c.client.Complete(ctx, st.Session.ID); err != nil {
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// Reopen transitions a completed session back to IN_PROGRESS. The caller
// must pass confirmed=true after an explicit user confirmation.
func (c *Controller) Reopen(ctx context.Context, confirmed bool) error {
	c.mu.Lock()
	st := c.state
	c.mu.Unlock()

	switch {
	case st.Session == nil:
		return ErrNoSession
	case !st.CanReopen():
		return ErrNotCompleted
	case !confirmed:
		return ErrConfirmationRequired
	}

	if err := c.client.Reopen(ctx, st.Session.ID); err != nil {
		c.setActionError(err)
		return err
	}
	return c.Reload(ctx)
}

// DismissErrors clears the page and action banners without touching the
// snapshot.
func (c *Controller) DismissErrors() {
	c.update(func(s PageState) PageState {
		s.PageError = ""
		s.ActionError = ""
		return s
	})
}

// mutable rejects mutators when no session is loaded or it is completed.
func (c *Controller) mutable() error {
	_, err := c.mutableSession()
	return err
}

func (c *Controller) mutableSession() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Session == nil {
		return "", ErrNoSession
	}
	if c.state.Completed() {
		return "", ErrSessionCompleted
	}
	return c.state.Session.ID, nil
}

func (c *Controller) setActionError(err error) {
	c.update(func(s PageState) PageState {
		s.ActionError = err.Error()
		return s
	})
}
