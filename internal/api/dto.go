package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reconcile-dev/reconcile/internal/model"
)

const dateFormat = "2006-01-02"

type accountDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bank      string `json:"bank"`
	Currency  string `json:"currency"`
	IsDefault bool   `json:"is_default"`
}

func (d accountDTO) toDomain() model.BankAccountSummary {
	return model.BankAccountSummary{
		ID:        d.ID,
		Name:      d.Name,
		Bank:      d.Bank,
		Currency:  d.Currency,
		IsDefault: d.IsDefault,
	}
}

type periodDTO struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current"`
	IsLocked  bool   `json:"is_locked"`
}

func (d periodDTO) toDomain() (model.PeriodOption, error) {
	start, err := time.Parse(dateFormat, d.StartDate)
	if err != nil {
		return model.PeriodOption{}, fmt.Errorf("parsing period start %q: %w", d.StartDate, err)
	}
	end, err := time.Parse(dateFormat, d.EndDate)
	if err != nil {
		return model.PeriodOption{}, fmt.Errorf("parsing period end %q: %w", d.EndDate, err)
	}
	return model.PeriodOption{
		ID:        d.ID,
		Label:     d.Label,
		StartDate: start,
		EndDate:   end,
		IsCurrent: d.IsCurrent,
		IsLocked:  d.IsLocked,
	}, nil
}

type sessionDTO struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	BankAccount       accountDTO      `json:"bank_account"`
	Period            periodDTO       `json:"period"`
	Periods           []periodDTO     `json:"periods"`
	BeginningBalance  decimal.Decimal `json:"beginning_balance"`
	EndingBalance     decimal.Decimal `json:"ending_balance"`
	ClearedBalance    decimal.Decimal `json:"cleared_balance"`
	Difference        decimal.Decimal `json:"difference"`
	ReconciledPercent decimal.Decimal `json:"reconciled_percent"`
	TotalTransactions int             `json:"total_transactions"`
	UnreconciledCount int             `json:"unreconciled_count"`
	ExcludedCount     int             `json:"excluded_count"`
}

func (d sessionDTO) toDomain() (model.ReconciliationSession, []model.PeriodOption, error) {
	switch model.SessionStatus(d.Status) {
	case model.SessionDraft, model.SessionInProgress, model.SessionCompleted:
	default:
		return model.ReconciliationSession{}, nil, fmt.Errorf("unknown session status %q", d.Status)
	}

	period, err := d.Period.toDomain()
	if err != nil {
		return model.ReconciliationSession{}, nil, err
	}

	periods := make([]model.PeriodOption, 0, len(d.Periods))
	for _, p := range d.Periods {
		po, err := p.toDomain()
		if err != nil {
			return model.ReconciliationSession{}, nil, err
		}
		periods = append(periods, po)
	}

	return model.ReconciliationSession{
		ID:                d.ID,
		Status:            model.SessionStatus(d.Status),
		BankAccount:       d.BankAccount.toDomain(),
		Period:            period,
		BeginningBalance:  d.BeginningBalance,
		EndingBalance:     d.EndingBalance,
		ClearedBalance:    d.ClearedBalance,
		Difference:        d.Difference,
		ReconciledPercent: d.ReconciledPercent,
		TotalTransactions: d.TotalTransactions,
		UnreconciledCount: d.UnreconciledCount,
		ExcludedCount:     d.ExcludedCount,
	}, periods, nil
}

type transactionDTO struct {
	ID                string           `json:"id"`
	Date              string           `json:"date"`
	Description       string           `json:"description"`
	Counterparty      string           `json:"counterparty"`
	Category          string           `json:"category"`
	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	Status            string           `json:"status"`
	MatchConfidence   *decimal.Decimal `json:"match_confidence"`
	IncludedInSession bool             `json:"included_in_session"`
}

func (d transactionDTO) toDomain() (model.BankTransaction, error) {
	date, err := time.Parse(dateFormat, d.Date)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing transaction date %q: %w", d.Date, err)
	}

	status, kind := model.ParseTransactionStatus(d.Status)

	tx := model.BankTransaction{
		ID:                d.ID,
		Date:              date,
		Description:       d.Description,
		Counterparty:      d.Counterparty,
		Category:          d.Category,
		Amount:            d.Amount,
		Currency:          d.Currency,
		Status:            status,
		MatchKind:         kind,
		IncludedInSession: d.IncludedInSession,
	}
	if d.MatchConfidence != nil {
		tx.MatchConfidence = *d.MatchConfidence
	}
	return tx, nil
}

type candidateDTO struct {
	JournalEntryID string          `json:"journal_entry_id"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Confidence     decimal.Decimal `json:"confidence"`
	MatchType      string          `json:"match_type"`
	Reason         string          `json:"reason"`
}

func (d candidateDTO) toDomain() (model.MatchCandidate, error) {
	date, err := time.Parse(dateFormat, d.Date)
	if err != nil {
		return model.MatchCandidate{}, fmt.Errorf("parsing candidate date %q: %w", d.Date, err)
	}
	return model.MatchCandidate{
		JournalEntryID: d.JournalEntryID,
		Reference:      d.Reference,
		Description:    d.Description,
		Date:           date,
		Amount:         d.Amount,
		Confidence:     d.Confidence,
		MatchType:      model.MatchType(d.MatchType),
		Reason:         d.Reason,
	}, nil
}
