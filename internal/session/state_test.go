package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reconcile-dev/reconcile/internal/model"
)

func sessionWith(status model.SessionStatus, difference string) *model.ReconciliationSession {
	return &model.ReconciliationSession{ID: "sess-1", Status: status, Difference: dec(difference)}
}

func TestPageState_CanComplete(t *testing.T) {
	tests := []struct {
		name  string
		state PageState
		want  bool
	}{
		{"no session", PageState{}, false},
		{"balanced in progress", PageState{Session: sessionWith(model.SessionInProgress, "0.00")}, true},
		{"exactly epsilon", PageState{Session: sessionWith(model.SessionInProgress, "-0.01")}, true},
		{"just over epsilon", PageState{Session: sessionWith(model.SessionInProgress, "0.02")}, false},
		{"unbalanced", PageState{Session: sessionWith(model.SessionInProgress, "100.00")}, false},
		{"balanced but completed", PageState{Session: sessionWith(model.SessionCompleted, "0.00")}, false},
		{"balanced draft", PageState{Session: sessionWith(model.SessionDraft, "0.00")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.CanComplete())
		})
	}
}

func TestPageState_CanReopen(t *testing.T) {
	assert.False(t, PageState{}.CanReopen())
	assert.False(t, PageState{Session: sessionWith(model.SessionDraft, "0")}.CanReopen(), "a draft was never completed")
	assert.False(t, PageState{Session: sessionWith(model.SessionInProgress, "0")}.CanReopen())
	assert.True(t, PageState{Session: sessionWith(model.SessionCompleted, "0")}.CanReopen())
}

func TestPageState_CloneIsolatesMutations(t *testing.T) {
	orig := PageState{
		Session:      sessionWith(model.SessionInProgress, "0.00"),
		Transactions: []model.BankTransaction{{ID: "t1", IncludedInSession: true}},
	}

	copied := orig.clone()
	copied.Transactions[0].IncludedInSession = false
	copied.Session.Status = model.SessionCompleted

	assert.True(t, orig.Transactions[0].IncludedInSession, "clone must not share the feed slice")
	assert.Equal(t, model.SessionInProgress, orig.Session.Status, "clone must not share the session")
}
