package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptPrompter answers prompts from canned responses.
type scriptPrompter struct {
	confirmAnswer bool
	confirmErr    error
	confirmCalls  int
	inputs        []string
	inputErr      error // returned once the inputs run dry
	inputCalls    int
}

func (p *scriptPrompter) Confirm(question string, def bool) (bool, error) {
	p.confirmCalls++
	if p.confirmErr != nil {
		return false, p.confirmErr
	}
	return p.confirmAnswer, nil
}

func (p *scriptPrompter) Input(label string) (string, error) {
	p.inputCalls++
	if len(p.inputs) == 0 {
		if p.inputErr != nil {
			return "", p.inputErr
		}
		return "", nil
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

// countingDigest returns a fixed digest per path and counts invocations.
func countingDigest(sums map[string]string, calls *int) DigestFunc {
	return func(path string) (string, error) {
		*calls++
		sum, ok := sums[path]
		if !ok {
			return "", errors.New("unreadable: " + path)
		}
		return sum, nil
	}
}

var testClock = func() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
}

const testDate = "14/03/2026 09:26:53"

func newTestReconciler(sums map[string]string, calls *int, p Prompter) *Reconciler {
	r := NewReconciler(countingDigest(sums, calls), p, nil)
	r.now = testClock
	return r
}

func TestReconcileAddPolicyCreates(t *testing.T) {
	var calls int
	r := newTestReconciler(map[string]string{"docs/notes.txt": "h1"}, &calls, &scriptPrompter{})
	store := Store{}

	out, err := r.Reconcile(store, Request{Path: "docs/notes.txt", Note: "v1"}, PolicyAdd)
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.True(t, out.Report.Created)
	require.Contains(t, store, "h1")
	assert.Equal(t, Record{Fname: "notes.txt", Date: testDate, Note: "v1"}, store["h1"])
	assert.Equal(t, 1, calls, "add policy should hash exactly once")
}

func TestReconcileAskReportsExisting(t *testing.T) {
	var calls int
	prompter := &scriptPrompter{}
	r := newTestReconciler(map[string]string{"notes.txt": "h1"}, &calls, prompter)
	existing := Record{Fname: "notes.txt", Date: testDate, Note: "v1"}
	store := Store{"h1": existing}

	out, err := r.Reconcile(store, Request{Path: "notes.txt"}, PolicyAsk)
	require.NoError(t, err)

	assert.False(t, out.Changed)
	assert.True(t, out.Report.Found)
	assert.Equal(t, existing, out.Report.Record)
	assert.Equal(t, "notes.txt", out.Report.Query)
	assert.Zero(t, prompter.confirmCalls, "found records must not trigger prompts")
	assert.Equal(t, existing, store["h1"], "lookup must not mutate")
}

func TestReconcileAskDeclined(t *testing.T) {
	var calls int
	prompter := &scriptPrompter{confirmAnswer: false}
	r := newTestReconciler(map[string]string{"new.txt": "h2"}, &calls, prompter)
	store := Store{}

	out, err := r.Reconcile(store, Request{Path: "new.txt"}, PolicyAsk)
	require.NoError(t, err)

	assert.False(t, out.Changed)
	assert.Equal(t, "new.txt", out.Report.Missing)
	assert.Empty(t, store)
	assert.Equal(t, 1, prompter.confirmCalls)
}

func TestReconcileAskAcceptedSolicitsNote(t *testing.T) {
	var calls int
	// First note answer is blank and must be rejected, then a real one.
	prompter := &scriptPrompter{confirmAnswer: true, inputs: []string{"", "second try"}}
	r := newTestReconciler(map[string]string{"new.txt": "h2"}, &calls, prompter)
	store := Store{}

	out, err := r.Reconcile(store, Request{Path: "new.txt"}, PolicyAsk)
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, "second try", store["h2"].Note)
	assert.Equal(t, 2, prompter.inputCalls, "blank note must be re-solicited")
	assert.Equal(t, 1, calls, "digest from the lookup must be reused for creation")
}

func TestReconcileSkipMissing(t *testing.T) {
	var calls int
	prompter := &scriptPrompter{}
	r := newTestReconciler(map[string]string{"absent.txt": "h3"}, &calls, prompter)
	store := Store{"other": {Fname: "other.txt", Date: testDate, Note: "x"}}

	out, err := r.Reconcile(store, Request{Path: "absent.txt"}, PolicySkip)
	require.NoError(t, err)

	assert.False(t, out.Changed)
	assert.Equal(t, "absent.txt", out.Report.Missing)
	assert.Zero(t, prompter.confirmCalls)
	assert.Len(t, store, 1)
}

func TestReconcileDigestWinsOverPath(t *testing.T) {
	var calls int
	r := newTestReconciler(map[string]string{"a.txt": "h1"}, &calls, &scriptPrompter{})
	other := Record{Fname: "other.txt", Date: testDate, Note: "known"}
	store := Store{"h2": other}

	out, err := r.Reconcile(store, Request{Path: "a.txt", Digest: "h2"}, PolicyAsk)
	require.NoError(t, err)

	assert.True(t, out.Report.Found)
	assert.Equal(t, other, out.Report.Record)
	assert.Equal(t, "h2", out.Report.Digest)
	assert.Zero(t, calls, "a supplied digest must skip hashing")
}

func TestReconcileDigestOnlyPromptsForFilename(t *testing.T) {
	var calls int
	prompter := &scriptPrompter{inputs: []string{"mystery.bin"}}
	r := newTestReconciler(nil, &calls, prompter)
	store := Store{}

	out, err := r.Reconcile(store, Request{Digest: "h9", Note: "found on a backup drive"}, PolicyAdd)
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, "mystery.bin", store["h9"].Fname)
	assert.Zero(t, calls)
}

func TestReconcileCancelLeavesStoreUntouched(t *testing.T) {
	var calls int
	prompter := &scriptPrompter{confirmAnswer: true, inputErr: ErrCancelled}
	r := newTestReconciler(map[string]string{"new.txt": "h2"}, &calls, prompter)
	store := Store{}

	_, err := r.Reconcile(store, Request{Path: "new.txt"}, PolicyAsk)
	require.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, store)
}

func TestReconcileRequiresPathOrDigest(t *testing.T) {
	r := newTestReconciler(nil, new(int), &scriptPrompter{})

	_, err := r.Reconcile(Store{}, Request{Note: "orphan"}, PolicyAdd)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestReconcilePropagatesDigestErrors(t *testing.T) {
	var calls int
	r := newTestReconciler(map[string]string{}, &calls, &scriptPrompter{})

	_, err := r.Reconcile(Store{}, Request{Path: "gone.txt"}, PolicySkip)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRequest)
}
