package notify

import (
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func newTestCenter() *Center {
	return NewCenter(
		WithDisplayDuration(50*time.Millisecond),
		WithFadeDuration(30*time.Millisecond),
	)
}

func TestWithDisplayDuration(t *testing.T) {
	t.Parallel()

	opts := config{}
	f := WithDisplayDuration(time.Second)
	f(&opts)

	assert.Equal(t, opts.displayDuration, time.Second)
}

func TestWithFadeDuration(t *testing.T) {
	t.Parallel()

	opts := config{}
	f := WithFadeDuration(100 * time.Millisecond)
	f(&opts)

	assert.Equal(t, opts.fadeDuration, 100*time.Millisecond)
}

func TestShowAllSeverities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		severity         Severity
		expectedSeverity Severity
	}{
		{name: "success", severity: SeveritySuccess, expectedSeverity: SeveritySuccess},
		{name: "error", severity: SeverityError, expectedSeverity: SeverityError},
		{name: "warning", severity: SeverityWarning, expectedSeverity: SeverityWarning},
		{name: "info", severity: SeverityInfo, expectedSeverity: SeverityInfo},
		{name: "empty severity falls back to info", severity: Severity(""), expectedSeverity: SeverityInfo},
		{name: "unknown severity falls back to info", severity: Severity("fatal"), expectedSeverity: SeverityInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			center := newTestCenter()
			n := center.Show("hello", tt.severity)

			assert.Equal(t, n.Severity, tt.expectedSeverity)
			assert.Equal(t, n.State, StateVisible)
			assert.Assert(t, n.Closable)

			notifs := center.Notifications()
			assert.Equal(t, len(notifs), 1)
			assert.Equal(t, notifs[0].ID, n.ID)

			assert.Assert(t, strings.Contains(center.Render(), `alert alert-`+string(tt.expectedSeverity)))
		})
	}
}

func TestShowAutoDismiss(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	center.Show("going away", SeverityInfo)

	assert.Equal(t, len(center.Notifications()), 1)

	// Wait past the display and fade windows.
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, len(center.Notifications()), 0)
}

func TestShowKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	center := NewCenter(WithDisplayDuration(time.Minute))
	first := center.Info("first")
	second := center.Error("second")
	third := center.Success("third")

	notifs := center.Notifications()
	assert.Equal(t, len(notifs), 3)
	assert.Equal(t, notifs[0].ID, first.ID)
	assert.Equal(t, notifs[1].ID, second.ID)
	assert.Equal(t, notifs[2].ID, third.ID)
}

func TestCloseBeforeScheduledRemoval(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	n := center.Show("close me", SeverityWarning)

	assert.Assert(t, center.Close(n.ID), "first close should find the notification")
	assert.Equal(t, len(center.Notifications()), 0)

	// The scheduled fade/remove must be a no-op against the closed
	// notification; waiting past both windows must not panic or resurrect it.
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, len(center.Notifications()), 0)
	assert.Assert(t, !center.Close(n.ID), "second close should report absence")
}

func TestCloseUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	assert.Assert(t, !center.Close("does-not-exist"))
}

func TestAdoptDoesNotSchedule(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	n := center.Adopt("pre-rendered", SeverityError)

	assert.Assert(t, !n.Closable)

	// Without InitFlash the adopted notification must outlive the
	// display+fade windows.
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, len(center.Notifications()), 1)
}

func TestInitFlashDismissesAdopted(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	center.Adopt("one", SeverityInfo)
	center.Adopt("two", SeveritySuccess)

	center.InitFlash()

	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, len(center.Notifications()), 0)
}

func TestInitFlashRunsOnce(t *testing.T) {
	t.Parallel()

	center := newTestCenter()
	center.Adopt("early", SeverityInfo)
	center.InitFlash()

	// Notifications adopted after the first InitFlash are not picked up by
	// later calls; the hook is fire-once.
	center.Adopt("late", SeverityInfo)
	center.InitFlash()

	time.Sleep(200 * time.Millisecond)

	notifs := center.Notifications()
	assert.Equal(t, len(notifs), 1)
	assert.Equal(t, notifs[0].Message, "late")
}
