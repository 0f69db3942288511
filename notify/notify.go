// Package notify implements the transient notification banners ("flash
// messages") shown by the rag-lite web UI. A Center owns an ordered set of
// notifications, each with a severity tag and an auto-dismiss lifecycle:
// a notification stays visible for a display period, fades out, and is then
// removed, unless closed earlier by the user.
//
// Messages are inserted into the rendered markup as-is; callers displaying
// untrusted text must escape it first (see format.EscapeHTML).
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"time"
//
//		"github.com/wind-zhou5210/rag-lite/notify"
//	)
//
//	func main() {
//		center := notify.NewCenter(
//			notify.WithDisplayDuration(5 * time.Second),
//			notify.WithFadeDuration(300 * time.Millisecond),
//		)
//
//		center.Success("Document uploaded")
//		n := center.Show("Index rebuild scheduled", notify.SeverityWarning)
//
//		// Render the container into a server-rendered page.
//		page := notify.InjectContainer("<body><main>...</main></body>", center.Render())
//		fmt.Println(page)
//
//		// Close early via the returned handle's ID.
//		center.Close(n.ID)
//	}
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification. It only affects visual styling
// (the alert-<severity> class on the rendered element).
type Severity string

const (
	// SeverityInfo is the default severity for neutral status updates.
	SeverityInfo Severity = "info"
	// SeveritySuccess marks a completed operation.
	SeveritySuccess Severity = "success"
	// SeverityWarning marks a condition that needs attention but did not fail.
	SeverityWarning Severity = "warning"
	// SeverityError marks a failed operation.
	SeverityError Severity = "error"
)

// normalize maps the empty string and unknown values to SeverityInfo.
func (s Severity) normalize() Severity {
	switch s {
	case SeveritySuccess, SeverityWarning, SeverityError, SeverityInfo:
		return s
	default:
		return SeverityInfo
	}
}

// State describes where a notification is in its lifecycle.
type State string

const (
	// StateVisible means the notification is fully shown.
	StateVisible State = "visible"
	// StateFading means the display period elapsed and the notification is
	// transitioning out (rendered with zero opacity).
	StateFading State = "fading"
)

// Notification is a single banner owned by a Center. Values returned by
// Center methods are snapshots; the Center remains the source of truth.
type Notification struct {
	// ID uniquely identifies the notification within its Center.
	ID string
	// Message is the banner content. It may contain markup and is rendered
	// without escaping.
	Message string
	// Severity selects the alert-<severity> styling class.
	Severity Severity
	// CreatedAt is when the notification was appended.
	CreatedAt time.Time
	// State is the current lifecycle state.
	State State
	// Closable reports whether the rendered element carries a manual close
	// control. Adopted (server pre-rendered) notifications do not.
	Closable bool
}

// Logger defines the minimal logging interface required by a Center.
// It matches log/slog.Logger's LogAttrs method, but allows plugging in custom loggers.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// config holds configuration options for a Center.
type config struct {
	logger          Logger
	displayDuration time.Duration
	fadeDuration    time.Duration
}

// Option defines a functional option used to configure a Center.
type Option func(*config)

// WithLogger sets a custom Logger implementation. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithDisplayDuration sets how long a notification stays fully visible
// before it starts fading. Default is 5 seconds.
func WithDisplayDuration(d time.Duration) Option {
	return func(c *config) {
		c.displayDuration = d
	}
}

// WithFadeDuration sets how long the fade transition lasts before the
// notification is removed. Default is 300 milliseconds.
func WithFadeDuration(d time.Duration) Option {
	return func(c *config) {
		c.fadeDuration = d
	}
}

// Center is the notification container. It holds notifications in insertion
// order and drives their auto-dismiss timers. A Center is safe for use from
// multiple goroutines.
type Center struct {
	logger          Logger
	displayDuration time.Duration
	fadeDuration    time.Duration

	mu            sync.Mutex
	notifications []Notification
	timers        map[string]*time.Timer
	initOnce      sync.Once
}

// NewCenter creates a notification Center with optional configuration.
func NewCenter(opts ...Option) *Center {
	c := &config{
		logger:          slog.Default(),
		displayDuration: 5 * time.Second,
		fadeDuration:    300 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Center{
		logger:          c.logger,
		displayDuration: c.displayDuration,
		fadeDuration:    c.fadeDuration,
		timers:          make(map[string]*time.Timer),
	}
}

// Show appends a notification with the given message and severity, attaches
// a manual close control, and schedules the fade/remove sequence. An empty
// or unknown severity falls back to SeverityInfo. The returned value is a
// snapshot; use its ID with Close to dismiss early.
func (c *Center) Show(message string, severity Severity) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Severity:  severity.normalize(),
		CreatedAt: time.Now(),
		State:     StateVisible,
		Closable:  true,
	}

	c.mu.Lock()
	c.notifications = append(c.notifications, n)
	c.scheduleLocked(n.ID)
	c.mu.Unlock()

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification shown",
		slog.String("id", n.ID),
		slog.String("severity", string(n.Severity)),
	)

	return n
}

// Info shows a notification with SeverityInfo.
func (c *Center) Info(message string) Notification { return c.Show(message, SeverityInfo) }

// Success shows a notification with SeveritySuccess.
func (c *Center) Success(message string) Notification { return c.Show(message, SeveritySuccess) }

// Warning shows a notification with SeverityWarning.
func (c *Center) Warning(message string) Notification { return c.Show(message, SeverityWarning) }

// Error shows a notification with SeverityError.
func (c *Center) Error(message string) Notification { return c.Show(message, SeverityError) }

// Adopt registers a notification that was already rendered by the server.
// Adopted notifications carry no close control and are not scheduled for
// dismissal until InitFlash runs.
func (c *Center) Adopt(message string, severity Severity) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Severity:  severity.normalize(),
		CreatedAt: time.Now(),
		State:     StateVisible,
		Closable:  false,
	}

	c.mu.Lock()
	c.notifications = append(c.notifications, n)
	c.mu.Unlock()

	return n
}

// InitFlash schedules the fade/remove sequence for every notification
// currently present that has no pending timer. It is intended to run once
// from the hosting application's startup sequence, after adopted flash
// messages have been registered; repeated calls are no-ops.
func (c *Center) InitFlash() {
	c.initOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, n := range c.notifications {
			c.scheduleLocked(n.ID)
		}
	})
}

// Close removes the notification with the given ID immediately and cancels
// its pending dismissal. It reports whether the notification was present.
// Closing an unknown or already-removed ID is a safe no-op.
func (c *Center) Close(id string) bool {
	c.mu.Lock()
	removed := c.removeLocked(id)
	c.mu.Unlock()

	if removed {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification closed",
			slog.String("id", id),
		)
	}

	return removed
}

// Notifications returns a snapshot of the current notifications in
// insertion order.
func (c *Center) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// scheduleLocked starts the display timer for id unless one is already
// pending. Callers must hold c.mu.
func (c *Center) scheduleLocked(id string) {
	if _, ok := c.timers[id]; ok {
		return
	}
	c.timers[id] = time.AfterFunc(c.displayDuration, func() { c.fade(id) })
}

// fade moves the notification into its fading state and schedules the final
// removal. If the notification was closed in the meantime this is a no-op.
func (c *Center) fade(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		delete(c.timers, id)
		return
	}

	c.notifications[i].State = StateFading
	c.timers[id] = time.AfterFunc(c.fadeDuration, func() { c.remove(id) })
}

// remove drops the notification after its fade completed. Safe against a
// notification that was already closed manually.
func (c *Center) remove(id string) {
	c.mu.Lock()
	removed := c.removeLocked(id)
	c.mu.Unlock()

	if removed {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification dismissed",
			slog.String("id", id),
		)
	}
}

// removeLocked cancels any pending timer for id and deletes the
// notification from the container. Callers must hold c.mu.
func (c *Center) removeLocked(id string) bool {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}

	c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
	return true
}

// indexLocked returns the position of id or -1. Callers must hold c.mu.
func (c *Center) indexLocked(id string) int {
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			return i
		}
	}
	return -1
}
