// Package session tracks the client's signed-in state. A single shared
// Observer performs the initial session lookup, listens for auth
// changes (login, logout) and fans the resulting snapshots out to every
// screen that subscribed. Screens never resolve the session themselves.
package session

import (
	"context"
	"sync"

	"github.com/domy-v-italii/portal/internal/access"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

// Source is the slice of the portal client the observer needs: one
// session lookup plus a subscription to auth state changes.
type Source interface {
	Session(ctx context.Context) (*models.User, error)
	OnAuthChange(fn func(user *models.User)) (unsubscribe func())
}

// Snapshot is one observed session state. User is nil unless State is
// StateAuthorized.
type Snapshot struct {
	State access.State
	User  *models.User
}

// Observer resolves and tracks the session exactly once for the whole
// client. Safe for concurrent use.
type Observer struct {
	source Source
	logger *logger.Logger

	mu          sync.RWMutex
	snapshot    Snapshot
	resolved    bool
	subscribers map[int]func(Snapshot)
	nextSubID   int

	unsubscribe func()
	stopOnce    sync.Once
}

// NewObserver creates an observer in the checking state. Nothing
// happens until Start.
func NewObserver(source Source, logger *logger.Logger) *Observer {
	return &Observer{
		source:      source,
		logger:      logger,
		snapshot:    Snapshot{State: access.StateChecking},
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Start subscribes to auth changes and kicks off the initial session
// lookup. An auth change that lands before the lookup returns wins; the
// stale lookup result is discarded.
func (o *Observer) Start(ctx context.Context) {
	o.unsubscribe = o.source.OnAuthChange(func(user *models.User) {
		o.apply(user, true)
	})

	go func() {
		user, err := o.source.Session(ctx)
		if err != nil {
			o.logger.Err(err).Msg("initial session lookup failed")
			// fail closed: an unreachable portal means anonymous
			user = nil
		}
		o.apply(user, false)
	}()
}

// Stop detaches the observer from the auth change feed. Idempotent.
func (o *Observer) Stop() {
	o.stopOnce.Do(func() {
		if o.unsubscribe != nil {
			o.unsubscribe()
		}
	})
}

// Snapshot returns the current session snapshot.
func (o *Observer) Snapshot() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snapshot
}

// Subscribe registers fn for every future snapshot change and invokes
// it once immediately with the current snapshot. The returned function
// removes the subscription and is safe to call more than once.
func (o *Observer) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = fn
	current := o.snapshot
	o.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subscribers, id)
			o.mu.Unlock()
		})
	}
}

// apply installs a new session observation. authoritative marks auth
// change events, which always supersede the initial lookup; the lookup
// result itself is dropped when a change already resolved the state.
func (o *Observer) apply(user *models.User, authoritative bool) {
	o.mu.Lock()

	if !authoritative && o.resolved {
		o.mu.Unlock()
		return
	}
	o.resolved = true

	next := Snapshot{State: access.StateAnonymous}
	if user != nil {
		next = Snapshot{State: access.StateAuthorized, User: user}
	}

	if sameSnapshot(o.snapshot, next) {
		o.mu.Unlock()
		return
	}
	o.snapshot = next

	notify := make([]func(Snapshot), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		notify = append(notify, fn)
	}
	o.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
}

func sameSnapshot(a, b Snapshot) bool {
	if a.State != b.State {
		return false
	}
	if (a.User == nil) != (b.User == nil) {
		return false
	}
	return a.User == nil || a.User.ID == b.User.ID
}
