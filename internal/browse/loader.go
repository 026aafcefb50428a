package browse

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/portal/internal/rickmorty"
	"github.com/five82/portal/internal/state"
)

const (
	defaultRecoverInterval = 2 * time.Second
	maxRecoverInterval     = 30 * time.Second
)

// Loader fetches character pages and records the outcome in a store.
type Loader struct {
	client rickmorty.Fetcher
	store  *state.Store
	log    *log.Logger
}

// NewLoader wires a loader. A nil logger discards.
func NewLoader(client rickmorty.Fetcher, store *state.Store, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{client: client, store: store, log: logger.WithPrefix("browse")}
}

// Store returns the store the loader writes to.
func (l *Loader) Store() *state.Store {
	return l.store
}

// Load fetches the page described by q and returns the resulting snapshot.
// When a newer Load started in the meantime its result wins and this call
// returns whatever the store holds.
func (l *Loader) Load(ctx context.Context, q state.Query) state.Snapshot {
	if q.Page < 1 {
		q.Page = 1
	}
	seq := l.store.Begin(q)

	start := time.Now()
	page, err := l.client.ListCharacters(ctx, q.Filter(), q.Page)
	switch {
	case err == nil:
		l.log.Debug("page loaded", "name", q.Name, "status", q.Status, "page", q.Page, "results", len(page.Results), "took", time.Since(start))
		l.store.Complete(seq, &page, nil)
	case rickmorty.IsNotFound(err):
		l.log.Debug("no characters match", "name", q.Name, "status", q.Status)
		l.store.Complete(seq, nil, err)
	default:
		l.log.Error("load characters failed", "name", q.Name, "status", q.Status, "page", q.Page, "error", err)
		l.store.Complete(seq, nil, err)
	}
	return l.store.Snapshot()
}

// Reload repeats the current query.
func (l *Loader) Reload(ctx context.Context) state.Snapshot {
	return l.Load(ctx, l.store.Snapshot().Query)
}

// StartRecovery launches a goroutine that reloads the current query while the
// last load failed, backing off as failures accumulate. It returns
// immediately and stops when ctx is cancelled.
func (l *Loader) StartRecovery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRecoverInterval
	}
	go func() {
		wait := interval
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}

			snap := l.store.Snapshot()
			if snap.LastError == nil || snap.Loading {
				wait = interval
				continue
			}
			l.log.Info("retrying failed load", "failures", snap.ConsecutiveFailures)
			snap = l.Reload(ctx)
			wait = recoverBackoff(snap.ConsecutiveFailures, interval)
		}
	}()
}

// recoverBackoff doubles the wait per consecutive failure up to
// maxRecoverInterval.
func recoverBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for range failures {
		wait *= 2
		if wait >= maxRecoverInterval {
			return maxRecoverInterval
		}
	}
	return wait
}
