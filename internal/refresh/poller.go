// Package refresh keeps auto-refreshed snapshots of the per-account data
// the dashboard polls: positions and history. While an account's tab is
// active the browser keeps reading its snapshot, which keeps the
// subscription alive; a cron schedule re-fetches live snapshots every
// interval (120 seconds by default), and snapshots nobody has read within
// the idle window are torn down so no recurring fetch leaks.
//
// Each snapshot carries a generation token. A fetch only stores its result
// if the generation it started with is still current, so a slow response
// from before a manual refresh (or a teardown) can never clobber newer
// data. Concurrent fetches for the same snapshot are collapsed with
// singleflight.
package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
)

// Kind identifies a refreshable data kind.
type Kind string

// The data kinds the dashboard auto-refreshes.
const (
	KindPositions Kind = "positions"
	KindHistory   Kind = "history"
)

// Fetcher loads the current data of one kind for one account.
type Fetcher func(ctx context.Context, accountID string) (interface{}, error)

// Snapshot is the loading/error/data triple for one (kind, account) pair.
type Snapshot struct {
	Data      interface{} `json:"data"`
	Error     string      `json:"error,omitempty"`
	Loading   bool        `json:"loading"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type key struct {
	kind    Kind
	account string
}

type entry struct {
	data       interface{}
	err        error
	loading    bool
	updatedAt  time.Time
	lastAccess time.Time
	generation uint64
}

// Poller owns the snapshot cache and its refresh schedule.
type Poller struct {
	mu       sync.Mutex
	entries  map[key]*entry
	fetchers map[Kind]Fetcher

	group    singleflight.Group
	cron     *cron.Cron
	interval time.Duration
	maxIdle  time.Duration
}

// New creates a Poller refreshing every interval and dropping snapshots
// that have not been read for maxIdle.
func New(interval, maxIdle time.Duration) *Poller {
	return &Poller{
		entries:  make(map[key]*entry),
		fetchers: make(map[Kind]Fetcher),
		cron:     cron.New(),
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Register installs the fetcher for a kind. Must be called before Start.
func (p *Poller) Register(kind Kind, fetch Fetcher) {
	p.fetchers[kind] = fetch
}

// Start begins the periodic refresh schedule.
func (p *Poller) Start() error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, p.tick); err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}
	p.cron.Start()
	return nil
}

// Stop halts the refresh schedule. In-flight fetches finish on their own;
// their results are dropped if the entry has been swept meanwhile.
func (p *Poller) Stop() {
	p.cron.Stop()
}

// Known reports whether a fetcher is registered for kind.
func (p *Poller) Known(kind Kind) bool {
	_, ok := p.fetchers[kind]
	return ok
}

// Get returns the snapshot for (kind, accountID), fetching synchronously
// when no snapshot exists yet. Reading a snapshot marks it active, keeping
// it on the refresh schedule.
func (p *Poller) Get(ctx context.Context, kind Kind, accountID string) Snapshot {
	k := key{kind: kind, account: accountID}

	p.mu.Lock()
	e, ok := p.entries[k]
	if ok {
		e.lastAccess = time.Now()
		snap := snapshotOf(e)
		p.mu.Unlock()
		return snap
	}
	e = &entry{loading: true, lastAccess: time.Now()}
	p.entries[k] = e
	gen := e.generation
	p.mu.Unlock()

	p.fetch(ctx, k, gen)

	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[k]; ok {
		return snapshotOf(e)
	}
	return Snapshot{Loading: true}
}

// Refresh forces an immediate re-fetch for (kind, accountID), invalidating
// any fetch already in flight, and returns the resulting snapshot.
func (p *Poller) Refresh(ctx context.Context, kind Kind, accountID string) Snapshot {
	k := key{kind: kind, account: accountID}

	p.mu.Lock()
	e, ok := p.entries[k]
	if !ok {
		e = &entry{loading: true}
		p.entries[k] = e
	}
	e.lastAccess = time.Now()
	e.generation++
	e.loading = true
	gen := e.generation
	p.mu.Unlock()

	// Forget any collapsed in-flight call so this fetch actually runs.
	p.group.Forget(flightKey(k))
	p.fetch(ctx, k, gen)

	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[k]; ok {
		return snapshotOf(e)
	}
	return Snapshot{Loading: true}
}

// tick refreshes every live snapshot and sweeps idle ones.
func (p *Poller) tick() {
	now := time.Now()

	p.mu.Lock()
	var live []key
	var liveGens []uint64
	for k, e := range p.entries {
		if now.Sub(e.lastAccess) > p.maxIdle {
			delete(p.entries, k)
			continue
		}
		live = append(live, k)
		liveGens = append(liveGens, e.generation)
	}
	p.mu.Unlock()

	for i, k := range live {
		k, gen := k, liveGens[i]
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), p.interval)
			defer cancel()
			p.fetch(ctx, k, gen)
		}()
	}
}

// fetch runs the fetcher for k and stores the result, unless the snapshot
// was torn down or superseded (generation moved on) while the request was
// in flight.
func (p *Poller) fetch(ctx context.Context, k key, gen uint64) {
	fetcher, ok := p.fetchers[k.kind]
	if !ok {
		return
	}

	result, err, _ := p.group.Do(flightKey(k), func() (interface{}, error) {
		return fetcher(ctx, k.account)
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[k]
	if !ok || e.generation != gen {
		// Stale response; a newer refresh or a teardown won.
		return
	}
	e.loading = false
	e.updatedAt = time.Now()
	if err != nil {
		// Degrade to an empty result with a visible error; keep nothing
		// from the failed fetch.
		e.data = nil
		e.err = err
		log.Printf("refresh: %s/%s fetch failed: %v", k.kind, k.account, err)
		return
	}
	e.data = result
	e.err = nil
}

func snapshotOf(e *entry) Snapshot {
	snap := Snapshot{
		Data:      e.data,
		Loading:   e.loading,
		UpdatedAt: e.updatedAt,
	}
	if e.err != nil {
		snap.Error = e.err.Error()
	}
	return snap
}

func flightKey(k key) string {
	return string(k.kind) + "/" + k.account
}
