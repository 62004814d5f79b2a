package crawl

import "sync"

// Default admission caps for the multi strategy.
const (
	DefaultMaxFeeds   = 5
	DefaultMaxPerSite = 10
	DefaultMaxTotal   = 18
)

// tier is a counter bounded by a limit, guarded by its own lock and
// condition variable.
type tier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
	limit int
}

func newTier(limit int) *tier {
	t := &tier{limit: limit}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// acquire blocks until the counter is below the limit, then increments it.
// The predicate is re-checked after every wakeup.
func (t *tier) acquire() {
	t.mu.Lock()
	for t.count >= t.limit {
		t.cond.Wait()
	}
	t.count++
	t.mu.Unlock()
}

// release decrements the counter and wakes one waiter.
func (t *tier) release() {
	t.mu.Lock()
	t.count--
	t.cond.Signal()
	t.mu.Unlock()
}

func (t *tier) inFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Admission bounds in-flight crawl work at three independent tiers: total
// workers, feed fetches, and article fetches per site. Callers block until
// capacity is available; there is no busy-polling.
//
// Lock ordering: a caller always acquires its specific tier (feed or site)
// before the total tier, never holds the total tier while blocking on a
// specific tier, and releases in the opposite order. This ordering is the
// sole deadlock-avoidance invariant; preserve it.
type Admission struct {
	feeds   *tier
	total   *tier
	perSite int

	// The per-site counters share one lock and one condition. Waiters for
	// different sites wait on the same condition, so release broadcasts
	// rather than signaling a single (possibly wrong-site) waiter.
	sitesMu   sync.Mutex
	sitesCond *sync.Cond
	sites     map[string]int
}

// NewAdmission creates an admission controller with the given tier caps.
// Non-positive caps fall back to the defaults.
func NewAdmission(maxFeeds, maxPerSite, maxTotal int) *Admission {
	if maxFeeds <= 0 {
		maxFeeds = DefaultMaxFeeds
	}
	if maxPerSite <= 0 {
		maxPerSite = DefaultMaxPerSite
	}
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotal
	}
	a := &Admission{
		feeds:   newTier(maxFeeds),
		total:   newTier(maxTotal),
		perSite: maxPerSite,
		sites:   make(map[string]int),
	}
	a.sitesCond = sync.NewCond(&a.sitesMu)
	return a
}

// AcquireFeed blocks until feed-tier capacity is available.
func (a *Admission) AcquireFeed() { a.feeds.acquire() }

// ReleaseFeed returns feed-tier capacity and wakes one waiter.
func (a *Admission) ReleaseFeed() { a.feeds.release() }

// AcquireTotal blocks until total-tier capacity is available.
// Callers must already hold their specific-tier slot.
func (a *Admission) AcquireTotal() { a.total.acquire() }

// ReleaseTotal returns total-tier capacity and wakes one waiter.
func (a *Admission) ReleaseTotal() { a.total.release() }

// AcquireSite blocks until site-tier capacity is available for site.
// A counter for an unseen site starts at zero.
func (a *Admission) AcquireSite(site string) {
	a.sitesMu.Lock()
	for a.sites[site] >= a.perSite {
		a.sitesCond.Wait()
	}
	a.sites[site]++
	a.sitesMu.Unlock()
}

// ReleaseSite returns site-tier capacity for site.
func (a *Admission) ReleaseSite(site string) {
	a.sitesMu.Lock()
	a.sites[site]--
	a.sitesCond.Broadcast()
	a.sitesMu.Unlock()
}

// InFlight reports the current total-tier and feed-tier counts.
func (a *Admission) InFlight() (total, feeds int) {
	return a.total.inFlight(), a.feeds.inFlight()
}

// SiteInFlight reports the current count for site.
func (a *Admission) SiteInFlight(site string) int {
	a.sitesMu.Lock()
	defer a.sitesMu.Unlock()
	return a.sites[site]
}
