package recycler

import "github.com/go-logr/logr"

// LoadState is the state of a Pager.
type LoadState uint8

const (
	LoadStateNormal LoadState = iota
	LoadStateRefreshing
	LoadStateLoadingMore
)

func (s LoadState) String() string {
	switch s {
	case LoadStateNormal:
		return "normal"
	case LoadStateRefreshing:
		return "refreshing"
	case LoadStateLoadingMore:
		return "loading-more"
	default:
		return "unknown"
	}
}

const (
	DefaultLoadHint   = "Loading..."
	DefaultNoMoreHint = "No more data"
)

// LoadOp performs the data fetches requested by a Pager. Both methods must
// return immediately; the caller later reports completion through
// Pager.Reset or Pager.HasNoMore.
type LoadOp interface {
	Refresh()
	LoadMore()
}

// LoadOpFuncs adapts two functions to a LoadOp. Nil functions are skipped.
type LoadOpFuncs struct {
	RefreshFunc  func()
	LoadMoreFunc func()
}

// Refresh calls RefreshFunc.
func (f LoadOpFuncs) Refresh() {
	if f.RefreshFunc != nil {
		f.RefreshFunc()
	}
}

// LoadMore calls LoadMoreFunc.
func (f LoadOpFuncs) LoadMore() {
	if f.LoadMoreFunc != nil {
		f.LoadMoreFunc()
	}
}

// Loading is the indicator shown at the end of the list while more data is
// loading.
type Loading interface {
	ShowLoading(hint string)
	ShowNoMore(hint string)
	Hide()
}

// RefreshControl emits refresh requests (for example from a pull gesture) and
// shows a refreshing state until FinishRefresh.
type RefreshControl interface {
	OnRefreshRequested(callback func())
	FinishRefresh()
}

// Pager gates refresh and load-more requests so that at most one is
// outstanding. It is not safe for concurrent use; all calls happen on the UI
// goroutine.
type Pager struct {
	state   LoadState
	hasMore bool

	loadOp  LoadOp
	loading Loading
	refresh RefreshControl

	loadHint   string
	noMoreHint string

	logger logr.Logger
}

// NewPager returns a pager in the normal state with more data available.
// loadOp may be nil, in which case requests only change state.
func NewPager(loadOp LoadOp) *Pager {
	return &Pager{
		hasMore:    true,
		loadOp:     loadOp,
		loadHint:   DefaultLoadHint,
		noMoreHint: DefaultNoMoreHint,
		logger:     logr.Discard(),
	}
}

// SetLoading sets the load-more indicator.
func (p *Pager) SetLoading(loading Loading) *Pager {
	p.loading = loading
	return p
}

// SetRefreshControl sets the refresh control and subscribes to its requests.
func (p *Pager) SetRefreshControl(control RefreshControl) *Pager {
	p.refresh = control
	if control != nil {
		control.OnRefreshRequested(p.Refresh)
	}
	return p
}

// SetLoadHint sets the hint passed to Loading.ShowLoading.
func (p *Pager) SetLoadHint(hint string) *Pager {
	p.loadHint = hint
	return p
}

// SetNoMoreHint sets the hint passed to Loading.ShowNoMore by HasNoMore.
func (p *Pager) SetNoMoreHint(hint string) *Pager {
	p.noMoreHint = hint
	return p
}

// SetLogger sets the logger used for state transitions.
func (p *Pager) SetLogger(logger logr.Logger) *Pager {
	p.logger = logger
	return p
}

// State returns the current state.
func (p *Pager) State() LoadState {
	return p.state
}

// HasMore reports whether more data may be requested.
func (p *Pager) HasMore() bool {
	return p.hasMore
}

// Refresh enters the refreshing state from any state and requests a refresh.
func (p *Pager) Refresh() {
	p.transition(LoadStateRefreshing)
	if p.loadOp != nil {
		p.loadOp.Refresh()
	}
}

// BottomReached requests more data when the pager is idle and more data is
// available. It reports whether a request was made.
func (p *Pager) BottomReached() bool {
	if p.state != LoadStateNormal || !p.hasMore {
		p.logger.V(2).Info("bottom reached ignored", "state", p.state, "hasMore", p.hasMore)
		return false
	}
	p.transition(LoadStateLoadingMore)
	if p.loading != nil {
		p.loading.ShowLoading(p.loadHint)
	}
	if p.loadOp != nil {
		p.loadOp.LoadMore()
	}
	return true
}

// HasNoMore returns to the normal state and stops further load-more requests
// until Reset.
func (p *Pager) HasNoMore() {
	p.HasNoMoreHint(p.noMoreHint)
}

// HasNoMoreHint works like HasNoMore with an explicit hint.
func (p *Pager) HasNoMoreHint(hint string) {
	p.transition(LoadStateNormal)
	p.hasMore = false
	if p.loading != nil {
		p.loading.ShowNoMore(hint)
	}
}

// Reset returns to the normal state, allows further load-more requests and
// ends the refresh control's refreshing state.
func (p *Pager) Reset() {
	p.transition(LoadStateNormal)
	p.hasMore = true
	if p.refresh != nil {
		p.refresh.FinishRefresh()
	}
	if p.loading != nil {
		p.loading.Hide()
	}
}

func (p *Pager) transition(next LoadState) {
	if p.state == next {
		return
	}
	p.logger.V(1).Info("load state changed", "from", p.state, "to", next)
	p.state = next
}
