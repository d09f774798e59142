package recycler

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoadOp struct {
	refreshes int
	loads     int
}

func (f *fakeLoadOp) Refresh()  { f.refreshes++ }
func (f *fakeLoadOp) LoadMore() { f.loads++ }

type fakeLoading struct {
	calls []string
}

func (f *fakeLoading) ShowLoading(hint string) { f.calls = append(f.calls, "loading:"+hint) }
func (f *fakeLoading) ShowNoMore(hint string)  { f.calls = append(f.calls, "nomore:"+hint) }
func (f *fakeLoading) Hide()                   { f.calls = append(f.calls, "hide") }

type fakeRefreshControl struct {
	callbacks []func()
	finished  int
}

func (f *fakeRefreshControl) OnRefreshRequested(callback func()) {
	f.callbacks = append(f.callbacks, callback)
}

func (f *fakeRefreshControl) FinishRefresh() { f.finished++ }

func (f *fakeRefreshControl) pull() {
	for _, callback := range f.callbacks {
		callback()
	}
}

func newTestPager(t *testing.T) (*Pager, *fakeLoadOp, *fakeLoading, *fakeRefreshControl) {
	op := &fakeLoadOp{}
	loading := &fakeLoading{}
	control := &fakeRefreshControl{}
	p := NewPager(op).
		SetLoading(loading).
		SetRefreshControl(control).
		SetLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2}))
	return p, op, loading, control
}

func TestPagerInitialState(t *testing.T) {
	p := NewPager(nil)
	assert.Equal(t, LoadStateNormal, p.State())
	assert.True(t, p.HasMore())
}

func TestPagerBottomReachedOnce(t *testing.T) {
	p, op, loading, _ := newTestPager(t)

	assert.True(t, p.BottomReached())
	assert.False(t, p.BottomReached())
	assert.False(t, p.BottomReached())

	assert.Equal(t, LoadStateLoadingMore, p.State())
	assert.Equal(t, 1, op.loads)
	assert.Equal(t, []string{"loading:" + DefaultLoadHint}, loading.calls)
}

func TestPagerHasNoMore(t *testing.T) {
	p, op, loading, _ := newTestPager(t)
	require.True(t, p.BottomReached())

	p.HasNoMoreHint("no more")
	assert.Equal(t, LoadStateNormal, p.State())
	assert.False(t, p.HasMore())
	assert.Equal(t, "nomore:no more", loading.calls[len(loading.calls)-1])

	assert.False(t, p.BottomReached())
	assert.Equal(t, 1, op.loads)

	p.Reset()
	assert.True(t, p.HasMore())
	assert.True(t, p.BottomReached())
	assert.Equal(t, 2, op.loads)
}

func TestPagerHasNoMoreDefaultHint(t *testing.T) {
	p, _, loading, _ := newTestPager(t)
	p.SetNoMoreHint("end")

	p.HasNoMore()

	assert.Equal(t, []string{"nomore:end"}, loading.calls)
}

func TestPagerRefresh(t *testing.T) {
	p, op, _, control := newTestPager(t)

	control.pull()
	assert.Equal(t, LoadStateRefreshing, p.State())
	assert.Equal(t, 1, op.refreshes)

	assert.False(t, p.BottomReached())
	assert.Zero(t, op.loads)

	p.Reset()
	assert.Equal(t, LoadStateNormal, p.State())
	assert.Equal(t, 1, control.finished)
}

func TestPagerRefreshWhileLoadingMore(t *testing.T) {
	p, op, _, _ := newTestPager(t)
	require.True(t, p.BottomReached())

	p.Refresh()

	assert.Equal(t, LoadStateRefreshing, p.State())
	assert.Equal(t, 1, op.refreshes)
}

func TestPagerResetHidesLoading(t *testing.T) {
	p, _, loading, _ := newTestPager(t)
	p.SetLoadHint("wait")
	require.True(t, p.BottomReached())

	p.Reset()

	assert.Equal(t, []string{"loading:wait", "hide"}, loading.calls)
}

func TestPagerWithoutCollaborators(t *testing.T) {
	p := NewPager(nil)
	assert.NotPanics(t, func() {
		p.Refresh()
		p.Reset()
		p.BottomReached()
		p.HasNoMore()
		p.Reset()
	})
}

func TestLoadOpFuncs(t *testing.T) {
	var calls []string
	op := LoadOpFuncs{
		RefreshFunc: func() { calls = append(calls, "refresh") },
	}
	op.Refresh()
	op.LoadMore()
	assert.Equal(t, []string{"refresh"}, calls)
}

func TestLoadStateString(t *testing.T) {
	assert.Equal(t, "normal", LoadStateNormal.String())
	assert.Equal(t, "refreshing", LoadStateRefreshing.String())
	assert.Equal(t, "loading-more", LoadStateLoadingMore.String())
	assert.Equal(t, "unknown", LoadState(9).String())
}
