package recycler

import "github.com/go-logr/logr"

// Option configures a Delegate.
type Option func(*delegateOptions)

type delegateOptions struct {
	loadOp     LoadOp
	refresh    RefreshControl
	loading    Loading
	loadHint   string
	noMoreHint string
	config     *Config
	logger     logr.Logger
}

// WithLoadOp sets the operation that performs refreshes and page loads.
// Without it the delegate neither refreshes nor paginates.
func WithLoadOp(loadOp LoadOp) Option {
	return func(o *delegateOptions) {
		o.loadOp = loadOp
	}
}

// WithRefreshControl replaces the default RefreshHeader. If control is an
// ItemView it is added as the first header.
func WithRefreshControl(control RefreshControl) Option {
	return func(o *delegateOptions) {
		o.refresh = control
	}
}

// WithLoading replaces the default LoadingFooter. If loading is an ItemView it
// is added as the last footer.
func WithLoading(loading Loading) Option {
	return func(o *delegateOptions) {
		o.loading = loading
	}
}

// WithLoadHint sets the text shown while more data is loading.
func WithLoadHint(hint string) Option {
	return func(o *delegateOptions) {
		o.loadHint = hint
	}
}

// WithNoMoreHint sets the text shown when no more data is available.
func WithNoMoreHint(hint string) Option {
	return func(o *delegateOptions) {
		o.noMoreHint = hint
	}
}

// WithConfig applies cfg's hints and key bindings. Hints given with
// WithLoadHint and WithNoMoreHint take precedence.
func WithConfig(cfg Config) Option {
	return func(o *delegateOptions) {
		o.config = &cfg
	}
}

// WithLogger sets the logger of the delegate and its pager.
func WithLogger(logger logr.Logger) Option {
	return func(o *delegateOptions) {
		o.logger = logger
	}
}

// Delegate wires a ContentAdapter, a CompositeAdapter and a Pager to a
// RecyclerView. Configure it with options, call Build once, then mutate the
// list through its forwarding methods. Forwarders called before Build do
// nothing and return zero values.
type Delegate[T any] struct {
	binder  Binder[T]
	view    *RecyclerView
	options delegateOptions

	content   *ContentAdapter[T]
	composite *CompositeAdapter
	pager     *Pager
	detector  *ScrollEndDetector
	built     bool
}

// NewDelegate returns an unbuilt delegate.
func NewDelegate[T any](binder Binder[T], view *RecyclerView, opts ...Option) *Delegate[T] {
	options := delegateOptions{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&options)
	}
	return &Delegate[T]{
		binder:  binder,
		view:    view,
		options: options,
	}
}

// Build creates the adapters and attaches them to the view. The refresh
// control and the scroll listener are wired only when a LoadOp was given.
func (d *Delegate[T]) Build() error {
	if d.built {
		return ErrAlreadyBuilt
	}
	if d.view == nil {
		return ErrNoView
	}

	opts := d.options
	cfg := DefaultConfig()
	if opts.config != nil {
		cfg = *opts.config
		d.view.Keys = cfg.Keys.KeyMap()
	}
	loadHint := cfg.LoadHint
	if opts.loadHint != "" {
		loadHint = opts.loadHint
	}
	noMoreHint := cfg.NoMoreHint
	if opts.noMoreHint != "" {
		noMoreHint = opts.noMoreHint
	}

	content := NewContentAdapter(d.binder)
	composite, err := NewCompositeAdapter(content)
	if err != nil {
		return err
	}
	d.content = content
	d.composite = composite

	d.pager = NewPager(opts.loadOp).
		SetLoadHint(loadHint).
		SetNoMoreHint(noMoreHint).
		SetLogger(opts.logger.WithName("pager"))

	if opts.loadOp != nil {
		refresh := opts.refresh
		if refresh == nil {
			refresh = NewRefreshHeader().SetHint(cfg.RefreshHint)
		}
		if view, ok := refresh.(ItemView); ok {
			composite.AddHeader(view)
		}
		if puller, ok := refresh.(interface{ Pull() bool }); ok {
			d.view.SetPullFunc(func() { puller.Pull() })
		}
		d.pager.SetRefreshControl(refresh)

		d.detector = NewScrollEndDetector(d.pager)
		d.view.AddScrollListener(func(dy int, m ScrollMetrics) {
			d.detector.OnScrolled(dy, m)
		})
	}

	loading := opts.loading
	if loading == nil {
		loading = NewLoadingFooter()
	}
	loading.Hide()
	if view, ok := loading.(ItemView); ok {
		composite.AddFooter(view)
	}
	d.pager.SetLoading(loading)

	d.view.SetAdapter(composite)
	d.built = true
	opts.logger.V(1).Info("delegate built", "paginated", opts.loadOp != nil)
	return nil
}

// Adapter returns the content adapter, or nil before Build.
func (d *Delegate[T]) Adapter() *ContentAdapter[T] {
	return d.content
}

// Composite returns the composite adapter, or nil before Build.
func (d *Delegate[T]) Composite() *CompositeAdapter {
	return d.composite
}

// Pager returns the pager, or nil before Build.
func (d *Delegate[T]) Pager() *Pager {
	return d.pager
}

// Append adds items at the end of the content.
func (d *Delegate[T]) Append(items ...T) {
	if d.content != nil {
		d.content.Append(items...)
	}
}

// InsertAt inserts item at the content index.
func (d *Delegate[T]) InsertAt(item T, index int) {
	if d.content != nil {
		d.content.InsertAt(item, index)
	}
}

// InsertRange inserts items at the content index.
func (d *Delegate[T]) InsertRange(items []T, index int) {
	if d.content != nil {
		d.content.InsertRange(items, index)
	}
}

// ReplaceAll replaces the whole content.
func (d *Delegate[T]) ReplaceAll(items []T) {
	if d.content != nil {
		d.content.ReplaceAll(items)
	}
}

// RemoveItem removes the item at the content index.
func (d *Delegate[T]) RemoveItem(index int) {
	if d.content != nil {
		d.content.RemoveAt(index)
	}
}

// MoveItem moves the item at content index from to content index to.
func (d *Delegate[T]) MoveItem(from, to int) error {
	if d.content == nil {
		return nil
	}
	return d.content.Move(from, to)
}

// Clear removes all content items.
func (d *Delegate[T]) Clear() {
	if d.content != nil {
		d.content.Clear()
	}
}

// AddHeader adds a header view after the existing headers.
func (d *Delegate[T]) AddHeader(view ItemView) {
	if d.composite != nil {
		d.composite.AddHeader(view)
	}
}

// RemoveHeader removes a header view.
func (d *Delegate[T]) RemoveHeader(view ItemView) bool {
	if d.composite == nil {
		return false
	}
	return d.composite.RemoveHeader(view)
}

// AddFooter adds a footer view after the existing footers.
func (d *Delegate[T]) AddFooter(view ItemView) {
	if d.composite != nil {
		d.composite.AddFooter(view)
	}
}

// RemoveFooter removes a footer view.
func (d *Delegate[T]) RemoveFooter(view ItemView) bool {
	if d.composite == nil {
		return false
	}
	return d.composite.RemoveFooter(view)
}

// HeaderCount returns the number of headers, including the refresh header.
func (d *Delegate[T]) HeaderCount() int {
	if d.composite == nil {
		return 0
	}
	return d.composite.HeaderCount()
}

// FooterCount returns the number of footers, including the loading footer.
func (d *Delegate[T]) FooterCount() int {
	if d.composite == nil {
		return 0
	}
	return d.composite.FooterCount()
}

// ItemCount returns the number of positions in the list.
func (d *Delegate[T]) ItemCount() int {
	if d.composite == nil {
		return 0
	}
	return d.composite.ItemCount()
}

// ContentItemCount returns the number of content items.
func (d *Delegate[T]) ContentItemCount() int {
	if d.content == nil {
		return 0
	}
	return d.content.Len()
}

// Reset reports a finished refresh or page load.
func (d *Delegate[T]) Reset() {
	if d.pager != nil {
		d.pager.Reset()
	}
}

// HasNoMore reports that the last page was loaded.
func (d *Delegate[T]) HasNoMore() {
	if d.pager != nil {
		d.pager.HasNoMore()
	}
}

// State returns the pager state.
func (d *Delegate[T]) State() LoadState {
	if d.pager == nil {
		return LoadStateNormal
	}
	return d.pager.State()
}

// SetClickedFunc sets the handler called when a content item is activated.
func (d *Delegate[T]) SetClickedFunc(handler func(item T, position int)) {
	if d.content != nil {
		d.content.SetClickedFunc(handler)
	}
}

// SetLongClickedFunc sets the handler called on a long click of a content
// item.
func (d *Delegate[T]) SetLongClickedFunc(handler func(item T, position int) bool) {
	if d.content != nil {
		d.content.SetLongClickedFunc(handler)
	}
}
