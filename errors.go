package recycler

import "errors"

var (
	// ErrNegativeIndex is returned when a move is requested with a negative
	// source or destination index. Nothing is mutated.
	ErrNegativeIndex = errors.New("recycler: negative index")
	// ErrNestedComposite is returned when a CompositeAdapter is asked to wrap
	// another CompositeAdapter.
	ErrNestedComposite = errors.New("recycler: cannot wrap a CompositeAdapter")
	// ErrAlreadyBuilt is returned by Delegate.Build on its second call.
	ErrAlreadyBuilt = errors.New("recycler: delegate already built")
	// ErrNoView is returned by Delegate.Build when no RecyclerView was given.
	ErrNoView = errors.New("recycler: delegate has no view")
)
