package todo

import "errors"

var (
	// ErrNotFound is returned when an operation names an id that is not in
	// the collection.
	ErrNotFound = errors.New("todo: entry not found")
	// ErrAmbiguous is returned by Resolve when a prefix matches several ids.
	ErrAmbiguous = errors.New("todo: ambiguous entry id")
	// ErrNoSession is returned when a draft is changed or committed with no
	// edit in progress.
	ErrNoSession = errors.New("todo: no edit in progress")
	// ErrNotReady rejects mutations issued before Load completes.
	ErrNotReady = errors.New("todo: store not loaded")
	// ErrAlreadyLoaded rejects a second Load.
	ErrAlreadyLoaded = errors.New("todo: store already loaded")
	// ErrClosed rejects mutations after Close.
	ErrClosed = errors.New("todo: store closed")
)
