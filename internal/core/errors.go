package core

import "errors"

var (
	// ErrCapacityExceeded is returned when a view is added at MaxViews.
	ErrCapacityExceeded = errors.New("maximum number of views reached")
	// ErrNoSelection is returned when an operation needs a selected view and none is.
	ErrNoSelection = errors.New("no view selected")
	// ErrViewNotFound is returned for an id that is not in the registry.
	ErrViewNotFound = errors.New("view not found")
	// ErrNoURL is returned when an operation needs a URL and the view is empty.
	ErrNoURL = errors.New("view has no url")
)
