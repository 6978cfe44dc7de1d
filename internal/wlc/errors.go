package wlc

import "errors"

var (
	// ErrUnavailable is returned by New when built without cgo or the wlc tag.
	ErrUnavailable = errors.New("libwlc backend not available (build with CGO enabled and -tags wlc)")

	// ErrNotRunning is returned by New when the process is not a running
	// libwlc compositor, e.g. the standalone CLI or daemon.
	ErrNotRunning = errors.New("libwlc is not initialized in this process")
)
