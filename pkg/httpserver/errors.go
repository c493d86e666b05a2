package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyStarted is joined with ErrStart when Run is called twice.
	ErrAlreadyStarted = errors.New("server already started")
	// ErrNotReady is returned by Server.CheckReady outside the serving window.
	ErrNotReady = errors.New("server is not serving")
)
