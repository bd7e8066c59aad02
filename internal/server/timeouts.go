package server

import "time"

// HTTP server limits. Responses are small JSON documents, so these stay tight.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds poller stop, HTTP drain and store close together.
// Tests shorten it.
var shutdownTimeout = 15 * time.Second
