// Package client defines the typed surface of the backend-as-a-service the
// application delegates to: the session provider (identity creation, login,
// sign-out, session-change subscription) and the document store (profiles,
// notices, favorites). The Client interface is the only coupling point;
// HTTPClient is the concrete transport.
package client
