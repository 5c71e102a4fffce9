// Package common contains shared constants and sentinel errors used across
// EditaisBR client components.
package common

// StorageNamespace prefixes every key written to the persisted local store,
// so unrelated tools sharing the same database stay out of our way.
const StorageNamespace = "@EditaisBR:"

// Persisted record names under StorageNamespace.
const (
	StorageKeyUser      = "user"
	StorageKeyToken     = "token"
	StorageKeyFavorites = "favoritos"
)

// Demo account accepted even when the remote provider rejects the
// credentials. This is a deliberate demo-mode bypass, not a security feature.
const (
	DemoEmail    = "demo@editaisbr.com"
	DemoPassword = "demo123"
)

// AuthTokenHeaderName is the HTTP header used to carry the session token on
// outbound requests to the backend.
const AuthTokenHeaderName = "Authorization"

// APIKeyHeaderName identifies the application to the backend service.
const APIKeyHeaderName = "X-Api-Key"
