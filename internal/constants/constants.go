package constants

import "time"

// API path layout.
const (
	// RestBasePath is the unscoped REST path prefix.
	RestBasePath = "/rest/V1/"

	// RestScopedPathFormat builds a store-scoped REST path prefix.
	RestScopedPathFormat = "/rest/%s/V1/"

	// AdminTokenEndpoint issues admin access tokens.
	AdminTokenEndpoint = "integration/admin/token"

	// TokenValidationEndpoint is a stable read endpoint used to verify
	// that a freshly issued token is accepted by authorization checks.
	TokenValidationEndpoint = "store/websites"
)

// Store scope codes.
const (
	// StoreCodeAll addresses every store view at once (admin scope).
	StoreCodeAll = "all"

	// StoreCodeDefault is the default store view code.
	StoreCodeDefault = "default"
)

// Product attribute scopes.
const (
	AttributeScopeGlobal  = "global"
	AttributeScopeWebsite = "website"
	AttributeScopeStore   = "store"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// TransportRetryMax bounds transport-level retries on 502/503/504.
	TransportRetryMax = 3

	// TransportRetryWaitMin is the initial backoff between transport retries.
	TransportRetryWaitMin = 1 * time.Second

	// TransportRetryWaitMax caps the backoff between transport retries.
	TransportRetryWaitMax = 8 * time.Second

	// AuthAttemptMax bounds authentication attempts per client lifetime.
	AuthAttemptMax = 3
)

// Pagination defaults.
const (
	// DefaultPageSize is the number of items requested per search page.
	DefaultPageSize = 100
)

// DefaultUserAgent is sent when the caller does not configure one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
