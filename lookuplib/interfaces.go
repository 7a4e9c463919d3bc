package lookuplib

import (
	"context"
	"net/http"
)

// HTTPClient is an interface for HTTP clients which are used by
// providers.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Provider resolves a single IP address into geolocation data.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (ProviderLookupResult, error)
}

// Logger receives events of Client.
type Logger interface {
	LookupOK(index int, ip, provider string)
	LookupError(index int, ip, provider string, err error)
}
