package providers

import "errors"

// ErrAuthTokenIsRequired is returned if you are trying to initialize
// a provider which requires some token to work.
var ErrAuthTokenIsRequired = errors.New("auth token is required")
