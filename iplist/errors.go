package iplist

import "errors"

// ErrEmptyList is returned by Load if a file has no usable lines: it
// is either empty or contains only blank lines and numeric indexes.
var ErrEmptyList = errors.New("the IP list file is empty or incorrectly formatted")
