package data

import (
	"fmt"
	"strings"
)

// CacheStrategy controls when cached file objects are refreshed.
type CacheStrategy int

const (
	// CacheManual never refreshes automatically.
	CacheManual CacheStrategy = iota
	// CacheOnResolve refreshes a file object each time it is resolved.
	CacheOnResolve
	// CacheOnCall refreshes a file object before every method call.
	CacheOnCall
)

func (s CacheStrategy) String() string {
	switch s {
	case CacheManual:
		return "manual"
	case CacheOnResolve:
		return "on_resolve"
	case CacheOnCall:
		return "on_call"
	default:
		return "unknown"
	}
}

// ParseCacheStrategy converts a strategy name into its constant.
func ParseCacheStrategy(s string) (CacheStrategy, error) {
	switch strings.ToLower(s) {
	case "manual":
		return CacheManual, nil
	case "on_resolve", "onresolve":
		return CacheOnResolve, nil
	case "on_call", "oncall":
		return CacheOnCall, nil
	default:
		return CacheManual, fmt.Errorf("%w: unknown cache strategy '%s'", ErrInvalidArgument, s)
	}
}
