package provider

import "errors"

// Sentinel errors for the two failure kinds the cascade layers branch on.
// Transport and decode failures are wrapped with fmt.Errorf at the call site.
var (
	// ErrProviderLogical marks a well-formed response that explicitly signals
	// an error, e.g. Yahoo's chart.error for an unknown symbol.
	ErrProviderLogical = errors.New("provider reported a logical error")

	// ErrEmptyResult marks a well-formed response with zero usable items.
	ErrEmptyResult = errors.New("provider returned no usable items")
)
