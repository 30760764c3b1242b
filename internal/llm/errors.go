package llm

import "errors"

var (
	// ErrConfiguration is returned at startup when the provider cannot be
	// configured, e.g. the API key is missing.
	ErrConfiguration = errors.New("configuration error")

	// ErrGeneration wraps any failure of a provider call: network, auth,
	// rate limiting, non-2xx status or an empty completion.
	ErrGeneration = errors.New("generation failure")
)
