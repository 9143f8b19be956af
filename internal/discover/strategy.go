package discover

import "context"

// Strategy is one self-contained probing mechanism for locating Python build
// configuration. Probes are read-only: they never modify the host and never
// return an error. A probe that cannot run (missing tool, nonzero exit,
// empty output) yields an empty Outcome and the chain moves on.
type Strategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Probe attempts discovery for the normalized version token.
	Probe(ctx context.Context, token string) Outcome
}
