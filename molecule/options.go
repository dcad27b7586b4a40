// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// options.go - functional options for New/Build.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors panic on meaningless values (nil table, nil logger,
//     unknown scheme) to surface programmer errors at the call site.
//   • Defaults: element.Default(), SerialIDs, a discarding logger, no observer.

package molecule

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chemgraph/element"
)

// Option customizes a Molecule at construction time.
type Option func(*config)

// config is the resolved set of knobs, owned by one Molecule.
type config struct {
	table    *element.Table
	scheme   IDScheme
	logger   *slog.Logger
	observer Observer
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		table:    element.Default(),
		scheme:   SerialIDs,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithElementTable replaces the reference element table.
func WithElementTable(t *element.Table) Option {
	if t == nil {
		panic("molecule: WithElementTable(nil)")
	}
	return func(c *config) { c.table = t }
}

// WithIDScheme selects the atom id allocation policy.
func WithIDScheme(s IDScheme) Option {
	if s != SerialIDs && s != PerElementIDs {
		panic("molecule: WithIDScheme: unknown scheme " + s.String())
	}
	return func(c *config) { c.scheme = s }
}

// WithLogger routes command logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("molecule: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithObserver reports every operation outcome to o.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("molecule: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}
