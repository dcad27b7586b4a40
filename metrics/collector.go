// SPDX-License-Identifier: MIT
// Package: chemgraph/metrics
//
// collector.go - Prometheus counters fed by molecule operations.
//
// Contract:
//   - Collector implements molecule.Observer; install it with
//     molecule.WithObserver.
//   - All series are registered once, on the Registerer given to
//     NewCollector. A second Collector on the same Registerer fails with
//     ErrAlreadyRegistered. A failed NewCollector leaves nothing registered.

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/chemgraph/molecule"
)

// Namespace prefixes every series.
const Namespace = "chemgraph"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ErrAlreadyRegistered indicates the series already live on the Registerer.
var ErrAlreadyRegistered = errors.New("metrics: collector already registered")

// Collector counts facade operations and hydrogen turnover.
type Collector struct {
	commands *prometheus.CounterVec
	added    prometheus.Counter
	removed  prometheus.Counter
}

var _ molecule.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "commands_total",
			Help:      "Molecule operations applied, by operation and outcome.",
		}, []string{"op", "outcome"}),
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "hydrogens_added_total",
			Help:      "Hydrogen atoms added while locking molecules.",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "hydrogens_removed_total",
			Help:      "Hydrogen atoms removed while unlocking molecules.",
		}),
	}
	var done []prometheus.Collector
	for _, col := range []prometheus.Collector{c.commands, c.added, c.removed} {
		if err := reg.Register(col); err != nil {
			for _, r := range done {
				reg.Unregister(r)
			}
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				return nil, fmt.Errorf("%w: %v", ErrAlreadyRegistered, err)
			}
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
		done = append(done, col)
	}

	return c, nil
}

// ObserveCommand counts one operation outcome.
func (c *Collector) ObserveCommand(op molecule.Op, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.commands.WithLabelValues(string(op), outcome).Inc()
}

// ObserveLock adds n to the hydrogens-added counter.
func (c *Collector) ObserveLock(n int) {
	if n > 0 {
		c.added.Add(float64(n))
	}
}

// ObserveUnlock adds n to the hydrogens-removed counter.
func (c *Collector) ObserveUnlock(n int) {
	if n > 0 {
		c.removed.Add(float64(n))
	}
}
