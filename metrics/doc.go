// SPDX-License-Identifier: MIT

// Package metrics exports molecule operation counters to Prometheus.
//
//	c, err := metrics.NewCollector(prometheus.NewRegistry())
//	m := molecule.New("octane", molecule.WithObserver(c))
package metrics
