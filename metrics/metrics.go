// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus instruments for mesh stores.
//
// A Collector is created against an explicit prometheus.Registerer so that
// several stores (or several tests) never fight over the default registry.
// Every method is safe on a nil *Collector, which lets core.Mesh call it
// unconditionally when no metrics were configured.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name when Options.Namespace is empty.
const DefaultNamespace = "mesh"

// ErrRegistererNil is returned by New when no registerer is supplied.
var ErrRegistererNil = errors.New("metrics: registerer is nil")

// Collector groups the counters and gauges updated by core.Mesh.
//
// Counters are labeled by mesh instance name so that one registry can
// observe several stores.
type Collector struct {
	nodesAttached  *prometheus.CounterVec
	edgesTied      *prometheus.CounterVec
	nodesDetached  *prometheus.CounterVec
	branchesPurged *prometheus.CounterVec
	nodesPurged    *prometheus.CounterVec
	nodes          *prometheus.GaugeVec
	edges          *prometheus.GaugeVec
}

// New builds a Collector and registers all of its instruments on reg.
// An empty namespace falls back to DefaultNamespace.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		return nil, ErrRegistererNil
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		nodesAttached: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_attached_total",
			Help:      "Nodes created by attach or insert.",
		}, []string{"mesh"}),
		edgesTied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_tied_total",
			Help:      "Edges created by attach, tie or insert.",
		}, []string{"mesh"}),
		nodesDetached: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_detached_total",
			Help:      "Nodes removed by an explicit detach call.",
		}, []string{"mesh"}),
		branchesPurged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "branches_purged_total",
			Help:      "Disconnected branches erased by connectivity repair.",
		}, []string{"mesh"}),
		nodesPurged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_purged_total",
			Help:      "Nodes erased as part of a purged branch.",
		}, []string{"mesh"}),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Current number of nodes in the store.",
		}, []string{"mesh"}),
		edges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Current number of edges in the store.",
		}, []string{"mesh"}),
	}

	for _, col := range []prometheus.Collector{
		c.nodesAttached, c.edgesTied, c.nodesDetached,
		c.branchesPurged, c.nodesPurged, c.nodes, c.edges,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NodeAttached counts one created node.
func (c *Collector) NodeAttached(mesh string) {
	if c == nil {
		return
	}
	c.nodesAttached.WithLabelValues(mesh).Inc()
}

// EdgeTied counts one created edge.
func (c *Collector) EdgeTied(mesh string) {
	if c == nil {
		return
	}
	c.edgesTied.WithLabelValues(mesh).Inc()
}

// NodeDetached counts one explicitly detached node.
func (c *Collector) NodeDetached(mesh string) {
	if c == nil {
		return
	}
	c.nodesDetached.WithLabelValues(mesh).Inc()
}

// BranchPurged counts one erased branch of the given node size.
func (c *Collector) BranchPurged(mesh string, nodes int) {
	if c == nil {
		return
	}
	c.branchesPurged.WithLabelValues(mesh).Inc()
	c.nodesPurged.WithLabelValues(mesh).Add(float64(nodes))
}

// Size publishes the current store size.
func (c *Collector) Size(mesh string, nodes, edges int) {
	if c == nil {
		return
	}
	c.nodes.WithLabelValues(mesh).Set(float64(nodes))
	c.edges.WithLabelValues(mesh).Set(float64(edges))
}

// Counters exposes the raw instruments, mainly for assertions in tests
// through prometheus/testutil. A nil Collector yields nil instruments.
func (c *Collector) Counters(mesh string) (attached, tied, detached, branches, purged prometheus.Counter) {
	if c == nil {
		return nil, nil, nil, nil, nil
	}
	return c.nodesAttached.WithLabelValues(mesh),
		c.edgesTied.WithLabelValues(mesh),
		c.nodesDetached.WithLabelValues(mesh),
		c.branchesPurged.WithLabelValues(mesh),
		c.nodesPurged.WithLabelValues(mesh)
}

// Gauges exposes the size gauges for one mesh.
func (c *Collector) Gauges(mesh string) (nodes, edges prometheus.Gauge) {
	if c == nil {
		return nil, nil
	}
	return c.nodes.WithLabelValues(mesh), c.edges.WithLabelValues(mesh)
}
