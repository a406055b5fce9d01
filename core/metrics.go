// Package core: Prometheus instrumentation.
//
// The engine does not own a registry; callers construct a Collector over
// a Graph and register it wherever they aggregate metrics. Every scrape
// reads the live counts under the engine's read lock.
package core

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a Graph's cardinalities as Prometheus gauges:
//
//	propgraph_nodes       current number of nodes
//	propgraph_edges       current number of edges
//	propgraph_labels      distinct labels held by at least one node
//	propgraph_edge_types  distinct edge types in use
type Collector struct {
	g *Graph

	nodes     *prometheus.Desc
	edges     *prometheus.Desc
	labels    *prometheus.Desc
	edgeTypes *prometheus.Desc
}

// NewCollector builds a Collector for the given graph. Register it on a
// prometheus.Registerer; the zero-dependency engine itself never scrapes.
func NewCollector(g *Graph) *Collector {
	return &Collector{
		g: g,
		nodes: prometheus.NewDesc(
			"propgraph_nodes",
			"Current number of nodes in the graph.",
			nil, nil,
		),
		edges: prometheus.NewDesc(
			"propgraph_edges",
			"Current number of edges in the graph.",
			nil, nil,
		),
		labels: prometheus.NewDesc(
			"propgraph_labels",
			"Distinct labels currently held by at least one node.",
			nil, nil,
		),
		edgeTypes: prometheus.NewDesc(
			"propgraph_edge_types",
			"Distinct edge types currently in use.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.edges
	ch <- c.labels
	ch <- c.edgeTypes
}

// Collect implements prometheus.Collector. Each gauge is a point-in-time
// read under the engine's read lock.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.g.mu.RLock()
	nodes := len(c.g.nodes)
	edges := len(c.g.edges)
	labels := len(c.g.index.byLabel)
	types := len(c.g.index.byType)
	c.g.mu.RUnlock()

	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(nodes))
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(edges))
	ch <- prometheus.MustNewConstMetric(c.labels, prometheus.GaugeValue, float64(labels))
	ch <- prometheus.MustNewConstMetric(c.edgeTypes, prometheus.GaugeValue, float64(types))
}
