// Package mesh is an in-memory, cursor-driven graph store: id-addressed
// nodes and edges carrying arbitrary payloads, a fluent builder that moves a
// cursor around the graph, pattern path queries, and deletion that keeps the
// graph connected by erasing whatever branch a removal cuts off.
//
// What is in the box?
//
//	core/    Mesh[N, E], Node, Edge, ids, attach/tie/detach with rebranch
//	bfs/     multi-source, multi-target bidirectional shortest path
//	dfs/     predicate-sequence walks, reachability, components
//	builder/ chainable Builder façade plus a catalog of shapes
//	pack/    text and binary packs, file helpers, Graphviz DOT export
//	metrics/ Prometheus counters and gauges for store mutations
//	config/  YAML/TOML/HCL + env configuration for meshctl
//	cmd/meshctl demo, gen, convert, path and stats on the command line
//
// Quick ASCII example:
//
//	    1───2
//	    │
//	    3───4
//
// Removing 3 cuts 4 off, so 4 goes with it and the mesh is left with 1───2.
//
//	go get github.com/Karol03/mesh
package mesh
