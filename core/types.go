// SPDX-License-Identifier: MIT
// File: types.go
// Role: NodeID, EdgeID, the Payload constraint, Node, Edge, Mesh, Option,
//       sentinel errors, and the NewMesh constructor.
//
// Errors:
//
//	ErrNodeNotFound - an endpoint passed to InsertEdge does not exist.
//	ErrSelfLoop     - an edge would connect a node to itself.
//	ErrInvariant    - CheckInvariants found an inconsistent topology.

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/btree"
	"go.uber.org/zap"

	"github.com/Karol03/mesh/metrics"
)

// Sentinel errors for core mesh operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge whose two endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvariant indicates that node incidence and edge endpoints disagree.
	ErrInvariant = errors.New("core: topology invariant violated")
)

// NodeID identifies a node within one Mesh. Zero means "no node".
type NodeID uint32

// EdgeID identifies an edge within one Mesh. Zero means "no edge".
type EdgeID uint32

const (
	// NoNode is the reserved "unset / not found" node id.
	NoNode NodeID = 0

	// NoEdge is the reserved "unset / not found" edge id.
	NoEdge EdgeID = 0
)

// Payload is the value attached to nodes and edges. The store treats it as
// opaque; String is its display form and the text written by the pack codecs.
type Payload interface {
	fmt.Stringer
}

// Description is the default string-backed payload.
type Description string

// String returns the description text.
func (d Description) String() string { return string(d) }

// Node is a payload plus the set of incident edge ids. It never references
// other nodes directly.
type Node[N Payload] struct {
	id    NodeID
	value N
	edges btree.Set[EdgeID]
}

// ID returns the node id.
func (n *Node[N]) ID() NodeID { return n.id }

// Value returns the node payload.
func (n *Node[N]) Value() N { return n.value }

// Edges returns the incident edge ids in ascending order.
func (n *Node[N]) Edges() []EdgeID { return n.edges.Keys() }

// Degree returns the number of incident edges.
func (n *Node[N]) Degree() int { return n.edges.Len() }

// HasEdge reports whether e is incident to the node.
func (n *Node[N]) HasEdge(e EdgeID) bool { return n.edges.Contains(e) }

// String renders the node as `node [e1, e2] {payload}`.
func (n *Node[N]) String() string {
	var sb strings.Builder
	sb.WriteString("node [")
	first := true
	n.edges.Scan(func(e EdgeID) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d", e)
		return true
	})
	sb.WriteString("] {")
	sb.WriteString(n.value.String())
	sb.WriteString("}")

	return sb.String()
}

// Edge is an undirected connection between two nodes. Endpoint order only
// matters for serialization stability.
type Edge[E Payload] struct {
	id     EdgeID
	first  NodeID
	second NodeID
	value  E
}

// ID returns the edge id.
func (e *Edge[E]) ID() EdgeID { return e.id }

// Value returns the edge payload.
func (e *Edge[E]) Value() E { return e.value }

// Endpoints returns both endpoint ids in insertion order.
func (e *Edge[E]) Endpoints() (NodeID, NodeID) { return e.first, e.second }

// Other returns the endpoint opposite to n, or NoNode if n is not an endpoint.
func (e *Edge[E]) Other(n NodeID) NodeID {
	switch n {
	case e.first:
		return e.second
	case e.second:
		return e.first
	default:
		return NoNode
	}
}

// Touches reports whether n is one of the endpoints.
func (e *Edge[E]) Touches(n NodeID) bool { return e.first == n || e.second == n }

// String renders the edge as `edge (a <-> b) {payload}`.
func (e *Edge[E]) String() string {
	return fmt.Sprintf("edge (%d <-> %d) {%s}", e.first, e.second, e.value.String())
}

// NodePredicate is a boolean test over a node record.
type NodePredicate[N Payload] func(n *Node[N]) bool

// ValueIs returns a predicate matching nodes whose payload display form equals s.
func ValueIs[N Payload](s string) NodePredicate[N] {
	return func(n *Node[N]) bool { return n.value.String() == s }
}

// Option configures a Mesh before first use.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *metrics.Collector
	name    string
}

// WithLogger routes store events to logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics publishes store mutations to c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}

// WithName sets the instance name used in log fields and metric labels.
// An empty name is ignored.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// Mesh owns every node and edge, the two id generators, and the cursor.
//
// Nodes and edges live in id-ordered maps, so every scan (Visit, predicate
// lookups, pack output) runs in ascending id order.
//
// Mesh is not safe for concurrent use. Callers that share one across
// goroutines must guard the whole store with a single exclusive lock;
// connectivity repair touches arbitrary parts of the graph.
type Mesh[N, E Payload] struct {
	nodes  btree.Map[NodeID, *Node[N]]
	edges  btree.Map[EdgeID, *Edge[E]]
	cursor NodeID

	nodeIDs idGenerator
	edgeIDs idGenerator

	name    string
	log     *zap.Logger
	metrics *metrics.Collector
}

// NewMesh creates an empty Mesh with the cursor unset.
// Complexity: O(len(opts)).
func NewMesh[N, E Payload](opts ...Option) *Mesh[N, E] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = uuid.NewString()
	}

	return &Mesh[N, E]{
		name:    o.name,
		log:     o.logger.With(zap.String("mesh", o.name)),
		metrics: o.metrics,
	}
}

// Name returns the instance name.
func (m *Mesh[N, E]) Name() string { return m.name }
