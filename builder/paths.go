// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// paths.go — shortest hop-count path queries.
//
// All three queries delegate to bfs.ShortestPath and share its rules:
//   • the result runs from a begin node to an end node, inclusive;
//   • a node that is both a begin and an end is a one-node path;
//   • no path (or no live endpoint) yields nil.

package builder

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Karol03/mesh/bfs"
	"github.com/Karol03/mesh/core"
)

// PathBetween returns a shortest path from begin to end.
func (b *Builder[N, E]) PathBetween(begin, end core.NodeID) []core.NodeID {
	return b.shortest([]core.NodeID{begin}, []core.NodeID{end})
}

// PathBetweenWhere returns a shortest path from begin to the nearest node
// matching end.
func (b *Builder[N, E]) PathBetweenWhere(begin core.NodeID, end core.NodePredicate[N]) []core.NodeID {
	if end == nil {
		return nil
	}

	return b.shortest([]core.NodeID{begin}, b.mesh.Matches(end))
}

// PathBetweenMatching returns a shortest path from any node matching begin to
// any node matching end.
func (b *Builder[N, E]) PathBetweenMatching(begin, end core.NodePredicate[N]) []core.NodeID {
	if begin == nil || end == nil {
		return nil
	}

	return b.shortest(b.mesh.Matches(begin), b.mesh.Matches(end))
}

func (b *Builder[N, E]) shortest(sources, targets []core.NodeID) []core.NodeID {
	var opts []bfs.Option
	if b.maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(b.maxDepth))
	}

	path, err := bfs.ShortestPath(b.mesh, sources, targets, opts...)
	if err != nil {
		if !errors.Is(err, bfs.ErrNoPath) {
			b.log.Warn("path search failed", zap.Error(err))
		}
		return nil
	}

	return path
}
