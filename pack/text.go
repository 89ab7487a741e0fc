// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// text.go — the line-oriented text pack.
//
// Layout:
//
//	<nodes>;<edges>
//	<id>;"<payload>"                  one line per node, ascending id
//	<id>;<first>;<second>;"<payload>" one line per edge, ascending id
//
// Reading is token based: spaces, tabs, CR, LF and ';' separate tokens, and a
// quoted payload runs from its opening '"' to the first '"' that is followed
// by LF, CRLF or the end of input. Payloads may therefore contain quotes,
// semicolons and lone CRs, but not a quote directly before a line break.

package pack

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/Karol03/mesh/core"
)

// MarshalText renders m as a text pack.
func MarshalText[N, E core.Payload](m *core.Mesh[N, E]) []byte {
	var buf bytes.Buffer
	_ = WriteText(&buf, m)

	return buf.Bytes()
}

// WriteText writes m to w as a text pack.
func WriteText[N, E core.Payload](w io.Writer, m *core.Mesh[N, E]) error {
	if m == nil {
		return ErrMeshNil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d;%d\n", m.NodeCount(), m.EdgeCount())
	m.Visit(
		func(n *core.Node[N]) {
			fmt.Fprintf(bw, "%d;\"%s\"\n", n.ID(), n.Value())
		},
		func(e *core.Edge[E]) {
			a, b := e.Endpoints()
			fmt.Fprintf(bw, "%d;%d;%d;\"%s\"\n", e.ID(), a, b, e.Value())
		},
	)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pack: write text: %w", err)
	}

	return nil
}

// UnmarshalText loads a text pack into m. Pack ids are remapped onto fresh
// ids; on any error m keeps its previous contents and the error is a
// *RecordError.
func UnmarshalText[N, E core.Payload](m *core.Mesh[N, E], data []byte, codec Codec[N, E]) error {
	if m == nil {
		return ErrMeshNil
	}
	if err := codec.validate(); err != nil {
		return err
	}

	s := &textScanner{data: data}
	nodes, err := s.number()
	if err != nil {
		return recordErr(KindHeader, 0, 0, FieldNodeCount, err)
	}
	edges, err := s.number()
	if err != nil {
		return recordErr(KindHeader, 0, 0, FieldEdgeCount, err)
	}

	l := newLoader(codec, int(nodes), int(edges))
	for i := 0; i < int(nodes); i++ {
		id, err := s.number()
		if err != nil {
			return recordErr(KindNode, i, int(nodes), FieldID, err)
		}
		payload, err := s.quoted()
		if err != nil {
			return recordErr(KindNode, i, int(nodes), FieldDescription, err)
		}
		if err := l.node(i, id, payload); err != nil {
			return err
		}
	}

	for i := 0; i < int(edges); i++ {
		var fields [3]uint32
		for f, name := range [3]string{FieldID, FieldFirst, FieldSecond} {
			if fields[f], err = s.number(); err != nil {
				return recordErr(KindEdge, i, int(edges), name, err)
			}
		}
		payload, err := s.quoted()
		if err != nil {
			return recordErr(KindEdge, i, int(edges), FieldDescription, err)
		}
		if err := l.edge(i, fields[0], fields[1], fields[2], payload); err != nil {
			return err
		}
	}

	l.commit(m)

	return nil
}

// textScanner tokenizes a text pack.
type textScanner struct {
	data []byte
	pos  int
}

func (s *textScanner) skip() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\r', '\n', ';':
			s.pos++
		default:
			return
		}
	}
}

func (s *textScanner) number() (uint32, error) {
	s.skip()
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
	}
	if start == s.pos {
		return 0, ErrMissingField
	}
	v, err := strconv.ParseUint(string(s.data[start:s.pos]), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return uint32(v), nil
}

func (s *textScanner) quoted() (string, error) {
	s.skip()
	if s.pos >= len(s.data) || s.data[s.pos] != '"' {
		return "", ErrMissingField
	}
	for i := s.pos + 1; i < len(s.data); i++ {
		if s.data[i] != '"' {
			continue
		}
		if endsPayload(s.data[i+1:]) {
			out := string(s.data[s.pos+1 : i])
			s.pos = i + 1
			return out, nil
		}
	}

	return "", fmt.Errorf("%w: unterminated payload at byte %d", ErrMalformed, s.pos)
}

// endsPayload reports whether rest, the input after a quote, starts with a
// line break ("\n" or "\r\n") or is empty. A lone CR belongs to the payload.
func endsPayload(rest []byte) bool {
	return len(rest) == 0 || rest[0] == '\n' || bytes.HasPrefix(rest, []byte("\r\n"))
}
