// Package pack serializes a core.Mesh.
//
// What:
//
//   - Text packs: MarshalText / WriteText / UnmarshalText. A header line
//     "<nodes>;<edges>" followed by one line per node and per edge, payloads
//     in double quotes.
//   - Binary packs: WriteBinary / ReadBinary, and ToFile / FromFile on disk.
//     Little-endian uint32 counts, ids and payload lengths.
//   - DOT: MarshalDOT renders the mesh for Graphviz via gonum's encoder.
//
// Loading:
//
//   - Payload strings are decoded with a Codec; Descriptions() covers
//     core.Description.
//   - Pack ids are not kept. Nodes and edges are inserted into a fresh Mesh
//     in pack order and get that Mesh's ids; edge endpoints are remapped.
//   - Loading is all or nothing. The target is swapped with the fresh Mesh
//     only after every record was accepted; on error it keeps its previous
//     contents, ids and cursor.
//   - The loaded mesh has no cursor.
//
// Errors:
//
//   - ErrMeshNil, ErrCodecIncomplete   bad arguments
//   - *RecordError                     first rejected record (kind, index,
//     total, field), wrapping ErrMissingField, ErrUnmappedEndpoint or
//     ErrMalformed
//   - wrapped io / os errors           writers and FromFile
//
// pack does not log; callers decide what to report.
package pack
