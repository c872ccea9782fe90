// Package ir provides the intermediate representation for YAML documents
// handled by this module.
//
// A document is a tree of nodes. Objects keep their fields and values in
// parallel slices so that the declaration order of the source document is
// never lost; field keys keep both their string image and, for numeric
// keys, the parsed numeric value. The IR carries no position or comment
// information: comments are reconstructed from raw source text by the
// update package.
//
// Nodes are created by the parse package or with the constructor functions
// (FromString, FromInt, FromMap, ...). Dotted key paths ("a.b.c") address
// nested object fields; see DeepKeys, GetPath and SetPath.
package ir
