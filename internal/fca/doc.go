// Package fca computes the closure structure of a binary object–attribute
// relation: concept intents and extents, keys and passkeys, the lattice
// order, delta-stability, and the proper-premise and Duquenne–Guigues
// implication bases.
//
// Everything here is a pure computation over an in-memory Context. Results
// are deterministic: ties are always broken by the canonical order of
// attribute sets (cardinality, then ascending member indices).
package fca
