// Package utreexo implements a dynamic, hash-based cryptographic
// accumulator over a forest of perfect binary Merkle trees.
//
// A Forest keeps the full witness: one perfect Merkle tree per occupied bit
// of the current leaf count, so it can produce inclusion proofs. An
// Accumulator keeps only the per-height root hashes and can verify or apply
// proofs produced by a Forest, without holding any tree bodies itself.
// Driving a Forest and an Accumulator through the same sequence of inserts
// and deletes keeps their roots bit-identical at every step.
package utreexo
