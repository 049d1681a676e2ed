// Package groestl implements the Grøstl cryptographic hash function, a
// SHA-3 finalist built from two AES-inspired permutations combined in a
// wide-pipe Merkle-Damgård construction. Grøstl comes in two state widths:
// groestl256 produces 224- and 256-bit digests from a 512-bit chaining
// state, and groestl512 produces 384- and 512-bit digests from a 1024-bit
// chaining state.
package groestl
