// Package blockmerkle contains an in-memory authenticated block store:
// a binary Merkle tree over a fixed number of data blocks.
//
// Every [*Tree.Read] returns the block data together with a [ProofChain]
// that walks from the block's leaf up to the root,
// so that a verifier (see package bmclient) can check the data
// without trusting the storage layer.
//
// The tree is packed into one flat array with the root at index 0
// and the leaves in the final slots, in reverse block order.
// Parent and sibling positions are derived arithmetically;
// no node stores a pointer to its parent.
//
// The number of blocks is fixed at construction
// and is always rounded up to a power of two.
package blockmerkle
