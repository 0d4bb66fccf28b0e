// Package ledger implements an append-only blockchain secured by a
// proof-of-work puzzle, built to demonstrate tamper detection.
//
// # Core Components
//
// Blockchain: An append-only log of blocks with cryptographic hash
// chaining. Appending a block requires solving a proof-of-work puzzle,
// so rewriting history costs demonstrable computational effort.
//
// Block: A single record containing an opaque payload, a link to its
// predecessor, and a nonce/hash pair found by mining.
//
// Verdict: The result of a validation sweep over the whole chain,
// naming the first offending block and the kind of corruption found.
//
// # Security Properties
//
// The blockchain provides:
//   - Verifiability: anyone can verify the integrity of the entire chain
//   - Tamper detection: any modification breaks the hash chain
//   - Costly rewrites: a tampered block can only be made consistent
//     again by re-mining it and every block after it
//
// Proof-of-work does not prevent tampering. A sealed block's payload can
// still be overwritten in place; the point is that Validate detects it.
//
// # Usage
//
// Create a blockchain with NewBlockchain, which mines the genesis block
// before returning. Append blocks as payloads arrive, then call Validate
// at any time to check that the chain remains intact.
package ledger
