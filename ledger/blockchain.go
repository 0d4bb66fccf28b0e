package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"powledger/digest"
)

// GenesisPrevHash is the sentinel predecessor reference of block 0.
const GenesisPrevHash = "0"

// genesisPayload is the fixed payload of the genesis block.
const genesisPayload = "genesis"

// ErrEmptyChain is returned when the chain is used before a genesis
// block exists. Going through NewBlockchain makes this unreachable, so
// hitting it is a programming error.
var ErrEmptyChain = errors.New("blockchain is empty")

// Blockchain is an ordered sequence of mined blocks. All mutations are
// serialized; reads of already-sealed blocks are never blocked by an
// in-flight mining search.
type Blockchain struct {
	mu         sync.RWMutex // guards blocks
	appendMu   sync.Mutex   // serializes mutators across the mining loop
	blocks     []*Block
	difficulty int
}

// NewBlockchain creates a chain whose genesis block is mined before the
// chain becomes visible to the caller. The difficulty is the number of
// leading zero hex digits every block hash must carry, fixed for the
// lifetime of the chain.
func NewBlockchain(ctx context.Context, difficulty int, opts ...MineOption) (*Blockchain, error) {
	if difficulty < 0 {
		return nil, fmt.Errorf("invalid difficulty %d", difficulty)
	}

	genesis := NewBlock(0, time.Now().Unix(), genesisPayload, GenesisPrevHash)
	if err := genesis.Mine(ctx, difficulty, opts...); err != nil {
		return nil, fmt.Errorf("mining genesis block: %w", err)
	}

	return &Blockchain{
		blocks:     []*Block{genesis},
		difficulty: difficulty,
	}, nil
}

// Append builds the next block on top of the current tip, mines it at
// the chain's difficulty, then pushes it onto the chain. The sealed
// block is returned. A partially-mined block is never visible through
// the read accessors, and two concurrent Appends are serialized so the
// second one always chains onto the block sealed by the first.
func (bc *Blockchain) Append(ctx context.Context, data string, opts ...MineOption) (Block, error) {
	bc.appendMu.Lock()
	defer bc.appendMu.Unlock()

	tip, err := bc.Latest()
	if err != nil {
		return Block{}, err
	}

	block := NewBlock(tip.Index+1, time.Now().Unix(), data, tip.Hash)
	if err := block.Mine(ctx, bc.difficulty, opts...); err != nil {
		return Block{}, fmt.Errorf("mining block %d: %w", block.Index, err)
	}

	bc.mu.Lock()
	bc.blocks = append(bc.blocks, block)
	bc.mu.Unlock()

	return *block, nil
}

// Latest returns a copy of the most recently sealed block.
func (bc *Blockchain) Latest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return *bc.blocks[len(bc.blocks)-1], nil
}

// Block returns a copy of the block at the given index.
func (bc *Blockchain) Block(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return *bc.blocks[index], nil
}

// Blocks returns a snapshot copy of the whole chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	snapshot := make([]Block, len(bc.blocks))
	for i, b := range bc.blocks {
		snapshot[i] = *b
	}
	return snapshot
}

// Len returns the number of blocks in the chain.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Difficulty returns the number of leading zero hex digits required of
// every block hash.
func (bc *Blockchain) Difficulty() int {
	return bc.difficulty
}

// SetBlockData overwrites the payload of a sealed block in place,
// without re-mining and without any validity gate. This deliberately
// breaks the sealed-hash invariant: it is the capability handed to the
// front-end to simulate tampering, and Validate is how the damage is
// found. It is not part of the chain-growing API.
func (bc *Blockchain) SetBlockData(index int, data string) error {
	bc.appendMu.Lock()
	defer bc.appendMu.Unlock()
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if index < 0 || index >= len(bc.blocks) {
		return fmt.Errorf("index %d out of range", index)
	}
	bc.blocks[index].Data = data
	return nil
}

// Validate sweeps the chain from block 1 upward and reports the first
// corruption found. For each block the recomputed-hash check runs
// before the predecessor-link check, so corruption is attributed to its
// most specific cause. Validate never fails: an empty chain is trivially
// valid, and a corrupt chain yields a verdict rather than an error.
func (bc *Blockchain) Validate() Verdict {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if current.ComputeHash() != current.Hash {
			// The predecessor reference is itself a hashed field, so an
			// overwritten link also shows up as a hash mismatch. If the
			// block's fields hash back to the stored seal once the live
			// predecessor hash is substituted, only the link was touched.
			relinked := *current
			relinked.PrevHash = previous.Hash
			if relinked.ComputeHash() == current.Hash {
				return Verdict{Valid: false, Index: i, Reason: BrokenLink}
			}
			return Verdict{Valid: false, Index: i, Reason: TamperedData}
		}
		// A block re-sealed without redoing the work is still tampered.
		if !digest.ZeroPrefix(current.Hash, bc.difficulty) {
			return Verdict{Valid: false, Index: i, Reason: TamperedData}
		}
		if current.PrevHash != previous.Hash {
			return Verdict{Valid: false, Index: i, Reason: BrokenLink}
		}
	}

	return Verdict{Valid: true}
}
