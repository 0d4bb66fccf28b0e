package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"powledger/digest"
)

// ErrMiningExhausted is returned by Mine when an iteration cap was
// configured with WithMaxIterations and the search exceeded it.
var ErrMiningExhausted = errors.New("mining exhausted iteration cap")

// progressInterval is how many failed nonce attempts pass between two
// progress reports.
const progressInterval = 100

// Block is one record of the blockchain. Index, Timestamp, Data and
// PrevHash are fixed at creation; Nonce and Hash are filled in by Mine.
// A block with a non-empty Hash is sealed.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	Data      string `json:"data"`
	PrevHash  string `json:"prev_hash"`
	Nonce     uint64 `json:"nonce"`
	Hash      string `json:"hash"`
}

// NewBlock creates an unsealed block with nonce 0 and no hash.
func NewBlock(index int, timestamp int64, data, prevHash string) *Block {
	return &Block{
		Index:     index,
		Timestamp: timestamp,
		Data:      data,
		PrevHash:  prevHash,
	}
}

// ComputeHash returns the digest of the block's current field values,
// including the current nonce. It has no side effects and is idempotent
// for a fixed field snapshot.
func (b *Block) ComputeHash() string {
	record := fmt.Sprintf("%d%s%d%s%d",
		b.Index,
		b.PrevHash,
		b.Timestamp,
		b.Data,
		b.Nonce,
	)
	return digest.Sum([]byte(record))
}

// Progress is an advisory snapshot of an in-flight mining search: the
// nonce about to be tried and the last candidate hash that missed the
// target.
type Progress struct {
	Nonce uint64 `json:"nonce"`
	Hash  string `json:"hash"`
}

type miner struct {
	progress chan<- Progress
	maxIters uint64
}

// MineOption configures a single mining search.
type MineOption func(miner) miner

// WithProgress makes Mine send a Progress snapshot on ch every 100
// failed attempts. Sends never block: if the observer is not ready the
// checkpoint is dropped. Mine does not close ch.
func WithProgress(ch chan<- Progress) MineOption {
	return func(m miner) miner {
		m.progress = ch
		return m
	}
}

// WithMaxIterations caps the nonce search at n attempts; exceeding the
// cap makes Mine return ErrMiningExhausted with the block left unsealed.
// n = 0 means unbounded, the default.
func WithMaxIterations(n uint64) MineOption {
	return func(m miner) miner {
		m.maxIters = n
		return m
	}
}

// Mine searches for a nonce whose hash has difficulty leading zero hex
// digits, then seals the block with it. The context is checked once per
// iteration, so a cancelled context stops the search with the block
// unsealed. Difficulty 0 accepts the very first candidate.
func (b *Block) Mine(ctx context.Context, difficulty int, opts ...MineOption) error {
	var m miner
	for _, opt := range opts {
		m = opt(m)
	}

	var tried uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		candidate := b.ComputeHash()
		if digest.ZeroPrefix(candidate, difficulty) {
			b.Hash = candidate
			return nil
		}
		tried++
		if m.maxIters > 0 && tried >= m.maxIters {
			return ErrMiningExhausted
		}
		b.Nonce++
		if m.progress != nil && tried%progressInterval == 0 {
			select {
			case m.progress <- Progress{Nonce: b.Nonce, Hash: candidate}:
			default:
			}
		}
	}
}

// CanonicalPayload serializes a structured payload to the stable string
// form used for hashing. Two calls with equal values always produce the
// same string, so block hashes stay reproducible.
func CanonicalPayload(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cannot canonicalize payload: %w", err)
	}
	return string(data), nil
}
