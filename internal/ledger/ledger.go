package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// GenesisHash is the sentinel previous-hash of the first block.
var GenesisHash = strings.Repeat("0", 64)

// ErrValidation marks malformed append input. It is the only failure
// mode of Append; callers match it with errors.Is.
var ErrValidation = errors.New("validation")

// Payload is the dispatch-lifecycle event recorded by a block. Fixed
// field order (and sorted map keys under encoding/json) keeps its
// serialization deterministic, so stored hashes stay recomputable.
type Payload struct {
	EventType string            `json:"event_type"`
	RakeID    string            `json:"rake_id"`
	Actor     string            `json:"actor"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Block is one entry of the hash chain. Hash covers the serialized
// payload concatenated with PreviousHash, binding each block to its
// predecessor.
type Block struct {
	Index        int     `json:"index"`
	Payload      Payload `json:"payload"`
	PreviousHash string  `json:"previous_hash"`
	Hash         string  `json:"hash"`
}

// VerifyResult reports the outcome of a full-chain integrity walk.
type VerifyResult struct {
	Valid             bool `json:"valid"`
	FirstInvalidIndex *int `json:"firstInvalidIndex,omitempty"`
}

// Ledger is an append-only sequence of hash-chained blocks recording
// dispatch events. Append is the only mutating operation and runs
// under a single lock: previousHash is read-then-used, and two
// concurrent appends observing the same tail would fork the chain.
// The backing slice is never exposed for external mutation.
type Ledger struct {
	mu    sync.RWMutex
	chain []Block
	now   func() time.Time
}

func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Append records a dispatch event as a new block chained to the
// current tail and returns the fully-formed block. Fails only when
// rakeID is missing.
func (l *Ledger) Append(eventType, rakeID, actor string, fields map[string]string) (Block, error) {
	if strings.TrimSpace(rakeID) == "" {
		return Block{}, fmt.Errorf("append ledger event: rake id is required: %w", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prevHash := GenesisHash
	if n := len(l.chain); n > 0 {
		prevHash = l.chain[n-1].Hash
	}

	payload := Payload{
		EventType: eventType,
		RakeID:    rakeID,
		Actor:     actor,
		Fields:    fields,
		CreatedAt: l.now().UTC(),
	}

	block := Block{
		Index:        len(l.chain),
		Payload:      payload,
		PreviousHash: prevHash,
		Hash:         blockHash(payload, prevHash),
	}

	l.chain = append(l.chain, block)
	return block, nil
}

// Verify walks the chain from index 0, recomputing every block's hash
// from its stored payload and previous-hash and checking each link to
// the true predecessor. It reports the first index where either check
// fails; a mismatch signals tampering and is never repaired.
func (l *Ledger) Verify() VerifyResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, b := range l.chain {
		wantPrev := GenesisHash
		if i > 0 {
			wantPrev = l.chain[i-1].Hash
		}

		if b.PreviousHash != wantPrev || b.Hash != blockHash(b.Payload, b.PreviousHash) {
			idx := i
			return VerifyResult{Valid: false, FirstInvalidIndex: &idx}
		}
	}

	return VerifyResult{Valid: true}
}

// List returns a snapshot copy of the chain as of the start of the
// read.
func (l *Ledger) List() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Block, len(l.chain))
	copy(out, l.chain)
	return out
}

// Len returns the current chain length.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.chain)
}

// TipHash returns the hash of the most recent block, or the genesis
// sentinel for an empty chain.
func (l *Ledger) TipHash() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n := len(l.chain); n > 0 {
		return l.chain[n-1].Hash
	}
	return GenesisHash
}

func blockHash(p Payload, prevHash string) string {
	// Payload marshaling cannot fail: fixed struct of strings, a
	// string map, and a time.Time.
	raw, _ := json.Marshal(p)
	sum := sha256.Sum256(append(raw, prevHash...))
	return hex.EncodeToString(sum[:])
}
