package auth

import "sync"

// Blacklist is the process-wide revocation set, keyed by the raw token
// string. A token present here must be rejected regardless of signature
// validity or expiry. Entries are never pruned: only ever-revoked tokens
// accumulate, and the set grows without bound over the process lifetime.
type Blacklist struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewBlacklist() *Blacklist {
	return &Blacklist{tokens: make(map[string]struct{})}
}

// Add records the given tokens as revoked. Idempotent, never fails.
func (b *Blacklist) Add(tokens ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range tokens {
		b.tokens[t] = struct{}{}
	}
}

// Contains reports whether token has been revoked.
func (b *Blacklist) Contains(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.tokens[token]
	return ok
}

// Len returns the number of revoked tokens.
func (b *Blacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tokens)
}
