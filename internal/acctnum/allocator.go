// Package acctnum issues unique 5-digit account numbers.
package acctnum

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// space is the size of the identifier space: numbers 0 through 99999,
	// rendered as zero-padded 5-digit strings.
	space = 100000

	// maxAttempts bounds the collision-retry loop so that a nearly
	// exhausted space fails instead of spinning forever.
	maxAttempts = 1000
)

// ErrExhausted is returned when no unique number could be found within the
// attempt ceiling. This is the one unrecoverable failure in account
// creation.
var ErrExhausted = errors.New("account number space exhausted")

// Allocator draws random account numbers and tracks every number it has
// issued. Issued numbers are never released or reused. Collisions are
// accepted by design and retried; they only become likely as the space
// fills up.
//
// An Allocator is not safe for concurrent use; the ledger serializes
// access to it.
type Allocator struct {
	rng    *rand.Rand
	issued map[string]struct{}
}

// New creates an Allocator. A zero seed derives one from the clock;
// any other value gives a deterministic draw sequence for tests.
func New(seed int64) *Allocator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Allocator{
		rng:    rand.New(rand.NewSource(seed)),
		issued: make(map[string]struct{}),
	}
}

// Allocate returns a unique 5-digit account number, or ErrExhausted if no
// unused number was found within the attempt ceiling.
func (a *Allocator) Allocate() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		n := fmt.Sprintf("%05d", a.rng.Intn(space))
		if _, taken := a.issued[n]; taken {
			continue
		}
		a.issued[n] = struct{}{}
		return n, nil
	}
	return "", ErrExhausted
}

// Reserve marks a number as issued without drawing it. It reports whether
// the number was previously unissued.
func (a *Allocator) Reserve(number string) bool {
	if _, taken := a.issued[number]; taken {
		return false
	}
	a.issued[number] = struct{}{}
	return true
}

// Issued returns how many numbers have been issued so far.
func (a *Allocator) Issued() int {
	return len(a.issued)
}
