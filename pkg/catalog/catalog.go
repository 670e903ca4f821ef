package catalog

import (
	"sort"
	"sync"
)

// Catalog is the in-memory policy index, keyed by policy number.
// Lookups are lock-free reads against an immutable snapshot; Replace swaps
// in a complete new snapshot under a short write lock.
type Catalog struct {
	mu       sync.RWMutex
	policies map[string]*Policy
}

// New creates a catalog from the given policies. Records are assumed to be
// validated by the loader; duplicate policy numbers keep the last record.
func New(policies []*Policy) *Catalog {
	c := &Catalog{}
	c.Replace(policies)
	return c
}

// Get returns the policy with the given number, or nil if unknown.
// An unknown number is a lookup miss, not an error.
func (c *Catalog) Get(policyNumber string) *Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policies[policyNumber]
}

// List returns all policies sorted by policy number.
func (c *Catalog) List() []*Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Policy, 0, len(c.policies))
	for _, p := range c.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PolicyNumber < out[j].PolicyNumber
	})
	return out
}

// Len returns the number of indexed policies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.policies)
}

// Replace atomically swaps the catalog contents for a new set of policies.
func (c *Catalog) Replace(policies []*Policy) {
	index := make(map[string]*Policy, len(policies))
	for _, p := range policies {
		index[p.PolicyNumber] = p
	}

	c.mu.Lock()
	c.policies = index
	c.mu.Unlock()
}
