package domain

import "strings"

// Batch is an ordered set of projects keyed by a derived unique key.
// A batch is owned by the caller that loaded it; readers never mutate it,
// so independent evaluation passes may run over it concurrently.
type Batch struct {
	keys  []string
	items map[string]*Project
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{items: make(map[string]*Project)}
}

// Add inserts a project under key, preserving insertion order.
// It returns false if the key is already present; the batch is unchanged.
func (b *Batch) Add(key string, p *Project) bool {
	if _, exists := b.items[key]; exists {
		return false
	}
	b.keys = append(b.keys, key)
	b.items[key] = p
	return true
}

// Has reports whether key is present.
func (b *Batch) Has(key string) bool {
	_, ok := b.items[key]
	return ok
}

// Get returns the project stored under key, or nil.
func (b *Batch) Get(key string) *Project {
	return b.items[key]
}

// Len returns the number of projects in the batch.
func (b *Batch) Len() int { return len(b.keys) }

// Keys returns the batch keys in insertion order.
func (b *Batch) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Projects returns the projects in insertion order.
func (b *Batch) Projects() []*Project {
	out := make([]*Project, 0, len(b.keys))
	for _, k := range b.keys {
		out = append(out, b.items[k])
	}
	return out
}

// Select returns the projects stored under the given keys, skipping keys
// that are not present. Order follows the argument order.
func (b *Batch) Select(keys []string) []*Project {
	out := make([]*Project, 0, len(keys))
	for _, k := range keys {
		if p, ok := b.items[k]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Filter returns a new batch containing only projects matching the given
// region and pass/fail status. Empty region or status means "any".
// Status matching is case-insensitive against the PassFail field.
func (b *Batch) Filter(region, status string) *Batch {
	out := NewBatch()
	for _, k := range b.keys {
		p := b.items[k]
		if p == nil {
			continue
		}
		if region != "" && p.Region != region {
			continue
		}
		if status != "" && !strings.EqualFold(p.PassFail, status) {
			continue
		}
		out.Add(k, p)
	}
	return out
}

// Regions returns the distinct region values present in the batch,
// in first-seen order.
func (b *Batch) Regions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range b.keys {
		p := b.items[k]
		if p == nil || p.Region == "" || seen[p.Region] {
			continue
		}
		seen[p.Region] = true
		out = append(out, p.Region)
	}
	return out
}
