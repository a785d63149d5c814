package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Entry describes the clips registered under one event.
type Entry struct {
	Identifiers []string   // Clip identifiers, indexed by variation
	Fast        EventGroup // Fast counterpart, empty if none
	Stationary  *bool      // Overrides the built-in stationary rule when set
}

// Registry maps events to their registered clip variations.
// It is read-only after construction and safe for concurrent readers.
// A nil *Registry behaves as an empty catalog.
type Registry struct {
	entries map[EventGroup]Entry
	digest  string
}

// NewRegistry builds a registry from entries. The entries are copied.
func NewRegistry(entries map[EventGroup]Entry) *Registry {
	r := &Registry{entries: make(map[EventGroup]Entry, len(entries))}
	for event, entry := range entries {
		ids := make([]string, len(entry.Identifiers))
		copy(ids, entry.Identifiers)
		entry.Identifiers = ids
		if entry.Stationary != nil {
			v := *entry.Stationary
			entry.Stationary = &v
		}
		r.entries[event] = entry
	}
	r.digest = r.computeDigest()
	return r
}

// VariationCount returns the number of clips registered for event.
// Unknown events report 0; they have a single implicit variation, index 0.
func (r *Registry) VariationCount(event EventGroup) int {
	if r == nil {
		return 0
	}
	return len(r.entries[event].Identifiers)
}

// Identifier returns the clip identifier registered at index for event.
func (r *Registry) Identifier(event EventGroup, index int) (string, bool) {
	if r == nil || index < 0 {
		return "", false
	}
	ids := r.entries[event].Identifiers
	if index >= len(ids) {
		return "", false
	}
	return ids[index], true
}

// FastVariation returns the designated fast counterpart of event.
func (r *Registry) FastVariation(event EventGroup) (EventGroup, bool) {
	if r == nil {
		return "", false
	}
	fast := r.entries[event].Fast
	return fast, fast != ""
}

// FastVariationAt returns the fast counterpart of event only when it has a
// clip registered at stepIndex.
func (r *Registry) FastVariationAt(event EventGroup, stepIndex int) (EventGroup, bool) {
	fast, ok := r.FastVariation(event)
	if !ok || stepIndex < 0 || stepIndex >= r.VariationCount(fast) {
		return "", false
	}
	return fast, true
}

// IsStationary reports whether clips for event play in place.
func (r *Registry) IsStationary(event EventGroup) bool {
	if r != nil {
		if s := r.entries[event].Stationary; s != nil {
			return *s
		}
	}
	return !event.translates()
}

// Events returns the registered events sorted by identifier.
func (r *Registry) Events() []EventGroup {
	if r == nil {
		return nil
	}
	out := make([]EventGroup, 0, len(r.entries))
	for event := range r.entries {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Digest is a stable hash of the registered events and clip identifiers.
// Hosts compare digests to detect catalog drift between runs.
func (r *Registry) Digest() string {
	if r == nil {
		return ""
	}
	return r.digest
}

func (r *Registry) computeDigest() string {
	var b strings.Builder
	for _, event := range r.Events() {
		entry := r.entries[event]
		b.WriteString(string(event))
		b.WriteByte('=')
		b.WriteString(strings.Join(entry.Identifiers, ","))
		b.WriteByte('>')
		b.WriteString(string(entry.Fast))
		if entry.Stationary != nil {
			fmt.Fprintf(&b, "|stationary=%t", *entry.Stationary)
		}
		b.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
