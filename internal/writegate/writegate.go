// Package writegate holds the global write switch and the whitelist of first
// keywords permitted for non-SELECT statements. Membership of the whitelist
// plus the enabled switch are the only admission criteria for writes — no
// statement body is inspected beyond its leading keyword.
package writegate

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Gate is safe for concurrent use from multiple goroutines.
type Gate struct {
	enabled atomic.Bool

	mu    sync.RWMutex
	allow map[string]struct{}
}

// New creates a Gate with the given initial switch state and whitelist.
// Keywords are normalized to lower case.
func New(enabled bool, whitelist []string) *Gate {
	g := &Gate{allow: make(map[string]struct{}, len(whitelist))}
	g.enabled.Store(enabled)
	for _, kw := range whitelist {
		g.allow[strings.ToLower(kw)] = struct{}{}
	}
	return g
}

// Classify returns the first whitespace-delimited token of the statement,
// trimmed and lower-cased. An empty statement yields an empty verb, which can
// never match the whitelist.
func Classify(statement string) string {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Enable turns the global write switch on. Returns true only if the value
// actually changed.
func (g *Gate) Enable() bool {
	return !g.enabled.Swap(true)
}

// Disable turns the global write switch off. Returns true only if the value
// actually changed.
func (g *Gate) Disable() bool {
	return g.enabled.Swap(false)
}

// Enabled reports the current state of the global write switch.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// Allowed reports whether a statement with the given verb may execute:
// the global switch must be on AND the verb must be whitelisted.
func (g *Gate) Allowed(verb string) bool {
	if !g.enabled.Load() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.allow[verb]
	return ok
}

// Add inserts a normalized keyword into the whitelist. Returns false if it
// was already present.
func (g *Gate) Add(keyword string) bool {
	kw := strings.ToLower(keyword)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.allow[kw]; ok {
		return false
	}
	g.allow[kw] = struct{}{}
	return true
}

// Remove deletes a normalized keyword from the whitelist. Returns false if it
// was absent.
func (g *Gate) Remove(keyword string) bool {
	kw := strings.ToLower(keyword)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.allow[kw]; !ok {
		return false
	}
	delete(g.allow, kw)
	return true
}

// List returns the current whitelist sorted lexicographically.
func (g *Gate) List() []string {
	g.mu.RLock()
	keywords := make([]string, 0, len(g.allow))
	for kw := range g.allow {
		keywords = append(keywords, kw)
	}
	g.mu.RUnlock()
	sort.Strings(keywords)
	return keywords
}
