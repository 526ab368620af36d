package cache

import (
	"sync"
	"time"
)

// Cache is an ephemeral key-value store with per-entry expiry. The
// registration flow keys verification codes by account email; entries are
// never persisted and are lost on restart.
type Cache interface {
	// Set stores value under key for the given TTL. The last Set wins.
	Set(key, value string, ttl time.Duration) bool
	// Get returns the value for key, or false when absent or expired.
	Get(key string) (string, bool)
	// Clear removes every entry.
	Clear()
}

type entry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process Cache safe for concurrent use. Expired entries are
// treated as absent on read and swept periodically in the background.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemory creates an empty in-memory cache and starts its sweep loop.
func NewMemory() *Memory {
	m := &Memory{entries: make(map[string]entry)}
	go m.sweep()
	return m
}

func (m *Memory) Set(key, value string, ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	return true
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}

// sweep removes expired entries every minute so abandoned keys don't
// accumulate between reads.
func (m *Memory) sweep() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		m.mu.Lock()
		for k, e := range m.entries {
			if now.After(e.expiresAt) {
				delete(m.entries, k)
			}
		}
		m.mu.Unlock()
	}
}
