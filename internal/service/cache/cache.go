package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}

// Nop is a cache that stores nothing. Used when caching is disabled.
type Nop struct{}

func (Nop) GetBytes(string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) SetBytes(string, []byte, time.Duration) error { return nil }
