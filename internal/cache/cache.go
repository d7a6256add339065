// Package cache stores fetched pull request lists on disk so a repository is
// only walked through the API once per TTL window.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CachedEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

type Cache struct {
	cacheDir string
	ttl      time.Duration
}

func NewCache(ttl time.Duration) (*Cache, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".security-parser", "cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		cacheDir: cacheDir,
		ttl:      ttl,
	}

	_ = cache.CleanExpired()

	return cache, nil
}

// NewCacheAt is used by tests to point the cache at a temp directory.
func NewCacheAt(dir string, ttl time.Duration) *Cache {
	return &Cache{cacheDir: dir, ttl: ttl}
}

// RepoKey derives the cache key for a repository's PR list.
func RepoKey(owner, repo string) string {
	hash := sha256.Sum256([]byte(owner + "/" + repo + "/prs"))
	return hex.EncodeToString(hash[:])
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.cacheDir
}

// Entries counts the cache files currently on disk.
func (c *Cache) Entries() (int, error) {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			count++
		}
	}
	return count, nil
}

// Get retrieves a cached entry. The second return is false on miss or expiry.
func (c *Cache) Get(key string) (json.RawMessage, bool, error) {
	filePath := filepath.Join(c.cacheDir, key+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var cached CachedEntry
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	if time.Since(cached.CreatedAt) > c.ttl {
		_ = os.Remove(filePath)
		return nil, false, nil
	}

	return cached.Data, true, nil
}

// Set stores a value under the key.
func (c *Cache) Set(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize cache value: %w", err)
	}

	cached := CachedEntry{
		Key:       key,
		Data:      payload,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache entry: %w", err)
	}

	filePath := filepath.Join(c.cacheDir, key+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// CleanExpired removes entries older than the TTL.
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		filePath := filepath.Join(c.cacheDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) > c.ttl {
			_ = os.Remove(filePath)
		}
	}

	return nil
}

// Clean removes the whole cache.
func (c *Cache) Clean() error {
	return os.RemoveAll(c.cacheDir)
}
