// Package cache persists Obsidian vault tag scans as a JSON file with a
// TTL, so repeated shw tags runs skip full vault walks.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache는 vault → 태그 스캔 결과 캐시다.
type Cache struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Entry는 하나의 vault 스캔 결과다.
type Entry struct {
	Tags        []string `json:"tags"`
	ScannedAt   string   `json:"scanned_at"`
	Fingerprint string   `json:"fingerprint"`
}

// New는 빈 캐시를 생성한다.
func New() *Cache {
	return &Cache{Version: 1, Entries: make(map[string]Entry)}
}

// Load는 캐시 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 캐시 반환 (graceful).
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Load: %w", err)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return New(), nil
	}
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	return &c, nil
}

// Lookup은 vault 경로로 캐시를 조회한다. TTL과 fingerprint가 유효해야 hit.
func (c *Cache) Lookup(vault, fingerprint string, ttlDays int) (*Entry, bool) {
	e, ok := c.Entries[vault]
	if !ok {
		return nil, false
	}
	if e.Fingerprint != fingerprint {
		return nil, false
	}
	scanned, err := time.Parse(time.RFC3339, e.ScannedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(scanned) > time.Duration(ttlDays)*24*time.Hour {
		return nil, false
	}
	return &e, true
}

// Set은 캐시 항목을 추가하거나 갱신한다.
func (c *Cache) Set(vault string, entry Entry) {
	c.Entries[vault] = entry
}

// Save는 캐시를 JSON 파일로 저장한다 (0600 권한).
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
