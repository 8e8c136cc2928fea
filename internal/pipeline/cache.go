package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/alnah/go-genkan/internal/fileutil"
)

// Cache is an optional content-addressed store for processed remote assets,
// shared across builds. Entries are keyed by request identity
// (source|role|size), so a changed config key regenerates rather than
// invalidates. A nil *Cache disables caching and is safe to use.
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at dir. The directory is created on
// first write.
func NewCache(dir string) *Cache {
	if dir == "" {
		return nil
	}
	return &Cache{dir: dir}
}

// cacheEntry is the JSON envelope persisted per key.
type cacheEntry struct {
	Kind  AssetKind `json:"kind"`
	Value string    `json:"value"`
}

// Get returns the cached asset for key. Any unreadable, unparsable, or
// incomplete entry is a miss; callers regenerate and overwrite it.
func (c *Cache) Get(key string) (Asset, bool) {
	if c == nil {
		return Asset{}, false
	}
	data, err := os.ReadFile(c.entryPath(key)) // #nosec G304 -- path is a hash under the cache dir
	if err != nil {
		return Asset{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Asset{}, false
	}
	if entry.Kind == "" || entry.Value == "" {
		return Asset{}, false
	}
	return Asset{Kind: entry.Kind, Value: entry.Value}, true
}

// Put persists the asset for key, atomically (temp file + rename), so a
// crashed build never leaves a partial entry. Last writer wins.
func (c *Cache) Put(key string, asset Asset) error {
	if c == nil {
		return nil
	}
	if err := fileutil.EnsureDir(c.dir); err != nil {
		return err
	}
	data, err := json.Marshal(cacheEntry{Kind: asset.Kind, Value: asset.Value})
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(c.entryPath(key), data, fileutil.FilePerm)
}

func (c *Cache) entryPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}
