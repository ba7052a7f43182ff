package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"taxscore/internal/classifier"
	"taxscore/internal/diag"
)

// Current schema version - increment when CachedResult format changes.
const resultCacheSchemaVersion uint16 = 1

// Digest identifies one (file contents, scan options) combination.
type Digest [sha256.Size]byte

// ResultCache stores finished scan results on disk so re-running over an
// unchanged sample set skips the parse entirely. Keyed by content digest,
// not by path: a renamed file still hits, a rewritten one misses.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult is the serialized subset of a ScanResult. Per-record
// diagnostics are deliberately not cached: they describe one concrete
// parse, and a cache hit means no parse happened.
type CachedResult struct {
	Schema    uint16
	Report    string
	Truncated bool
	Stats     classifier.SampleStats
	Counts    map[classifier.TaxID]int
	Scores    map[classifier.TaxID]float64
}

// OpenResultCache initializes and returns a disk cache at the standard
// location.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

func (c *ResultCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "results", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache atomically.
func (c *ResultCache) Put(key Digest, payload *CachedResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Returns
// false without error when the key is absent or the schema is stale.
func (c *ResultCache) Get(key Digest, out *CachedResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != resultCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// ScanDigest hashes a file's contents together with the scan options
// that shape its result.
func ScanDigest(path string, opts classifier.Options) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Digest{}, err
	}
	fmt.Fprintf(h, "\x00%s", opts.Scoring)
	var buf [8]byte
	minScore := math.NaN()
	if opts.MinScoreSet {
		minScore = opts.MinScore
	}
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(minScore))
	h.Write(buf[:])

	var key Digest
	copy(key[:], h.Sum(nil))
	return key, nil
}

// Wrap decorates a ScanFunc with cache lookups. Cache failures are never
// fatal: on any error the inner scan runs as if there were no cache.
func (c *ResultCache) Wrap(opts classifier.Options, scan ScanFunc) ScanFunc {
	if c == nil {
		return scan
	}
	return func(path string) (*classifier.ScanResult, error) {
		key, err := ScanDigest(path, opts)
		if err != nil {
			return scan(path)
		}
		var cached CachedResult
		if ok, err := c.Get(key, &cached); err == nil && ok {
			return &classifier.ScanResult{
				Report:    cached.Report,
				Stats:     cached.Stats,
				Counts:    cached.Counts,
				Scores:    cached.Scores,
				Diags:     diag.NewBag(1),
				Truncated: cached.Truncated,
			}, nil
		}
		res, err := scan(path)
		if err != nil {
			return nil, err
		}
		payload := CachedResult{
			Schema:    resultCacheSchemaVersion,
			Report:    res.Report,
			Truncated: res.Truncated,
			Stats:     res.Stats,
			Counts:    res.Counts,
			Scores:    res.Scores,
		}
		// A failed write only costs the next run a re-parse.
		_ = c.Put(key, &payload)
		return res, nil
	}
}
