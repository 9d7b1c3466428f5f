package segcache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/segment"
)

// Cache is a durable, on-disk index of segment.SegmentEntry results. Safe
// for concurrent use by multiple scheduler workers.
type Cache struct {
	mu      sync.RWMutex
	rootDir string
	index   map[string]segment.SegmentEntry
}

// Open opens (creating if absent) the cache rooted at dir: it discards any
// leftover "working_*" temporary files from a prior crashed run, then loads
// every finalized Paths_*/PathData_* pair found in dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("segcache: Open(%s): %w", dir, ErrCacheIO)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("segcache: Open(%s): %w", dir, ErrCacheIO)
	}

	c := &Cache{rootDir: dir, index: make(map[string]segment.SegmentEntry)}

	finalizedPathFiles := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "working_"):
			_ = os.Remove(filepath.Join(dir, name))
		case strings.HasPrefix(name, "Paths_") && strings.HasSuffix(name, ".txt"):
			finalizedPathFiles = append(finalizedPathFiles, name)
		}
	}

	for _, name := range finalizedPathFiles {
		encodedKey := strings.TrimSuffix(strings.TrimPrefix(name, "Paths_"), ".txt")
		key, err := decodeKey(encodedKey)
		if err != nil {
			continue
		}
		entry, err := c.readEntry(key)
		if err != nil {
			return nil, err
		}
		c.index[encodedKey] = entry
	}

	return c, nil
}

// Get returns the cached entry for key, if present.
func (c *Cache) Get(key segment.SegmentKey) (segment.SegmentEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.index[encodeKey(key)]

	return entry, ok
}

// Put durably writes entry's artifacts via write-temp-then-rename and
// updates the in-memory index. Returns ErrCacheIO on any I/O failure; the
// caller (the scheduler) owns the retry-once policy.
func (c *Cache) Put(entry segment.SegmentEntry) error {
	encodedKey := encodeKey(entry.Key)

	if err := c.writeFinal(encodedKey, "Paths_", renderPathsFile(entry)); err != nil {
		return err
	}
	if err := c.writeFinal(encodedKey, "PathData_", renderPathDataFile(entry)); err != nil {
		return err
	}

	c.mu.Lock()
	c.index[encodedKey] = entry
	c.mu.Unlock()

	return nil
}

// writeFinal writes body to a "working_<prefix><key>_*.txt" temp file,
// syncs it, then atomically renames it to "<prefix><key>.txt".
func (c *Cache) writeFinal(encodedKey, prefix, body string) error {
	final := filepath.Join(c.rootDir, prefix+encodedKey+".txt")

	tmp, err := os.CreateTemp(c.rootDir, "working_"+prefix+encodedKey+"_*.txt")
	if err != nil {
		return fmt.Errorf("segcache: writeFinal(%s): %w", final, ErrCacheIO)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("segcache: writeFinal(%s): %w", final, ErrCacheIO)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("segcache: writeFinal(%s): %w", final, ErrCacheIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("segcache: writeFinal(%s): %w", final, ErrCacheIO)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("segcache: writeFinal(%s): %w", final, ErrCacheIO)
	}

	return nil
}

// readEntry parses a finalized Paths_*/PathData_* pair for key.
func (c *Cache) readEntry(key segment.SegmentKey) (segment.SegmentEntry, error) {
	encodedKey := encodeKey(key)

	pathLines, err := readLines(filepath.Join(c.rootDir, "Paths_"+encodedKey+".txt"))
	if err != nil {
		return segment.SegmentEntry{}, err
	}
	dataLines, err := readLines(filepath.Join(c.rootDir, "PathData_"+encodedKey+".txt"))
	if err != nil {
		return segment.SegmentEntry{}, err
	}
	if len(pathLines) != len(dataLines) {
		return segment.SegmentEntry{}, fmt.Errorf("segcache: readEntry(%s): %w", encodedKey, ErrCorruptEntry)
	}

	paths := make([]segment.PathResult, 0, len(pathLines))
	for i, line := range pathLines {
		meta, err := parsePathDataLine(dataLines[i])
		if err != nil {
			return segment.SegmentEntry{}, fmt.Errorf("segcache: readEntry(%s): %w", encodedKey, ErrCorruptEntry)
		}
		paths = append(paths, segment.PathResult{NodeIDs: strings.Split(line, "-"), Metadata: meta})
	}

	return segment.SegmentEntry{Key: key, Paths: paths}, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("segcache: readLines(%s): %w", path, ErrCacheIO)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("segcache: readLines(%s): %w", path, ErrCacheIO)
	}

	return lines, nil
}

func renderPathsFile(entry segment.SegmentEntry) string {
	var b strings.Builder
	for _, p := range entry.Paths {
		b.WriteString(p.Render())
		b.WriteByte('\n')
	}

	return b.String()
}

func renderPathDataFile(entry segment.SegmentEntry) string {
	var b strings.Builder
	for _, p := range entry.Paths {
		fields := make([]string, 0, 3+catalog.ToolCount)
		fields = append(fields,
			strconv.FormatInt(p.Metadata.TotalTimeS, 10),
			strconv.FormatInt(p.Metadata.TotalConsumableLb, 10),
			strconv.FormatInt(p.Metadata.TotalWeightLb, 10),
		)
		for _, w := range p.Metadata.ToolWeights {
			fields = append(fields, strconv.FormatInt(w, 10))
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

func parsePathDataLine(line string) (segment.PathMetadata, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3+catalog.ToolCount {
		return segment.PathMetadata{}, ErrCorruptEntry
	}

	nums := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return segment.PathMetadata{}, ErrCorruptEntry
		}
		nums[i] = v
	}

	var meta segment.PathMetadata
	meta.TotalTimeS = nums[0]
	meta.TotalConsumableLb = nums[1]
	meta.TotalWeightLb = nums[2]
	for i := 0; i < catalog.ToolCount; i++ {
		meta.ToolWeights[i] = nums[3+i]
	}

	return meta, nil
}

// encodeKey renders a SegmentKey as the filesystem-safe token used in
// artifact filenames.
func encodeKey(key segment.SegmentKey) string {
	return key.From + "__" + key.To
}

func decodeKey(encoded string) (segment.SegmentKey, error) {
	parts := strings.SplitN(encoded, "__", 2)
	if len(parts) != 2 {
		return segment.SegmentKey{}, fmt.Errorf("segcache: decodeKey(%s): %w", encoded, ErrCorruptEntry)
	}

	return segment.SegmentKey{From: parts[0], To: parts[1]}, nil
}

// Keys returns every key currently in the index, sorted for determinism.
func (c *Cache) Keys() []segment.SegmentKey {
	c.mu.RLock()
	defer c.mu.RUnlock()

	encodedKeys := make([]string, 0, len(c.index))
	for k := range c.index {
		encodedKeys = append(encodedKeys, k)
	}
	sort.Strings(encodedKeys)

	keys := make([]segment.SegmentKey, 0, len(encodedKeys))
	for _, ek := range encodedKeys {
		keys = append(keys, c.index[ek].Key)
	}

	return keys
}
