package segcache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/segcache"
	"github.com/ferrovia/breachpath/segment"
)

func sampleEntry() segment.SegmentEntry {
	var tw catalog.ToolWeights
	tw[0] = 5

	return segment.SegmentEntry{
		Key: segment.SegmentKey{From: "start", To: "T1"},
		Paths: []segment.PathResult{
			{
				NodeIDs: []string{"start", "T1"},
				Metadata: segment.PathMetadata{
					TotalTimeS:        101,
					TotalConsumableLb: 10,
					TotalWeightLb:     15,
					ToolWeights:       tw,
				},
			},
		},
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := segcache.Open(dir)
	require.NoError(t, err)

	entry := sampleEntry()
	require.NoError(t, c.Put(entry))

	got, ok := c.Get(entry.Key)
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestOpen_DiscardsWorkingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "working_Paths_start__T1_123.txt"), []byte("junk"), 0o644))

	c, err := segcache.Open(dir)
	require.NoError(t, err)
	assert.Empty(t, c.Keys())

	_, err = os.Stat(filepath.Join(dir, "working_Paths_start__T1_123.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpen_LoadsFinalizedEntries(t *testing.T) {
	dir := t.TempDir()
	c1, err := segcache.Open(dir)
	require.NoError(t, err)
	require.NoError(t, c1.Put(sampleEntry()))

	c2, err := segcache.Open(dir)
	require.NoError(t, err)

	got, ok := c2.Get(segment.SegmentKey{From: "start", To: "T1"})
	require.True(t, ok)
	assert.Equal(t, sampleEntry(), got)
}

func TestSnapshotJSON_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := segcache.Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(sampleEntry()))

	snapPath := filepath.Join(dir, "snapshot.json")
	require.NoError(t, c.SnapshotJSON(snapPath))

	loaded, err := segcache.LoadSnapshotJSON(snapPath)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, sampleEntry().Key, loaded[0].Key)
	assert.Equal(t, sampleEntry().Paths[0].Metadata.TotalTimeS, loaded[0].Paths[0].Metadata.TotalTimeS)
}

func TestReadyWatcher_NotifiesOnFinalizedKey(t *testing.T) {
	dir := t.TempDir()
	c, err := segcache.Open(dir)
	require.NoError(t, err)

	ready := make(chan segment.SegmentKey, 1)
	w := segcache.NewReadyWatcher(dir,
		segcache.WithForcePoll(true),
		segcache.WithPollInterval(20*time.Millisecond),
		segcache.WithOnReady(func(k segment.SegmentKey) { ready <- k }),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go w.Run(ctx)

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, c.Put(sampleEntry()))

	select {
	case k := <-ready:
		assert.Equal(t, segment.SegmentKey{From: "start", To: "T1"}, k)
	case <-ctx.Done():
		t.Fatal("timed out waiting for ready notification")
	}
}
