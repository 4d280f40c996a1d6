package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file is no snapshot", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "user-1")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrNoSnapshot)
	})

	t.Run("Round trip keeps the durable shape", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir, "user-1")
		start := int64(1717225200000)

		snap := domain.SessionSnapshot{
			IsRunning:      true,
			StartTime:      &start,
			Type:           "running",
			ElapsedSeconds: 42,
			LastUpdated:    start + 42000,
		}
		require.NoError(t, store.Save(ctx, snap))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, snap, *got)

		raw, err := os.ReadFile(filepath.Join(dir, keyFor("user-1")+".json"))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.ElementsMatch(t, []string{"isRunning", "startTime", "type", "elapsedSeconds", "lastUpdated"}, keys(fields))
	})

	t.Run("Idle snapshot has a null start time", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "")
		require.NoError(t, store.Save(ctx, domain.SessionSnapshot{Type: "walking", LastUpdated: 1}))

		raw, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"startTime":null`)
		assert.Equal(t, "vybe_workout_session.json", filepath.Base(store.Path()))
	})

	t.Run("Garbage is reported as corrupt", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "user-1")
		require.NoError(t, os.WriteFile(store.Path(), []byte(`{"isRunning": tru`), 0o644))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
	})

	t.Run("Running without lastUpdated is corrupt", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "user-1")
		require.NoError(t, os.WriteFile(store.Path(), []byte(`{"isRunning":true,"type":"walking","elapsedSeconds":3}`), 0o644))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
	})

	t.Run("Users do not share files", func(t *testing.T) {
		dir := t.TempDir()
		factory := FileFactory(dir)

		require.NoError(t, factory("alice").Save(ctx, domain.SessionSnapshot{Type: "cycling", LastUpdated: 5}))

		_, err := factory("bob").Load(ctx)
		assert.ErrorIs(t, err, domain.ErrNoSnapshot)
	})

	t.Run("Path separators in user ids are neutralised", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir, "../escape")
		assert.Equal(t, dir, filepath.Dir(store.Path()))
	})
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestKeyFor(t *testing.T) {
	t.Run("Empty user keeps the bare key", func(t *testing.T) {
		assert.Equal(t, StorageKey, keyFor(""))
	})

	t.Run("Look-alike IDs get distinct keys", func(t *testing.T) {
		ids := []string{"alice.smith", "alice_smith", "alice smith", "alice/smith", "alice@smith", "ålice_smith"}
		seen := make(map[string]string, len(ids))
		for _, id := range ids {
			key := keyFor(id)
			if prev, ok := seen[key]; ok {
				t.Fatalf("%q and %q share key %q", prev, id, key)
			}
			seen[key] = id
		}
	})

	t.Run("Keys are safe file names", func(t *testing.T) {
		key := keyFor("../../etc/passwd")
		assert.NotContains(t, key, "/")
		assert.NotContains(t, key, ".")

		dir := t.TempDir()
		store := NewFileStore(dir, "../../etc/passwd")
		assert.Equal(t, dir, filepath.Dir(store.Path()))
	})
}
