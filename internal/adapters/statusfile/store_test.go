package statusfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usagebar/internal/domain"
)

func TestStore_ReadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "status.json"))

	_, err := store.Read()

	assert.ErrorIs(t, err, domain.ErrStatusNotFound)
}

func TestStore_ReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := NewStore(path).Read()

	assert.ErrorIs(t, err, domain.ErrStatusNotFound)
}

func TestStore_WriteThenRead(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "status.json"))
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Write(domain.StatusSnapshot{Color: "warning", Text: "★ Pro sonnet-4 → 1.5K", UpdatedAt: at}))
	// A shorter second write must not leave trailing bytes behind
	require.NoError(t, store.Write(domain.StatusSnapshot{Color: "neutral", Text: "☁", UpdatedAt: at.Add(time.Minute)}))

	snap, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "neutral", snap.Color)
	assert.Equal(t, "☁", snap.Text)
	assert.True(t, snap.UpdatedAt.Equal(at.Add(time.Minute)))
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Read()

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStatusNotFound)
}

func TestStore_ConcurrentWritersAndReaders(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "status.json"))
	require.NoError(t, store.Write(domain.StatusSnapshot{Text: "start"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Write(domain.StatusSnapshot{Text: "⚡ MAX opus-4 → 52.3K $3.87 ◔ 50.0% ⌛ 2h 30m ●"}))
		}()
		go func() {
			defer wg.Done()
			_, err := store.Read()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "status.json"))
	require.NoError(t, store.Write(domain.StatusSnapshot{Text: "x"}))

	require.NoError(t, store.Remove())
	require.NoError(t, store.Remove())

	_, err := store.Read()
	assert.ErrorIs(t, err, domain.ErrStatusNotFound)
}
