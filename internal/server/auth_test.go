package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newTestKey(t)
	other := newTestKey(t)

	path := writeAuthorizedKeys(t,
		"# laptop",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" me@laptop",
	)

	ok, err := isKeyAuthorized(allowed, path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isKeyAuthorized(other, path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	ok, err := isKeyAuthorized(newTestKey(t), filepath.Join(t.TempDir(), "missing"))

	assert.False(t, ok)
	assert.Error(t, err)
}

func TestKeyFingerprint(t *testing.T) {
	key := newTestKey(t)

	assert.Equal(t, gossh.FingerprintSHA256(key), keyFingerprint(key))
}
