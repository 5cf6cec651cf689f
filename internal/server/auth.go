package server

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"usagebar/internal/logging"
)

// publicKeyHandler accepts keys listed in the configured authorized_keys file
func (s *Server) publicKeyHandler(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := keyFingerprint(key)
	user := ctx.User()

	authorized, err := isKeyAuthorized(key, s.authorizedKeysPath)
	if err != nil {
		logging.Logger.Error("Failed to read authorized_keys",
			"error", err,
			"path", s.authorizedKeysPath,
			"user", user)
		return false
	}

	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}

	return authorized
}

// isKeyAuthorized checks if the client's public key is in authorized_keys
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) (bool, error) {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	want := clientKey.Marshal()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Skipping unparsable authorized_keys line", "error", err)
			continue
		}

		if bytes.Equal(want, authorizedKey.Marshal()) {
			return true, nil
		}
	}

	return false, scanner.Err()
}

// keyFingerprint returns the OpenSSH style SHA256 fingerprint of key
func keyFingerprint(key ssh.PublicKey) string {
	sum := sha256.Sum256(key.Marshal())
	return "SHA256:" + base64.RawStdEncoding.EncodeToString(sum[:])
}
