// Package privacy implements the anonymized query log.
//
// Queries are encrypted with a random per-process key that is never
// persisted, so log entries cannot be read back after the process exits.
// Logging is best-effort: failures are logged and never surfaced to the
// search path.
package privacy

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/chacha20poly1305"
)

// QueryLog appends encrypted queries to an append-only file.
type QueryLog struct {
	mu     sync.Mutex
	path   string
	aead   cipher.AEAD
	logger *zap.Logger
}

// NewQueryLog creates a query log writing to path, keyed with a fresh
// random key.
func NewQueryLog(path string, logger *zap.Logger) (*QueryLog, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate query log key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create query log cipher: %w", err)
	}

	return &QueryLog{path: path, aead: aead, logger: logger}, nil
}

// Record encrypts and appends one query. Empty queries are skipped.
func (l *QueryLog) Record(query string) {
	if query == "" {
		return
	}

	nonce := make([]byte, l.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		l.logger.Warn("query log nonce generation failed", zap.Error(err))
		return
	}

	sealed := l.aead.Seal(nonce, nonce, []byte(query), nil)
	line := base64.StdEncoding.EncodeToString(sealed) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(filepath.Clean(l.path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		l.logger.Warn("query log open failed", zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		l.logger.Warn("query log write failed", zap.Error(err))
	}
}
