// Package digest computes content digests of files.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// BlockSize is the read chunk size. Streaming in fixed blocks bounds
// memory regardless of file size; the resulting digest is identical to a
// single-shot hash of the whole file.
const BlockSize = 64 * 1024

// Sum returns the lowercase hex SHA-256 digest of the file at path.
func Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, BlockSize)); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
