package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileDigest is the identity of a firmware image as devices verify it.
type FileDigest struct {
	SHA256 string
	Size   int64
}

// DigestFile hashes a file and counts its bytes in one pass.
func DigestFile(filePath string) (*FileDigest, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return Digest(file)
}

// Digest hashes everything r yields.
func Digest(r io.Reader) (*FileDigest, error) {
	hash := sha256.New()

	size, err := io.Copy(hash, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate checksum")
	}

	return &FileDigest{SHA256: hex.EncodeToString(hash.Sum(nil)), Size: size}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
