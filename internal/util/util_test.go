package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	digest, err := Digest(strings.NewReader("abc"))

	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest.SHA256)
	assert.Equal(t, int64(3), digest.Size)
}

func TestDigestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feeder.bin")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o600))

	digest, err := DigestFile(path)

	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest.SHA256)
	assert.Zero(t, digest.Size)

	_, err = DigestFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "typical image", bytes: 1331200, expected: "1.3 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}
