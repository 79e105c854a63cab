package platform

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touchFile creates an empty file and returns its path.
func touchFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

// makeDir creates a directory and returns its path.
func makeDir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

// discardLogger silences advisory output in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExistingFiles(t *testing.T) {
	tempDir := t.TempDir()
	jar := touchFile(t, tempDir, "a.jar")
	srcDir := makeDir(t, tempDir, "src")
	missing := filepath.Join(tempDir, "nope.jar")

	existing := ExistingFiles([]string{jar, missing, srcDir})
	assert.Equal(t, []string{jar, srcDir}, existing)
}

func TestExistingFiles_AllMissing(t *testing.T) {
	existing := ExistingFiles([]string{"/definitely/not/here.jar"})
	assert.Empty(t, existing)
	assert.NotNil(t, existing)
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		platformType string
		want         string
	}{
		{"androidJvm", "jvm"},
		{"jvm", "jvm"},
		{"js", "js"},
		{"native", "native"},
		{"common", "common"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.platformType, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformName(tt.platformType))
		})
	}
}
