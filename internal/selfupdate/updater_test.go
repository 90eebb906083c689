package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin is universal", "darwin", "amd64", "tinker_Darwin_all.tar.gz", false},
		{"darwin arm64 too", "darwin", "arm64", "tinker_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "tinker_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "tinker_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "tinker_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "tinker_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "tinker_Windows_arm64.zip", false},
		{"freebsd unsupported", "freebsd", "amd64", "", true},
		{"mips unsupported", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  tinker_Darwin_all.tar.gz\n" +
		"badline\n" +
		"too  many  fields\n" +
		"def456  tinker_Linux_x86_64.tar.gz\n")

	t.Run("listed asset", func(t *testing.T) {
		got, err := checksumFor(manifest, "tinker_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, "def456", got)
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := checksumFor(manifest, "tinker_Windows_x86_64.zip")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})

	t.Run("empty manifest", func(t *testing.T) {
		_, err := checksumFor(nil, "tinker_Darwin_all.tar.gz")
		require.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	data := []byte("sparky says hi")
	sum := sha256.Sum256(data)

	assert.NoError(t, verify(data, hex.EncodeToString(sum[:])))

	err := verify(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpack(t *testing.T) {
	binary := []byte("#!/bin/sh\necho tinker")

	t.Run("tarball", func(t *testing.T) {
		archive := tarGz(t, "tinker", binary)
		got, err := unpack(archive, "tinker_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("nested path in tarball", func(t *testing.T) {
		archive := tarGz(t, "dist/tinker", binary)
		got, err := unpack(archive, "tinker_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary missing", func(t *testing.T) {
		archive := tarGz(t, "README.md", []byte("docs"))
		_, err := unpack(archive, "tinker_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstallKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tinker")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	fresh := []byte("fresh-binary")
	require.NoError(t, install(fresh, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub API plus release downloads for one
// tagged asset.
func releaseServer(t *testing.T, tag, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tinkerlab/tinkeralpha/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	downloads := fmt.Sprintf("/tinkerlab/tinkeralpha/releases/download/%s/", tag)
	if archive != nil {
		mux.HandleFunc(downloads+asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		})
	}
	if checksums != nil {
		mux.HandleFunc(downloads+"checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(checksums)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binary := []byte("new-tinker-binary")
	archive := tarGz(t, "tinker", binary)
	sum := sha256.Sum256(archive)

	// Update requests the asset for the platform running the suite, so
	// the fake server has to serve that name. The fixture is a tarball;
	// zip platforms skip.
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	if runtime.GOOS == "windows" {
		t.Skip("fixture archive is a tarball")
	}
	checksums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset))

	t.Run("full round trip", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "tinker")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", asset, archive, checksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var steps []string
		err := checker.Update(context.Background(), "v1.0.0", func(step, _ string) {
			steps = append(steps, step)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "install", "done"}, steps)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), "(devel)", func(string, string) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", asset, nil, nil)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", func(string, string) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("tampered archive", func(t *testing.T) {
		wrong := []byte(fmt.Sprintf("%064d  %s\n", 0, asset))
		server := releaseServer(t, "v2.0.0", asset, archive, wrong)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", func(string, string) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive missing from release", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", asset, nil, checksums)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", func(string, string) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// tarGz builds a gzipped tarball holding one executable file.
func tarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
