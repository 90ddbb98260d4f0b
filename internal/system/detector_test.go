package system

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	release := `NAME="Alpine Linux"
ID=alpine
VERSION_ID=3.22.0
PRETTY_NAME="Alpine Linux v3.22"
HOME_URL="https://alpinelinux.org/"
`
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(release), 0o644))

	old := osReleasePath
	osReleasePath = path
	t.Cleanup(func() { osReleasePath = old })

	ctx := Detect(false)
	assert.Equal(t, runtime.GOOS, ctx.OS)
	assert.Equal(t, "alpine", ctx.Distro)
	assert.Equal(t, "3.22.0", ctx.Version)
	assert.Equal(t, "Alpine Linux v3.22", ctx.PrettyName)
	assert.Equal(t, "Alpine Linux v3.22", ctx.Fingerprint())
	assert.False(t, ctx.DryRun)
}

func TestDetectMissingFile(t *testing.T) {
	old := osReleasePath
	osReleasePath = filepath.Join(t.TempDir(), "nope")
	t.Cleanup(func() { osReleasePath = old })

	ctx := Detect(true)
	assert.Equal(t, "unknown", ctx.Distro)
	assert.True(t, ctx.DryRun)
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("components: []\n"))
	}))
	defer srv.Close()

	data, err := Fetch(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "components: []\n", string(data))
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(srv.URL)
	assert.ErrorContains(t, err, "bad status")
}

func TestFetchFileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))

	data, err := Fetch("file://" + path)
	require.NoError(t, err)
	assert.Equal(t, "components: []\n", string(data))
}
