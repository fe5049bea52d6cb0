//go:build darwin || linux

package abiclient

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

func TestGoString(t *testing.T) {
	buf := []byte("+60 12-960 2189\x00trailing")
	assert.Equal(t, "+60 12-960 2189", goString(cPtr(unsafe.Pointer(&buf[0]))))
	assert.Equal(t, "", goString(0))
}

func TestDefaultLibraryPath(t *testing.T) {
	t.Setenv(EnvLibraryPath, "/opt/lib/libdrphonenumber_rs.so")
	path, err := defaultLibraryPath()
	require.NoError(t, err)
	assert.Equal(t, "/opt/lib/libdrphonenumber_rs.so", path)

	t.Setenv(EnvLibraryPath, "")
	path, err = defaultLibraryPath()
	require.NoError(t, err)
	assert.Contains(t, path, "libdrphonenumber")
}

func TestOpenMissingLibrary(t *testing.T) {
	_, err := Open("/nonexistent/libdrphonenumber.so")
	assert.Error(t, err)
}

var (
	buildOnce sync.Once
	buildDir  string
	buildPath string
	buildErr  error
	buildSkip string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if buildDir != "" {
		_ = os.RemoveAll(buildDir)
	}
	os.Exit(code)
}

// goTool returns the go command of the toolchain running the tests.
func goTool() string {
	if p, err := exec.LookPath("go"); err == nil {
		return p
	}
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

// buildLibrary compiles ./cmd/libdrphonenumber as a c-shared library. It
// reports a skip reason when cgo or a C compiler is unavailable.
func buildLibrary() (path, skip string, err error) {
	goCmd := goTool()
	out, err := exec.Command(goCmd, "env", "CGO_ENABLED", "CC").Output()
	if err != nil {
		return "", "go toolchain unavailable: " + err.Error(), nil
	}
	env := strings.Fields(string(out))
	if len(env) < 2 || env[0] != "1" {
		return "", "cgo disabled", nil
	}
	if _, err := exec.LookPath(env[1]); err != nil {
		return "", "C compiler " + env[1] + " not found", nil
	}

	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..")

	buildDir, err = os.MkdirTemp("", "drphonenumber-lib-")
	if err != nil {
		return "", "", err
	}
	path = filepath.Join(buildDir, "libdrphonenumber.so")
	cmd := exec.Command(goCmd, "build", "-buildmode=c-shared", "-o", path, "./cmd/libdrphonenumber")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "CGO_ENABLED=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", "", &buildError{err: err, output: string(out)}
	}
	return path, "", nil
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string { return e.err.Error() + "\n" + e.output }

// openLibrary loads the library named by DRPHONENUMBER_LIB, or builds this
// repository's library once per test binary and loads that.
func openLibrary(t *testing.T) *Client {
	t.Helper()
	path := os.Getenv(EnvLibraryPath)
	if path == "" {
		if testing.Short() {
			t.Skip("skipping library build in short mode")
		}
		buildOnce.Do(func() {
			buildPath, buildSkip, buildErr = buildLibrary()
		})
		if buildSkip != "" {
			t.Skip(buildSkip)
		}
		require.NoError(t, buildErr)
		path = buildPath
	}
	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClientAgainstLibrary(t *testing.T) {
	c := openLibrary(t)

	got, err := c.Format("0129602189", "MY", phonenumber.International)
	require.NoError(t, err)
	assert.Equal(t, "+60 12-960 2189", got)

	typ, err := c.NumberType("0129602189", "my")
	require.NoError(t, err)
	assert.Equal(t, phonenumber.Mobile, typ)

	info, err := c.RegionInfo("0129602189", "MY")
	require.NoError(t, err)
	assert.Equal(t, int32(60), info.CountryCallingCode)
	assert.Equal(t, "MY", info.RegionCode)
}

func TestConformanceAgainstLibrary(t *testing.T) {
	c := openLibrary(t)
	if os.Getenv(EnvLibraryPath) == "" {
		assert.True(t, c.HasResultAPI(), "locally built library exports the result API")
	}

	for _, r := range RunConformance(c) {
		if r.Skipped {
			t.Logf("skipped %s: %s", r.Name, r.Detail)
			continue
		}
		assert.NoError(t, r.Err, r.Name)
	}
}

func TestClosedClient(t *testing.T) {
	c := openLibrary(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Format("0129602189", "MY", phonenumber.E164)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClientFreesWhatItReceives(t *testing.T) {
	c := openLibrary(t)
	before, err := c.LiveAllocations()
	if err != nil {
		t.Skipf("library does not count allocations: %v", err)
	}

	for i := 0; i < 8; i++ {
		_, err := c.Format("0129602189", "MY", phonenumber.E164)
		require.NoError(t, err)
		_, err = c.RegionInfo("0129602189", "MY")
		require.NoError(t, err)
		_, err = c.Version()
		require.NoError(t, err)
	}

	after, err := c.LiveAllocations()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
