// cmd/ezlink/helpers_test.go
// TEST TYPE: Test Helpers
// DEPENDENCIES: testify mock, adrg/xdg
// PURPOSE: Run the command tree in-process with an isolated environment

package ezlink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ezlink/pkg/testutil"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Start(name string, args ...string) error {
	callArgs := m.Called(name, args)
	return callArgs.Error(0)
}

// isolate gives the test its own home and XDG directories, drops any
// EZLINK_ variables and disables the log file
func isolate(t *testing.T) string {
	t.Helper()
	home := testutil.TempDir(t)

	t.Cleanup(xdg.Reload)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "EZLINK_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("EZLINK_LOGGING_FILE", "false")
	xdg.Reload()

	return home
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args, feeding stdin
func execute(t *testing.T, d deps, stdin string, args ...string) result {
	t.Helper()

	cmd := newRootCmd(d)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}
