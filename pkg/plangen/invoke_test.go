package plangen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakePlanner(t *testing.T, script string) *Invoker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return &Invoker{Path: path}
}

func TestInvokeParsesPlanRegion(t *testing.T) {
	inv := fakePlanner(t, `#!/bin/sh
echo "[DIAG] hello"
echo "===BEGIN_PLAN==="
echo "step-1"
echo "step-2"
echo "===END_PLAN==="
`)
	outcome, err := inv.Invoke("input.wff")
	require.NoError(t, err)

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, []string{"[DIAG] hello"}, outcome.Diagnostics)
	assert.Equal(t, []string{"step-1", "step-2"}, outcome.Plan)
}

func TestInvokeNonzeroExit(t *testing.T) {
	inv := fakePlanner(t, `#!/bin/sh
echo "===BEGIN_PLAN==="
echo "should never surface"
echo "boom" >&2
exit 7
`)
	outcome, err := inv.Invoke("input.wff")
	require.NoError(t, err)

	assert.False(t, outcome.Succeeded)
	assert.Empty(t, outcome.Plan)
	assert.Equal(t, []string{"boom"}, outcome.Diagnostics)
}

func TestInvokePassesInputPath(t *testing.T) {
	inv := fakePlanner(t, `#!/bin/sh
echo "===BEGIN_PLAN==="
for arg in "$@"; do echo "$arg"; done
echo "===END_PLAN==="
`)
	outcome, err := inv.Invoke("world.wff")
	require.NoError(t, err)
	assert.Equal(t, []string{"--script", "strips-solve.lisp", "world.wff"}, outcome.Plan)
}

func TestInvokeLaunchFailure(t *testing.T) {
	inv := &Invoker{Path: filepath.Join(t.TempDir(), "no-such-planner")}
	_, err := inv.Invoke("input.wff")
	assert.Error(t, err)
}

func TestParseOutputCleanRunWithoutPlan(t *testing.T) {
	outcome := parseOutput("[DIAG] searching\nnoise outside the region\n")
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, []string{"[DIAG] searching"}, outcome.Diagnostics)
	assert.Empty(t, outcome.Plan)
}

func TestParseOutputTrimsPlanLines(t *testing.T) {
	outcome := parseOutput("===BEGIN_PLAN===\n  push-king G6 G7  \n===END_PLAN===\n")
	assert.Equal(t, []string{"push-king G6 G7"}, outcome.Plan)
}

func TestParseOutputUnterminatedRegion(t *testing.T) {
	// a begin sentinel with no matching end keeps the region open to the
	// end of output; nothing collected is dropped
	outcome := parseOutput("===BEGIN_PLAN===\nstep-1\nstep-2\n")
	assert.Equal(t, []string{"step-1", "step-2"}, outcome.Plan)
}

func TestParseOutputLongPlanLines(t *testing.T) {
	// a single plan line can exceed any fixed token size; the whole
	// capture is already in memory, so nothing may be dropped after it
	long := strings.Repeat("x", 70*1024)
	outcome := parseOutput("===BEGIN_PLAN===\nstep-1\n" + long + "\nstep-2\n===END_PLAN===\n")
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, []string{"step-1", long, "step-2"}, outcome.Plan)
}

func TestParseOutputSentinelsRequireExactMatch(t *testing.T) {
	outcome := parseOutput(" ===BEGIN_PLAN===\nstep-1\n")
	assert.Empty(t, outcome.Plan)
}
