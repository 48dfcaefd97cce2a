package plangen

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Stdout protocol of the planner: diagnostic lines keep their prefix,
// plan steps live between the two sentinels. Sentinel matches are
// exact, no whitespace tolerance.
const (
	diagnosticPrefix = "[DIAG]"
	planBegin        = "===BEGIN_PLAN==="
	planEnd          = "===END_PLAN==="
)

// The planner is a batch Lisp program run through its interpreter, one
// world file per invocation. The leading arguments are part of the
// process contract and not configurable.
var plannerArgPrefix = []string{"--script", "strips-solve.lisp"}

// Outcome is the classified result of one planner run.
type Outcome struct {
	Succeeded   bool
	Diagnostics []string
	Plan        []string
}

// Invoker runs the external planner. Path points at the interpreter
// binary, the way the engine binary path is configured elsewhere.
type Invoker struct {
	Path string
}

// Invoke runs the planner against inputPath and blocks until it exits,
// capturing stdout and stderr separately. A nonzero exit is a hard
// failure: the Outcome carries the stderr lines as diagnostics and an
// empty plan. The error return covers launch failures only.
func (inv *Invoker) Invoke(inputPath string) (Outcome, error) {
	args := append(append([]string{}, plannerArgPrefix...), inputPath)
	cmd := exec.Command(inv.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{Diagnostics: splitLines(stderr.String())}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("launching planner %s: %w", inv.Path, err)
	}
	return parseOutput(stdout.String()), nil
}

// parseOutput scans a complete captured stdout. Succeeded is true by
// construction here: parse only runs after a zero exit, and an empty
// plan is a valid outcome callers must distinguish themselves. The
// split works on the whole capture, so line length is unbounded.
func parseOutput(stdout string) Outcome {
	out := Outcome{Succeeded: true}
	inPlan := false
	for _, line := range splitLines(stdout) {
		switch {
		case strings.HasPrefix(line, diagnosticPrefix):
			out.Diagnostics = append(out.Diagnostics, line)
		case line == planBegin:
			inPlan = true
		case line == planEnd:
			inPlan = false
		case inPlan:
			out.Plan = append(out.Plan, strings.TrimSpace(line))
		}
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
