package plangen

import (
	"fmt"

	"github.com/freeeve/uci"
)

const verifyDepth = 10

// SetupEngine starts a UCI engine for position cross-checks.
func SetupEngine(path string, arg ...string) (*uci.Engine, error) {
	e, err := uci.NewEngine(path, arg...)
	if err != nil {
		return nil, err
	}

	err = e.SetOptions(uci.Options{
		MultiPV: verifyDepth,
		Hash:    128,
		Ponder:  false,
		OwnBook: true,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// VerifyForcedMate asks a UCI engine whether fen is a forced mate for
// white. The planner assumes every whitelisted position is winnable;
// this is the cross-check for positions coming from untrusted input.
func VerifyForcedMate(path, fen string, arg ...string) (bool, error) {
	if !SupportedPosition(fen) {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedPosition, fen)
	}

	e, err := SetupEngine(path, arg...)
	if err != nil {
		return false, err
	}
	defer e.Close()

	if err := e.SetFEN(fen); err != nil {
		return false, err
	}
	result, err := e.GoDepth(verifyDepth)
	if err != nil {
		return false, err
	}
	if len(result.Results) == 0 {
		return false, nil
	}

	best := result.Results[0]
	return best.Mate && best.Score > 0, nil
}
