package solve

import (
	"os"

	"github.com/tonniewhood/stegostrips/pkg/plangen"
)

// Service ties the compiler, the catalog and the planner invoker into
// the two solve entry points the application exposes.
type Service struct {
	Compiler *plangen.Compiler
	Invoker  *plangen.Invoker
	Catalog  *plangen.Catalog
}

// SolveFEN compiles fen into a temporary planner input file, runs the
// planner and removes the file again. Removal is deferred, so it holds
// on every path, planner failures included.
func (s *Service) SolveFEN(fen string) (plangen.Outcome, error) {
	tmp, err := os.CreateTemp("", "stegostrips-*.wff")
	if err != nil {
		return plangen.Outcome{}, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := s.Compiler.Compile(fen, path); err != nil {
		return plangen.Outcome{}, err
	}
	return s.Invoker.Invoke(path)
}

// SolvePredefined resolves selector (display name or 1-based ordinal)
// through the catalog and runs the planner on the pre-rendered input
// file bound to the entry.
func (s *Service) SolvePredefined(selector string) (plangen.CatalogEntry, plangen.Outcome, error) {
	entry, err := s.Catalog.Resolve(selector)
	if err != nil {
		return plangen.CatalogEntry{}, plangen.Outcome{}, err
	}
	outcome, err := s.Invoker.Invoke(entry.InputFile)
	return entry, outcome, err
}
