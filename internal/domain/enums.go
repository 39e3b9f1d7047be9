package domain

import "strings"

// SolverKind selects the solving backend.
type SolverKind int

const (
	SolverEngine    SolverKind = iota // constraint propagation + DFS
	SolverBacktrack                   // plain backtracking, no propagation
	SolverParallel                    // propagation engine, branches fanned out
)

func (k SolverKind) String() string {
	switch k {
	case SolverBacktrack:
		return "backtrack"
	case SolverParallel:
		return "parallel"
	default:
		return "engine"
	}
}

// ParseSolverKind maps a config/flag value to a SolverKind, defaulting to the
// propagation engine.
func ParseSolverKind(s string) SolverKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backtrack", "backtracking":
		return SolverBacktrack
	case "parallel":
		return SolverParallel
	default:
		return SolverEngine
	}
}
