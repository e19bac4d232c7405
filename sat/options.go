package sat

// Options bundles the solver's tunables. There is no config-file or
// environment-variable layer: callers construct an Options value directly,
// the same way the reference implementation this engine follows wires
// solver.Options.
type Options struct {
	// VarDecay is the per-conflict decay factor applied to the VSIDS
	// activity bump, in (0, 1].
	VarDecay float64
	// PhaseSaving re-applies a variable's last assigned polarity as its
	// default decision phase.
	PhaseSaving bool

	// RestartFirst is the conflict budget of the first restart cycle.
	RestartFirst int
	// RestartGrowth multiplies the conflict budget after each restart.
	RestartGrowth float64
}

// DefaultOptions mirrors the tunables used by the reference MiniSat-style
// implementation this engine follows.
var DefaultOptions = Options{
	VarDecay:      0.95,
	PhaseSaving:   true,
	RestartFirst:  100,
	RestartGrowth: 2.0,
}

// Stats tracks running search statistics. AvgConflictsPerRestart is tracked
// with an exponential moving average, the same smoothing helper the
// reference implementation uses for its own search statistics.
type Stats struct {
	Decisions  int
	Conflicts  int
	Propagations int
	Restarts   int

	AvgConflictsPerRestart EMA

	conflictsThisRestart int
}
