// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim orchestrates progressive collapse simulation runs
package sim

import (
	"io"
	"log/slog"

	"github.com/cpmech/gosl/chk"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/ent"
	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/fem"
	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
)

// causes of a collapsed outcome
const (
	CauseSingular = "singular" // stiffness matrix lost equilibrium during solve
	CauseEntropy  = "entropy"  // statistical detector flagged the dS/dt series
)

// Config holds the parameters of one simulation run
type Config struct {
	Method      string       // collapse detection method: "zscore" or "threshold"
	Prm         ent.Params   // detector parameters
	MaxSteps    int          // maximum number of steps
	LoadStep    float64      // load factor increment per step; 0 holds the design load
	Dissipation float64      // fraction of a failed member's energy lost at failure [0,1]
	CondTol     float64      // condition number bound for the solver; 0 = default
	Logger      *slog.Logger // run logger; nil discards
}

// DefConfig returns the default run configuration
func DefConfig() Config {
	return Config{
		Method:   "zscore",
		Prm:      ent.DefParams(),
		MaxSteps: 100,
		LoadStep: 0.05,
	}
}

// check validates the configuration
func (o *Config) check() error {
	if o.MaxSteps < 1 {
		return chk.Err("MaxSteps must be at least 1. %d is invalid", o.MaxSteps)
	}
	if o.LoadStep < 0 {
		return chk.Err("LoadStep must be non-negative. %g is invalid", o.LoadStep)
	}
	if o.Dissipation < 0 || o.Dissipation > 1 {
		return chk.Err("Dissipation must be within [0,1]. %g is invalid", o.Dissipation)
	}
	return nil
}

// StepRecord is the output of one simulation step
type StepRecord struct {
	Step       int         // step index
	LoadFactor float64     // load multiplier applied
	U          []float64   // global displacement vector
	States     []fem.State // per-member energy and internal forces (post-redistribution)
	Total      float64     // total strain energy
	S          float64     // Shannon entropy of the energy shares
	DSdt       float64     // backward difference of S
	Norm       float64     // S / ln(n)
	Gini       float64     // concentration index
	Failed     []int       // ids of members failed at this step (at most one)
}

// Outcome is the terminal state of a run
type Outcome struct {
	Collapsed  bool    // collapse was flagged
	Step       int     // step of collapse, or final step when completed
	Cause      string  // CauseSingular or CauseEntropy; empty when completed
	LoadFactor float64 // load factor at termination
	ActiveIds  []int   // members active at termination
}

// Results accumulates the state of a run: step records, the failure
// log and the terminal outcome. Owned by Run while stepping, read-only
// for consumers afterwards.
type Results struct {
	FrameName  string       // name of the simulated frame
	Records    []StepRecord // one record per executed step
	Failures   []fem.Event  // ordered failure log
	Outcome    Outcome      // terminal state
	Dissipated float64      // total energy lost to configured dissipation
}

// Run executes the step loop on a checked frame: increment load,
// assemble, solve, fail, redistribute, measure, detect. It terminates
// on a singular solve (immediate collapse), on statistical detection,
// or after MaxSteps. Two runs with identical inputs produce identical
// results; there is no hidden randomness anywhere in the pipeline.
func Run(frame *inp.FrameData, cfg Config) (res *Results, err error) {

	// validate configuration before any step executes
	if err = cfg.check(); err != nil {
		return
	}
	det, err := ent.New(cfg.Method, cfg.Prm)
	if err != nil {
		return
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// domain
	dom, err := fem.NewDomain(frame)
	if err != nil {
		return
	}
	res = &Results{FrameName: frame.Name}

	// step loop
	prevS := 0.0
	lastStep := 0
	for step := 0; step < cfg.MaxSteps; step++ {
		lastStep = step
		loadFactor := 1.0 + cfg.LoadStep*float64(step)

		// equilibrium
		sol, serr := dom.Solve(step, loadFactor, cfg.CondTol, logger)
		if serr != nil {
			if ce, ok := serr.(*fem.CollapsedError); ok {
				logger.Info("structure collapsed at solve",
					"step", step, "loadFactor", ce.LoadFactor, "active", len(ce.ActiveIds))
				res.Outcome = Outcome{
					Collapsed:  true,
					Step:       step,
					Cause:      CauseSingular,
					LoadFactor: ce.LoadFactor,
					ActiveIds:  ce.ActiveIds,
				}
				return res, nil
			}
			return nil, serr
		}

		// failure evaluation and redistribution
		var failed []int
		if ev, ok := fem.EvalFailure(frame, sol, step, loadFactor); ok {
			res.Failures = append(res.Failures, ev)
			failed = append(failed, ev.MemberId)
			lost, rerr := fem.Redistribute(frame, sol, ev.MemberId, cfg.Dissipation)
			if rerr != nil {
				return nil, rerr
			}
			res.Dissipated += lost
			logger.Info("member failed",
				"member", ev.MemberId, "step", step, "ratio", ev.Ratio, "loadFactor", loadFactor)
		}

		// entropy metrics over the active members
		var energies []float64
		for i, m := range frame.Members {
			if m.Active {
				energies = append(energies, sol.States[i].Energy)
			}
		}
		m := ent.Eval(energies, prevS, step == 0)
		prevS = m.S

		// collapse detection
		det.Step(m.DSdt, step)

		// record
		res.Records = append(res.Records, StepRecord{
			Step:       step,
			LoadFactor: loadFactor,
			U:          sol.U,
			States:     sol.States,
			Total:      sol.Total,
			S:          m.S,
			DSdt:       m.DSdt,
			Norm:       m.Norm,
			Gini:       m.Gini,
			Failed:     failed,
		})
		logger.Debug("step done",
			"step", step, "loadFactor", loadFactor, "S", m.S, "dSdt", m.DSdt,
			"norm", m.Norm, "gini", m.Gini, "total", sol.Total)

		if at, ok := det.Detected(); ok {
			logger.Info("collapse detected", "step", at, "method", cfg.Method)
			res.Outcome = Outcome{
				Collapsed:  true,
				Step:       at,
				Cause:      CauseEntropy,
				LoadFactor: loadFactor,
				ActiveIds:  frame.ActiveIds(),
			}
			return res, nil
		}
	}

	// completed without collapse
	res.Outcome = Outcome{
		Step:       lastStep,
		LoadFactor: 1.0 + cfg.LoadStep*float64(lastStep),
		ActiveIds:  frame.ActiveIds(),
	}
	logger.Info("run completed without collapse", "steps", cfg.MaxSteps)
	return res, nil
}
