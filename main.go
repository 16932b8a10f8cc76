// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Entropy-Collapse-Simulator analyzes a linear-elastic frame under
// incrementally increasing load, removing overstressed members one at
// a time, and watches the Shannon entropy of the strain-energy
// distribution for the signature of imminent collapse.
package main

import (
	"log/slog"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lmittmann/tint"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/ent"
	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	scenario := io.ArgToString(0, "beam2d")
	method := io.ArgToString(1, "zscore")
	steps := io.ArgToInt(2, 100)
	loadStep := io.ArgToFloat(3, 0.05)
	debug := io.ArgToBool(4, false)

	// message
	io.PfWhite("\nEntropy-Based Progressive Collapse Simulator\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"scenario name", "scenario", scenario,
		"collapse detection method", "method", method,
		"maximum number of steps", "steps", steps,
		"load factor increment per step", "loadStep", loadStep,
		"log step records", "debug", debug,
	))

	// logger
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	// frame and configuration
	frame, err := inp.GetFrame(scenario)
	if err != nil {
		chk.Panic("cannot build frame:\n%v", err)
	}
	cfg := sim.DefConfig()
	cfg.Method = method
	cfg.MaxSteps = steps
	cfg.LoadStep = loadStep
	cfg.Logger = logger

	// run simulation
	res, err := sim.Run(frame, cfg)
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}

	// report
	io.Pf("\nframe: %s\n\n", res.FrameName)
	io.Pf("%6s%10s%12s%12s%10s%10s%10s\n", "step", "load", "S", "dS/dt", "S/Smax", "Gini", "failed")
	for _, r := range res.Records {
		failed := ""
		for _, id := range r.Failed {
			failed = io.Sf("%d", id)
		}
		io.Pf("%6d%10.3f%12.5f%12.5f%10.4f%10.4f%10s\n",
			r.Step, r.LoadFactor, r.S, r.DSdt, r.Norm, r.Gini, failed)
	}
	io.Pf("\nfailure sequence:\n")
	for _, ev := range res.Failures {
		io.Pf("  step %3d: member %3d (stress ratio %.3f at load factor %.3f)\n",
			ev.Step, ev.MemberId, ev.Ratio, ev.LoadFactor)
	}

	// where the energy localized at the end of the run
	if len(res.Records) > 0 {
		last := res.Records[len(res.Records)-1]
		var ids []int
		var energies []float64
		for _, st := range last.States {
			if !st.Failed {
				ids = append(ids, st.MemberId)
				energies = append(energies, st.Energy)
			}
		}
		io.Pf("\nmost loaded members at last step:\n")
		for _, k := range ent.TopMembers(energies, 3) {
			io.Pf("  member %3d: %.1f J\n", ids[k], energies[k])
		}
	}
	out := res.Outcome
	if out.Collapsed {
		switch out.Cause {
		case sim.CauseSingular:
			io.PfRed("\nSTRUCTURE COLLAPSED at step %d (singular stiffness, load factor %.3f, %d members left)\n",
				out.Step, out.LoadFactor, len(out.ActiveIds))
		case sim.CauseEntropy:
			io.PfRed("\ncollapse detected at step %d (%s method)\n", out.Step, cfg.Method)
		}
	} else {
		io.PfGreen("\ncompleted without collapse after %d steps (load factor %.3f)\n",
			out.Step+1, out.LoadFactor)
	}
}
