// Command thrustctl drives the thruster allocator core from the command
// line: build a canonical geometry, load a performance table, reverse-solve
// a requested wrench, saturate it against a current budget, and print the
// resulting per-thruster commands and envelope as a YAML report. It is a
// diagnostic front-end, not a control-loop participant — the allocator has
// no persistence or hot-reload of its own (see the core's non-goals).
package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
	"github.com/itohio/thrustalloc/pkg/core/thruster/alloc"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
	"github.com/itohio/thrustalloc/pkg/core/thruster/perf"
	"github.com/itohio/thrustalloc/pkg/core/thruster/saturate"
	"github.com/itohio/thrustalloc/pkg/logger"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type report struct {
	Layout          string             `yaml:"layout"`
	Commands        map[string]cmdYAML `yaml:"commands"`
	TotalCurrent    float32            `yaml:"total_current"`
	AxisMaximums    map[string]float32 `yaml:"axis_maximums"`
	GramDeterminant float32            `yaml:"gram_determinant"`
	WellConditioned bool               `yaml:"well_conditioned"`
}

type cmdYAML struct {
	PWM     float32 `yaml:"pwm"`
	Force   float32 `yaml:"force"`
	Current float32 `yaml:"current"`
}

func main() {
	app := &cli.App{
		Name:  "thrustctl",
		Usage: "allocate a requested wrench across a canonical thruster layout under a current budget",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "layout", Value: "x3d", Usage: "geometry layout: x3d or bluerov-heavy"},
			&cli.StringFlag{Name: "table", Required: true, Usage: "thruster performance CSV path"},
			&cli.Float64Flag{Name: "cap", Value: 20, Usage: "current budget, amperes"},
			&cli.Float64Flag{Name: "eps", Value: 0.01, Usage: "bisection convergence tolerance, amperes"},
			&cli.Float64Flag{Name: "fx", Usage: "requested force X, newtons"},
			&cli.Float64Flag{Name: "fy", Usage: "requested force Y, newtons"},
			&cli.Float64Flag{Name: "fz", Usage: "requested force Z, newtons"},
			&cli.Float64Flag{Name: "tx", Usage: "requested torque X, newton-meters"},
			&cli.Float64Flag{Name: "ty", Usage: "requested torque Y, newton-meters"},
			&cli.Float64Flag{Name: "tz", Usage: "requested torque Z, newton-meters"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error().Err(err).Msg("thrustctl: failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	f, err := os.Open(c.String("table"))
	if err != nil {
		return fmt.Errorf("opening performance table: %w", err)
	}
	defer f.Close()

	table, err := perf.LoadCSV(f)
	if err != nil {
		return fmt.Errorf("loading performance table: %w", err)
	}

	movement := alloc.Movement[scalar.F32]{
		Force:  vec.Vector3[scalar.F32]{scalar.F32(c.Float64("fx")), scalar.F32(c.Float64("fy")), scalar.F32(c.Float64("fz"))},
		Torque: vec.Vector3[scalar.F32]{scalar.F32(c.Float64("tx")), scalar.F32(c.Float64("ty")), scalar.F32(c.Float64("tz"))},
	}
	cap_ := float32(c.Float64("cap"))
	eps := float32(c.Float64("eps"))

	var rep report
	switch layout := c.String("layout"); layout {
	case "x3d":
		config, err := defaultX3D()
		if err != nil {
			return fmt.Errorf("building x3d geometry: %w", err)
		}
		rep, err = buildReport(config, table, movement, cap_, eps)
		if err != nil {
			return fmt.Errorf("allocating: %w", err)
		}
		rep.Layout = "x3d"
	case "bluerov-heavy":
		config, err := defaultBlueROVHeavy()
		if err != nil {
			return fmt.Errorf("building bluerov-heavy geometry: %w", err)
		}
		rep, err = buildReport(config, table, movement, cap_, eps)
		if err != nil {
			return fmt.Errorf("allocating: %w", err)
		}
		rep.Layout = "bluerov-heavy"
	default:
		return fmt.Errorf("unknown layout %q", layout)
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(rep)
}

// orderedStringer is the Id constraint thrustctl's builders satisfy:
// totally ordered (geometry.Config needs this) and printable (the YAML
// report keys its maps by it).
type orderedStringer interface {
	cmp.Ordered
	fmt.Stringer
}

func buildReport[Id orderedStringer](config *geometry.Config[Id], table *perf.Table, movement alloc.Movement[scalar.F32], cap, eps float32) (report, error) {
	forces := alloc.ReverseSolve(config, movement)
	cmds, err := alloc.ForcesToCmds(forces, config, table)
	if err != nil {
		return report{}, err
	}
	saturated, err := saturate.Iterative(cmds, config, table, cap, eps)
	if err != nil && err != saturate.ErrSaturatorNonConvergent {
		return report{}, err
	}

	rep := report{
		Commands:        make(map[string]cmdYAML, len(saturated)),
		GramDeterminant: config.GramDeterminant(),
		WellConditioned: config.WellConditioned(),
	}
	for _, c := range saturated {
		rep.Commands[c.Id.String()] = cmdYAML{
			PWM:     c.Record.PWM.Re(),
			Force:   c.Record.Force.Re(),
			Current: c.Record.Current.Re(),
		}
		rep.TotalCurrent += c.Record.Current.Re()
	}

	maxima, err := saturate.AxisMaximums[Id, scalar.F32](config, table, cap, eps)
	if err != nil {
		return report{}, err
	}
	rep.AxisMaximums = make(map[string]float32, len(maxima))
	for axis, v := range maxima {
		rep.AxisMaximums[axis.String()] = v
	}

	return rep, nil
}
