// Package main is a small host for the kinematics engine: it builds an arm
// from a model file or inline link lengths, applies the joint values given
// on the command line, and prints the resulting frame positions.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"github.com/armsim/armkin/kinematics"
	"github.com/armsim/armkin/utils"
)

var logger = golog.NewDevelopmentLogger("armkin")

func main() {
	app := &cli.App{
		Name:  "armkin",
		Usage: "compute forward kinematics for a serial-link arm",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "model",
				Usage: "load the arm from a model JSON `FILE`",
			},
			&cli.Float64SliceFlag{
				Name:  "links",
				Usage: "build a planar arm with the given link lengths",
			},
			&cli.BoolFlag{
				Name:  "degrees",
				Usage: "interpret joint values as degrees instead of radians",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the position list as JSON",
			},
		},
		ArgsUsage: "joint values, one per degree of freedom",
		Action:    runFK,
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func buildArm(c *cli.Context) (*kinematics.Arm, error) {
	modelFile := c.String("model")
	links := c.Float64Slice("links")
	switch {
	case modelFile != "" && len(links) > 0:
		return nil, cli.Exit("--model and --links are mutually exclusive", 1)
	case modelFile != "":
		return kinematics.ParseModelJSONFile(modelFile, "")
	case len(links) > 0:
		return kinematics.NewSimpleArm("planar", links), nil
	default:
		return nil, cli.Exit("one of --model or --links is required", 1)
	}
}

func runFK(c *cli.Context) error {
	arm, err := buildArm(c)
	if err != nil {
		return err
	}

	values := make([]float64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("joint value %q is not a number", arg)
		}
		if c.Bool("degrees") {
			// the engine boundary is radians; conversion is this host's job
			v = utils.DegToRad(v)
		}
		values = append(values, v)
	}
	if len(values) > 0 {
		if err := arm.SetJointValues(values); err != nil {
			return err
		}
	}

	positions := kinematics.ForwardKinematics(arm)
	if c.Bool("json") {
		out, err := json.MarshalIndent(positions, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
		return nil
	}
	for _, p := range positions {
		label := "joint"
		switch p.Index {
		case 0:
			label = "base"
		case arm.DoF():
			label = "end-effector"
		}
		logger.Infof("%-12s %d: (%.4f, %.4f, %.4f)", label, p.Index, p.Position.X, p.Position.Y, p.Position.Z)
	}
	return nil
}
