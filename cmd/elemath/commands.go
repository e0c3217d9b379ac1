// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/constraints"
	"gopkg.in/urfave/cli.v1"

	"github.com/avdva/elemath/cplx"
	"github.com/avdva/elemath/intprobe"
	"github.com/avdva/elemath/roots"
)

var (
	reFlag = cli.Float64Flag{
		Name:  "re",
		Usage: "real part of z",
		Value: 1,
	}
	imFlag = cli.Float64Flag{
		Name:  "im",
		Usage: "imaginary part of z",
		Value: 1,
	}
	exponentFlag = cli.IntFlag{
		Name:  "n",
		Usage: "integer exponent",
		Value: -30,
	}
	typeFlag = cli.StringFlag{
		Name:  "type",
		Usage: "unsigned type: uint8, uint16, uint32, uint64, uint, uintptr or uint256",
		Value: "uint32",
	}
	allTypesFlag = cli.BoolFlag{
		Name:  "all",
		Usage: "show a table of all the unsigned types",
	}
	funcFlag = cli.StringFlag{
		Name:  "func",
		Usage: "function name: cos, cubic, log, sin, sqrt2 or tan",
	}
	leftFlag = cli.Float64Flag{
		Name:  "a",
		Usage: "first bracket endpoint",
		Value: 3,
	}
	rightFlag = cli.Float64Flag{
		Name:  "b",
		Usage: "second bracket endpoint",
		Value: 4,
	}
	startFlag = cli.Float64Flag{
		Name:  "x0",
		Usage: "initial guess",
		Value: 2,
	}
	radicandFlag = cli.Float64Flag{
		Name:  "x",
		Usage: "the number to take the square root of",
		Value: 2,
	}
	tightFlag = cli.BoolFlag{
		Name:  "tight",
		Usage: "use the double precision epsilon as tolerance",
	}
)

var (
	powerCommand = cli.Command{
		Action:      power,
		Name:        "power",
		Usage:       "Raise a complex number to an integer power",
		Flags:       []cli.Flag{reFlag, imFlag, exponentFlag},
		Category:    "COMPLEX COMMANDS",
		Description: `The power command computes z^n by repeated squaring.`,
	}
	complexCommand = cli.Command{
		Action:      complexParts,
		Name:        "complex",
		Usage:       "Show a complex number, its modulus and argument",
		Flags:       []cli.Flag{reFlag, imFlag},
		Category:    "COMPLEX COMMANDS",
		Description: `The complex command shows z, |z| and Arg(z).`,
	}
	overflowCommand = cli.Command{
		Action:   overflow,
		Name:     "overflow",
		Usage:    "Show the width and the largest value of an unsigned type",
		Flags:    []cli.Flag{typeFlag, allTypesFlag},
		Category: "INTEGER COMMANDS",
		Description: `The overflow command doubles 1 until it wraps around to 0,
then shows the bit count, the largest value and the largest value plus one.`,
	}
	bisectCommand = cli.Command{
		Action:      bisect,
		Name:        "bisect",
		Usage:       "Find a root of a function by bisection",
		Flags:       []cli.Flag{withDefault(funcFlag, "sin"), leftFlag, rightFlag},
		Category:    "ROOT COMMANDS",
		Description: `The bisect command finds a root of a function between a and b, where the function changes its sign.`,
	}
	steffensenCommand = cli.Command{
		Action:      steffensen,
		Name:        "steffensen",
		Usage:       "Find a root of a function by Steffensen's method",
		Flags:       []cli.Flag{withDefault(funcFlag, "sqrt2"), startFlag},
		Category:    "ROOT COMMANDS",
		Description: `The steffensen command finds a root of a function near x0.`,
	}
	heronCommand = cli.Command{
		Action:      heron,
		Name:        "heron",
		Usage:       "Find a square root by Heron's method",
		Flags:       []cli.Flag{radicandFlag, tightFlag},
		Category:    "ROOT COMMANDS",
		Description: `The heron command computes sqrt(x) by Heron's method.`,
	}
)

func withDefault(f cli.StringFlag, value string) cli.StringFlag {
	f.Value = value
	return f
}

func power(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	z := cplx.New(ctx.Float64(reFlag.Name), ctx.Float64(imFlag.Name))
	n := ctx.Int(exponentFlag.Name)
	glog.V(1).Infof("computing (%v)^%d", z, n)
	_, err = fmt.Fprintf(ctx.App.Writer, "z^n = %s\n", formatComplex(z.Pow(n), cfg.Output.Format))
	return err
}

func complexParts(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	z := cplx.New(ctx.Float64(reFlag.Name), ctx.Float64(imFlag.Name))
	_, err = fmt.Fprintf(ctx.App.Writer, "z = %s\n|z| = %s\nArg(z) = %s\n",
		formatComplex(z, format), formatFloat(z.Abs(), format), formatFloat(z.Arg(), format))
	return err
}

// probeLines is a probe report with the values converted to decimal strings.
type probeLines struct {
	bits            int
	max, maxPlusOne string
}

func describeProbe[T constraints.Unsigned]() probeLines {
	r := intprobe.Probe[T]()
	return probeLines{
		bits:       r.Bits,
		max:        strconv.FormatUint(uint64(r.Max), 10),
		maxPlusOne: strconv.FormatUint(uint64(r.MaxPlusOne), 10),
	}
}

func describeUint256() probeLines {
	r := intprobe.ProbeUint256()
	return probeLines{
		bits:       r.Bits,
		max:        r.Max.ToBig().String(),
		maxPlusOne: r.MaxPlusOne.ToBig().String(),
	}
}

var probes = map[string]func() probeLines{
	"uint8":   describeProbe[uint8],
	"uint16":  describeProbe[uint16],
	"uint32":  describeProbe[uint32],
	"uint64":  describeProbe[uint64],
	"uint":    describeProbe[uint],
	"uintptr": describeProbe[uintptr],
	"uint256": describeUint256,
}

// probeNames lists the keys of probes by width.
var probeNames = []string{"uint8", "uint16", "uint32", "uint64", "uint", "uintptr", "uint256"}

func overflow(ctx *cli.Context) error {
	if ctx.Bool(allTypesFlag.Name) {
		return overflowTable(ctx)
	}
	typ := ctx.String(typeFlag.Name)
	probe, found := probes[typ]
	if !found {
		return fmt.Errorf("unknown type %q, available: %s", typ, strings.Join(probeNames, ", "))
	}
	lines := probe()
	_, err := fmt.Fprintf(ctx.App.Writer, "Total Number of Bits: %d\nLargest Integer Value: %s\nLargest Value Plus One: %s\n",
		lines.bits, lines.max, lines.maxPlusOne)
	return err
}

func overflowTable(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Type", "Bits", "Max", "Max + 1"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, name := range probeNames {
		lines := probes[name]()
		table.Append([]string{name, strconv.Itoa(lines.bits), lines.max, lines.maxPlusOne})
	}
	table.Render()
	return nil
}

func bisect(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	name := ctx.String(funcFlag.Name)
	f, err := lookupFunc(name)
	if err != nil {
		return err
	}
	a, b := ctx.Float64(leftFlag.Name), ctx.Float64(rightFlag.Name)
	res, solveErr := cfg.Bisection.Solve(f, a, b)
	if _, err := fmt.Fprintf(ctx.App.Writer, "root = %s\n", formatFloat(res.Root, cfg.Output.Format)); err != nil {
		return err
	}
	if solveErr != nil {
		return fmt.Errorf("bisect %s on [%g, %g]: %w", name, a, b, solveErr)
	}
	logResult("bisection", res)
	return nil
}

func steffensen(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	name := ctx.String(funcFlag.Name)
	f, err := lookupFunc(name)
	if err != nil {
		return err
	}
	res := cfg.Steffensen.Solve(f, ctx.Float64(startFlag.Name))
	logResult("steffensen", res)
	_, err = fmt.Fprintf(ctx.App.Writer, "root = %s\n", formatFloat(res.Root, cfg.Output.Format))
	return err
}

func heron(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	method := cfg.Heron
	if ctx.Bool(tightFlag.Name) {
		method = cfg.HeronTight
	}
	x := ctx.Float64(radicandFlag.Name)
	res := method.Sqrt(x)
	logResult("heron", res)
	_, err = fmt.Fprintf(ctx.App.Writer, "sqrt(%s) = %s\n", strconv.FormatFloat(x, 'g', -1, 64), formatFloat(res.Root, cfg.Output.Format))
	return err
}

func logResult(method string, res roots.Result) {
	glog.V(1).Infof("%s: root %v after %d iterations, residual %g", method, res.Root, res.Iterations, res.Residual)
	if !res.Converged {
		glog.Warningf("%s did not converge after %d iterations, residual %g", method, res.Iterations, res.Residual)
	}
}
