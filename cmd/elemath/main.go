// Copyright 2020 Aleksandr Demakin. All rights reserved.

// elemath prints the results of the elementary numerical kernels:
// complex powers, complex number parts, unsigned integer limits and real roots.
package main

import (
	"flag"
	"os"
	"sort"
	"strconv"

	"github.com/golang/glog"
	"gopkg.in/urfave/cli.v1"
)

var (
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "number format: sci (%.16E), fixed (%.16f) or decimal (shortest exact decimal)",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log verbosity level, 1 prints solver details",
	}
	logToStderrFlag = cli.BoolFlag{
		Name:  "logtostderr",
		Usage: "log to standard error instead of files",
	}
)

var app = newApp()

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "elemath"
	app.Usage = "elementary numerical kernels"
	app.HideVersion = true
	app.Copyright = "Copyright 2020 Aleksandr Demakin"
	app.Flags = []cli.Flag{
		configFileFlag,
		formatFlag,
		verbosityFlag,
		logToStderrFlag,
	}
	app.Commands = []cli.Command{
		powerCommand,
		complexCommand,
		overflowCommand,
		bisectCommand,
		steffensenCommand,
		heronCommand,
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Before = setupLogging
	app.After = func(ctx *cli.Context) error {
		glog.Flush()
		return nil
	}
	return app
}

// setupLogging passes the logging flags to glog, which keeps its settings in the standard flag set.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalIsSet(verbosityFlag.Name) {
		if err := flag.Set("v", strconv.Itoa(ctx.GlobalInt(verbosityFlag.Name))); err != nil {
			return err
		}
	}
	if ctx.GlobalBool(logToStderrFlag.Name) {
		if err := flag.Set("logtostderr", "true"); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		glog.Exitf("%v", err)
	}
}
