// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/avdva/elemath/roots"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if name := rt.Name(); name != "" && unicode.IsUpper(rune(name[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), name)
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type outputConfig struct {
	Format string
}

type elemathConfig struct {
	Bisection  roots.Bisection
	Steffensen roots.SteffensenMethod
	Heron      roots.Heron
	HeronTight roots.Heron
	Output     outputConfig
}

func defaultConfig() elemathConfig {
	return elemathConfig{
		Bisection:  roots.DefaultBisection,
		Steffensen: roots.DefaultSteffensen,
		Heron:      roots.DefaultHeron,
		HeronTight: roots.TightHeron,
		Output:     outputConfig{Format: formatSci},
	}
}

func loadConfig(file string, cfg *elemathConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the defaults, then the config file, then the flags.
func makeConfig(ctx *cli.Context) (elemathConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet(formatFlag.Name) {
		cfg.Output.Format = ctx.GlobalString(formatFlag.Name)
	}
	if err := checkFormat(cfg.Output.Format); err != nil {
		return cfg, err
	}
	if err := checkSolvers(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func checkSolvers(cfg elemathConfig) error {
	sections := []struct {
		name          string
		maxIterations int
		epsilon       float64
	}{
		{"Bisection", cfg.Bisection.MaxIterations, cfg.Bisection.Epsilon},
		{"Steffensen", cfg.Steffensen.MaxIterations, cfg.Steffensen.Epsilon},
		{"Heron", cfg.Heron.MaxIterations, cfg.Heron.Epsilon},
		{"HeronTight", cfg.HeronTight.MaxIterations, cfg.HeronTight.Epsilon},
	}
	for _, section := range sections {
		if section.maxIterations < 0 {
			return fmt.Errorf("%s.MaxIterations must not be negative, got %d", section.name, section.maxIterations)
		}
		// NaN fails the comparison too.
		if !(section.epsilon >= 0) {
			return fmt.Errorf("%s.Epsilon must not be negative, got %g", section.name, section.epsilon)
		}
	}
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
