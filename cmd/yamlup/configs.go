package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored diff output'"`

	Resource string
	File     string
	Ignored  []string

	Main *cli.Command
}

func (cfg *MainConfig) strOpt(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		*dst = a
		return a, nil
	})
}

func (cfg *MainConfig) ignoreOpt(_ *cli.Context, a string) (any, error) {
	cfg.Ignored = append(cfg.Ignored, a)
	return a, nil
}
