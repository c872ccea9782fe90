package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/croabeast/yaml-api/ir"
	"github.com/croabeast/yaml-api/parse"
	"github.com/croabeast/yaml-api/resource"
	"github.com/croabeast/yaml-api/update"
)

// coloredOutput decides on color for the writer actually receiving the
// diff, not the process's stdout.
func coloredOutput(cfg *MainConfig, out io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func newUpdater(cfg *MainConfig) (*update.Updater, error) {
	if cfg.Resource == "" || cfg.File == "" {
		return nil, fmt.Errorf("%w: -r and -f are required", cli.ErrUsage)
	}
	loader := resource.Dir{Root: "."}
	return update.New(loader, cfg.Resource, cfg.File, cfg.Ignored...)
}

func runUpdate(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: update takes no arguments", cli.ErrUsage)
	}
	u, err := newUpdater(cfg)
	if err != nil {
		return err
	}
	return u.Update()
}

func runDiff(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: diff takes no arguments", cli.ErrUsage)
	}
	u, err := newUpdater(cfg)
	if err != nil {
		return err
	}
	merged, err := u.Merged()
	if err != nil {
		return err
	}
	old, err := os.ReadFile(cfg.File)
	if err != nil {
		return err
	}
	if string(old) == merged {
		fmt.Fprintf(cc.Out, "%s: up to date\n", cfg.File)
		return nil
	}

	colored := coloredOutput(cfg, cc.Out)
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed, color.CrossedOut).SprintFunc()

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(old), merged, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if colored {
				fmt.Fprint(cc.Out, ins(d.Text))
			} else {
				fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
			}
		case diffmatchpatch.DiffDelete:
			if colored {
				fmt.Fprint(cc.Out, del(d.Text))
			} else {
				fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
			}
		case diffmatchpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	return nil
}

func runComments(cfg *MainConfig, cc *cli.Context, args []string) error {
	if cfg.Resource == "" {
		return fmt.Errorf("%w: -r is required", cli.ErrUsage)
	}
	src, err := os.ReadFile(cfg.Resource)
	if err != nil {
		return err
	}
	def, err := parse.Bytes(src)
	if err != nil {
		return err
	}
	keys := ir.DeepKeys(def)
	cm := update.ParseComments(src, keys)
	for _, k := range keys {
		block := cm.At(k)
		if block == "" {
			continue
		}
		fmt.Fprintf(cc.Out, "%s:\n%s\n", k, block)
	}
	if t := cm.Trailing(); t != "" {
		fmt.Fprintf(cc.Out, "(trailing):\n%s", t)
	}
	return nil
}
