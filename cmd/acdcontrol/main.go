// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The acdcontrol command reads and sets the backlight brightness of
// Apple Cinema and Studio Display monitors.
//
// With no argument the current brightness is printed. An integer
// argument sets the brightness; a +N or -N argument adjusts it
// relative to the current level, clamped to the display's range.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dikkadev/prettyslog"
	"github.com/spf13/cobra"

	"github.com/acdtools/acdcontrol"
)

// Exit codes. Each failure class gets its own so scripts can tell a
// missing display from a permission problem.
const (
	exitOK         = 0
	exitIO         = 1
	exitUsage      = 2
	exitNotFound   = 3
	exitPermission = 4
)

var errUsage = errors.New("usage error")

func main() { os.Exit(Main(os.Args[1:])) }

func Main(args []string) int {
	root := newRootCommand()
	root.SetArgs(rewriteArgs(args))
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "acdcontrol: %v\n", err)
	code := exitCode(err)
	if code == exitPermission {
		fmt.Fprintln(os.Stderr, "hint: install udev/91-acdcontrol.rules or run as root")
	}
	return code
}

func exitCode(err error) int {
	var rangeErr acdcontrol.RangeError
	switch {
	case errors.As(err, &rangeErr), errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, acdcontrol.ErrNotFound):
		return exitNotFound
	case errors.Is(err, acdcontrol.ErrPermission):
		return exitPermission
	}
	return exitIO
}

type options struct {
	serial  string
	config  string
	verbose bool
}

func newRootCommand() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "acdcontrol [level]",
		Short: "Control the backlight of Apple Cinema Display monitors",
		Long: `Acdcontrol reads and sets the backlight brightness of Apple Cinema
and Studio Display monitors over USB.

With no argument the current brightness is printed. An integer
argument sets the brightness. A level starting with + or - adjusts
the brightness relative to the current level, clamped to the
display's range.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}
	root.PersistentFlags().StringVar(&opts.serial, "serial", "", "select the display with this serial number")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newListCommand(&opts))
	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(prettyslog.NewPrettyslogHandler("acd",
		prettyslog.WithLevel(level),
	)))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	serial := opts.serial
	if serial == "" {
		serial = cfg.Serial
	}

	d, err := acdcontrol.NewRegistry(cfg.Devices...).Open(serial)
	if err != nil {
		return err
	}
	defer d.Close()
	slog.Debug("opened display", "model", d.Model(), "path", d.Path(), "serial", d.Serial())

	if len(args) == 0 {
		level, err := d.Brightness()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), level)
		return nil
	}

	level, relative, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	if relative {
		cur, err := d.Brightness()
		if err != nil {
			return err
		}
		min, max := d.Range()
		level = clamp(cur+level, min, max)
		slog.Debug("relative adjustment", "current", cur, "target", level)
	}
	slog.Debug("setting brightness", "level", level)
	return d.SetBrightness(level)
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List attached supported displays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			infos, err := acdcontrol.NewRegistry(cfg.Devices...).Displays()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				return acdcontrol.ErrNotFound
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%04x:%04x\t%s\tserial=%s\t%s\n",
					info.Vendor, info.Product, info.Model, info.Serial, info.Path)
			}
			return nil
		},
	}
}

// parseLevel parses a brightness argument. A leading + or - makes the
// level relative to the current brightness.
func parseLevel(s string) (level int, relative bool, err error) {
	relative = strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")
	level, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: invalid brightness %q", errUsage, s)
	}
	return level, relative, nil
}

// rewriteArgs inserts a flag terminator before the first argument that
// looks like a brightness level so that -N is not parsed as a flag.
func rewriteArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if !isLevelArg(a) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isLevelArg(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || '9' < c {
			return false
		}
	}
	return true
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
