// This file is part of tasconvert.
//
// tasconvert is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tasconvert is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tasconvert.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jetsetilly/tasconvert/logger"
	"github.com/jetsetilly/tasconvert/modalflag"
	"github.com/jetsetilly/tasconvert/prefs"
	"github.com/jetsetilly/tasconvert/statsview"
	"github.com/jetsetilly/tasconvert/tasfile"
	"github.com/jetsetilly/tasconvert/version"
	"github.com/jetsetilly/tasconvert/watcher"
)

func main() {
	// #ctrlc cancels the context. only WATCH mode runs long enough to care
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch the mode requested by the command line arguments and return the exit
// value for the process.
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CONVERT", "BATCH", "WATCH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(md)

	case "BATCH":
		err = batch(md)

	case "WATCH":
		err = watch(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to all conversion modes.
type conversionFlags struct {
	format    *string
	delay     *int
	sync      *bool
	confirm   *bool
	outputDir *string
	prefs     *string
	savePrefs *bool
	log       *bool
}

func addConversionFlags(md *modalflag.Modes) *conversionFlags {
	return &conversionFlags{
		format:    md.AddString("format", "AUTO", "format of the source recording: BIZHAWK, FCEUX"),
		delay:     md.AddInt("delay", 202, "number of lead-in frames"),
		sync:      md.AddBool("sync", true, "insert sync correction frames"),
		confirm:   md.AddBool("confirm", false, "press A on the first lead-in frame"),
		outputDir: md.AddString("outdir", "", "directory for converted scripts"),
		prefs:     md.AddString("prefs", "", "preferences for this run only: \"key::value; key::value\""),
		savePrefs: md.AddBool("saveprefs", false, "save the flag values as the new defaults"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// preferences returns the preferences for the current mode. The values are
// taken from the preferences file, the -prefs argument and then any flags that
// have been set explicitly, in that order.
func (f *conversionFlags) preferences(md *modalflag.Modes) (*preferences, error) {
	if *f.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*f.prefs)
	defer prefs.PopCommandLineStack()

	p, err := newPreferences()
	if err != nil {
		return nil, err
	}

	var set []error
	md.Visit(func(flag string) {
		switch flag {
		case "format":
			set = append(set, p.format.Set(*f.format))
		case "delay":
			set = append(set, p.delay.Set(*f.delay))
		case "sync":
			set = append(set, p.sync.Set(*f.sync))
		case "confirm":
			set = append(set, p.confirm.Set(*f.confirm))
		case "outdir":
			set = append(set, p.outputDir.Set(*f.outputDir))
		}
	})
	for _, err := range set {
		if err != nil {
			return nil, err
		}
	}

	if *f.savePrefs {
		if err := p.save(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// destination returns the destination for the source. An explicit
// destination is used as is. Otherwise the default output name is used,
// placed in the output directory if there is one.
func destination(p *preferences, source string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	dst := tasfile.DefaultOutput(source)
	if dir := p.outputDir.String(); dir != "" {
		dst = filepath.Join(dir, filepath.Base(dst))
	}
	return dst
}

func convert(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConversionFlags(md)
	md.AdditionalHelp(
		`The source recording is converted to a Yuzu TAS script. If no destination is given
the script is written next to the source with the suffix "_converted.txt".

The source can be a BizHawk input log, a BizHawk .bk2 movie, an FCEUX .fm2 movie or
an http(s) URL of any of those. With -format AUTO, .fm2 files are read as FCEUX and
everything else is read as BizHawk.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src, dst string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source recording required for %s mode", md)
	case 1:
		src = md.GetArg(0)
	case 2:
		src = md.GetArg(0)
		dst = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	cfg, err := prf.config(src)
	if err != nil {
		return err
	}

	sum, err := tasfile.ConvertFile(src, destination(prf, src, dst), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %s\n", sum.Destination, sum)

	return nil
}

func batch(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConversionFlags(md)
	md.AdditionalHelp(
		`Every source recording is converted to a script with the suffix "_converted.txt".
A failed conversion does not stop the remaining conversions.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one source recording required for %s mode", md)
	}

	prf, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	var failed int

	for _, src := range md.RemainingArgs() {
		cfg, err := prf.config(src)
		if err == nil {
			var sum tasfile.Summary
			sum, err = tasfile.ConvertFile(src, destination(prf, src, ""), cfg)
			if err == nil {
				fmt.Fprintf(md.Output, "%s: %s\n", sum.Destination, sum)
				continue // for loop
			}
		}

		failed++
		fmt.Fprintf(md.Output, "* %s: %v\n", tasfile.ShortName(src), err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(md.RemainingArgs()))
	}

	return nil
}

func watch(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConversionFlags(md)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))
	md.AdditionalHelp(
		`The source recording is converted and then converted again every time it changes.
Press Ctrl-C to stop watching.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src, dst string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source recording required for %s mode", md)
	case 1:
		src = md.GetArg(0)
	case 2:
		src = md.GetArg(0)
		dst = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := flgs.preferences(md)
	if err != nil {
		return err
	}

	cfg, err := prf.config(src)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return watcher.Watch(ctx, src, destination(prf, src, dst), cfg, func(sum tasfile.Summary, err error) {
		if err != nil {
			fmt.Fprintf(md.Output, "* %v\n", err)
			return
		}
		fmt.Fprintf(md.Output, "%s: %s\n", sum.Destination, sum)
	})
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	if *revision {
		fmt.Fprintln(md.Output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)

	return nil
}
