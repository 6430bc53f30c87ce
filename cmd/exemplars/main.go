/*
Command exemplars generates README.md, a listing of the writing systems of the
exemplar database together with their main exemplar characters.

The dataset is compiled into the command. exemplars does not take any
arguments; it overwrites README.md in the current working directory.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/npillmayer/exemplars/core"
	"github.com/npillmayer/exemplars/core/dataset"
	"github.com/npillmayer/exemplars/core/report"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'exemplars'
func tracer() tracing.Trace {
	return tracing.Select("exemplars")
}

// traceConf sets the trace levels of all packages.
var traceConf = testconfig.Conf{
	"tracing.adapter":          "go",
	"trace.exemplars":          "Info",
	"trace.exemplars.catalog":  "Error",
	"trace.exemplars.exemplar": "Error",
	"trace.exemplars.ws":       "Error",
	"trace.exemplars.dataset":  "Info",
	"trace.exemplars.report":   "Info",
}

func main() {
	initDisplay()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(traceConf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("cannot configure tracing")
		os.Exit(core.EINTERNAL)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	//
	if err := generate(report.DefaultOptions()); err != nil {
		os.Exit(abort(err))
	}
}

// abort reports err and returns the exit code for it.
func abort(err error) int {
	tracer().Errorf("%v", err)
	core.UserError(err)
	return core.Code(err)
}

// generate loads the database and writes the report.
func generate(opts report.Options) error {
	db, err := dataset.Open()
	if err != nil {
		return err
	}
	for _, finding := range db.Audit() {
		pterm.Warning.Println(finding.String())
	}
	if err = report.WriteFile(db.Systems, opts); err != nil {
		return err
	}
	pterm.Success.Printfln("%s lists %d writing systems", opts.Path, db.Systems.Len())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
