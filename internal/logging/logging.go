// Package logging configures klog for the command line tools.
package logging

import (
	"flag"
	"strconv"

	"github.com/plan-systems/klog"
)

// Flags registers the klog flags on a fresh FlagSet, logging to stderr at the
// given verbosity, and installs the fixed-width formatter.
func Flags(verbosity int) *flag.FlagSet {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.Set("logtostderr", "true")
	fs.Set("v", strconv.Itoa(verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	return fs
}

// Flush writes any buffered log lines.
func Flush() {
	klog.Flush()
}
