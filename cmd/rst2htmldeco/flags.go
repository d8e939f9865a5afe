package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errUsage marks command line mistakes; they are reported with the usage text.
var errUsage = errors.New("usage error")

// cliFlags holds the parsed command line.
type cliFlags struct {
	help      bool
	version   bool
	embed     string // stylesheet file to embed
	link      string // stylesheet URL to link
	urlPrefix string
	config    string
	codeStyle string
	verbose   bool
	quiet     bool
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional SRCFILE/OUTFILE arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("rst2htmldeco", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	f := &cliFlags{}

	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	fs.StringVarP(&f.embed, "embed-stylesheet", "e", "", "embed the stylesheet file in the output")
	fs.StringVarP(&f.link, "link-stylesheet", "l", "", "link to the stylesheet URL")
	fs.StringVarP(&f.urlPrefix, "url-prefix", "u", "", "prefix for relative URLs in banner, menu and footer")
	fs.StringVarP(&f.config, "config", "c", "", "site config file name or path")
	fs.StringVar(&f.codeStyle, "code-style", "", "highlighting style for code blocks")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log each step")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if f.help || f.version {
		return f, fs.Args(), nil
	}

	if f.embed != "" && f.link != "" {
		return nil, nil, fmt.Errorf("%w: --embed-stylesheet and --link-stylesheet are mutually exclusive", errUsage)
	}
	if f.verbose && f.quiet {
		return nil, nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", errUsage)
	}
	if fs.NArg() > 2 {
		return nil, nil, fmt.Errorf("%w: expected at most SRCFILE and OUTFILE, got %d arguments", errUsage, fs.NArg())
	}

	return f, fs.Args(), nil
}
