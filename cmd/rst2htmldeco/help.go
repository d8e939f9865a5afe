package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rst2htmldeco [options] [SRCFILE [OUTFILE]]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a reStructuredText file to HTML with docutils and decorate it with")
	fmt.Fprintln(w, "the site banner, navigation menu and footer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  SRCFILE    reStructuredText source (default: standard input)")
	fmt.Fprintln(w, "  OUTFILE    HTML output (default: standard output)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                  Show this help")
	fmt.Fprintln(w, "  -e, --embed-stylesheet FILE Embed the stylesheet FILE in the output")
	fmt.Fprintln(w, "  -l, --link-stylesheet URL   Link to the stylesheet at URL")
	fmt.Fprintln(w, "  -u, --url-prefix PATH       Prefix relative URLs in banner, menu and footer")
	fmt.Fprintln(w, "  -c, --config FILE           Site config file name or path")
	fmt.Fprintln(w, "      --code-style NAME       Highlighting style for code blocks")
	fmt.Fprintln(w, "  -v, --verbose               Log each step")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "      --version               Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The --embed-stylesheet and --link-stylesheet options are mutually exclusive.")
	fmt.Fprintln(w, "Without either, docutils runs without a stylesheet.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RST2HTML               docutils command (default: rst2html)")
	fmt.Fprintln(w, "  RST2HTMLDECO_CONFIG    site config used when --config is not given")
	fmt.Fprintln(w, "  RST2HTMLDECO_TIMEOUT   rendering timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  rst2htmldeco -e docutils.css AUTHORS.txt www/authors.html")
	fmt.Fprintln(w, "  rst2htmldeco -l /styles/site.css -u ../../ input.rst output.html")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "rst2htmldeco %s\n", Version)
}
