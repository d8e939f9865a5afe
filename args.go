package rst2htmldeco

import "strings"

// RFCBaseURL is where "RFC 822" style references link to.
const RFCBaseURL = "http://tools.ietf.org/html/"

// syntaxHighlightOption makes docutils emit short token classes, which the
// chroma stylesheet targets.
const syntaxHighlightOption = "--syntax-highlight=short"

// stdioPath stands for standard input or output in a path position.
const stdioPath = "-"

// fixedOptions are passed to docutils on every run.
var fixedOptions = []string{
	"--cloak-email-addresses", // obfuscate email addresses
	"--no-generator",          // no "Generated by Docutils" credit
	"--no-datestamp",
	"--traceback", // full traceback when docutils halts
	"--rfc-references",
	"--rfc-base-url=" + RFCBaseURL,
}

// FixedOptions returns a copy of the options passed on every run.
func FixedOptions() []string {
	return append([]string(nil), fixedOptions...)
}

// Job describes one rendering.
type Job struct {
	Source     string     // reStructuredText file; "" reads standard input
	Dest       string     // HTML file; "" writes standard output
	Stylesheet Stylesheet // nil = unstyled
	URLPrefix  string     // prefix for relative URLs in the fragments
	CodeStyle  string     // chroma style for code blocks; "" = no highlighting
}

// BuildArgs assembles the docutils argument vector for job: fixed options,
// the highlight option when a code style is set, the stylesheet options,
// then the source and destination paths when present.
func BuildArgs(job Job) []string {
	args := FixedOptions()
	if job.CodeStyle != "" {
		args = append(args, syntaxHighlightOption)
	}
	if job.Stylesheet != nil {
		args = append(args, job.Stylesheet.docutilsArgs()...)
	}
	switch {
	case job.Source != "":
		if strings.HasPrefix(job.Source, "-") && job.Source != stdioPath {
			// Ends the options so the source is read as a path.
			args = append(args, "--")
		}
		args = append(args, job.Source)
	case job.Dest != "":
		// Keep the destination in second position.
		args = append(args, stdioPath)
	}
	if job.Dest != "" {
		args = append(args, job.Dest)
	}
	return args
}
