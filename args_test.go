package rst2htmldeco

import (
	"slices"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildArgs - Argument vector assembly
// ---------------------------------------------------------------------------

func TestBuildArgs(t *testing.T) {
	t.Parallel()

	fixed := FixedOptions()
	with := func(extra ...string) []string { return append(FixedOptions(), extra...) }

	tests := []struct {
		name string
		job  Job
		want []string
	}{
		{
			name: "link mode with both paths",
			job: Job{
				Source:     "input.rst",
				Dest:       "output.html",
				Stylesheet: LinkStylesheet{URL: "/styles/site.css"},
				URLPrefix:  "../../",
			},
			want: with("--stylesheet=/styles/site.css", "--link-stylesheet", "input.rst", "output.html"),
		},
		{
			name: "embed mode",
			job:  Job{Source: "AUTHORS.txt", Dest: "www/authors.html", Stylesheet: EmbedStylesheet{Path: "docutils.css"}},
			want: with("--stylesheet-path=docutils.css", "--embed-stylesheet", "AUTHORS.txt", "www/authors.html"),
		},
		{
			name: "no stylesheet",
			job:  Job{Source: "a.rst", Dest: "a.html"},
			want: with("a.rst", "a.html"),
		},
		{
			name: "source only",
			job:  Job{Source: "a.rst"},
			want: with("a.rst"),
		},
		{
			name: "no paths",
			job:  Job{},
			want: fixed,
		},
		{
			name: "destination only keeps its position",
			job:  Job{Dest: "a.html"},
			want: with("-", "a.html"),
		},
		{
			name: "source starting with a dash ends the options",
			job:  Job{Source: "-odd.rst", Dest: "out.html", Stylesheet: LinkStylesheet{URL: "s.css"}},
			want: with("--stylesheet=s.css", "--link-stylesheet", "--", "-odd.rst", "out.html"),
		},
		{
			name: "stdin source needs no separator",
			job:  Job{Source: "-", Dest: "out.html"},
			want: with("-", "out.html"),
		},
		{
			name: "code style enables short highlight classes",
			job:  Job{Source: "a.rst", CodeStyle: "monokai", Stylesheet: LinkStylesheet{URL: "s.css"}},
			want: with("--syntax-highlight=short", "--stylesheet=s.css", "--link-stylesheet", "a.rst"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildArgs(tt.job)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BuildArgs() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestBuildArgs_StylesheetModesExclusive(t *testing.T) {
	t.Parallel()

	for _, ss := range []Stylesheet{EmbedStylesheet{Path: "a.css"}, LinkStylesheet{URL: "b.css"}} {
		args := BuildArgs(Job{Source: "x.rst", Stylesheet: ss})

		var pathLike, modes int
		for _, a := range args {
			if strings.HasPrefix(a, "--stylesheet=") || strings.HasPrefix(a, "--stylesheet-path=") {
				pathLike++
			}
			if a == "--embed-stylesheet" || a == "--link-stylesheet" {
				modes++
			}
		}
		if pathLike != 1 || modes != 1 {
			t.Errorf("%s: %d stylesheet options and %d mode flags, want 1 and 1: %q", ss, pathLike, modes, args)
		}
	}
}

func TestFixedOptions(t *testing.T) {
	t.Parallel()

	want := []string{
		"--cloak-email-addresses",
		"--no-generator",
		"--no-datestamp",
		"--traceback",
		"--rfc-references",
		"--rfc-base-url=http://tools.ietf.org/html/",
	}
	got := FixedOptions()
	if !slices.Equal(got, want) {
		t.Errorf("FixedOptions() = %q, want %q", got, want)
	}

	// Returned slice is a copy.
	got[0] = "--changed"
	if FixedOptions()[0] != want[0] {
		t.Error("FixedOptions() exposes the shared slice")
	}
}

func TestBuildArgs_PathsSurviveSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		job  Job
		want []string
	}{
		{name: "plain paths", job: Job{Source: "in.rst", Dest: "out.html"}, want: []string{"in.rst", "out.html"}},
		{name: "dash source", job: Job{Source: "-odd.rst", Dest: "out.html"}, want: []string{"-odd.rst", "out.html"}},
		{name: "dash source only", job: Job{Source: "-odd.rst"}, want: []string{"-odd.rst"}},
		{name: "stdin to file", job: Job{Dest: "out.html"}, want: []string{"-", "out.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			options, paths := splitArgv(BuildArgs(tt.job))
			if !slices.Equal(paths, tt.want) {
				t.Errorf("paths = %q, want %q", paths, tt.want)
			}
			if !slices.Equal(options, FixedOptions()) {
				t.Errorf("options = %q, want the fixed options", options)
			}
		})
	}
}
