package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"[SRCFILE [OUTFILE]]",
		"--embed-stylesheet",
		"--link-stylesheet",
		"--url-prefix",
		"--config",
		"--code-style",
		"RST2HTML",
		"mutually exclusive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printVersion(&buf)
	if got := buf.String(); got != "rst2htmldeco "+Version+"\n" {
		t.Errorf("printVersion() = %q", got)
	}
}
