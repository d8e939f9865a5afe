// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// RendererEnvVar names the environment variable that overrides the docutils command.
const RendererEnvVar = "RST2HTML"

// ForRendererNotFound returns hints for a missing docutils executable.
func ForRendererNotFound(command string) string {
	hints := []string{"install docutils (pip install docutils)"}

	if os.Getenv(RendererEnvVar) == "" {
		hints = append(hints, "set "+RendererEnvVar+" if "+command+" is installed under another name (e.g. rst2html.py)")
	}

	return formatHints(hints)
}

// ForRenderFailure returns a hint pointing at the renderer's own diagnostics.
func ForRenderFailure() string {
	return format("the traceback above comes from docutils; check the source markup and stylesheet paths")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/rst2htmldeco/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/rst2htmldeco") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStylesheetConflict explains the embed/link exclusivity.
func ForStylesheetConflict() string {
	return format("choose either --embed-stylesheet FILE or --link-stylesheet URL")
}

// ForOutputDirectory returns hints for destination write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCodeStyle lists the known highlighting styles.
func ForCodeStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
