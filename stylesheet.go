package rst2htmldeco

import (
	"fmt"

	"github.com/alnah/go-rst2htmldeco/internal/fileutil"
)

// Stylesheet selects how docutils attaches the site stylesheet.
// The two implementations are EmbedStylesheet and LinkStylesheet; a nil
// Stylesheet means no stylesheet options are passed.
type Stylesheet interface {
	// docutilsArgs returns the options for this mode. Unexported so the set
	// of modes stays closed.
	docutilsArgs() []string
	String() string
}

// EmbedStylesheet inlines the stylesheet at Path into every page.
type EmbedStylesheet struct {
	Path string
}

func (s EmbedStylesheet) docutilsArgs() []string {
	return []string{"--stylesheet-path=" + s.Path, "--embed-stylesheet"}
}

func (s EmbedStylesheet) String() string { return "embed " + s.Path }

// LinkStylesheet references the stylesheet at URL, emitted verbatim.
type LinkStylesheet struct {
	URL string
}

func (s LinkStylesheet) docutilsArgs() []string {
	return []string{"--stylesheet=" + s.URL, "--link-stylesheet"}
}

func (s LinkStylesheet) String() string { return "link " + s.URL }

// ParseStylesheet builds the stylesheet choice from the two flag values.
// Both empty yields nil; both set is ErrStylesheetConflict. A web URL
// cannot be embedded, only linked.
func ParseStylesheet(embedPath, linkURL string) (Stylesheet, error) {
	switch {
	case embedPath != "" && linkURL != "":
		return nil, ErrStylesheetConflict
	case fileutil.IsURL(embedPath):
		return nil, fmt.Errorf("%w: %s", ErrEmbedURL, embedPath)
	case embedPath != "":
		return EmbedStylesheet{Path: embedPath}, nil
	case linkURL != "":
		return LinkStylesheet{URL: linkURL}, nil
	}
	return nil, nil
}
