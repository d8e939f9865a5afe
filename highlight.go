package rst2htmldeco

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeBlockSelector matches the <pre> elements docutils emits for the
// code directive.
const codeBlockSelector = "pre.code"

// chromaClass is the container class chroma's stylesheet rules hang off.
const chromaClass = "chroma"

// CodeStyles lists the available code highlighting style names.
func CodeStyles() []string {
	return styles.Names()
}

// ValidateCodeStyle reports ErrUnknownCodeStyle for names chroma lacks.
// The empty name (no highlighting) is valid.
func ValidateCodeStyle(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodeStyle, name)
	}
	return nil
}

// codeStyleCSS renders the chroma stylesheet for a style, using short
// token classes as docutils does with --syntax-highlight=short.
func codeStyleCSS(name string) (string, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCodeStyle, name)
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", name, err)
	}
	return buf.String(), nil
}

// codeBlocks counts docutils code blocks and lists their languages.
func codeBlocks(htmlContent string) (int, []string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 0, nil, fmt.Errorf("parsing rendered HTML: %w", err)
	}

	seen := map[string]bool{}
	blocks := doc.Find(codeBlockSelector)
	blocks.Each(func(_ int, s *goquery.Selection) {
		for _, class := range strings.Fields(s.AttrOr("class", "")) {
			switch class {
			case "code", "literal-block", chromaClass:
			default:
				seen[class] = true
			}
		}
	})

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return blocks.Length(), langs, nil
}

// markCodeBlocks adds the chroma container class to docutils code blocks.
func markCodeBlocks(htmlContent string) string {
	return strings.ReplaceAll(htmlContent, `<pre class="code `, `<pre class="`+chromaClass+` code `)
}
