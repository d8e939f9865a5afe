package rst2htmldeco

import "strings"

// injectAfterBodyOpen inserts fragment right after the opening <body> tag.
// Without a body tag the fragment is prepended.
func injectAfterBodyOpen(htmlContent, fragment string) string {
	if fragment == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := indexBodyOpen(lowerHTML); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + "\n" + fragment + htmlContent[insertPos:]
		}
	}

	return fragment + htmlContent
}

// indexBodyOpen finds "<body" followed by '>' or whitespace, so that
// elements like <bodytext> do not match.
func indexBodyOpen(lowerHTML string) int {
	offset := 0
	for {
		idx := strings.Index(lowerHTML[offset:], "<body")
		if idx == -1 {
			return -1
		}
		idx += offset
		next := idx + len("<body")
		if next < len(lowerHTML) {
			switch lowerHTML[next] {
			case '>', ' ', '\t', '\n', '\r', '/':
				return idx
			}
		}
		offset = next
	}
}

// injectBeforeBodyClose inserts fragment before the last </body>.
// Without a closing tag the fragment is appended.
func injectBeforeBodyClose(htmlContent, fragment string) string {
	if fragment == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.LastIndex(lowerHTML, "</body>"); idx != -1 {
		return htmlContent[:idx] + fragment + "\n" + htmlContent[idx:]
	}

	return htmlContent + fragment
}

// injectStyle inserts a <style> block before </head>, falling back to right
// after <body>, then to prepending.
func injectStyle(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	styleBlock := "<style type=\"text/css\">\n" + sanitizeCSS(css) + "</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	return injectAfterBodyOpen(htmlContent, styleBlock)
}

// sanitizeCSS escapes "</" so the CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
