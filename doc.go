// Package rst2htmldeco renders reStructuredText to HTML through docutils and
// decorates every page with a shared banner, navigation menu and footer.
//
// # Quick Start
//
//	frags := rst2htmldeco.NewFragments(rst2htmldeco.DefaultSite())
//	svc := rst2htmldeco.New(frags)
//
//	err := svc.MakeHTML(ctx, rst2htmldeco.Job{
//	    Source:     "AUTHORS.txt",
//	    Dest:       "www/authors.html",
//	    Stylesheet: rst2htmldeco.LinkStylesheet{URL: "docutils-articles.css"},
//	    URLPrefix:  "../",
//	})
//
// # Rendering Pipeline
//
//  1. Fragments are (re)built for the job's URL prefix: relative links in
//     the banner, menu and footer are prefixed so they resolve from the
//     output directory.
//  2. The docutils argument vector is assembled: a fixed option set, then
//     the stylesheet options, then the source and destination paths.
//  3. The docutils command (rst2html) renders the source to HTML.
//  4. The named writer ("htmldeco") injects the fragments and, when a code
//     style is set, the chroma stylesheet for highlighted code blocks.
//
// # Stylesheets
//
// A stylesheet is either embedded (docutils reads the file and inlines it)
// or linked (the URL is emitted verbatim). A nil Stylesheet produces
// unstyled output. Image URLs inside an embedded stylesheet resolve against
// the HTML file; inside a linked one they resolve against the stylesheet.
//
// # Renderer Requirements
//
// Rendering requires docutils. Set the command with WithCommand when it is
// not installed as rst2html; the rst2htmldeco command reads it from the
// RST2HTML environment variable.
package rst2htmldeco
