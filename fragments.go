package rst2htmldeco

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"
	"time"

	"github.com/alnah/go-rst2htmldeco/internal/assets"
	"github.com/alnah/go-rst2htmldeco/internal/fileutil"
)

// TemplateLoader supplies the banner, nav and footer templates by name.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// Site describes the banner.
type Site struct {
	Name    string
	Tagline string
	Logo    string // relative URLs get the prefix
	Home    string // target of the logo link
}

// NavLink is one navigation menu entry.
type NavLink struct {
	Title   string
	Href    string
	Current bool // set while building for the page being rendered
}

// Copyright describes the footer.
type Copyright struct {
	Holder        string
	Since         int    // first year; 0 shows the current year only
	CopyrightPage string // optional link to the license page
	Text          string // Markdown rendered above the copyright line
}

// SiteLayout groups everything the fragments are built from.
type SiteLayout struct {
	Site      Site
	Menu      []NavLink
	Copyright Copyright
}

// DefaultSite returns the GraphicsMagick documentation layout.
func DefaultSite() SiteLayout {
	menu := []NavLink{
		{Title: "Home", Href: "index.html"},
		{Title: "Project", Href: "project.html"},
		{Title: "Download", Href: "download.html"},
		{Title: "Install", Href: "INSTALL-unix.html"},
		{Title: "Documentation", Href: "README.html"},
		{Title: "Utilities", Href: "utilities.html"},
		{Title: "Programming", Href: "programming.html"},
		{Title: "Benchmarks", Href: "benchmarks.html"},
		{Title: "Reference", Href: "reference.html"},
		{Title: "ChangeLog", Href: "ChangeLog.html"},
		{Title: "Links", Href: "links.html"},
	}
	return SiteLayout{
		Site: Site{Name: "GraphicsMagick", Logo: "images/gm-107x76.png", Home: "index.html"},
		Menu: menu,
		Copyright: Copyright{
			Holder:        "GraphicsMagick Group",
			Since:         2002,
			CopyrightPage: "Copyright.html",
		},
	}
}

// Fragments holds the URL prefix and the three HTML blobs injected into every
// page. The blobs are rebuilt by Configure for each rendering; a Fragments
// value serves one rendering at a time.
type Fragments struct {
	// URLPrefix is empty or ends with exactly one slash.
	URLPrefix string
	// Current is the output file name; the matching menu entry is marked.
	Current string

	Nav    string
	Banner string
	Footer string

	layout SiteLayout
	loader TemplateLoader
	now    func() time.Time
}

// FragmentsOption configures Fragments.
type FragmentsOption func(*Fragments)

// WithTemplateLoader replaces the embedded fragment templates.
func WithTemplateLoader(l TemplateLoader) FragmentsOption {
	return func(f *Fragments) { f.loader = l }
}

// WithClock sets the time source for the copyright year.
func WithClock(now func() time.Time) FragmentsOption {
	return func(f *Fragments) { f.now = now }
}

// WithDefaultURLPrefix sets the prefix used when a job supplies none.
func WithDefaultURLPrefix(prefix string) FragmentsOption {
	return func(f *Fragments) { f.URLPrefix = NormalizeURLPrefix(prefix) }
}

// NewFragments creates Fragments for a site layout.
func NewFragments(layout SiteLayout, opts ...FragmentsOption) *Fragments {
	f := &Fragments{
		layout: layout,
		loader: assets.NewEmbeddedLoader(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NormalizeURLPrefix strips trailing slashes and appends exactly one.
// The empty prefix stays empty.
func NormalizeURLPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimRight(prefix, "/") + "/"
}

// SetURLPrefix stores the normalized prefix. An empty prefix leaves the
// current one untouched.
func (f *Fragments) SetURLPrefix(prefix string) {
	if prefix != "" {
		f.URLPrefix = NormalizeURLPrefix(prefix)
	}
}

// URL prefixes relative references. Absolute URLs, root-relative paths,
// anchors and scheme references are returned unchanged.
func (f *Fragments) URL(ref string) string {
	if !fileutil.IsRelativeURL(ref) {
		return ref
	}
	return f.URLPrefix + ref
}

// Configure applies the prefix and rebuilds Nav, Banner and Footer.
func (f *Fragments) Configure(urlPrefix string) error {
	f.SetURLPrefix(urlPrefix)

	nav, err := f.MakeNav()
	if err != nil {
		return err
	}
	banner, err := f.MakeBanner()
	if err != nil {
		return err
	}
	footer, err := f.MakeFooter()
	if err != nil {
		return err
	}

	f.Nav, f.Banner, f.Footer = nav, banner, footer
	return nil
}

// fragmentData is the template context shared by the three fragments.
type fragmentData struct {
	Site       Site
	Nav        []NavLink
	Footer     Copyright
	FooterHTML template.HTML
	Year       int
}

// MakeNav builds the navigation menu HTML.
func (f *Fragments) MakeNav() (string, error) {
	return f.render(assets.NavTemplate, f.baseData())
}

// MakeBanner builds the banner HTML.
func (f *Fragments) MakeBanner() (string, error) {
	return f.render(assets.BannerTemplate, f.baseData())
}

// MakeFooter builds the footer HTML, converting the Markdown text first.
func (f *Fragments) MakeFooter() (string, error) {
	data := f.baseData()
	if text := strings.TrimSpace(f.layout.Copyright.Text); text != "" {
		body, err := footerMarkdownToHTML(text, f.URL)
		if err != nil {
			return "", err
		}
		// #nosec G203 -- footer text comes from the site configuration
		data.FooterHTML = template.HTML(body)
	}
	return f.render(assets.FooterTemplate, data)
}

func (f *Fragments) baseData() fragmentData {
	menu := make([]NavLink, len(f.layout.Menu))
	for i, item := range f.layout.Menu {
		item.Current = f.Current != "" && hrefFile(item.Href) == f.Current
		menu[i] = item
	}
	return fragmentData{
		Site:   f.layout.Site,
		Nav:    menu,
		Footer: f.layout.Copyright,
		Year:   f.now().Year(),
	}
}

// hrefFile returns the file name of a link target, without query or anchor.
func hrefFile(href string) string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return ""
	}
	return path.Base(href)
}

func (f *Fragments) render(name string, data fragmentData) (string, error) {
	src, err := f.loader.LoadTemplate(name)
	if err != nil {
		return "", fmt.Errorf("%w: loading %s: %v", ErrFragmentTemplate, name, err)
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{"url": f.URL}).Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrFragmentTemplate, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %v", ErrFragmentTemplate, name, err)
	}
	return buf.String(), nil
}
