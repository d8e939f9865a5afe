package rst2htmldeco

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC) }
}

// parseFragment loads an HTML fragment for DOM assertions.
func parseFragment(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parsing fragment: %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestNormalizeURLPrefix - Trailing slash handling
// ---------------------------------------------------------------------------

func TestNormalizeURLPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "foo/bar", want: "foo/bar/"},
		{input: "foo/bar/", want: "foo/bar/"},
		{input: "foo/bar///", want: "foo/bar/"},
		{input: "../../", want: "../../"},
		{input: "..", want: "../"},
		{input: "http://example.org/docs", want: "http://example.org/docs/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := NormalizeURLPrefix(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeURLPrefix(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeURLPrefix(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSetURLPrefix(t *testing.T) {
	t.Parallel()

	f := NewFragments(DefaultSite(), WithDefaultURLPrefix("/docs"))
	if f.URLPrefix != "/docs/" {
		t.Fatalf("default prefix = %q, want %q", f.URLPrefix, "/docs/")
	}

	f.SetURLPrefix("")
	if f.URLPrefix != "/docs/" {
		t.Errorf("empty prefix replaced the default: %q", f.URLPrefix)
	}

	f.SetURLPrefix("foo/bar")
	if f.URLPrefix != "foo/bar/" {
		t.Errorf("URLPrefix = %q, want %q", f.URLPrefix, "foo/bar/")
	}
}

func TestFragments_URL(t *testing.T) {
	t.Parallel()

	f := NewFragments(SiteLayout{})
	f.SetURLPrefix("../../")

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "index.html", want: "../../index.html"},
		{ref: "images/gm.png", want: "../../images/gm.png"},
		{ref: "http://example.org/", want: "http://example.org/"},
		{ref: "mailto:a@example.org", want: "mailto:a@example.org"},
		{ref: "#top", want: "#top"},
		{ref: "/root.html", want: "/root.html"},
		{ref: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := f.URL(tt.ref); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMakeNav - Menu fragment
// ---------------------------------------------------------------------------

func TestMakeNav(t *testing.T) {
	t.Parallel()

	f := NewFragments(DefaultSite())
	f.SetURLPrefix("../")
	f.Current = "download.html"

	nav, err := f.MakeNav()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := parseFragment(t, nav)
	links := doc.Find("div.navmenu ul li a")
	if links.Length() != len(DefaultSite().Menu) {
		t.Fatalf("got %d links, want %d", links.Length(), len(DefaultSite().Menu))
	}

	if href := links.First().AttrOr("href", ""); href != "../index.html" {
		t.Errorf("first href = %q, want %q", href, "../index.html")
	}

	current := doc.Find("a.current")
	if current.Length() != 1 {
		t.Fatalf("got %d current links, want 1", current.Length())
	}
	if got := current.Text(); got != "Download" {
		t.Errorf("current link = %q, want Download", got)
	}
}

func TestMakeNav_NoPrefix(t *testing.T) {
	t.Parallel()

	f := NewFragments(SiteLayout{Menu: []NavLink{
		{Title: "Home", Href: "index.html"},
		{Title: "Upstream", Href: "http://example.org/"},
	}})

	nav, err := f.MakeNav()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{`href="index.html"`, `href="http://example.org/"`} {
		if !strings.Contains(nav, want) {
			t.Errorf("nav missing %s:\n%s", want, nav)
		}
	}
	if strings.Contains(nav, "current") {
		t.Errorf("no page is current, got:\n%s", nav)
	}
}

func TestMakeBanner(t *testing.T) {
	t.Parallel()

	f := NewFragments(SiteLayout{Site: Site{
		Name:    "Example",
		Tagline: "Tools & more",
		Logo:    "images/logo.png",
		Home:    "index.html",
	}})
	f.SetURLPrefix("..")

	banner, err := f.MakeBanner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := parseFragment(t, banner)
	if src := doc.Find("div.banner img").AttrOr("src", ""); src != "../images/logo.png" {
		t.Errorf("logo src = %q", src)
	}
	if href := doc.Find("div.banner a").AttrOr("href", ""); href != "../index.html" {
		t.Errorf("home href = %q", href)
	}
	if got := doc.Find("span.tagline").Text(); got != "Tools & more" {
		t.Errorf("tagline = %q", got)
	}
	if !strings.Contains(banner, "Tools &amp; more") {
		t.Errorf("tagline not escaped:\n%s", banner)
	}
}

func TestMakeBanner_NoLogo(t *testing.T) {
	t.Parallel()

	f := NewFragments(SiteLayout{Site: Site{Name: "Example"}})
	banner, err := f.MakeBanner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(banner, "<img") {
		t.Errorf("banner without logo has an image:\n%s", banner)
	}
}

// ---------------------------------------------------------------------------
// TestMakeFooter - Copyright line and Markdown text
// ---------------------------------------------------------------------------

func TestMakeFooter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		layout   SiteLayout
		year     int
		contains []string
		excludes []string
	}{
		{
			name:     "year range",
			layout:   DefaultSite(),
			year:     2026,
			contains: []string{"GraphicsMagick Group 2002 - 2026", `href="../Copyright.html"`},
		},
		{
			name:     "since equals current year",
			layout:   SiteLayout{Copyright: Copyright{Holder: "Ex", Since: 2026}},
			year:     2026,
			contains: []string{"Ex 2026"},
			excludes: []string{" - ", "Terms"},
		},
		{
			name:     "no since",
			layout:   SiteLayout{Copyright: Copyright{Holder: "Ex"}},
			year:     2026,
			contains: []string{"Ex 2026"},
		},
		{
			name: "markdown text",
			layout: SiteLayout{Copyright: Copyright{
				Holder: "Ex",
				Text:   "Hosted by [us](hosting.html).",
			}},
			year:     2026,
			contains: []string{`<div class="footer-text"><p>Hosted by <a href="../hosting.html">us</a>.</p>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFragments(tt.layout, WithClock(fixedClock(tt.year)))
			f.SetURLPrefix("../")

			footer, err := f.MakeFooter()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(footer, want) {
					t.Errorf("footer missing %q:\n%s", want, footer)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(footer, bad) {
					t.Errorf("footer contains %q:\n%s", bad, footer)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfigure - All three fragments
// ---------------------------------------------------------------------------

func TestConfigure(t *testing.T) {
	t.Parallel()

	f := NewFragments(DefaultSite(), WithClock(fixedClock(2026)))
	if err := f.Configure("foo/bar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.URLPrefix != "foo/bar/" {
		t.Errorf("URLPrefix = %q", f.URLPrefix)
	}
	for name, frag := range map[string]string{"nav": f.Nav, "banner": f.Banner, "footer": f.Footer} {
		if frag == "" {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(frag, "foo/bar/") {
			t.Errorf("%s has no prefixed URL:\n%s", name, frag)
		}
	}

	// Same prefix, same fragments.
	nav := f.Nav
	if err := f.Configure("foo/bar/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Nav != nav {
		t.Errorf("reconfiguring with an equivalent prefix changed the nav")
	}
}

type stubLoader map[string]string

func (s stubLoader) LoadTemplate(name string) (string, error) {
	src, ok := s[name]
	if !ok {
		return "", errors.New("missing " + name)
	}
	return src, nil
}

func TestConfigure_TemplateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		loader stubLoader
	}{
		{name: "missing template", loader: stubLoader{}},
		{name: "parse error", loader: stubLoader{"nav": "{{.Nav"}},
		{name: "execute error", loader: stubLoader{"nav": "{{.NoSuchField}}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFragments(DefaultSite(), WithTemplateLoader(tt.loader))
			err := f.Configure("")
			if !errors.Is(err, ErrFragmentTemplate) {
				t.Errorf("error = %v, want ErrFragmentTemplate", err)
			}
		})
	}
}

func TestConfigure_CustomTemplates(t *testing.T) {
	t.Parallel()

	loader := stubLoader{
		"nav":    `<nav>{{range .Nav}}<a href="{{url .Href}}">{{.Title}}</a>{{end}}</nav>`,
		"banner": `<header>{{.Site.Name}}</header>`,
		"footer": `<footer>{{.Year}}</footer>`,
	}
	f := NewFragments(SiteLayout{
		Site: Site{Name: "Ex"},
		Menu: []NavLink{{Title: "A", Href: "a.html"}},
	}, WithTemplateLoader(loader), WithClock(fixedClock(2030)))

	if err := f.Configure("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Nav != `<nav><a href="x/a.html">A</a></nav>` {
		t.Errorf("Nav = %q", f.Nav)
	}
	if f.Banner != "<header>Ex</header>" {
		t.Errorf("Banner = %q", f.Banner)
	}
	if f.Footer != "<footer>2030</footer>" {
		t.Errorf("Footer = %q", f.Footer)
	}
}

func TestHrefFile(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"index.html":          "index.html",
		"docs/api.html#intro": "api.html",
		"page.html?x=1":       "page.html",
		"#top":                "",
	}
	for in, want := range tests {
		if got := hrefFile(in); got != want {
			t.Errorf("hrefFile(%q) = %q, want %q", in, got, want)
		}
	}
}
