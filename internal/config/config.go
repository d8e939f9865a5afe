package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-rst2htmldeco"
	"github.com/alnah/go-rst2htmldeco/internal/fileutil"
	"github.com/alnah/go-rst2htmldeco/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound     = errors.New("config file not found")
	ErrEmptyConfigName    = errors.New("config name cannot be empty")
	ErrConfigParse        = errors.New("failed to parse config")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrInvalidField       = errors.New("invalid config value")
	ErrStylesheetConflict = errors.New("embedStylesheet and linkStylesheet are mutually exclusive")
)

// Field length limits.
const (
	MaxNameLength    = 100
	MaxTaglineLength = 200
	MaxURLLength     = 2048
	MaxTitleLength   = 100
	MaxTextLength    = 2000 // footer Markdown
	MaxCommandLength = 1024
	MaxNavItems      = 50
)

// DefaultRenderCommand is the docutils front end used when none is configured.
const DefaultRenderCommand = rst2htmldeco.DefaultCommand

// userConfigDirName is the directory under os.UserConfigDir searched for named configs.
const userConfigDirName = "rst2htmldeco"

// Config holds the site configuration shared by every rendered page.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Nav    []NavItem    `yaml:"nav"`
	Footer FooterConfig `yaml:"footer"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
}

// SiteConfig describes the banner.
type SiteConfig struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Logo    string `yaml:"logo"` // relative URLs get the url prefix
	Home    string `yaml:"home"`
}

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

// FooterConfig describes the footer.
type FooterConfig struct {
	Holder        string `yaml:"holder"`        // copyright holder
	Since         int    `yaml:"since"`         // first copyright year, 0 = current year only
	Text          string `yaml:"text"`          // Markdown, rendered above the copyright line
	CopyrightPage string `yaml:"copyrightPage"` // optional link to the license page
}

// RenderConfig holds defaults for the rendering invocation. CLI flags win.
type RenderConfig struct {
	Command         string `yaml:"command"`
	URLPrefix       string `yaml:"urlPrefix"`
	EmbedStylesheet string `yaml:"embedStylesheet"`
	LinkStylesheet  string `yaml:"linkStylesheet"`
	CodeStyle       string `yaml:"codeStyle"`
}

// AssetsConfig locates site-specific fragment templates.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded templates
}

// DefaultConfig returns the built-in site layout as a config.
func DefaultConfig() *Config {
	layout := rst2htmldeco.DefaultSite()

	nav := make([]NavItem, len(layout.Menu))
	for i, link := range layout.Menu {
		nav[i] = NavItem{Title: link.Title, Href: link.Href}
	}

	return &Config{
		Site: SiteConfig{
			Name:    layout.Site.Name,
			Tagline: layout.Site.Tagline,
			Logo:    layout.Site.Logo,
			Home:    layout.Site.Home,
		},
		Nav: nav,
		Footer: FooterConfig{
			Holder:        layout.Copyright.Holder,
			Since:         layout.Copyright.Since,
			Text:          layout.Copyright.Text,
			CopyrightPage: layout.Copyright.CopyrightPage,
		},
		Render: RenderConfig{Command: DefaultRenderCommand},
	}
}

// Layout converts the site, nav and footer sections into the layout the
// fragments are built from.
func (c *Config) Layout() rst2htmldeco.SiteLayout {
	menu := make([]rst2htmldeco.NavLink, len(c.Nav))
	for i, item := range c.Nav {
		menu[i] = rst2htmldeco.NavLink{Title: item.Title, Href: item.Href}
	}
	return rst2htmldeco.SiteLayout{
		Site: rst2htmldeco.Site{
			Name:    c.Site.Name,
			Tagline: c.Site.Tagline,
			Logo:    c.Site.Logo,
			Home:    c.Site.Home,
		},
		Menu: menu,
		Copyright: rst2htmldeco.Copyright{
			Holder:        c.Footer.Holder,
			Since:         c.Footer.Since,
			CopyrightPage: c.Footer.CopyrightPage,
			Text:          c.Footer.Text,
		},
	}
}

// Validate checks field lengths and cross-field constraints.
// Called by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.tagline", c.Site.Tagline, MaxTaglineLength},
		{"site.logo", c.Site.Logo, MaxURLLength},
		{"site.home", c.Site.Home, MaxURLLength},
		{"footer.holder", c.Footer.Holder, MaxNameLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"footer.copyrightPage", c.Footer.CopyrightPage, MaxURLLength},
		{"render.command", c.Render.Command, MaxCommandLength},
		{"render.urlPrefix", c.Render.URLPrefix, MaxURLLength},
		{"render.embedStylesheet", c.Render.EmbedStylesheet, MaxURLLength},
		{"render.linkStylesheet", c.Render.LinkStylesheet, MaxURLLength},
		{"render.codeStyle", c.Render.CodeStyle, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxURLLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}

	if len(c.Nav) > MaxNavItems {
		return fmt.Errorf("%w: nav has %d items (max %d)", ErrInvalidField, len(c.Nav), MaxNavItems)
	}
	for i, item := range c.Nav {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("%w: nav[%d].title is empty", ErrInvalidField, i)
		}
		if strings.TrimSpace(item.Href) == "" {
			return fmt.Errorf("%w: nav[%d].href is empty", ErrInvalidField, i)
		}
		if err := validateFieldLength(fmt.Sprintf("nav[%d].title", i), item.Title, MaxTitleLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("nav[%d].href", i), item.Href, MaxURLLength); err != nil {
			return err
		}
	}

	if c.Footer.Since != 0 && (c.Footer.Since < 1900 || c.Footer.Since > 9999) {
		return fmt.Errorf("%w: footer.since must be a four-digit year, got %d", ErrInvalidField, c.Footer.Since)
	}

	if c.Render.EmbedStylesheet != "" && c.Render.LinkStylesheet != "" {
		return ErrStylesheetConflict
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator or ending in .yaml/.yml is a file
// path; otherwise it is a name searched by SearchPaths. Values from the file replace the defaults field by
// field; a nav list in the file replaces the default menu entirely.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if cfg.Render.Command == "" {
		cfg.Render.Command = DefaultRenderCommand
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// isFilePath returns true if the string looks like a file path: it has a
// directory separator or a YAML extension.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
