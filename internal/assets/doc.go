// Package assets provides the HTML templates for the banner, navigation menu
// and footer injected into every rendered page.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in fragments)
//	    ├── FilesystemLoader  - loads from a site directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// A site overrides only the fragments it needs: a directory holding just
// footer.html keeps the built-in banner and navigation menu.
//
// # Directory Structure
//
//	{basePath}/
//	├── banner.html
//	├── nav.html
//	└── footer.html
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
