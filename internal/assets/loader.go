package assets

// Fragment template names.
const (
	NavTemplate    = "nav"
	BannerTemplate = "banner"
	FooterTemplate = "footer"
)

// TemplateLoader defines the contract for loading fragment templates.
type TemplateLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
