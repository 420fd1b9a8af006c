package assets

// Names of the bundled assets.
const (
	// TemplateName is the XSLT report template.
	TemplateName = "Trxer.xslt"

	// SchemaName is the XML Schema used to check TRX input.
	SchemaName = "trx.xsd"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// Load reads a bundled asset by name using the default embedded loader.
// Returns ErrAssetNotFound if the asset does not exist.
func Load(name string) ([]byte, error) {
	return defaultLoader.Load(name)
}

// LoadText reads a bundled asset as text using the default embedded loader.
func LoadText(name string) (string, error) {
	return defaultLoader.LoadText(name)
}
