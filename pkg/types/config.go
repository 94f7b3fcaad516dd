package types

// OutputFormat selects the serialization format for CLI output.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// CatalogConfig holds settings for the result catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the catalog database
	// (contains qcdecode.db).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
