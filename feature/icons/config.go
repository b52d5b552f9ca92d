package icons

import "path/filepath"

// DefaultOutputName is the filename of the consolidated document inside Dir.
const DefaultOutputName = "icons.json"

// Config holds the locations and thresholds of the combine job.
type Config struct {
	// Dir is the directory holding the snapshots, the catalog and the alternatives file.
	Dir string `mapstructure:"dir" default:"icon-data"`
	// Output is the path of the consolidated document. Empty means Dir/icons.json.
	Output string `mapstructure:"output" default:""`
	// CatalogFile is the Lucide metadata catalog filename inside Dir.
	CatalogFile string `mapstructure:"catalog_file" default:"lucide-icons.json"`
	// AlternativesFile is the optional manual alternatives filename inside Dir.
	AlternativesFile string `mapstructure:"alternatives_file" default:"alternatives.json"`
	// NewVersion marks every icon first seen at or after this version as new.
	NewVersion string `mapstructure:"new_version" default:"1.7.7"`
	// SourcePrefix is stripped from icon ids before catalog lookup.
	SourcePrefix string `mapstructure:"source_prefix" default:"lucide-"`
}

// OutputPath returns the resolved output path.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.Dir, DefaultOutputName)
}

// CatalogPath returns the path of the catalog file.
func (c Config) CatalogPath() string {
	return filepath.Join(c.Dir, c.CatalogFile)
}

// AlternativesPath returns the path of the manual alternatives file.
func (c Config) AlternativesPath() string {
	return filepath.Join(c.Dir, c.AlternativesFile)
}
