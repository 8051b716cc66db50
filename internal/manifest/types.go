package manifest

// Batch is a parsed batch manifest.
type Batch struct {
	Version            string    `yaml:"version" json:"version"`
	Host               string    `yaml:"host" json:"host"`
	Template           string    `yaml:"template" json:"template"`
	OutputDir          string    `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	MapName            string    `yaml:"map_name,omitempty" json:"map_name,omitempty"`
	Markers            *Markers  `yaml:"markers,omitempty" json:"markers,omitempty"`
	Exclude            string    `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	InjectScoreLogging bool      `yaml:"inject_score_logging,omitempty" json:"inject_score_logging,omitempty"`
	Force              bool      `yaml:"force,omitempty" json:"force,omitempty"`
	Chapters           []Chapter `yaml:"chapters" json:"chapters"`

	// Dir is the directory holding the manifest. Relative paths in the
	// manifest are resolved against it.
	Dir string `yaml:"-" json:"-"`
}

// Markers are the sentinel lines bounding the navigation map.
type Markers struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Chapter is one quiz page to generate.
type Chapter struct {
	Label string `yaml:"label" json:"label"`
	Table string `yaml:"table,omitempty" json:"table,omitempty"`
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}
