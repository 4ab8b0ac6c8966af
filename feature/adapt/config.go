package adapt

// Config holds configuration for the batch adapter.
type Config struct {
	// InputDir is the directory scanned for input CSV files.
	InputDir string `mapstructure:"input_dir" default:"input_files"`
	// OutputDir is where adapted files are written (directory sink).
	OutputDir string `mapstructure:"output_dir" default:"valid_files"`
	// InvalidDir is where files that cannot be adapted are copied to.
	InvalidDir string `mapstructure:"invalid_dir" default:"invalid_files"`
	// Sink selects the output target (directory, storage).
	Sink string `mapstructure:"sink" default:"directory"`
}

const (
	SinkDirectory = "directory"
	SinkStorage   = "storage"
)

// IsValidSink checks if the configured sink is valid.
func (c Config) IsValidSink() bool {
	switch c.Sink {
	case SinkDirectory, SinkStorage:
		return true
	default:
		return false
	}
}
