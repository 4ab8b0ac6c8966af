package schema

// Config holds configuration for schema loading.
type Config struct {
	// File is the path to the YAML schema file.
	File string `mapstructure:"file" default:"schema.yaml"`
}
