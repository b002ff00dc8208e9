package domain

// DefaultInputPath is read when no usable path is given on the command line.
const DefaultInputPath = "data/input.txt"

// Config is the wordfreq configuration loaded from wordfreq.yaml.
type Config struct {
	Input  InputConfig
	Output OutputConfig
}

type InputConfig struct {
	DefaultPath string
}

type OutputConfig struct {
	Format   string
	Progress bool
}

// DefaultConfig provides the values used when wordfreq.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			DefaultPath: DefaultInputPath,
		},
		Output: OutputConfig{
			Format:   "pretty",
			Progress: false,
		},
	}
}
