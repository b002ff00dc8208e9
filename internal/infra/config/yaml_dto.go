package config

type YAMLConfig struct {
	Wordfreq YAMLWordfreq `yaml:"wordfreq"`
}

type YAMLWordfreq struct {
	Input  YAMLInput  `yaml:"input"`
	Output YAMLOutput `yaml:"output"`
}

type YAMLInput struct {
	Default string `yaml:"default"`
}

type YAMLOutput struct {
	Format   string `yaml:"format"`
	Progress *bool  `yaml:"progress"`
}
