package config

// Configfile represents the structure of the optional config.yaml file.
// Unset fields keep their defaults.
type Configfile struct {
	ToolURL         string   `yaml:"tool_url"`
	ToolSHA256      string   `yaml:"tool_sha256"`
	Query           []string `yaml:"query"`
	DownloadTimeout string   `yaml:"download_timeout"`
	QueryTimeout    string   `yaml:"query_timeout"`
}
