package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "endpoint", Default: "", Comment: "generateContent URL, including ?key=<api key> when the provider needs one"},
		{Key: "renderer", Default: "lines", Comment: "Answer renderer: lines (## headings, one paragraph per line) or markdown"},
		{Key: "output", Default: "plain", Comment: "Default output of `ask`: plain, pretty, json, ndjson or tui"},

		{Key: "ui.style", Default: "dark", Comment: "Glamour style used by pretty output"},
		{Key: "ui.word_wrap", Default: 80, Comment: "Wrap width for pretty output"},

		{Key: "log.file", Default: defaultLogFile(), Comment: "Log destination; \"-\" logs to stderr"},
		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn or error"},
	}
}
