package types

// HistoryPolicy decides when a dispatched query is handed to the history sink.
type HistoryPolicy string

const (
	// HistoryMatched records a query only when its strategy produced at least
	// one reference.
	HistoryMatched HistoryPolicy = "matched"

	// HistoryRecognized records reference, chapter and book queries as soon
	// as their shape is recognised, even if the lookup then fails. Keyword
	// queries are still recorded only on a non-empty result.
	HistoryRecognized HistoryPolicy = "recognized"
)

// Valid reports whether p is a known policy.
func (p HistoryPolicy) Valid() bool {
	return p == HistoryMatched || p == HistoryRecognized
}

// CorpusConfig locates the verse text file.
type CorpusConfig struct {
	// Path is the text file with one "Book C:V text" verse per line.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// SearchConfig holds settings for the query engine.
type SearchConfig struct {
	// HistoryPolicy selects when queries are recorded (default "matched").
	HistoryPolicy HistoryPolicy `json:"history_policy" yaml:"history_policy" mapstructure:"history_policy"`
}

// LibraryConfig holds settings for the history and bookmark store.
type LibraryConfig struct {
	// DataDir contains library.db (default ~/.local/share/bible-search).
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// HistoryLimit is the default number of history entries shown (0 = all).
	HistoryLimit int `json:"history_limit" yaml:"history_limit" mapstructure:"history_limit"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error (default "warn").
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default "console").
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every section of bible-search.yaml.
type Config struct {
	Corpus  CorpusConfig  `json:"corpus" yaml:"corpus" mapstructure:"corpus"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Library LibraryConfig `json:"library" yaml:"library" mapstructure:"library"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
