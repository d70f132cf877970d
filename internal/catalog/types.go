package catalog

// KnownBase describes a family of models sharing a display label,
// description, and context window. Bases are matched against raw
// provider identifiers by literal prefix.
type KnownBase struct {
	IDPrefix      string
	Label         string
	ContextWindow int
	Description   string
}

// GenerateOptions holds the per-model defaults sent back to the provider
// on inference calls.
type GenerateOptions struct {
	Model       string  `json:"model" yaml:"model"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
}

// Model is a normalized model record. ID is unique within the process
// because the source ID is unique per configured provider instance.
type Model struct {
	ID            string          `json:"id" yaml:"id"`
	Label         string          `json:"label" yaml:"label"`
	CreatedAt     int64           `json:"created_at" yaml:"created_at"`
	Description   string          `json:"description" yaml:"description"`
	Tags          []string        `json:"tags" yaml:"tags"`
	ContextWindow int             `json:"context_window" yaml:"context_window"`
	Hidden        bool            `json:"hidden" yaml:"hidden"`
	SourceID      string          `json:"source_id" yaml:"source_id"`
	Options       GenerateOptions `json:"options" yaml:"options"`
}
