// Package catalog turns raw provider model identifiers into normalized
// model records using a static table of known model families.
package catalog

import (
	"math"
	"strings"
)

// Tags every model from an OpenAI-compatible source carries. Capability
// metadata reported by the provider is ignored.
var defaultTags = []string{"stream", "chat"}

const defaultTemperature = 0.5

// Normalize maps a raw model identifier to a model record. It is total:
// the trailing empty-prefix entry of the known-base table matches any
// identifier, so a complete record is always returned.
//
// Identifiers with trailing text beyond the matched prefix are treated as
// dated or variant snapshots and marked hidden; they stay addressable by
// exact ID but are suppressed from primary selection lists.
func Normalize(rawID string, created int64, sourceID string) Model {
	base := matchBase(rawID)

	suffix := strings.TrimSpace(strings.TrimPrefix(rawID, base.IDPrefix))
	label := base.Label
	if suffix != "" {
		label = strings.TrimSpace(label + " (" + strings.TrimSpace(strings.ReplaceAll(suffix, "-", " ")) + ")")
	}

	return Model{
		ID:            sourceID + "-" + rawID,
		Label:         label,
		CreatedAt:     created,
		Description:   base.Description,
		Tags:          defaultTags,
		ContextWindow: base.ContextWindow,
		Hidden:        suffix != "",
		SourceID:      sourceID,
		Options: GenerateOptions{
			Model:       rawID,
			Temperature: defaultTemperature,
			MaxTokens:   int(math.Round(float64(base.ContextWindow) / 8)),
		},
	}
}

// matchBase returns the first known base whose prefix matches rawID.
// Matching is literal, not semantic: an identifier equal to a prefix
// yields an empty suffix.
func matchBase(rawID string) KnownBase {
	for _, base := range knownBases {
		if strings.HasPrefix(rawID, base.IDPrefix) {
			return base
		}
	}
	// Unreachable while the table keeps its empty-prefix fallback.
	return knownBases[len(knownBases)-1]
}
