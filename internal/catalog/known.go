package catalog

// knownBases is scanned in order; the first entry whose IDPrefix is a
// prefix of the raw identifier wins. The last entry has an empty prefix
// so the scan always succeeds.
var knownBases = []KnownBase{
	{
		IDPrefix:      "gpt-4-32k",
		Label:         "GPT-4-32",
		ContextWindow: 32768,
		Description:   "GPT-4 with a 32k token context window",
	},
	{
		IDPrefix:      "gpt-4",
		Label:         "GPT-4",
		ContextWindow: 8192,
		Description:   "More capable than any GPT-3.5 model, able to follow complex instructions",
	},
	{
		IDPrefix:      "gpt-3.5-turbo-16k",
		Label:         "GPT-3.5 Turbo 16k",
		ContextWindow: 16385,
		Description:   "GPT-3.5 Turbo with an extended 16k token context window",
	},
	{
		IDPrefix:      "gpt-3.5-turbo",
		Label:         "GPT-3.5 Turbo",
		ContextWindow: 4097,
		Description:   "Fast and inexpensive model for most chat use cases",
	},
	{
		IDPrefix:      "",
		Label:         "GPT-3.5",
		ContextWindow: 4097,
		Description:   "Legacy or unrecognized model served through the completions API",
	},
}

// KnownBases returns the ordered lookup table.
func KnownBases() []KnownBase {
	return knownBases
}
