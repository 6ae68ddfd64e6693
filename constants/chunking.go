package constants

// ChunkingMethod selects the chunker strategy for a run.
type ChunkingMethod string

const (
	ChunkByPages     ChunkingMethod = "by_pages"
	ChunkFixedTokens ChunkingMethod = "fixed_tokens"
	ChunkHeadings    ChunkingMethod = "headings"
)

// ChunkingMethods lists the valid chunking strategies.
var ChunkingMethods = []string{
	string(ChunkByPages),
	string(ChunkFixedTokens),
	string(ChunkHeadings),
}
