// Package chunker splits parsed documents into bounded text units for
// extraction.
package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/parser"
)

// Token estimate: one token per four characters.
const charsPerToken = 4

// Defaults applied when run settings leave chunk sizing unset.
const (
	DefaultChunkSize = 1000 // tokens
	DefaultOverlap   = 100  // tokens
)

// Chunk is one bounded unit of document text.
type Chunk struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata locates a chunk within the source document.
type ChunkMetadata struct {
	StartPage int `json:"start_page,omitempty"`
	EndPage   int `json:"end_page,omitempty"`
	CharStart int `json:"char_start"`
	CharEnd   int `json:"char_end"`
}

// Config tunes the fixed_tokens strategy; the other strategies ignore it.
type Config struct {
	ChunkSize int // tokens
	Overlap   int // tokens
}

// Chunk splits doc using the given strategy, defaulting to by_pages.
func ChunkDocument(doc *parser.ParsedDocument, method constants.ChunkingMethod, cfg Config) ([]Chunk, error) {
	switch method {
	case constants.ChunkFixedTokens:
		return fixedTokens(doc, cfg)
	case constants.ChunkHeadings:
		return headings(doc), nil
	case constants.ChunkByPages, "":
		return byPages(doc), nil
	default:
		return nil, fmt.Errorf("unknown chunking method %q", method)
	}
}

// byPages emits one chunk per parsed page, verbatim.
func byPages(doc *parser.ParsedDocument) []Chunk {
	chunks := make([]Chunk, 0, len(doc.Pages))
	for _, pg := range doc.Pages {
		chunks = append(chunks, Chunk{
			ID:   fmt.Sprintf("page-%d", pg.PageNumber),
			Text: pg.Text,
			Metadata: ChunkMetadata{
				StartPage: pg.PageNumber,
				EndPage:   pg.PageNumber,
				CharStart: pg.CharStart,
				CharEnd:   pg.CharEnd,
			},
		})
	}
	return chunks
}

// fixedTokens cuts chunkSize*4 characters per chunk, advancing by
// (chunkSize-overlap)*4 characters each step.
func fixedTokens(doc *parser.ParsedDocument, cfg Config) ([]Chunk, error) {
	size := cfg.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := cfg.Overlap
	if overlap < 0 {
		overlap = 0
	}

	step := (size - overlap) * charsPerToken
	if step <= 0 {
		return nil, fmt.Errorf("invalid chunk config: overlap %d >= chunk size %d", overlap, size)
	}
	width := size * charsPerToken

	text := doc.Text
	var chunks []Chunk
	for start, i := 0, 0; start < len(text); i++ {
		end := start + width
		if end >= len(text) {
			end = len(text)
		} else {
			// Offsets are byte-based; never cut a multi-byte rune in half.
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
		}
		chunks = append(chunks, Chunk{
			ID:   fmt.Sprintf("chunk-%d", i),
			Text: text[start:end],
			Metadata: ChunkMetadata{
				StartPage: parser.PageForOffset(doc.Pages, start),
				EndPage:   parser.PageForOffset(doc.Pages, end-1),
				CharStart: start,
				CharEnd:   end,
			},
		})
		if end == len(text) {
			break
		}
		start += step
		for start < len(text) && !utf8.RuneStart(text[start]) {
			start++
		}
	}
	return chunks, nil
}

// headings splits on blank-line-delimited paragraphs as a stand-in for true
// heading detection.
func headings(doc *parser.ParsedDocument) []Chunk {
	text := doc.Text
	var chunks []Chunk
	offset := 0
	i := 0
	for _, para := range strings.Split(text, "\n\n") {
		start := offset
		end := start + len(para)
		offset = end + 2 // the delimiter
		if strings.TrimSpace(para) == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			ID:   fmt.Sprintf("section-%d", i),
			Text: para,
			Metadata: ChunkMetadata{
				StartPage: parser.PageForOffset(doc.Pages, start),
				EndPage:   parser.PageForOffset(doc.Pages, end-1),
				CharStart: start,
				CharEnd:   end,
			},
		})
		i++
	}
	return chunks
}
