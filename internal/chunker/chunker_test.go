package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/parser"
)

func docFromPages(pageTexts ...string) *parser.ParsedDocument {
	doc := &parser.ParsedDocument{}
	offset := 0
	for i, txt := range pageTexts {
		doc.Pages = append(doc.Pages, parser.Page{
			PageNumber: i + 1,
			Text:       txt,
			CharStart:  offset,
			CharEnd:    offset + len(txt),
		})
		offset += len(txt)
	}
	doc.Text = strings.Join(pageTexts, "")
	return doc
}

func TestByPagesRoundTrip(t *testing.T) {
	doc := docFromPages("first page text", "second page text", "third")

	chunks, err := ChunkDocument(doc, constants.ChunkByPages, Config{})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Text != doc.Pages[i].Text {
			t.Errorf("chunk %d text mismatch: %q", i, c.Text)
		}
		if c.Metadata.StartPage != i+1 || c.Metadata.EndPage != i+1 {
			t.Errorf("chunk %d page span = %d..%d, want %d", i, c.Metadata.StartPage, c.Metadata.EndPage, i+1)
		}
	}
}

func TestByPagesIsDefault(t *testing.T) {
	doc := docFromPages("page one")
	chunks, err := ChunkDocument(doc, "", Config{})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Text != "page one" {
		t.Errorf("unexpected chunks: %+v", chunks)
	}
}

func TestFixedTokensStrideAndFinalChunk(t *testing.T) {
	text := strings.Repeat("x", 10000)
	doc := &parser.ParsedDocument{
		Text:  text,
		Pages: parser.SplitEvenly(text, 4),
	}

	chunks, err := ChunkDocument(doc, constants.ChunkFixedTokens, Config{ChunkSize: 500, Overlap: 50})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}

	// width 2000 chars, step 1800 chars.
	if len(chunks) == 0 {
		t.Fatal("no chunks produced")
	}
	for i, c := range chunks {
		wantStart := i * 1800
		if c.Metadata.CharStart != wantStart {
			t.Errorf("chunk %d starts at %d, want %d", i, c.Metadata.CharStart, wantStart)
		}
		if len(c.Text) > 2000 {
			t.Errorf("chunk %d longer than width: %d", i, len(c.Text))
		}
	}
	last := chunks[len(chunks)-1]
	if last.Metadata.CharEnd != len(text) {
		t.Errorf("final chunk ends at %d, want %d", last.Metadata.CharEnd, len(text))
	}

	// Consecutive chunks overlap by 200 chars.
	if len(chunks) > 1 {
		overlap := chunks[0].Metadata.CharEnd - chunks[1].Metadata.CharStart
		if overlap != 200 {
			t.Errorf("overlap = %d chars, want 200", overlap)
		}
	}
}

func TestFixedTokensRejectsOverlapGTESize(t *testing.T) {
	doc := docFromPages("some text")

	if _, err := ChunkDocument(doc, constants.ChunkFixedTokens, Config{ChunkSize: 100, Overlap: 100}); err == nil {
		t.Error("expected error for overlap == size")
	}
	if _, err := ChunkDocument(doc, constants.ChunkFixedTokens, Config{ChunkSize: 100, Overlap: 150}); err == nil {
		t.Error("expected error for overlap > size")
	}
}

func TestFixedTokensDefaults(t *testing.T) {
	text := strings.Repeat("y", 5000)
	doc := &parser.ParsedDocument{Text: text, Pages: parser.SplitEvenly(text, 1)}

	chunks, err := ChunkDocument(doc, constants.ChunkFixedTokens, Config{})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}
	// Default 1000 tokens -> 4000 chars width.
	if len(chunks[0].Text) != 4000 {
		t.Errorf("first chunk is %d chars, want 4000", len(chunks[0].Text))
	}
}

func TestHeadingsSplitsOnBlankLines(t *testing.T) {
	text := "SECTION ONE\nbody text\n\nSECTION TWO\nmore body\n\n\n\nSECTION THREE"
	doc := &parser.ParsedDocument{Text: text, Pages: parser.SplitEvenly(text, 1)}

	chunks, err := ChunkDocument(doc, constants.ChunkHeadings, Config{})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(chunks), chunks)
	}
	if !strings.HasPrefix(chunks[0].Text, "SECTION ONE") {
		t.Errorf("unexpected first section: %q", chunks[0].Text)
	}
	if !strings.HasPrefix(chunks[2].Text, "SECTION THREE") {
		t.Errorf("unexpected last section: %q", chunks[2].Text)
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	doc := docFromPages("text")
	if _, err := ChunkDocument(doc, "semantic", Config{}); err == nil {
		t.Error("expected error for unknown chunking method")
	}
}

func TestFixedTokensKeepsRuneBoundaries(t *testing.T) {
	// 3-byte runes so the byte-based width (chunkSize*4) lands mid-rune.
	doc := docFromPages(strings.Repeat("文", 3000))

	chunks, err := ChunkDocument(doc, constants.ChunkFixedTokens, Config{ChunkSize: 500, Overlap: 50})
	if err != nil {
		t.Fatalf("ChunkDocument: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c.Text) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
	}
	last := chunks[len(chunks)-1]
	if last.Metadata.CharEnd != len(doc.Text) {
		t.Errorf("final CharEnd = %d, want %d", last.Metadata.CharEnd, len(doc.Text))
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Metadata.CharStart > chunks[i-1].Metadata.CharEnd {
			t.Errorf("gap between chunk %d and %d", i-1, i)
		}
	}
}
