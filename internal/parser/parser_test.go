package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/veridoc-ai/veridoc/internal/common"
)

func TestParseRejectsUnsupportedMime(t *testing.T) {
	p := New(nil)
	_, err := p.Parse([]byte("hello"), "text/plain")
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseImageNotImplemented(t *testing.T) {
	p := New(nil)
	_, err := p.Parse([]byte{0xFF, 0xD8}, "image/jpeg")
	if !errors.Is(err, common.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestParseFormatDispatch(t *testing.T) {
	p := New(nil)
	if _, err := p.ParseFormat(nil, "IMAGE"); !errors.Is(err, common.ErrNotImplemented) {
		t.Errorf("IMAGE: expected ErrNotImplemented, got %v", err)
	}
	if _, err := p.ParseFormat(nil, "DOCX"); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("DOCX: expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseMalformedPDF(t *testing.T) {
	p := New(nil)
	if _, err := p.Parse([]byte("not a pdf at all"), "application/pdf"); err == nil {
		t.Error("expected error for malformed PDF bytes")
	}
}

func TestSplitEvenly(t *testing.T) {
	text := strings.Repeat("a", 100)
	pages := SplitEvenly(text, 4)
	if len(pages) != 4 {
		t.Fatalf("expected 4 pages, got %d", len(pages))
	}
	var rebuilt strings.Builder
	prevEnd := 0
	for i, pg := range pages {
		if pg.PageNumber != i+1 {
			t.Errorf("page %d numbered %d", i, pg.PageNumber)
		}
		if pg.CharStart != prevEnd {
			t.Errorf("page %d starts at %d, want %d", i, pg.CharStart, prevEnd)
		}
		prevEnd = pg.CharEnd
		rebuilt.WriteString(pg.Text)
	}
	if rebuilt.String() != text {
		t.Error("pages do not reassemble the original text")
	}
}

func TestSplitEvenlyUnevenRemainder(t *testing.T) {
	pages := SplitEvenly(strings.Repeat("b", 10), 3)
	// ceil(10/3) = 4, so 4+4+2.
	if pages[0].CharEnd != 4 || pages[1].CharEnd != 8 || pages[2].CharEnd != 10 {
		t.Errorf("unexpected boundaries: %+v", pages)
	}
}

func TestSplitEvenlyDegenerateInputs(t *testing.T) {
	pages := SplitEvenly("abc", 0)
	if len(pages) != 1 || pages[0].Text != "abc" {
		t.Errorf("pageCount 0 should clamp to one page: %+v", pages)
	}

	pages = SplitEvenly("", 2)
	if len(pages) != 2 {
		t.Errorf("empty text still yields the reported page count: %+v", pages)
	}
}

func TestPageForOffset(t *testing.T) {
	pages := SplitEvenly(strings.Repeat("c", 100), 4) // 25 chars per page

	cases := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{99, 4},
		{150, 4}, // past the end clamps to the last page
	}
	for _, tc := range cases {
		if got := PageForOffset(pages, tc.offset); got != tc.want {
			t.Errorf("PageForOffset(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}

	if got := PageForOffset(nil, 10); got != 1 {
		t.Errorf("no pages should default to 1, got %d", got)
	}
}
