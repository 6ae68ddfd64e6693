// Package parser turns raw document bytes into text with page boundaries.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/common"
)

// Page is one page of parsed text with its character span in the full text.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
	CharStart  int    `json:"char_start"`
	CharEnd    int    `json:"char_end"`
}

// ParsedDocument is the parser output consumed by the chunker and classifier.
type ParsedDocument struct {
	Text     string            `json:"text"`
	Pages    []Page            `json:"pages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Parser extracts text from PDF bytes. Image input is an intentional
// non-goal: callers get ErrNotImplemented and must handle it.
type Parser struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// Parse extracts text and page boundaries from document bytes.
func (p *Parser) Parse(data []byte, declaredMimeType string) (*ParsedDocument, error) {
	format := constants.MapMimeToFormat(declaredMimeType)
	if format == "" {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, declaredMimeType)
	}
	return p.ParseFormat(data, format)
}

// ParseFormat is Parse for callers that already hold the canonical format
// ("PDF", "IMAGE") instead of a mime type.
func (p *Parser) ParseFormat(data []byte, format string) (*ParsedDocument, error) {
	switch format {
	case "PDF":
		return p.parsePDF(data)
	case "IMAGE":
		return nil, fmt.Errorf("%w: image OCR is not built", common.ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, format)
	}
}

func (p *Parser) parsePDF(data []byte) (*ParsedDocument, error) {
	rs := bytes.NewReader(data)
	conf := model.NewDefaultConfiguration()

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}
	pageCount := ctx.PageCount
	if pageCount < 1 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	pageTexts := make([]string, 0, pageCount)
	perPageOK := true
	for n := 1; n <= pageCount; n++ {
		r, err := pdfcpu.ExtractPageContent(ctx, n)
		if err != nil || r == nil {
			p.log.Warn("parser.page_content_unavailable", "page", n, "error", err)
			perPageOK = false
			break
		}
		raw, err := io.ReadAll(r)
		if err != nil {
			perPageOK = false
			break
		}
		pageTexts = append(pageTexts, decodeContentText(raw))
	}

	doc := &ParsedDocument{
		Metadata: map[string]string{
			"page_count": fmt.Sprintf("%d", pageCount),
		},
	}

	if perPageOK {
		var b strings.Builder
		for i, pt := range pageTexts {
			start := b.Len()
			b.WriteString(pt)
			doc.Pages = append(doc.Pages, Page{
				PageNumber: i + 1,
				Text:       pt,
				CharStart:  start,
				CharEnd:    b.Len(),
			})
		}
		doc.Text = b.String()
		return doc, nil
	}

	// Per-page boundaries unavailable: concatenate whatever was decoded and
	// divide the total length evenly across the reported page count.
	full := strings.Join(pageTexts, "")
	doc.Text = full
	doc.Pages = SplitEvenly(full, pageCount)
	return doc, nil
}

// SplitEvenly divides text into pageCount approximate pages of equal
// character length. Used when the extraction library does not expose
// per-page boundaries; downstream code must tolerate this.
func SplitEvenly(text string, pageCount int) []Page {
	if pageCount < 1 {
		pageCount = 1
	}
	pages := make([]Page, 0, pageCount)
	total := len(text)
	per := (total + pageCount - 1) / pageCount
	if per == 0 {
		per = 1
	}
	for i := 0; i < pageCount; i++ {
		start := i * per
		if start > total {
			start = total
		}
		end := start + per
		if end > total {
			end = total
		}
		pages = append(pages, Page{
			PageNumber: i + 1,
			Text:       text[start:end],
			CharStart:  start,
			CharEnd:    end,
		})
	}
	return pages
}

// PageForOffset returns the page number bracketing a character offset.
func PageForOffset(pages []Page, offset int) int {
	for _, pg := range pages {
		if offset >= pg.CharStart && offset < pg.CharEnd {
			return pg.PageNumber
		}
	}
	if len(pages) > 0 && offset >= pages[len(pages)-1].CharEnd {
		return pages[len(pages)-1].PageNumber
	}
	return 1
}

// decodeContentText pulls the text-show operands (Tj, TJ, ' and ") out of a
// raw PDF content stream. It ignores font encodings, so the result is
// approximate; good enough for keyword scoring and LLM extraction.
func decodeContentText(content []byte) string {
	var b strings.Builder
	inString := false
	escaped := false
	depth := 0
	var cur strings.Builder

	flush := func() {
		s := cur.String()
		cur.Reset()
		if strings.TrimSpace(s) == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte(' ')
	}

	for i := 0; i < len(content); i++ {
		c := content[i]
		if inString {
			if escaped {
				switch c {
				case 'n':
					cur.WriteByte('\n')
				case 't':
					cur.WriteByte('\t')
				case 'r', 'f', 'b':
					cur.WriteByte(' ')
				default:
					cur.WriteByte(c)
				}
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '(':
				depth++
				cur.WriteByte(c)
			case ')':
				if depth == 0 {
					inString = false
					flush()
				} else {
					depth--
					cur.WriteByte(c)
				}
			default:
				cur.WriteByte(c)
			}
			continue
		}
		if c == '(' {
			inString = true
			depth = 0
		}
	}
	return strings.TrimSpace(b.String())
}
