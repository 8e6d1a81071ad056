// Package extract turns uploaded documents (PDF, DOCX, plain text) into
// normalized lowercase text suitable for matching.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Format identifies one of the supported document formats
type Format int

// Supported formats. Unknown extensions fall through to FormatPlainText,
// which attempts byte decoding with a prioritized encoding list.
const (
	FormatPlainText Format = iota
	FormatPDF
	FormatDOCX
)

// DetectFormat selects a parser based on the declared filename extension
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		// .txt, .doc and anything else are parsed as text
		return FormatPlainText
	}
}

// Warning records a section of a document that failed to parse and was
// skipped. Warnings never abort the overall extraction.
type Warning struct {
	Section string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Section, w.Err)
}

// Result holds the extracted text in its three usable forms
type Result struct {
	Raw       string    // pre-normalization text, used for the candidate-name heuristic
	Text      string    // normalized text for similarity scoring
	MatchText string    // normalized text with abbreviations expanded, for skill matching
	Warnings  []Warning // sections that were skipped during extraction
}

// Extract produces normalized text from a document. Per-section failures
// are reported as warnings on the result; an error is returned only when
// the document cannot be parsed at all.
func Extract(doc types.Document) (*Result, error) {
	var (
		raw   string
		warns []Warning
		err   error
	)

	switch DetectFormat(doc.Filename) {
	case FormatPDF:
		raw, warns, err = extractPDF(doc.Data)
	case FormatDOCX:
		raw, warns, err = extractDOCX(doc.Data)
	default:
		raw = decodePlainText(doc.Data)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Raw:       raw,
		Text:      Normalize(raw),
		MatchText: NormalizeForMatching(raw),
		Warnings:  warns,
	}, nil
}

// extractPDF concatenates page text with separators, skipping pages that
// fail to parse
func extractPDF(data []byte) (string, []Warning, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	var warns []Warning
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			warns = append(warns, Warning{Section: fmt.Sprintf("page %d", i), Err: errors.New("missing page object")})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			warns = append(warns, Warning{Section: fmt.Sprintf("page %d", i), Err: err})
			continue
		}
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String(), warns, nil
}

var (
	docxTableRe = regexp.MustCompile(`(?s)<w:tbl(?:>| [^>]*>).*?</w:tbl>`)
	// text runs plus the structural closers that become separators
	docxTokenRe = regexp.MustCompile(`(?s)<w:t(?:>| [^>]*>)(.*?)</w:t>|</w:p>|</w:tr>|</w:tc>`)
)

// extractDOCX concatenates paragraph text, then table-cell text in
// row-major order, then header/footer paragraphs
func extractDOCX(data []byte) (string, []Warning, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer d.Close()

	content := d.Editable().GetContent()

	var b strings.Builder
	tables := docxTableRe.FindAllString(content, -1)
	body := docxTableRe.ReplaceAllString(content, "")
	b.WriteString(docxXMLText(body))
	for _, table := range tables {
		b.WriteString("\n")
		b.WriteString(docxXMLText(table))
	}

	// The docx library does not expose header/footer parts, read them
	// straight from the archive
	hf, warns := docxHeadersFooters(data)
	if hf != "" {
		b.WriteString("\n")
		b.WriteString(hf)
	}

	return b.String(), warns, nil
}

// docxXMLText flattens WordprocessingML into plain text: text runs are
// kept, paragraph and row ends become newlines, cell ends become spaces
func docxXMLText(xml string) string {
	var b strings.Builder
	for _, match := range docxTokenRe.FindAllStringSubmatchIndex(xml, -1) {
		if match[2] >= 0 {
			b.WriteString(html.UnescapeString(xml[match[2]:match[3]]))
			continue
		}
		token := xml[match[0]:match[1]]
		if token == "</w:tc>" {
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// docxHeadersFooters pulls paragraph text out of word/header*.xml and
// word/footer*.xml. A part that cannot be read is skipped with a warning.
func docxHeadersFooters(data []byte) (string, []Warning) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", []Warning{{Section: "headers/footers", Err: err}}
	}

	var parts []*zip.File
	for _, f := range zr.File {
		name := f.Name
		if strings.HasSuffix(name, ".xml") &&
			(strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")) {
			parts = append(parts, f)
		}
	}
	// headers before footers, stable within each group
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	var b strings.Builder
	var warns []Warning
	for _, f := range parts {
		rc, err := f.Open()
		if err != nil {
			warns = append(warns, Warning{Section: f.Name, Err: err})
			continue
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		rc.Close()
		if err != nil {
			warns = append(warns, Warning{Section: f.Name, Err: err})
			continue
		}
		text := docxXMLText(buf.String())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String(), warns
}

// plainTextCharmaps are tried in order after UTF-8 validation fails
var plainTextCharmaps = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// decodePlainText decodes bytes using a prioritized list of encodings,
// keeping the first that decodes cleanly. If none do, it decodes
// permissively, replacing undecodable bytes.
func decodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	for _, cm := range plainTextCharmaps {
		if decoded, err := cm.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
			return string(decoded)
		}
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
