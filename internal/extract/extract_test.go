package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"resume.pdf", FormatPDF},
		{"resume.PDF", FormatPDF},
		{"resume.docx", FormatDOCX},
		{"Resume.DocX", FormatDOCX},
		{"resume.txt", FormatPlainText},
		{"resume.doc", FormatPlainText},
		{"resume", FormatPlainText},
		{"archive.tar.pdf", FormatPDF},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.filename))
		})
	}
}

func TestExtract_PlainText(t *testing.T) {
	doc := types.Document{
		Filename: "resume.txt",
		Data:     []byte("John Smith\nPython and Machine Learning experience"),
	}

	res, err := Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "John Smith\nPython and Machine Learning experience", res.Raw)
	assert.Equal(t, "john smith python and machine_learning experience", res.Text)
	assert.Equal(t, "john smith python and machine_learning experience", res.MatchText)
	assert.Empty(t, res.Warnings)
}

func TestExtract_PlainTextLatin1(t *testing.T) {
	// "résumé" in ISO 8859-1: é is 0xE9, invalid as UTF-8
	doc := types.Document{
		Filename: "notes.txt",
		Data:     []byte{'r', 0xE9, 's', 'u', 'm', 0xE9},
	}

	res, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "résumé", res.Raw)
}

func TestExtract_InvalidPDF(t *testing.T) {
	doc := types.Document{Filename: "resume.pdf", Data: []byte("not a pdf")}

	_, err := Extract(doc)
	assert.Error(t, err)
}

func TestExtract_InvalidDOCX(t *testing.T) {
	doc := types.Document{Filename: "resume.docx", Data: []byte("not a zip archive")}

	_, err := Extract(doc)
	assert.Error(t, err)
}

func TestDocxXMLText(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected string
	}{
		{
			"Paragraphs become newlines",
			`<w:p><w:r><w:t>Skills</w:t></w:r></w:p><w:p><w:r><w:t>Python</w:t></w:r></w:p>`,
			"Skills\nPython\n",
		},
		{
			"Cells become spaces rows become newlines",
			`<w:tr><w:tc><w:t>python</w:t></w:tc><w:tc><w:t>expert</w:t></w:tc></w:tr>`,
			"python expert \n",
		},
		{
			"Entities unescaped",
			`<w:t>C&amp;I team</w:t>`,
			"C&I team",
		},
		{
			"Attributed text run",
			`<w:t xml:space="preserve"> java </w:t>`,
			" java ",
		},
		{"No runs", `<w:p/>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, docxXMLText(tt.xml))
		})
	}
}

func TestDecodePlainText(t *testing.T) {
	t.Run("Valid UTF-8 passes through", func(t *testing.T) {
		assert.Equal(t, "héllo", decodePlainText([]byte("héllo")))
	})

	t.Run("Latin-1 fallback", func(t *testing.T) {
		assert.Equal(t, "café", decodePlainText([]byte{'c', 'a', 'f', 0xE9}))
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Equal(t, "", decodePlainText(nil))
	})
}
