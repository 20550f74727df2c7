package playstore

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	// MaxPageSize limits store pages to 10MB
	MaxPageSize = 10 * 1024 * 1024

	// charsetSample is how much of a page chardet looks at
	charsetSample = 8 * 1024
)

var (
	// descriptionPolicy keeps the markup store descriptions use and nothing else.
	descriptionPolicy = bluemonday.UGCPolicy()
	textPolicy        = bluemonday.StrictPolicy()

	lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// utf8Reader converts a page to UTF-8 when it is not already.
func utf8Reader(body []byte) (io.Reader, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty page")
	}
	if len(body) > MaxPageSize {
		return nil, fmt.Errorf("page exceeds maximum size of %d bytes", MaxPageSize)
	}
	if utf8.Valid(body) {
		return bytes.NewReader(body), nil
	}

	sample := body
	if len(sample) > charsetSample {
		sample = sample[:charsetSample]
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil {
		return bytes.NewReader(body), nil
	}
	reader, err := charset.NewReaderLabel(strings.ToLower(result.Charset), bytes.NewReader(body))
	if err != nil {
		return bytes.NewReader(body), nil
	}
	return reader, nil
}

// loadDocument parses a page for CSS selection.
func loadDocument(body []byte) (*goquery.Document, error) {
	r, err := utf8Reader(body)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(r)
}

// nodeOf returns the root node of doc for XPath queries.
func nodeOf(doc *goquery.Document) *xhtml.Node {
	if len(doc.Nodes) == 0 {
		return nil
	}
	return doc.Nodes[0]
}

// sanitizeDescription strips anything but basic formatting from listing HTML.
func sanitizeDescription(s string) string {
	return descriptionPolicy.Sanitize(s)
}

// plainText renders listing HTML as text, keeping line breaks.
func plainText(s string) string {
	s = lineBreak.ReplaceAllString(s, "\n")
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// normalizeSpace collapses runs of whitespace into one space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
