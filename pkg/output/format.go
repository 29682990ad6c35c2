// Package output writes creator views as CSV, JSON or XML for scripts, and
// provides the aligned text table used by terminal output.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format is an --output value.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON writes one compact JSON document.
	FormatJSON Format = "json"
	// FormatCSV writes a header row and one row per record.
	FormatCSV Format = "csv"
	// FormatXML writes an indented XML document with a header.
	FormatXML Format = "xml"
)

// ErrUnknownFormat is returned by ParseFormat for values outside FormatNames().
var ErrUnknownFormat = errors.New("unknown output format")

var formats = []Format{FormatTable, FormatJSON, FormatCSV, FormatXML}

// ParseFormat parses an --output value case-insensitively.
// An empty value selects FormatTable.
//
// Returns:
//   - Format: The parsed format
//   - error: Wraps ErrUnknownFormat when s names no format
func ParseFormat(s string) (Format, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return FormatTable, nil
	}
	for _, f := range formats {
		if string(f) == value {
			return f, nil
		}
	}
	return FormatTable, fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatNames lists the values accepted by --output.
func FormatNames() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// IsStructuredFormat reports whether f is meant for machines rather than a
// terminal. Commands skip captions and summaries for these formats.
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// ValidateStructuredOutputFlags rejects --verbose with a structured format,
// since verbose logging would interleave diagnostic text into the document.
func ValidateStructuredOutputFlags(format Format, verbose bool) error {
	if IsStructuredFormat(format) && verbose {
		return fmt.Errorf("--verbose is not supported with --output %s: debug lines would corrupt the %s document", format, strings.ToUpper(string(format)))
	}
	return nil
}

// Formatter encodes documents in one format to a writer.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter writing format to writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Format returns the configured format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes headers followed by rows. Fields containing commas, quotes
// or newlines are quoted.
//
// Returns:
//   - error: The first write or flush error
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, headers)
	records = append(records, rows...)
	return csv.NewWriter(f.writer).WriteAll(records)
}

// WriteJSON writes data as a single line of JSON followed by a newline.
// HTML characters in names are written as is.
func (f *Formatter) WriteJSON(data any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// WriteXML writes the XML header and data indented by two spaces.
func (f *Formatter) WriteXML(data any) error {
	if _, err := io.WriteString(f.writer, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := io.WriteString(f.writer, "\n")
	return err
}
