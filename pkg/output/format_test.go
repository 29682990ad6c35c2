package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Treats an empty value as table
//   - Rejects unknown formats with ErrUnknownFormat
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"Json", FormatJSON},
		{" xml ", FormatXML},
		{"table", FormatTable},
		{"", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseFormat("yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownFormat))
		assert.Contains(t, err.Error(), `"yaml"`)
	})
}

func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "csv", "xml"}, FormatNames())
}

// TestFormatter_WriteCSV tests the behavior of WriteCSV.
//
// It verifies:
//   - Writes CSV headers and rows
//   - Quotes fields with commas and quotes
func TestFormatter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)

	err := f.WriteCSV([]string{"ID", "NAME"}, [][]string{
		{"1", "Aman"},
		{"2", "Smith, Jane"},
		{"3", `The "Best" Channel`},
	})
	require.NoError(t, err)

	assert.Equal(t, "ID,NAME\n1,Aman\n2,\"Smith, Jane\"\n3,\"The \"\"Best\"\" Channel\"\n", buf.String())
}

func TestFormatter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	require.NoError(t, f.WriteJSON(map[string]any{"name": "Aman & Co", "followers": 1200}))
	assert.Contains(t, buf.String(), "Aman & Co")

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "Aman & Co", result["name"])
	assert.Equal(t, float64(1200), result["followers"])
}

func TestFormatter_WriteXML(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatXML, &buf)

	type testData struct {
		XMLName xml.Name `xml:"creator"`
		Name    string   `xml:"name"`
	}

	require.NoError(t, f.WriteXML(testData{Name: "Aman"}))

	output := buf.String()
	assert.Contains(t, output, "<?xml version=")
	assert.Contains(t, output, "<creator>")
	assert.Contains(t, output, "<name>Aman</name>")
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)
	require.NotNil(t, f)
	assert.Equal(t, FormatCSV, f.Format())
}

// errorWriter always fails on write.
type errorWriter struct{}

func (e *errorWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

// TestFormatter_WriteCSV_FlushError tests the behavior of WriteCSV with flush errors.
//
// It verifies:
//   - Returns error when flush fails
func TestFormatter_WriteCSV_FlushError(t *testing.T) {
	f := NewFormatter(FormatCSV, &errorWriter{})

	err := f.WriteCSV([]string{"A", "B"}, [][]string{{"1", "2"}})
	assert.Error(t, err)
}

// unmarshalableXML always fails to marshal.
type unmarshalableXML struct{}

func (u unmarshalableXML) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return assert.AnError
}

func TestFormatter_WriteXML_Error(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatXML, &buf)

	assert.Error(t, f.WriteXML(unmarshalableXML{}))
}

// TestValidateStructuredOutputFlags tests the behavior of ValidateStructuredOutputFlags.
//
// It verifies:
//   - Returns nil for table output regardless of verbose flag
//   - Returns error when verbose is true with structured formats
//   - Returns nil when verbose is false with structured formats
func TestValidateStructuredOutputFlags(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		verbose   bool
		expectErr bool
	}{
		{"table format, verbose=false", FormatTable, false, false},
		{"table format, verbose=true", FormatTable, true, false},
		{"json format, verbose=false", FormatJSON, false, false},
		{"json format, verbose=true", FormatJSON, true, true},
		{"csv format, verbose=true", FormatCSV, true, true},
		{"xml format, verbose=false", FormatXML, false, false},
		{"xml format, verbose=true", FormatXML, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStructuredOutputFlags(tt.format, tt.verbose)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--verbose is not supported")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
