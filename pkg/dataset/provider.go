// Package dataset loads creator records from the built-in sample or from
// JSON and YAML files.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/verbose"
)

// DefaultMaxFileSize bounds the size of a dataset file read from disk.
const DefaultMaxFileSize int64 = 10 << 20

//go:embed sample.json
var sampleJSON []byte

// Provider supplies the full record set for a session.
type Provider interface {
	// Load returns the records. Each call returns a fresh slice.
	Load() ([]creators.Creator, error)

	// Source describes where records come from, for logs and output.
	Source() string
}

// Sample returns the built-in seed records.
//
// The slice is decoded on every call, so callers may modify it freely.
func Sample() []creators.Creator {
	var records []creators.Creator
	if err := json.Unmarshal(sampleJSON, &records); err != nil {
		panic(fmt.Sprintf("dataset: embedded sample.json is invalid: %v", err))
	}
	return records
}

// SampleProvider serves Sample().
type SampleProvider struct{}

// Load implements Provider.
func (SampleProvider) Load() ([]creators.Creator, error) {
	records := Sample()
	verbose.DatasetLoaded(constants.DatasetSample, len(records))
	return records, nil
}

// Source implements Provider.
func (SampleProvider) Source() string {
	return constants.DatasetSample
}

// FileProvider reads records from a .json, .yaml or .yml file.
//
// Fields:
//   - Path: File to read
//   - MaxSize: Size limit in bytes; zero means DefaultMaxFileSize
type FileProvider struct {
	Path    string
	MaxSize int64
}

// Load reads, decodes and validates the file.
//
// Unknown record fields are reported through pkg/warnings and skipped.
//
// Returns:
//   - []creators.Creator: Records in file order
//   - error: Read, decode or validation errors
func (p *FileProvider) Load() ([]creators.Creator, error) {
	decode, err := decoderFor(p.Path)
	if err != nil {
		return nil, err
	}

	data, err := p.read()
	if err != nil {
		return nil, err
	}

	records, err := decode(data, p.Path)
	if err != nil {
		return nil, err
	}

	if err := Validate(records); err != nil {
		return nil, err
	}

	verbose.DatasetLoaded(p.Path, len(records))
	return records, nil
}

// Source implements Provider.
func (p *FileProvider) Source() string {
	return p.Path
}

func (p *FileProvider) read() ([]byte, error) {
	maxSize := p.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(p.Path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("dataset file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(p.Path)
}

type decodeFunc func(data []byte, source string) ([]creators.Creator, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeJSON, nil
	case ".yaml", ".yml":
		return decodeYAML, nil
	default:
		return nil, fmt.Errorf("unsupported dataset format %q: use .json, .yaml or .yml", ext)
	}
}

// Open returns the provider for a dataset setting.
//
// Parameters:
//   - path: File path, or "" / "sample" for the built-in records
//
// Returns:
//   - Provider: SampleProvider or *FileProvider
func Open(path string) Provider {
	if path == "" || path == constants.DatasetSample {
		return SampleProvider{}
	}
	return &FileProvider{Path: path}
}
