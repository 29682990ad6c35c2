package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajxudir/creatordash/pkg/creators"
)

// CreatorBuilder provides a fluent API for building test creators.
//
// Example:
//
//	c := testutil.NewCreator(1, "Aman").WithFollowers(100).Active().Build()
type CreatorBuilder struct {
	c creators.Creator
}

// NewCreator starts a builder with the given id and name and a fixed
// createdAt of 2025-01-01.
func NewCreator(id int, name string) *CreatorBuilder {
	return &CreatorBuilder{c: creators.Creator{ID: id, Name: name, CreatedAt: "2025-01-01"}}
}

// WithFollowers sets the follower count.
func (b *CreatorBuilder) WithFollowers(n int) *CreatorBuilder {
	b.c.Followers = n
	return b
}

// WithRevenue sets the revenue.
func (b *CreatorBuilder) WithRevenue(v float64) *CreatorBuilder {
	b.c.Revenue = v
	return b
}

// Active marks the creator active.
func (b *CreatorBuilder) Active() *CreatorBuilder {
	b.c.Active = true
	return b
}

// CreatedAt sets the creation date.
func (b *CreatorBuilder) CreatedAt(date string) *CreatorBuilder {
	b.c.CreatedAt = date
	return b
}

// Build returns the constructed creator.
func (b *CreatorBuilder) Build() creators.Creator {
	return b.c
}

// Creators returns the four-record fixture used across command tests:
// Aman(100f, 1000r, active), Bob(200f, 2000r, inactive),
// Charlie(100f, 500r, active), Dave(300f, 3000r, active).
func Creators() []creators.Creator {
	return []creators.Creator{
		NewCreator(1, "Aman").WithFollowers(100).WithRevenue(1000).Active().CreatedAt("2025-01-01").Build(),
		NewCreator(2, "Bob").WithFollowers(200).WithRevenue(2000).CreatedAt("2025-01-02").Build(),
		NewCreator(3, "Charlie").WithFollowers(100).WithRevenue(500).Active().CreatedAt("2025-01-03").Build(),
		NewCreator(4, "Dave").WithFollowers(300).WithRevenue(3000).Active().CreatedAt("2025-01-04").Build(),
	}
}

// Names returns the names of records in order.
func Names(records []creators.Creator) []string {
	names := make([]string, len(records))
	for i, c := range records {
		names[i] = c.Name
	}
	return names
}

// WriteDataset writes records as a JSON array into dir and returns the path.
func WriteDataset(t *testing.T, dir string, records []creators.Creator) string {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	path := filepath.Join(dir, "creators.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

// WriteFile writes content to name inside dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
