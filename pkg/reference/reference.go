// Package reference supplies the popular package names that dependencies are
// compared against.
//
// The list is static: either the built-in seed list ordered by popularity or
// a list loaded once from a TOML file. Both satisfy [Provider], so the
// analyzer never depends on where the names come from.
package reference

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination=mock_provider.gen.go -package=reference -source=reference.go Provider

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
)

// Provider returns reference package names in popularity order.
type Provider interface {
	// Top returns the first n names. n <= 0 yields an empty list and n larger
	// than the list yields the whole list.
	Top(n int) []string
}

// popular is the built-in seed list, most popular first.
var popular = []string{
	"requests",
	"numpy",
	"pandas",
	"django",
	"flask",
	"tensorflow",
	"torch",
	"scikit-learn",
	"matplotlib",
	"beautifulsoup4",
	"pytest",
	"sqlalchemy",
	"celery",
	"scrapy",
	"tornado",
	"aiohttp",
	"gunicorn",
	"psycopg2",
	"redis",
	"boto3",
}

// Static serves a fixed, ordered list of names.
type Static struct {
	names []string
}

// Default returns the provider backed by the built-in seed list.
func Default() *Static {
	return &Static{names: popular}
}

// NewStatic returns a provider serving names in the given order.
func NewStatic(names []string) *Static {
	return &Static{names: append([]string(nil), names...)}
}

// Top implements Provider. The returned slice is a copy.
func (s *Static) Top(n int) []string {
	n = max(0, min(n, len(s.names)))
	out := make([]string, n)
	copy(out, s.names[:n])
	return out
}

// Len returns the size of the full list.
func (s *Static) Len() int { return len(s.names) }

// fileFormat is the on-disk layout of a reference list:
//
//	packages = ["requests", "numpy"]
type fileFormat struct {
	Packages []string `toml:"packages"`
}

// LoadFile reads a TOML reference list from path.
// Any failure is a configuration error.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReferenceFile, err, "read reference file %s", path)
	}

	var f fileFormat
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReferenceFile, err, "parse reference file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidReferenceFile, "reference file %s: unknown key %q", path, undecoded[0].String())
	}

	if len(f.Packages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidReferenceFile, "reference file %s lists no packages", path)
	}
	for i, name := range f.Packages {
		if name == "" {
			return nil, errors.New(errors.ErrCodeInvalidReferenceFile, "reference file %s: entry %d is empty", path, i)
		}
	}

	return NewStatic(f.Packages), nil
}

// String implements fmt.Stringer for log output.
func (s *Static) String() string {
	return fmt.Sprintf("static(%d packages)", len(s.names))
}

var _ Provider = (*Static)(nil)
