package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
)

func TestReadDependencies(t *testing.T) {
	dir := t.TempDir()
	reqFile := filepath.Join(dir, "requirements.txt")
	content := `# Test requirements
numpy==1.21.0
  Requests
reqeusts
pydantic>=2.0

    # indented comment
numpy==1.22.0
`
	require.NoError(t, os.WriteFile(reqFile, []byte(content), 0644))

	got, err := ReadDependencies(context.Background(), reqFile, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy", "Requests", "reqeusts", "pydantic>=2.0", "numpy"}, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"pinned", "numpy==1.21.0\n", []string{"numpy"}},
		{"comment and blank", "# foo\n\n   \n", nil},
		{"no trailing newline", "flask", []string{"flask"}},
		{"space before pin", "django == 4.2\n", []string{"django"}},
		{"only first pin split", "a==1==2\n", []string{"a"}},
		{"other specifiers pass through", "torch~=2.0\ncelery[redis]>=5\n", []string{"torch~=2.0", "celery[redis]>=5"}},
		{"case preserved", "SQLAlchemy\n", []string{"SQLAlchemy"}},
		{"crlf", "redis\r\nboto3==1.0\r\n", []string{"redis", "boto3"}},
		{"inline hash is not a comment", "scrapy # crawler\n", []string{"scrapy # crawler"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(context.Background(), strings.NewReader(tt.content), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWarnsOnUnusualNames(t *testing.T) {
	var warnings []string
	opts := Options{Warn: func(msg string, args ...any) {
		warnings = append(warnings, msg)
	}}

	got, err := Parse(context.Background(), strings.NewReader("requests\npydantic>=2.0\n==1.0\n"), opts)
	require.NoError(t, err)

	require.Len(t, got, 3, "unusual names are kept")
	assert.Empty(t, got[2], "bare pin should yield an empty name")
	assert.Len(t, warnings, 2)
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("a", 2<<20)
	content := "reqeusts\n" + long + "\nflask==2.0\n"

	var warnings int
	opts := Options{Warn: func(string, ...any) { warnings++ }}

	got, err := Parse(context.Background(), strings.NewReader(content), opts)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "reqeusts", got[0])
	assert.Len(t, got[1], len(long))
	assert.Equal(t, "flask", got[2])
	assert.Equal(t, 1, warnings, "the oversized name is reported")
}

func TestParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Parse(ctx, strings.NewReader("requests\nnumpy\n"), Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestReadDependenciesCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("requests\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ReadDependencies(ctx, path, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
	assert.False(t, errors.IsInputAccessError(err), "cancellation is not a missing manifest")
}

func TestReadDependenciesNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	got, err := ReadDependencies(context.Background(), path, Options{})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "expected FILE_NOT_FOUND, got %v", err)
	assert.True(t, errors.IsInputAccessError(err), "missing manifest should be an input-access error")
}

func TestReadDependenciesDirectory(t *testing.T) {
	got, err := ReadDependencies(context.Background(), t.TempDir(), Options{})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.ErrCodeFileUnreadable), "expected FILE_UNREADABLE, got %v", err)
}
