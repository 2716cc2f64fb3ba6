// Package manifest reads declared dependency names from a requirements-style
// manifest: one requirement per line, an optional "==version" pin, and
// "#" comment lines.
package manifest

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
)

// DefaultPath is the manifest read when no path is given.
const DefaultPath = "requirements.txt"

// pinMarker separates a name from an exact version pin. No other specifier
// syntax is split off.
const pinMarker = "=="

// Options tunes how a manifest is read.
type Options struct {
	// Warn, when set, receives names that do not look like plain package
	// names. Those names are still returned.
	Warn func(msg string, args ...any)
}

// ReadDependencies returns the dependency names declared in the file at path,
// in file order and with duplicates preserved.
//
// A missing file yields an ErrCodeFileNotFound error and any other read
// failure an ErrCodeFileUnreadable error; in both cases no names are returned.
// Canceling ctx closes the file, so a read blocked on a pipe or FIFO returns
// ctx.Err().
func ReadDependencies(ctx context.Context, path string, opts Options) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "requirements file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileUnreadable, err, "error reading requirements file %s", path)
	}
	defer f.Close()
	stop := context.AfterFunc(ctx, func() { f.Close() })
	defer stop()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, errors.Wrap(errors.ErrCodeFileUnreadable, fs.ErrInvalid, "error reading requirements file %s: is a directory", path)
	}

	names, err := Parse(ctx, f, opts)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileUnreadable, err, "error reading requirements file %s", path)
	}
	return names, nil
}

// Parse extracts dependency names from r. Lines may be of any length. ctx is
// checked before each line.
func Parse(ctx context.Context, r io.Reader, opts Options) ([]string, error) {
	var result []string

	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := br.ReadString('\n')
		if name, ok := requirementName(line); ok {
			if opts.Warn != nil {
				if verr := errors.ValidatePackageName(name); verr != nil {
					opts.Warn("unusual requirement line: %s", errors.UserMessage(verr))
				}
			}
			result = append(result, name)
		}

		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// requirementName returns the dependency named on line, or false for blank
// and comment lines.
func requirementName(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", false
	}
	return strings.TrimSpace(strings.Split(line, pinMarker)[0]), true
}
