// Package input resolves the text a command should index: a positional
// argument, a (possibly compressed) file, piped standard input, or the
// command's demo default.
package input

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/nuclio/errors"
	"github.com/ulikunitz/xz"
)

// Origin tells where a resolved text came from.
type Origin string

const (
	OriginArgument Origin = "argument"
	OriginFile     Origin = "file"
	OriginStdin    Origin = "stdin"
	OriginDefault  Origin = "default"
)

// DefaultMaxBytes caps how much input is read from a file or stdin.
const DefaultMaxBytes = 64 << 20

// Options configures Resolve.
type Options struct {
	// Stdin is read when no argument or file is given and StdinIsTerminal is false.
	Stdin io.Reader

	// StdinIsTerminal disables reading Stdin (interactive sessions).
	StdinIsTerminal bool

	// Default is returned when no other source is available.
	Default string

	// MaxBytes limits file and stdin input; 0 means DefaultMaxBytes.
	MaxBytes int64

	// KeepNewline keeps a single trailing newline of file or stdin input.
	KeepNewline bool
}

// Resolve picks the text in precedence order: first positional argument,
// then path (if non-empty), then non-empty stdin, then opts.Default.
// An explicit empty argument indexes the empty text.
func Resolve(args []string, path string, opts Options) (string, Origin, error) {
	if len(args) > 0 {
		return args[0], OriginArgument, nil
	}

	if path != "" {
		text, err := ReadFile(path, opts)
		if err != nil {
			return "", OriginFile, errors.Wrapf(err, "Failed to read input file %s", path)
		}

		return text, OriginFile, nil
	}

	if opts.Stdin != nil && !opts.StdinIsTerminal {
		text, err := readAll(opts.Stdin, opts)
		if err != nil {
			return "", OriginStdin, errors.Wrap(err, "Failed to read standard input")
		}

		// closed or empty stdin (e.g. /dev/null) counts as absent
		if text != "" {
			return text, OriginStdin, nil
		}
	}

	return opts.Default, OriginDefault, nil
}

// ReadFile reads path, decompressing it when its extension is .gz, .zst or .xz.
func ReadFile(path string, opts Options) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "Failed to open file")
	}
	defer file.Close() // nolint: errcheck

	reader, closer, err := decompressor(path, file)
	if err != nil {
		return "", err
	}
	defer closer()

	return readAll(reader, opts)
}

// decompressor wraps r according to the extension of path.
func decompressor(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Failed to create gzip reader")
		}

		return gz, func() { gz.Close() }, nil // nolint: errcheck

	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Failed to create zstd reader")
		}

		return zr, zr.Close, nil

	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Failed to create xz reader")
		}

		return xr, func() {}, nil

	default:
		return r, func() {}, nil
	}
}

// readAll reads at most MaxBytes and strips one trailing newline unless
// KeepNewline is set.
func readAll(r io.Reader, opts Options) (string, error) {
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", errors.Wrap(err, "Failed to read input")
	}
	if int64(len(body)) > limit {
		return "", errors.Errorf("Input exceeds %d bytes", limit)
	}

	if !opts.KeepNewline {
		body = bytes.TrimSuffix(body, []byte("\n"))
		body = bytes.TrimSuffix(body, []byte("\r"))
	}

	return string(body), nil
}
