package fileio

import (
	"bufio"

	"golang.org/x/text/transform"

	"github.com/jmgilman/pathops/core"
	"github.com/jmgilman/pathops/paths"
)

// ReadLines reads the coerced src path and returns its lines, decoded with
// the configured character encoding (UTF-8 unless WithEncoding says
// otherwise). Line separators are stripped; a trailing newline does not
// produce an empty final line.
func ReadLines(fsys core.FS, src any, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)
	source, err := paths.From(src)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(source.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(transform.NewReader(f, cfg.enc.NewDecoder()))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
