package fileio

import (
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Option configures a fileio operation. Each call resolves its options into
// a private config before touching the filesystem; unknown combinations are
// simply ignored by operations they do not apply to.
type Option func(*config)

type config struct {
	replace     bool
	appendMode  bool
	exclusive   bool
	perm        fs.FileMode
	dirPerm     fs.FileMode
	enc         encoding.Encoding
	concurrency int
}

func newConfig(opts []Option) config {
	cfg := config{
		perm:        0o644,
		dirPerm:     0o755,
		enc:         unicode.UTF8,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ReplaceExisting allows copy operations to overwrite an existing target.
// Without it, copying onto an existing path fails with CodeAlreadyExists.
func ReplaceExisting() Option {
	return func(c *config) { c.replace = true }
}

// Append makes write operations append to the target instead of
// truncating it.
func Append() Option {
	return func(c *config) { c.appendMode = true }
}

// Exclusive makes write operations fail if the target already exists.
func Exclusive() Option {
	return func(c *config) { c.exclusive = true }
}

// WithPerm sets the permission bits used when an operation creates a file.
// The default is 0o644.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) { c.perm = perm }
}

// WithDirPerm sets the permission bits used when an operation creates
// directories. The default is 0o755.
func WithDirPerm(perm fs.FileMode) Option {
	return func(c *config) { c.dirPerm = perm }
}

// WithEncoding sets the character encoding used by WriteLines and
// ReadLines. The default is UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) {
		if enc != nil {
			c.enc = enc
		}
	}
}

// WithConcurrency bounds the number of parallel file copies CopyAll runs.
// The default is 4; values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// openFlag translates the resolved write options into an open-mode bitmask.
func (c config) openFlag() int {
	flag := os.O_WRONLY | os.O_CREATE
	if c.appendMode {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	if c.exclusive {
		flag |= os.O_EXCL
	}
	return flag
}
