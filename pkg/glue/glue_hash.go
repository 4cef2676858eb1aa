package glue

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/fnv"
	"golang.org/x/sync/errgroup"
)

type HashOptions struct {
	// Values are hashed as UTF-8 text, one digest per line.
	Values []string

	// Stream is read when no values are given and input is piped.
	Stream *toolkit.Stream

	// Width in bits. Zero uses the configured width.
	Width int

	// Decimal prints the digest as a base-10 integer instead of hex.
	Decimal bool
}

// Hash computes the FNV-1 digest of each value, or of piped input when no
// values are given.
func (g *Glue) Hash(ctx context.Context, opts HashOptions) (string, error) {
	lg := g.Runtime.Logger()
	w, err := g.width(opts.Width)
	if err != nil {
		return "", err
	}

	if len(opts.Values) == 0 {
		if opts.Stream == nil || !opts.Stream.IsPiped {
			return "", fmt.Errorf("nothing to hash: pass a value or pipe input: %w", ErrNoInput)
		}
		d, err := fnv.SumReader(opts.Stream.In, w)
		if err != nil {
			return "", fmt.Errorf("hash stdin: %w", err)
		}
		lg.Debug("hashed stdin", "width", int(w))
		return formatDigest(d, opts.Decimal) + "\n", nil
	}

	var b strings.Builder
	for _, v := range opts.Values {
		d, err := fnv.SumString(v, w)
		if err != nil {
			return "", err
		}
		b.WriteString(formatDigest(d, opts.Decimal))
		b.WriteByte('\n')
	}
	lg.Debug("hashed values", "count", len(opts.Values), "width", int(w))
	return b.String(), nil
}

type HashFilesOptions struct {
	// Paths to hash. "-" reads Stream.
	Paths  []string
	Stream *toolkit.Stream

	Width   int
	Decimal bool

	// Jobs bounds concurrent reads. Zero uses GOMAXPROCS.
	Jobs int
}

// HashFiles hashes files concurrently and prints "<digest>  <path>" lines in
// argument order.
func (g *Glue) HashFiles(ctx context.Context, opts HashFilesOptions) (string, error) {
	lg := g.Runtime.Logger()
	if len(opts.Paths) == 0 {
		return "", fmt.Errorf("no files given: %w", ErrNoInput)
	}
	w, err := g.width(opts.Width)
	if err != nil {
		return "", err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// "-" may repeat; stdin is read once and shared.
	var stdin []byte
	if slices.Contains(opts.Paths, "-") {
		if opts.Stream == nil || opts.Stream.In == nil {
			return "", fmt.Errorf("stdin unavailable: %w", ErrNoInput)
		}
		stdin, err = io.ReadAll(opts.Stream.In)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	}

	digests := make([]fnv.Digest, len(opts.Paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, p := range opts.Paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			d, err := g.hashPath(p, stdin, w)
			if err != nil {
				return err
			}
			digests[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, p := range opts.Paths {
		fmt.Fprintf(&b, "%s  %s\n", formatDigest(digests[i], opts.Decimal), p)
	}
	lg.Debug("hashed files", "count", len(opts.Paths), "width", int(w), "jobs", jobs)
	return b.String(), nil
}

func (g *Glue) hashPath(path string, stdin []byte, w fnv.Width) (fnv.Digest, error) {
	if path == "-" {
		return fnv.Sum(stdin, w)
	}
	resolved, err := toolkit.ExpandPath(g.Runtime, toolkit.ExpandEnv(g.Runtime, path))
	if err != nil {
		return fnv.Digest{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := g.Runtime.ReadFile(resolved)
	if err != nil {
		return fnv.Digest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return fnv.Sum(data, w)
}

// width resolves an explicit width against the configured default.
func (g *Glue) width(bits int) (fnv.Width, error) {
	if bits == 0 {
		return g.Config.HashWidth(), nil
	}
	w := fnv.Width(bits)
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

func formatDigest(d fnv.Digest, decimal bool) string {
	if decimal {
		return d.Int().String()
	}
	return d.Hex()
}
