package tagdoc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

// Format selects a document encoding.
type Format int

const (
	// FormatCBOR is the compact machine encoding. This is the default.
	FormatCBOR Format = iota
	// FormatJSON is the human-readable encoding.
	FormatJSON
)

// String returns the format name ("cbor" or "json").
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "cbor"
}

// ParseFormat resolves a format name back to its Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "cbor":
		return FormatCBOR, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatCBOR, fmt.Errorf("unrecognized document format %q", s)
	}
}

// gzipMagic is the fixed two-byte header prefix of RFC 1952 streams.
var gzipMagic = []byte{0x1f, 0x8b}

// Marshal encodes the document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return data, nil
	}

	data, err := cbor.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode cbor: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a document, sniffing the encoding: a gzip stream is
// inflated first, then a leading '{' selects JSON and anything else
// CBOR. JSON documents are validated against the embedded schema before
// unmarshalling; CBOR documents rely on the struct decoder for shape.
func Unmarshal(data []byte) (*Document, error) {
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close() //nolint:errcheck // Read errors surface below

		inflated, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("inflate document: %w", err)
		}
		data = inflated
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := validateJSON(trimmed); err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &doc, nil
	}

	var doc Document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	return &doc, nil
}

// DetectFormat reports the encoding of raw document bytes and whether
// they are gzip-compressed, without decoding the whole document. Tools
// use it to write a document back the way they found it.
func DetectFormat(data []byte) (Format, bool, error) {
	compressed := bytes.HasPrefix(data, gzipMagic)
	if compressed {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return FormatCBOR, true, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close() //nolint:errcheck // Read errors surface below

		head := make([]byte, 64)
		n, err := io.ReadFull(zr, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return FormatCBOR, true, fmt.Errorf("inflate document: %w", err)
		}
		data = head[:n]
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON, compressed, nil
	}
	return FormatCBOR, compressed, nil
}

// WriteOption configures WriteFile behavior.
type WriteOption func(*writeOptions)

// writeOptions holds configuration for writing document files.
type writeOptions struct {
	format   Format
	compress bool
}

// defaultWriteOptions returns the default configuration.
func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		format:   FormatCBOR,
		compress: false,
	}
}

// WithFormat selects the document encoding. The default is CBOR.
func WithFormat(f Format) WriteOption {
	return func(o *writeOptions) {
		o.format = f
	}
}

// WithGzip compresses the encoded document before writing.
func WithGzip() WriteOption {
	return func(o *writeOptions) {
		o.compress = true
	}
}

// WriteFile writes the document to path.
//
// This is an atomic operation: the encoded bytes go to a temporary file
// in the destination directory, get synced to disk, and the temporary
// file renames over the target. If any step fails, the target is left
// unchanged.
//
//	err := tagdoc.WriteFile("song.popm.json", doc,
//	    tagdoc.WithFormat(tagdoc.FormatJSON),
//	    tagdoc.WithGzip(),
//	)
func WriteFile(path string, doc *Document, opts ...WriteOption) error {
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := Marshal(doc, options.format)
	if err != nil {
		return err
	}

	if options.compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress document: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close gzip stream: %w", err)
		}
		data = buf.Bytes()
	}

	// Temp file in the same directory as the target, for atomic rename.
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".tagdoc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true
	return nil
}

// ReadFile reads and decodes one document file, sniffing its encoding.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ReadFiles reads multiple document files concurrently.
//
// Documents are parsed in parallel using up to runtime.NumCPU()
// goroutines. Results are returned in the same order as the input
// paths. The first failure cancels the remaining reads and is returned.
func ReadFiles(ctx context.Context, paths ...string) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Document, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
