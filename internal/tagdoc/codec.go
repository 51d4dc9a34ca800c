package tagdoc

import (
	"fmt"

	"github.com/simonhull/popmeter"
)

// Option configures document-to-tag reconstruction.
//
// Example:
//
//	tag, warnings, err := doc.Tag(tagdoc.WithStrict())
type Option func(*decodeOptions)

// decodeOptions holds configuration for rebuilding a tag.
type decodeOptions struct {
	strict         bool // Fail on the first reconstruction problem
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		strict:         false,
		ignoreWarnings: false,
	}
}

// WithStrict treats any reconstruction problem as a fatal error.
//
// By default, a frame record that fails to decode is skipped with a
// warning, and a record whose declared size disagrees with its payload
// is kept with a warning. With strict mode enabled, the first such
// problem aborts reconstruction.
func WithStrict() Option {
	return func(o *decodeOptions) {
		o.strict = true
	}
}

// WithIgnoreWarnings discards non-fatal reconstruction warnings.
//
// Use this when only the rebuilt tag matters and data-quality issues
// in the document are irrelevant.
func WithIgnoreWarnings() Option {
	return func(o *decodeOptions) {
		o.ignoreWarnings = true
	}
}

// Tag rebuilds the document's frames into a live tag.
//
// Reconstruction is lenient by default: a record that fails to decode
// is skipped and reported as a warning carrying the record's index, and
// a record whose declared size disagrees with its payload length is
// decoded anyway with the payload winning. WithStrict turns either
// condition into a hard error. An unrecognized Version string is always
// a hard error, since no frame can be interpreted without it.
func (d *Document) Tag(opts ...Option) (*popmeter.Tag, []popmeter.Warning, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	v, err := popmeter.ParseVersion(d.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("document %s: %w", d.ID, err)
	}

	tag := popmeter.NewTag(v)
	var warnings []popmeter.Warning

	for i, rec := range d.Frames {
		if int(rec.Size) != len(rec.Payload) {
			if options.strict {
				return nil, nil, fmt.Errorf("frame %d (%s): declared size %d, payload has %d bytes",
					i, rec.WireID, rec.Size, len(rec.Payload))
			}
			warnings = append(warnings, popmeter.Warning{
				Stage:   "document",
				Message: fmt.Sprintf("%s: declared size %d disagrees with %d payload bytes", rec.WireID, rec.Size, len(rec.Payload)),
				Index:   i,
			})
		}

		frame, err := popmeter.ParseFrame(rec.WireID, v, rec.Flags, rec.Payload)
		if err != nil {
			if options.strict {
				return nil, nil, fmt.Errorf("frame %d (%s): %w", i, rec.WireID, err)
			}
			warnings = append(warnings, popmeter.Warning{
				Stage:   "document",
				Message: err.Error(),
				Index:   i,
			})
			continue
		}
		tag.Put(frame)
	}

	if options.ignoreWarnings {
		warnings = nil
	}
	return tag, warnings, nil
}
