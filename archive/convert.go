// Package archive converts a village archive XML document into the
// playdata JSON layout: one village summary file plus one file per
// period. The walk is a single forward pass over the XML event stream;
// the first schema violation aborts the whole conversion and already
// written artifacts are left behind for the caller to clean up.
package archive

import (
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/net/html/charset"

	"github.com/fogbound/wolfstory/fileutils"
	"github.com/fogbound/wolfstory/playdata"
	"github.com/fogbound/wolfstory/schema"
)

var (
	// ErrMalformedXML wraps well-formedness diagnostics from the
	// underlying parser.
	ErrMalformedXML = errors.New("malformed archive XML")

	// ErrInvalidAttrValue marks a known attribute whose raw value
	// failed its caster.
	ErrInvalidAttrValue = errors.New("invalid attribute value")

	// ErrMissingAttr marks a mandatory attribute absent after
	// defaulting.
	ErrMissingAttr = errors.New("missing mandatory attribute")
)

// TokenSource is the forward-only XML event stream the converter
// consumes. *xml.Decoder satisfies it.
type TokenSource interface {
	Token() (xml.Token, error)
}

// Options controls artifact output.
type Options struct {
	// Pretty indents each output JSON file.
	Pretty bool

	// DirMode is used when creating the output directory (defaults
	// to 0o755).
	DirMode fs.FileMode

	// FileMode is used when creating artifacts (defaults to 0o644).
	FileMode fs.FileMode
}

// Result contains basic stats from a conversion run.
type Result struct {
	PeriodsWritten int
	PublicTalks    int
	BytesWritten   int64
}

// Convert reads the archive document at inputPath and writes the
// playdata layout into outputDir.
func Convert(ctx context.Context, inputPath, outputDir string, opts Options) (Result, error) {
	if inputPath == "" {
		return Result{}, errors.New("archive.Convert: inputPath is empty")
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("archive.Convert: open input: %w", err)
	}
	defer f.Close()
	return ConvertReader(ctx, f, outputDir, opts)
}

// ConvertReader is Convert for an already-open source. The decoder is
// charset-aware, so Shift_JIS and EUC-JP archives decode without
// re-encoding.
func ConvertReader(ctx context.Context, src io.Reader, outputDir string, opts Options) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("archive.ConvertReader: ctx is nil")
	}
	if outputDir == "" {
		return Result{}, errors.New("archive.ConvertReader: outputDir is empty")
	}
	if opts.DirMode == 0 {
		opts.DirMode = 0o755
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o644
	}
	if err := os.MkdirAll(outputDir, opts.DirMode); err != nil {
		return Result{}, fmt.Errorf("archive.ConvertReader: mkdir outputDir: %w", err)
	}

	dec := xml.NewDecoder(bufio.NewReaderSize(src, 1<<20))
	dec.CharsetReader = charset.NewReaderLabel

	r := &run{ctx: ctx, dec: dec, outputDir: outputDir, opts: opts}
	village, err := r.findVillage()
	if err != nil {
		return Result{}, err
	}
	rec, err := r.convertVillage(village)
	if err != nil {
		return Result{}, err
	}
	if err := r.writeArtifact(playdata.VillageFile, rec); err != nil {
		return Result{}, err
	}
	return r.res, nil
}

// run carries the per-conversion state: the event source and the
// story-wide public talk counter shared by every nested converter.
type run struct {
	ctx       context.Context
	dec       TokenSource
	outputDir string
	opts      Options

	publicTalkNo int
	res          Result
}

// next returns the following event, wrapping parser diagnostics.
// io.EOF inside an element is a truncated document.
func (r *run) next() (xml.Token, error) {
	tok, err := r.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of document", ErrMalformedXML)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	return tok, nil
}

func matches(se xml.StartElement, local string) bool {
	return se.Name.Local == local && schema.IsArchiveNamespace(se.Name.Space)
}

// findVillage scans to the root element and requires it to be an
// archive village.
func (r *run) findVillage() (xml.StartElement, error) {
	for {
		tok, err := r.next()
		if err != nil {
			return xml.StartElement{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !matches(se, schema.ElemVillage) {
			return xml.StartElement{}, fmt.Errorf("%w: root element <%s> is not an archive village", ErrMalformedXML, se.Name.Local)
		}
		return se, nil
	}
}

// skipElement discards events until the end of the element whose start
// was just consumed, descending through unknown children so depth
// stays correct.
func (r *run) skipElement() error {
	depth := 1
	for depth > 0 {
		tok, err := r.next()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

func (r *run) convertVillage(se xml.StartElement) (map[string]any, error) {
	rec, err := convertAttrs(se, villageSpec)
	if err != nil {
		return nil, err
	}

	periods := []any{}
	for {
		select {
		case <-r.ctx.Done():
			return nil, r.ctx.Err()
		default:
		}

		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case matches(t, schema.ElemAvatarList):
				avatars, err := r.convertAvatarList()
				if err != nil {
					return nil, err
				}
				rec[playdata.KeyAvatarList] = avatars
			case matches(t, schema.ElemPeriod):
				summary, err := r.convertPeriod(t)
				if err != nil {
					return nil, err
				}
				periods = append(periods, summary)
			default:
				if err := r.skipElement(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			rec[playdata.KeyPeriods] = periods
			return rec, nil
		}
	}
}

// convertAvatarList collects avatar children in document order; the
// start element has already been consumed.
func (r *run) convertAvatarList() ([]any, error) {
	avatars := []any{}
	for {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if matches(t, schema.ElemAvatar) {
				rec, err := convertAttrs(t, avatarSpec)
				if err != nil {
					return nil, err
				}
				avatars = append(avatars, rec)
			}
			if err := r.skipElement(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return avatars, nil
		}
	}
}

// convertPeriod builds the deep period record, writes it to its own
// artifact, and returns the shallow summary destined for the village
// record.
func (r *run) convertPeriod(se xml.StartElement) (map[string]any, error) {
	attrs, err := convertAttrs(se, periodSpec)
	if err != nil {
		return nil, err
	}

	elements := []any{}
	for done := false; !done; {
		select {
		case <-r.ctx.Done():
			return nil, r.ctx.Err()
		default:
		}

		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var el map[string]any
			switch {
			case matches(t, schema.ElemTalk):
				el, err = r.convertTalk(t)
			case schema.IsArchiveNamespace(t.Name.Space):
				if spec, ok := eventSpecs[t.Name.Local]; ok {
					el, err = r.convertEvent(t, spec)
				} else {
					err = r.skipElement()
				}
			default:
				err = r.skipElement()
			}
			if err != nil {
				return nil, err
			}
			if el != nil {
				elements = append(elements, el)
			}
		case xml.EndElement:
			done = true
		}
	}

	deep := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		deep[k] = v
	}
	deep[playdata.KeyElements] = elements

	day, _ := attrs[playdata.KeyDay].(int)
	name := playdata.PeriodFileName(day)
	if err := r.writeArtifact(name, deep); err != nil {
		return nil, err
	}
	r.res.PeriodsWritten++

	summary := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		summary[k] = v
	}
	summary[playdata.KeyHref] = name
	return summary, nil
}

func (r *run) writeArtifact(name string, rec map[string]any) error {
	path := filepath.Join(r.outputDir, name)
	data, err := marshalArtifact(rec, r.opts.Pretty)
	if err != nil {
		return fmt.Errorf("marshal artifact %s: %w", path, err)
	}
	n, err := fileutils.WriteFileAtomic(path, data, r.opts.FileMode)
	if err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	r.res.BytesWritten += n
	return nil
}
