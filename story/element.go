package story

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/fogbound/wolfstory/playdata"
)

// StoryElement is one entry of a period's reconstructed sequence:
// either a Talk (possibly a WolfAttackTalk) or a StoryEvent. Every
// element carries its message lines and a non-owning back-reference to
// its period; zero lines is a valid, purely structural element.
type StoryElement interface {
	Lines() []string
	Period() *Period
}

type elementBase struct {
	period *Period
	lines  []string
}

func (e *elementBase) Lines() []string { return e.lines }
func (e *elementBase) Period() *Period { return e.period }

// Talk is one speech act.
type Talk struct {
	elementBase

	TalkType TalkType
	Speaker  *Avatar
	Time     TimePart

	// PublicTalkNo is the story-wide 1-based sequence number of a
	// public talk; zero for every other talk type.
	PublicTalkNo int
}

// WolfAttackTalk is an assault element reinterpreted as a wolf talk.
type WolfAttackTalk struct {
	Talk
}

// StoryEvent is any announcement, order or extra system message.
type StoryEvent struct {
	elementBase

	Type   string
	Family EventFamily
}

func newTalk(doc *playdata.ElementDoc, p *Period) (*Talk, error) {
	if doc.TalkType == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyTalkType)
	}
	tt, ok := ParseTalkType(*doc.TalkType)
	if !ok {
		return nil, fmt.Errorf("%w: talk type %q", ErrUnknownValue, *doc.TalkType)
	}
	if doc.AvatarID == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyAvatarID)
	}
	return finishTalk(doc, p, tt, *doc.AvatarID)
}

func newAssaultTalk(doc *playdata.ElementDoc, p *Period) (*Talk, error) {
	if doc.ByWhom == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyByWhom)
	}
	return finishTalk(doc, p, TalkWolf, *doc.ByWhom)
}

func finishTalk(doc *playdata.ElementDoc, p *Period, tt TalkType, speakerID string) (*Talk, error) {
	speaker, ok := p.story.Avatar(speakerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAvatar, speakerID)
	}
	if doc.Time == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyTime)
	}
	tm, ok := ParseTimePart(*doc.Time)
	if !ok {
		return nil, fmt.Errorf("%w: time %q", ErrUnknownValue, *doc.Time)
	}

	lines, err := buildLines(doc, p.story)
	if err != nil {
		return nil, err
	}

	t := &Talk{
		elementBase: elementBase{period: p, lines: lines},
		TalkType:    tt,
		Speaker:     speaker,
		Time:        tm,
	}
	if doc.PublicTalkNo != nil {
		t.PublicTalkNo = *doc.PublicTalkNo
	}
	return t, nil
}

// buildLines coerces the element's generic lines array into
// displayable strings.
func buildLines(doc *playdata.ElementDoc, s *Story) ([]string, error) {
	if doc.Lines == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyLines)
	}
	out := make([]string, 0, len(doc.Lines))
	for _, entry := range doc.Lines {
		text, err := lineText(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

func lineText(entry any) (string, error) {
	switch v := entry.(type) {
	case string:
		return v, nil
	case map[string]any:
		return rawdataText(v)
	case []any:
		// A multi-piece line: verbatim text interleaved with rawdata
		// records.
		var text string
		for _, piece := range v {
			s, err := lineText(piece)
			if err != nil {
				return "", err
			}
			text += s
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: line entry %v (%T)", ErrUnknownValue, entry, entry)
	}
}

// rawdataText resolves one rawdata record to its character content:
// the archived decoded character when present, otherwise the hex bytes
// decoded with the record's declared encoding.
func rawdataText(rec map[string]any) (string, error) {
	if ch, ok := rec[playdata.KeyChar].(string); ok && ch != "" {
		return ch, nil
	}
	hexBin, ok := rec[playdata.KeyHexBin].(string)
	if !ok {
		return "", fmt.Errorf("%w: line entry %v", ErrUnknownValue, rec)
	}
	raw, err := hex.DecodeString(hexBin)
	if err != nil {
		return "", fmt.Errorf("%w: hexBin %q", ErrUnknownValue, hexBin)
	}
	name, _ := rec[playdata.KeyEncoding].(string)
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return "", fmt.Errorf("%w: encoding %q", ErrUnknownValue, name)
	}
	if enc == nil {
		// ianaindex maps ASCII-compatible trivial charsets to nil.
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: hexBin %q as %s", ErrUnknownValue, hexBin, name)
	}
	return string(decoded), nil
}
