package archive

import (
	"encoding/json"
	"encoding/xml"
	"strings"

	"github.com/fogbound/wolfstory/playdata"
	"github.com/fogbound/wolfstory/schema"
)

func marshalArtifact(rec map[string]any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rec, "", "  ")
	}
	return json.Marshal(rec)
}

// convertTalk handles one talk element. Public talks advance the
// run-scoped counter and carry its new value; the numbering is
// story-wide and never resets between periods.
func (r *run) convertTalk(se xml.StartElement) (map[string]any, error) {
	rec, err := convertAttrs(se, talkSpec)
	if err != nil {
		return nil, err
	}
	rec[playdata.KeyType] = playdata.TypeTalk

	if tt, _ := rec[playdata.KeyTalkType].(string); tt == "public" {
		r.publicTalkNo++
		r.res.PublicTalks++
		rec[playdata.KeyPublicTalkNo] = r.publicTalkNo
	}

	lines, err := r.collectTalkLines()
	if err != nil {
		return nil, err
	}
	rec[playdata.KeyLines] = lines
	return rec, nil
}

// collectTalkLines consumes the remainder of a talk element: li
// children become lines, everything else is skipped.
func (r *run) collectTalkLines() ([]any, error) {
	lines := []any{}
	for {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if matches(t, schema.ElemLi) {
				line, err := r.convertLine()
				if err != nil {
					return nil, err
				}
				lines = append(lines, line)
			} else if err := r.skipElement(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return lines, nil
		}
	}
}

// convertEvent handles one event element: fixed type string, optional
// kind-specific attributes, interleaved li lines, and the kind's typed
// child collection.
func (r *run) convertEvent(se xml.StartElement, spec eventSpec) (map[string]any, error) {
	rec, err := convertAttrs(se, spec.attrs)
	if err != nil {
		return nil, err
	}
	rec[playdata.KeyType] = se.Name.Local

	lines := []any{}
	var (
		roleHeads map[string]any
		avatarIDs []any
		votes     map[string]any
		nominated map[string]any
	)
	switch spec.extra {
	case extraRoleHeads:
		roleHeads = map[string]any{}
	case extraAvatarRefs:
		avatarIDs = []any{}
	case extraVotes:
		votes = map[string]any{}
	case extraNominated:
		nominated = map[string]any{}
	}

	for done := false; !done; {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case matches(t, schema.ElemLi):
				line, err := r.convertLine()
				if err != nil {
					return nil, err
				}
				lines = append(lines, line)
			case spec.extra == extraRoleHeads && matches(t, schema.ElemRoleHeads):
				child, err := r.convertChild(t, roleHeadsSpec)
				if err != nil {
					return nil, err
				}
				roleHeads[child["role"].(string)] = child["heads"]
			case spec.extra == extraAvatarRefs && matches(t, schema.ElemAvatarRef):
				child, err := r.convertChild(t, avatarRefSpec)
				if err != nil {
					return nil, err
				}
				avatarIDs = append(avatarIDs, child[playdata.KeyAvatarID])
			case spec.extra == extraVotes && matches(t, schema.ElemVote):
				child, err := r.convertChild(t, voteSpec)
				if err != nil {
					return nil, err
				}
				votes[child[playdata.KeyByWhom].(string)] = child[playdata.KeyTarget]
			case spec.extra == extraNominated && matches(t, schema.ElemNominated):
				child, err := r.convertChild(t, nominatedSpec)
				if err != nil {
					return nil, err
				}
				nominated[child[playdata.KeyAvatarID].(string)] = child["count"]
			default:
				if err := r.skipElement(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			done = true
		}
	}

	rec[playdata.KeyLines] = lines
	switch spec.extra {
	case extraRoleHeads:
		rec[playdata.KeyRoleHeads] = roleHeads
	case extraAvatarRefs:
		rec[playdata.KeyAvatarIDs] = avatarIDs
	case extraVotes:
		rec[playdata.KeyVotes] = votes
	case extraNominated:
		rec[playdata.KeyNominated] = nominated
	}
	return rec, nil
}

// convertChild converts an attribute-only child element and consumes
// it through its end tag.
func (r *run) convertChild(se xml.StartElement, spec elementSpec) (map[string]any, error) {
	rec, err := convertAttrs(se, spec)
	if err != nil {
		return nil, err
	}
	if err := r.skipElement(); err != nil {
		return nil, err
	}
	return rec, nil
}

// convertLine builds one line value from an li element: character data
// runs interleaved with rawdata records. Zero pieces yield the empty
// string, a single piece is used verbatim, several become an ordered
// array.
func (r *run) convertLine() (any, error) {
	var pieces []any
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			pieces = append(pieces, text.String())
			text.Reset()
		}
	}

	for {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			if matches(t, schema.ElemRawdata) {
				flush()
				rd, err := r.convertRawdata(t)
				if err != nil {
					return nil, err
				}
				pieces = append(pieces, rd)
			} else if err := r.skipElement(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			flush()
			switch len(pieces) {
			case 0:
				return "", nil
			case 1:
				return pieces[0], nil
			default:
				return pieces, nil
			}
		}
	}
}

// convertRawdata keeps the encoded fragment as a structured record:
// the source encoding, the hex bytes, and the decoded character when
// the archive could represent it.
func (r *run) convertRawdata(se xml.StartElement) (map[string]any, error) {
	rec, err := convertAttrs(se, rawdataSpec)
	if err != nil {
		return nil, err
	}

	var char strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 1 {
				char.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if char.Len() > 0 {
		rec[playdata.KeyChar] = char.String()
	}
	return rec, nil
}
