package story

import (
	"fmt"

	"github.com/fogbound/wolfstory/playdata"
	"github.com/fogbound/wolfstory/schema"
)

// Period is one game day with its reconstructed element sequence. It
// holds a non-owning back-reference to its Story.
type Period struct {
	story *Story

	Type     PeriodType
	Day      int
	Elements []StoryElement
}

// Story returns the owning story.
func (p *Period) Story() *Story { return p.story }

// NewPeriod builds a Period from an in-memory period document against
// its owning Story.
func NewPeriod(doc *playdata.PeriodDoc, s *Story) (*Period, error) {
	if doc.Type == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyType)
	}
	pt, ok := ParsePeriodType(*doc.Type)
	if !ok {
		return nil, fmt.Errorf("%w: period type %q", ErrUnknownValue, *doc.Type)
	}
	if doc.Day == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyDay)
	}

	p := &Period{story: s, Type: pt, Day: *doc.Day}
	if doc.Elements == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyElements)
	}
	for i := range doc.Elements {
		el, err := buildElement(&doc.Elements[i], p)
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		p.Elements = append(p.Elements, el)
	}
	return p, nil
}

func buildElement(doc *playdata.ElementDoc, p *Period) (StoryElement, error) {
	if doc.Type == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyType)
	}
	switch *doc.Type {
	case playdata.TypeTalk:
		return newTalk(doc, p)
	case playdata.TypeAssault:
		// An assault is a secret speech act: relabel it as a wolf
		// talk spoken by its actor.
		t, err := newAssaultTalk(doc, p)
		if err != nil {
			return nil, err
		}
		return &WolfAttackTalk{Talk: *t}, nil
	default:
		fam, ok := schema.EventFamilyOf(*doc.Type)
		if !ok {
			return nil, fmt.Errorf("%w: element type %q", ErrUnknownValue, *doc.Type)
		}
		lines, err := buildLines(doc, p.story)
		if err != nil {
			return nil, err
		}
		return &StoryEvent{
			elementBase: elementBase{period: p, lines: lines},
			Type:        *doc.Type,
			Family:      fam,
		}, nil
	}
}
