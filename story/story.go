// Package story rebuilds the typed domain graph from playdata
// artifacts: Story owns Avatars and period references; Periods load
// lazily and carry their ordered StoryElements. Everything here is
// read-only after construction, so periods may be loaded concurrently.
package story

import (
	"fmt"
	"path/filepath"

	"github.com/fogbound/wolfstory/fileutils"
	"github.com/fogbound/wolfstory/playdata"
)

// Avatar is one participant's immutable identity.
type Avatar struct {
	AvatarID    string
	FullName    string
	ShortName   string
	FaceIconURI string
}

// PeriodRef is the eager summary of one period; the detailed element
// list lives in the artifact named by Href and is loaded on demand.
type PeriodRef struct {
	Type PeriodType
	Day  int
	Href string
}

// Story is the root of the typed graph.
type Story struct {
	FullName     string
	LandName     string
	GraveIconURI string
	OrigEncoding string

	baseDir    string
	avatars    []*Avatar
	avatarByID map[string]*Avatar

	Periods []PeriodRef
}

// NewStoryFromFile builds a Story from a village artifact on disk;
// period artifacts are resolved relative to its directory.
func NewStoryFromFile(path string) (*Story, error) {
	var doc playdata.VillageDoc
	if err := fileutils.ReadJSONFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotLoad, path, err)
	}
	return NewStory(&doc, filepath.Dir(path))
}

// NewStory builds a Story from an in-memory village document. baseDir
// anchors the period artifact references.
func NewStory(doc *playdata.VillageDoc, baseDir string) (*Story, error) {
	if doc.FullName == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyFullName)
	}
	if doc.GraveIconURI == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyGraveIconURI)
	}

	s := &Story{
		FullName:     *doc.FullName,
		GraveIconURI: *doc.GraveIconURI,
		baseDir:      baseDir,
		avatarByID:   make(map[string]*Avatar),
	}
	if doc.LandName != nil {
		s.LandName = *doc.LandName
	}
	if doc.OrigEncoding != nil {
		s.OrigEncoding = *doc.OrigEncoding
	}

	if doc.AvatarList == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyAvatarList)
	}
	for i := range doc.AvatarList {
		av, err := newAvatar(&doc.AvatarList[i])
		if err != nil {
			return nil, err
		}
		if _, dup := s.avatarByID[av.AvatarID]; dup {
			return nil, fmt.Errorf("%w: duplicate avatar id %q", ErrUnknownValue, av.AvatarID)
		}
		s.avatars = append(s.avatars, av)
		s.avatarByID[av.AvatarID] = av
	}

	if doc.Periods == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyPeriods)
	}
	for i := range doc.Periods {
		ref, err := newPeriodRef(&doc.Periods[i])
		if err != nil {
			return nil, err
		}
		s.Periods = append(s.Periods, ref)
	}
	return s, nil
}

func newAvatar(doc *playdata.AvatarDoc) (*Avatar, error) {
	if doc.AvatarID == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyAvatarID)
	}
	if doc.FullName == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyFullName)
	}
	if doc.ShortName == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyShortName)
	}
	av := &Avatar{
		AvatarID:  *doc.AvatarID,
		FullName:  *doc.FullName,
		ShortName: *doc.ShortName,
	}
	if doc.FaceIconURI != nil {
		av.FaceIconURI = *doc.FaceIconURI
	}
	return av, nil
}

func newPeriodRef(doc *playdata.PeriodSummaryDoc) (PeriodRef, error) {
	if doc.Type == nil {
		return PeriodRef{}, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyType)
	}
	pt, ok := ParsePeriodType(*doc.Type)
	if !ok {
		return PeriodRef{}, fmt.Errorf("%w: period type %q", ErrUnknownValue, *doc.Type)
	}
	if doc.Day == nil {
		return PeriodRef{}, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyDay)
	}
	if doc.Href == nil {
		return PeriodRef{}, fmt.Errorf("%w: %s", ErrMissingData, playdata.KeyHref)
	}
	return PeriodRef{Type: pt, Day: *doc.Day, Href: *doc.Href}, nil
}

// Avatars returns the story's avatars in document order.
func (s *Story) Avatars() []*Avatar {
	return s.avatars
}

// Avatar returns the avatar having the given id.
func (s *Story) Avatar(id string) (*Avatar, bool) {
	av, ok := s.avatarByID[id]
	return av, ok
}

// LoadPeriod reads and parses the period artifact behind ref.
func (s *Story) LoadPeriod(ref PeriodRef) (*Period, error) {
	path := filepath.Join(s.baseDir, ref.Href)
	var doc playdata.PeriodDoc
	if err := fileutils.ReadJSONFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotLoad, path, err)
	}
	return NewPeriod(&doc, s)
}
