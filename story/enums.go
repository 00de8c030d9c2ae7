package story

import "github.com/fogbound/wolfstory/schema"

// PeriodType is the kind of one game day.
type PeriodType string

const (
	PeriodPrologue PeriodType = "prologue"
	PeriodProgress PeriodType = "progress"
	PeriodEpilogue PeriodType = "epilogue"
)

// ParsePeriodType decodes the archive's canonical string; unknown
// strings yield false.
func ParsePeriodType(s string) (PeriodType, bool) {
	switch PeriodType(s) {
	case PeriodPrologue, PeriodProgress, PeriodEpilogue:
		return PeriodType(s), true
	}
	return "", false
}

func (p PeriodType) String() string { return string(p) }

// TalkType is the visibility class of one speech act.
type TalkType string

const (
	TalkPublic  TalkType = "public"
	TalkWolf    TalkType = "wolf"
	TalkPrivate TalkType = "private"
	TalkGrave   TalkType = "grave"
)

// ParseTalkType decodes the archive's canonical string; unknown
// strings yield false.
func ParseTalkType(s string) (TalkType, bool) {
	switch TalkType(s) {
	case TalkPublic, TalkWolf, TalkPrivate, TalkGrave:
		return TalkType(s), true
	}
	return "", false
}

func (t TalkType) String() string { return string(t) }

// EventFamily is re-exported from the schema registry so consumers of
// the typed model need not import it separately.
type EventFamily = schema.EventFamily

const (
	FamilyAnnounce = schema.FamilyAnnounce
	FamilyOrder    = schema.FamilyOrder
	FamilyExtra    = schema.FamilyExtra
)
