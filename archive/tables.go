package archive

import (
	"github.com/fogbound/wolfstory/playdata"
	"github.com/fogbound/wolfstory/schema"
)

// Documented attribute defaults of the village element.
const (
	defaultLang         = "ja-JP"
	defaultDisclosure   = "complete"
	defaultIsValid      = "true"
	defaultOrigEncoding = "Shift_JIS"
	defaultTimezone     = "GMT+09:00"
)

func str(name string) attrSpec  { return attrSpec{name: name, key: name, cast: castString} }
func num(name string) attrSpec  { return attrSpec{name: name, key: name, cast: castInt} }
func flag(name string) attrSpec { return attrSpec{name: name, key: name, cast: castBool} }

var villageSpec = elementSpec{
	attrs: []attrSpec{
		str(playdata.KeyFullName),
		num(playdata.KeyVid),
		str(playdata.KeyState),
		str(playdata.KeyLandName),
		str(playdata.KeyFormalName),
		str(playdata.KeyLandID),
		str(playdata.KeyGraveIconURI),
		str(playdata.KeyLang),
		str(playdata.KeyLocale),
		str(playdata.KeyDisclosure),
		flag(playdata.KeyIsValid),
		str(playdata.KeyOrigEncoding),
		str(playdata.KeyTimezone),
	},
	required: []string{
		playdata.KeyFullName,
		playdata.KeyVid,
		playdata.KeyState,
		playdata.KeyLandName,
		playdata.KeyFormalName,
		playdata.KeyLandID,
		playdata.KeyGraveIconURI,
	},
	defaults: map[string]string{
		playdata.KeyLang:         defaultLang,
		playdata.KeyLocale:       defaultLang,
		playdata.KeyDisclosure:   defaultDisclosure,
		playdata.KeyIsValid:      defaultIsValid,
		playdata.KeyOrigEncoding: defaultOrigEncoding,
		playdata.KeyTimezone:     defaultTimezone,
	},
}

var avatarSpec = elementSpec{
	attrs: []attrSpec{
		str(playdata.KeyAvatarID),
		str(playdata.KeyFullName),
		str(playdata.KeyShortName),
		str(playdata.KeyFaceIconURI),
	},
	required: []string{
		playdata.KeyAvatarID,
		playdata.KeyFullName,
		playdata.KeyShortName,
	},
}

var periodSpec = elementSpec{
	attrs: []attrSpec{
		str(playdata.KeyType),
		num(playdata.KeyDay),
		str(playdata.KeyDisclosure),
		str(playdata.KeyNextCommitDay),
		str(playdata.KeyCommitTime),
		str(playdata.KeySourceURI),
	},
	required: []string{
		playdata.KeyType,
		playdata.KeyDay,
		playdata.KeyNextCommitDay,
		playdata.KeyCommitTime,
		playdata.KeySourceURI,
	},
	defaults: map[string]string{
		playdata.KeyDisclosure: defaultDisclosure,
	},
}

var talkSpec = elementSpec{
	attrs: []attrSpec{
		{name: playdata.KeyType, key: playdata.KeyTalkType, cast: castString},
		str(playdata.KeyAvatarID),
		str(playdata.KeyXname),
		str(playdata.KeyTime),
		str(playdata.KeyFaceIconURI),
	},
	required: []string{
		playdata.KeyType,
		playdata.KeyAvatarID,
		playdata.KeyXname,
		playdata.KeyTime,
	},
}

var rawdataSpec = elementSpec{
	attrs: []attrSpec{
		str(playdata.KeyEncoding),
		str(playdata.KeyHexBin),
	},
	required: []string{
		playdata.KeyEncoding,
		playdata.KeyHexBin,
	},
}

// extraKind selects the element-specific child collection of an event
// converter.
type extraKind int

const (
	extraNone extraKind = iota
	extraRoleHeads
	extraAvatarRefs
	extraVotes
	extraNominated
)

type eventSpec struct {
	attrs elementSpec
	extra extraKind
}

// Child element specs for the typed collections.
var (
	roleHeadsSpec = elementSpec{
		attrs:    []attrSpec{str("role"), num("heads")},
		required: []string{"role", "heads"},
	}
	avatarRefSpec = elementSpec{
		attrs:    []attrSpec{str(playdata.KeyAvatarID)},
		required: []string{playdata.KeyAvatarID},
	}
	voteSpec = elementSpec{
		attrs:    []attrSpec{str(playdata.KeyByWhom), str(playdata.KeyTarget)},
		required: []string{playdata.KeyByWhom, playdata.KeyTarget},
	}
	nominatedSpec = elementSpec{
		attrs:    []attrSpec{str(playdata.KeyAvatarID), num("count")},
		required: []string{playdata.KeyAvatarID, "count"},
	}
)

// eventSpecs is the per-kind conversion policy for every event element
// in the vocabulary. Kinds absent from a field get the zero policy:
// no attributes beyond the line list.
var eventSpecs = map[string]eventSpec{
	schema.EventStartEntry:   {},
	schema.EventStartMirror:  {},
	schema.EventStartAssault: {},
	schema.EventNoMurder:     {},
	schema.EventWinVillage:   {},
	schema.EventWinWolf:      {},
	schema.EventWinHamster:   {},
	schema.EventPlayerList:   {},
	schema.EventPanic:        {},
	schema.EventShortMember:  {},
	schema.EventGameOver:     {},

	schema.EventOnStage: {
		attrs: elementSpec{
			attrs:    []attrSpec{num(playdata.KeyEntryNo), str(playdata.KeyAvatarID)},
			required: []string{playdata.KeyEntryNo, playdata.KeyAvatarID},
		},
	},
	schema.EventSuddenDeath: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyAvatarID)},
			required: []string{playdata.KeyAvatarID},
		},
	},
	schema.EventVanish: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyAvatarID)},
			required: []string{playdata.KeyAvatarID},
		},
	},
	schema.EventCheckout: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyAvatarID)},
			required: []string{playdata.KeyAvatarID},
		},
	},
	schema.EventOpenRole: {
		extra: extraRoleHeads,
	},
	schema.EventMurdered: {
		extra: extraAvatarRefs,
	},
	schema.EventSurvivor: {
		extra: extraAvatarRefs,
	},
	schema.EventNoComment: {
		extra: extraAvatarRefs,
	},
	schema.EventCounting: {
		attrs: elementSpec{
			attrs: []attrSpec{str(playdata.KeyVictim)},
		},
		extra: extraVotes,
	},
	schema.EventCounting2: {
		extra: extraVotes,
	},
	schema.EventExecution: {
		attrs: elementSpec{
			attrs: []attrSpec{str(playdata.KeyVictim)},
		},
		extra: extraNominated,
	},
	schema.EventAskEntry: {
		attrs: elementSpec{
			attrs: []attrSpec{
				str(playdata.KeyCommitTime),
				num(playdata.KeyMinMembers),
				num(playdata.KeyMaxMembers),
			},
			required: []string{playdata.KeyCommitTime, playdata.KeyMinMembers, playdata.KeyMaxMembers},
		},
	},
	schema.EventAskCommit: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyLimitVote), str(playdata.KeyLimitSpecial)},
			required: []string{playdata.KeyLimitVote, playdata.KeyLimitSpecial},
		},
	},
	schema.EventStayEpilogue: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyWinner), str(playdata.KeyLimitTime)},
			required: []string{playdata.KeyWinner, playdata.KeyLimitTime},
		},
	},
	schema.EventJudge: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyByWhom), str(playdata.KeyTarget)},
			required: []string{playdata.KeyByWhom, playdata.KeyTarget},
		},
	},
	schema.EventGuard: {
		attrs: elementSpec{
			attrs:    []attrSpec{str(playdata.KeyByWhom), str(playdata.KeyTarget)},
			required: []string{playdata.KeyByWhom, playdata.KeyTarget},
		},
	},
	schema.EventAssault: {
		attrs: elementSpec{
			attrs: []attrSpec{
				str(playdata.KeyByWhom),
				str(playdata.KeyTarget),
				str(playdata.KeyXname),
				str(playdata.KeyTime),
				str(playdata.KeyFaceIconURI),
			},
			required: []string{playdata.KeyByWhom, playdata.KeyTarget, playdata.KeyXname, playdata.KeyTime},
		},
	},
}
