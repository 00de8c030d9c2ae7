// Package schema holds the static vocabulary of the village archive
// format: namespace URIs, element names, and the event-kind table.
// It has no behavior beyond lookups and is shared by the converter and
// the story model layers.
package schema

// Two namespace URIs have carried the archive vocabulary over the
// years; both identify the same element/attribute set.
const (
	NamespaceSourceforge = "http://jindolf.sourceforge.jp/xml/ns/501"
	NamespaceSFO         = "http://jindolf.sfo.jp/xml/ns/501"
)

// IsArchiveNamespace reports whether uri is one of the accepted
// archive namespaces.
func IsArchiveNamespace(uri string) bool {
	return uri == NamespaceSourceforge || uri == NamespaceSFO
}

// Structural element local names.
const (
	ElemVillage    = "village"
	ElemAvatarList = "avatarList"
	ElemAvatar     = "avatar"
	ElemPeriod     = "period"
	ElemTalk       = "talk"
	ElemLi         = "li"
	ElemRawdata    = "rawdata"
	ElemRoleHeads  = "roleHeads"
	ElemAvatarRef  = "avatarRef"
	ElemVote       = "vote"
	ElemNominated  = "nominated"
)

// Event element local names. The archive records every system message
// as one of these; "assault" is reinterpreted downstream as a wolf
// talk rather than a plain event.
const (
	EventStartEntry   = "startEntry"
	EventOnStage      = "onStage"
	EventStartMirror  = "startMirror"
	EventOpenRole     = "openRole"
	EventMurdered     = "murdered"
	EventStartAssault = "startAssault"
	EventSurvivor     = "survivor"
	EventCounting     = "counting"
	EventSuddenDeath  = "suddenDeath"
	EventNoMurder     = "noMurder"
	EventWinVillage   = "winVillage"
	EventWinWolf      = "winWolf"
	EventWinHamster   = "winHamster"
	EventPlayerList   = "playerList"
	EventPanic        = "panic"
	EventExecution    = "execution"
	EventVanish       = "vanish"
	EventCheckout     = "checkout"
	EventShortMember  = "shortMember"
	EventAskEntry     = "askEntry"
	EventAskCommit    = "askCommit"
	EventNoComment    = "noComment"
	EventStayEpilogue = "stayEpilogue"
	EventGameOver     = "gameOver"
	EventJudge        = "judge"
	EventGuard        = "guard"
	EventCounting2    = "counting2"
	EventAssault      = "assault"
)

// EventFamily is the display category of an event kind.
type EventFamily string

const (
	FamilyAnnounce EventFamily = "announce"
	FamilyOrder    EventFamily = "order"
	FamilyExtra    EventFamily = "extra"
)

var eventFamilies = map[string]EventFamily{
	EventStartEntry:   FamilyAnnounce,
	EventOnStage:      FamilyAnnounce,
	EventStartMirror:  FamilyAnnounce,
	EventOpenRole:     FamilyAnnounce,
	EventMurdered:     FamilyAnnounce,
	EventStartAssault: FamilyAnnounce,
	EventSurvivor:     FamilyAnnounce,
	EventCounting:     FamilyAnnounce,
	EventSuddenDeath:  FamilyAnnounce,
	EventNoMurder:     FamilyAnnounce,
	EventWinVillage:   FamilyAnnounce,
	EventWinWolf:      FamilyAnnounce,
	EventWinHamster:   FamilyAnnounce,
	EventPlayerList:   FamilyAnnounce,
	EventPanic:        FamilyAnnounce,
	EventExecution:    FamilyAnnounce,
	EventVanish:       FamilyAnnounce,
	EventCheckout:     FamilyAnnounce,
	EventShortMember:  FamilyAnnounce,
	EventAskEntry:     FamilyOrder,
	EventAskCommit:    FamilyOrder,
	EventNoComment:    FamilyOrder,
	EventStayEpilogue: FamilyOrder,
	EventGameOver:     FamilyOrder,
	EventJudge:        FamilyExtra,
	EventGuard:        FamilyExtra,
	EventCounting2:    FamilyExtra,
	EventAssault:      FamilyExtra,
}

// EventFamilyOf maps an event element name to its family. The second
// return value is false for names outside the vocabulary.
func EventFamilyOf(name string) (EventFamily, bool) {
	f, ok := eventFamilies[name]
	return f, ok
}

// EventNames returns the full event vocabulary in no particular order.
func EventNames() []string {
	names := make([]string, 0, len(eventFamilies))
	for name := range eventFamilies {
		names = append(names, name)
	}
	return names
}
