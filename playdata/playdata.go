// Package playdata defines the on-disk contract between the archive
// converter and the story model: artifact file names, the JSON keys of
// the generic records, and typed document views over those records.
// Existing playdata directories on disk must remain loadable, so the
// names and keys here are stable.
package playdata

import "fmt"

// VillageFile is the fixed name of the village summary artifact.
const VillageFile = "playdata.json"

// PeriodFileName returns the artifact name for the given day, e.g.
// "period-0.json". Days are formatted without padding.
func PeriodFileName(day int) string {
	return fmt.Sprintf("period-%d.json", day)
}

// JSON keys of the generic records.
const (
	KeyFullName     = "fullName"
	KeyVid          = "vid"
	KeyState        = "state"
	KeyLandName     = "landName"
	KeyFormalName   = "formalName"
	KeyLandID       = "landId"
	KeyGraveIconURI = "graveIconURI"
	KeyLang         = "lang"
	KeyLocale       = "locale"
	KeyDisclosure   = "disclosure"
	KeyIsValid      = "isValid"
	KeyOrigEncoding = "origencoding"
	KeyTimezone     = "timezone"
	KeyAvatarList   = "avatarList"
	KeyPeriods      = "periods"

	KeyAvatarID    = "avatarId"
	KeyShortName   = "shortName"
	KeyFaceIconURI = "faceIconURI"

	KeyType          = "type"
	KeyDay           = "day"
	KeyHref          = "href"
	KeyNextCommitDay = "nextCommitDay"
	KeyCommitTime    = "commitTime"
	KeySourceURI     = "sourceURI"
	KeyElements      = "elements"

	KeyTalkType     = "talkType"
	KeyXname        = "xname"
	KeyTime         = "time"
	KeyPublicTalkNo = "publicTalkNo"
	KeyLines        = "lines"

	KeyEncoding = "encoding"
	KeyHexBin   = "hexBin"
	KeyChar     = "char"

	KeyByWhom       = "byWhom"
	KeyTarget       = "target"
	KeyVictim       = "victim"
	KeyEntryNo      = "entryNo"
	KeyMinMembers   = "minMembers"
	KeyMaxMembers   = "maxMembers"
	KeyLimitVote    = "limitVote"
	KeyLimitSpecial = "limitSpecial"
	KeyWinner       = "winner"
	KeyLimitTime    = "limitTime"
	KeyRoleHeads    = "roleHeads"
	KeyAvatarIDs    = "avatarIds"
	KeyVotes        = "votes"
	KeyNominated    = "nominated"
)

// Element type values that are not plain events.
const (
	TypeTalk    = "talk"
	TypeAssault = "assault"
)
