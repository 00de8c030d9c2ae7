package playdata

// Typed views over the generic JSON records. Fields whose absence the
// model builder must detect are pointers; everything else carries its
// zero value when omitted. These structs are also the source of the
// published JSON Schema for the playdata format (cmd/playdata-schema).

// VillageDoc is the shape of the village summary artifact.
type VillageDoc struct {
	FullName     *string `json:"fullName" jsonschema_description:"Full display name of the village"`
	Vid          *int    `json:"vid,omitempty"`
	State        *string `json:"state,omitempty"`
	LandName     *string `json:"landName,omitempty"`
	FormalName   *string `json:"formalName,omitempty"`
	LandID       *string `json:"landId,omitempty"`
	GraveIconURI *string `json:"graveIconURI"`
	Lang         *string `json:"lang,omitempty"`
	Locale       *string `json:"locale,omitempty"`
	Disclosure   *string `json:"disclosure,omitempty"`
	IsValid      *bool   `json:"isValid,omitempty"`
	OrigEncoding *string `json:"origencoding,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`

	AvatarList []AvatarDoc        `json:"avatarList"`
	Periods    []PeriodSummaryDoc `json:"periods"`
}

// AvatarDoc is one entry of the village's avatarList array.
type AvatarDoc struct {
	AvatarID    *string `json:"avatarId"`
	FullName    *string `json:"fullName"`
	ShortName   *string `json:"shortName"`
	FaceIconURI *string `json:"faceIconURI,omitempty"`
}

// PeriodSummaryDoc is the shallow per-period entry embedded in the
// village artifact. Href names the period's own artifact file.
type PeriodSummaryDoc struct {
	Type          *string `json:"type"`
	Day           *int    `json:"day"`
	Href          *string `json:"href"`
	Disclosure    *string `json:"disclosure,omitempty"`
	NextCommitDay *string `json:"nextCommitDay,omitempty"`
	CommitTime    *string `json:"commitTime,omitempty"`
	SourceURI     *string `json:"sourceURI,omitempty"`
}

// PeriodDoc is the shape of one period artifact.
type PeriodDoc struct {
	Type          *string `json:"type"`
	Day           *int    `json:"day"`
	Disclosure    *string `json:"disclosure,omitempty"`
	NextCommitDay *string `json:"nextCommitDay,omitempty"`
	CommitTime    *string `json:"commitTime,omitempty"`
	SourceURI     *string `json:"sourceURI,omitempty"`

	Elements []ElementDoc `json:"elements"`
}

// ElementDoc is one entry of a period's elements array. Type and Lines
// are common to every element kind; the rest is kind-specific and
// omitted elsewhere. Lines entries are strings, rawdata objects
// (encoding/hexBin/char), or arrays interleaving the two.
type ElementDoc struct {
	Type  *string `json:"type"`
	Lines []any   `json:"lines"`

	// Talk and assault.
	TalkType     *string `json:"talkType,omitempty"`
	AvatarID     *string `json:"avatarId,omitempty"`
	Xname        *string `json:"xname,omitempty"`
	Time         *string `json:"time,omitempty"`
	FaceIconURI  *string `json:"faceIconURI,omitempty"`
	PublicTalkNo *int    `json:"publicTalkNo,omitempty"`

	// Event attributes.
	ByWhom       *string `json:"byWhom,omitempty"`
	Target       *string `json:"target,omitempty"`
	Victim       *string `json:"victim,omitempty"`
	EntryNo      *int    `json:"entryNo,omitempty"`
	CommitTime   *string `json:"commitTime,omitempty"`
	MinMembers   *int    `json:"minMembers,omitempty"`
	MaxMembers   *int    `json:"maxMembers,omitempty"`
	LimitVote    *string `json:"limitVote,omitempty"`
	LimitSpecial *string `json:"limitSpecial,omitempty"`
	Winner       *string `json:"winner,omitempty"`
	LimitTime    *string `json:"limitTime,omitempty"`

	// Event child collections.
	RoleHeads map[string]int    `json:"roleHeads,omitempty"`
	AvatarIDs []string          `json:"avatarIds,omitempty"`
	Votes     map[string]string `json:"votes,omitempty"`
	Nominated map[string]int    `json:"nominated,omitempty"`
}
