package playdata

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Raw accessors over an unparsed period artifact. The typed story
// model deliberately does not surface the kind-specific collections
// (role tallies, vote maps, victim lists); consumers that need them
// read the intermediate representation directly through these.

// ElementType returns the type string of the i-th element, or "" when
// the index is out of range.
func ElementType(period []byte, i int) string {
	return gjson.GetBytes(period, fmt.Sprintf("elements.%d.type", i)).String()
}

// ElementCount returns the length of the elements array.
func ElementCount(period []byte) int {
	return int(gjson.GetBytes(period, "elements.#").Int())
}

// RoleHeads returns the role→headcount map of the i-th element
// (openRole events), or nil when absent.
func RoleHeads(period []byte, i int) map[string]int {
	res := gjson.GetBytes(period, fmt.Sprintf("elements.%d.roleHeads", i))
	if !res.Exists() {
		return nil
	}
	out := make(map[string]int)
	res.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = int(v.Int())
		return true
	})
	return out
}

// Votes returns the voter→target map of the i-th element (counting and
// counting2 events), or nil when absent.
func Votes(period []byte, i int) map[string]string {
	res := gjson.GetBytes(period, fmt.Sprintf("elements.%d.votes", i))
	if !res.Exists() {
		return nil
	}
	out := make(map[string]string)
	res.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = v.String()
		return true
	})
	return out
}

// Nominated returns the candidate→count map of the i-th element
// (execution events), or nil when absent.
func Nominated(period []byte, i int) map[string]int {
	res := gjson.GetBytes(period, fmt.Sprintf("elements.%d.nominated", i))
	if !res.Exists() {
		return nil
	}
	out := make(map[string]int)
	res.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = int(v.Int())
		return true
	})
	return out
}

// AvatarRefs returns the ordered avatar-id list of the i-th element
// (murdered, survivor and noComment events), or nil when absent.
func AvatarRefs(period []byte, i int) []string {
	res := gjson.GetBytes(period, fmt.Sprintf("elements.%d.avatarIds", i))
	if !res.Exists() {
		return nil
	}
	var out []string
	res.ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return true
	})
	return out
}
