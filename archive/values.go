package archive

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// castFunc converts one raw attribute value into its JSON
// representation.
type castFunc func(raw string) (any, error)

func castString(raw string) (any, error) {
	return raw, nil
}

func castInt(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("not a base-10 integer")
	}
	return n, nil
}

// castBool accepts exactly the four schema literals; anything else,
// including different casing, is rejected.
func castBool(raw string) (any, error) {
	switch raw {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return nil, fmt.Errorf("not a boolean literal")
}

// attrSpec maps one attribute to its output key and caster. Most
// attributes keep their name as the key; talk's "type" becomes
// "talkType".
type attrSpec struct {
	name string
	key  string
	cast castFunc
}

// elementSpec is the declarative conversion policy of one element
// kind: which attributes are read, which must be present, and which
// get a default before casting.
type elementSpec struct {
	attrs    []attrSpec
	required []string
	defaults map[string]string
}

// convertAttrs applies spec to the element's attributes: substitute
// defaults, cast every present attribute, then enforce the required
// set. Missing attributes are reported in spec declaration order.
func convertAttrs(se xml.StartElement, spec elementSpec) (map[string]any, error) {
	present := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		// Namespaced attributes (xml:lang and friends) match by
		// local name.
		present[a.Name.Local] = a.Value
	}
	for name, def := range spec.defaults {
		if _, ok := present[name]; !ok {
			present[name] = def
		}
	}

	out := make(map[string]any, len(spec.attrs))
	for _, as := range spec.attrs {
		raw, ok := present[as.name]
		if !ok {
			continue
		}
		v, err := as.cast(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalidAttrValue, as.name, raw, err)
		}
		out[as.key] = v
	}

	for _, name := range spec.required {
		if _, ok := present[name]; !ok {
			return nil, fmt.Errorf("%w: %s in <%s>", ErrMissingAttr, name, se.Name.Local)
		}
	}
	return out, nil
}
