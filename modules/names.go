package modules

import (
	"fmt"
	"strings"
)

// SplitName splits a dotted qualified name ("acme.filters.Grayscale") into
// its module ("acme.filters") and member ("Grayscale") parts.
func SplitName(qualified string) (module, member string, err error) {
	idx := strings.LastIndex(qualified, ".")
	if idx <= 0 || idx == len(qualified)-1 {
		return "", "", fmt.Errorf("qualified name %q must have the form module.Member", qualified)
	}
	return qualified[:idx], qualified[idx+1:], nil
}

// JoinName builds a dotted qualified name from a module and a member name.
func JoinName(module, member string) string {
	return module + "." + member
}

// SplitRef splits an entry-point reference ("acme.filters:ListClasses") into
// its module and function parts.
func SplitRef(ref string) (module, function string, err error) {
	idx := strings.Index(ref, ":")
	if idx <= 0 || idx == len(ref)-1 {
		return "", "", fmt.Errorf("reference %q must have the form module:function", ref)
	}
	return ref[:idx], ref[idx+1:], nil
}

// SplitRefList parses a comma-separated list of entry-point references, the
// format used by the environment-variable override. Empty elements are
// skipped; surrounding whitespace is trimmed.
func SplitRefList(s string) []string {
	var refs []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		refs = append(refs, part)
	}
	return refs
}
