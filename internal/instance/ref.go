package instance

import "strings"

// Ref names an instance: an id qualified with the region it lives in. Refs
// are parsed from the "[region:]id" form accepted on the command line.
type Ref struct {
	Region string
	ID     string
}

// ParseRef parses "[region:]id". Only the first colon separates the region,
// so ids containing colons keep the remainder intact. When no region is given
// the default region applies. Region values are not validated here; an
// unknown region surfaces later as a connection failure.
func ParseRef(raw, defaultRegion string) Ref {
	if region, id, ok := strings.Cut(raw, ":"); ok {
		return Ref{Region: region, ID: id}
	}
	return Ref{Region: defaultRegion, ID: raw}
}

// ParseNameRef parses "[region:]name" for Name-tag lookups. The grammar is
// the same as ParseRef; the result's ID field holds the name to look up.
func ParseNameRef(raw, defaultRegion string) Ref {
	return ParseRef(raw, defaultRegion)
}

// String renders the ref in its command-line form.
func (r Ref) String() string {
	if r.Region == "" {
		return r.ID
	}
	return r.Region + ":" + r.ID
}
