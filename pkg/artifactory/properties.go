package artifactory

import (
	"net/url"
	"sort"
	"strings"
)

// Properties is a mapping from property name to an ordered list of
// values. A nil or empty value list encodes as a single empty value.
//
// Map iteration order is not significant, but both encoders emit keys
// in sorted order so output is deterministic.
type Properties map[string][]string

// EncodeMatrix serializes the properties as matrix parameters:
// "key=v1;key=v2;key2=v3". Values are inserted literally, without
// percent-encoding; matrix parameters are path-segment-delimited and
// the remote service reads them textually. An empty map encodes as "".
func (p Properties) EncodeMatrix() (string, error) {
	keys, err := p.sortedKeys()
	if err != nil {
		return "", err
	}

	var segments []string
	for _, key := range keys {
		for _, value := range valuesOrEmpty(p[key]) {
			segments = append(segments, key+"="+value)
		}
	}

	return strings.Join(segments, ";"), nil
}

// EncodeQuery serializes the properties in the query-list form the
// property-set and plugin-execution endpoints expect:
// "key=v1,v2|key2=v3|". Each value is percent-encoded, values of one
// key are comma-joined, and every key group is terminated by a literal
// "|" (the terminators double as separators). An empty map encodes
// as "".
func (p Properties) EncodeQuery() (string, error) {
	keys, err := p.sortedKeys()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, key := range keys {
		values := valuesOrEmpty(p[key])
		escaped := make([]string, len(values))
		for i, value := range values {
			escaped[i] = percentEncode(value)
		}

		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(strings.Join(escaped, ","))
		b.WriteString("|")
	}

	return b.String(), nil
}

// Names returns the sorted property names. Used by endpoints that take
// a list of property names rather than full key/value pairs.
func (p Properties) Names() ([]string, error) {
	return p.sortedKeys()
}

func (p Properties) sortedKeys() ([]string, error) {
	keys := make([]string, 0, len(p))
	for key := range p {
		if key == "" {
			return nil, NewArgumentError("properties", p, "property name must not be empty")
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}

func valuesOrEmpty(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return values
}

// percentEncode escapes a value for the query-list property encoding.
// url.QueryEscape would emit "+" for spaces, which the remote service
// does not decode in this position, so spaces become %20.
func percentEncode(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
