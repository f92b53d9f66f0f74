package artifactory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BuildQuery flattens a mapping of argument name to scalar-or-list
// into "key=value" entries joined by delim (always "&" in practice).
// List values are comma-joined; scalars are used directly. Keys are
// emitted in sorted order so the output is stable within a process.
//
// Values are inserted as given; individual endpoints that need
// percent-encoded values encode them before calling this. Unsupported
// value types fail fast with a descriptive error rather than producing
// a malformed query string.
func BuildQuery(delim string, args map[string]interface{}) (string, error) {
	keys := make([]string, 0, len(args))
	for key := range args {
		if key == "" {
			return "", NewArgumentError("args", args, "query argument name must not be empty")
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, key := range keys {
		value, err := queryValue(key, args[key])
		if err != nil {
			return "", err
		}
		entries = append(entries, key+"="+value)
	}

	return strings.Join(entries, delim), nil
}

func queryValue(key string, value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ","), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", NewArgumentError(key, value,
			fmt.Sprintf("unsupported query argument type %T for %q", value, key))
	}
}
