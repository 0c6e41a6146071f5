// Package flagutil provides flag.Value implementations for the list-valued
// inputs of the gamesolver commands.
package flagutil

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/gamesolver/coalition"
)

// Float64List is a comma-separated list of numbers, e.g. "0,1,2.5".
type Float64List []float64

func (l *Float64List) String() string {
	if l == nil {
		return ""
	}

	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (l *Float64List) Set(s string) error {
	var result Float64List
	for _, part := range splitNonEmpty(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid number %q", part)
		}
		result = append(result, v)
	}

	*l = result
	return nil
}

// StringList is a comma-separated list of names, e.g. "O,R,W".
type StringList []string

func (l *StringList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *StringList) Set(s string) error {
	var result StringList
	for _, part := range splitNonEmpty(s, ",") {
		result = append(result, strings.TrimSpace(part))
	}

	*l = result
	return nil
}

// WorthTable is a characteristic function given as semicolon-separated
// "members:value" entries, where members are comma-separated. The empty
// coalition is written with no members, e.g. ":0;O:170;O,R:350".
type WorthTable struct {
	coalition.Worth
}

func (w *WorthTable) String() string {
	if w == nil || w.Worth == nil {
		return ""
	}

	keys := make([]string, 0, len(w.Worth))
	for k := range w.Worth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = k + ":" + strconv.FormatFloat(w.Worth[k], 'f', -1, 64)
	}
	return strings.Join(entries, ";")
}

// Set implements flag.Value.
func (w *WorthTable) Set(s string) error {
	result := coalition.Worth{}
	for _, entry := range splitNonEmpty(s, ";") {
		sep := strings.LastIndex(entry, ":")
		if sep < 0 {
			return errors.Errorf("worth entry %q is not of the form members:value", entry)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(entry[sep+1:]), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid worth in entry %q", entry)
		}

		var members []string
		for _, m := range splitNonEmpty(entry[:sep], ",") {
			members = append(members, strings.TrimSpace(m))
		}
		result.Set(v, members...)
	}

	w.Worth = result
	return nil
}

func splitNonEmpty(s, sep string) []string {
	var result []string
	for _, part := range strings.Split(s, sep) {
		if strings.TrimSpace(part) != "" {
			result = append(result, part)
		}
	}

	return result
}
