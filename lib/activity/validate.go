package activity

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-openapi/strfmt"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindURL
	kindInt
	kindEnum
)

type fieldSpec struct {
	name     string
	required bool
	kind     fieldKind
	oneOf    []string
}

// entrySchema mirrors the registry file format: every member an entry may
// carry, whether it is required, and how its value is checked.
var entrySchema = []fieldSpec{
	{name: "ciuName", kind: kindString},
	{name: "description", required: true, kind: kindString},
	{name: "group", kind: kindString},
	{name: "mozBugUrl", kind: kindURL},
	{name: "mozPosition", required: true, kind: kindEnum, oneOf: Positions},
	{name: "mozPositionDetail", kind: kindString},
	{name: "mozPositionIssue", kind: kindInt},
	{name: "org", required: true, kind: kindEnum, oneOf: Orgs},
	{name: "title", required: true, kind: kindString},
	{name: "url", required: true, kind: kindURL},
}

// ValidateDocument checks a raw registry document: the top level must be an
// array, every element an object, and every object a valid entry. It returns
// every problem found rather than stopping at the first.
func ValidateDocument(data []byte) []error {
	var doc []interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{fmt.Errorf("top-level data structure is not an array: %w", err)}
	}

	var errs []error
	for i, element := range doc {
		entry, ok := element.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Errorf("entry %d is not an object", i+1))
			continue
		}
		title := fmt.Sprintf("entry %d", i+1)
		if t, ok := entry["title"].(string); ok {
			title = t
		}
		errs = append(errs, validateEntry(entry, title)...)
	}
	return errs
}

// Errors validates a single entry, reporting it by its title.
func (e Entry) Errors() []error {
	b, err := json.Marshal(e)
	if err != nil {
		return []error{err}
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return []error{err}
	}
	title := e.Title
	if title == "" {
		title = "entry"
	}
	return validateEntry(raw, title)
}

func validateEntry(entry map[string]interface{}, title string) []error {
	var errs []error

	for _, field := range entrySchema {
		value, present := entry[field.name]
		if value == nil {
			// Explicit null and absent member are equivalent.
			present = false
		}
		if !present {
			if field.required {
				errs = append(errs, fmt.Errorf("%s doesn't have required member %s", title, field.name))
			}
			continue
		}

		switch field.kind {
		case kindString:
			if _, ok := value.(string); !ok {
				errs = append(errs, fmt.Errorf("%s's %s isn't a string", title, field.name))
			}
		case kindURL:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%s's %s isn't a URL string", title, field.name))
			} else if !strfmt.Default.Validates("uri", s) {
				errs = append(errs, fmt.Errorf("%s's %s isn't a valid URL", title, field.name))
			}
		case kindInt:
			f, ok := value.(float64)
			if !ok || f != math.Trunc(f) || f < 0 {
				errs = append(errs, fmt.Errorf("%s's %s isn't a non-negative integer", title, field.name))
			}
		case kindEnum:
			s, ok := value.(string)
			if !ok || !contains(field.oneOf, s) {
				errs = append(errs, fmt.Errorf("%s's %s isn't one of [%s]", title, field.name, strings.Join(field.oneOf, ", ")))
			}
		}
	}

	if extra := unknownMembers(entry); len(extra) > 0 {
		errs = append(errs, fmt.Errorf("%s includes unrecognised members: %s", title, strings.Join(extra, " ")))
	}
	return errs
}

func unknownMembers(entry map[string]interface{}) []string {
	known := make(map[string]struct{}, len(entrySchema))
	for _, field := range entrySchema {
		known[field.name] = struct{}{}
	}
	var extra []string
	for name := range entry {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
