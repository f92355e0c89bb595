package activity

import (
	"encoding/json"
	"io/ioutil"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() map[string]interface{} {
	return map[string]interface{}{
		"ciuName":           nil,
		"description":       "A test specification.",
		"mozBugUrl":         nil,
		"mozPosition":       "participating",
		"mozPositionDetail": nil,
		"mozPositionIssue":  float64(44),
		"org":               "W3C",
		"title":             "Web Thing API",
		"url":               "https://iot.mozilla.org/wot",
	}
}

func documentWith(entries ...interface{}) []byte {
	b, err := json.Marshal(entries)
	if err != nil {
		panic(err)
	}
	return b
}

func TestValidateDocument(t *testing.T) {
	missingTitle := validEntry()
	delete(missingTitle, "title")

	nullTitle := validEntry()
	nullTitle["title"] = nil

	badPosition := validEntry()
	badPosition["mozPosition"] = "enthusiastic"

	badOrg := validEntry()
	badOrg["org"] = "ISO"

	badURL := validEntry()
	badURL["url"] = "not a url"

	badIssue := validEntry()
	badIssue["mozPositionIssue"] = float64(-1)

	fractionalIssue := validEntry()
	fractionalIssue["mozPositionIssue"] = 44.5

	unknownMember := validEntry()
	unknownMember["mozRating"] = "five stars"

	tests := []struct {
		name     string
		document []byte
		expected []string
	}{
		{
			name:     "valid single entry",
			document: documentWith(validEntry()),
			expected: nil,
		},
		{
			name:     "top level is not an array",
			document: []byte(`{"title": "Web Thing API"}`),
			expected: []string{"top-level data structure is not an array"},
		},
		{
			name:     "entry is not an object",
			document: documentWith("Web Thing API"),
			expected: []string{"entry 1 is not an object"},
		},
		{
			name:     "missing required member",
			document: documentWith(missingTitle),
			expected: []string{"entry 1 doesn't have required member title"},
		},
		{
			name:     "explicit null required member",
			document: documentWith(nullTitle),
			expected: []string{"entry 1 doesn't have required member title"},
		},
		{
			name:     "position outside the closed set",
			document: documentWith(badPosition),
			expected: []string{"Web Thing API's mozPosition isn't one of [under consideration, participating, supportive, non-harmful, defer, harmful]"},
		},
		{
			name:     "org outside the closed set",
			document: documentWith(badOrg),
			expected: []string{"Web Thing API's org isn't one of [W3C, WHATWG, IETF, Ecma, Other]"},
		},
		{
			name:     "url is not a url",
			document: documentWith(badURL),
			expected: []string{"Web Thing API's url isn't a valid URL"},
		},
		{
			name:     "negative issue number",
			document: documentWith(badIssue),
			expected: []string{"Web Thing API's mozPositionIssue isn't a non-negative integer"},
		},
		{
			name:     "fractional issue number",
			document: documentWith(fractionalIssue),
			expected: []string{"Web Thing API's mozPositionIssue isn't a non-negative integer"},
		},
		{
			name:     "unknown member",
			document: documentWith(unknownMember),
			expected: []string{"Web Thing API includes unrecognised members: mozRating"},
		},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		errs := ValidateDocument(tt.document)
		require.Len(t, errs, len(tt.expected), tt.name)
		for i, expected := range tt.expected {
			assert.Contains(t, errs[i].Error(), expected, tt.name)
		}
	}
}

// The canonical registry fixture must validate cleanly and decode with the
// expected values.
func TestValidateDocumentFixture(t *testing.T) {
	raw, err := ioutil.ReadFile("../../resources/activities.json")
	require.NoError(t, err)

	assert.Empty(t, ValidateDocument(raw))

	var entries []Entry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "participating", entry.MozPosition)
	require.NotNil(t, entry.MozPositionIssue)
	assert.Equal(t, 44, *entry.MozPositionIssue)
	assert.Nil(t, entry.CiuName)
	assert.Nil(t, entry.MozBugURL)
}

func TestEntryErrors(t *testing.T) {
	entry := NewEntry("Web Thing API", "A test specification.", "W3C", "https://iot.mozilla.org/wot")
	assert.Empty(t, entry.Errors())

	entry.MozBugURL = swag.String("://nope")
	errs := entry.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "mozBugUrl isn't a valid URL")
}
