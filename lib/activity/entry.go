package activity

// Entry is a single Position Record: one standards effort and our stance on
// it. Optional members are pointers so that absent values serialise as null,
// matching the registry file convention. JSON fields are kept in alphabetical
// order so MarshalIndent output matches a sorted-keys registry file.
type Entry struct {
	CiuName           *string `json:"ciuName"`
	Description       string  `json:"description"`
	Group             *string `json:"group,omitempty"`
	MozBugURL         *string `json:"mozBugUrl"`
	MozPosition       string  `json:"mozPosition"`
	MozPositionDetail *string `json:"mozPositionDetail"`
	MozPositionIssue  *int    `json:"mozPositionIssue"`
	Org               string  `json:"org"`
	Title             string  `json:"title"`
	URL               string  `json:"url"`
}

// DefaultPosition is the stance a freshly formatted entry starts with.
const DefaultPosition = "under consideration"

// Positions is the closed set of accepted mozPosition values.
var Positions = []string{
	"under consideration",
	"participating",
	"supportive",
	"non-harmful",
	"defer",
	"harmful",
}

// Orgs is the closed set of accepted standards bodies.
var Orgs = []string{"W3C", "WHATWG", "IETF", "Ecma", "Other"}

// NewEntry builds an entry for a just-parsed specification with the default
// position and no issue or bug references yet.
func NewEntry(title, description, org, url string) Entry {
	return Entry{
		Description: description,
		MozPosition: DefaultPosition,
		Org:         org,
		Title:       title,
		URL:         url,
	}
}
