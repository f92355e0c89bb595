package activity

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/standards-watch/activities/lib/text"
)

const jsonIndent = "  "

// File is a registry of entries backed by a JSON file on disk.
type File struct {
	Path    string
	Entries []Entry

	// raw holds the bytes as read from disk so Validate can report problems
	// the typed Entries can't represent, like unknown members.
	raw []byte
}

// Load reads and unmarshals the registry at path.
func Load(path string) (*File, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't load %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("can't load %s: %w", path, err)
	}
	return &File{Path: path, Entries: entries, raw: raw}, nil
}

// Validate checks the registry document for conformance. It validates the
// on-disk bytes when available so members the Entry type doesn't know about
// are still caught.
func (f *File) Validate() []error {
	raw := f.raw
	if raw == nil {
		var err error
		raw, err = json.Marshal(f.Entries)
		if err != nil {
			return []error{err}
		}
	}
	return ValidateDocument(raw)
}

// EnsureUnique reports an error if an entry with the same title (case folded)
// or the same url is already present.
func (f *File) EnsureUnique(entry Entry) error {
	titleKey := text.FoldKey(entry.Title)
	for _, existing := range f.Entries {
		if text.FoldKey(existing.Title) == titleKey {
			return fmt.Errorf("%s already contains %s", f.Path, entry.Title)
		}
		if existing.URL == entry.URL {
			return fmt.Errorf("%s already contains %s", f.Path, entry.URL)
		}
	}
	return nil
}

// Append validates entry and adds it to the registry. The file on disk is not
// touched until Save.
func (f *File) Append(entry Entry) error {
	if errs := entry.Errors(); len(errs) > 0 {
		return errs[0]
	}
	f.Entries = append(f.Entries, entry)
	f.raw = nil
	return nil
}

// Save writes the registry back to its path, two-space indented.
func (f *File) Save() error {
	data, err := json.MarshalIndent(f.Entries, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("can't write %s: %w", f.Path, err)
	}
	data = append(data, '\n')
	if err := ioutil.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("can't write %s: %w", f.Path, err)
	}
	f.raw = data
	return nil
}

// String renders the registry as indented JSON.
func (f *File) String() string {
	data, err := json.MarshalIndent(f.Entries, "", jsonIndent)
	if err != nil {
		return ""
	}
	return string(data)
}
