// Package seed loads read-only contact fixtures from YAML. Loaded contacts
// go through the same sanitizing and validation as the contact form; nothing
// is ever written back.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/form"
)

// ErrInvalidEntry indicates a seed entry that would fail form validation.
var ErrInvalidEntry = errors.New("seed: invalid entry")

// File is the on-disk seed document.
type File struct {
	Contacts []Entry `yaml:"contacts"`
}

// Entry is one contact as written in a seed file. Number may carry
// punctuation; it is filtered the same way typed input is.
type Entry struct {
	Name     string `yaml:"name"`
	Number   string `yaml:"number"`
	Category string `yaml:"category"`
}

// Load reads and validates the seed file at path.
func Load(path string) ([]contact.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", path, err)
	}
	contacts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return contacts, nil
}

// LoadFS reads and validates the seed file name from fsys.
func LoadFS(fsys fs.FS, name string) ([]contact.Contact, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", name, err)
	}
	contacts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", name, err)
	}
	return contacts, nil
}

// Parse decodes a seed document and normalizes every entry. Unknown keys
// are rejected. An empty or comment-only document yields no contacts.
func Parse(data []byte) ([]contact.Contact, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing: %w", err)
	}

	contacts := make([]contact.Contact, 0, len(f.Contacts))
	for i, e := range f.Contacts {
		c, err := e.normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: contacts[%d]: %w", ErrInvalidEntry, i, err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (e Entry) normalize() (contact.Contact, error) {
	d := form.DefaultDraft()
	d.Name = e.Name
	d.Number = contact.SanitizeNumber(e.Number)
	if e.Category != "" {
		d.Category = e.Category
	}
	return form.Normalize(d)
}
