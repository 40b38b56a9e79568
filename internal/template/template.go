// Package template manages the registry of entry templates and renders
// them into note content.
//
// Built-in templates are bundled and immutable; user templates live in a
// YAML registry under the journal root and survive restarts. Template ids
// are unique across both sets: a user template may not shadow a built-in.
package template

import (
	"fmt"
	"strings"

	"github.com/tilkit/til/internal/apperr"
)

// Template is a named entry scaffold. Body may contain the literal
// placeholders {date} and {category}.
type Template struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Body        string `yaml:"body"`
}

// Vars are the values substituted into a template body.
type Vars struct {
	Date     string
	Category string
}

// Registry persists the user template set. Load returns templates in
// insertion order; Save must round-trip exactly what it was given.
type Registry interface {
	Load() ([]Template, error)
	Save([]Template) error
}

// Store combines the built-in templates with a persisted user registry.
type Store struct {
	reg  Registry
	user []Template
}

// NewStore loads the user registry and returns a ready store.
func NewStore(reg Registry) (*Store, error) {
	user, err := reg.Load()
	if err != nil {
		return nil, fmt.Errorf("template: load registry: %w", err)
	}
	return &Store{reg: reg, user: user}, nil
}

// List returns every template: built-ins first in their fixed order,
// then user templates in insertion order.
func (s *Store) List() []Template {
	out := make([]Template, 0, len(builtins)+len(s.user))
	out = append(out, builtins...)
	out = append(out, s.user...)
	return out
}

// Get returns the template with the given id from either set.
func (s *Store) Get(id string) (Template, error) {
	for _, t := range builtins {
		if t.ID == id {
			return t, nil
		}
	}
	for _, t := range s.user {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("template %q: %w", id, apperr.ErrNotFound)
}

// Create adds a user template and persists the registry. Ids that
// collide with a built-in or an existing user template are rejected.
func (s *Store) Create(id, name, description, body string) (Template, error) {
	if IsBuiltin(id) {
		return Template{}, fmt.Errorf("template %q shadows a built-in: %w", id, apperr.ErrConflict)
	}
	for _, t := range s.user {
		if t.ID == id {
			return Template{}, fmt.Errorf("template %q: %w", id, apperr.ErrConflict)
		}
	}
	tpl := Template{ID: id, Name: name, Description: description, Body: body}
	next := append(append([]Template(nil), s.user...), tpl)
	if err := s.reg.Save(next); err != nil {
		return Template{}, fmt.Errorf("template: save registry: %w", err)
	}
	s.user = next
	return tpl, nil
}

// Delete removes a user template and persists the registry. Built-in
// ids are never deletable.
func (s *Store) Delete(id string) error {
	if IsBuiltin(id) {
		return fmt.Errorf("template %q is built-in: %w", id, apperr.ErrForbidden)
	}
	idx := -1
	for i, t := range s.user {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("template %q: %w", id, apperr.ErrNotFound)
	}
	next := append(append([]Template(nil), s.user[:idx]...), s.user[idx+1:]...)
	if err := s.reg.Save(next); err != nil {
		return fmt.Errorf("template: save registry: %w", err)
	}
	s.user = next
	return nil
}

// Render substitutes {date} and {category} in the template body.
// Any other brace token passes through untouched.
func Render(tpl Template, vars Vars) string {
	out := strings.ReplaceAll(tpl.Body, "{date}", vars.Date)
	out = strings.ReplaceAll(out, "{category}", vars.Category)
	return out
}
