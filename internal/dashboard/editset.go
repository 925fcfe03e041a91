package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// The dashboard renders every record of a collection as one flat form whose
// field names are composite keys: "<recordId>_<fieldName>". Saving batches
// the flat fields back into one partial update per record.

// FormField is a single submitted form field. Fields arrive in document
// order, which fixes the record save order.
type FormField struct {
	Key   string
	Value string
}

// ParseFieldKey splits a composite form key at the first underscore. Field
// names never contain underscores, so the remainder is the field name.
func ParseFieldKey(key string) (id, field string, ok bool) {
	id, field, ok = strings.Cut(key, "_")
	if id == "" || field == "" {
		return "", "", false
	}
	return id, field, ok
}

// ParseBadges decodes the comma-separated badges form value. Entries are
// trimmed and empties dropped, so "Go, , React," yields ["Go", "React"].
func ParseBadges(s string) []string {
	parts := strings.Split(s, ",")
	badges := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			badges = append(badges, t)
		}
	}
	return badges
}

// FormatBadges encodes badges for the form input.
func FormatBadges(badges []string) string {
	return strings.Join(badges, ", ")
}

// EditSet accumulates field edits for one collection, grouped per record in
// first-seen order.
type EditSet struct {
	collection string
	known      map[string]bool
	order      []string
	edits      map[string]map[string]any
}

// NewEditSet creates an edit set for a collection. knownIDs is the set of
// record ids currently loaded; fields addressing any other id are stale form
// state and are dropped. A nil knownIDs accepts every id.
func NewEditSet(collection string, knownIDs []string) *EditSet {
	var known map[string]bool
	if knownIDs != nil {
		known = make(map[string]bool, len(knownIDs))
		for _, id := range knownIDs {
			known[id] = true
		}
	}
	return &EditSet{
		collection: collection,
		known:      known,
		edits:      make(map[string]map[string]any),
	}
}

// Set records one field change for a record.
func (e *EditSet) Set(id, field string, value any) {
	if e.known != nil && !e.known[id] {
		return
	}
	patch, ok := e.edits[id]
	if !ok {
		patch = make(map[string]any)
		e.edits[id] = patch
		e.order = append(e.order, id)
	}
	patch[field] = value
}

// SetFlat ingests submitted form fields. Composite keys are split into
// record id and field name; badges values are decoded from their comma
// form. Keys without a composite shape are ignored.
func (e *EditSet) SetFlat(fields []FormField) {
	for _, f := range fields {
		id, name, ok := ParseFieldKey(f.Key)
		if !ok {
			continue
		}
		if name == "badges" {
			e.Set(id, name, ParseBadges(f.Value))
			continue
		}
		e.Set(id, name, f.Value)
	}
}

// Len returns the number of records with pending edits.
func (e *EditSet) Len() int { return len(e.order) }

// Patch returns the pending partial update for one record, nil if none.
func (e *EditSet) Patch(id string) map[string]any { return e.edits[id] }

// SaveAll sends one partial update per edited record, in first-seen order.
// An expired session stops the save immediately so the user can log back in;
// other failures are collected and the remaining records still save.
func (e *EditSet) SaveAll(ctx context.Context, c *Client) error {
	var errs []error
	for _, id := range e.order {
		if _, err := c.Update(ctx, e.collection, id, e.edits[id]); err != nil {
			if errors.Is(err, ErrSessionExpired) {
				return err
			}
			errs = append(errs, fmt.Errorf("record %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
