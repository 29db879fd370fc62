package ledger

import "billbook/internal/domain"

// Upsert replaces the record with rec's id in place, or appends rec when no
// record has that id. The input slice is not modified.
func Upsert[T domain.Record](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if !replaced && it.RecordID() == rec.RecordID() {
			out = append(out, rec)
			replaced = true
			continue
		}
		out = append(out, it)
	}
	if !replaced {
		out = append(out, rec)
	}
	return out
}

// Replace swaps the record with rec's id for rec. Unlike Upsert it never
// appends; ok is false when no record has that id.
func Replace[T domain.Record](items []T, rec T) (out []T, ok bool) {
	out = make([]T, len(items))
	copy(out, items)
	for i := range out {
		if out[i].RecordID() == rec.RecordID() {
			out[i] = rec
			return out, true
		}
	}
	return items, false
}

// Remove drops every record with the given id. An unknown id leaves the
// collection unchanged.
func Remove[T domain.Record](items []T, id string) (out []T, removed bool) {
	out = make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// Find returns the record with the given id.
func Find[T domain.Record](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
