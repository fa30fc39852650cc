package models

import "github.com/google/uuid"

// NewID returns the identifier used for every stored document/row.
func NewID() string {
	return uuid.NewString()
}

// UniqueIDs drops empty and repeated ids, keeping the first occurrence
// order. Batch lookups (FindByIDs) are fed with it.
func UniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
