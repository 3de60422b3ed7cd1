package ui

import (
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the candidates reported when a lookup misses.
const maxSuggestions = 5

// Lookup returns the node with the given id in the tree rooted at root.
//
// If no node matches, the returned ErrNodeNotFound carries up to five
// fuzzy-matched identifiers as a "suggestions" attribute.
func Lookup(root *Node, id string) (*Node, error) {
	if n, ok := root.Find(id); ok {
		return n, nil
	}

	err := ErrNodeNotFound.With(slog.String("id", id))

	if sugg := Suggest(root, id); len(sugg) > 0 {
		err = err.With(slog.Any("suggestions", sugg))
	}

	return nil, err
}

// Suggest returns up to five identifiers in the tree that fuzzy-match
// pattern, best match first.
func Suggest(root *Node, pattern string) []string {
	if pattern == "" {
		return nil
	}

	matches := fuzzy.Find(pattern, root.IDs())
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	sugg := make([]string, len(matches))
	for i, m := range matches {
		sugg[i] = m.Str
	}

	return sugg
}
