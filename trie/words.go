package trie

import (
	"facette.io/natsort"
)

// WithPrefix returns every inserted word that starts with prefix, including
// prefix itself if it was inserted. Words come back in natural sort order,
// so "item2" sorts before "item10".
func (t *Trie) WithPrefix(prefix string) []string {
	prefix = t.prepare(prefix)

	start := t.find(prefix)
	if start == nil {
		return []string{}
	}

	words := make([]string, 0)

	collect(start, []rune(prefix), func(word string) {
		words = append(words, word)
	})

	natsort.Sort(words)

	return words
}

// Words returns every inserted word in natural sort order.
func (t *Trie) Words() []string {
	return t.WithPrefix("")
}

// collect calls emit with each terminal word under n. path holds the runes
// leading to n and is reused across siblings.
func collect(n *node, path []rune, emit func(string)) {
	if n.terminal {
		emit(string(path))
	}

	for r, child := range n.children {
		collect(child, append(path, r), emit)
	}
}
