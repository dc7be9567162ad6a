// Package trie provides a prefix tree over strings with exact-membership queries.
//
// A word is a sequence of runes. Inserting a word creates the missing path for
// it and marks the last node terminal; Contains only reports true for words
// that were inserted exactly, never for mere prefixes of them.
//
// A Trie is not safe for concurrent use.
package trie

import (
	"golang.org/x/text/unicode/norm"
)

// node is a single trie position. Its children map is allocated on the first
// child, so leaves carry no map at all.
type node struct {
	children map[rune]*node
	terminal bool
}

// child returns the edge for r, or nil if there is none.
func (n *node) child(r rune) *node {
	return n.children[r]
}

// childOrCreate returns the edge for r, creating it if it doesn't exist yet.
func (n *node) childOrCreate(r rune) *node {
	if next, ok := n.children[r]; ok {
		return next
	}

	if n.children == nil {
		n.children = make(map[rune]*node)
	}

	next := &node{}
	n.children[r] = next

	return next
}

// Trie is a prefix tree. Use New to create one.
type Trie struct {
	root      *node
	size      int
	normalize func(string) string
}

// Option configures a Trie.
type Option func(*Trie)

// WithNormalization applies the given Unicode normalization form to every word
// before it is inserted or looked up, so canonically equivalent spellings
// (e.g. a precomposed "é" and "e" + combining acute) resolve to the same path.
func WithNormalization(form norm.Form) Option {
	return func(t *Trie) {
		t.normalize = form.String
	}
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	t := &Trie{root: &node{}}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Trie) prepare(word string) string {
	if t.normalize == nil {
		return word
	}

	return t.normalize(word)
}

// Insert adds word to the trie. Inserting the empty string marks the root
// terminal. Inserting a word twice is a no-op the second time.
func (t *Trie) Insert(word string) {
	current := t.root

	for _, r := range t.prepare(word) {
		current = current.childOrCreate(r)
	}

	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// InsertAll inserts every word in argument order.
func (t *Trie) InsertAll(words ...string) {
	for _, word := range words {
		t.Insert(word)
	}
}

// find follows the path for word without creating anything. It returns nil as
// soon as an edge is missing.
func (t *Trie) find(word string) *node {
	current := t.root

	for _, r := range word {
		current = current.child(r)
		if current == nil {
			return nil
		}
	}

	return current
}

// Contains reports whether word itself was inserted. A word that only exists as
// a prefix of other inserted words is not contained.
func (t *Trie) Contains(word string) bool {
	n := t.find(t.prepare(word))

	return n != nil && n.terminal
}

// HasPrefix reports whether any inserted word starts with prefix. Every trie
// with at least one word has the empty prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	n := t.find(t.prepare(prefix))
	if n == nil {
		return false
	}

	return n.terminal || len(n.children) > 0
}

// Size returns the number of distinct words in the trie.
func (t *Trie) Size() int {
	return t.size
}
