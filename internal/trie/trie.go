// Package trie implements a read-mostly prefix tree for resolving normalized labels.
//
// Keys are compared rune by rune after case folding. Lookups are exact: a key that is
// only a prefix of a stored key does not match. Callers normalize keys (trimming,
// suffix removal) before inserting or searching.
package trie

import "unicode"

type node[T any] struct {
	children map[rune]*node[T]
	terminal bool
	payload  T
}

func newNode[T any]() *node[T] {
	return &node[T]{children: make(map[rune]*node[T])}
}

// Trie maps keys to payloads. Build it once, then share it freely: concurrent Search
// calls are safe as long as no Insert runs at the same time.
type Trie[T any] struct {
	root *node[T]
	size int
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{root: newNode[T]()}
}

// Insert stores payload under key, replacing any payload already stored there.
func (t *Trie[T]) Insert(key string, payload T) {
	n := t.root
	for _, r := range key {
		r = unicode.ToLower(r)
		child, ok := n.children[r]
		if !ok {
			child = newNode[T]()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		t.size++
	}
	n.terminal = true
	n.payload = payload
}

// Search returns the payload stored under key.
func (t *Trie[T]) Search(key string) (T, bool) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[unicode.ToLower(r)]
		if !ok {
			var zero T
			return zero, false
		}
		n = child
	}
	if !n.terminal {
		var zero T
		return zero, false
	}
	return n.payload, true
}

// Len is the number of distinct keys stored.
func (t *Trie[T]) Len() int {
	return t.size
}
