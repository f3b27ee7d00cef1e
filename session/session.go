// Package session tracks open documents and extracts the cursor-relevant
// fragment the elixir package's classifier consumes. It is the boundary
// between "LSP position" (line, character) and "raw fragment": the
// classifier itself never sees a line/column pair.
package session

import (
	"strings"
	"sync"
	"unicode/utf16"
)

// Document is an open file as tracked by a single editor session.
type Document struct {
	URI     string
	Version int32
	Text    string
}

// Store is a concurrency-safe map of open documents, guarded by a
// sync.RWMutex.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open records a newly opened document, replacing any prior entry for the
// same URI.
func (s *Store) Open(uri string, version int32, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[uri] = &Document{URI: uri, Version: version, Text: text}
}

// Change replaces the full text of an already-open document. It is a no-op
// if the document was never opened.
func (s *Store) Change(uri string, version int32, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uri]
	if !ok {
		return false
	}

	doc.Version = version
	doc.Text = text

	return true
}

// Close drops a document from the store.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, uri)
}

// Get returns the document for uri, if open.
func (s *Store) Get(uri string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[uri]
	if !ok {
		return Document{}, false
	}

	return *doc, true
}

// FragmentAt returns the text to the left of the given zero-based line and
// character offset, suitable as input to elixir.Classify. character counts
// UTF-16 code units, the way LSP positions do; it is converted to a byte
// offset here so the classifier never sees a mis-sliced rune. The
// classifier only looks at the last line of whatever it's handed, so this
// trims everything strictly after the cursor and lets Classify do the rest.
func FragmentAt(text string, line, character int) string {
	lines := strings.Split(text, "\n")
	if line < 0 {
		return ""
	}
	if line >= len(lines) {
		line = len(lines) - 1
		character = utf16Len(lines[line])
	}

	current := lines[line]

	col := byteOffsetUTF16(current, character)

	prefixLines := lines[:line]
	var b strings.Builder

	for _, l := range prefixLines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	b.WriteString(current[:col])

	return b.String()
}

// byteOffsetUTF16 converts a UTF-16 code-unit offset into a byte offset
// within the UTF-8 encoded line. Offsets past the end of the line clamp to
// its full length; an offset landing inside a surrogate pair rounds up to
// the following rune boundary.
func byteOffsetUTF16(line string, units int) int {
	remaining := units

	for i, r := range line {
		if remaining <= 0 {
			return i
		}

		remaining -= utf16.RuneLen(r)
	}

	return len(line)
}

// utf16Len reports the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}
