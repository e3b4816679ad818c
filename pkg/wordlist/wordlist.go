// Package wordlist loads lists of known-compromised passwords.
//
// Entries are trimmed and lower-cased on the way in, blank lines are skipped,
// so lookups are always case-insensitive.
package wordlist

import (
	"bufio"
	"io"
	"strings"
)

// Store is anything that can answer whether a normalised entry is known.
type Store interface {
	Contains(entry string) bool
}

// Set is an in-memory wordlist.
type Set struct {
	m map[string]struct{}
}

func NewSet(entries ...string) *Set {
	s := &Set{m: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Normalize returns the form entries are stored and looked up in.
func Normalize(entry string) string {
	return strings.ToLower(strings.TrimSpace(entry))
}

func (s *Set) Add(entry string) {
	if clean := Normalize(entry); clean != "" {
		s.m[clean] = struct{}{}
	}
}

func (s *Set) Contains(entry string) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[entry]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Merge adds every entry of other to s.
func (s *Set) Merge(other *Set) {
	for e := range other.m {
		s.m[e] = struct{}{}
	}
}

// Entries returns the entries of s in no particular order.
func (s *Set) Entries() []string {
	out := make([]string, 0, len(s.m))
	for e := range s.m {
		out = append(out, e)
	}
	return out
}

// Parse reads a newline separated wordlist.
func Parse(r io.Reader) (*Set, error) {
	s := NewSet()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// Multi reports an entry as known if any of its stores knows it.
type Multi []Store

func (m Multi) Contains(entry string) bool {
	for _, s := range m {
		if s != nil && s.Contains(entry) {
			return true
		}
	}
	return false
}
