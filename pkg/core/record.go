// Package core defines the filemark domain: annotation records keyed by
// content digest, the add-policy, and the reconciliation engine that
// decides whether a request reports, creates, or skips a record.
package core

// DateLayout is the fixed textual format for record timestamps (local time).
const DateLayout = "02/01/2006 15:04:05"

// Record is one annotation attached to a file's content digest.
// It is agnostic to where the annotated file lives now; the digest is the
// identity, the filename is descriptive metadata only.
type Record struct {
	Fname string `json:"fname"`
	Date  string `json:"date"`
	Note  string `json:"note"`
}

// Store maps a content digest (lowercase hex) to its record.
type Store map[string]Record

// Lookup reports the record stored under key, if any.
// A miss is an ordinary outcome, not an error.
func (s Store) Lookup(key string) (Record, bool) {
	rec, ok := s[key]
	return rec, ok
}

// Put inserts or overwrites the record stored under key.
func (s Store) Put(key string, rec Record) {
	s[key] = rec
}

// Entry pairs a record with the digest it is stored under, for listing.
type Entry struct {
	Digest string `json:"digest"`
	Record
}

// Entries returns all records with their digests. Order is unspecified.
func (s Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for digest, rec := range s {
		entries = append(entries, Entry{Digest: digest, Record: rec})
	}
	return entries
}
