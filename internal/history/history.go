// Package history keeps the ordered list of commands a visitor has typed
// into the terminal, with up/down recall navigation and best-effort
// persistence through a single key-value slot.
package history

import (
	"encoding/json"
	"log"
	"strings"
)

// DefaultMax bounds the list when no explicit cap is given.
const DefaultMax = 50

// Store is the persistence slot the list round-trips through. Get must
// return ("", nil) when the key has never been written.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// List is a capacity-bounded command history with a recall cursor. The
// cursor ranges over [0, len]; len means no entry is selected and the next
// input is fresh.
type List struct {
	store   Store
	key     string
	max     int
	entries []string
	cursor  int
}

// Load builds a List backed by store under key, seeded from whatever the
// slot holds. Malformed or missing content yields an empty list; stored
// lists longer than max keep only the most recent entries. A nil store
// gives an in-memory list.
func Load(store Store, key string, max int) *List {
	if max <= 0 {
		max = DefaultMax
	}
	l := &List{store: store, key: key, max: max}
	l.restore()
	l.cursor = len(l.entries)
	return l
}

func (l *List) restore() {
	if l.store == nil {
		return
	}
	raw, err := l.store.Get(l.key)
	if err != nil {
		log.Printf("history: load failed, starting empty: %v", err)
		return
	}
	if raw == "" {
		return
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("history: discarding malformed saved history: %v", err)
		return
	}
	if len(entries) > l.max {
		entries = entries[len(entries)-l.max:]
	}
	l.entries = entries
}

// Add appends a submitted command, evicting the oldest entry past the cap,
// and resets the cursor to "one past the end". Empty input is ignored.
// The full list is persisted after every accepted add; write failures are
// logged and swallowed.
func (l *List) Add(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	l.entries = append(l.entries, command)
	if len(l.entries) > l.max {
		l.entries = l.entries[1:]
	}
	l.cursor = len(l.entries)
	l.persist()
}

// Previous moves the cursor one entry back and returns it, or "" when there
// is no older entry.
func (l *List) Previous() string {
	if l.cursor == 0 {
		return ""
	}
	l.cursor--
	return l.entries[l.cursor]
}

// Next moves the cursor one entry forward and returns it. Past the newest
// entry it returns "" and resets the cursor, putting the input back to a
// blank line.
func (l *List) Next() string {
	if l.cursor < len(l.entries)-1 {
		l.cursor++
		return l.entries[l.cursor]
	}
	l.cursor = len(l.entries)
	return ""
}

// Entries returns a copy of the current list, oldest first.
func (l *List) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of stored entries.
func (l *List) Len() int {
	return len(l.entries)
}

func (l *List) persist() {
	if l.store == nil {
		return
	}
	raw, err := json.Marshal(l.entries)
	if err != nil {
		log.Printf("history: encode failed: %v", err)
		return
	}
	if err := l.store.Set(l.key, string(raw)); err != nil {
		log.Printf("history: save failed: %v", err)
	}
}
