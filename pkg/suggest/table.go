package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Table is a Source backed by a patricia trie keyed by lowercased tokens.
// Items are the ordered candidate slices. The trie is storage only; lookups
// are exact Get calls, never subtree visits.
type Table struct {
	trie       *patricia.Trie
	tokens     int
	candidates int
}

// NewTable returns an empty suggestion table.
func NewTable() *Table {
	return &Table{
		trie: patricia.NewTrie(),
	}
}

// Add registers candidates for token, overwriting any previous entry.
// Tokens are lowercased on the way in; candidate order is preserved.
// Meant for construction and load time only: the table is not safe for
// mutation once a widget or server is running on it.
func (t *Table) Add(token string, candidates []string) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || len(candidates) == 0 {
		return
	}
	owned := make([]string, len(candidates))
	copy(owned, candidates)

	key := patricia.Prefix(token)
	if existing := t.trie.Get(key); existing != nil {
		if old, ok := existing.([]string); ok {
			t.candidates -= len(old)
		}
	} else {
		t.tokens++
	}
	t.trie.Set(key, owned)
	t.candidates += len(owned)
}

// Lookup returns the candidates for token, or nil when the token is empty,
// blank, or absent. Matching is case-insensitive and exact. The returned
// slice is a copy; callers cannot reach table state through it.
func (t *Table) Lookup(token string) []string {
	if utils.IsBlank(token) {
		return nil
	}

	item := t.trie.Get(patricia.Prefix(strings.ToLower(token)))
	if item == nil {
		return nil
	}

	stored, ok := item.([]string)
	if !ok {
		log.Errorf("Unknown item type %T for token %q", item, token)
		return nil
	}

	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return t.tokens
}

// Words returns all tokens in the table, sorted.
func (t *Table) Words() []string {
	words := make([]string, 0, t.tokens)
	err := t.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting table trie: %v", err)
		return nil
	}
	sort.Strings(words)
	return words
}

// Stats returns basic counters about the loaded table.
func (t *Table) Stats() map[string]int {
	return map[string]int{
		"tokens":     t.tokens,
		"candidates": t.candidates,
	}
}

// tableFile is the on-disk shape of a user-supplied table:
//
//	[suggestions]
//	hel = ["hello", "help", "helmet"]
type tableFile struct {
	Suggestions map[string][]string `toml:"suggestions"`
}

// LoadTOML builds a table from a TOML file. A missing or unparsable file
// is an error; callers fall back to the builtin table.
func LoadTOML(path string) (*Table, error) {
	var file tableFile
	if err := utils.LoadTOMLFile(path, &file); err != nil {
		return nil, err
	}
	if len(file.Suggestions) == 0 {
		return nil, fmt.Errorf("no [suggestions] entries in %s", path)
	}

	table := NewTable()
	for token, candidates := range file.Suggestions {
		table.Add(token, candidates)
	}
	log.Debugf("Loaded %d tokens from table file: %s", table.Len(), path)
	return table, nil
}
