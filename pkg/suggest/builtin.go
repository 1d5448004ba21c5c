package suggest

// builtinEntries is the compiled-in default table. Small on purpose:
// hosts with real vocabularies ship their own table file.
var builtinEntries = map[string][]string{
	"hel":  {"hello", "help", "helmet"},
	"wo":   {"world", "word", "would"},
	"th":   {"the", "this", "that"},
	"ca":   {"can", "cat", "car"},
	"re":   {"receive", "return", "really"},
	"be":   {"because", "before", "between"},
	"pr":   {"probably", "program", "pretty"},
	"wh":   {"what", "when", "where"},
	"ab":   {"about", "above", "ability"},
	"co":   {"could", "come", "computer"},
	"im":   {"important", "imagine", "immediately"},
	"un":   {"under", "understand", "until"},
	"ev":   {"every", "everything", "even"},
	"some": {"something", "sometimes", "somewhere"},
	"any":  {"anything", "anyone", "anywhere"},
}

// Builtin returns the compiled-in default table.
func Builtin() *Table {
	table := NewTable()
	for token, candidates := range builtinEntries {
		table.Add(token, candidates)
	}
	return table
}
