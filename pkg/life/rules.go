package life

import (
	"fmt"
	"sort"
	"strings"
)

// Rule maps a cell's current state and its active-neighbor count (0..8) to the
// state it holds in the next generation. Rules must be pure.
type Rule func(cell uint8, neighbors int) uint8

// Standard is Conway's B3/S23 rule.
func Standard(cell uint8, neighbors int) uint8 {
	if cell == 1 {
		if neighbors == 2 || neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}

// HighLife is the B36/S23 variant: dead cells are also born with six neighbors.
func HighLife(cell uint8, neighbors int) uint8 {
	if cell == 0 && neighbors == 6 {
		return 1
	}
	return Standard(cell, neighbors)
}

var rules = map[string]Rule{}

// RegisterRule adds a rule variant under the provided name. Names are matched
// case-insensitively.
func RegisterRule(name string, r Rule) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || r == nil {
		return
	}
	rules[name] = r
}

// LookupRule resolves a registered variant name. Names written in B/S notation
// (for example "B36/S23" or "S23/B36") are parsed when no registered variant
// matches.
func LookupRule(name string) (Rule, error) {
	key := CanonicalRuleName(name)
	if r, ok := rules[strings.ToLower(key)]; ok {
		return r, nil
	}
	if strings.Contains(key, "/") {
		return ParseRule(key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// CanonicalRuleName normalizes a rule name for display and storage. Variant
// names are lower-cased; valid B/S notation is rewritten as "B<digits>/S<digits>"
// with the digits in ascending order.
func CanonicalRuleName(name string) string {
	name = strings.TrimSpace(name)
	if !strings.Contains(name, "/") {
		return strings.ToLower(name)
	}
	birth, survive, err := parseNotation(name)
	if err != nil {
		return strings.ToUpper(name)
	}
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, birth)
	b.WriteString("/S")
	writeCounts(&b, survive)
	return b.String()
}

func writeCounts(b *strings.Builder, table [9]bool) {
	for n, ok := range table {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
}

// RuleNames lists the registered variant names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseRule builds a rule from birth/survival notation such as "B3/S23".
func ParseRule(notation string) (Rule, error) {
	birth, survive, err := parseNotation(notation)
	if err != nil {
		return nil, err
	}
	return func(cell uint8, neighbors int) uint8 {
		if neighbors < 0 || neighbors > 8 {
			return 0
		}
		if cell == 1 {
			if survive[neighbors] {
				return 1
			}
			return 0
		}
		if birth[neighbors] {
			return 1
		}
		return 0
	}, nil
}

func parseNotation(notation string) (birth, survive [9]bool, err error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(notation)), "/")
	if len(parts) != 2 {
		return birth, survive, fmt.Errorf("%w: %q is not B/S notation", ErrUnknownRule, notation)
	}
	seen := map[byte]bool{}
	for _, part := range parts {
		if part == "" {
			return birth, survive, fmt.Errorf("%w: %q is not B/S notation", ErrUnknownRule, notation)
		}
		kind := part[0]
		if (kind != 'B' && kind != 'S') || seen[kind] {
			return birth, survive, fmt.Errorf("%w: %q is not B/S notation", ErrUnknownRule, notation)
		}
		seen[kind] = true
		table := &birth
		if kind == 'S' {
			table = &survive
		}
		for _, c := range part[1:] {
			if c < '0' || c > '8' {
				return birth, survive, fmt.Errorf("%w: neighbor count %q in %q", ErrUnknownRule, c, notation)
			}
			table[c-'0'] = true
		}
	}
	return birth, survive, nil
}

func init() {
	RegisterRule("standard", Standard)
	RegisterRule("highlife", HighLife)
}
