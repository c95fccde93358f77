package taint

// WarningKind identifies a non-fatal issue found while parsing a query.
type WarningKind uint8

const (
	WarningUnknownFlag WarningKind = iota
	WarningConflictingFlags
)

// Warning reports an unknown query character or a set/unset conflict. For
// unknown characters Char holds the (uppercased) offender; for conflicts
// SetChar and UnsetChar hold the clashing pair.
type Warning struct {
	Kind      WarningKind
	Char      byte
	SetChar   byte
	UnsetChar byte
}

// ParseQuery folds a string of flag characters into a taint value. Matching
// is case-insensitive and first-match-wins in table order. Unknown
// characters are skipped with a warning; when a character names a flag's
// unset state while another character already set the same flag, the set
// interpretation wins and a conflict warning is reported.
func ParseQuery(query string) (uint64, []Warning) {
	var status uint64
	var warnings []Warning
	for i := 0; i < len(query); i++ {
		qc := upper(query[i])
		matched := false
		for _, def := range Flags {
			if qc == def.SetChar {
				status |= def.Value()
				matched = true
				break
			}
			if def.HasUnsetChar() && qc == def.UnsetChar {
				matched = true
				break
			}
		}
		if !matched {
			warnings = append(warnings, Warning{Kind: WarningUnknownFlag, Char: qc})
		}
	}
	// Second pass: an unset character loses against any character that
	// already set the same bit.
	for i := 0; i < len(query); i++ {
		qc := upper(query[i])
		for _, def := range Flags {
			if def.HasUnsetChar() && qc == def.UnsetChar && status&def.Value() == def.Value() {
				warnings = append(warnings, Warning{
					Kind:      WarningConflictingFlags,
					SetChar:   def.SetChar,
					UnsetChar: def.UnsetChar,
				})
			}
		}
	}
	return status, warnings
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
