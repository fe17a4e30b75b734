package rule

// quoteScanner tracks single/double quote context within one line.
// The bracket and quote checks share it so both agree on what counts
// as string-literal content. State never crosses line boundaries.
type quoteScanner struct {
	inSingle bool
	inDouble bool
	openCol  int  // 1-based column of the currently open quote
	openChar rune // the quote rune that opened the region
	escaped  bool
}

// consume advances the scanner by one rune at the given 1-based column.
// It reports true when the rune is consumed by the scanner itself
// (a quote delimiter or an escaped character) and should not be
// inspected further by the caller.
func (s *quoteScanner) consume(ch rune, col int) bool {
	if s.escaped {
		s.escaped = false
		return true
	}
	if ch == '\\' {
		s.escaped = true
		return true
	}
	switch ch {
	case '\'':
		if s.inDouble {
			return false
		}
		if s.inSingle {
			s.inSingle = false
		} else {
			s.inSingle = true
			s.openCol = col
			s.openChar = ch
		}
		return true
	case '"':
		if s.inSingle {
			return false
		}
		if s.inDouble {
			s.inDouble = false
		} else {
			s.inDouble = true
			s.openCol = col
			s.openChar = ch
		}
		return true
	}
	return false
}

// inString reports whether the scanner is currently inside a quote region.
func (s *quoteScanner) inString() bool {
	return s.inSingle || s.inDouble
}
