package rule

type confusable struct {
	replacement string
	description string
}

// confusables maps code points from other scripts to the Latin character
// they are usually mistaken for. Curated, not exhaustive: the entries cover
// what actually shows up in pasted code (Cyrillic and Greek homoglyphs,
// typographic dashes and quotes, invisible characters).
var confusables = map[rune]confusable{
	// Latin vs Cyrillic
	'а': {"a", `Cyrillic "а" (U+0430) looks like Latin "a" (U+0061)`},
	'е': {"e", `Cyrillic "е" (U+0435) looks like Latin "e" (U+0065)`},
	'о': {"o", `Cyrillic "о" (U+043E) looks like Latin "o" (U+006F)`},
	'р': {"p", `Cyrillic "р" (U+0440) looks like Latin "p" (U+0070)`},
	'с': {"c", `Cyrillic "с" (U+0441) looks like Latin "c" (U+0063)`},
	'х': {"x", `Cyrillic "х" (U+0445) looks like Latin "x" (U+0078)`},
	'у': {"y", `Cyrillic "у" (U+0443) looks like Latin "y" (U+0079)`},
	'А': {"A", `Cyrillic "А" (U+0410) looks like Latin "A" (U+0041)`},
	'В': {"B", `Cyrillic "В" (U+0412) looks like Latin "B" (U+0042)`},
	'Е': {"E", `Cyrillic "Е" (U+0415) looks like Latin "E" (U+0045)`},
	'К': {"K", `Cyrillic "К" (U+041A) looks like Latin "K" (U+004B)`},
	'М': {"M", `Cyrillic "М" (U+041C) looks like Latin "M" (U+004D)`},
	'Н': {"H", `Cyrillic "Н" (U+041D) looks like Latin "H" (U+0048)`},
	'О': {"O", `Cyrillic "О" (U+041E) looks like Latin "O" (U+004F)`},
	'Р': {"P", `Cyrillic "Р" (U+0420) looks like Latin "P" (U+0050)`},
	'С': {"C", `Cyrillic "С" (U+0421) looks like Latin "C" (U+0043)`},
	'Т': {"T", `Cyrillic "Т" (U+0422) looks like Latin "T" (U+0054)`},
	'Х': {"X", `Cyrillic "Х" (U+0425) looks like Latin "X" (U+0058)`},

	// Greek letters
	'α': {"a", `Greek "α" (alpha) looks like Latin "a"`},
	'β': {"B", `Greek "β" (beta) might be confused with Latin "B"`},
	'ο': {"o", `Greek "ο" (omicron) looks like Latin "o"`},
	'ν': {"v", `Greek "ν" (nu) looks like Latin "v"`},

	// Zero-width and invisible characters, spelled as escapes so the
	// entries stay visible in editors.
	'\u200B': {"", "zero-width space (U+200B)"},
	'\u200C': {"", "zero-width non-joiner (U+200C)"},
	'\u200D': {"", "zero-width joiner (U+200D)"},
	'\uFEFF': {"", "zero-width no-break space/BOM (U+FEFF)"},

	// Mathematical and typographic symbols
	'−': {"-", `minus sign "−" (U+2212) looks like hyphen-minus "-" (U+002D)`},
	'‐': {"-", `hyphen "‐" (U+2010) looks like hyphen-minus "-" (U+002D)`},
	'–': {"-", `en dash "–" (U+2013) looks like hyphen-minus "-"`},
	'—': {"-", `em dash "—" (U+2014) looks like hyphen-minus "-"`},
	'×': {"*", `multiplication sign "×" (U+00D7) looks like asterisk "*"`},
	'÷': {"/", `division sign "÷" (U+00F7) looks like slash "/"`},

	// Typographic quotation marks
	'’': {"'", "right single quotation mark (U+2019) looks like apostrophe (U+0027)"},
	'‘': {"'", "left single quotation mark (U+2018) looks like apostrophe (U+0027)"},
	'“': {`"`, "left double quotation mark (U+201C) looks like quotation mark (U+0022)"},
	'”': {`"`, "right double quotation mark (U+201D) looks like quotation mark (U+0022)"},

	// Roman numerals
	'Ⅰ': {"I", `Roman numeral "Ⅰ" (U+2160) looks like Latin "I"`},
	'Ⅴ': {"V", `Roman numeral "Ⅴ" (U+2164) looks like Latin "V"`},
	'Ⅹ': {"X", `Roman numeral "Ⅹ" (U+2169) looks like Latin "X"`},

	// Other confusables
	'ı': {"i", `dotless i "ı" (U+0131) looks like Latin "i" (U+0069)`},
	'ℓ': {"l", `script l "ℓ" (U+2113) looks like Latin "l" (U+006C)`},
}

func checkConfusable(source string) []Issue {
	var issues []Issue
	for lineNum, line := range splitLines(source) {
		col := 0
		for _, ch := range line {
			col++
			entry, ok := confusables[ch]
			if !ok {
				continue
			}
			issues = append(issues, Issue{
				Line:       lineNum + 1,
				Column:     col,
				Char:       string(ch),
				Message:    entry.description,
				RuleID:     RuleConfusable,
				Suggestion: entry.replacement,
			})
		}
	}
	return issues
}
