// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript turns transcript text into course records.
//
// An entry is a run of tokens, in order: subject code, course number, any
// text up to a campus keyword, level, title, grade, and credit hours. The
// title and the text before the keyword may span line breaks. Entries are
// recognized left to right without overlap; text that does not complete an
// entry is skipped.
package transcript

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// campusKeywords end the free text between the course number and the level.
var campusKeywords = []string{"Campus", "Site"}

// Extract returns the records found in text, in text order, using the
// default campus label. Text without entries yields an empty slice.
func Extract(text string) []types.Record {
	return ExtractWith(text, types.TranscriptConfig{})
}

// ExtractWith is Extract with a configured campus label.
func ExtractWith(text string, cfg types.TranscriptConfig) []types.Record {
	campus := cfg.CampusLabel
	if campus == "" {
		campus = types.DefaultCampusLabel
	}

	s := newScanner(text)
	records := []types.Record{}

	for i := 0; i < len(s.src); {
		e, ok := s.entryAt(i)
		if !ok {
			i++
			continue
		}
		records = append(records, e.record(s.src, campus))
		i = e.end
	}
	return records
}

// span is a half-open rune range [start, end).
type span struct {
	start, end int
}

// anchor is a grade token followed by whitespace and a credit-hours token.
type anchor struct {
	grade   span
	credits span
}

// entry holds the token positions of one recognized course entry.
type entry struct {
	start   int
	end     int
	subject span
	number  span
	level   span
	title   span
	anchor  anchor
}

func (e entry) record(src []rune, campus string) types.Record {
	text := func(sp span) string { return string(src[sp.start:sp.end]) }

	location := campus
	if strings.Contains(string(src[e.start:e.end]), types.OffCampusMarker) {
		location = types.LocationOffCampus
	}

	// The credits token is always one digit, a dot, and three digits.
	credits, _ := strconv.ParseFloat(text(e.anchor.credits), 64)

	return types.Record{
		Label:       text(e.subject) + text(e.number),
		Location:    location,
		Level:       text(e.level),
		Title:       strings.Join(strings.Fields(text(e.title)), " "),
		Grade:       text(e.anchor.grade),
		CreditHours: credits,
	}
}

// scanner holds the transcript as runes plus the sorted start positions of
// every campus keyword and every grade anchor. Both are computed once so
// that each candidate entry start costs a binary search instead of a rescan.
type scanner struct {
	src      []rune
	keywords []span
	anchors  []anchor
}

func newScanner(text string) *scanner {
	s := &scanner{src: []rune(text)}
	for p := range s.src {
		if end, ok := s.keywordAt(p); ok {
			s.keywords = append(s.keywords, span{p, end})
		}
		if a, ok := s.anchorAt(p); ok {
			s.anchors = append(s.anchors, a)
		}
	}
	return s
}

// entryAt attempts to recognize an entry starting exactly at i.
func (s *scanner) entryAt(i int) (entry, bool) {
	e := entry{start: i}

	subjEnd := s.upperRun(i)
	if n := subjEnd - i; n < 2 || n > 4 {
		return entry{}, false
	}
	e.subject = span{i, subjEnd}

	numStart := s.skipSpace(subjEnd)
	if numStart == subjEnd {
		return entry{}, false
	}
	numEnd, ok := s.courseNumberAt(numStart)
	if !ok || !s.spaceAt(numEnd) {
		return entry{}, false
	}
	e.number = span{numStart, numEnd}

	// Try each keyword after the course number, nearest first, until the
	// rest of the entry completes.
	k := sort.Search(len(s.keywords), func(j int) bool { return s.keywords[j].start > numEnd })
	for ; k < len(s.keywords); k++ {
		kw := s.keywords[k]
		if !s.spaceAt(kw.end) {
			continue
		}
		lvlStart := s.skipSpace(kw.end)
		lvlEnd, ok := s.levelAt(lvlStart)
		if !ok || !s.spaceAt(lvlEnd) {
			continue
		}

		titleStart := s.skipSpace(lvlEnd)
		a, ok := s.firstAnchorAfter(titleStart)
		if ok {
			e.title = span{titleStart, a.grade.start}
		} else if titleStart-lvlEnd >= 2 {
			// An empty title: the grade sits right after the level,
			// separated by at least two whitespace characters.
			a, ok = s.anchorStartingAt(titleStart)
			e.title = span{titleStart, titleStart}
		}
		if !ok {
			continue
		}

		e.level = span{lvlStart, lvlEnd}
		e.anchor = a
		e.end = a.credits.end
		return e, true
	}
	return entry{}, false
}

// firstAnchorAfter returns the first anchor whose grade starts after p.
func (s *scanner) firstAnchorAfter(p int) (anchor, bool) {
	j := sort.Search(len(s.anchors), func(j int) bool { return s.anchors[j].grade.start > p })
	if j == len(s.anchors) {
		return anchor{}, false
	}
	return s.anchors[j], true
}

func (s *scanner) anchorStartingAt(p int) (anchor, bool) {
	j := sort.Search(len(s.anchors), func(j int) bool { return s.anchors[j].grade.start >= p })
	if j == len(s.anchors) || s.anchors[j].grade.start != p {
		return anchor{}, false
	}
	return s.anchors[j], true
}

// courseNumberAt matches three digits, or else a run of uppercase letters.
func (s *scanner) courseNumberAt(p int) (int, bool) {
	if s.digitRun(p)-p >= 3 && s.spaceAt(p+3) {
		return p + 3, true
	}
	end := s.upperRun(p)
	return end, end > p
}

func (s *scanner) keywordAt(p int) (int, bool) {
	for _, kw := range campusKeywords {
		if s.hasPrefix(p, kw) {
			return p + len(kw), true
		}
	}
	return 0, false
}

func (s *scanner) levelAt(p int) (int, bool) {
	for _, lvl := range []string{types.LevelUndergraduate, types.LevelGraduate} {
		if s.hasPrefix(p, lvl) {
			return p + len(lvl), true
		}
	}
	return 0, false
}

// anchorAt matches a grade token at p that follows whitespace, then
// whitespace, then the credit-hours token.
func (s *scanner) anchorAt(p int) (anchor, bool) {
	if p == 0 || !s.spaceAt(p-1) {
		return anchor{}, false
	}

	var gradeEnd int
	switch n := s.digitRun(p) - p; {
	case n >= 1 && n <= 3:
		gradeEnd = p + n
	case n > 3:
		return anchor{}, false
	case s.hasPrefix(p, types.GradeTransfer):
		gradeEnd = p + len(types.GradeTransfer)
	case s.hasPrefix(p, types.GradeWithdrawal):
		gradeEnd = p + len(types.GradeWithdrawal)
	default:
		return anchor{}, false
	}
	if !s.spaceAt(gradeEnd) {
		return anchor{}, false
	}

	c := s.skipSpace(gradeEnd)
	if !s.creditsAt(c) {
		return anchor{}, false
	}
	return anchor{grade: span{p, gradeEnd}, credits: span{c, c + 5}}, true
}

// creditsAt matches one digit, a dot, and exactly three digits.
func (s *scanner) creditsAt(p int) bool {
	if p+5 > len(s.src) {
		return false
	}
	return isDigit(s.src[p]) && s.src[p+1] == '.' && s.digitRun(p+2)-(p+2) >= 3
}

func (s *scanner) hasPrefix(p int, lit string) bool {
	for _, r := range lit {
		if p >= len(s.src) || s.src[p] != r {
			return false
		}
		p++
	}
	return true
}

func (s *scanner) spaceAt(p int) bool {
	return p < len(s.src) && unicode.IsSpace(s.src[p])
}

func (s *scanner) skipSpace(p int) int {
	for s.spaceAt(p) {
		p++
	}
	return p
}

func (s *scanner) upperRun(p int) int {
	for p < len(s.src) && s.src[p] >= 'A' && s.src[p] <= 'Z' {
		p++
	}
	return p
}

func (s *scanner) digitRun(p int) int {
	for p < len(s.src) && isDigit(s.src[p]) {
		p++
	}
	return p
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
