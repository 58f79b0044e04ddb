// Package extract provides the tokenizer and the per-field group
// extractors used by the decoding engine. Every extractor implements
// ports.GroupExtractor, is stateless, and is safe for concurrent use.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ahrav/go-metaf/internal/domain"
)

// upperCaser canonicalizes decode input. Reports are uppercase on the
// wire, but the decoder is lenient about casing; the validator is not,
// and therefore never uses this.
var upperCaser = cases.Upper(language.Und)

// RemarkMarker separates the coded groups from the free-text remarks.
const RemarkMarker = "RMK"

var (
	icaoPattern      = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
	timeGroupPattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
)

// Header is the leading section of a report: the optional kind keyword
// with its COR/AMD markers, and the station identifier.
type Header struct {
	// Kind is the leading keyword, empty when the report starts
	// directly with a station identifier.
	Kind domain.Kind

	// Corrected and Amended report COR/AMD markers directly after the
	// kind keyword.
	Corrected bool
	Amended   bool

	// ICAO is the station identifier, empty when the group after the
	// keyword is not ICAO-shaped. A missing station is not a tokenizer
	// error; extraction and validation surface it.
	ICAO string
}

// Stream is the tokenized form of one report: an ordered, positionally
// addressable group sequence. Extractors peek positions without
// consuming, so several extractors may inspect the same group when
// classification is ambiguous.
type Stream struct {
	tokens    []string
	original  []string
	header    Header
	bodyStart int
	rmk       int
}

// Tokenize splits raw report text into whitespace-delimited groups.
// Leading/trailing whitespace and a single trailing "=" end-of-message
// sentinel are stripped and never become groups. Groups are uppercased
// for extraction, the decode path being case lenient; the pre-folded
// tokens are kept so remarks stay exactly as transmitted.
func Tokenize(raw string) *Stream {
	original := strings.Fields(strings.TrimSpace(raw))
	if n := len(original); n > 0 {
		last := strings.TrimSuffix(original[n-1], "=")
		if last == "" {
			original = original[:n-1]
		} else {
			original[n-1] = last
		}
	}

	tokens := make([]string, len(original))
	for i, tok := range original {
		tokens[i] = upperCaser.String(tok)
	}

	s := &Stream{
		tokens:   tokens,
		original: original,
		rmk:      -1,
	}

	for i, tok := range s.tokens {
		if tok == RemarkMarker {
			s.rmk = i
			break
		}
	}

	s.scanHeader()
	return s
}

// scanHeader claims the kind keyword, its COR/AMD markers, and the
// station identifier from the front of the token sequence.
func (s *Stream) scanHeader() {
	i := 0
	if i < len(s.tokens) {
		switch s.tokens[i] {
		case string(domain.KindMETAR):
			s.header.Kind = domain.KindMETAR
			i++
		case string(domain.KindSPECI):
			s.header.Kind = domain.KindSPECI
			i++
		case string(domain.KindTAF):
			s.header.Kind = domain.KindTAF
			i++
		}
	}

	for i < len(s.tokens) {
		switch s.tokens[i] {
		case "COR":
			s.header.Corrected = true
			i++
			continue
		case "AMD":
			s.header.Amended = true
			i++
			continue
		}
		break
	}

	if i < len(s.tokens) && icaoPattern.MatchString(s.tokens[i]) {
		s.header.ICAO = s.tokens[i]
		i++
	}

	s.bodyStart = i
}

// Header returns the decoded leading section.
func (s *Stream) Header() Header { return s.header }

// Len returns the total number of groups, remarks included.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the group at position i, or false when out of range.
func (s *Stream) At(i int) (string, bool) {
	if i < 0 || i >= len(s.tokens) {
		return "", false
	}
	return s.tokens[i], true
}

// Tokens returns the full group sequence.
func (s *Stream) Tokens() []string { return s.tokens }

// BodyStart returns the index of the first group after the header.
func (s *Stream) BodyStart() int { return s.bodyStart }

// RemarkIndex returns the position of the RMK marker, or -1.
func (s *Stream) RemarkIndex() int { return s.rmk }

// BodyEnd returns the index one past the last coded group: the RMK
// boundary when present, otherwise the sequence length.
func (s *Stream) BodyEnd() int {
	if s.rmk >= 0 {
		return s.rmk
	}
	return len(s.tokens)
}

// Remarks returns the remarks text after the RMK marker in its
// original casing, or "".
func (s *Stream) Remarks() string {
	if s.rmk < 0 || s.rmk+1 >= len(s.tokens) {
		return ""
	}
	return strings.Join(s.original[s.rmk+1:], " ")
}
