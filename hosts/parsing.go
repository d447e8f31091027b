package hosts

import (
	"fmt"
	"strings"
)

type Hostname = string
type Address = string

// Line is one physical line of a hosts file. Lines read from disk keep
// their exact original text in Raw and serialize verbatim, so formatting
// quirks in user-edited files survive untouched. Lines built by the tool
// leave Raw empty and serialize from the parsed fields.
type Line struct {
	Raw      string
	Address  Address
	Hostname Hostname
	Comment  string
}

// IsMapping reports whether the line encodes an address-to-hostname
// mapping. Anything else (blank, comment, malformed, multi-hostname)
// is opaque and never modified.
func (l Line) IsMapping() bool { return l.Hostname != "" }

func (l Line) HasHost(host Hostname) bool {
	return l.IsMapping() && l.Hostname == host
}

func (l Line) String() string {
	if l.Raw != "" || !l.IsMapping() {
		return l.Raw
	}
	if l.Comment == "" {
		return fmt.Sprintf("%s %s", l.Address, l.Hostname)
	}
	return fmt.Sprintf("%s %s # %s", l.Address, l.Hostname, l.Comment)
}

// Text returns the line's content without a trailing carriage return,
// for display. Serialization goes through String, which keeps the byte.
func (l Line) Text() string {
	return strings.TrimSuffix(l.String(), "\r")
}

// isIPv4Shape reports whether tok is four dot-separated digit groups.
// Only the shape is checked, octet ranges are the caller's problem.
func isIPv4Shape(tok string) bool {
	groups := strings.Split(tok, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if g == "" {
			return false
		}
		for _, c := range g {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// parseLine classifies one physical line. It never fails: a line that is
// not exactly <ipv4-shape> <hostname> [# comment] stays opaque with its
// text intact.
func parseLine(text string) Line {
	l := Line{Raw: text}
	body, comment, hasComment := strings.Cut(text, "#")
	fields := strings.Fields(body)
	if len(fields) != 2 || !isIPv4Shape(fields[0]) {
		return l
	}
	l.Address = fields[0]
	l.Hostname = fields[1]
	if hasComment {
		l.Comment = strings.TrimSpace(comment)
	}
	return l
}

// File is the parsed, ordered content of a hosts file.
type File struct {
	Lines []Line

	crlf     bool // dominant line ending style, used for fresh lines
	finalEOL bool
}

// Parse splits content into lines. Each line's Raw retains any carriage
// return, so even files with mixed endings reconstruct byte-for-byte.
func Parse(content string) *File {
	f := &File{crlf: strings.Count(content, "\r\n")*2 > strings.Count(content, "\n")}
	if content == "" {
		f.finalEOL = true
		return f
	}
	parts := strings.Split(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
		f.finalEOL = true
	}
	f.Lines = make([]Line, 0, len(parts))
	for _, p := range parts {
		f.Lines = append(f.Lines, parseLine(p))
	}
	return f
}

func (f *File) String() string {
	var b strings.Builder
	for i, l := range f.Lines {
		b.WriteString(l.String())
		// Only fresh lines take the dominant ending; a read-in blank
		// line also has an empty Raw but carries its own bytes.
		if l.Raw == "" && l.IsMapping() && f.crlf {
			b.WriteString("\r")
		}
		if i < len(f.Lines)-1 || f.finalEOL {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (f *File) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *File) UnmarshalText(data []byte) error {
	*f = *Parse(string(data))
	return nil
}
