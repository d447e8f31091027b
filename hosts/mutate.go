package hosts

import (
	"slices"
	"strings"
)

// Annotation is the comment appended to every line the tool writes, so
// managed entries are visible on manual inspection. It is descriptive
// only: a line is recognized as a mapping regardless of its comment.
const Annotation = "updated by hostm"

func newMapping(adr Address, host Hostname) Line {
	return Line{Address: adr, Hostname: host, Comment: Annotation}
}

// Mutation is the single input contract of the engine: a non-empty IP
// upserts the mapping for Domain, an empty IP deletes it.
type Mutation struct {
	Domain Hostname
	IP     Address
}

func (m Mutation) IsDelete() bool { return m.IP == "" }

// Upsert replaces the first mapping line for host in place, or appends a
// fresh one at the end if none matches. Further duplicate matches are
// deliberately left untouched rather than silently collapsed. Reports
// the number of lines that matched beforehand and whether the file
// content changed.
func (f *File) Upsert(host Hostname, adr Address) (matched int, changed bool) {
	idx := f.Match(host)
	matched = len(idx)
	fresh := newMapping(adr, host)
	if matched == 0 {
		f.Lines = append(f.Lines, fresh)
		return matched, true
	}
	// The carriage return belongs to the line ending, not the content.
	if strings.TrimSuffix(f.Lines[idx[0]].String(), "\r") == fresh.String() {
		return matched, false
	}
	f.Lines[idx[0]] = fresh
	return matched, true
}

// Delete removes every mapping line for host. Deleting an absent host is
// a no-op, not an error.
func (f *File) Delete(host Hostname) (removed int) {
	removed = len(f.Match(host))
	if removed != 0 {
		f.Lines = slices.DeleteFunc(f.Lines, func(l Line) bool {
			return l.HasHost(host)
		})
	}
	return
}

func (f *File) Mutate(m Mutation) (matched int, changed bool) {
	if m.IsDelete() {
		n := f.Delete(m.Domain)
		return n, n != 0
	}
	return f.Upsert(m.Domain, m.IP)
}
