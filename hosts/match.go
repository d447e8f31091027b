package hosts

// Match returns the index of every mapping line whose hostname token
// equals host, in file order. Matching is whole-token and case
// sensitive: "notexample.com" never matches "example.com". A well-formed
// file yields at most one index, but duplicates in hand-edited files are
// all reported.
func (f *File) Match(host Hostname) (idx []int) {
	for i, l := range f.Lines {
		if l.HasHost(host) {
			idx = append(idx, i)
		}
	}
	return
}

// Resolve returns the address mapped to host, using the first mapping
// line in file order.
func (f *File) Resolve(host Hostname) (adr Address, ok bool) {
	for _, l := range f.Lines {
		if l.HasHost(host) {
			return l.Address, true
		}
	}
	return
}
