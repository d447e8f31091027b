package hosts

// Result describes what a mutation did to the file.
type Result struct {
	Matched int  // mapping lines that matched the domain before the mutation
	Changed bool // whether the file content changed (and was written)
}

// Apply runs one mutation against the hosts file at path:
// read, parse, mutate, atomic write. The write is skipped entirely when
// the mutation turns out to be a no-op.
func Apply(path string, m Mutation) (Result, error) {
	f, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	matched, changed := f.Mutate(m)
	res := Result{Matched: matched, Changed: changed}
	if !changed {
		return res, nil
	}
	return res, f.Save(path)
}

// Resolve looks up host in the hosts file at path, whole-token.
func Resolve(path string, host Hostname) (Address, bool, error) {
	f, err := Load(path)
	if err != nil {
		return "", false, err
	}
	adr, ok := f.Resolve(host)
	return adr, ok, nil
}
