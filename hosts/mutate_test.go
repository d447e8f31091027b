package hosts

import (
	"strings"
	"testing"
)

func TestUpsertReplacesInPlace(t *testing.T) {
	f := Parse("10.0.0.1 a.com\nb.com 10.0.0.2\n")
	matched, changed := f.Upsert("a.com", "10.0.0.9")
	if matched != 1 || !changed {
		t.Fatalf("Upsert = (%d, %v), want (1, true)", matched, changed)
	}
	want := "10.0.0.9 a.com # " + Annotation + "\nb.com 10.0.0.2\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpsertAppendsOnMiss(t *testing.T) {
	const content = "127.0.0.1 localhost\n# keep\n"
	f := Parse(content)
	matched, changed := f.Upsert("a.com", "10.0.0.9")
	if matched != 0 || !changed {
		t.Fatalf("Upsert = (%d, %v), want (0, true)", matched, changed)
	}
	got := f.String()
	if !strings.HasPrefix(got, content) {
		t.Fatalf("prior lines changed: %q", got)
	}
	if got != content+"10.0.0.9 a.com # "+Annotation+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUpsertReplacesOnlyFirstDuplicate(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n10.0.0.2 a.com\n")
	matched, changed := f.Upsert("a.com", "10.0.0.9")
	if matched != 2 || !changed {
		t.Fatalf("Upsert = (%d, %v), want (2, true)", matched, changed)
	}
	want := "10.0.0.9 a.com # " + Annotation + "\n10.0.0.2 a.com\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpsertRedundantIsNoop(t *testing.T) {
	f := Parse("10.0.0.9 a.com # " + Annotation + "\n")
	matched, changed := f.Upsert("a.com", "10.0.0.9")
	if matched != 1 || changed {
		t.Fatalf("Upsert = (%d, %v), want (1, false)", matched, changed)
	}
}

func TestUpsertWholeTokenMiss(t *testing.T) {
	f := Parse("10.0.0.1 notexample.com\n")
	matched, _ := f.Upsert("example.com", "10.0.0.9")
	if matched != 0 {
		t.Fatalf("matched %d lines, want 0", matched)
	}
	want := "10.0.0.1 notexample.com\n10.0.0.9 example.com # " + Annotation + "\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpsertCRLFFile(t *testing.T) {
	f := Parse("127.0.0.1 localhost\r\n")
	f.Upsert("a.com", "10.0.0.9")
	want := "127.0.0.1 localhost\r\n10.0.0.9 a.com # " + Annotation + "\r\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpsertKeepsLFBlankLineInCRLFFile(t *testing.T) {
	f := Parse("10.0.0.1 a.com\r\n\n10.0.0.2 b.com\r\n")
	f.Upsert("b.com", "10.0.0.9")
	want := "10.0.0.1 a.com\r\n\n10.0.0.9 b.com # " + Annotation + "\r\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpsertRedundantCRLFIsNoop(t *testing.T) {
	f := Parse("10.0.0.9 a.com # " + Annotation + "\r\n")
	if matched, changed := f.Upsert("a.com", "10.0.0.9"); matched != 1 || changed {
		t.Fatalf("Upsert = (%d, %v), want (1, false)", matched, changed)
	}
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n# sep\n10.0.0.2 a.com\n10.0.0.3 b.com\n")
	if removed := f.Delete("a.com"); removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	want := "# sep\n10.0.0.3 b.com\n"
	if got := f.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n10.0.0.3 b.com\n")
	f.Delete("a.com")
	first := f.String()
	if removed := f.Delete("a.com"); removed != 0 {
		t.Fatalf("second delete removed %d lines", removed)
	}
	if got := f.String(); got != first {
		t.Fatalf("second delete changed content: %q vs %q", got, first)
	}
}

func TestMutateSelectsOperation(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n")
	if _, changed := f.Mutate(Mutation{Domain: "a.com"}); !changed {
		t.Fatal("delete mutation reported no change")
	}
	if _, changed := f.Mutate(Mutation{Domain: "a.com", IP: "10.0.0.2"}); !changed {
		t.Fatal("upsert mutation reported no change")
	}
}
