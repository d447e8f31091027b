package hosts

import (
	"slices"
	"testing"
)

func TestMatchWholeToken(t *testing.T) {
	f := Parse("10.0.0.1 notexample.com\n" +
		"10.0.0.2 example.com\n" +
		"10.0.0.3 example.com.org\n" +
		"10.0.0.4 Example.com\n")

	tests := []struct {
		host string
		want []int
	}{
		{host: "example.com", want: []int{1}},
		{host: "notexample.com", want: []int{0}},
		{host: "Example.com", want: []int{3}},
		{host: "ample.com", want: nil},
		{host: "example", want: nil},
		{host: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := f.Match(tt.host); !slices.Equal(got, tt.want) {
				t.Fatalf("Match(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestMatchReportsDuplicates(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n# sep\n10.0.0.2 a.com\n10.0.0.3 b.com\n10.0.0.4 a.com\n")
	if got := f.Match("a.com"); !slices.Equal(got, []int{0, 2, 4}) {
		t.Fatalf("Match = %v, want [0 2 4]", got)
	}
}

func TestResolveFirstWins(t *testing.T) {
	f := Parse("10.0.0.1 a.com\n10.0.0.2 a.com\n")
	adr, ok := f.Resolve("a.com")
	if !ok || adr != "10.0.0.1" {
		t.Fatalf("Resolve = %q, %v; want 10.0.0.1, true", adr, ok)
	}
	if _, ok := f.Resolve("b.com"); ok {
		t.Fatal("Resolve(b.com) reported a match")
	}
}
