package ui

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Displayer is an interface for displaying a string.
type Displayer interface {
	Display() string
}

func Display(v any) string {
	switch v := v.(type) {
	case struct{}:
		return ""
	case Displayer:
		return v.Display()
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			break
		}
		return string(b)
	default:
		json, err := json.Marshal(v)
		if err != nil {
			break
		}
		return string(json)
	}
	return fmt.Sprintf("[%T?]", v)
}

func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// FixedBlock renders post in a fixed-width cell, truncating with an
// ellipsis when it overflows.
func FixedBlock(pre string, post string, n int) string {
	if n <= 0 {
		return ""
	}

	m := lipgloss.Width(post)
	if m > n {
		post = lipgloss.NewStyle().MaxWidth(n).Render(post)
		post, _, _ = strings.Cut(post, "\n")
		post = post[:len(post)-1]
		post += "…"
	} else {
		post += Pad(n - m)
	}

	if pre == "" {
		return post
	}
	return pre + " " + post
}
