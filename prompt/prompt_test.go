package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestPrompter(t *testing.T, input string, opts ...Option) (*Prompter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, opts...), &out
}

func TestText(t *testing.T) {
	t.Run("trims answer", func(t *testing.T) {
		p, _ := newTestPrompter(t, "  hello world  \n")
		got, err := p.Text("Name:")
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		if got != "hello world" {
			t.Errorf("Text = %q, want %q", got, "hello world")
		}
	})

	t.Run("empty answer is a skip", func(t *testing.T) {
		p, _ := newTestPrompter(t, "\n")
		got, err := p.Text("Scope (optional):")
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		if got != "" {
			t.Errorf("Text = %q, want empty", got)
		}
	})

	t.Run("final line without newline", func(t *testing.T) {
		p, _ := newTestPrompter(t, "no newline")
		got, err := p.Text("Name:")
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		if got != "no newline" {
			t.Errorf("Text = %q, want %q", got, "no newline")
		}
	})

	t.Run("end of input cancels", func(t *testing.T) {
		p, _ := newTestPrompter(t, "")
		_, err := p.Text("Name:")
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("err = %v, want ErrCanceled", err)
		}
	})
}

func TestTextRequired(t *testing.T) {
	t.Run("re-prompts until non-empty", func(t *testing.T) {
		p, out := newTestPrompter(t, "\n   \nfix the bug\n")
		got, err := p.TextRequired("Name:")
		if err != nil {
			t.Fatalf("TextRequired: %v", err)
		}
		if got != "fix the bug" {
			t.Errorf("TextRequired = %q, want %q", got, "fix the bug")
		}
		if n := strings.Count(out.String(), "You must enter a value."); n != 2 {
			t.Errorf("validation message shown %d times, want 2", n)
		}
	})

	t.Run("cancel during re-prompt propagates", func(t *testing.T) {
		p, _ := newTestPrompter(t, "\n")
		_, err := p.TextRequired("Name:")
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("err = %v, want ErrCanceled", err)
		}
	})
}

func TestSelect(t *testing.T) {
	options := []string{"feat", "fix", "docs"}

	t.Run("returns chosen index", func(t *testing.T) {
		p, out := newTestPrompter(t, "2\n")
		got, err := p.Select("Type:", options)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if got != 1 {
			t.Errorf("Select = %d, want 1", got)
		}
		for _, opt := range options {
			if !strings.Contains(out.String(), opt) {
				t.Errorf("menu missing option %q", opt)
			}
		}
	})

	t.Run("re-prompts on junk and out-of-range", func(t *testing.T) {
		p, out := newTestPrompter(t, "abc\n0\n9\n3\n")
		got, err := p.Select("Type:", options)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if got != 2 {
			t.Errorf("Select = %d, want 2", got)
		}
		if n := strings.Count(out.String(), "Enter a number between 1 and 3."); n != 3 {
			t.Errorf("re-prompt shown %d times, want 3", n)
		}
	})

	t.Run("end of input cancels", func(t *testing.T) {
		p, _ := newTestPrompter(t, "")
		_, err := p.Select("Type:", options)
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("err = %v, want ErrCanceled", err)
		}
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"No\n", false},
		{"  no \n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, _ := newTestPrompter(t, tt.input)
			got, err := p.Confirm("Confirm? (y/n)")
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	t.Run("re-prompts on junk", func(t *testing.T) {
		p, out := newTestPrompter(t, "maybe\ny\n")
		got, err := p.Confirm("Confirm? (y/n)")
		if err != nil {
			t.Fatalf("Confirm: %v", err)
		}
		if !got {
			t.Error("Confirm = false, want true")
		}
		if !strings.Contains(out.String(), "Please answer y or n.") {
			t.Error("missing re-prompt message")
		}
	})

	t.Run("end of input cancels", func(t *testing.T) {
		p, _ := newTestPrompter(t, "")
		_, err := p.Confirm("Confirm? (y/n)")
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("err = %v, want ErrCanceled", err)
		}
	})
}

func TestEditor(t *testing.T) {
	t.Run("returns seeded content when editor makes no change", func(t *testing.T) {
		p, _ := newTestPrompter(t, "", WithEditor("true"))
		got, err := p.Editor("Pull request description", "seeded text\n")
		if err != nil {
			t.Fatalf("Editor: %v", err)
		}
		if got != "seeded text\n" {
			t.Errorf("Editor = %q, want seeded content", got)
		}
	})

	t.Run("returns edited content", func(t *testing.T) {
		p, _ := newTestPrompter(t, "", WithEditor("sh", "-c", `printf 'rewritten' > "$0"`))
		got, err := p.Editor("Pull request description", "old")
		if err != nil {
			t.Fatalf("Editor: %v", err)
		}
		if got != "rewritten" {
			t.Errorf("Editor = %q, want %q", got, "rewritten")
		}
	})

	t.Run("editor failure surfaces", func(t *testing.T) {
		p, _ := newTestPrompter(t, "", WithEditor("false"))
		_, err := p.Editor("Pull request description", "")
		if err == nil {
			t.Fatal("expected error from failing editor")
		}
	})
}
