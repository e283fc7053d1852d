package wildcard

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		file    string
		want    bool
	}{
		{"star matches everything", "*", "main.go", true},
		{"star matches dotfile", "*", ".gitignore", true},
		{"extension match", "*.txt", "notes.txt", true},
		{"extension mismatch", "*.txt", "notes.log", false},
		{"extension matches dotfile", "*.txt", ".hidden.txt", true},
		{"question mark single char", "a?.txt", "ab.txt", true},
		{"question mark requires char", "a?.txt", "a.txt", false},
		{"question mark exactly one", "a?.txt", "abc.txt", false},
		{"exact name", "Makefile", "Makefile", true},
		{"exact name case sensitive", "Makefile", "makefile", false},
		{"empty pattern matches all", "", "anything.bin", true},
		{"star does not cross separators", "*", "a/b.txt", false},
		{"mid pattern star", "lib*.a", "libfsio.a", true},
		{"multiple stars", "*file*", "profile.dat", true},
	}

	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Match(tt.pattern, tt.file)
			if err != nil {
				t.Fatalf("Match(%q, %q) error: %v", tt.pattern, tt.file, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.file, got, tt.want)
			}
		})
	}
}

func TestMatch_BadPattern(t *testing.T) {
	m := New()
	if _, err := m.Match("[unclosed", "name"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
