package language

import (
	"testing"
)

func TestSourcesIncludeAutoFirst(t *testing.T) {
	table := NewTable()

	sources := table.Sources()
	if len(sources) == 0 {
		t.Fatal("Sources returned no languages")
	}

	if sources[0] != Auto {
		t.Errorf("Expected first source to be %q, got %q", Auto, sources[0])
	}
}

func TestTargetsExcludeAuto(t *testing.T) {
	table := NewTable()

	for _, target := range table.Targets() {
		if target == Auto {
			t.Errorf("Auto-detect sentinel must not be a valid target")
		}
	}
}

func TestValidSource(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name  string
		valid bool
	}{
		{Auto, true},
		{"Go", true},
		{"Python", true},
		{"Klingon", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ValidSource(tt.name); got != tt.valid {
				t.Errorf("ValidSource(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestValidTargetRejectsAuto(t *testing.T) {
	table := NewTable()

	if table.ValidTarget(Auto) {
		t.Error("ValidTarget accepted the auto-detect sentinel")
	}
	if !table.ValidTarget("Rust") {
		t.Error("ValidTarget rejected Rust")
	}
}

func TestResolve(t *testing.T) {
	table := NewTable()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"go", "Go", false},
		{"PYTHON", "Python", false},
		{" javascript ", "JavaScript", false},
		{"auto", Auto, false},
		{"Auto Detect", Auto, false},
		{"c++", "C++", false},
		{"brainfuck", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := table.Resolve(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Resolve(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEditorTag(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"Go", "go"},
		{"Python", "python"},
		{"C++", "cpp"},
		{"C#", "csharp"},
		{Auto, "plaintext"},
		{"JavaScript", "javascript"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := EditorTag(tt.lang); got != tt.want {
				t.Errorf("EditorTag(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}
