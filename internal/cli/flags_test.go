package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"From", flags.From, "auto"},
		{"Provider", flags.Provider, "openai"},
		{"Temperature", flags.Temperature, 0.2},
		{"Timeout", flags.Timeout, 60},
		{"MaxTokens", flags.MaxTokens, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"To", flags.To},
		{"OutputFile", flags.OutputFile},
		{"BatchFile", flags.BatchFile},
		{"Model", flags.Model},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if flags.ListModels {
		t.Error("ListModels = true, want false")
	}
	if flags.History != 0 {
		t.Errorf("History = %v, want 0", flags.History)
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "From", "To", "OutputFile", "BatchFile", "History",
		"ListModels", "Provider", "Model", "Temperature", "Timeout",
		"MaxTokens",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
