package guardrails

import "testing"

func TestStaticValidator(t *testing.T) {
	tests := []struct {
		name    string
		content string
		allowed bool
	}{
		{"clean text", "qual a capital da França?", true},
		{"exact banned word", "idiota", false},
		{"banned word inside sentence", "você é um idiota mesmo", false},
		{"case insensitive", "IMBECIL", false},
		{"banned word with accents", "isso é um palavrão", false},
	}

	validator := NewStaticValidator(nil) // falls back to DefaultBanWords

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.Validate(tt.content)
			if result.IsValid != tt.allowed {
				t.Errorf("Validate(%q).IsValid = %v, expected %v", tt.content, result.IsValid, tt.allowed)
			}
			if result.Method != "static" {
				t.Errorf("Expected method 'static', got %q", result.Method)
			}
		})
	}
}

func TestStaticValidator_CustomList(t *testing.T) {
	validator := NewStaticValidator([]string{"segredo"})

	if result := validator.Validate("isso é segredo"); result.IsValid {
		t.Error("Expected custom banned word to block")
	}
	// A custom list replaces the defaults entirely.
	if result := validator.Validate("idiota"); !result.IsValid {
		t.Error("Expected default ban words to be inactive with a custom list")
	}
}

func TestLLMValidator_ParseResponse(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		expectValid    bool
		expectCategory string
	}{
		{
			name:           "allow",
			response:       "DECISION: ALLOW\nCATEGORY: safe\nREASON: Harmless question",
			expectValid:    true,
			expectCategory: "safe",
		},
		{
			name:           "block toxic",
			response:       "DECISION: BLOCK\nCATEGORY: toxic\nREASON: Hate speech",
			expectValid:    false,
			expectCategory: "toxic",
		},
		{
			name:           "block pii with extra whitespace",
			response:       "  DECISION: BLOCK \n CATEGORY: pii \n REASON: Contains a credit card number",
			expectValid:    false,
			expectCategory: "pii",
		},
		{
			name:           "malformed response blocks",
			response:       "I cannot help with that.",
			expectValid:    false,
			expectCategory: "unknown",
		},
		{
			name:           "empty response blocks",
			response:       "",
			expectValid:    false,
			expectCategory: "unknown",
		},
	}

	validator := NewLLMValidator(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.parseResponse(tt.response)
			if result.IsValid != tt.expectValid {
				t.Errorf("IsValid = %v, expected %v", result.IsValid, tt.expectValid)
			}
			if result.Category != tt.expectCategory {
				t.Errorf("Category = %q, expected %q", result.Category, tt.expectCategory)
			}
			if result.Method != "llm" {
				t.Errorf("Expected method 'llm', got %q", result.Method)
			}
		})
	}
}
