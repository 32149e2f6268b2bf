package guardrails

import "strings"

// DefaultBanWords is the fallback ban list used when the moderation config
// carries no ban_words section.
var DefaultBanWords = []string{
	"palavrão",
	"idiota",
	"imbecil",
}

// StaticValidator blocks content containing any banned term. It runs before
// the LLM validator because it is fast and free.
type StaticValidator struct {
	banWords []string
}

func NewStaticValidator(banWords []string) *StaticValidator {
	if len(banWords) == 0 {
		banWords = DefaultBanWords
	}
	return &StaticValidator{banWords: banWords}
}

func (v *StaticValidator) Validate(content string) ValidationResult {
	lowered := strings.ToLower(content)

	for _, word := range v.banWords {
		if strings.Contains(lowered, strings.ToLower(word)) {
			return ValidationResult{
				IsValid:  false,
				Reason:   "Contains banned term",
				Category: "banned_term",
				Method:   "static",
			}
		}
	}

	return ValidationResult{IsValid: true, Method: "static"}
}
