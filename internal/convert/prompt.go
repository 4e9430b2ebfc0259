package convert

import (
	"fmt"

	"codeberg.org/snonux/codeshift/internal/language"
)

// buildPrompt constructs the conversion instruction sent to the model.
// The source text is embedded verbatim; the directives ask for raw code
// only so the output needs no parsing beyond StripFences.
func buildPrompt(sourceLang, targetLang, sourceText string) string {
	sourceLabel := sourceLang
	if sourceLang == language.Auto {
		sourceLabel = "the original language (infer it from the code)"
	}

	return fmt.Sprintf(
		"Convert the following code from %s to %s.\n"+
			"Respond with only the converted %s code. "+
			"Do not add explanations, commentary or markdown code fences.\n\n%s",
		sourceLabel, targetLang, targetLang, sourceText)
}
