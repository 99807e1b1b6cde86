package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

// jsonObjectPattern grabs the widest brace-delimited block, tolerating prose
// around the object the model was told not to produce.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseResponse decodes the extraction response as JSON. It first tries the
// brace-delimited block found anywhere in the text, then falls back to the
// whole response.
func parseResponse(raw string) (models.ExtractedForm, error) {
	if match := jsonObjectPattern.FindString(raw); match != "" {
		var ex models.ExtractedForm
		if err := json.Unmarshal([]byte(match), &ex); err == nil {
			return ex, nil
		}
	}

	var ex models.ExtractedForm
	if err := json.Unmarshal([]byte(raw), &ex); err != nil {
		return models.ExtractedForm{}, fmt.Errorf("failed to parse JSON from response: %w", err)
	}
	return ex, nil
}
