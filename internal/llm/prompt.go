package llm

import "strings"

// BuildRightsPrompt templates the system and user messages for a rights
// query. Pure: identical inputs always produce identical strings.
func BuildRightsPrompt(countryName, scenario string) (system, user string) {
	countryName = strings.TrimSpace(countryName)
	scenario = strings.TrimSpace(scenario)

	var sys strings.Builder
	sys.WriteString("You are an expert legal assistant specializing in student rights in ")
	sys.WriteString(countryName)
	sys.WriteString(".\n")
	sys.WriteString("Provide clear, accurate information about student rights in the given scenario.\n\n")
	sys.WriteString("Guidelines:\n")
	sys.WriteString("- Focus specifically on student rights and responsibilities\n")
	sys.WriteString("- List 5-7 key points as bullet points\n")
	sys.WriteString("- Use plain language understandable to students\n")
	sys.WriteString("- Include relevant legal references when appropriate\n")
	sys.WriteString("- Highlight practical steps students can take\n")
	sys.WriteString("- Mention any country-specific variations\n")
	sys.WriteString("- Keep the response under 300 words\n")
	sys.WriteString("- Use light markdown formatting for readability\n")
	sys.WriteString("- End with a disclaimer that this is general information, not legal advice")

	var usr strings.Builder
	usr.WriteString("Scenario: ")
	usr.WriteString(scenario)
	usr.WriteString("\nCountry: ")
	usr.WriteString(countryName)
	usr.WriteString("\n\nPlease provide student-specific rights information for this situation in ")
	usr.WriteString(countryName)
	usr.WriteString(".")

	return sys.String(), usr.String()
}
