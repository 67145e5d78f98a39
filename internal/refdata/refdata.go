// Package refdata holds the static reference tables the dashboard is built
// from: supported countries, preset student scenarios, legal topics, model
// choices, and the presentation-only extras (awareness figures, resource
// cards, quiz questions). Everything here is read-only.
package refdata

import (
	"strings"

	"github.com/biter777/countries"
)

// Country pairs a human-readable label with its ISO alpha-2 code.
type Country struct {
	Name string
	Code string
	Flag string
}

// Model describes one selectable backend model.
type Model struct {
	Label string
	ID    string
}

// Awareness is a simulated per-country awareness figure, presentation only.
type Awareness struct {
	Code    string
	Percent int
}

// Resource is a static card shown on the Resources tab.
type Resource struct {
	Icon        string
	Title       string
	Description string
}

// Contact is an emergency-contact block shown on the Resources tab.
type Contact struct {
	Title string
	Lines []string
}

// QuizQuestion is a single multiple-choice rights question.
type QuizQuestion struct {
	Prompt      string
	Options     []string
	Answer      int
	Explanation string
}

var countryTable = []Country{
	{Name: "United States", Code: "US", Flag: "🇺🇸"},
	{Name: "United Kingdom", Code: "GB", Flag: "🇬🇧"},
	{Name: "Canada", Code: "CA", Flag: "🇨🇦"},
	{Name: "Australia", Code: "AU", Flag: "🇦🇺"},
	{Name: "India", Code: "IN", Flag: "🇮🇳"},
	{Name: "Germany", Code: "DE", Flag: "🇩🇪"},
	{Name: "France", Code: "FR", Flag: "🇫🇷"},
	{Name: "Japan", Code: "JP", Flag: "🇯🇵"},
	{Name: "Brazil", Code: "BR", Flag: "🇧🇷"},
	{Name: "South Africa", Code: "ZA", Flag: "🇿🇦"},
	{Name: "Spain", Code: "ES", Flag: "🇪🇸"},
	{Name: "Singapore", Code: "SG", Flag: "🇸🇬"},
}

var scenarioTable = []string{
	"Academic Rights & Responsibilities",
	"Campus Housing Issues",
	"Discrimination & Harassment",
	"Freedom of Speech on Campus",
	"Student Privacy Rights",
	"Disciplinary Proceedings",
	"Financial Aid & Scholarships",
	"Intellectual Property Rights",
	"Internship & Employment Rights",
	"Student Loan Concerns",
	"Campus Safety & Security",
	"Consumer Protection as a Student",
}

var topicTable = []string{
	"Academic Integrity Policies",
	"Title IX & Gender Equity",
	"Disability Accommodations",
	"Student Privacy (FERPA)",
	"Campus Free Speech",
	"Student Organization Rights",
	"Financial Aid Regulations",
	"Plagiarism & Copyright",
	"Tenant Rights for Students",
	"Student Employment Laws",
	"Campus Police Interactions",
	"Student Loan Borrower Rights",
}

var modelTable = []Model{
	{Label: "Llama3-70b (Highest Accuracy)", ID: "llama3-70b-8192"},
	{Label: "Llama3-8b (Fast Response)", ID: "llama3-8b-8192"},
	{Label: "Mixtral-8x7b (Balanced)", ID: "mixtral-8x7b-32768"},
}

// Simulated figures carried over from the original dashboard; aligned with
// countryTable order.
var awarenessTable = []int{85, 82, 80, 78, 75, 83, 81, 79, 76, 74, 80, 77}

var resourceTable = []Resource{
	{Icon: "📝", Title: "Legal Templates", Description: "Downloadable templates for common student legal documents"},
	{Icon: "📚", Title: "Legal Glossary", Description: "Understand legal terminology with our student-friendly dictionary"},
	{Icon: "📱", Title: "Campus Legal Apps", Description: "Mobile applications for legal assistance on campus"},
	{Icon: "👨‍⚖️", Title: "Find Legal Aid", Description: "Locate free or low-cost legal services for students"},
	{Icon: "📅", Title: "Workshops & Events", Description: "Upcoming legal education sessions on campus"},
	{Icon: "📖", Title: "Legal Handbook", Description: "Comprehensive guide to student rights and responsibilities"},
}

var contactTable = []Contact{
	{Title: "Campus Security", Lines: []string{"Emergency: (555) 123-4567", "Non-emergency: (555) 123-4000"}},
	{Title: "Student Legal Services", Lines: []string{"Phone: (555) 987-6543", "Email: legal@university.edu"}},
	{Title: "National Legal Aid", Lines: []string{"Hotline: 1-800-LEGAL-AID", "Website: legalaid.org"}},
}

var quizTable = []QuizQuestion{
	{
		Prompt: "Can your college share your academic records without permission?",
		Options: []string{
			"Always",
			"Only with parents",
			"Only with your consent",
			"Only in emergencies",
		},
		Answer:      2,
		Explanation: "FERPA requires your consent for most record disclosures.",
	},
	{
		Prompt: "What should you do if you face discrimination on campus?",
		Options: []string{
			"Ignore it",
			"Report to Title IX coordinator",
			"Post about it on social media",
			"Confront the person directly",
		},
		Answer:      1,
		Explanation: "Reporting to the Title IX coordinator is the proper step.",
	},
}

// Countries returns the ordered list of supported countries.
func Countries() []Country {
	return countryTable
}

// Scenarios returns the ordered preset scenario labels.
func Scenarios() []string {
	return scenarioTable
}

// Topics returns the ordered legal topic labels.
func Topics() []string {
	return topicTable
}

// Models returns the selectable backend models, most capable first.
func Models() []Model {
	return modelTable
}

// AwarenessStats returns the simulated awareness percentages per country.
func AwarenessStats() []Awareness {
	stats := make([]Awareness, len(countryTable))
	for i, c := range countryTable {
		stats[i] = Awareness{Code: c.Code, Percent: awarenessTable[i]}
	}
	return stats
}

// Resources returns the static resource cards.
func Resources() []Resource {
	return resourceTable
}

// Contacts returns the emergency-contact blocks.
func Contacts() []Contact {
	return contactTable
}

// Quiz returns the rights-quiz questions.
func Quiz() []QuizQuestion {
	return quizTable
}

// CountryByCode looks up a supported country by its ISO alpha-2 code.
func CountryByCode(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range countryTable {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryName resolves an ISO alpha-2 code to a display name. Codes in the
// reference table resolve to the table entry, other valid codes resolve via
// the ISO database, and unknown codes echo back unchanged.
func CountryName(code string) string {
	if c, ok := CountryByCode(code); ok {
		return c.Name
	}
	if cc := countries.ByName(strings.ToUpper(strings.TrimSpace(code))); cc != countries.Unknown {
		return cc.String()
	}
	return code
}
