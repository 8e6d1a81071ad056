package compose

import "fmt"

// suggestionTemplates produce category-appropriate learning actions for a
// missing skill. %s is replaced by the skill name throughout.
var suggestionTemplates = map[string]string{
	"programming":  "Complete online courses for %[1]s programming. Build 2-3 projects showcasing %[1]s skills. Contribute to open-source %[1]s projects.",
	"data_science": "Take specialized courses in %[1]s. Work on real-world datasets using %[1]s. Create a portfolio project demonstrating %[1]s expertise.",
	"big_data":     "Get hands-on experience with %[1]s through cloud platforms. Complete certification courses. Build end-to-end projects using %[1]s.",
	"databases":    "Practice %[1]s queries and database design. Complete database administration courses. Build applications with %[1]s integration.",
	"cloud":        "Pursue %[1]s certifications. Set up personal projects using %[1]s services. Learn infrastructure as code with %[1]s.",
	"web":          "Build responsive web applications using %[1]s. Complete full-stack development courses. Deploy projects showcasing %[1]s skills.",
	"tools":        "Get proficient in %[1]s through daily practice. Complete relevant certifications. Use %[1]s in your projects and document the process.",
	"soft_skills":  "Develop %[1]s through practical experience. Join relevant workshops or courses. Demonstrate %[1]s through project leadership and team collaboration.",
}

const defaultSuggestionTemplate = "Learn %[1]s through courses, tutorials, and hands-on practice. Add relevant projects to your portfolio."

// suggestionFor renders the suggestion text for one missing skill
func suggestionFor(skill, category string) string {
	tmpl, ok := suggestionTemplates[category]
	if !ok {
		tmpl = defaultSuggestionTemplate
	}
	return fmt.Sprintf(tmpl, skill)
}
