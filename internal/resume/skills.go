package resume

import "strings"

// skillVocabulary is the curated list of technology and soft-skill terms the
// heuristic extractor recognizes. Matching is case-insensitive substring;
// output order is vocabulary order, so duplicates are impossible by
// construction.
var skillVocabulary = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "PHP", "Ruby", "Go",
	"Rust", "Swift", "Kotlin", "Scala",
	// Web technologies
	"React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask",
	"Spring", "Laravel", "ASP.NET",
	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQLite",
	"Cassandra", "DynamoDB",
	// Cloud and DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "GitLab",
	"GitHub", "CI/CD", "DevOps",
	// Tools
	"Git", "Jira", "Confluence", "Figma", "Photoshop", "Illustrator",
	// Data and AI
	"Machine Learning", "Data Analysis", "Data Science", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Scikit-learn",
	// Methodologies
	"Agile", "Scrum", "Kanban", "Lean", "Six Sigma",
	// Soft skills
	"Project Management", "Team Leadership", "Communication", "Problem Solving",
	"Critical Thinking", "Time Management",
	// Design
	"UI/UX", "User Experience", "Wireframing", "Prototyping", "Responsive Design",
	// Testing
	"Unit Testing", "Integration Testing", "Test-Driven Development", "Jest",
	"Mocha", "Cypress", "Selenium",
}

// MatchSkills returns every vocabulary term present in the text, in
// vocabulary order.
func MatchSkills(text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0, 16)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched
}
