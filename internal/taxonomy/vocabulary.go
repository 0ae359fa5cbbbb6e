package taxonomy

// Built-in categorized vocabulary for job matching. Canonical strings keep
// their natural spelling ("node.js", "ci/cd"); matching happens on their
// normalized forms.
//
// Note: "r" is a deliberate single-character entry for the R language.
// Word-boundary matching keeps it from firing inside words like "for", but
// it will still match a lone "r" token used for anything else; that is a
// vocabulary trade-off, not a matcher bug.
var defaultCategories = []string{
	"languages",
	"frontend",
	"backend",
	"databases",
	"cloud",
	"testing",
	"tools",
	"concepts",
}

var defaultSkills = map[string][]string{
	"languages": {
		"javascript", "python", "java", "ruby", "php", "swift",
		"kotlin", "golang", "typescript", "rust", "scala", "perl", "r",
		"matlab", "dart", "lua", "haskell", "assembly", "c++", "c#",
	},
	"frontend": {
		"react", "vue", "angular", "svelte", "jquery", "backbone", "ember",
		"html", "css", "sass", "less", "tailwind", "bootstrap", "material-ui",
		"webpack", "vite", "babel", "next.js", "gatsby", "redux", "mobx",
	},
	"backend": {
		"node.js", "express", "django", "flask", "spring", "laravel", "rails",
		"fastapi", "asp.net", "graphql", "rest", "soap", "grpc",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"cassandra", "oracle", "dynamodb", "firebase", "neo4j", "sqlite",
	},
	"cloud": {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform",
		"ansible", "circleci", "travis", "netlify", "heroku", "vercel",
	},
	"testing": {
		"jest", "mocha", "cypress", "selenium", "junit", "pytest", "karma",
		"jasmine", "enzyme", "testing library", "vitest",
	},
	"tools": {
		"git", "npm", "yarn", "webpack", "babel", "eslint", "prettier",
		"vscode", "postman", "jira", "confluence", "swagger",
	},
	"concepts": {
		"api", "rest", "graphql", "mvc", "orm", "ci/cd", "tdd", "agile",
		"scrum", "microservices", "serverless", "oauth", "jwt",
	},
}

// Flat technical/soft vocabulary for resume completeness scoring. Kept
// separate from the categorized taxonomy on purpose: the two scoring paths
// evolved independently and weigh their inputs differently.
var resumeCategories = []string{CategoryTechnical, CategorySoft}

var resumeSkills = map[string][]string{
	CategoryTechnical: {
		"javascript", "react", "node", "express", "mongodb", "sql",
		"python", "java", "c++",
		"aws", "docker", "kubernetes",
		"html", "css", "angular", "vue", "typescript", "graphql",
		"rest", "api", "git", "ci/cd", "agile", "scrum",
	},
	CategorySoft: {
		"communication", "leadership", "teamwork", "problem solving",
		"time management", "critical thinking", "collaboration",
		"adaptability", "creativity", "organization",
	},
}
