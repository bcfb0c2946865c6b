package taxonomy

import "strings"

// rule is one ordered entry of the classification table. Earlier rules
// win when keyword sets overlap, so the slice order below is a contract:
// several terms appear in more than one conceptual bucket (e.g. "sql"
// reads as both a language and a database) and reordering the table
// silently changes document layout.
type rule struct {
	category Category
	keywords []string
}

// classificationRules is the authoritative ordered rule table. Exposed
// as data rather than branching logic so the precedence is reviewable
// in one place.
var classificationRules = []rule{
	{CategoryLanguage, []string{
		"python", "javascript", "typescript", "java", "c++", "cpp", "c#", "csharp",
		"golang", "go", "rust", "php", "swift", "kotlin", "ruby", "scala", "r",
		"matlab", "dart", "lua", "objective-c", "perl", "haskell", "elixir",
		"clojure", "groovy", "f#", "assembly", "sql", "bash", "c",
	}},
	{CategoryFrontend, []string{
		"react", "vue", "angular", "next.js", "nextjs", "nuxt", "svelte", "html",
		"css", "sass", "tailwind", "bootstrap", "jquery", "redux", "webpack",
		"vite", "material ui", "chakra", "styled-components", "frontend", "web",
	}},
	{CategoryBackend, []string{
		"node", "express", "django", "flask", "fastapi", "spring", "laravel",
		"rails", "asp.net", ".net", "dotnet", "graphql", "rest api", "grpc",
		"microservice", "nestjs", "gin", "fiber", "actix", "backend", "server",
		"api",
	}},
	{CategoryDataML, []string{
		"tensorflow", "pytorch", "keras", "scikit", "sklearn", "pandas", "numpy",
		"matplotlib", "seaborn", "jupyter", "opencv", "nltk", "spacy",
		"machine learning", "deep learning", "data science", "data analysis",
		"data engineering", "big data", "nlp", "computer vision",
		"langchain", "llamaindex", "hugging face", "transformers", "llm",
		"openai", "anthropic", "gemini", "cohere", "generative ai", "rag",
		"power bi", "tableau", "excel", "analytics", "ai",
	}},
	{CategoryDatabase, []string{
		"mysql", "postgres", "postgresql", "mongodb", "sqlite", "redis",
		"firebase", "supabase", "dynamodb", "elasticsearch", "cassandra",
		"neo4j", "mariadb", "oracle", "sql server", "mssql", "couchdb",
		"influxdb", "pinecone", "qdrant", "database",
	}},
	{CategoryDevOps, []string{
		"docker", "kubernetes", "k8s", "aws", "amazon web services", "azure",
		"gcp", "google cloud", "jenkins", "github actions", "gitlab ci",
		"terraform", "ansible", "nginx", "linux", "ubuntu", "debian", "circleci",
		"prometheus", "grafana", "datadog", "heroku", "vercel", "netlify",
		"devops", "cloud", "ci/cd",
	}},
	{CategoryMobile, []string{
		"react native", "flutter", "android", "ios", "xamarin", "ionic",
		"swift ui", "swiftui", "jetpack compose", "expo", "capacitor", "mobile",
	}},
}

// substringMinLen is the shortest keyword that participates in
// substring containment. Single-letter languages ("r", "c") and other
// short tokens match only exactly, otherwise they would swallow nearly
// every input.
const substringMinLen = 4

// Classifier buckets raw skill strings into categories using the
// ordered rule table. known reports whether a string resolves to a
// renderable icon; it backs the tool bucket and is typically the icon
// catalog's lookup.
type Classifier struct {
	known func(string) bool
}

// NewClassifier builds a Classifier. known may be nil, in which case
// the tool bucket is never assigned.
func NewClassifier(known func(string) bool) *Classifier {
	return &Classifier{known: known}
}

// ResolveCategory returns the bucket for a raw skill string. It scans
// the rule table in declaration order and returns on the first match;
// unmatched strings fall through to tool (if the catalog knows them)
// or other. It never fails: any input, including the empty string,
// yields a category.
func (c *Classifier) ResolveCategory(raw string) Category {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return CategoryOther
	}

	for _, r := range classificationRules {
		if matchesRule(normalized, r.keywords) {
			return r.category
		}
	}

	if c.known != nil && c.known(normalized) {
		return CategoryTool
	}
	return CategoryOther
}

// matchesRule reports whether the normalized input matches any keyword
// in the set: exact equality for every keyword, containment only for
// keywords long enough to be meaningful substrings.
func matchesRule(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if normalized == kw {
			return true
		}
		if len(kw) >= substringMinLen && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
