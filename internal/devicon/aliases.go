package devicon

import "strings"

// aliasMap is the hand-curated table of common free-text spellings the
// upstream extraction step emits, rewritten to the catalog's canonical
// names. It intercepts the frequent variants cheaply before catalog
// alias matching covers the rest.
//
// Entries here win over the dataset's own altnames when the two would
// resolve differently: the curated table exists to correct occasional
// dataset imprecision, so it is consulted first.
var aliasMap = map[string]string{
	// HTML/CSS variations
	"html": "html5",
	"css":  "css3",

	// JavaScript ecosystem
	"js":         "javascript",
	"ts":         "typescript",
	"node":       "nodejs",
	"node.js":    "nodejs",
	"node js":    "nodejs",
	"reactjs":    "react",
	"react.js":   "react",
	"vue":        "vuejs",
	"vue.js":     "vuejs",
	"angular":    "angularjs",
	"next.js":    "nextjs",
	"nuxt":       "nuxtjs",
	"nuxt.js":    "nuxtjs",
	"express.js": "express",
	"expressjs":  "express",
	"tailwind":   "tailwindcss",

	// Languages
	"c++":    "cplusplus",
	"cpp":    "cplusplus",
	"c#":     "csharp",
	"golang": "go",
	".net":   "dotnetcore",
	"dotnet": "dotnetcore",

	// Databases
	"postgres":   "postgresql",
	"mongo":      "mongodb",
	"sql server": "microsoftsqlserver",
	"mssql":      "microsoftsqlserver",
	"sql":        "mysql", // generic SQL falls back to the MySQL icon

	// Cloud and devops
	"aws":                 "amazonwebservices",
	"amazon web services": "amazonwebservices",
	"gcp":                 "googlecloud",
	"google cloud":        "googlecloud",
	"k8s":                 "kubernetes",

	// Frameworks
	"ruby on rails": "rails",
	"spring boot":   "spring",

	// Mobile
	"react native": "react",

	// Editors and tools
	"vs code":       "vscode",
	"visual studio": "visualstudio",
	"unreal":        "unrealengine",

	// Frequent typos from voice transcription
	"superbase": "supabase",
	"versel":    "vercel",

	// Umbrella terms pinned to a representative icon
	"machine learning": "tensorflow",
	"deep learning":    "pytorch",
}

// normalize lowercases and trims raw input. This is the cache key form
// and the first step of every resolution.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAlias rewrites a raw skill string to a canonical candidate
// using the curated alias table. Unknown inputs pass through
// lowercased and trimmed; it never fails.
func NormalizeAlias(raw string) string {
	key := normalize(raw)
	if canonical, ok := aliasMap[key]; ok {
		return canonical
	}
	return key
}
