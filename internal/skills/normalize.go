// Package skills canonicalizes skill names and decides whether two skill strings denote the same skill.
package skills

import "strings"

// SynonymGroup ties a canonical skill key to the spellings that denote it.
type SynonymGroup struct {
	Key      string
	Variants []string
}

// DefaultSynonyms covers languages, frameworks, cloud platforms and methodology terms.
// Keys and variants are matched against normalized input by substring containment.
var DefaultSynonyms = []SynonymGroup{
	{Key: "javascript", Variants: []string{"js", "ecmascript", "es6", "es2015"}},
	{Key: "typescript", Variants: []string{"ts"}},
	{Key: "python", Variants: []string{"py", "python3"}},
	{Key: "react", Variants: []string{"reactjs", "react js", "react.js"}},
	{Key: "node", Variants: []string{"nodejs", "node js", "node.js"}},
	{Key: "vue", Variants: []string{"vuejs", "vue js", "vue.js"}},
	{Key: "angular", Variants: []string{"angularjs", "angular js"}},
	{Key: "next", Variants: []string{"nextjs", "next js", "next.js"}},
	{Key: "express", Variants: []string{"expressjs", "express js", "express.js"}},
	{Key: "mongo", Variants: []string{"mongodb", "mongo db"}},
	{Key: "postgres", Variants: []string{"postgresql", "psql"}},
	{Key: "mysql", Variants: []string{"my sql"}},
	{Key: "aws", Variants: []string{"amazon web services"}},
	{Key: "gcp", Variants: []string{"google cloud", "google cloud platform"}},
	{Key: "azure", Variants: []string{"microsoft azure"}},
	{Key: "docker", Variants: []string{"containerization"}},
	{Key: "kubernetes", Variants: []string{"k8s"}},
	{Key: "ci/cd", Variants: []string{"cicd", "continuous integration", "continuous deployment"}},
	{Key: "git", Variants: []string{"github", "gitlab", "version control"}},
	{Key: "agile", Variants: []string{"scrum", "kanban"}},
	{Key: "rest", Variants: []string{"restful", "rest api", "restful api"}},
	{Key: "graphql", Variants: []string{"graph ql"}},
	{Key: "html", Variants: []string{"html5"}},
	{Key: "css", Variants: []string{"css3", "stylesheet"}},
	{Key: "sass", Variants: []string{"scss"}},
	{Key: "tailwind", Variants: []string{"tailwindcss", "tailwind css"}},
	{Key: "bootstrap", Variants: []string{"bootstrap css"}},
	{Key: "machine learning", Variants: []string{"ml", "deep learning", "dl"}},
	{Key: "artificial intelligence", Variants: []string{"ai"}},
	{Key: "data science", Variants: []string{"data analysis", "data analytics"}},
}

var punctuation = strings.NewReplacer(".", "", "-", "", "_", "")

// Normalize lowercases the skill, strips '.', '-' and '_' and collapses whitespace runs to a single space.
func Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = punctuation.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Variations returns the normalized skill followed by every spelling reachable through DefaultSynonyms.
func Variations(skill string) []string {
	return variations(skill, DefaultSynonyms)
}

func variations(skill string, groups []SynonymGroup) []string {
	normalized := Normalize(skill)

	result := []string{normalized}
	seen := map[string]struct{}{normalized: {}}
	add := func(values ...string) {
		for _, v := range values {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	for _, group := range groups {
		if strings.Contains(normalized, group.Key) {
			add(group.Variants...)
		}
		for _, variant := range group.Variants {
			if strings.Contains(normalized, variant) {
				add(group.Key)
				break
			}
		}
	}

	return result
}
