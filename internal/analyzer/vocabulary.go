package analyzer

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Vocabulary is the set of lowercase term lists the analyzer scans for.
// A Vocabulary is read-only once handed to an Analyzer.
type Vocabulary struct {
	TechnicalSkills []string `mapstructure:"technical-skills"`
	Tools           []string `mapstructure:"tools"`
	SoftSkills      []string `mapstructure:"soft-skills"`
	JobTitles       []string `mapstructure:"job-titles"`
	Degrees         []string `mapstructure:"degrees"`
	CompanySuffixes []string `mapstructure:"company-suffixes"`
	ActionVerbs     []string `mapstructure:"action-verbs"`
}

// DefaultVocabulary returns a fresh copy of the built-in term lists.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		TechnicalSkills: clone(technicalSkills),
		Tools:           clone(tools),
		SoftSkills:      clone(softSkills),
		JobTitles:       clone(jobTitles),
		Degrees:         clone(degrees),
		CompanySuffixes: clone(companySuffixes),
		ActionVerbs:     clone(actionVerbs),
	}
}

// LoadVocabulary reads a YAML or JSON file and overlays every non-empty list on the defaults.
func LoadVocabulary(path string) (*Vocabulary, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading vocabulary file %s: %w", path, err)
	}

	var overrides Vocabulary
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("creating vocabulary decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding vocabulary file %s: %w", path, err)
	}

	return DefaultVocabulary().Overlay(&overrides), nil
}

// Overlay returns a copy of v where every non-empty list of o replaces the corresponding list.
func (v *Vocabulary) Overlay(o *Vocabulary) *Vocabulary {
	result := *v
	if o == nil {
		return &result
	}

	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = lowerAll(src)
		}
	}

	pick(&result.TechnicalSkills, o.TechnicalSkills)
	pick(&result.Tools, o.Tools)
	pick(&result.SoftSkills, o.SoftSkills)
	pick(&result.JobTitles, o.JobTitles)
	pick(&result.Degrees, o.Degrees)
	pick(&result.CompanySuffixes, o.CompanySuffixes)
	pick(&result.ActionVerbs, o.ActionVerbs)

	return &result
}

var technicalSkills = []string{
	// languages
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "php", "go", "golang", "rust",
	"swift", "kotlin", "scala", "r", "matlab", "perl", "shell", "bash", "powershell", "sql", "nosql",
	"html", "css", "sass", "scss", "less",
	// frameworks and libraries
	"react", "reactjs", "react.js", "angular", "angularjs", "vue", "vuejs", "vue.js", "svelte",
	"next.js", "nextjs", "nuxt", "gatsby", "express", "expressjs", "node.js", "nodejs", "node",
	"django", "flask", "fastapi", "spring", "spring boot", "springboot", ".net", "dotnet", "asp.net",
	"rails", "ruby on rails", "laravel", "symfony", "flutter", "react native", "electron", "jquery",
	"bootstrap", "tailwind", "tailwindcss", "material ui", "chakra",
	// databases
	"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb",
	"firebase", "firestore", "sqlite", "oracle", "sql server", "mariadb", "neo4j", "couchdb", "graphql",
	// ml
	"machine learning", "deep learning", "neural networks", "tensorflow", "pytorch", "keras",
	"scikit-learn", "pandas", "numpy", "opencv", "nlp", "natural language processing",
	"computer vision", "ai", "artificial intelligence", "data science", "llm", "chatgpt", "openai",
	"hugging face", "transformers",
}

var tools = []string{
	// cloud and devops
	"aws", "amazon web services", "azure", "gcp", "google cloud", "heroku", "digitalocean", "vercel",
	"netlify", "cloudflare", "docker", "kubernetes", "k8s", "jenkins", "travis ci", "circle ci",
	"github actions", "gitlab ci", "terraform", "ansible", "puppet", "chef",
	// version control and collaboration
	"git", "github", "gitlab", "bitbucket", "svn", "mercurial", "jira", "confluence", "trello", "asana",
	"monday", "notion", "slack", "teams", "discord",
	// design
	"figma", "sketch", "adobe xd", "photoshop", "illustrator", "invision", "zeplin",
	// testing
	"jest", "mocha", "chai", "cypress", "selenium", "playwright", "puppeteer", "junit", "pytest",
	"rspec", "postman", "insomnia",
	// editors
	"vscode", "visual studio", "intellij", "webstorm", "pycharm", "eclipse", "vim", "emacs",
	// other
	"webpack", "vite", "babel", "eslint", "prettier", "npm", "yarn", "pnpm", "pip", "conda",
	"homebrew", "linux", "unix", "windows", "macos", "nginx", "apache",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "team player", "collaboration", "problem solving",
	"problem-solving", "critical thinking", "analytical", "creative", "creativity", "adaptable",
	"adaptability", "time management", "project management", "agile", "scrum", "kanban", "mentoring",
	"coaching", "presentation", "public speaking", "negotiation", "conflict resolution",
	"decision making", "strategic thinking", "attention to detail", "self-motivated", "proactive",
	"interpersonal", "customer service", "client facing", "stakeholder management", "cross-functional",
	"multitasking", "organizational", "initiative", "flexible", "reliable",
}

var jobTitles = []string{
	"software engineer", "software developer", "web developer", "frontend developer",
	"front-end developer", "backend developer", "back-end developer", "full stack developer",
	"fullstack developer", "full-stack developer", "senior developer", "junior developer",
	"lead developer", "principal engineer", "staff engineer", "architect", "solution architect",
	"technical architect", "data engineer", "data scientist", "data analyst", "ml engineer",
	"machine learning engineer", "ai engineer", "devops engineer", "sre", "site reliability engineer",
	"cloud engineer", "platform engineer", "qa engineer", "quality assurance", "test engineer",
	"mobile developer", "ios developer", "android developer", "ui developer", "ux designer",
	"ui/ux designer", "product designer", "technical lead", "tech lead", "engineering manager", "cto",
	"vp engineering", "director of engineering", "intern", "trainee", "consultant", "freelancer",
	"contractor", "project manager", "product manager", "scrum master",
}

var degrees = []string{
	"bachelor", "bachelors", "bachelor's", "b.s.", "bs", "b.a.", "ba", "b.sc", "bsc", "b.tech", "btech",
	"b.eng", "beng", "master", "masters", "master's", "m.s.", "ms", "m.a.", "ma", "m.sc", "msc",
	"m.tech", "mtech", "m.eng", "meng", "mba", "phd", "ph.d.", "doctorate", "doctoral", "associate",
	"associates", "associate's", "diploma", "certificate", "certification", "bootcamp", "degree",
	"computer science", "information technology", "software engineering", "electrical engineering",
	"mathematics", "physics", "engineering",
}

// companySuffixes only holds legal-entity style endings. Words such as "software" or "systems"
// would turn most job titles into company names.
var companySuffixes = []string{
	"inc", "llc", "ltd", "corp", "corporation", "company", "co", "gmbh", "plc", "group",
	"technologies", "labs", "partners", "associates",
}

var actionVerbs = []string{
	"led", "developed", "created", "implemented", "designed", "managed", "improved", "achieved",
	"launched", "built",
}

func clone(list []string) []string {
	return append([]string(nil), list...)
}
