package models

// Profile holds the static biography sections shown on the home page
type Profile struct {
	Hero         Hero              `json:"hero" yaml:"hero"`
	Timeline     []TimelineEntry   `json:"timeline" yaml:"timeline"`
	Activities   []CurrentActivity `json:"activities" yaml:"activities"`
	Experiences  []Experience      `json:"experiences" yaml:"experiences"`
	Achievements Achievements      `json:"achievements" yaml:"achievements"`
	Skills       []Skill           `json:"skills" yaml:"skills"`
	NavItems     []NavItem         `json:"navItems" yaml:"navItems"`
}

// Hero is the introduction at the top of the home page
type Hero struct {
	Name      string `json:"name" yaml:"name"`
	Tagline   string `json:"tagline" yaml:"tagline"`
	Email     string `json:"email" yaml:"email"`
	GitHubURL string `json:"githubUrl" yaml:"githubUrl"`
	Photo     string `json:"photo" yaml:"photo"`
}

type TimelineEntry struct {
	Year         string   `json:"year" yaml:"year"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

type CurrentActivity struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Experience struct {
	Company          string   `json:"company" yaml:"company"`
	Role             string   `json:"role" yaml:"role"`
	Period           string   `json:"period" yaml:"period"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
}

type Achievements struct {
	Hackathons []Hackathon `json:"hackathons" yaml:"hackathons"`
	Positions  []Position  `json:"positions" yaml:"positions"`
	Awards     []Award     `json:"awards" yaml:"awards"`
}

type Hackathon struct {
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Achievement string `json:"achievement" yaml:"achievement"`
}

type Position struct {
	Role         string `json:"role" yaml:"role"`
	Organization string `json:"organization" yaml:"organization"`
	Period       string `json:"period" yaml:"period"`
	Description  string `json:"description" yaml:"description"`
}

type Award struct {
	Title       string `json:"title" yaml:"title"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// Skill is a technology badge; Color is the brand hex color
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
