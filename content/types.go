package content

import "strings"

// Profile holds the hero section data.
type Profile struct {
	Name        string   `yaml:"name" json:"name"`
	NameEn      string   `yaml:"name_en" json:"name_en"`
	Title       string   `yaml:"title" json:"title"`
	Affiliation string   `yaml:"affiliation" json:"affiliation"`
	Email       string   `yaml:"email" json:"email"`
	GitHub      string   `yaml:"github" json:"github"`
	Avatar      string   `yaml:"avatar" json:"avatar"`
	AvatarAlt   string   `yaml:"avatar_alt" json:"avatar_alt"`
	Interests   []string `yaml:"interests" json:"interests"`
}

type EducationEntry struct {
	Degree      string   `yaml:"degree" json:"degree"`
	Institution string   `yaml:"institution" json:"institution"`
	Period      string   `yaml:"period" json:"period"`
	Note        string   `yaml:"note,omitempty" json:"note,omitempty"`
	Supervisors []string `yaml:"supervisors,omitempty" json:"supervisors,omitempty"`
}

// SupervisorList renders the supervisors as a single comma separated line.
func (e EducationEntry) SupervisorList() string {
	return strings.Join(e.Supervisors, ", ")
}

type ExperienceEntry struct {
	Title        string `yaml:"title" json:"title"`
	Organization string `yaml:"organization" json:"organization"`
	Period       string `yaml:"period" json:"period"`
	Description  string `yaml:"description" json:"description"`
}

type StatisticEntry struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon"`
}

type CategoryEntry struct {
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description" json:"description"`
}

// FeatureEntry is one item of the "Using This Wiki" list.
type FeatureEntry struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// FriendLinkEntry is a curated external site shown on the links page.
type FriendLinkEntry struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Website     string `yaml:"website" json:"website"`
	Avatar      string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}

// Page carries the per-page title and meta description.
type Page struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Site is everything the home and links pages render.
type Site struct {
	Title   string   `yaml:"title" json:"title"`
	Tagline string   `yaml:"tagline" json:"tagline"`
	Lang    string   `yaml:"lang" json:"lang"`
	DocsURL string   `yaml:"docs_url" json:"docs_url"`
	BlogURL string   `yaml:"blog_url" json:"blog_url"`
	Home    Page     `yaml:"home" json:"home"`
	Links   Page     `yaml:"links" json:"links"`
	Profile Profile  `yaml:"profile" json:"profile"`
	About   []string `yaml:"about" json:"about"`

	Education  []EducationEntry  `yaml:"education" json:"education"`
	Experience []ExperienceEntry `yaml:"experience" json:"experience"`
	Statistics []StatisticEntry  `yaml:"statistics" json:"statistics"`
	Categories []CategoryEntry   `yaml:"categories" json:"categories"`

	FeaturesIntro string         `yaml:"features_intro" json:"features_intro"`
	Features      []FeatureEntry `yaml:"features" json:"features"`

	FriendLinks     []FriendLinkEntry `yaml:"friend_links" json:"friend_links"`
	FriendLinksNote string            `yaml:"friend_links_note" json:"friend_links_note"`
}
