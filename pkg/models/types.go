package models

// Project represents a portfolio project as served by the backend.
type Project struct {
	ID       string           `json:"id" yaml:"id"`
	Slug     string           `json:"slug" yaml:"slug"`
	Title    string           `json:"title" yaml:"title"`
	Category string           `json:"category" yaml:"category"`
	Tags     []string         `json:"tags" yaml:"tags"`
	URL      string           `json:"url" yaml:"url"`
	Image    string           `json:"image" yaml:"image"`
	Logo     string           `json:"logo" yaml:"logo"`
	Content  []ProjectContent `json:"content,omitempty" yaml:"content,omitempty"`
}

// ProjectContent is a named block attached to a project page.
type ProjectContent struct {
	Name     string `json:"name" yaml:"name"`
	Quote    string `json:"quote" yaml:"quote"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

// Article represents a published article.
type Article struct {
	ID            string `json:"id" yaml:"id"`
	Slug          string `json:"slug" yaml:"slug"`
	Title         string `json:"title" yaml:"title"`
	Href          string `json:"href" yaml:"href"`
	ImageURL      string `json:"image_url" yaml:"image_url"`
	PublishedDate string `json:"published_date" yaml:"published_date"`
	Author        string `json:"author" yaml:"author"`
	Summary       string `json:"summary" yaml:"summary"`
	Category      string `json:"category" yaml:"category"`
	IsNew         bool   `json:"is_new" yaml:"is_new"`
}

// Experience represents one entry of work history.
type Experience struct {
	ID          string       `json:"id" yaml:"id"`
	DateRange   string       `json:"date_range" yaml:"date_range"`
	Title       string       `json:"title" yaml:"title"`
	Company     string       `json:"company" yaml:"company"`
	Type        string       `json:"type" yaml:"type"`
	TypeTime    string       `json:"type_time" yaml:"type_time"`
	Description []string     `json:"description" yaml:"description"`
	Skills      []string     `json:"skills" yaml:"skills"`
	Images      []ImageEntry `json:"images,omitempty" yaml:"images,omitempty"`
}

// ImageEntry wraps a single image URL.
type ImageEntry struct {
	ImageURL string `json:"image_url" yaml:"image_url"`
}

// Skill represents a skill category and the skills it groups.
type Skill struct {
	ID     string      `json:"id" yaml:"id"`
	Name   string      `json:"name" yaml:"name"`
	Icon   string      `json:"icon" yaml:"icon"`
	Skills []SkillItem `json:"skills" yaml:"skills"`
}

// SkillItem is a single skill within a category.
type SkillItem struct {
	Name          string        `json:"name" yaml:"name"`
	IconURL       string        `json:"icon_url" yaml:"icon_url"`
	Proficiencies []Proficiency `json:"proficiencies" yaml:"proficiencies"`
}

// Proficiency holds a percentage between 0 and 100.
type Proficiency struct {
	Percent int `json:"percent" yaml:"percent"`
}

// Percent returns the first proficiency value, or 0 when none is set.
func (s SkillItem) Percent() (percent int) {
	if len(s.Proficiencies) > 0 {
		percent = s.Proficiencies[0].Percent
	}
	return percent
}

// Profile holds the portfolio owner's personal details.
type Profile struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	Bio       string `json:"bio" yaml:"bio"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	CVURL     string `json:"cv_url" yaml:"cv_url"`
}

// Contact holds contact channels and social links.
type Contact struct {
	Contact     ContactDetails `json:"contact" yaml:"contact"`
	SocialLinks []SocialLink   `json:"socialLinks" yaml:"socialLinks"`
}

// ContactDetails holds the direct contact channels.
type ContactDetails struct {
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	Address     string `json:"address" yaml:"address"`
	WhatsappURL string `json:"whatsapp_url" yaml:"whatsapp_url"`
}

// SocialLink is a link to a social profile.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon"`
}

// Achievement types.
const (
	AchievementCertificate = "certificate"
	AchievementAward       = "award"
	AchievementPublication = "publication"
	AchievementPatent      = "patent"
	AchievementConference  = "conference"
)

// AchievementTypes lists the known achievement types in display order.
//
//nolint:gochecknoglobals // fixed lookup table
var AchievementTypes = []string{
	AchievementCertificate,
	AchievementAward,
	AchievementPublication,
	AchievementPatent,
	AchievementConference,
}

// Achievement represents a certificate, award, publication, patent or talk.
type Achievement struct {
	ID                 string `json:"id" yaml:"id"`
	Title              string `json:"title" yaml:"title"`
	Slug               string `json:"slug" yaml:"slug"`
	Description        string `json:"description" yaml:"description"`
	Issuer             string `json:"issuer" yaml:"issuer"`
	IssueDate          string `json:"issue_date" yaml:"issue_date"`
	Category           string `json:"category" yaml:"category"`
	Type               string `json:"type" yaml:"type"`
	CertificateFileURL string `json:"certificate_file_url,omitempty" yaml:"certificate_file_url,omitempty"`
	IsFeatured         bool   `json:"is_featured" yaml:"is_featured"`
}

// Stats is the per-resource count aggregate shown on the dashboard.
type Stats struct {
	Projects    int `json:"projects" yaml:"projects"`
	Articles    int `json:"articles" yaml:"articles"`
	Experiences int `json:"experiences" yaml:"experiences"`
	Skills      int `json:"skills" yaml:"skills"`
}

// Total returns the sum of all counts.
func (s Stats) Total() (total int) {
	total = s.Projects + s.Articles + s.Experiences + s.Skills
	return total
}
