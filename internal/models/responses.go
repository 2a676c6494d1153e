package models

// ProjectSummary is a project card as listed on the Projects page
type ProjectSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ProjectDetail is what the detail view renders
type ProjectDetail struct {
	Slug    string       `json:"slug"`
	Project *Project     `json:"project"`
	Gallery []ImageGroup `json:"gallery"`
}

// ImageGroup holds the gallery images sharing a type
type ImageGroup struct {
	Type   string  `json:"type"`
	Images []Image `json:"images"`
}

// CategoryResponse splits the project list the way the Projects page shows it
type CategoryResponse struct {
	Featured []ProjectSummary `json:"featured"`
	Others   []ProjectSummary `json:"others"`
}

// SkillsResponse is the Skills page payload
type SkillsResponse struct {
	Categories []string        `json:"categories"`
	Technical  []SkillCategory `json:"technical_skills"`
	Soft       []SkillCategory `json:"soft_skills"`
	Summary    SkillSummary    `json:"summary"`
}
