package models

// About is the biography shown on the About page
type About struct {
	PersonalInfo           PersonalInfo `json:"personalInfo"`
	Education              []Education  `json:"education"`
	ProfessionalExperience []Experience `json:"professionalExperience"`
	Leadership             []Leadership `json:"leadershipAndVolunteerExperience"`
}

// PersonalInfo holds contact details and the headline summary
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Education is a degree or course of study
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	University  string `json:"university,omitempty"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	CGPA        string `json:"CGPA,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience is a professional position
type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Type             string   `json:"type"`
	Duration         string   `json:"duration"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
	Achievements     []string `json:"achievements"`
}

// Leadership is a leadership or volunteer role
type Leadership struct {
	Position         string   `json:"position"`
	Organization     string   `json:"organization"`
	Type             string   `json:"type"`
	Duration         string   `json:"duration"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

// Skills is the skills inventory
type Skills struct {
	Technical []SkillCategory `json:"technicalSkills"`
	Soft      []SkillCategory `json:"softSkills"`
}

// SkillCategory groups related skills under a heading
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Skill is a single entry in the inventory
type Skill struct {
	Name                 string   `json:"skillName"`
	RealWorldApplication string   `json:"realWorldApplication,omitempty"`
	Projects             []string `json:"projects,omitempty"`
}

// SkillSummary holds the headline counts for the Skills page
type SkillSummary struct {
	TechnicalCategories int `json:"technical_categories"`
	TechnicalSkills     int `json:"technical_skills"`
	SoftSkills          int `json:"soft_skills"`
}
