package resume

// Profile is the structured candidate profile extracted from resume text.
// Field names match the provider's JSON contract.
type Profile struct {
	Name            *string  `json:"name"`
	TargetRoles     []string `json:"targetRoles"`
	Skills          Skills   `json:"skills"`
	Projects        []Project `json:"projects"`
	FocusTopics     []string `json:"focusTopics"`
	RedFlags        []string `json:"redFlags"`
	ExperienceLevel string   `json:"experienceLevel"` // junior, mid, or senior
}

// Skills groups extracted skills by kind.
type Skills struct {
	Technical []string `json:"technical"`
	Tools     []string `json:"tools"`
	Soft      []string `json:"soft"`
}

// Project is a resume project with clear technical detail.
type Project struct {
	Name            string   `json:"name"`
	TechStack       []string `json:"techStack"`
	KeyAchievements []string `json:"keyAchievements"`
}
