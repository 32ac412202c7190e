package models

type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type SkillInput struct {
	Name     *string `json:"name"`
	Level    *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Category *string `json:"category"`
}
