package models

type Tool struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type ToolInput struct {
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	Category *string `json:"category"`
}
