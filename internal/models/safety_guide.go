package models

// SafetyGuide представляет инструкцию по безопасности.
// Гайды создаются один раз и не редактируются через API.
type SafetyGuide struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"imageUrl"`
	Priority    int     `json:"priority"`
}
