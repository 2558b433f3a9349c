package domain

// Training levels as stored by the record store.
const (
	LevelPemula   = "pemula"
	LevelLanjutan = "lanjutan"
	LevelExpert   = "expert"
)

type TrainingModule struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Instructor  string `json:"instructor"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type TrainingContent struct {
	ID           int64  `json:"id,omitempty"`
	Module       int64  `json:"module"`
	Title        string `json:"title"`
	ContentType  string `json:"content_type"`
	TextContent  string `json:"text_content,omitempty"`
	MediaContent string `json:"media_content,omitempty"`
	YoutubeURL   string `json:"youtube_url,omitempty"`
	Points       int    `json:"points"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type TrainingQuiz struct {
	ID            int64  `json:"id,omitempty"`
	Module        int64  `json:"module"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Points        int    `json:"points"`
	CreatedAt     string `json:"created_at,omitempty"`
}
