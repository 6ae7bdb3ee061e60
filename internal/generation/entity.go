package generation

import "time"

// Question is one generated interview question with its guidance text. The
// model assigns ids 1..N within a batch; they are not globally unique.
type Question struct {
	ID           int    `json:"id"`
	Text         string `json:"text"`
	Type         string `json:"type"`
	Difficulty   string `json:"difficulty"`
	AnswerGuide  string `json:"answerGuide"`
	SampleAnswer string `json:"sampleAnswer"`
}

type GenerateRequest struct {
	ResumeText     string   `json:"resumeText,omitempty"`
	JobDescription string   `json:"jobDescription,omitempty"`
	QuestionCount  int      `json:"questionCount,omitempty"`
	QuestionTypes  []string `json:"questionTypes,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	UserID         string   `json:"userId,omitempty"`
}

type GenerateResponse struct {
	Success     bool       `json:"success"`
	Questions   []Question `json:"questions"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

const (
	DefaultQuestionCount = 5
	DefaultDifficulty    = "mixed"
)

func DefaultQuestionTypes() []string {
	return []string{"technical", "behavioral", "domainSpecific"}
}

// applyDefaults fills the documented request defaults in place.
func (r *GenerateRequest) applyDefaults() {
	if r.QuestionCount <= 0 {
		r.QuestionCount = DefaultQuestionCount
	}
	if len(r.QuestionTypes) == 0 {
		r.QuestionTypes = DefaultQuestionTypes()
	}
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
}
