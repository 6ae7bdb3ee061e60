package generation

import (
	"fmt"
	"strings"
)

// maxInputChars caps each free-text input before it enters the prompt. Longer
// resumes are cut to this budget with a trailing ellipsis; the cut is lossy and
// not reported to the caller.
const maxInputChars = 8000

const systemPrompt = "You are an expert interview coach with deep knowledge of technical interviews, " +
	"behavioral assessments, and industry-specific hiring practices. Generate highly relevant, " +
	"challenging, and insightful interview questions that help assess both technical skills and " +
	"cultural fit. Always respond with valid JSON array format. Focus on questions that reveal " +
	"problem-solving abilities, technical expertise, leadership potential, and alignment with " +
	"company values."

const promptExample = `[
  {
    "id": 1,
    "text": "Describe a challenging project you worked on and how you overcame obstacles.",
    "type": "Behavioral",
    "difficulty": "Medium",
    "answerGuide": "Use the STAR method: Situation (describe the project context), Task (your responsibilities), Action (specific steps you took), Result (outcomes and learnings). Focus on problem-solving skills and collaboration.",
    "sampleAnswer": "I worked on a complex e-commerce platform where we had to integrate multiple payment gateways within a tight deadline. I created a comprehensive testing strategy with mock APIs, established daily standups with the backend team, and implemented a modular payment component that could easily adapt to API changes. We launched on time with 99.9% uptime and received positive feedback about the smooth checkout process."
  }
]`

func truncate(text string) string {
	if len(text) > maxInputChars {
		return text[:maxInputChars] + "..."
	}
	return text
}

// BuildUserPrompt assembles the generation instruction. The count, type mix
// and difficulty are requested in prose only; the model is not forced to
// honor them.
func BuildUserPrompt(req GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d high-quality interview questions for a job candidate. ", req.QuestionCount)

	if req.ResumeText != "" {
		fmt.Fprintf(&b, "Based on this resume: %s ", truncate(req.ResumeText))
	}
	if req.JobDescription != "" {
		fmt.Fprintf(&b, "For this job description: %s ", truncate(req.JobDescription))
	}

	fmt.Fprintf(&b, `

Requirements:
- Generate exactly %d questions
- Include a mix of: %s questions
- Difficulty level: %s
- Each question should be highly relevant to the candidate's background and the job requirements
- Provide TWO types of answers for each question:
  1. answerGuide: Brief guidelines on how to approach the question
  2. sampleAnswer: A complete, detailed sample answer the candidate could give
- Questions should be specific and actionable
- Format as JSON array with fields: id (number), text (string), type (string), difficulty (string: "Easy", "Medium", "Hard"), answerGuide (string), sampleAnswer (string)

Example JSON format:
%s

Return only valid JSON array.`,
		req.QuestionCount, strings.Join(req.QuestionTypes, ", "), req.Difficulty, promptExample)

	return b.String()
}
