package generation

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt_ContainsRequestFields(t *testing.T) {
	req := GenerateRequest{
		JobDescription: "Backend engineer, must know SQL",
		QuestionCount:  2,
		QuestionTypes:  []string{"technical", "behavioral"},
		Difficulty:     "Medium",
	}

	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "Generate 2 high-quality interview questions") {
		t.Errorf("prompt missing question count: %s", prompt[:80])
	}
	if !strings.Contains(prompt, "Generate exactly 2 questions") {
		t.Error("prompt missing exact count requirement")
	}
	if !strings.Contains(prompt, "Include a mix of: technical, behavioral questions") {
		t.Error("prompt missing question type mix")
	}
	if !strings.Contains(prompt, "Difficulty level: Medium") {
		t.Error("prompt missing difficulty level")
	}
	if !strings.Contains(prompt, "For this job description: Backend engineer, must know SQL") {
		t.Error("prompt missing job description text")
	}
	if strings.Contains(prompt, "Based on this resume:") {
		t.Error("prompt should not mention a resume when none was given")
	}
}

func TestBuildUserPrompt_FormatDirective(t *testing.T) {
	req := GenerateRequest{ResumeText: "Go developer", QuestionCount: 5, QuestionTypes: []string{"technical"}, Difficulty: "mixed"}
	prompt := BuildUserPrompt(req)

	// The worked example anchors the model's formatting.
	if !strings.Contains(prompt, `"answerGuide"`) || !strings.Contains(prompt, `"sampleAnswer"`) {
		t.Error("prompt missing the answerGuide/sampleAnswer field directive")
	}
	if !strings.Contains(prompt, "Use the STAR method") {
		t.Error("prompt missing the embedded worked example")
	}
	if !strings.Contains(prompt, "Return only valid JSON array.") {
		t.Error("prompt missing the JSON-only directive")
	}
}

func TestBuildUserPrompt_TruncatesOversizedInput(t *testing.T) {
	longResume := strings.Repeat("a", maxInputChars+500)
	req := GenerateRequest{ResumeText: longResume, QuestionCount: 5, QuestionTypes: []string{"technical"}, Difficulty: "mixed"}

	prompt := BuildUserPrompt(req)

	if strings.Contains(prompt, longResume) {
		t.Error("prompt contains the full oversized resume")
	}
	if !strings.Contains(prompt, strings.Repeat("a", maxInputChars)+"...") {
		t.Error("prompt missing truncated resume with ellipsis marker")
	}
	if strings.Contains(prompt, strings.Repeat("a", maxInputChars+1)) {
		t.Error("truncated resume exceeds the character budget")
	}
}

func TestBuildUserPrompt_ShortInputUntouched(t *testing.T) {
	req := GenerateRequest{ResumeText: "short resume", QuestionCount: 5, QuestionTypes: []string{"technical"}, Difficulty: "mixed"}
	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "Based on this resume: short resume ") {
		t.Error("short resume should pass through verbatim without a marker")
	}
	if strings.Contains(prompt, "short resume...") {
		t.Error("short resume should not get an ellipsis marker")
	}
}
