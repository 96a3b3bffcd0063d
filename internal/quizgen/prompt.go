package quizgen

import (
	"fmt"

	"quizera/internal/domain"
)

const (
	// DefaultMaxSourceChars bounds the document text embedded in a prompt.
	DefaultMaxSourceChars = 30000

	// TruncationMarker is appended to source text cut at the cap.
	TruncationMarker = "...[text truncated due to length]"

	// BlankMarker marks the missing text in fill-in-the-blank questions.
	BlankMarker = "_____"
)

// PromptOptions tunes prompt rendering.
type PromptOptions struct {
	MaxSourceChars int
}

func (o PromptOptions) maxSourceChars() int {
	if o.MaxSourceChars <= 0 {
		return DefaultMaxSourceChars
	}
	return o.MaxSourceChars
}

// TruncateSource cuts text to at most maxChars characters and appends
// TruncationMarker when anything was removed.
func TruncateSource(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + TruncationMarker
}

const promptTemplate = `
You are an educational quiz generator. Based on the following text, create a quiz with %[1]d questions.

Quiz type: %[2]s
Difficulty level: %[3]s

Text from PDF:
%[4]s

Instructions:
1. Generate exactly %[1]d questions based on the content.
2. Make sure all questions and answers are directly from the PDF content.
3. Do not make up information that is not in the PDF.
4. Format the output as a JSON object with the following structure:
   {
     "questions": [
       {
         "question": "Question text here",
         "options": ["Option A", "Option B", "Option C", "Option D"],  // Only for MCQs and True/False
         "answer": "Correct answer here",
         "explanation": "Brief explanation of the answer with reference to the PDF content"
       },
       // More questions...
     ]
   }
5. For different question types:
   - MCQs: Include exactly 4 options with one correct answer. The correct answer must be copied verbatim from one of the options.
   - Fill in the blanks: Use "%[5]s" to indicate the blank and provide the exact missing text from the PDF as the answer.
   - True/False: Make the question a statement and the answer must be exactly "True" or "False". Include options ["True", "False"].
   - Short answer: Question should be answerable in 1-2 sentences with information directly from the PDF. Do not include an "options" field.
   - Long answer: Question should require detailed explanation using information from the PDF. Do not include an "options" field.
   - Mix: Include a balanced mix of all question types.
6. Adjust difficulty according to the specified level:
   - Easy: Basic recall questions with obvious answers
   - Medium: Questions requiring understanding of concepts
   - Hard: Questions requiring deeper analysis or synthesis of information

Return ONLY the JSON object with no additional text.
`

const topicPromptTemplate = `
You are an educational quiz generator. Create a quiz with %[1]d questions about the following topic.

Quiz type: %[2]s
Difficulty level: %[3]s

Topic:
%[4]s

Instructions:
1. Generate exactly %[1]d questions about the topic.
2. Only use well-established facts about the topic.
3. Do not ask about opinions or events that cannot be verified.
4. Format the output as a JSON object with the following structure:
   {
     "questions": [
       {
         "question": "Question text here",
         "options": ["Option A", "Option B", "Option C", "Option D"],  // Only for MCQs and True/False
         "answer": "Correct answer here",
         "explanation": "Brief explanation of the answer"
       },
       // More questions...
     ]
   }
5. For different question types:
   - MCQs: Include exactly 4 options with one correct answer. The correct answer must be copied verbatim from one of the options.
   - Fill in the blanks: Use "%[5]s" to indicate the blank and provide the exact missing text as the answer.
   - True/False: Make the question a statement and the answer must be exactly "True" or "False". Include options ["True", "False"].
   - Short answer: Question should be answerable in 1-2 sentences. Do not include an "options" field.
   - Long answer: Question should require a detailed explanation. Do not include an "options" field.
   - Mix: Include a balanced mix of all question types.
6. Adjust difficulty according to the specified level:
   - Easy: Basic recall questions with obvious answers
   - Medium: Questions requiring understanding of concepts
   - Hard: Questions requiring deeper analysis or synthesis of information

Return ONLY the JSON object with no additional text.
`

// BuildPrompt renders a generation request into the instruction sent to the
// model. A request with a topic and no source text gets the topic template.
func BuildPrompt(req domain.GenerationRequest, opts PromptOptions) string {
	if req.SourceText == "" && req.Topic != "" {
		return fmt.Sprintf(topicPromptTemplate,
			req.QuestionCount,
			req.QuestionType.Label(),
			req.Difficulty.Label(),
			TruncateSource(req.Topic, opts.maxSourceChars()),
			BlankMarker,
		)
	}

	text := TruncateSource(req.SourceText, opts.maxSourceChars())
	return fmt.Sprintf(promptTemplate,
		req.QuestionCount,
		req.QuestionType.Label(),
		req.Difficulty.Label(),
		text,
		BlankMarker,
	)
}
