package quizgen

import "quizera/internal/domain"

// Grade checks answers against quiz, position by position. An option index
// picks the option text; free text is compared trimmed and case-folded with
// the expected answer. Skipped, out-of-range and surplus answers earn nothing,
// and every question not answered correctly is listed in Missed.
func Grade(quiz *domain.QuizResult, answers []domain.SubmittedAnswer) *domain.QuizGrade {
	grade := &domain.QuizGrade{Missed: []domain.MissedQuestion{}}
	if quiz == nil {
		return grade
	}
	grade.Total = len(quiz.Questions)

	for i, q := range quiz.Questions {
		var given string
		if i < len(answers) {
			given = chosenAnswer(q, answers[i])
		}
		if given != "" && foldAnswer(given) == foldAnswer(q.Answer) {
			grade.Score++
			continue
		}
		grade.Missed = append(grade.Missed, domain.MissedQuestion{
			Question:      q.Question,
			YourAnswer:    given,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
		})
	}
	return grade
}

func chosenAnswer(q domain.Question, a domain.SubmittedAnswer) string {
	if a.OptionIndex != nil {
		idx := *a.OptionIndex
		if idx < 0 || idx >= len(q.Options) {
			return ""
		}
		return q.Options[idx]
	}
	return a.Text
}
