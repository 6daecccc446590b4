package models

type QuizStats struct {
	Correct int `db:"correct"`
	Total   int `db:"total"`
	Topics  map[string]int
}

// Accuracy is the share of correct answers in percent.
func (q QuizStats) Accuracy() float64 {
	if q.Total == 0 {
		return 0
	}
	return float64(q.Correct) / float64(q.Total) * 100
}

type TopicCount struct {
	Topic string `db:"topic"`
	Count int    `db:"hits"`
}

type StudyStats struct {
	Quizzes   int `db:"quizzes"`
	Practice  int `db:"practice"`
	Pomodoros int `db:"pomodoros"`
}

type QA struct {
	Question string
	Answer   string
}
