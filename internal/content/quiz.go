package content

import "errors"

var (
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrOptionOutOfRange   = errors.New("option index out of range")
)

// Question is one quiz entry. CorrectAnswer is the index into Options and is
// never serialized to the client.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
}

var quizQuestions = []Question{
	{
		Question:      "What is a stock?",
		Options:       []string{"A type of bond", "Ownership share in a company", "A mutual fund", "A savings account"},
		CorrectAnswer: 1,
	},
	{
		Question:      "What is a bull market?",
		Options:       []string{"Market is declining", "Market is stable", "Market is rising", "Market is closed"},
		CorrectAnswer: 2,
	},
	{
		Question:      "What is a P/E ratio?",
		Options:       []string{"Price to Earnings", "Profit to Expense", "Payment to Equity", "Performance to Efficiency"},
		CorrectAnswer: 0,
	},
	{
		Question:      "Which is a characteristic of a bear market?",
		Options:       []string{"Rising prices", "High investor confidence", "20%+ decline from recent highs", "Increasing trade volume"},
		CorrectAnswer: 2,
	},
	{
		Question:      "What is a stop-loss order?",
		Options:       []string{"An order to buy at market price", "An order to sell when price reaches a specified low", "An order to buy more shares", "An order to hold stocks longer"},
		CorrectAnswer: 1,
	},
}

// QuizQuestions returns the question list without revealing answers.
func QuizQuestions() []Question {
	out := make([]Question, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}

// CheckAnswer reports whether option is the correct answer for the question
// at index.
func CheckAnswer(index, option int) (bool, error) {
	if index < 0 || index >= len(quizQuestions) {
		return false, ErrQuestionOutOfRange
	}
	q := quizQuestions[index]
	if option < 0 || option >= len(q.Options) {
		return false, ErrOptionOutOfRange
	}
	return option == q.CorrectAnswer, nil
}

// Quiz tracks one linear run through the questions: answer, advance, score.
type Quiz struct {
	current int
	score   int
	done    bool
}

func NewQuiz() *Quiz {
	return &Quiz{}
}

// Current returns the active question, or false when the quiz is finished.
func (q *Quiz) Current() (Question, bool) {
	if q.done {
		return Question{}, false
	}
	return quizQuestions[q.current], true
}

// Answer records the selected option for the active question and advances.
// It reports whether the selection was correct.
func (q *Quiz) Answer(option int) (bool, error) {
	if q.done {
		return false, ErrQuestionOutOfRange
	}
	correct, err := CheckAnswer(q.current, option)
	if err != nil {
		return false, err
	}
	if correct {
		q.score++
	}
	q.current++
	if q.current >= len(quizQuestions) {
		q.done = true
	}
	return correct, nil
}

func (q *Quiz) Done() bool  { return q.done }
func (q *Quiz) Score() int  { return q.score }
func (q *Quiz) Length() int { return len(quizQuestions) }

// Restart resets the run to the first question.
func (q *Quiz) Restart() {
	q.current = 0
	q.score = 0
	q.done = false
}
