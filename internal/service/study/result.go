package study

// AnswerResult is the outcome of checking a typed answer.
type AnswerResult struct {
	Correct  bool
	Expected string
}
