package llm

// Outcome records how one document's summarization concluded: by the remote
// model, or by the local fallback after the model failed. Modeling this as a
// value keeps recoverable failures out of the error path — a fallback is a
// degraded success, not an error.
type Outcome struct {
	UsedModel bool
	Attempts  int
	Err       error
}

// ModelOutcome reports a successful model call after n attempts.
func ModelOutcome(n int) Outcome {
	return Outcome{UsedModel: true, Attempts: n}
}

// FallbackOutcome reports local summarization after the model failed with err.
func FallbackOutcome(n int, err error) Outcome {
	return Outcome{Attempts: n, Err: err}
}
