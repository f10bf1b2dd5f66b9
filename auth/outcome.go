package auth

// Outcome is the terminal state of one pipeline run. Its string value is the
// machine-readable tag carried on the redirect back to the front end.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeNoCode       Outcome = "no_code"
	OutcomeAuthFailed   Outcome = "auth_failed"
	OutcomeNotEmployee  Outcome = "not_employee"
	OutcomeSessionError Outcome = "session_error"
)

// OK reports whether the run established a session.
func (o Outcome) OK() bool {
	return o == OutcomeSuccess
}
