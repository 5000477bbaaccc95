package flow

// VerificationState tracks the in-flight operation of the verification step.
// Verifying and resending have independent flags in the source UI; resending
// must not block a concurrent verify.
type VerificationState int

const (
	VerificationIdle VerificationState = iota
	VerificationVerifying
	VerificationResending
)

// VerificationFlow drives the six-cell code entry step. Email is carried over
// from registration; without it the step cannot proceed and the user is sent
// back to registration.
type VerificationFlow struct {
	Email   string
	Input   CodeInput
	Message string

	state     VerificationState
	resending bool
}

// NeedsRegistration reports that no email was carried over, so verification
// cannot proceed.
func (v *VerificationFlow) NeedsRegistration() bool {
	return v.Email == ""
}

func (v *VerificationFlow) State() VerificationState {
	return v.state
}

func (v *VerificationFlow) Resending() bool {
	return v.resending
}

// BeginVerify starts a verify round trip for the given code. It refuses to
// fire when a verify is already in flight, which makes auto-submit idempotent.
func (v *VerificationFlow) BeginVerify(code string) bool {
	if v.NeedsRegistration() || v.state == VerificationVerifying {
		return false
	}
	if len(code) != CodeLength {
		v.Message = "Please enter the complete 6-digit code"
		return false
	}

	v.Message = ""
	v.state = VerificationVerifying
	return true
}

// VerifySucceeded records success; the UI redirects to login after its delay.
func (v *VerificationFlow) VerifySucceeded() {
	v.state = VerificationIdle
	v.Message = "Email verified! Redirecting to login..."
}

// VerifyFailed surfaces the server message, clears all cells and refocuses
// the first one.
func (v *VerificationFlow) VerifyFailed(message string) InputResult {
	v.state = VerificationIdle
	v.Message = message
	return v.Input.Reset()
}

// BeginResend starts a resend round trip. The flag is independent of the
// verify state so the verify button stays usable.
func (v *VerificationFlow) BeginResend() bool {
	if v.NeedsRegistration() || v.resending {
		return false
	}
	v.Message = ""
	v.resending = true
	return true
}

// ResendFinished surfaces the outcome message without touching the cells.
func (v *VerificationFlow) ResendFinished(message string) {
	v.resending = false
	v.Message = message
}
