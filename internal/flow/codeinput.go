package flow

// CodeLength is the number of digit cells in the verification input.
const CodeLength = 6

// NoSubmit marks an InputResult that did not complete the code.
const NoSubmit = ""

// CodeInput models the six verification-code cells as a pure state machine.
// Transition methods return where focus should move and, when the rule fires,
// the completed code; the caller owns the actual focus side effects.
type CodeInput struct {
	cells [CodeLength]byte
}

type InputResult struct {
	NextFocus     int
	CompletedCode string
}

// DigitEntered records a single character typed into the given cell.
// Non-digit input is ignored. Entering the final digit into the last cell
// completes the code.
func (c *CodeInput) DigitEntered(index int, ch byte) InputResult {
	if index < 0 || index >= CodeLength {
		return InputResult{NextFocus: c.clampFocus(index)}
	}
	if ch < '0' || ch > '9' {
		return InputResult{NextFocus: index}
	}

	c.cells[index] = ch

	next := index
	if index < CodeLength-1 {
		next = index + 1
	}

	res := InputResult{NextFocus: next}
	if c.Filled() && index == CodeLength-1 {
		res.CompletedCode = c.Code()
	}

	return res
}

// Backspace clears the current cell; on an already-empty cell it moves focus
// back instead.
func (c *CodeInput) Backspace(index int) InputResult {
	if index < 0 || index >= CodeLength {
		return InputResult{NextFocus: c.clampFocus(index)}
	}

	if c.cells[index] != 0 {
		c.cells[index] = 0
		return InputResult{NextFocus: index}
	}

	if index > 0 {
		return InputResult{NextFocus: index - 1}
	}

	return InputResult{NextFocus: 0}
}

// Paste extracts digits from the pasted text and fills cells left to right,
// truncated to the cell count. Only a full six digits completes the code.
func (c *CodeInput) Paste(text string) InputResult {
	var digits []byte
	for i := 0; i < len(text) && len(digits) < CodeLength; i++ {
		if text[i] >= '0' && text[i] <= '9' {
			digits = append(digits, text[i])
		}
	}

	for i, d := range digits {
		c.cells[i] = d
	}

	next := len(digits)
	if next >= CodeLength {
		next = CodeLength - 1
	}

	res := InputResult{NextFocus: next}
	if len(digits) == CodeLength {
		res.CompletedCode = c.Code()
	}

	return res
}

// Reset clears every cell and returns focus to the first one.
func (c *CodeInput) Reset() InputResult {
	c.cells = [CodeLength]byte{}
	return InputResult{NextFocus: 0}
}

func (c *CodeInput) Filled() bool {
	for _, cell := range c.cells {
		if cell == 0 {
			return false
		}
	}
	return true
}

// Code returns the digits entered so far, skipping empty cells.
func (c *CodeInput) Code() string {
	out := make([]byte, 0, CodeLength)
	for _, cell := range c.cells {
		if cell != 0 {
			out = append(out, cell)
		}
	}
	return string(out)
}

func (c *CodeInput) clampFocus(index int) int {
	if index < 0 {
		return 0
	}
	if index >= CodeLength {
		return CodeLength - 1
	}
	return index
}
