package scan

// State is the tokenizer state between two characters.
type State uint8

const (
	// StateIdle is the state at the start of a block and after it ended.
	StateIdle State = iota
	// StateInNumber means digits are being accumulated into a pending number.
	StateInNumber
	// StateAfterSeparator follows a comma: the row continues.
	StateAfterSeparator
	// StateAfterRowEnd follows a semicolon: a new row of the same frame starts.
	StateAfterRowEnd
	// StateAfterLineBreak follows a line break with no pending number:
	// the open row continues on the next line.
	StateAfterLineBreak

	numStates
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInNumber:
		return "InNumber"
	case StateAfterSeparator:
		return "AfterSeparator"
	case StateAfterRowEnd:
		return "AfterRowEnd"
	case StateAfterLineBreak:
		return "AfterLineBreak"
	default:
		return "Unknown"
	}
}

// Action is the side effect of a transition.
type Action uint8

const (
	// ActDigit appends the digit to the pending number.
	ActDigit Action = iota
	// ActSkip consumes the character without effect.
	ActSkip
	// ActPixel emits the pending number as the next pixel of the row.
	ActPixel
	// ActRow emits the pending number and finishes the row.
	ActRow
	// ActFrame emits the pending number and finishes the row and the frame.
	ActFrame
	// ActNextLine drops the rest of the line and continues on the next one.
	ActNextLine
	// ActStop ends the block, discarding any pending partial number.
	ActStop
)

func (a Action) String() string {
	switch a {
	case ActDigit:
		return "Digit"
	case ActSkip:
		return "Skip"
	case ActPixel:
		return "Pixel"
	case ActRow:
		return "Row"
	case ActFrame:
		return "Frame"
	case ActNextLine:
		return "NextLine"
	case ActStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// class is the character class seen by the state machine.
type class uint8

const (
	classDigit class = iota
	classComma
	classSemicolon
	classLineBreak
	classSpace
	classOther
	// classEndOfLine means the line buffer is exhausted without a terminator,
	// which only happens on the last line of the input.
	classEndOfLine

	numClasses
)

func classify(c byte) class {
	switch {
	case c >= '0' && c <= '9':
		return classDigit
	case c == ',':
		return classComma
	case c == ';':
		return classSemicolon
	case c == '\n' || c == '\r':
		return classLineBreak
	case c == ' ' || c == '\t':
		return classSpace
	default:
		return classOther
	}
}

type transition struct {
	next State
	act  Action
}

// transitions is indexed by [State][class].
var transitions = buildTransitions()

func buildTransitions() [numStates][numClasses]transition {
	var t [numStates][numClasses]transition

	// Every state without a pending number behaves the same, except that
	// blanks keep the state unchanged.
	for s := State(0); s < numStates; s++ {
		if s == StateInNumber {
			continue
		}
		t[s][classDigit] = transition{StateInNumber, ActDigit}
		// a separator with nothing pending carries no value
		t[s][classComma] = transition{StateAfterSeparator, ActSkip}
		t[s][classSemicolon] = transition{StateAfterRowEnd, ActSkip}
		t[s][classLineBreak] = transition{StateAfterLineBreak, ActNextLine}
		t[s][classEndOfLine] = transition{StateAfterLineBreak, ActNextLine}
		t[s][classSpace] = transition{s, ActSkip}
		t[s][classOther] = transition{StateIdle, ActStop}
	}

	t[StateInNumber] = [numClasses]transition{
		classDigit:     {StateInNumber, ActDigit},
		classComma:     {StateAfterSeparator, ActPixel},
		classSemicolon: {StateAfterRowEnd, ActRow},
		classLineBreak: {StateIdle, ActFrame},
		// the number may continue on the next chunk; at end of input it is flushed
		classEndOfLine: {StateInNumber, ActNextLine},
		// a number followed by a blank belongs to a metadata line
		classSpace: {StateIdle, ActStop},
		classOther: {StateIdle, ActStop},
	}

	return t
}

// step returns the transition taken from state s on character class c.
func step(s State, c class) transition {
	return transitions[s][c]
}
