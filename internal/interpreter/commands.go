package interpreter

import "toyrobot/internal/model"

// Target is the set of robot operations commands are executed against.
type Target interface {
	SetPosition(p model.Position) error
	MoveForward() error
	TurnLeft() error
	TurnRight() error
	Report() error
}

type Verb int

const (
	VerbPlace Verb = iota
	VerbMove
	VerbLeft
	VerbRight
	VerbReport
)

var verbs = [...]string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT"}

func (v Verb) String() string {
	if v < VerbPlace || v > VerbReport {
		return "UNKNOWN"
	}
	return verbs[v]
}

func lookupVerb(name string) (Verb, bool) {
	for i, n := range verbs {
		if n == name {
			return Verb(i), true
		}
	}
	return 0, false
}

func verbNames() []string {
	return verbs[:]
}

// Command is an executable robot operation produced by the interpreter.
type Command interface {
	Verb() Verb
	Execute() error
	String() string
}

type Place struct {
	target   Target
	Position model.Position
}

func NewPlace(t Target, p model.Position) *Place {
	return &Place{target: t, Position: p}
}

func (c *Place) Verb() Verb     { return VerbPlace }
func (c *Place) Execute() error { return c.target.SetPosition(c.Position) }
func (c *Place) String() string { return "PLACE " + c.Position.String() }

// simple is a command without arguments.
type simple struct {
	target Target
	verb   Verb
}

func NewMove(t Target) Command   { return &simple{target: t, verb: VerbMove} }
func NewLeft(t Target) Command   { return &simple{target: t, verb: VerbLeft} }
func NewRight(t Target) Command  { return &simple{target: t, verb: VerbRight} }
func NewReport(t Target) Command { return &simple{target: t, verb: VerbReport} }

func (c *simple) Verb() Verb     { return c.verb }
func (c *simple) String() string { return c.verb.String() }

func (c *simple) Execute() error {
	switch c.verb {
	case VerbMove:
		return c.target.MoveForward()
	case VerbLeft:
		return c.target.TurnLeft()
	case VerbRight:
		return c.target.TurnRight()
	case VerbReport:
		return c.target.Report()
	}
	panic("interpreter: simple command with verb " + c.verb.String())
}
