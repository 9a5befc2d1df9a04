// Package robot implements the toy robot state machine.
package robot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/model"
)

const refusedMove = "This movement may endanger the robot, refuse to move"

var (
	ErrNotPlaced      = errors.New("robot must be placed before issuing movement/turn/report commands")
	ErrUnsafePosition = errors.New("unsafe position")
)

// BoundsError rejects a placement outside the table.
type BoundsError struct {
	Position   model.Position
	MaxX, MaxY int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("unsafe position, must stay within the table bounds [0..%d]×[0..%d]", e.MaxX, e.MaxY)
}

func (e *BoundsError) Unwrap() error { return ErrUnsafePosition }

type State int

const (
	Unplaced State = iota
	Placed
)

func (s State) String() string {
	if s == Placed {
		return "placed"
	}
	return "unplaced"
}

// Robot stands on a table and executes commands. It is not safe for
// concurrent use.
type Robot struct {
	state       State
	position    model.Position
	navigator   model.Navigator
	interpreter *interpreter.Interpreter
	out         io.Writer
	log         zerolog.Logger

	initial *model.Position
}

type Option func(*Robot)

// WithPosition places the robot at p on construction.
func WithPosition(p model.Position) Option {
	return func(r *Robot) { r.initial = &p }
}

// WithOutput sets where reports and refusals are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Robot) { r.out = w }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Robot) { r.log = l }
}

func New(nav model.Navigator, opts ...Option) (*Robot, error) {
	r := &Robot{
		navigator: nav,
		out:       os.Stdout,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.interpreter = interpreter.New(r)
	if r.initial != nil {
		if err := r.SetPosition(*r.initial); err != nil {
			return nil, err
		}
		r.initial = nil
	}
	return r, nil
}

func (r *Robot) State() State                { return r.state }
func (r *Robot) Navigator() model.Navigator { return r.navigator }

// Position returns the current position and whether the robot is placed.
func (r *Robot) Position() (model.Position, bool) {
	return r.position, r.state == Placed
}

func (r *Robot) SetPosition(p model.Position) error {
	if !r.navigator.Safe(p) {
		t := r.navigator.Table()
		r.log.Debug().Stringer("position", p).Stringer("table", t).Msg("placement rejected")
		return &BoundsError{Position: p, MaxX: t.MaxX(), MaxY: t.MaxY()}
	}
	r.position = p
	r.state = Placed
	r.log.Debug().Stringer("position", p).Msg("placed")
	return nil
}

func (r *Robot) TurnLeft() error {
	return r.turn("left")
}

func (r *Robot) TurnRight() error {
	return r.turn("right")
}

func (r *Robot) turn(relative string) error {
	if err := r.ensurePlaced(); err != nil {
		return err
	}
	if err := r.position.ChangeFacingTo(relative); err != nil {
		return err
	}
	r.log.Debug().Str("turn", relative).Stringer("facing", r.position.Facing).Msg("turned")
	return nil
}

// MoveForward steps one unit ahead. A step off the table is refused without
// error and the robot stays where it is.
func (r *Robot) MoveForward() error {
	if err := r.ensurePlaced(); err != nil {
		return err
	}
	next := r.position.Front()
	if !r.navigator.Safe(next) {
		r.log.Debug().Stringer("position", r.position).Stringer("target", next).Msg("move refused")
		return r.emit(refusedMove)
	}
	r.position = next
	r.log.Debug().Stringer("position", next).Msg("moved")
	return nil
}

func (r *Robot) Report() error {
	if err := r.ensurePlaced(); err != nil {
		return err
	}
	return r.emit("Output: " + r.position.String())
}

// AwaitOrders interprets the whole batch, then executes it in order. Nothing
// runs if any line fails to parse; execution stops at the first failing
// command.
func (r *Robot) AwaitOrders(lines []string) error {
	cmds, err := r.interpreter.Interpret(lines)
	if err != nil {
		r.log.Debug().Err(err).Msg("batch rejected")
		return err
	}
	for _, cmd := range cmds {
		if err := cmd.Execute(); err != nil {
			r.log.Debug().Stringer("command", cmd).Err(err).Msg("command failed")
			return err
		}
	}
	return nil
}

// Draw renders the table with the robot on it.
func (r *Robot) Draw(w io.Writer) error {
	return model.Render(w, r.navigator.Table(), r.position, r.state == Placed)
}

func (r *Robot) ensurePlaced() error {
	if r.state != Placed {
		return ErrNotPlaced
	}
	return nil
}

func (r *Robot) emit(line string) error {
	_, err := io.WriteString(r.out, line+"\n")
	return err
}
