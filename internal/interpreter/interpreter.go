// Package interpreter turns raw command lines into executable robot commands.
package interpreter

import (
	"errors"
	"strconv"
	"strings"

	"toyrobot/internal/model"
)

// Interpreter translates text commands for a single target.
type Interpreter struct {
	target Target
}

func New(t Target) *Interpreter {
	return &Interpreter{target: t}
}

// Interpret parses every line of the batch. Blank lines are skipped. The first
// invalid line aborts the batch and no commands are returned.
func (in *Interpreter) Interpret(lines []string) ([]Command, error) {
	var cmds []Command
	for i, text := range lines {
		cmd, err := in.interpretLine(text)
		if err != nil {
			err.Line = i + 1
			err.Text = text
			return nil, err
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, nil
}

func (in *Interpreter) interpretLine(text string) (Command, *ParseError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	line, err := parseLine(text)
	if err != nil {
		return nil, &ParseError{Msg: err.Error(), Err: err}
	}

	name := strings.ToUpper(line.Verb)
	verb, ok := lookupVerb(name)
	if !ok {
		return nil, &ParseError{Msg: "unsupported command `" + name + "`, " + msgSupported}
	}

	switch verb {
	case VerbPlace:
		return in.translatePlace(line.Args)
	case VerbMove:
		return NewMove(in.target), nil
	case VerbLeft:
		return NewLeft(in.target), nil
	case VerbRight:
		return NewRight(in.target), nil
	case VerbReport:
		return NewReport(in.target), nil
	}
	return nil, &ParseError{Msg: "unsupported command `" + name + "`, " + msgSupported}
}

func (in *Interpreter) translatePlace(args []string) (Command, *ParseError) {
	if len(args) != 1 {
		return nil, &ParseError{Msg: msgPlaceGroup}
	}
	fields := strings.Split(args[0], ",")
	if len(fields) != 3 {
		return nil, &ParseError{Msg: msgPlaceFields}
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return nil, &ParseError{Msg: msgPlaceInteger, Err: err}
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return nil, &ParseError{Msg: msgPlaceInteger, Err: err}
	}
	facing, ok := model.ParseFacing(fields[2])
	if !ok {
		return nil, &ParseError{Msg: msgPlaceFacing}
	}
	return NewPlace(in.target, model.Position{X: x, Y: y, Facing: facing}), nil
}

// parseCoord parses a PLACE coordinate. Integers too large for int saturate,
// so they are still integers and fail the table bounds check on execution.
func parseCoord(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return int(n), nil
}
