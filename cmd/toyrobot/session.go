package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"toyrobot/internal/model"
	"toyrobot/internal/robot"
)

const (
	welcome = "Welcome to toy robot! Choose a table size, then command the robot to move on the table."

	usage = `The SOUTH WEST most corner of the table is (0,0)
PLACE X,Y,FACING puts the robot on the table
MOVE moves the robot one step forward
LEFT and RIGHT turn the robot
REPORT prints the robot position
Ctrl+D or EOF to exit

Please input your command:`

	retry   = "Please try again."
	goodbye = "Bye, welcome to play next time."
)

// promptTable asks for a square table size until the answer is blank or a
// positive integer.
func promptTable(in *bufio.Scanner, out io.Writer) model.Table {
	fmt.Fprint(out, "Please input the table size, default size is 5x5: ")
	for in.Scan() {
		answer := strings.TrimSpace(in.Text())
		if answer == "" {
			break
		}
		if size, err := strconv.Atoi(answer); err == nil {
			if t, err := model.NewTable(size, size); err == nil {
				return t
			}
		}
		fmt.Fprint(out, "Please input the table size, ensure the input is positive integer, default size is 5x5: ")
	}
	return model.DefaultTable()
}

type session struct {
	robot  *robot.Robot
	out    io.Writer
	errOut io.Writer
	draw   bool
}

// play runs every input line as its own batch. Command errors are reported and
// the loop keeps going; a failure to read input ends the session.
func (s *session) play(in *bufio.Scanner) error {
	fmt.Fprintln(s.out, usage)
	for in.Scan() {
		line := in.Text()
		if strings.TrimSpace(line) == "EOF" {
			break
		}
		s.batch([]string{line})
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	fmt.Fprintln(s.out, goodbye)
	return nil
}

// runFile runs the whole file as a single batch.
func (s *session) runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	if !s.batch(strings.Split(string(data), "\n")) {
		return exitError(1)
	}
	return nil
}

func (s *session) batch(lines []string) bool {
	if err := s.robot.AwaitOrders(lines); err != nil {
		fmt.Fprintln(s.out, err)
		fmt.Fprintln(s.out, retry)
		return false
	}
	if s.draw {
		if err := s.robot.Draw(s.out); err != nil {
			fmt.Fprintf(s.errOut, "draw table: %v\n", err)
			return false
		}
	}
	return true
}
