// Package input collects applicant data from a user via standard
// input/output. Tests can substitute Reader/Writer to avoid interactive TTY
// requirements.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/counselkit/counsel/model"
)

// ErrInvalidRank indicates the supplied rank is not a valid integer.
var ErrInvalidRank = errors.New("invalid input for rank, please enter a valid integer")

// Prompts shown to the user.
const (
	namePrompt = "Enter your name: "
	rankPrompt = "Enter your rank: "
)

// Service reads applicant data from its input stream.
type Service struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Service that reads from stdin and writes to stdout.
func New() *Service {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO lets callers override the input/output streams (handy for tests).
func NewWithIO(in io.Reader, out io.Writer) *Service {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Service{in: bufio.NewReader(in), out: out}
}

// ReadApplicant prompts for and reads the applicant name and rank. Leading
// whitespace before the name is skipped, embedded spaces are kept. The rank
// is the next whitespace-delimited token and must parse as an integer;
// otherwise the returned error wraps ErrInvalidRank.
func (s *Service) ReadApplicant(_ context.Context) (*model.Applicant, error) {
	fmt.Fprint(s.out, namePrompt)
	name, err := s.readLine()
	if err != nil {
		return nil, err
	}

	fmt.Fprint(s.out, rankPrompt)
	token, err := s.readToken()
	if err != nil {
		return nil, err
	}
	rank, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRank, token)
	}
	return model.NewApplicant(name, rank), nil
}

// readLine skips leading whitespace (including blank lines) and returns the
// rest of the line.
func (s *Service) readLine() (string, error) {
	if err := s.skipSpace(); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readToken skips leading whitespace and returns the next whitespace-delimited token.
func (s *Service) readToken() (string, error) {
	if err := s.skipSpace(); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		r, _, err := s.in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			_ = s.in.UnreadRune()
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func (s *Service) skipSpace() error {
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return s.in.UnreadRune()
		}
	}
}
