package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const rule = "===================="

// lineReader delivers input lines while letting the caller give up on
// cancellation instead of blocking on a read.
type lineReader struct {
	lines chan string
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next line. It returns io.EOF once input is exhausted.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", fmt.Errorf("reading input: %w", lr.err)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) header(title string) {
	s.printf("\n%s\n %s\n%s\n", rule, title, rule)
}

// prompt prints label and returns the trimmed answer.
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.next(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askChoice lists options and returns the zero-based index of the one picked.
func (s *Session) askChoice(ctx context.Context, question string, options []string) (int, error) {
	s.printf("\n%s\n", question)
	for i, opt := range options {
		s.printf("%d. %s\n", i+1, opt)
	}

	for {
		answer, err := s.prompt(ctx, fmt.Sprintf("Your choice (1-%d): ", len(options)))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			s.printf("Please enter a number.\n")
			continue
		}
		if n < 1 || n > len(options) {
			s.printf("Invalid choice number.\n")
			continue
		}
		return n - 1, nil
	}
}

// askMany lists options and returns those picked by space-separated numbers.
// Invalid tokens are ignored; at least one valid pick is required.
func (s *Session) askMany(ctx context.Context, plural, singular string, options []string) ([]string, error) {
	s.printf("\nSelect %s (enter numbers separated by spaces):\n", plural)
	for i, opt := range options {
		s.printf("%d. %s\n", i+1, opt)
	}

	for {
		answer, err := s.prompt(ctx, ">> ")
		if err != nil {
			return nil, err
		}

		var picked []string
		for _, tok := range strings.Fields(answer) {
			n, err := strconv.Atoi(tok)
			if err != nil || n < 1 || n > len(options) {
				continue
			}
			picked = append(picked, options[n-1])
		}
		if len(picked) > 0 {
			return picked, nil
		}
		s.printf("Please select at least one valid %s.\n", singular)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
