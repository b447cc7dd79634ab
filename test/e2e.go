package test

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Case is one line of a case file: "<expression> => <expected>". Expected is
// a number (NaN and +Inf/-Inf included), "empty", "lex error" or
// "syntax error". Blank lines and lines starting with # are skipped.
type Case struct {
	Line       int
	Expression string
	Expected   string
}

func (c Case) Number() (float64, bool) {
	v, err := strconv.ParseFloat(c.Expected, 64)
	return v, err == nil
}

func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases := []Case{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.SplitN(text, "=>", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: expecting '<expression> => <expected>'", path, line)
		}
		cases = append(cases, Case{
			Line:       line,
			Expression: strings.TrimSpace(parts[0]),
			Expected:   strings.TrimSpace(parts[1]),
		})
	}
	return cases, scanner.Err()
}
