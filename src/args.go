// Package src
//
// Lib args provides cli flag parsing and command line tokenizing
package src

import (
	"flag"
	"fmt"
	"strings"
	"unicode"
)

var transChar = map[byte]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'a': '\a',
}

var errUnbalancedQuotes = fmt.Errorf("%w: unbalanced quotes", ERR_SYNTAX)

// ------------------------------ args tools --------------------------

// return next not space index by index
//
// e.g. s = "hello  world" i = 5, will return 7
func nextLineIdx(line string, i int) int {
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	return i
}

// closing quote must be followed by a space or nothing at all
func closeQuote(line, current string, i int) (string, int, error) {
	if i+1 < len(line) && !unicode.IsSpace(rune(line[i+1])) {
		return "", i, errUnbalancedQuotes
	}
	return current, i + 1, nil
}

func normalHandle(line string, i int) (string, int) {
	start := i
	for i < len(line) && !unicode.IsSpace(rune(line[i])) {
		i++
	}
	return line[start:i], i
}

// i is the index after the opening quote
func quotesHandle(line string, i int) (string, int, error) {
	var current strings.Builder
	for ; i < len(line); i++ {
		// e.g. \r \n \" and so on
		if line[i] == '\\' && i+1 < len(line) {
			i++
			if tc, ok := transChar[line[i]]; ok {
				current.WriteByte(tc)
			} else {
				current.WriteByte(line[i])
			}
			continue
		}
		if line[i] == '"' {
			return closeQuote(line, current.String(), i)
		}
		current.WriteByte(line[i])
	}
	return "", i, errUnbalancedQuotes
}

func singleQuotesHandle(line string, i int) (string, int, error) {
	var current strings.Builder
	for ; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) && line[i+1] == '\'' {
			current.WriteByte('\'')
			i++
			continue
		}
		if line[i] == '\'' {
			return closeQuote(line, current.String(), i)
		}
		current.WriteByte(line[i])
	}
	return "", i, errUnbalancedQuotes
}

// splitArgs splits a command line into arguments. Double quoted arguments
// understand \n \r \t \b \a escapes, single quoted ones only \'.
func splitArgs(line string) ([]string, error) {
	var args []string
	// skip space
	i := nextLineIdx(line, 0)
	for i < len(line) {
		var (
			current string
			err     error
		)
		switch line[i] {
		case '"':
			current, i, err = quotesHandle(line, i+1)
		case '\'':
			current, i, err = singleQuotesHandle(line, i+1)
		default:
			current, i = normalHandle(line, i)
		}
		if err != nil {
			return nil, err
		}
		args = append(args, current)
		i = nextLineIdx(line, i)
	}
	return args, nil
}

// ------------------------------- cli args ---------------------------

type cliArgs struct {
	confPath string // config file path
	confSet  bool   // -c given explicitly
	json     bool   // json replies
	verbose  bool   // info logs
	demo     bool   // run the demo and exit
}

var CliArgs cliArgs

func ParseCliArgs() {
	flag.StringVar(&CliArgs.confPath, "c", CONFIG, "config path")
	flag.BoolVar(&CliArgs.json, "json", false, "print replies as json")
	flag.BoolVar(&CliArgs.verbose, "v", false, "verbose logging")
	flag.BoolVar(&CliArgs.demo, "demo", false, "run the stack and queue demo and exit")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			CliArgs.confSet = true
		}
	})
}
