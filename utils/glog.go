package utils

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	InfoLevel = iota
	ErrorLevel
	Disabled
)

// replies go to stdout, logs to stderr
var (
	colored  = isTerminal(os.Stderr)
	errorLog = log.New(os.Stderr, prefix("[error]", "\033[31m"), log.LstdFlags|log.Lshortfile)
	infoLog  = log.New(os.Stderr, prefix("[info]", "\033[34m"), log.LstdFlags)
	level    = InfoLevel
	mux      sync.Mutex
)

var output io.Writer = os.Stderr

// Error ErrorF 会阻止defer执行
// ErrorP ErrorPf 不会会阻止defer执行，但需要手动return
var (
	Error   = errorLog.Fatal
	ErrorF  = errorLog.Fatalf
	ErrorP  = errorLog.Println
	ErrorPf = errorLog.Printf
	Info    = infoLog.Println
	InfoF   = infoLog.Printf
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func prefix(name, color string) string {
	if !colored {
		return name + " "
	}
	return color + name + "\033[0m "
}

func SetLevel(l int) {
	mux.Lock()
	defer mux.Unlock()

	level = l
	errorLog.SetOutput(output)
	infoLog.SetOutput(output)

	if ErrorLevel < level {
		errorLog.SetOutput(io.Discard)
	}
	if InfoLevel < level {
		infoLog.SetOutput(io.Discard)
	}
}

// SetOutput redirects the loggers, the current level still applies.
func SetOutput(w io.Writer) {
	mux.Lock()
	output = w
	l := level
	mux.Unlock()
	SetLevel(l)
}
