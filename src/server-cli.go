package src

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	linenoise "github.com/GeertJohan/go.linenoise"
	"github.com/mattn/go-isatty"

	"simple-stackqueue/utils"
)

/*------------------------------------------------------------------------------
 * Setup
 *--------------------------------------------------------------------------- */

// load the config file, then let the flags override it
func setupCli() {
	err := SetupConf(CliArgs.confPath)
	if err != nil && (CliArgs.confSet || !errors.Is(err, os.ErrNotExist)) {
		utils.Error("load config err: ", err)
	}
	if CliArgs.json {
		config.Output = OUTPUT_JSON
	}
	if CliArgs.verbose {
		config.LogLevel = "info"
	}
	utils.SetLevel(logLevels[config.LogLevel])
	if err != nil {
		utils.InfoF("no config file %s, using defaults", CliArgs.confPath)
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

/*------------------------------------------------------------------------------
 * Command execution
 *--------------------------------------------------------------------------- */

func isQuit(name string) bool {
	name = strings.ToLower(name)
	return name == "quit" || name == "exit"
}

// execute one command line and write its replies to w.
// Returns true when the line asks to leave.
func executeLine(c *SQClient, line string, w io.Writer) bool {
	args, err := splitArgs(line)
	if err != nil {
		c.addReplyError(err)
	} else if len(args) == 0 {
		return false
	} else if isQuit(args[0]) {
		return true
	} else {
		c.args = args
		processCommand(c)
	}
	if err := c.flushReply(w); err != nil {
		utils.ErrorP("write reply err: ", err)
	}
	return false
}

/*------------------------------------------------------------------------------
 * User interface
 *--------------------------------------------------------------------------- */

func completionHandler(input string) []string {
	if strings.ContainsAny(input, " \t") {
		return nil
	}
	return commandNames(input)
}

func saveHistory(histFile string) {
	if err := linenoise.SaveHistory(histFile); err != nil {
		utils.ErrorP("save history err: ", err)
	}
}

func repl(c *SQClient) {
	histFile := HistoryFile(config.HistoryFile)
	if err := linenoise.LoadHistory(histFile); err != nil {
		utils.Info("load history: ", err)
	}
	linenoise.SetCompletionHandler(completionHandler)
	SetupSignalHandler(cliShutdown(histFile))

	for {
		line, err := linenoise.Line(config.Prompt)
		if err != nil {
			if err != linenoise.KillSignalError {
				utils.ErrorP("read line err: ", err)
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := linenoise.AddHistory(line); err != nil {
			utils.ErrorP("add history err: ", err)
		}
		if executeLine(c, line, os.Stdout) {
			break
		}
	}
	saveHistory(histFile)
}

// one command per line of r, used when stdin is not a terminal
func pipe(c *SQClient, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if executeLine(c, scanner.Text(), w) {
			break
		}
	}
	return scanner.Err()
}

// run args as a single command
func noninteractive(c *SQClient, args []string, w io.Writer) int {
	c.args = args
	processCommand(c)
	status := CLI_OK
	if c.lastReplyIsError() {
		status = CLI_ERR
	}
	if err := c.flushReply(w); err != nil {
		utils.ErrorP("write reply err: ", err)
		return CLI_ERR
	}
	return status
}

// CliStart runs ssq-cli and returns its exit status. args are the
// command line arguments left after flag parsing.
func CliStart(args []string) int {
	setupCli()

	if CliArgs.demo || config.Demo {
		RunDemo(os.Stdout)
		return CLI_OK
	}

	c := createSQClient(dbCreate())
	c.json = config.Output == OUTPUT_JSON

	// Otherwise, we have some arguments to execute
	if len(args) > 0 {
		return noninteractive(c, args, os.Stdout)
	}
	// Start interactive mode when no command is provided
	if stdinIsTerminal() {
		repl(c)
		return CLI_OK
	}
	if err := pipe(c, os.Stdin, os.Stdout); err != nil {
		utils.ErrorP("read stdin err: ", err)
		return CLI_ERR
	}
	return CLI_OK
}
