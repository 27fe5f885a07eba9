package src

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"simple-stackqueue/utils"
)

type configVal struct {
	Prompt      string `cfg:"prompt"`
	HistoryFile string `cfg:"historyFile"`
	LogLevel    string `cfg:"logLevel"`
	Output      string `cfg:"output"`
	Demo        bool   `cfg:"demo"`
}

var logLevels = map[string]int{
	"info":     utils.InfoLevel,
	"error":    utils.ErrorLevel,
	"disabled": utils.Disabled,
}

var config = defaultConfig()

func defaultConfig() *configVal {
	return &configVal{
		Prompt:      SQ_CLI_PROMPT_DEFAULT,
		HistoryFile: SQ_CLI_HISTFILE_DEFAULT,
		LogLevel:    "error",
		Output:      OUTPUT_PLAIN,
	}
}

func SetupConf(confName string) error {
	f, err := os.Open(confName)
	if err != nil {
		return err
	}

	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			utils.ErrorP("close config err: ", err)
		}
	}(f)

	conf, err := parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", confName, err)
	}
	config = conf
	return nil
}

func parse(r io.Reader) (*configVal, error) {
	conf := defaultConfig()
	scanner := bufio.NewScanner(r)
	rawMap := make(map[string]string)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: config line %q has no value", ERR_SYNTAX, line)
		}
		rawMap[strings.ToLower(key)] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	confType := reflect.TypeOf(conf).Elem()
	confValue := reflect.ValueOf(conf).Elem()

	for i := 0; i < confType.NumField(); i++ {
		field := confType.Field(i)
		fieldVal := confValue.Field(i)
		key, ok := field.Tag.Lookup("cfg")

		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q", ERR_NOT_INTEGER, key, value)
			}
			fieldVal.SetInt(intVal)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		}
	}
	return conf, conf.check()
}

// keep the surrounding quotes out, prompts usually end with a space
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

func (conf *configVal) check() error {
	if _, ok := logLevels[conf.LogLevel]; !ok {
		return fmt.Errorf("invalid logLevel %q", conf.LogLevel)
	}
	if conf.Output != OUTPUT_PLAIN && conf.Output != OUTPUT_JSON {
		return fmt.Errorf("invalid output %q", conf.Output)
	}
	return nil
}
