package src

import (
	"os"
	"path/filepath"
	"strings"

	"simple-stackqueue/utils"
)

//-----------------------------------------------------------------------------
// common function
//-----------------------------------------------------------------------------

func isEmpty(e empty) bool {
	return e.IsEmpty()
}

//-----------------------------------------------------------------------------
// sys function
//-----------------------------------------------------------------------------

// relative paths are taken from the home directory
func absolutePath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		utils.ErrorP("absolutePath err: ", err)
		return file
	}
	return filepath.Join(home, file)
}

func HistoryFile(file string) string {
	return absolutePath(file)
}

//-----------------------------------------------------------------------------
// match function
//-----------------------------------------------------------------------------

// StringMatch reports whether str matches the glob pattern.
// Supported: * ? [abc] [^abc] [a-z] and \ to escape.
func StringMatch(pattern, str string, noCase bool) bool {
	if noCase {
		pattern = strings.ToLower(pattern)
		str = strings.ToLower(str)
	}
	return stringMatch(pattern, str)
}

func stringMatch(pattern, str string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(str); i++ {
				if stringMatch(pattern, str[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(str) == 0 {
				return false
			}
		case '[':
			if len(str) == 0 {
				return false
			}
			match, rest, ok := matchClass(pattern[1:], str[0])
			if !ok || !match {
				return false
			}
			pattern = rest
			str = str[1:]
			continue
		case '\\':
			if len(pattern) >= 2 {
				pattern = pattern[1:]
			}
			fallthrough
		default:
			if len(str) == 0 || pattern[0] != str[0] {
				return false
			}
		}
		pattern = pattern[1:]
		str = str[1:]
	}
	return len(str) == 0
}

// matchClass matches c against a [...] class, pattern starts after '['.
// rest is the pattern after the closing ']', ok is false when there is none.
func matchClass(pattern string, c byte) (match bool, rest string, ok bool) {
	not := false
	if len(pattern) > 0 && pattern[0] == '^' {
		not = true
		pattern = pattern[1:]
	}
	for len(pattern) > 0 && pattern[0] != ']' {
		switch {
		case pattern[0] == '\\' && len(pattern) >= 2:
			if pattern[1] == c {
				match = true
			}
			pattern = pattern[2:]
		case len(pattern) >= 3 && pattern[1] == '-' && pattern[2] != ']':
			start, end := pattern[0], pattern[2]
			if start > end {
				start, end = end, start
			}
			if c >= start && c <= end {
				match = true
			}
			pattern = pattern[3:]
		default:
			if pattern[0] == c {
				match = true
			}
			pattern = pattern[1:]
		}
	}
	if len(pattern) == 0 {
		return false, "", false
	}
	if not {
		match = !match
	}
	return match, pattern[1:], true
}
