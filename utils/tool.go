package utils

import (
	"strconv"
	"time"
)

// StrToInt parses a base 10 integer from s into v, v is untouched on error
func StrToInt(s string, v *int) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = i
	return nil
}

func GetMsTime() int64 {
	return time.Now().UnixNano() / 1e6
}
