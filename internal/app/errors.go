package app

import (
	"fmt"
)

type StdinWithPathsError struct{}

func (e *StdinWithPathsError) Error() string {
	return "'-' (standard input) cannot be combined with other paths"
}

type WatchStdinError struct{}

func (e *WatchStdinError) Error() string {
	return "--watch needs at least one file or directory; standard input cannot be watched"
}

type InvalidNamesError struct {
	Count int
}

func (e *InvalidNamesError) Error() string {
	return fmt.Sprintf("%d invalid XML name(s)", e.Count)
}
