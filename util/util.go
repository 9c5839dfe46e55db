// Package util is a grab bag for stuff that needs to go elsewhere.
package util

import (
	"fmt"
	"io"
	"os"
)

// OpenLog opens a log file for appending, falling back to discard so
// the TUI screen stays clean.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}
