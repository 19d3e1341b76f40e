package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kirksw/gc/internal/ui"
)

// promptOverwrite is the line-based overwrite confirmation used when stdin
// is not a terminal, so piped input like `yes | gc ...` still works.
func promptOverwrite(in io.Reader, out io.Writer, path string, isDir bool) (bool, error) {
	what := "directory"
	if !isDir {
		what = "existing entry (not a directory)"
	}

	reader := bufio.NewReader(in)
	ui.Warnf(out, "Destination already exists.")

	for {
		fmt.Fprintf(out, "Delete %s %s and clone again? [y/n]: ", what, path)

		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if answer, ok := ui.ParseYesNo(input); ok {
					return answer, nil
				}
			}
			return false, err
		}

		if answer, ok := ui.ParseYesNo(input); ok {
			return answer, nil
		}

		fmt.Fprintln(out, "Please answer y or n.")
	}
}
