package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sergev/lox/config"
	"github.com/sergev/lox/interp"
)

func runREPL(in *interp.Interp, opts config.Options) {
	if !isInteractive() {
		runBufferedREPL(in, bufio.NewReader(os.Stdin))
		return
	}
	runInteractiveREPL(in, opts)
}

// runLine executes one session line. A missing statement terminator is
// appended so bare expressions parse as statements. lineno seeds the
// diagnostic line numbers for this line.
func runLine(in *interp.Interp, line string, lineno int) error {
	if !strings.HasSuffix(line, ";") {
		line += ";"
	}
	return in.RunString(line, lineno)
}

func runInteractiveREPL(in *interp.Interp, opts config.Options) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := opts.HistoryFile
	if historyPath == "" {
		historyPath = defaultHistoryPath()
	}
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Println(renderTitle(fmt.Sprintf("lox v%s", Version)))
	fmt.Println(renderHint("Ctrl-D exits, Ctrl-C clears the line."))

	for lineno := 0; ; lineno++ {
		input, err := state.Prompt(opts.Prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		line := strings.TrimSpace(input)
		if line == "" {
			continue
		}
		state.AppendHistory(line)
		if err := runLine(in, line, lineno); err != nil {
			fmt.Fprintln(os.Stderr, renderError(err))
		}
	}
}

func runBufferedREPL(in *interp.Interp, reader *bufio.Reader) {
	for lineno := 0; ; lineno++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
		atEOF := errors.Is(err, io.EOF)

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if runErr := runLine(in, trimmed, lineno); runErr != nil {
				fmt.Fprintln(os.Stderr, renderError(runErr))
			}
		}
		if atEOF {
			return
		}
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".lox_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
