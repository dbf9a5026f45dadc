package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/creack/pty"
	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
)

// resolveEditor picks the editor from $VISUAL, then $EDITOR, then vi. The
// value may carry arguments ("code --wait"), so it is split shell-style.
func resolveEditor() ([]string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	parts, err := shellwords.Parse(editor)
	if err != nil {
		return nil, fmt.Errorf("cannot parse editor command %q: %v", editor, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty editor command %q", editor)
	}
	return parts, nil
}

// openInEditor opens path in the user's editor inside a pseudo-terminal,
// jumping to the given 1-based line. The +N convention is understood by vi,
// vim, nano and emacs alike.
func openInEditor(path string, line int) error {
	parts, err := resolveEditor()
	if err != nil {
		return err
	}

	args := parts[1:]
	if line > 0 {
		args = append(args, "+"+strconv.Itoa(line))
	}
	args = append(args, path)
	cmd := exec.Command(parts[0], args...)

	// Start the editor in a pseudo-terminal.
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %v", err)
	}
	defer ptyFile.Close()

	// Put the real terminal in raw mode so keystrokes reach the editor
	// unmangled, and restore it when the editor exits.
	if oldState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	// Set up signal handling (we forward SIGINT and SIGTERM).
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			if cmd.Process != nil {
				// Forward the signal to the entire process group.
				if err := syscall.Kill(-cmd.Process.Pid, sig.(syscall.Signal)); err != nil {
					if err != syscall.ESRCH && err != syscall.EPERM {
						fmt.Fprintf(os.Stderr, "failed to forward signal %v: %v\n", sig, err)
					}
				}
			}
		}
	}()

	// Copy data between the PTY and the real terminal, both directions.
	go func() {
		_, _ = io.Copy(ptyFile, os.Stdin)
	}()
	go func() {
		_, _ = io.Copy(os.Stdout, ptyFile)
	}()

	// Wait for the editor to exit.
	waitErr := cmd.Wait()

	// Clean up signal handling.
	signal.Stop(sigChan)
	close(sigChan)

	if waitErr != nil {
		return fmt.Errorf("editor exited with error: %v", waitErr)
	}
	return nil
}
