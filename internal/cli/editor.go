package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// openEditorFunc is a function variable for running the editor, allowing it to be mocked in tests.
var openEditorFunc = openEditor

// getEditor returns the user's preferred editor from environment variables.
// It checks EDITOR, then VISUAL, and defaults to vim if neither is set.
func getEditor() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vim"
	}
	return editor
}

// openEditor opens the specified file in the user's editor.
// It returns an error if the editor cannot be started or exits with a non-zero status.
func openEditor(filePath string) error {
	editor := getEditor()

	cmd := exec.Command(editor, filePath) //nolint:gosec // Editor comes from the user's environment
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editor, err)
	}

	return nil
}

// editText writes initial to a temporary file, opens it in the editor and
// returns the saved content without trailing whitespace.
func editText(initial string) (string, error) {
	f, err := os.CreateTemp("", "tick-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(initial); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := openEditorFunc(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return strings.TrimRight(string(content), " \t\r\n"), nil
}
