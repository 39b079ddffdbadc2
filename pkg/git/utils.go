package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// runGit executes a git command in workDir and returns its trimmed output.
func runGit(workDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}

	return strings.TrimSpace(string(output)), nil
}

// splitLines splits command output into non-empty lines.
func splitLines(output string) []string {
	if output == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
