package pip

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DetectInterpreter locates the Python interpreter whose environment pip
// commands should target. An active virtualenv wins over anything on PATH.
func DetectInterpreter() (string, error) {
	if venv := os.Getenv("VIRTUAL_ENV"); venv != "" {
		for _, rel := range []string{
			filepath.Join("bin", "python"),
			filepath.Join("Scripts", "python.exe"),
		} {
			candidate := filepath.Join(venv, rel)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no python interpreter found on PATH")
}
