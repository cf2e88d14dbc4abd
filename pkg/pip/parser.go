// pkg/pip/parser.go
package pip

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseList parses `pip list --format=json` output.
func ParseList(data []byte) ([]ListEntry, error) {
	var entries []ListEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing pip list output: %w", err)
	}
	return entries, nil
}

// ParseShow parses multi-package `pip show` output. Stanzas are separated by
// "---" lines; within a stanza only the Name, Version, Requires and
// Required-by fields are read. A stanza with no usable Requires line yields
// an empty requirement list rather than an error, so one package's broken
// metadata never poisons the rest of the snapshot.
func ParseShow(r io.Reader) ([]*ShowInfo, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var infos []*ShowInfo
	var current *ShowInfo

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == stanzaSeparator {
			if current != nil {
				infos = append(infos, current)
				current = nil
			}
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Start a new stanza on the Name field. pip emits it first, but a
		// missing separator between stanzas must not merge two packages.
		if field == fieldName {
			if current != nil {
				infos = append(infos, current)
			}
			current = &ShowInfo{Name: value}
			continue
		}

		if current == nil {
			continue
		}

		switch field {
		case fieldVersion:
			current.Version = value
		case fieldRequires:
			current.Requires = parseNameList(value)
		case fieldRequiredBy:
			current.RequiredBy = parseNameList(value)
		}
	}

	if current != nil {
		infos = append(infos, current)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning pip show output: %w", err)
	}

	return infos, nil
}

// parseNameList parses a comma-separated package name list
func parseNameList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		// Strip environment markers and version constraints if pip ever
		// emits them here, e.g. "colorama; sys_platform == 'win32'".
		if idx := strings.IndexAny(part, ";(<>=! "); idx != -1 {
			part = strings.TrimSpace(part[:idx])
		}
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
