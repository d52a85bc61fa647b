package ingest

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// ParseManifest reads a catalog build manifest: one entry per line in the
// form "name<TAB>category<TAB>url". Blank lines and lines starting with #
// are skipped.
func ParseManifest(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, cmdlib.Errorf(cmdlib.EINVALID, "manifest line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}

		category, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, cmdlib.Errorf(cmdlib.EINVALID, "manifest line %d: category must be an integer: %v", lineNo, err)
		}

		entries = append(entries, Entry{
			Name:     strings.TrimSpace(fields[0]),
			Category: category,
			URL:      strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
