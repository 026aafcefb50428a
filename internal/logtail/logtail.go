package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// maxLines of zero or less returns the whole file. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Severity of a log line as written by the text formatter.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

var severityTokens = map[string]Severity{
	"DEBU": SeverityDebug,
	"INFO": SeverityInfo,
	"WARN": SeverityWarn,
	"ERRO": SeverityError,
	"FATA": SeverityError,
}

// LevelOf finds the level token in the first few fields of line.
func LevelOf(line string) Severity {
	fields := strings.Fields(line)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	for _, f := range fields {
		if sev, ok := severityTokens[f]; ok {
			return sev
		}
	}
	return SeverityNone
}

// Filter keeps lines at or above min. Lines without a level token, such as
// wrapped continuation lines, are kept with the line before them.
func Filter(lines []string, min Severity) []string {
	if min <= SeverityNone {
		return lines
	}
	out := make([]string, 0, len(lines))
	keep := false
	for _, line := range lines {
		if sev := LevelOf(line); sev != SeverityNone {
			keep = sev >= min
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
