// Package logview follows the JSON log files written by the editor and prints
// them in a compact, filterable form.
package logview

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"mcoo/local-app/internal/ui"
)

// Entry is one decoded log line.
type Entry map[string]interface{}

// Viewer tails every *.log file in a directory.
type Viewer struct {
	dir      string
	out      io.Writer
	useColor bool

	mu        sync.RWMutex
	filter    string
	positions map[string]int64
	known     map[string]bool
	lastPrint time.Time
	gapShown  bool
}

// NewViewer creates a Viewer for dir writing to out.
func NewViewer(dir string, out io.Writer, useColor bool) *Viewer {
	return &Viewer{
		dir:       dir,
		out:       out,
		useColor:  useColor,
		positions: make(map[string]int64),
		known:     make(map[string]bool),
		gapShown:  true,
	}
}

// Filter returns the current case-insensitive filter.
func (v *Viewer) Filter() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filter
}

// SetFilter replaces the filter. Only entries containing it are printed.
func (v *Viewer) SetFilter(f string) {
	v.mu.Lock()
	v.filter = f
	v.mu.Unlock()
}

// HandleKey edits the filter with one typed byte and returns the result.
// Backspace removes the last character; control bytes are ignored.
func (v *Viewer) HandleKey(b byte) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case b == 8 || b == 127:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
		}
	case b >= ' ':
		v.filter += string(b)
	}
	return v.filter
}

// Run polls the directory every interval until ctx is done.
func (v *Viewer) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := v.Poll(); err != nil {
			v.notice(ui.ColorRed, "Error reading log directory: %v", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v.gap(interval)
		}
	}
}

// Poll prints the lines appended to each log file since the last call.
func (v *Viewer) Poll() error {
	files, err := filepath.Glob(filepath.Join(v.dir, "*.log"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, path := range files {
		v.pollFile(path)
	}
	return nil
}

func (v *Viewer) pollFile(path string) {
	name := filepath.Base(path)
	if !v.known[path] {
		v.notice(ui.ColorGreen, "New log file detected: %s", name)
		v.known[path] = true
	}

	file, err := os.Open(path)
	if err != nil {
		v.notice(ui.ColorRed, "Error opening %s: %v", name, err)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		v.notice(ui.ColorRed, "Error getting file stats for %s: %v", name, err)
		return
	}
	if stat.Size() < v.positions[path] {
		v.notice(ui.ColorYellow, "%s has been truncated, starting from beginning", name)
		v.positions[path] = 0
	}
	if _, err := file.Seek(v.positions[path], io.SeekStart); err != nil {
		v.notice(ui.ColorRed, "Error seeking in %s: %v", name, err)
		return
	}

	reader := bufio.NewReader(file)
	pos := v.positions[path]
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// A partial last line is read again on the next poll.
			break
		}
		pos += int64(len(line))

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			v.notice(ui.ColorRed, "Error parsing log entry in %s: %v", name, err)
			continue
		}
		v.print(entry)
	}
	v.positions[path] = pos
}

func (v *Viewer) print(entry Entry) {
	filter := strings.ToLower(v.Filter())
	if filter != "" && !strings.Contains(strings.ToLower(FormatEntry(entry, false)), filter) {
		return
	}
	fmt.Fprintln(v.out, FormatEntry(entry, v.useColor))
	v.lastPrint = time.Now()
	v.gapShown = false
}

// gap prints a separator once output has paused for a full interval.
func (v *Viewer) gap(interval time.Duration) {
	if v.gapShown || time.Since(v.lastPrint) < interval {
		return
	}
	fmt.Fprintln(v.out, v.paint(ui.ColorLightPurple, "◆"))
	v.gapShown = true
}

func (v *Viewer) notice(c ui.Color, format string, args ...interface{}) {
	fmt.Fprintln(v.out, v.paint(c, fmt.Sprintf(format, args...)))
}

func (v *Viewer) paint(c ui.Color, s string) string {
	return paint(v.useColor, c, s)
}

func paint(useColor bool, c ui.Color, s string) string {
	if !useColor {
		return s
	}
	return string(c) + s + string(ui.ColorDefault)
}

// FormatEntry renders an entry as "time LEVEL msg" followed by one indented
// line per extra field in key order.
func FormatEntry(entry Entry, useColor bool) string {
	timestamp, _ := entry["time"].(string)
	level, _ := entry["level"].(string)
	msg, _ := entry["msg"].(string)
	level = strings.ToUpper(level)

	var b strings.Builder
	b.WriteString(paint(useColor, ui.ColorLightPurple, formatTimestamp(timestamp)))
	b.WriteString(" ")
	b.WriteString(paint(useColor, levelColor(level), fmt.Sprintf("%-5s", level)))
	b.WriteString(" ")
	b.WriteString(msg)

	keys := make([]string, 0, len(entry))
	for k := range entry {
		if k != "time" && k != "level" && k != "msg" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n    %s %v", paint(useColor, ui.ColorLightBlue, k+":"), entry[k])
	}
	return b.String()
}

func formatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("06-01-02 15:04:05.000000")
}

func levelColor(level string) ui.Color {
	switch level {
	case "DEBUG":
		return ui.ColorLightBlue
	case "INFO":
		return ui.ColorGreen
	case "WARN", "WARNING":
		return ui.ColorYellow
	case "ERROR":
		return ui.ColorRed
	}
	return ui.ColorWhite
}
