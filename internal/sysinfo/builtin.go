// ABOUTME: Builtin info panel used when no external info program is available
// ABOUTME: Reads /etc/os-release and /proc; labels styled with lipgloss

package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

// Builtin assembles a minimal info panel from the local system. Every
// field is best-effort: unreadable sources just drop their line.
func Builtin(noColor bool) []string {
	title := func(s string) string { return s }
	lab := func(s string) string { return s }
	if !noColor {
		title = func(s string) string { return titleStyle.Render(s) }
		lab = func(s string) string { return labelStyle.Render(s) }
	}

	user := os.Getenv("USER")
	host, _ := os.Hostname()
	head := user
	if host != "" {
		head += "@" + host
	}

	lines := []string{
		title(head),
		strings.Repeat("-", len(head)),
	}

	add := func(name, value string) {
		if value != "" {
			lines = append(lines, lab(name+":")+" "+value)
		}
	}

	add("OS", osName())
	add("Kernel", readTrimmed("/proc/sys/kernel/osrelease"))
	add("Uptime", uptime())
	add("Shell", os.Getenv("SHELL"))
	add("Terminal", os.Getenv("TERM"))
	add("Memory", memory())

	return lines
}

// osName extracts PRETTY_NAME from /etc/os-release.
func osName() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if val, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(val, `"`)
		}
	}
	return ""
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// uptime formats /proc/uptime as days/hours/minutes.
func uptime() string {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return ""
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return ""
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return ""
	}
	d := time.Duration(secs) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// memory reports used/total from /proc/meminfo.
func memory() string {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return ""
	}
	var totalKB, availKB int64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB, _ = strconv.ParseInt(fields[1], 10, 64)
		case "MemAvailable:":
			availKB, _ = strconv.ParseInt(fields[1], 10, 64)
		}
	}
	if totalKB == 0 {
		return ""
	}
	usedMiB := (totalKB - availKB) / 1024
	totalMiB := totalKB / 1024
	return fmt.Sprintf("%dMiB / %dMiB", usedMiB, totalMiB)
}
