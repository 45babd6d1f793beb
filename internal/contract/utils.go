package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Influence label constants.
const (
	CentralValue    = "Central"    // Central value
	ConnectedValue  = "Connected"  // Connected value
	PeripheralValue = "Peripheral" // Peripheral value
	FringeValue     = "Fringe"     // Fringe value
)

// Color variables for console output.
var (
	CentralColor    = color.New(color.FgRed, color.Bold)     // centralColor marks the structural core of the team.
	ConnectedColor  = color.New(color.FgMagenta, color.Bold) // connectedColor marks well-integrated members.
	PeripheralColor = color.New(color.FgYellow)              // peripheralColor marks lightly-connected members, not bold.
	FringeColor     = color.New(color.FgCyan)                // fringeColor marks near-isolated members.
)

// GetPlainLabel returns a plain text label indicating how central a member
// is, based on the influence score. This is the core logic used for CSV,
// JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.8:
		return CentralValue
	case score >= 0.5:
		return ConnectedValue
	case score >= 0.2:
		return PeripheralValue
	default:
		return FringeValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case CentralValue:
		return CentralColor.Sprint(text)
	case ConnectedValue:
		return ConnectedColor.Sprint(text)
	case PeripheralValue:
		return PeripheralColor.Sprint(text)
	default: // "Fringe"
		return FringeColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".teampulse_runs.db"
	}
	return filepath.Join(homeDir, ".teampulse_runs.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both the ellipsis and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
