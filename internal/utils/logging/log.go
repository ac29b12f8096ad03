// Package logging prints leveled messages to the console and mirrors
// them into a rotating log file once SetupLogging has run.
package logging

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"vidmeta/internal/domain/consts"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is the debug verbosity, set from the user's flags (0 - 3).
var Level int

var (
	mu       sync.Mutex
	loggable bool
	logger   *log.Logger
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file in the target directory.
func SetupLogging(targetDir string) error {
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, "vidmeta.log"),
		MaxSize:    1, // MB before rotation
		MaxBackups: 3,
		Compress:   true,
	}

	mu.Lock()
	defer mu.Unlock()

	logger = log.New(logFile, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// write mirrors a console message into the log file, stripping ANSI codes.
func write(msg string) {
	if loggable {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		logger.Print(ansiEscape.ReplaceAllString(msg, ""))
	}
}

func printMsg(tag, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := tag + fmt.Sprintf(format, args...) + "\n"
	fmt.Print(msg)
	write(msg)
	return msg
}

// E prints and logs an error message.
func E(format string, args ...any) string {
	return printMsg(consts.RedError, format, args...)
}

// W prints and logs a warning message.
func W(format string, args ...any) string {
	return printMsg(consts.YellowWarning, format, args...)
}

// S prints and logs a success message.
func S(format string, args ...any) string {
	return printMsg(consts.GreenSuccess, format, args...)
}

// I prints and logs an informational message.
func I(format string, args ...any) string {
	return printMsg(consts.BlueInfo, format, args...)
}

// P prints and logs a plain message with no tag.
func P(format string, args ...any) string {
	return printMsg("", format, args...)
}

// D prints and logs a debug message when the debug level is at or above l.
func D(l int, format string, args ...any) string {
	if l > Level || l == 0 {
		return ""
	}
	return printMsg(consts.YellowDebug, format, args...)
}
