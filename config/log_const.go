package config

import "github.com/fatih/color"

// Color constants for subsystem loggers
const (
	ColorGreen   = color.FgGreen
	ColorBlue    = color.FgBlue
	ColorMagenta = color.FgMagenta
	ColorCyan    = color.FgCyan
	ColorYellow  = color.FgYellow
)

// Color constants for log levels
const (
	LogErrorColor   = color.FgRed
	LogWarningColor = color.FgYellow
	LogInfoColor    = color.FgGreen
	LogDebugColor   = color.FgHiBlack
)
