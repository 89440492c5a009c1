package domain

import "strings"

// RecipeLine is one shell command of a target's recipe together with its
// execution modifiers. Modifiers are parsed once when the target is defined
// and are immutable afterwards.
type RecipeLine struct {
	// Command is the shell command template, with ${key} variable
	// placeholders still unexpanded.
	Command string

	// SuppressEcho skips printing the resolved command before running it.
	// Written as a leading "@" in the config file.
	SuppressEcho bool

	// IgnoreFailure lets a non-zero exit continue with the next line instead
	// of aborting the run. Written as a leading "-" in the config file.
	IgnoreFailure bool
}

// ParseRecipeLine strips the "@" and "-" modifier prefixes from a raw recipe
// line. The two prefixes may appear in either order, each at most once.
func ParseRecipeLine(raw string) RecipeLine {
	line := RecipeLine{}
	rest := strings.TrimLeft(raw, " \t")
	for {
		switch {
		case !line.SuppressEcho && strings.HasPrefix(rest, "@"):
			line.SuppressEcho = true
			rest = strings.TrimLeft(rest[1:], " \t")
		case !line.IgnoreFailure && strings.HasPrefix(rest, "-"):
			line.IgnoreFailure = true
			rest = strings.TrimLeft(rest[1:], " \t")
		default:
			line.Command = rest
			return line
		}
	}
}
