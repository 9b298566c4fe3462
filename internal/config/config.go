package config

import (
	"fmt"
	"strings"
)

// AttributePolicy decides how attributes that were set more than once are rendered
type AttributePolicy int

const (
	// AttrOverwrite renders every attribute once, at the position it was first set,
	// carrying its current value
	AttrOverwrite AttributePolicy = iota

	// AttrAppend renders one occurrence per set call (all carrying the current value)
	AttrAppend
)

func (p AttributePolicy) String() string {
	switch p {
	case AttrOverwrite:
		return "overwrite"
	case AttrAppend:
		return "append"
	}
	return fmt.Sprintf("AttributePolicy(%d)", int(p))
}

// Config holds the options for rendering markup and stylesheets
type Config struct {
	// Indent is the indent unit for pretty output; empty selects compact output
	Indent string

	// Offset is prepended to every line of pretty output; compact output
	// ignores it
	Offset string

	// Uppercase renders tag and attribute names as declared in the catalogue
	// (upper case); false lowercases them
	Uppercase bool

	// AttributePolicy controls rendering of attributes set more than once
	AttributePolicy AttributePolicy
}

// Default returns the compact configuration with upper case tag names
func Default() Config {
	return Config{
		Indent:          "",            // Compact output
		Offset:          "",            // No base offset
		Uppercase:       true,          // Names as declared
		AttributePolicy: AttrOverwrite, // One occurrence per attribute
	}
}

// Pretty reports whether output is indented
func (c Config) Pretty() bool {
	return c.Indent != ""
}

// Nested returns the configuration for content one level deeper
func (c Config) Nested() Config {
	c.Offset += c.Indent
	return c
}

// Compact returns c with pretty printing switched off
func (c Config) Compact() Config {
	c.Indent = ""
	c.Offset = ""
	return c
}

// Presets lists the names accepted by Preset
var Presets = []string{"compact", "pretty", "xhtml", "legacy"}

// Preset returns a named configuration
func Preset(name string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(name) {
	case "", "compact":
		return cfg, nil
	case "pretty":
		cfg.Indent = "    "
		return cfg, nil
	case "xhtml":
		// XHTML requires lower case names
		cfg.Uppercase = false
		cfg.Indent = "  "
		return cfg, nil
	case "legacy":
		// Every set call produces an attribute occurrence
		cfg.AttributePolicy = AttrAppend
		return cfg, nil
	}
	return cfg, fmt.Errorf("unknown preset: %s (valid: %s)", name, strings.Join(Presets, ", "))
}
