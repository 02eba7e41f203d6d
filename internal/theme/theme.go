// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme holds the appearance configuration for progress renderers.
// Themes are plain data loaded from YAML; fields left unset in the file
// fall back to the defaults.
package theme

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var (
	// ErrReadTheme is returned when the theme file cannot be read.
	ErrReadTheme = fmt.Errorf("failed to read theme file")
	// ErrParseTheme is returned when the theme file is not valid YAML.
	ErrParseTheme = fmt.Errorf("failed to parse theme file")
)

// FsFactory returns the filesystem used to read theme files.
// It is a package variable so tests can substitute an in-memory fs.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Theme describes how a progress indicator is drawn.
type Theme struct {
	// Saucer is the glyph for the filled portion of the bar.
	Saucer string `yaml:"saucer"`
	// SaucerHead is the glyph at the leading edge of the bar.
	SaucerHead string `yaml:"saucer_head"`
	// SaucerPadding is the glyph for the unfilled portion of the bar.
	SaucerPadding string `yaml:"saucer_padding"`
	// BarStart and BarEnd bracket the bar.
	BarStart string `yaml:"bar_start"`
	BarEnd   string `yaml:"bar_end"`
	// Width is the bar width in cells.
	Width int `yaml:"width"`
	// Color toggles color output.
	Color bool `yaml:"color"`
	// GradientStart and GradientEnd are the hex colors used by the TUI bar.
	GradientStart string `yaml:"gradient_start"`
	GradientEnd   string `yaml:"gradient_end"`
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Saucer:        "#",
		SaucerHead:    ">",
		SaucerPadding: "-",
		BarStart:      "[",
		BarEnd:        "]",
		Width:         40,
		Color:         true,
		GradientStart: "#5A56E0",
		GradientEnd:   "#EE6FF8",
	}
}

// Load reads a theme from path. The file only needs to set the fields it
// wants to change; everything else keeps its default value.
func Load(path string) (Theme, error) {
	fs := FsFactory()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %s", ErrReadTheme, path)
	}

	th := Default()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return Default(), fmt.Errorf("%w: %s", ErrParseTheme, err.Error())
	}

	return th, nil
}
