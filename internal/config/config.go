/*
 * kittygo - legal chess move generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 kittygo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds the engine's global, file-overridable settings:
// the log level and the default worker count for parallel perft. Settings
// are read once from an optional TOML file and may then be overridden by
// command-line flags.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel is the general log level, overridable by -loglvl on the CLI or
// by [log] log_level in the config file.
var LogLevel = 2

// Workers is the default worker pool size for parallel perft, overridable
// by -workers on the CLI or by [perft] workers in the config file. Zero
// means "use all available CPUs".
var Workers = 0

// Settings is the configuration tree read from the TOML config file.
var Settings conf

var initialized = false

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	LogLevel int `toml:"log_level"`
}

type perftConfiguration struct {
	Workers int `toml:"workers"`
}

// Setup reads path (if non-empty and the file exists) and applies any
// settings it carries over the compiled-in defaults. Calling it more than
// once is a no-op. An unreadable or malformed file is reported but is not
// fatal: the engine falls back to its defaults rather than refuse to run.
func Setup(path string) {
	if initialized {
		return
	}
	defer func() { initialized = true }()

	if path == "" {
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: " + err.Error())
		return
	}
	if Settings.Log.LogLevel != 0 {
		LogLevel = Settings.Log.LogLevel
	}
	if Settings.Perft.Workers != 0 {
		Workers = Settings.Perft.Workers
	}
}
