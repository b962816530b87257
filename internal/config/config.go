//
// gambit - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration, read from an
// optional TOML file and overlaid with built-in defaults.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/gambit/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless absolute.
var ConfFile = "./config.toml"

// LogLevel and SearchLogLevel are resolved once at Setup() time from the
// config file (or left at their init() defaults), then may be
// overridden again by command line flags in cmd/gambit.
var (
	LogLevel       = LogLevels["info"]
	SearchLogLevel = LogLevels["info"]
)

// Settings is the global configuration, populated by Setup().
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if present) over the built-in defaults
// set by this package's init functions: keys present in the file
// replace the defaults, keys absent keep them. Safe to call more than
// once; only the first call has an effect.
func Setup() {
	if initialized {
		return
	}

	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config: could not parse", path, ":", err)
		}
	}

	setupLogLevels()
	initialized = true
}

func setupLogLevels() {
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		SearchLogLevel = lvl
	}
}

// String renders the current configuration using reflection, the way an
// operator would dump it for diagnostics.
func (c *conf) String() string {
	var b strings.Builder
	dump(&b, "Search", reflect.ValueOf(&c.Search).Elem())
	dump(&b, "Eval", reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func dump(b *strings.Builder, section string, v reflect.Value) {
	b.WriteString(section)
	b.WriteString(" config:\n")
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "  %-24s %v\n", t.Field(i).Name, f.Interface())
	}
}
