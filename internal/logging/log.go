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

// Package logging is a thin helper around "github.com/op/go-logging" that
// hands out the engine's three named loggers already wired to a
// standard backend and format, so call sites never repeat the
// backend/formatter boilerplate.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/gambit/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard logger, leveled from config.LogLevel.
func GetLog() *logging.Logger {
	return withStdoutBackend(standardLog, standardFormat, config.LogLevel)
}

// GetSearchLog returns the search logger, leveled from
// config.SearchLogLevel so search tracing can be tuned independently of
// the rest of the engine.
func GetSearchLog() *logging.Logger {
	return withStdoutBackend(searchLog, standardFormat, config.SearchLogLevel)
}

// GetUciLog returns the logger used for raw UCI protocol traffic.
func GetUciLog() *logging.Logger {
	return withStdoutBackend(uciLog, uciFormat, config.LogLevels["debug"])
}

func withStdoutBackend(l *logging.Logger, format logging.Formatter, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}
