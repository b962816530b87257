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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/gambit/internal/config"
	"github.com/frankkopp/gambit/internal/logging"
	"github.com/frankkopp/gambit/internal/movegen"
	"github.com/frankkopp/gambit/internal/position"
	"github.com/frankkopp/gambit/internal/uci"
	"github.com/frankkopp/gambit/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth on -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFen, "FEN used by -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	// The logging package creates its loggers in an init(), before
	// command line flags are parsed; set the standard logger's level now
	// that the real level is known.
	logging.GetLog()

	if *perftDepth > 0 {
		pos, err := position.NewPosition(*fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "malformed FEN %q: %v\n", *fen, err)
			os.Exit(1)
		}
		for d := 1; d <= *perftDepth; d++ {
			out.Printf("perft(%d) = %d\n", d, movegen.Perft(pos, d))
		}
		return
	}

	h := uci.NewHandler()
	h.Loop()
}

func printVersionInfo() {
	fmt.Printf("gambit %s\n", version.Version())
	fmt.Println("Environment:")
	fmt.Printf("  Using Go version %s\n", runtime.Version())
	fmt.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	fmt.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	fmt.Printf("  Working directory: %s\n", cwd)
}
