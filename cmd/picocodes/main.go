/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command picocodes looks up PicoScope driver status and info codes and
// serves the registries over HTTP.
//
//	picocodes name 0x27              -> PICO_BUSY
//	picocodes value busy             -> 0x00000027
//	picocodes info cal_date          -> 0x00000005
//	picocodes enum A B C             -> A=0 B=1 C=2
//	picocodes dump [-format yaml|json]
//	picocodes verify [-format yaml|json] FILE
//	picocodes serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/enum"
	"dirpx.dev/picocodes/httpx"
	"dirpx.dev/picocodes/info"
	"dirpx.dev/picocodes/internal/config"
	"dirpx.dev/picocodes/internal/export"
	"dirpx.dev/picocodes/macro"
	"dirpx.dev/picocodes/mapper"
	"dirpx.dev/picocodes/status"
)

const usage = `usage: picocodes <command> [args]

commands:
  name VALUE        PICO_STATUS name for a decimal or 0x-hex value
  value NAME        PICO_STATUS value for a macro name
  info NAME         PICO_INFO value for a macro name
  enum NAME...      sequential numbering, as a C compiler assigns it
  dump              print both tables (-format yaml|json)
  verify FILE       compare a dumped table file with the compiled tables
  serve             run the HTTP lookup server (PICOCODES_* environment)
`

// exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitUnknown = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "name":
		return cmdName(rest, stdout, stderr)
	case "value":
		return cmdValue(rest, stdout, stderr, status.Value)
	case "info":
		return cmdValue(rest, stdout, stderr, info.Value)
	case "enum":
		return cmdEnum(rest, stdout)
	case "dump":
		return cmdDump(rest, stdout, stderr)
	case "verify":
		return cmdVerify(rest, stdout, stderr)
	case "serve":
		return cmdServe(stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "picocodes: unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}
}

func cmdName(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: picocodes name VALUE")
		return exitUsage
	}
	v, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %q is not a 32-bit unsigned value\n", args[0])
		return exitUsage
	}
	name, err := status.Name(uint32(v))
	if err != nil {
		return lookupFailed(stderr, err)
	}
	fmt.Fprintln(stdout, name)
	return exitOK
}

// cmdValue normalises loose input ("busy", "pico-busy") with package macro
// before the exact registry lookup.
func cmdValue(args []string, stdout, stderr io.Writer, lookup func(string) (uint32, error)) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: picocodes value|info NAME")
		return exitUsage
	}
	name, err := macro.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %q: %v\n", args[0], err)
		return exitUsage
	}
	v, err := lookup(name.String())
	if err != nil {
		return lookupFailed(stderr, err)
	}
	fmt.Fprintln(stdout, picocodes.Hex(v))
	return exitOK
}

func cmdEnum(args []string, stdout io.Writer) int {
	m := enum.Build(args...)
	seen := make(map[string]bool, len(m))
	for _, name := range args {
		if seen[name] {
			continue
		}
		seen[name] = true
		fmt.Fprintf(stdout, "%s=%d\n", name, m[name])
	}
	return exitOK
}

func cmdDump(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "yaml", "output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %v\n", err)
		return exitUsage
	}
	if err := export.Write(stdout, f, export.Snapshot()); err != nil {
		fmt.Fprintf(stderr, "picocodes: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func cmdVerify(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "input format: yaml or json (default: from file extension)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: picocodes verify [-format yaml|json] FILE")
		return exitUsage
	}
	path := fs.Arg(0)
	if *format == "" {
		*format = strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %v\n", err)
		return exitUsage
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %v\n", err)
		return exitFailure
	}
	defer file.Close()

	doc, err := export.Read(file, f)
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %s: %v\n", path, err)
		return exitFailure
	}
	mismatches := export.Verify(doc)
	for _, m := range mismatches {
		fmt.Fprintln(stdout, m)
	}
	if len(mismatches) > 0 {
		fmt.Fprintf(stderr, "picocodes: %s: %d mismatches\n", path, len(mismatches))
		return exitUnknown
	}
	fmt.Fprintf(stdout, "ok: %d status, %d info entries match\n", len(doc.Status), len(doc.Info))
	return exitOK
}

func cmdServe(stderr io.Writer) int {
	// Load .env if present; ignore error (file is optional).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "picocodes: %v\n", err)
		return exitUsage
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	m, err := mapper.New()
	if err != nil {
		logger.Error("build mapper", "error", err)
		return exitFailure
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpx.NewHandler(m, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("picocodes listening", "addr", cfg.Addr,
			"status_codes", status.Len(), "info_codes", info.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			return exitFailure
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
			return exitFailure
		}
	}
	return exitOK
}

func lookupFailed(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "picocodes: %v\n", err)
	if errors.Is(err, picocodes.ErrUnknownCode) {
		return exitUnknown
	}
	return exitFailure
}
