// Package xmain is the shared main for msv commands. It wires up logging,
// env backed flags, signal handling and exit codes.
package xmain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"github.com/Hebububu/msv/lib/log"
)

type RunFunc func(context.Context, *State) error

// ShutdownTimeout bounds how long run may take to return after a signal.
const ShutdownTimeout = time.Minute

func Main(run RunFunc) {
	name := ""
	args := []string(nil)
	if len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
		args = os.Args[1:]
	}

	ms := NewState(name, args, xos.NewEnv(os.Environ()))
	ms.Stdin = os.Stdin
	ms.Stdout = os.Stdout
	ms.Stderr = os.Stderr
	ms.Log = cmdlog.Log(ms.Env, os.Stderr)
	ms.Opts = NewOpts(ms.Env, ms.Log, args)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := ms.Main(context.Background(), sigs, run)
	code, msg := ExitCode(err)
	if msg != "" {
		ms.Log.Error.Print(msg)
	}
	os.Exit(code)
}

// NewState returns a State without any I/O attached. Main and tests fill in
// Stdin, Stdout, Stderr, Log and Opts.
func NewState(name string, args []string, env *xos.Env) *State {
	return &State{
		Name: name,
		Args: args,
		Env:  env,
	}
}

// ExitCode maps the error returned by a RunFunc to a process exit code and
// the message to print, if any.
func ExitCode(err error) (int, string) {
	if err == nil {
		return 0, ""
	}

	var eerr ExitError
	if errors.As(err, &eerr) {
		return eerr.Code, eerr.Message
	}
	var uerr UsageError
	if errors.As(err, &uerr) {
		return 1, fmt.Sprintf("%s\nRun with --help to see usage.", err)
	}
	return 1, err.Error()
}

type State struct {
	Name string
	Args []string

	Stdin  io.Reader
	Stdout io.WriteCloser
	Stderr io.WriteCloser

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts
}

func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-sigs:
		ms.Log.Warn.Printf("received signal %v: shutting down...", sig)
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("failed to shutdown: %w", err)
			}
			if sig == syscall.SIGTERM {
				return nil
			}
			return ExitError{Code: 1}
		case <-time.After(ShutdownTimeout):
			return ExitErrorf(1, "took longer than %v to shutdown: exiting forcefully", ShutdownTimeout)
		}
	}
}

// Debug reports whether $DEBUG is truthy.
func (ms *State) Debug() bool {
	return truthyEnv(ms.Env.Getenv("DEBUG"))
}

// LogContext attaches the library logger to ctx. Library logs are only
// shown with $DEBUG since the command logs through ms.Log.
func (ms *State) LogContext(ctx context.Context) context.Context {
	if !ms.Debug() || ms.Stderr == nil {
		return log.Discard(ctx)
	}
	l := slog.Make(sloghuman.Sink(ms.Stderr)).Leveled(slog.LevelDebug)
	return log.With(ctx, l)
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ExitErrorf(code int, msg string, v ...interface{}) ExitError {
	return ExitError{
		Code:    code,
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exiting with code %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// ReadPath reads fp, or stdin when fp is "-".
func (ms *State) ReadPath(fp string) ([]byte, error) {
	if fp == "-" {
		return ioutil.ReadAll(ms.Stdin)
	}
	return ioutil.ReadFile(fp)
}

// WritePath writes p to fp, or to stdout when fp is "-". Missing parent
// directories are created.
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		if err != nil {
			return err
		}
		return ms.Stdout.Close()
	}
	if dir := filepath.Dir(fp); dir != "." {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}
	return ioutil.WriteFile(fp, p, 0644)
}

// HumanPath shortens fp relative to the working directory or home for logs.
func (ms *State) HumanPath(fp string) string {
	if fp == "-" {
		return fp
	}
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, fp); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	if home := ms.Env.Getenv("HOME"); home != "" {
		if rel, err := filepath.Rel(home, fp); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.Join("~", rel)
		}
	}
	return fp
}
