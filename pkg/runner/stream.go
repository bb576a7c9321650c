package runner

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/vertti/medic-rust/internal/ulog"
)

// RunStreaming executes a command, forwarding each line of stdout and
// stderr to sink while the process runs.
//
// Each stream is read by its own goroutine so a process that fills one
// pipe while the other is idle never blocks. Lines from one stream reach
// sink in order; lines from different streams interleave arbitrarily.
// Calls to sink are serialized. Both readers finish before RunStreaming
// returns, and the returned Outcome also holds each stream in full.
func (r *RealRunner) RunStreaming(sink LineSink, name string, args ...string) (Outcome, error) {
	log := r.logger().With(ulog.Command(name, args))
	log.Debug("running streaming command")

	cmd := exec.Command(name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{}, &LaunchError{Name: name, Args: args, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Outcome{}, &LaunchError{Name: name, Args: args, Err: err}
	}

	if err := cmd.Start(); err != nil {
		log.Debug("command failed to launch", ulog.Error(err))
		return Outcome{}, &LaunchError{Name: name, Args: args, Err: err}
	}

	var mu sync.Mutex
	emit := func(line string) {
		if sink == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		sink(line)
	}

	var wg sync.WaitGroup
	var outText, errText strings.Builder
	wg.Add(2)
	go func() {
		defer wg.Done()
		drain(stdout, emit, &outText, log)
	}()
	go func() {
		defer wg.Done()
		drain(stderr, emit, &errText, log)
	}()

	// Wait closes the pipes, so every read must finish first.
	wg.Wait()
	outcome, err := classify(name, args, cmd.Wait())
	if err != nil {
		return Outcome{}, err
	}
	outcome.Stdout = outText.String()
	outcome.Stderr = errText.String()

	log.Debug("command finished", slog.Int("exit_code", outcome.ExitCode))
	return outcome, nil
}

// drain reads r until EOF, calling emit once per line and copying
// everything read into text. Lines are not length-limited.
func drain(r io.Reader, emit LineSink, text *strings.Builder, log *slog.Logger) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			text.WriteString(line)
			emit(strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				log.Debug("output stream read failed", ulog.Error(err))
			}
			return
		}
	}
}
