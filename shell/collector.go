package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LineSink receives each captured line as it is read, tagged as error or
// non-error, for real-time display. Sinks are called from the reader
// goroutines and must be safe for concurrent use across the two streams.
type LineSink interface {
	Line(line string, isError bool)
}

// maxLineSize bounds a single captured line. WP-CLI JSON dumps can get long.
const maxLineSize = 1024 * 1024

// drained is the private buffer owned by one reader goroutine. out holds
// lines destined for the stdout buffer, errs lines destined for the stderr
// buffer. Each goroutine owns its drained value exclusively; the buffers meet
// only when joined into the Result.
type drained struct {
	out  []string
	errs []string
}

// collect drains stdout and stderr concurrently, using one goroutine per
// stream. Concurrent draining is mandatory: reading the streams sequentially
// deadlocks once either OS pipe buffer fills while the process blocks writing
// to the other. Readers are joined with a bounded timeout so a stuck reader
// cannot hang the caller indefinitely.
func collect(stdout, stderr io.Reader, sink LineSink, joinTimeout time.Duration, log *logrus.Entry) *Result {
	outCh := make(chan drained, 1)
	errCh := make(chan drained, 1)

	go func() { outCh <- drainStdout(stdout, sink) }()
	go func() { errCh <- drainStderr(stderr, sink) }()

	outD, ok := await(outCh, joinTimeout)
	if !ok {
		log.Warn("stdout reader did not finish within join timeout")
	}
	errD, ok := await(errCh, joinTimeout)
	if !ok {
		log.Warn("stderr reader did not finish within join timeout")
	}

	var stdoutBuf, stderrBuf strings.Builder
	appendLines(&stdoutBuf, outD.out)
	appendLines(&stdoutBuf, errD.out)
	appendLines(&stderrBuf, outD.errs)
	appendLines(&stderrBuf, errD.errs)

	return &Result{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}
}

// drainStdout reads standard output line by line into its own buffer,
// forwarding each line to the sink as non-error.
func drainStdout(r io.Reader, sink LineSink) drained {
	var d drained
	sc := newLineScanner(r)
	for sc.Scan() {
		line := sc.Text()
		d.out = append(d.out, line)
		if sink != nil {
			sink.Line(line, false)
		}
	}
	if err := sc.Err(); err != nil {
		// Best-effort capture: record the read failure and keep what we have.
		d.errs = append(d.errs, fmt.Sprintf("error reading stdout: %v", err))
	}
	return d
}

// drainStderr reads standard error line by line. Lines containing "remote"
// are reclassified as informational output: git reports clone/push progress
// on stderr prefixed with "remote:", and treating that as failure would mark
// every remote operation broken. The rule is a heuristic tuned for git and
// can misclassify a genuine error that happens to contain the substring.
func drainStderr(r io.Reader, sink LineSink) drained {
	var d drained
	sc := newLineScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, "remote") {
			d.out = append(d.out, line)
			if sink != nil {
				sink.Line(line, false)
			}
			continue
		}
		d.errs = append(d.errs, line)
		if sink != nil {
			sink.Line(line, true)
		}
	}
	if err := sc.Err(); err != nil {
		d.errs = append(d.errs, fmt.Sprintf("error reading stderr: %v", err))
	}
	return d
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return sc
}

func await(ch <-chan drained, timeout time.Duration) (drained, bool) {
	select {
	case d := <-ch:
		return d, true
	case <-time.After(timeout):
		return drained{}, false
	}
}

func appendLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
