package shell

import "strings"

// Result is the immutable outcome of one execution: the captured output
// buffers of the final stage. Each captured line is newline-terminated in its
// buffer. Results are created by the collector, frozen once the execution
// completes, and never reused.
type Result struct {
	Stdout string
	Stderr string
}

// Successful reports whether the execution is considered to have succeeded.
// The classification is deliberately simple: any captured stderr means
// failure. Informational stderr chatter (see the "remote" carve-out in the
// collector) has already been rerouted to Stdout by the time a Result exists.
func (r *Result) Successful() bool {
	return r.Stderr == ""
}

// StdoutLines returns the captured standard output split into lines, without
// the trailing newline of each line.
func (r *Result) StdoutLines() []string {
	return splitLines(r.Stdout)
}

// StderrLines returns the captured error output split into lines.
func (r *Result) StderrLines() []string {
	return splitLines(r.Stderr)
}

func splitLines(buf string) []string {
	if buf == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(buf, "\n"), "\n")
}
