package shell

import (
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/presstools/core/errors"
	"github.com/presstools/core/logging"
	"github.com/presstools/core/process"
)

const (
	// DefaultStopGrace is how long Stop waits after SIGTERM before SIGKILL.
	DefaultStopGrace = 2 * time.Second

	// readerJoinTimeout bounds how long an execution waits for its stream
	// readers once the pipes report end-of-stream.
	readerJoinTimeout = 5 * time.Second

	// stopPollInterval is how often Stop re-checks a terminating process.
	stopPollInterval = 50 * time.Millisecond
)

// Shell executes sanitized command lines relative to a fixed working
// directory. One Shell is bound to one directory and shared by many callers;
// it is the only execution entry point in the repository, so execution policy
// (stderr classification, pipeline wiring, termination) lives in one place.
// Each Execute call is independent and synchronous: it returns only after the
// process (or pipeline) has exited and both output streams are fully drained.
type Shell struct {
	workDir  string
	executor Executor
	sink     LineSink
	baseEnv  map[string]string
	grace    time.Duration
	log      *logrus.Entry

	mu    sync.Mutex
	procs []*exec.Cmd
}

// Option configures a Shell.
type Option func(*Shell)

// WithExecutor replaces the process-creation strategy, typically for tests.
func WithExecutor(e Executor) Option {
	return func(s *Shell) { s.executor = e }
}

// WithSink attaches a live sink that receives each captured line as it is read.
func WithSink(sink LineSink) Option {
	return func(s *Shell) { s.sink = sink }
}

// WithBaseEnv sets environment entries applied to every execution, merged
// over the parent environment and under any per-call overlay. This is how
// the env section of press.yml reaches child processes.
func WithBaseEnv(env map[string]string) Option {
	return func(s *Shell) { s.baseEnv = env }
}

// WithStopGrace overrides the graceful-termination grace period.
func WithStopGrace(d time.Duration) Option {
	return func(s *Shell) { s.grace = d }
}

// WithLogger overrides the component logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Shell) { s.log = log }
}

// New creates a Shell bound to workDir.
func New(workDir string, opts ...Option) *Shell {
	s := &Shell{
		workDir:  workDir,
		executor: &RealExecutor{},
		grace:    DefaultStopGrace,
		log:      logging.NewLogger("shell"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WorkDir returns the working directory every execution runs in.
func (s *Shell) WorkDir() string {
	return s.workDir
}

// Execute parses and runs one command line with no environment overlay.
func (s *Shell) Execute(line string) (*Result, error) {
	return s.ExecuteEnv(line, nil)
}

// ExecuteEnv parses and runs one command line with the given environment
// overlay merged over the parent environment.
func (s *Shell) ExecuteEnv(line string, env map[string]string) (*Result, error) {
	cl, err := ParseCommandLine(line)
	if err != nil {
		return nil, err
	}
	return s.Run(cl, env)
}

// Run executes an already-parsed command line. Single-stage lines start one
// process; multi-stage lines start every stage with stage i's stdout wired to
// stage i+1's stdin through an OS pipe, so bytes never pass through user
// space and backpressure is preserved. Only the final stage's streams are
// captured. A process that cannot be started surfaces as a launch failure;
// it is never folded into the captured stderr.
func (s *Shell) Run(cl *CommandLine, env map[string]string) (*Result, error) {
	stages := cl.Stages()
	environ := mergeEnv(mergeEnv(os.Environ(), s.baseEnv), env)

	cmds := make([]*exec.Cmd, len(stages))
	for i, stage := range stages {
		cmd := s.executor.Command(stage[0], stage[1:]...)
		cmd.Dir = s.workDir
		cmd.Env = environ
		cmds[i] = cmd
	}

	pipes := make([]io.ReadCloser, len(cmds)-1)
	for i := 0; i < len(cmds)-1; i++ {
		pipe, err := cmds[i].StdoutPipe()
		if err != nil {
			return nil, errors.LaunchFailed(stages[i][0], err)
		}
		cmds[i+1].Stdin = pipe
		pipes[i] = pipe
	}

	last := cmds[len(cmds)-1]
	stdout, err := last.StdoutPipe()
	if err != nil {
		return nil, errors.LaunchFailed(stages[len(stages)-1][0], err)
	}
	stderr, err := last.StderrPipe()
	if err != nil {
		return nil, errors.LaunchFailed(stages[len(stages)-1][0], err)
	}

	// Stages register for Stop as soon as they start, so a stop request
	// arriving mid-launch still reaches every live process.
	defer s.setProcs(nil)
	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			s.reapStarted(cmds[:i])
			return nil, errors.LaunchFailed(stages[i][0], err)
		}
		s.addProc(cmd)
		if i > 0 {
			// The started stage owns its copy of the upstream pipe's read
			// end. Dropping the parent's copy here means the upstream writer
			// gets a broken pipe once this stage exits, instead of blocking
			// forever against a descriptor only the parent still holds.
			_ = pipes[i-1].Close()
		}
	}

	s.log.WithField("command", cl.String()).Debug("executing")
	res := collect(stdout, stderr, s.sink, readerJoinTimeout, s.log)

	// Reap every stage. A nonzero exit is not a launch failure: success is
	// classified from the captured stderr alone.
	for _, cmd := range cmds {
		if err := cmd.Wait(); err != nil {
			s.log.WithField("binary", cmd.Path).Debugf("process exited: %v", err)
		}
	}
	return res, nil
}

// Stop terminates every process of the in-flight execution: SIGTERM to each
// stage first, then SIGKILL for anything still alive after the grace period.
// Killing only the last stage would leave upstream stages writing into a
// closed pipe, so the two phases apply to the whole pipeline. Safe to call
// from a different goroutine than the one running Execute; the forced kill is
// logged, not escalated, since the kill is itself the recovery action.
func (s *Shell) Stop() {
	s.mu.Lock()
	var procs []*os.Process
	for _, cmd := range s.procs {
		if cmd.Process != nil {
			procs = append(procs, cmd.Process)
		}
	}
	s.mu.Unlock()

	for _, p := range procs {
		_ = p.Signal(syscall.SIGTERM)
	}

	deadline := time.Now().Add(s.grace)
	for _, p := range procs {
		for process.IsAlive(p.Pid) && time.Now().Before(deadline) {
			time.Sleep(stopPollInterval)
		}
		if process.IsAlive(p.Pid) {
			_ = p.Kill()
			s.log.WithField("pid", p.Pid).Warn("process ignored termination signal and was killed")
		}
	}
}

func (s *Shell) setProcs(cmds []*exec.Cmd) {
	s.mu.Lock()
	s.procs = cmds
	s.mu.Unlock()
}

func (s *Shell) addProc(cmd *exec.Cmd) {
	s.mu.Lock()
	s.procs = append(s.procs, cmd)
	s.mu.Unlock()
}

// reapStarted kills and reaps stages that were already running when a later
// stage failed to start.
func (s *Shell) reapStarted(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}
}

// mergeEnv merges an overlay into the parent environment. Overlay entries
// replace parent entries with the same key; remaining keys are appended in
// sorted order for determinism.
func mergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overlay))
	used := make(map[string]bool, len(overlay))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if val, ok := overlay[key]; ok {
			merged = append(merged, key+"="+val)
			used[key] = true
			continue
		}
		merged = append(merged, kv)
	}

	extra := make([]string, 0, len(overlay))
	for key, val := range overlay {
		if !used[key] {
			extra = append(extra, key+"="+val)
		}
	}
	sort.Strings(extra)
	return append(merged, extra...)
}
