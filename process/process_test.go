package process

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAlive(t *testing.T) {
	t.Run("own process", func(t *testing.T) {
		assert.True(t, IsAlive(os.Getpid()))
	})

	t.Run("invalid pid", func(t *testing.T) {
		assert.False(t, IsAlive(0))
		assert.False(t, IsAlive(-1))
	})

	t.Run("exited process", func(t *testing.T) {
		cmd := exec.Command("true")
		require.NoError(t, cmd.Start())
		pid := cmd.Process.Pid
		require.NoError(t, cmd.Wait())
		assert.False(t, IsAlive(pid))
	})
}
