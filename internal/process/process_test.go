package process

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTake(t *testing.T) {
	s := Take()
	assert.NotNil(t, s)

	// The test binary itself is a Go process and must show up.
	assert.True(t, s.Running(os.Getpid()))
}

func TestRunningUnknownPID(t *testing.T) {
	s := Take()
	assert.False(t, s.Running(999999999))
}

func TestRunningWithName(t *testing.T) {
	s := Take()

	assert.False(t, s.RunningWithName(999999999, "routeguide"))

	// Right pid, wrong name: pid reuse by an unrelated binary must not
	// count as our server.
	assert.False(t, s.RunningWithName(os.Getpid(), "no-such-binary-name"))
}
