package collector

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindAuto, false},
		{"auto", KindAuto, false},
		{"procfs", KindProcfs, false},
		{" PSUTIL ", KindPsutil, false},
		{"sysctl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		kind Kind
		goos string
		want Kind
	}{
		{KindAuto, "linux", KindProcfs},
		{KindAuto, "darwin", KindPsutil},
		{"", "freebsd", KindPsutil},
		{KindPsutil, "linux", KindPsutil},
		{KindProcfs, "darwin", KindProcfs},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.kind, tt.goos))
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Options{Kind: "bogus", Logger: logger.Noop()})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestSecondsToTicks(t *testing.T) {
	assert.Equal(t, uint64(0), secondsToTicks(0))
	assert.Equal(t, uint64(0), secondsToTicks(-1))
	assert.Equal(t, uint64(150), secondsToTicks(1.5))
	assert.Equal(t, uint64(1), secondsToTicks(0.006))
}

func TestPsutil_LiveHost(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("gopsutil process listing is not exercised on windows")
	}

	src := NewPsutil(logger.Noop())
	ctx := context.Background()

	procs, err := src.Processes(ctx)
	require.NoError(t, err)

	self := os.Getpid()
	found := false
	for _, p := range procs {
		if p.PID == self {
			found = true
			assert.NotZero(t, p.RSSBytes)
		}
	}
	assert.True(t, found, "own pid %d not listed", self)

	sys, _ := src.System(ctx)
	assert.NotZero(t, sys.MemTotalBytes)
	assert.Equal(t, uint64(100), src.TicksPerSecond())
}
