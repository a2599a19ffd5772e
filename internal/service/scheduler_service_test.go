package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("09:05")
	require.NoError(t, err)
	assert.Equal(t, "0 5 9 * * *", spec)

	spec, err = buildDailySpec(" 23:59 ")
	require.NoError(t, err)
	assert.Equal(t, "0 59 23 * * *", spec)

	for _, bad := range []string{"", "9", "24:00", "12:60", "aa:bb", "1:2:3"} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestScheduler_RegistersJobs(t *testing.T) {
	s := NewSchedulerService(time.UTC)

	_, err := s.Every(0, func() {})
	assert.Error(t, err)
	_, err = s.DailyAt("25:00", func() {})
	assert.Error(t, err)
	assert.Zero(t, s.Jobs())

	_, err = s.Every(30*time.Minute, func() {})
	require.NoError(t, err)
	_, err = s.DailyAt("08:00", func() {})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Jobs())
}

func TestScheduler_RunsIntervalJob(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	fired := make(chan struct{}, 1)

	_, err := s.Every(500*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("interval job did not run")
	}
}
