package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

func TestSessions_Lifecycle(t *testing.T) {
	s := NewSessions(NewMockRepository(), logger.NewNop(), WithForecastDays(3))

	sess := s.Create()
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.Dashboard)
	require.NotNil(t, sess.Historical)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, _, err = got.Dashboard.AddCity(context.Background(), "Paris", "")
	require.NoError(t, err)
	v := got.Dashboard.View("en")
	require.NotNil(t, v.Forecast)
	assert.Len(t, v.Forecast.Days, 3)

	assert.True(t, s.Delete(sess.ID))
	assert.False(t, s.Delete(sess.ID))
	_, err = s.Get(sess.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessions_AreIsolated(t *testing.T) {
	s := NewSessions(NewMockRepository(), logger.NewNop())
	a, b := s.Create(), s.Create()
	require.NotEqual(t, a.ID, b.ID)

	_, _, err := a.Dashboard.AddCity(context.Background(), "Paris", "")
	require.NoError(t, err)

	assert.Len(t, a.Dashboard.View("en").Countries, 1)
	assert.Empty(t, b.Dashboard.View("en").Countries)
}

func TestSessions_GetRejectsMalformedIDs(t *testing.T) {
	s := NewSessions(NewMockRepository(), logger.NewNop())

	for _, id := range []string{"", "not-a-uuid", "../etc"} {
		_, err := s.Get(id)
		assert.ErrorIs(t, err, models.ErrSessionNotFound, id)
	}

	_, err := s.Get("6f1c1b8e-3d1c-4b7a-9d0e-8f2a7c4b5e61")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessions_IdleSessionsExpire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)}
	s := NewSessions(NewMockRepository(), logger.NewNop()).WithLimits(0, time.Minute)
	s.now = clock.now

	a := s.Create()

	clock.advance(30 * time.Second)
	_, err := s.Get(a.ID)
	require.NoError(t, err)

	// The Get above counts as use, so the idle window restarts.
	clock.advance(45 * time.Second)
	_, err = s.Get(a.ID)
	require.NoError(t, err)

	clock.advance(61 * time.Second)
	_, err = s.Get(a.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestSessions_CreateSweepsIdleSessions(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)}
	s := NewSessions(NewMockRepository(), logger.NewNop()).WithLimits(0, time.Minute)
	s.now = clock.now

	s.Create()
	s.Create()
	require.Equal(t, 2, s.Len())

	clock.advance(2 * time.Minute)
	fresh := s.Create()
	assert.Equal(t, 1, s.Len())

	_, err := s.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSessions_CapEvictsLeastRecentlyUsed(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)}
	s := NewSessions(NewMockRepository(), logger.NewNop()).WithLimits(2, 0)
	s.now = clock.now

	a := s.Create()
	clock.advance(time.Second)
	b := s.Create()
	clock.advance(time.Second)
	_, err := s.Get(a.ID)
	require.NoError(t, err)
	clock.advance(time.Second)
	c := s.Create()

	assert.Equal(t, 2, s.Len())
	_, err = s.Get(b.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	for _, sess := range []*Session{a, c} {
		_, err := s.Get(sess.ID)
		assert.NoError(t, err)
	}
}

func TestSessions_NoLimitsByDefault(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)}
	s := NewSessions(NewMockRepository(), logger.NewNop())
	s.now = clock.now

	a := s.Create()
	for i := 0; i < 50; i++ {
		s.Create()
	}
	clock.advance(24 * 365 * time.Hour)

	_, err := s.Get(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, 51, s.Len())
}
