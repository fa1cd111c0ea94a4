package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)

	elapsed := p.Since(now.Add(-time.Minute))
	assert.GreaterOrEqual(t, elapsed.Std(), time.Minute)
}
