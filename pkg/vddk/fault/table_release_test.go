//go:build vddk_release

package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseTableIsInert(t *testing.T) {
	assert.False(t, Instrumented)
	assert.False(t, Set(SANStartIOError, true, 1))
	enabled, code := IsEnabled(SANStartIOError)
	assert.False(t, enabled)
	assert.Zero(t, code)
	assert.Empty(t, Snapshot())
}
