package paymentmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttemptStatus_Terminal(t *testing.T) {
	assert.False(t, AttemptInitiated.Terminal())
	for _, s := range []AttemptStatus{AttemptCompleted, AttemptFailed, AttemptCancelled} {
		assert.True(t, s.Terminal(), s)
	}
	assert.False(t, AttemptStatus("PENDING").Terminal())
}
