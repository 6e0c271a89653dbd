package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession bool

func (f fakeSession) IsAuthenticated() bool { return bool(f) }

func TestCheck(t *testing.T) {
	assert.Equal(t, Allow, Check(fakeSession(true)))
	assert.Equal(t, RedirectLogin, Check(fakeSession(false)))
}

func TestCheck_ReEvaluatesEveryCall(t *testing.T) {
	state := fakeSession(true)
	assert.Equal(t, Allow, Check(state))

	state = false
	assert.Equal(t, RedirectLogin, Check(state), "no caching between navigations")
}
