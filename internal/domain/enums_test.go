package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgentStatus(t *testing.T) {
	for _, s := range ValidStatuses() {
		got, err := ParseAgentStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, raw := range []string{"", "Bogus", "available", "WrapUp", "NotReady", " Active"} {
		_, err := ParseAgentStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, raw)
	}
}

func TestValidStatusesIsFresh(t *testing.T) {
	s := ValidStatuses()
	s[0] = "changed"
	assert.Equal(t, AgentStatusAvailable, ValidStatuses()[0])
	assert.Len(t, ValidStatuses(), 5)
}

func TestErrorKinds(t *testing.T) {
	var err error = &MissingFieldError{Field: "name"}
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrInvalidStatus))
	assert.Contains(t, err.Error(), "name")

	err = &InvalidStatusError{Value: "Bogus", Valid: ValidStatuses()}
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	assert.Contains(t, err.Error(), "Wrap Up")
}

func TestAgentClone(t *testing.T) {
	var nilAgent *Agent
	assert.Nil(t, nilAgent.Clone())

	a := &Agent{Code: "A001", Skills: []string{"Sales"}}
	b := a.Clone()
	b.Skills[0] = "Support"
	assert.Equal(t, "Sales", a.Skills[0])
}
