package lifecalc

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weeksoflife/internal/common"
)

func TestValidateBirthDate(t *testing.T) {
	now := day(2024, 6, 1)
	tests := []struct {
		name   string
		birth  time.Time
		reason string
	}{
		{name: "typical", birth: day(1990, 1, 1)},
		{name: "born today", birth: now},
		{name: "oldest accepted year", birth: day(1904, 1, 1)},
		{name: "tomorrow", birth: day(2024, 6, 2), reason: "Birth date cannot be in the future"},
		{name: "one second ahead", birth: now.Add(time.Second), reason: "Birth date cannot be in the future"},
		{name: "next year", birth: day(2025, 1, 1), reason: "Birth date cannot be in the future"},
		{name: "too early", birth: day(1900, 1, 1), reason: "Birth year cannot be before 1904"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := calcAt(now).ValidateBirthDate(tt.birth)
			if tt.reason == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.reason, ve.Reason)
			assert.Contains(t, err.Error(), "cannot")
		})
	}
}

func TestValidateBirthDate_CustomMaxAge(t *testing.T) {
	c := calcAt(day(2024, 6, 1), WithMaxAgeYears(50))

	err := c.ValidateBirthDate(day(1970, 1, 1))
	require.Error(t, err)
	assert.Equal(t, "Birth year cannot be before 1974", err.Error())

	require.NoError(t, c.ValidateBirthDate(day(1980, 1, 1)))
}
