package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weeksoflife/internal/common"
)

func TestGridPreferences_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prefs   GridPreferences
		wantErr bool
	}{
		{name: "defaults", prefs: DefaultGridPreferences()},
		{name: "min zoom", prefs: GridPreferences{ZoomLevel: 0.5, CellSize: 8}},
		{name: "max zoom", prefs: GridPreferences{ZoomLevel: 3, CellSize: 8}},
		{name: "zoom too small", prefs: GridPreferences{ZoomLevel: 0.1, CellSize: 8}, wantErr: true},
		{name: "zoom too large", prefs: GridPreferences{ZoomLevel: 4, CellSize: 8}, wantErr: true},
		{name: "zero cell", prefs: GridPreferences{ZoomLevel: 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.prefs)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, MinZoom, ClampZoom(0))
	assert.Equal(t, MaxZoom, ClampZoom(10))
	assert.Equal(t, 1.5, ClampZoom(1.5))
}

func TestGridDefaults_CoverTotalWeeks(t *testing.T) {
	assert.Equal(t, 4000, GridColumns*GridRows)
}
