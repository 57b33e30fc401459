package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundSuffix(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "single suffix",
			fileName: "Crazy Taxi.iso",
			want:     ".iso",
		},
		{
			name:     "compound suffix",
			fileName: "game.state.auto",
			want:     ".state.auto",
		},
		{
			name:     "upper case is normalized",
			fileName: "DUMP.CUE",
			want:     ".cue",
		},
		{
			name:     "no suffix",
			fileName: "README",
			want:     "",
		},
		{
			name:     "hidden file without suffix",
			fileName: ".gitignore",
			want:     "",
		},
		{
			name:     "hidden file with suffix",
			fileName: ".config.yaml",
			want:     ".yaml",
		},
		{
			name:     "path is reduced to base name",
			fileName: "/roms/dc/game.state.auto",
			want:     ".state.auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompoundSuffix(tt.fileName))
		})
	}
}

func TestFinalSuffix(t *testing.T) {
	assert.Equal(t, ".auto", FinalSuffix("game.state.auto"))
	assert.Equal(t, ".iso", FinalSuffix("Crazy Taxi.ISO"))
	assert.Equal(t, "", FinalSuffix("README"))
	assert.Equal(t, "", FinalSuffix(".gitignore"))
}
