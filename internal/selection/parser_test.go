package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romforge/chdflow/internal/common"
)

func TestParse(t *testing.T) {
	folders := []string{"a", "b", "c", "d", "e", "f"}

	tests := []struct {
		name    string
		expr    string
		folders []string
		want    []string
		wantErr bool
	}{
		{
			name:    "all keyword",
			expr:    "all",
			folders: folders,
			want:    folders,
		},
		{
			name:    "all is case insensitive",
			expr:    "ALL",
			folders: folders,
			want:    folders,
		},
		{
			name:    "single index",
			expr:    "2",
			folders: folders,
			want:    []string{"c"},
		},
		{
			name:    "index and range",
			expr:    "1,3-5",
			folders: folders,
			want:    []string{"b", "d", "e", "f"},
		},
		{
			name:    "whitespace tolerated",
			expr:    " 1 , 3 - 4 ",
			folders: folders,
			want:    []string{"b", "d", "e"},
		},
		{
			name:    "out of bounds dropped silently",
			expr:    "1,9",
			folders: []string{"a", "b", "c", "d", "e"},
			want:    []string{"b"},
		},
		{
			name:    "range partially out of bounds",
			expr:    "4-9",
			folders: folders,
			want:    []string{"e", "f"},
		},
		{
			name:    "duplicates are kept",
			expr:    "2,2,1-2",
			folders: folders,
			want:    []string{"c", "c", "b", "c"},
		},
		{
			name:    "malformed range is fatal",
			expr:    "x-2",
			folders: folders,
			wantErr: true,
		},
		{
			name:    "malformed index is fatal",
			expr:    "1,two",
			folders: folders,
			wantErr: true,
		},
		{
			name:    "no partial recovery on mixed expression",
			expr:    "1,bogus,3",
			folders: folders,
			wantErr: true,
		},
		{
			name:    "empty expression is fatal",
			expr:    "",
			folders: folders,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr, tt.folders)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrMalformedSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
