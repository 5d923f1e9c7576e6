package chart_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
)

func TestDefaultTemplate_IsConsistent(t *testing.T) {
	byCode := make(map[string]chart.TemplateAccount)
	for _, a := range chart.DefaultTemplate() {
		_, err := chart.LevelOf(a.Code)
		require.NoError(t, err, a.Code)

		_, dup := byCode[a.Code]
		require.False(t, dup, "duplicate %s", a.Code)

		byCode[a.Code] = a
	}

	for code, a := range byCode {
		parent := chart.ParentCode(code)
		if parent == "" {
			continue
		}

		p, ok := byCode[parent]
		require.True(t, ok, "parent of %s missing", code)
		assert.Equal(t, p.Type, a.Type, code)
	}

	for _, group := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		assert.Contains(t, byCode, group)
	}
}

func TestReadTemplate(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    []chart.TemplateAccount
		wantErr error
	}

	tests := []testCase{
		{
			name:  "English",
			input: "code,title,type\n1,Assets,asset\n11,Cash,asset\n\n1101,Safe,asset\n",
			want: []chart.TemplateAccount{
				{Code: "1", Title: "Assets", Type: chart.TypeAsset},
				{Code: "11", Title: "Cash", Type: chart.TypeAsset},
				{Code: "1101", Title: "Safe", Type: chart.TypeAsset},
			},
		},
		{
			name:  "PersianSemicolon",
			input: "عنوان;کد;ماهیت\nدرآمدها;۶;درآمد\nفروش;۶۱;درآمد\n",
			want: []chart.TemplateAccount{
				{Code: "6", Title: "درآمدها", Type: chart.TypeIncome},
				{Code: "61", Title: "فروش", Type: chart.TypeIncome},
			},
		},
		{
			name:    "MissingColumn",
			input:   "code,title\n1,Assets\n",
			wantErr: chart.ErrInvalidTemplateRow,
		},
		{
			name:    "BadCode",
			input:   "code,title,type\n123,Assets,asset\n",
			wantErr: chart.ErrInvalidCode,
		},
		{
			name:    "UnknownType",
			input:   "code,title,type\n1,Assets,cash\n",
			wantErr: chart.ErrInvalidTemplateRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chart.ReadTemplate(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
