package domain_test

import (
	"testing"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSelection(t *testing.T) {
	burger := cheeseburger()

	tests := []struct {
		name      string
		item      domain.MenuItem
		picks     map[string]string
		want      [][2]string
		wantError error
	}{
		{
			name: "no picks default to first choice: ok",
			item: burger,
			want: [][2]string{{"Size", "s1"}, {"Sides", "side1"}},
		},
		{
			name:  "partial picks keep declared group order: ok",
			item:  burger,
			picks: map[string]string{"Sides": "side2"},
			want:  [][2]string{{"Size", "s1"}, {"Sides", "side2"}},
		},
		{
			name: "item without groups: ok",
			item: fries(),
		},
		{
			name:      "unknown choice: error",
			item:      burger,
			picks:     map[string]string{"Size": "s9"},
			wantError: domain.ErrInvalidOption,
		},
		{
			name:      "unknown group: error",
			item:      burger,
			picks:     map[string]string{"Sauce": "s1"},
			wantError: domain.ErrInvalidOption,
		},
		{
			name:      "pick on item without groups: error",
			item:      fries(),
			picks:     map[string]string{"Size": "s1"},
			wantError: domain.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveSelection(tt.item, tt.picks)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			var pairs [][2]string
			for _, s := range got {
				pairs = append(pairs, [2]string{s.GroupName, s.Choice.ID})
			}
			assert.Equal(t, tt.want, pairs)
		})
	}
}

func TestSameSelection(t *testing.T) {
	a := domain.SelectedOption{GroupName: "Size", Choice: domain.Choice{ID: "s1", Name: "Regular"}}
	b := domain.SelectedOption{GroupName: "Sides", Choice: domain.Choice{ID: "side1"}}
	renamed := domain.SelectedOption{GroupName: "Size", Choice: domain.Choice{ID: "s1", Name: "Small"}}

	assert.True(t, domain.SameSelection(nil, nil))
	assert.True(t, domain.SameSelection(nil, []domain.SelectedOption{}))
	assert.True(t, domain.SameSelection([]domain.SelectedOption{a, b}, []domain.SelectedOption{renamed, b}))
	assert.False(t, domain.SameSelection([]domain.SelectedOption{a, b}, []domain.SelectedOption{b, a}))
	assert.False(t, domain.SameSelection([]domain.SelectedOption{a}, []domain.SelectedOption{a, b}))
}
