package chart

import (
	"testing"

	"github.com/phrazzld/sanmei-api/internal/domain/stars"
	"github.com/stretchr/testify/assert"
)

func TestBodyStars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		date [3]int
		main MainStars
		sub  SubStars
	}{
		{
			date: [3]int{1988, 3, 21},
			main: MainStars{Head: stars.Shiroku, Chest: stars.Kanshaku, Belly: stars.Kanshaku, LeftHand: stars.Shiroku, RightHand: stars.Gyokudo},
			sub:  SubStars{Early: stars.Tennan, Middle: stars.Tenroku, Late: stars.Tenkyoku},
		},
		{
			date: [3]int{1900, 1, 1},
			main: MainStars{Head: stars.Shiroku, Chest: stars.Gyokudo, Belly: stars.Hokaku, LeftHand: stars.Ryuko, RightHand: stars.Rokuzon},
			sub:  SubStars{Early: stars.Tenki, Middle: stars.Tenkou, Late: stars.Tenin},
		},
		{
			date: [3]int{2024, 6, 22},
			main: MainStars{Head: stars.Gyokudo, Chest: stars.Kanshaku, Belly: stars.Shiroku, LeftHand: stars.Chojo, RightHand: stars.Sekimon},
			sub:  SubStars{Early: stars.Tendo, Middle: stars.Tenroku, Late: stars.Tensho},
		},
	}

	for _, tc := range testCases {
		c := mustChart(t, tc.date[0], tc.date[1], tc.date[2])
		assert.Equal(t, tc.main, MainStarsOf(c), "%v", tc.date)
		assert.Equal(t, tc.sub, SubStarsOf(c), "%v", tc.date)
	}
}
