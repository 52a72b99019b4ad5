package stars

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenGodOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		day   kanshi.Stem
		other kanshi.Stem
		want  TenGod
	}{
		{name: "identical stem", day: kanshi.Kinoe, other: kanshi.Kinoe, want: Kanshaku},
		{name: "same element other polarity", day: kanshi.Kinoto, other: kanshi.Kinoe, want: Sekimon},
		{name: "wood generates fire", day: kanshi.Kinoe, other: kanshi.Hinoe, want: Hokaku},
		{name: "wood generates fire across polarity", day: kanshi.Kinoe, other: kanshi.Hinoto, want: Chojo},
		{name: "wood overcomes earth", day: kanshi.Kinoto, other: kanshi.Tsuchinoto, want: Rokuzon},
		{name: "wood overcomes earth across polarity", day: kanshi.Kinoto, other: kanshi.Tsuchinoe, want: Shiroku},
		{name: "metal overcomes wood", day: kanshi.Kinoe, other: kanshi.Kanoe, want: Shaki},
		{name: "metal overcomes wood across polarity", day: kanshi.Kinoe, other: kanshi.Kanoto, want: Kengyu},
		{name: "water generates wood", day: kanshi.Kinoto, other: kanshi.Mizunoto, want: Ryuko},
		{name: "water generates wood across polarity", day: kanshi.Kinoto, other: kanshi.Mizunoe, want: Gyokudo},
		{name: "wraps from water to wood", day: kanshi.Mizunoe, other: kanshi.Kinoe, want: Hokaku},
		{name: "fire day, wood other", day: kanshi.Hinoto, other: kanshi.Kinoto, want: Ryuko},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, TenGodOf(tc.day, tc.other))
		})
	}
}

func TestTenGodOfIsTotal(t *testing.T) {
	t.Parallel()

	// Each day stem meets every star exactly once across the ten stems.
	for _, day := range kanshi.Stems() {
		seen := make(map[TenGod]bool, TenGodCount)
		for _, other := range kanshi.Stems() {
			g := TenGodOf(day, other)
			assert.NotEqual(t, "?", g.String())
			seen[g] = true
		}
		assert.Len(t, seen, TenGodCount, "day stem %s", day)
	}
}

func TestTwelveStageOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		stem   kanshi.Stem
		branch kanshi.Branch
		want   TwelveStage
	}{
		{kanshi.Kinoe, kanshi.Rat, Tenkou},
		{kanshi.Kinoe, kanshi.Pig, Tenki},
		{kanshi.Kinoto, kanshi.Dragon, Tennan},
		{kanshi.Kinoto, kanshi.Rabbit, Tenroku},
		{kanshi.Kinoto, kanshi.Pig, Tenkyoku},
		{kanshi.Hinoe, kanshi.Rat, Tenpo},
		{kanshi.Hinoto, kanshi.Snake, Tensho},
		{kanshi.Kanoe, kanshi.Monkey, Tenroku},
		{kanshi.Kanoto, kanshi.Rooster, Tenroku},
		{kanshi.Mizunoe, kanshi.Pig, Tenroku},
		{kanshi.Mizunoto, kanshi.Rat, Tenroku},
	}

	for _, tc := range testCases {
		t.Run(tc.stem.String()+tc.branch.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, TwelveStageOf(tc.stem, tc.branch))
		})
	}
}

func TestTwelveStageTableIsCyclic(t *testing.T) {
	t.Parallel()

	// Positive stems advance one stage per branch, negative stems retreat.
	for _, stem := range kanshi.Stems() {
		step := 1
		if stem.Polarity() == kanshi.Negative {
			step = -1
		}
		first := TwelveStageOf(stem, kanshi.Rat)
		for _, b := range kanshi.Branches() {
			want := TwelveStage(((int(first)+step*int(b))%TwelveStageCount + TwelveStageCount) % TwelveStageCount)
			assert.Equal(t, want, TwelveStageOf(stem, b), "%s%s", stem, b)
		}
	}
}

func TestTwelveStageScores(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, Tensho.Score())
	assert.Equal(t, 1, Tenchi.Score())
	assert.Equal(t, 3, Tenpo.Score())
	assert.Equal(t, 0, TwelveStage(99).Score())

	scores := make(map[int]bool, TwelveStageCount)
	for s := TwelveStage(0); s < TwelveStageCount; s++ {
		scores[s.Score()] = true
		assert.NotEmpty(t, s.Keyword())
	}
	assert.Len(t, scores, TwelveStageCount, "scores are a permutation of 1..12")
}

func TestStarsMarshalAsGlyphs(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(struct {
		God   TenGod      `json:"god"`
		Stage TwelveStage `json:"stage"`
	}{Gyokudo, Tennan})
	require.NoError(t, err)
	assert.JSONEq(t, `{"god":"玉堂","stage":"天南"}`, string(out))
}
