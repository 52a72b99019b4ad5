package stars

import "github.com/phrazzld/sanmei-api/internal/domain/kanshi"

// TwelveStage is one of the twelve minor stars, the life stage a stem passes
// through in a branch.
type TwelveStage int

// The twelve minor stars in life order.
const (
	Tenpo    TwelveStage = iota // 天報: fetus
	Tenin                       // 天印: infant
	Tenki                       // 天貴: child
	Tenkou                      // 天恍: adolescent
	Tennan                      // 天南: youth
	Tenroku                     // 天禄: adult
	Tensho                      // 天将: monarch
	Tendo                       // 天堂: elder
	Tenko                       // 天胡: sick
	Tenkyoku                    // 天極: dying
	Tenku                       // 天庫: grave
	Tenchi                      // 天馳: spirit
)

// TwelveStageCount is the number of minor stars.
const TwelveStageCount = 12

var stageInfo = [TwelveStageCount]struct {
	name    string
	score   int
	keyword string
}{
	Tenpo:    {"天報", 3, "001 オンリーワン"},
	Tenin:    {"天印", 6, "108 安心安全"},
	Tenki:    {"天貴", 9, "919 マネ学ぶ力"},
	Tenkou:   {"天恍", 7, "888 氣品"},
	Tennan:   {"天南", 10, "012 情報"},
	Tenroku:  {"天禄", 11, "100 完璧"},
	Tensho:   {"天将", 12, "555 頭角"},
	Tendo:    {"天堂", 8, "125 境界の力"},
	Tenko:    {"天胡", 4, "789 化ける"},
	Tenkyoku: {"天極", 2, "024 トコトン"},
	Tenku:    {"天庫", 5, "025 和を大切にする力"},
	Tenchi:   {"天馳", 1, "000 自由"},
}

func (s TwelveStage) String() string {
	if !s.valid() {
		return "?"
	}
	return stageInfo[s].name
}

// MarshalText implements encoding.TextMarshaler.
func (s TwelveStage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Score is the energy the stage contributes, 1 (天馳) through 12 (天将).
func (s TwelveStage) Score() int {
	if !s.valid() {
		return 0
	}
	return stageInfo[s].score
}

// Keyword is the numbered plain-language alias shown alongside the star.
func (s TwelveStage) Keyword() string {
	if !s.valid() {
		return ""
	}
	return stageInfo[s].keyword
}

func (s TwelveStage) valid() bool {
	return s >= 0 && int(s) < TwelveStageCount
}

// Short aliases keep the table below readable.
const (
	sPo  = Tenpo
	sIn  = Tenin
	sKi  = Tenki
	sKou = Tenkou
	sNan = Tennan
	sRo  = Tenroku
	sSho = Tensho
	sDo  = Tendo
	sKo  = Tenko
	sKyo = Tenkyoku
	sKu  = Tenku
	sChi = Tenchi
)

// stageTable[stem][branch], branches in order 子 丑 寅 卯 辰 巳 午 未 申 酉 戌 亥.
var stageTable = [kanshi.StemCount][kanshi.BranchCount]TwelveStage{
	kanshi.Kinoe:      {sKou, sNan, sRo, sSho, sDo, sKo, sKyo, sKu, sChi, sPo, sIn, sKi},
	kanshi.Kinoto:     {sKo, sDo, sSho, sRo, sNan, sKou, sKi, sIn, sPo, sChi, sKu, sKyo},
	kanshi.Hinoe:      {sPo, sIn, sKi, sKou, sNan, sRo, sSho, sDo, sKo, sKyo, sKu, sChi},
	kanshi.Hinoto:     {sChi, sKu, sKyo, sKo, sDo, sSho, sRo, sNan, sKou, sKi, sIn, sPo},
	kanshi.Tsuchinoe:  {sPo, sIn, sKi, sKou, sNan, sRo, sSho, sDo, sKo, sKyo, sKu, sChi},
	kanshi.Tsuchinoto: {sChi, sKu, sKyo, sKo, sDo, sSho, sRo, sNan, sKou, sKi, sIn, sPo},
	kanshi.Kanoe:      {sKyo, sKu, sChi, sPo, sIn, sKi, sKou, sNan, sRo, sSho, sDo, sKo},
	kanshi.Kanoto:     {sKi, sIn, sPo, sChi, sKu, sKyo, sKo, sDo, sSho, sRo, sNan, sKou},
	kanshi.Mizunoe:    {sSho, sDo, sKo, sKyo, sKu, sChi, sPo, sIn, sKi, sKou, sNan, sRo},
	kanshi.Mizunoto:   {sRo, sNan, sKou, sKi, sIn, sPo, sChi, sKu, sKyo, sKo, sDo, sSho},
}

// TwelveStageOf returns the stage of stem in branch.
func TwelveStageOf(stem kanshi.Stem, branch kanshi.Branch) TwelveStage {
	return stageTable[stem][branch]
}
