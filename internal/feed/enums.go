package feed

import (
	"fmt"

	"github.com/calliehart/blasefeed/internal/errors"
)

// Being identifies which entity is speaking in a BigDeal record.
type Being int

const (
	BeingEmergencyAlert Being = -1
	BeingShelledOne     Being = 0
	BeingMonitor        Being = 1
	BeingCoin           Being = 2
	BeingReader         Being = 3
	BeingMicrophone     Being = 4
	BeingLootcrates     Being = 5
	BeingNamerifeht     Being = 6
)

// BeingFromValue converts the metadata "being" value.
func BeingFromValue(v int64) (Being, error) {
	if v < -1 || v > 6 {
		return 0, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown being",
			map[string]string{"value": fmt.Sprint(v)})
	}
	return Being(v), nil
}

// AttrCategory is the stat category named in party, peanut and blooddrain
// text.
type AttrCategory int

const (
	AttrBatting     AttrCategory = 0
	AttrPitching    AttrCategory = 1
	AttrDefense     AttrCategory = 2
	AttrBaserunning AttrCategory = 3
)

// String renders the category the way descriptions spell it.
func (c AttrCategory) String() string {
	switch c {
	case AttrBatting:
		return "hitting"
	case AttrPitching:
		return "pitching"
	case AttrDefense:
		return "defensive"
	case AttrBaserunning:
		return "baserunning"
	}
	return fmt.Sprintf("AttrCategory(%d)", int(c))
}

// MetadataType is the integer the category encodes to in mod metadata.
func (c AttrCategory) MetadataType() int64 {
	return int64(c)
}

// ModDuration is how long an added modifier lasts.
type ModDuration int64

const (
	ModPermanent ModDuration = 0
	ModSeasonal  ModDuration = 1
	ModWeekly    ModDuration = 2
	ModGame      ModDuration = 3
)

// String renders the duration the way descriptions spell it.
func (d ModDuration) String() string {
	switch d {
	case ModPermanent:
		return "permanent"
	case ModSeasonal:
		return "seasonal"
	case ModWeekly:
		return "weekly"
	case ModGame:
		return "game"
	}
	return fmt.Sprintf("ModDuration(%d)", int64(d))
}

// ModDurationFromValue converts the metadata "type" value.
func ModDurationFromValue(v int64) (ModDuration, error) {
	if v < 0 || v > 3 {
		return 0, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown mod duration",
			map[string]string{"value": fmt.Sprint(v)})
	}
	return ModDuration(v), nil
}

// ActivePosition is a position on the active roster.
type ActivePosition int64

const (
	PositionLineup   ActivePosition = 0
	PositionRotation ActivePosition = 1
)

// Location is the roster segment name ("lineup" or "rotation").
func (p ActivePosition) Location() string {
	if p == PositionRotation {
		return "rotation"
	}
	return "lineup"
}

// Role is the playing role name ("batting" or "pitching").
func (p ActivePosition) Role() string {
	if p == PositionRotation {
		return "pitching"
	}
	return "batting"
}

// ActivePositionFromValue converts a metadata location value.
func ActivePositionFromValue(v int64) (ActivePosition, error) {
	if v != 0 && v != 1 {
		return 0, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown active position",
			map[string]string{"value": fmt.Sprint(v)})
	}
	return ActivePosition(v), nil
}

// Position is any roster position, including the shadows.
type Position int64

const (
	PositionBench   Position = 2
	PositionBullpen Position = 3
)

// PositionFromValue converts a metadata location value.
func PositionFromValue(v int64) (Position, error) {
	if v < 0 || v > 3 {
		return 0, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown position",
			map[string]string{"value": fmt.Sprint(v)})
	}
	return Position(v), nil
}

// CoffeeBeanMod is the modifier toggled by a coffee bean.
type CoffeeBeanMod int

const (
	CoffeeWired CoffeeBeanMod = iota
	CoffeeTired
)

// ModID is the internal modifier id.
func (m CoffeeBeanMod) ModID() string {
	if m == CoffeeTired {
		return "TIRED"
	}
	return "WIRED"
}

// CoffeeBeanModFromID converts a metadata mod id.
func CoffeeBeanModFromID(id string) (CoffeeBeanMod, error) {
	switch id {
	case "WIRED":
		return CoffeeWired, nil
	case "TIRED":
		return CoffeeTired, nil
	}
	return 0, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown coffee bean mod",
		map[string]string{"value": id})
}

// HitType distinguishes the base hits.
type HitType int

const (
	HitSingle    HitType = 1
	HitDouble    HitType = 2
	HitTriple    HitType = 3
	HitQuadruple HitType = 4
)

// String renders the hit the way descriptions spell it.
func (h HitType) String() string {
	switch h {
	case HitSingle:
		return "Single"
	case HitDouble:
		return "Double"
	case HitTriple:
		return "Triple"
	case HitQuadruple:
		return "Quadruple"
	}
	return fmt.Sprintf("HitType(%d)", int(h))
}

// StrikeKind distinguishes the called strike flavors.
type StrikeKind int

const (
	StrikeLooking StrikeKind = iota
	StrikeSwinging
	StrikeFlinching
)

func (k StrikeKind) String() string {
	switch k {
	case StrikeSwinging:
		return "swinging"
	case StrikeFlinching:
		return "flinching"
	}
	return "looking"
}

// StrikeoutKind distinguishes looking from swinging.
type StrikeoutKind int

const (
	StrikeoutLooking StrikeoutKind = iota
	StrikeoutSwinging
)

func (k StrikeoutKind) String() string {
	if k == StrikeoutSwinging {
		return "swinging"
	}
	return "looking"
}

// HomeRunKind is the scoring flavor of a home run.
type HomeRunKind int

const (
	HomeRunSolo      HomeRunKind = 1
	HomeRunTwo       HomeRunKind = 2
	HomeRunThree     HomeRunKind = 3
	HomeRunGrandSlam HomeRunKind = 4
)

// String renders the home run the way descriptions spell it.
func (k HomeRunKind) String() string {
	switch k {
	case HomeRunSolo:
		return "solo home run"
	case HomeRunTwo:
		return "2-run home run"
	case HomeRunThree:
		return "3-run home run"
	case HomeRunGrandSlam:
		return "grand slam"
	}
	return fmt.Sprintf("HomeRunKind(%d)", int(k))
}

// Base is a numbered base in steal and advance text.
type Base int

const (
	BaseFirst  Base = 1
	BaseSecond Base = 2
	BaseThird  Base = 3
	BaseFourth Base = 4
	BaseFifth  Base = 5
)

// String renders the base the way descriptions spell it.
func (b Base) String() string {
	switch b {
	case BaseFirst:
		return "first"
	case BaseSecond:
		return "second"
	case BaseThird:
		return "third"
	case BaseFourth:
		return "fourth"
	case BaseFifth:
		return "fifth"
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// BlooddrainAction is what the sipper spends the drained blood on.
type BlooddrainAction int

const (
	BlooddrainAddBall BlooddrainAction = iota
	BlooddrainRemoveBall
	BlooddrainAddStrike
	BlooddrainRemoveStrike
	BlooddrainAddOut
	BlooddrainRemoveOut
)

// StatChangeCategory is the stat category in stat-change metadata. It
// uses a different numbering than AttrCategory.
type StatChangeCategory int64

const (
	StatChangeBatting     StatChangeCategory = 0
	StatChangePitching    StatChangeCategory = 1
	StatChangeBaserunning StatChangeCategory = 2
	StatChangeDefense     StatChangeCategory = 3
	StatChangeAll         StatChangeCategory = 4
)

// EchoChamberMod is what the Echo Chamber made a player do.
type EchoChamberMod int

const (
	EchoChamberRepeating EchoChamberMod = iota
	EchoChamberReverberating
)

func (m EchoChamberMod) String() string {
	if m == EchoChamberReverberating {
		return "Reverberating"
	}
	return "Repeating"
}

// ModID is the internal modifier id for the chamber's mod.
func (m EchoChamberMod) ModID() string {
	if m == EchoChamberReverberating {
		return "REVERBERATING"
	}
	return "REPEATING"
}
