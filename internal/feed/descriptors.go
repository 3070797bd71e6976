package feed

import (
	"time"

	"github.com/google/uuid"
)

// SubEventRef carries the child-record fields that differ from the parent.
// Everything else (sim, day, season, game tags) is inherited at build time.
type SubEventRef struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
	Nuts    int       `json:"nuts"`
}

// PlayerRef names a player by id.
type PlayerRef struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

// PitcherRef names a pitcher by id.
type PitcherRef struct {
	PitcherID   uuid.UUID `json:"pitcherId"`
	PitcherName string    `json:"pitcherName"`
}

// Unscatter describes a player losing the Scattered mod at the top of a
// game event.
type Unscatter struct {
	SubEvent   SubEventRef `json:"subEvent"`
	TeamID     uuid.UUID   `json:"teamId"`
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
}

// GameRef is the game context every in-game occurrence carries.
type GameRef struct {
	GameID   uuid.UUID `json:"gameId"`
	HomeTeam uuid.UUID `json:"homeTeam"`
	AwayTeam uuid.UUID `json:"awayTeam"`
	Play     int64     `json:"play"`

	// Unscatter is set when a player was unscattered on this tick.
	Unscatter *Unscatter `json:"unscatter"`

	// AttractorSecretBase is set when an Attractor entered the Secret
	// Base on this tick.
	AttractorSecretBase *PlayerRef `json:"attractorSecretBase"`
}

// GamePitch carries the pitch-level prefix shared by the basic pitch
// outcomes.
type GamePitch struct {
	// DoubleStrike is the pitcher's name when a Double Strike was fired.
	DoubleStrike *string `json:"doubleStrike"`
}

// FreeRefill describes a player spending their Free Refill.
type FreeRefill struct {
	SubEvent   SubEventRef `json:"subEvent"`
	PlayerName string      `json:"playerName"`
	PlayerID   uuid.UUID   `json:"playerId"`

	// TeamID is null for ghosts who predate team ids on player objects.
	TeamID *uuid.UUID `json:"teamId"`
}

// ScoringPlayer is one run scored on an event.
type ScoringPlayer struct {
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
	ItemDamage *ItemDamage `json:"itemDamage"`
	Attraction *Attraction `json:"attraction"`
}

// Scores collects the scoring runners and the free refills spent on one
// event.
type Scores struct {
	Scores      []ScoringPlayer `json:"scores"`
	FreeRefills []FreeRefill    `json:"freeRefills"`
}

// ScorerIDs returns the scorer ids in description order.
func (s *Scores) ScorerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Scores))
	for _, p := range s.Scores {
		ids = append(ids, p.PlayerID)
	}
	return ids
}

// UsedRefill reports whether any free refill was spent.
func (s *Scores) UsedRefill() bool {
	return len(s.FreeRefills) > 0
}

// Score is the single-scorer variant used by walks and similar events.
type Score struct {
	Score       *ScoringPlayer `json:"score"`
	FreeRefills []FreeRefill   `json:"freeRefills"`
}

// ScorerIDs returns the scorer id when one exists.
func (s *Score) ScorerIDs() []uuid.UUID {
	if s.Score == nil {
		return nil
	}
	return []uuid.UUID{s.Score.PlayerID}
}

// UsedRefill reports whether any free refill was spent.
func (s *Score) UsedRefill() bool {
	return len(s.FreeRefills) > 0
}

// Inhabiting describes a ghost inhabiting the batter.
type Inhabiting struct {
	// SubEvent is null when the ghost already carried the Inhabiting mod.
	SubEvent *SubEventRef `json:"subEvent"`

	InhabitedPlayerName string    `json:"inhabitedPlayerName"`
	InhabitedPlayerID   uuid.UUID `json:"inhabitedPlayerId"`
	InhabitingPlayerID  uuid.UUID `json:"inhabitingPlayerId"`

	// InhabitingPlayerTeamID is null for ghosts without a recorded team.
	InhabitingPlayerTeamID *uuid.UUID `json:"inhabitingPlayerTeamId"`
}

// StoppedInhabiting describes a ghost losing the Inhabiting mod.
type StoppedInhabiting struct {
	SubEvent               SubEventRef `json:"subEvent"`
	InhabitingPlayerName   string      `json:"inhabitingPlayerName"`
	InhabitingPlayerID     uuid.UUID   `json:"inhabitingPlayerId"`
	InhabitingPlayerTeamID *uuid.UUID  `json:"inhabitingPlayerTeamId"`
}

// ModChange bundles the sub-event and team for a mod added, changed or
// removed on a player named elsewhere in the parent.
type ModChange struct {
	SubEvent SubEventRef `json:"subEvent"`
	TeamID   uuid.UUID   `json:"teamId"`
}

// ModChangeWithPlayer adds the player id when the parent does not carry
// it.
type ModChangeWithPlayer struct {
	SubEvent SubEventRef `json:"subEvent"`
	TeamID   uuid.UUID   `json:"teamId"`
	PlayerID uuid.UUID   `json:"playerId"`
}

// ModChangeWithNamedPlayer adds the player name as well.
type ModChangeWithNamedPlayer struct {
	SubEvent   SubEventRef `json:"subEvent"`
	TeamID     uuid.UUID   `json:"teamId"`
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
}

// TeamPerformingChanged describes a team gaining or losing Over/
// Underperforming from a subseasonal mod.
type TeamPerformingChanged struct {
	TeamNickname  string      `json:"teamNickname"`
	TeamID        uuid.UUID   `json:"teamId"`
	SourceModID   string      `json:"sourceModId"`
	SourceModName string      `json:"sourceModName"`
	WasAdded      bool        `json:"wasAdded"`
	SubEvent      SubEventRef `json:"subEvent"`
}

// SpicyStatus tracks the batter's Spicy progression.
type SpicyStatus struct {
	// HeatingUp is set when the batter is Heating Up.
	HeatingUp bool `json:"heatingUp"`

	// RedHot is set when the batter went Red Hot. The mod change is
	// sometimes absent on otherwise identical records.
	RedHot bool       `json:"redHot"`
	Mod    *ModChange `json:"mod"`
}

// IsSpecial reports whether the status flips the record to Special.
func (s SpicyStatus) IsSpecial() bool {
	return s.RedHot
}

// PlayerStatChange describes one player's rating moving.
type PlayerStatChange struct {
	TeamID       uuid.UUID   `json:"teamId"`
	PlayerID     uuid.UUID   `json:"playerId"`
	PlayerName   string      `json:"playerName"`
	RatingBefore float64     `json:"ratingBefore"`
	RatingAfter  float64     `json:"ratingAfter"`
	SubEvent     SubEventRef `json:"subEvent"`
}

// FeedbackPlayer is one side of a feedback swap.
type FeedbackPlayer struct {
	TeamID       uuid.UUID      `json:"teamId"`
	TeamNickname string         `json:"teamNickname"`
	PlayerID     uuid.UUID      `json:"playerId"`
	PlayerName   string         `json:"playerName"`
	Location     ActivePosition `json:"location"`
}

// PlayerReverb is one pairwise swap in a several-players reverb.
type PlayerReverb struct {
	FirstPlayerID           uuid.UUID      `json:"firstPlayerId"`
	FirstPlayerName         string         `json:"firstPlayerName"`
	FirstPlayerNewLocation  ActivePosition `json:"firstPlayerNewLocation"`
	SecondPlayerID          uuid.UUID      `json:"secondPlayerId"`
	SecondPlayerName        string         `json:"secondPlayerName"`
	SecondPlayerNewLocation ActivePosition `json:"secondPlayerNewLocation"`
	SubEvent                SubEventRef    `json:"subEvent"`
}

// ReverbKind is which roster segments a reverb shuffled.
type ReverbKind int

const (
	ReverbRotation ReverbKind = iota
	ReverbLineup
	ReverbFull
	ReverbSeveralPlayers
)

// ReverbEffect is one outcome in a several-players reverb: either a
// Repeating player staying put (tagged twice) or a pairwise swap.
type ReverbEffect struct {
	RepeatID *uuid.UUID    `json:"repeatId"`
	Swap     *PlayerReverb `json:"swap"`
}

// Reverb is the shuffle outcome of a reverb event.
type Reverb struct {
	Kind ReverbKind `json:"kind"`

	// SubEvent is set for rotation, lineup and full shuffles.
	SubEvent *SubEventRef `json:"subEvent"`

	// Effects is set for several-players reverbs.
	Effects []ReverbEffect `json:"effects"`
}

// Scattered describes a player gaining the Scattered mod on return.
type Scattered struct {
	ScatteredName string      `json:"scatteredName"`
	SubEvent      SubEventRef `json:"subEvent"`
}

// MultipleMods is a batch of mods added or removed by one sub-event.
type MultipleMods struct {
	ModIDs   []string    `json:"modIds"`
	SubEvent SubEventRef `json:"subEvent"`
}

// EchoResult describes one player receiving an Echo.
type EchoResult struct {
	ReceiverTeamID uuid.UUID     `json:"receiverTeamId"`
	ReceiverID     uuid.UUID     `json:"receiverId"`
	ReceiverName   string        `json:"receiverName"`
	ModsRemoved    *MultipleMods `json:"modsRemoved"`
	ModsAdded      MultipleMods  `json:"modsAdded"`
}

// StaticEcho describes a player echoing into static.
type StaticEcho struct {
	TeamID                  uuid.UUID   `json:"teamId"`
	TeamNickname            string      `json:"teamNickname"`
	PlayerID                uuid.UUID   `json:"playerId"`
	PlayerName              string      `json:"playerName"`
	RemovedFromTeamSubEvent SubEventRef `json:"removedFromTeamSubEvent"`
	ModChangedSubEvent      SubEventRef `json:"modChangedSubEvent"`
}

// TimeElsewhere is how long a player was Elsewhere, in days or whole
// seasons.
type TimeElsewhere struct {
	Seasons bool `json:"seasons"`
	Count   int  `json:"count"`
}

// ElsewhereReturnKind is which flavor of return-from-Elsewhere text fired.
type ElsewhereReturnKind int

const (
	// ElsewhereReturnFull is the normal return with time-elsewhere text.
	ElsewhereReturnFull ElsewhereReturnKind = iota

	// ElsewhereReturnShort is the terse return after salmon cannons or a
	// fled heist.
	ElsewhereReturnShort

	// ElsewhereReturnFalse is a no-op return on a Receiver.
	ElsewhereReturnFalse
)

// ElsewhereReturn describes a player returning from Elsewhere.
type ElsewhereReturn struct {
	Kind ElsewhereReturnKind `json:"kind"`

	// The fields below are unset on a false return.
	TeamID   *uuid.UUID   `json:"teamId"`
	PlayerID *uuid.UUID   `json:"playerId"`
	SubEvent *SubEventRef `json:"subEvent"`

	// TimeElsewhere and the optional extras only appear on full returns.
	TimeElsewhere          *TimeElsewhere    `json:"timeElsewhere"`
	Scattered              *Scattered        `json:"scattered"`
	RecongealedDifferently *PlayerStatChange `json:"recongealedDifferently"`
}

// TeamRunsLost is one team's runs washing away in a salmon swim.
type TeamRunsLost struct {
	RunsLost float64 `json:"runsLost"`
	TeamName string  `json:"teamName"`
}

// DetectiveActivity describes a detective entering a crime scene.
type DetectiveActivity struct {
	DetectiveID   uuid.UUID   `json:"detectiveId"`
	DetectiveName string      `json:"detectiveName"`
	SubEvent      SubEventRef `json:"subEvent"`
}

// BatterDebt describes Debt proccing on a fielded out.
type BatterDebt struct {
	BatterID  uuid.UUID `json:"batterId"`
	FielderID uuid.UUID `json:"fielderId"`

	// SubEvent is null when the fielder already carried the Observed mod.
	SubEvent *ModChange `json:"subEvent"`
}

// TogglePerforming describes a subseasonal mod toggling Over/
// Underperforming on one player.
type TogglePerforming struct {
	PlayerID         uuid.UUID   `json:"playerId"`
	TeamID           uuid.UUID   `json:"teamId"`
	PlayerName       string      `json:"playerName"`
	IsOverperforming bool        `json:"isOverperforming"`
	IsFirstProc      bool        `json:"isFirstProc"`
	SubEvent         SubEventRef `json:"subEvent"`
}

// GrindRailTrick is one trick on the grind rail.
type GrindRailTrick struct {
	TrickName string `json:"trickName"`
	Points    int    `json:"points"`
}

// GrindRailOutcome is how the second grind rail trick ended.
type GrindRailOutcome int

const (
	GrindRailSafe GrindRailOutcome = iota
	GrindRailTaggedOut
	GrindRailBailed
)

// ConsumerAttackEffect is the outcome of a consumer attack: a stat chomp
// or an item defense.
type ConsumerAttackEffect struct {
	// Chomp fields, set when the attack landed.
	RatingBefore *float64     `json:"ratingBefore"`
	RatingAfter  *float64     `json:"ratingAfter"`
	SubEvent     *SubEventRef `json:"subEvent"`

	// DefendedWithItem is set when an item absorbed the attack.
	DefendedWithItem *ItemDamage `json:"defendedWithItem"`
}

// ItemDamage describes an item losing health.
type ItemDamage struct {
	ItemID         uuid.UUID `json:"itemId"`
	ItemName       string    `json:"itemName"`
	ItemNamePlural *bool     `json:"itemNamePlural"`
	ItemMods       []string  `json:"itemMods"`
	Durability     int64     `json:"durability"`
	Health         int64     `json:"health"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64 `json:"playerRating"`

	TeamID   uuid.UUID   `json:"teamId"`
	PlayerID uuid.UUID   `json:"playerId"`
	SubEvent SubEventRef `json:"subEvent"`
}

// Broke reports whether the damage reduced the item to zero health.
func (d *ItemDamage) Broke() bool {
	return d.Health == 0
}

// ItemGained describes a player picking up an item.
type ItemGained struct {
	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64 `json:"playerRating"`

	TeamID   uuid.UUID   `json:"teamId"`
	PlayerID uuid.UUID   `json:"playerId"`
	SubEvent SubEventRef `json:"subEvent"`

	// DroppedItem is set when gaining this item pushed another one out.
	DroppedItem *ItemDropped `json:"droppedItem"`
}

// ItemRepaired describes an item regaining health.
type ItemRepaired struct {
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	ItemMods   []string  `json:"itemMods"`
	Durability int64     `json:"durability"`
	Health     int64     `json:"health"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64 `json:"playerRating"`

	TeamID     uuid.UUID   `json:"teamId"`
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
	SubEvent   SubEventRef `json:"subEvent"`
}

// ItemDropped describes the item discarded when a new one was gained.
type ItemDropped struct {
	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`

	ItemWasBroken bool        `json:"itemWasBroken"`
	SubEvent      SubEventRef `json:"subEvent"`
}

// PlayerMove describes a player changing teams.
type PlayerMove struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Location   Position  `json:"location"`

	PreviousTeamID       uuid.UUID `json:"previousTeamId"`
	PreviousTeamNickname string    `json:"previousTeamNickname"`
	NewTeamID            uuid.UUID `json:"newTeamId"`
	NewTeamNickname      string    `json:"newTeamNickname"`

	SubEvent SubEventRef `json:"subEvent"`
}

// Carcinization describes a black hole carcinizing a player onto the
// winning team.
type Carcinization struct {
	Move             PlayerMove  `json:"move"`
	NewTeamName      string      `json:"newTeamName"`
	ModAddedSubEvent SubEventRef `json:"modAddedSubEvent"`
}

// Attraction describes a team attracting a scoring player whose identity
// is stored alongside.
type Attraction struct {
	TeamNickname string      `json:"teamNickname"`
	TeamID       uuid.UUID   `json:"teamId"`
	SubEvent     SubEventRef `json:"subEvent"`
}

// NamedItemDamage is item damage on a player named only by the
// possessive in the damage line itself.
type NamedItemDamage struct {
	Name   string     `json:"name"`
	Damage ItemDamage `json:"damage"`
}

// AttractionWithPlayer carries the attracted player's identity too.
type AttractionWithPlayer struct {
	TeamNickname string      `json:"teamNickname"`
	TeamID       uuid.UUID   `json:"teamId"`
	PlayerName   string      `json:"playerName"`
	PlayerID     uuid.UUID   `json:"playerId"`
	SubEvent     SubEventRef `json:"subEvent"`
}

// ModDesc names a modifier and its duration.
type ModDesc struct {
	ModID       string      `json:"modId"`
	ModDuration ModDuration `json:"modDuration"`
}

