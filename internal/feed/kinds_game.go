package feed

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/textparse"
	"github.com/calliehart/blasefeed/internal/wire"
)

// takeRest consumes and returns everything left in the scanner.
func takeRest(s *textparse.Scanner) string {
	rest := s.Rest()
	s.Reset(s.Pos() + len(rest))
	return rest
}

// parseNamedBase reads a spelled-out base name.
func (c *cursor) parseNamedBase() (Base, error) {
	for _, b := range []Base{BaseFirst, BaseSecond, BaseThird, BaseFourth, BaseFifth} {
		if c.scan.TryTag(b.String()) {
			return b, nil
		}
	}
	return 0, c.descErr(c.scan.Tag("a base name"))
}

// GameStart is the Let's Go record that opens a game.
type GameStart struct {
	Game      GameRef      `json:"game"`
	Weather   wire.Weather `json:"weather"`
	StadiumID *uuid.UUID   `json:"stadiumId"`
}

func parseGameStart(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("Let's Go!"); err != nil {
		return nil, c.descErr(err)
	}
	p := &GameStart{Game: game}
	for key, want := range map[string]uuid.UUID{"away": game.AwayTeam, "home": game.HomeTeam} {
		id, err := c.metaUUID(key)
		if err != nil {
			return nil, err
		}
		if id != want {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "team metadata does not match team tags",
				c.tagMeta(map[string]string{"key": key}))
		}
	}
	weather, err := c.metaInt("weather")
	if err != nil {
		return nil, err
	}
	p.Weather = wire.Weather(weather)
	if !wire.KnownWeather(p.Weather) {
		return nil, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown weather",
			c.tagMeta(map[string]string{"value": strconv.FormatInt(weather, 10)}))
	}
	if c.hasMeta("stadium") {
		id, err := c.metaUUID("stadium")
		if err != nil {
			return nil, err
		}
		p.StadiumID = &id
	}
	return p, c.finish()
}

func (p *GameStart) buildInto(b *builder) wire.Record {
	b.pushDescription("Let's Go!")
	b.pushMetaUUID("home", p.Game.HomeTeam)
	b.pushMetaUUID("away", p.Game.AwayTeam)
	b.setGame(p.Game)
	b.pushMetaInt("weather", int64(p.Weather))
	if p.StadiumID != nil {
		b.pushMetaUUID("stadium", *p.StadiumID)
	}
	return b.build(wire.LetsGo)
}

// PlayBall is the record that starts play.
type PlayBall struct {
	Game GameRef `json:"game"`
}

func parsePlayBall(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("Play ball!"); err != nil {
		return nil, c.descErr(err)
	}
	return &PlayBall{Game: game}, c.finish()
}

func (p *PlayBall) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription("Play ball!")
	return b.build(wire.PlayBall)
}

// HalfInningStart announces the top or bottom of an inning.
type HalfInningStart struct {
	Game            GameRef          `json:"game"`
	TopOfInning     bool             `json:"topOfInning"`
	Inning          int              `json:"inning"`
	BattingTeamName string           `json:"battingTeamName"`
	SubseasonalMods []SubseasonalMod `json:"subseasonalMods"`
}

func parseHalfInningStart(c *cursor, season int) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HalfInningStart{Game: game}
	if p.SubseasonalMods, err = c.parseSubseasonalMods(season); err != nil {
		return nil, err
	}
	switch {
	case c.scan.TryTag("Top of "):
		p.TopOfInning = true
	case c.scan.TryTag("Bottom of "):
	default:
		return nil, c.descErr(c.scan.Tag("Top of "))
	}
	if p.Inning, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(", "); err != nil {
		return nil, c.descErr(err)
	}
	if p.BattingTeamName, err = c.scan.Terminated(" batting."); err != nil {
		return nil, c.descErr(err)
	}
	if !isKnownTeamName(p.BattingTeamName) {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "unknown batting team",
			c.tagMeta(map[string]string{"team": p.BattingTeamName}))
	}
	return p, c.finish()
}

func (p *HalfInningStart) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushSubseasonalMods(p.SubseasonalMods, b.rec.Season)
	half := "Bottom"
	if p.TopOfInning {
		half = "Top"
	}
	b.pushDescription(half + " of " + strconv.Itoa(p.Inning) + ", " + p.BattingTeamName + " batting.")
	return b.build(wire.HalfInning)
}

// PitcherChange swaps in a new pitcher mid-game.
type PitcherChange struct {
	Game         GameRef   `json:"game"`
	TeamNickname string    `json:"teamNickname"`
	PitcherID    uuid.UUID `json:"pitcherId"`
	PitcherName  string    `json:"pitcherName"`
}

func parsePitcherChange(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &PitcherChange{Game: game}
	if p.PitcherName, err = c.scan.Terminated(" is now pitching for the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if !isKnownTeamNickname(p.TeamNickname) {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "unknown team nickname",
			c.tagMeta(map[string]string{"team": p.TeamNickname}))
	}
	if p.PitcherID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PitcherChange) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription(p.PitcherName + " is now pitching for the " + p.TeamNickname + ".")
	b.pushPlayerTag(p.PitcherID)
	return b.build(wire.PitcherChange)
}

// BatterUpEvent announces the next batter, with the Haunted and Repeating
// decorations it can carry.
type BatterUpEvent struct {
	Game         GameRef `json:"game"`
	BatterName   string  `json:"batterName"`
	TeamNickname string  `json:"teamNickname"`

	// WieldingItem is the held item named in the text, when any.
	WieldingItem *string `json:"wieldingItem"`

	Inhabiting  *Inhabiting `json:"inhabiting"`
	IsRepeating bool        `json:"isRepeating"`
}

func parseBatterUp(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BatterUpEvent{Game: game}

	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" is Repeating!\n"); err == nil {
		p.BatterName = name
		p.IsRepeating = true
	} else {
		c.scan.Reset(pos)
	}

	pos = c.scan.Pos()
	var inhabitedName string
	if batter, err := c.scan.Terminated(" is Inhabiting "); err == nil {
		ghost, err := c.scan.Terminated("!\n")
		if err != nil {
			return nil, c.descErr(err)
		}
		if err := c.scan.Tag(batter + " batting for the "); err != nil {
			return nil, c.descErr(err)
		}
		p.BatterName = batter
		inhabitedName = ghost
	} else {
		c.scan.Reset(pos)
		batter, err := c.scan.Terminated(" batting for the ")
		if err != nil {
			return nil, c.descErr(err)
		}
		if p.IsRepeating && batter != p.BatterName {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "repeating batter name mismatch",
				c.tagMeta(nil))
		}
		p.BatterName = batter
	}

	rest := restOfLine(c.scan)
	idx := strings.IndexAny(rest, ",.")
	if idx < 0 {
		return nil, c.descErr(c.scan.Tag("a team name"))
	}
	p.TeamNickname = rest[:idx]
	if err := c.scan.Tag(p.TeamNickname); err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag(", wielding ") {
		item, ok := strings.CutSuffix(takeRest(c.scan), ".")
		if !ok {
			return nil, c.descErr(c.scan.Tag("."))
		}
		p.WieldingItem = &item
	} else if err := c.scan.Tag("."); err != nil {
		return nil, c.descErr(err)
	}

	if inhabitedName != "" {
		inhabiting := &Inhabiting{InhabitedPlayerName: inhabitedName}
		if child, ok := c.nextChildIfModEffect(wire.AddedMod, "INHABITING"); ok {
			if err := child.scan.Tag(p.BatterName + " is Inhabiting " + inhabitedName + "!"); err != nil {
				return nil, child.descErr(err)
			}
			sub := child.subEvent()
			inhabiting.SubEvent = &sub
			if _, err := child.nextPlayerID(); err != nil {
				return nil, err
			}
			if child.hasTeamTags() {
				teamID, err := child.nextTeamID()
				if err != nil {
					return nil, err
				}
				inhabiting.InhabitingPlayerTeamID = &teamID
			}
			if err := finishModEffect(child); err != nil {
				return nil, err
			}
		}
		if inhabiting.InhabitingPlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if inhabiting.InhabitedPlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		p.Inhabiting = inhabiting
	}
	return p, c.finish()
}

func (p *BatterUpEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Inhabiting != nil || p.IsRepeating))
	if p.IsRepeating {
		b.pushDescription(p.BatterName + " is Repeating!")
	}
	suffix := "."
	if p.WieldingItem != nil {
		suffix = ", wielding " + *p.WieldingItem + "."
	}
	if inh := p.Inhabiting; inh != nil {
		b.pushDescription(p.BatterName + " is Inhabiting " + inh.InhabitedPlayerName + "!")
		b.pushDescription(p.BatterName + " batting for the " + p.TeamNickname + suffix)
		b.pushPlayerTag(inh.InhabitingPlayerID)
		b.pushPlayerTag(inh.InhabitedPlayerID)
		if inh.SubEvent != nil {
			b.pushModEffect(*inh.SubEvent, wire.AddedMod,
				p.BatterName+" is Inhabiting "+inh.InhabitedPlayerName+"!",
				inh.InhabitingPlayerTeamID, inh.InhabitingPlayerID, "INHABITING", 0)
		}
	} else {
		b.pushDescription(p.BatterName + " batting for the " + p.TeamNickname + suffix)
	}
	return b.build(wire.BatterUp)
}

// BallEvent is a called ball.
type BallEvent struct {
	Game             GameRef          `json:"game"`
	Pitch            GamePitch        `json:"pitch"`
	Balls            int              `json:"balls"`
	Strikes          int              `json:"strikes"`
	BatterItemDamage *NamedItemDamage `json:"batterItemDamage"`
}

func parseBall(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BallEvent{Game: game, Pitch: c.parsePitch()}
	if err := c.scan.Tag("Ball. "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Balls, p.Strikes, err = c.parseCount(); err != nil {
		return nil, err
	}
	if p.BatterItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BallEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushPitch(p.Pitch)
	b.pushDescription("Ball. " + strconv.Itoa(p.Balls) + "-" + strconv.Itoa(p.Strikes))
	b.pushNamedItemDamage(p.BatterItemDamage)
	return b.build(wire.Ball)
}

// StrikeEvent is a called strike of any flavor.
type StrikeEvent struct {
	Game              GameRef          `json:"game"`
	Pitch             GamePitch        `json:"pitch"`
	Kind              StrikeKind       `json:"kind"`
	Balls             int              `json:"balls"`
	Strikes           int              `json:"strikes"`
	PitcherItemDamage *NamedItemDamage `json:"pitcherItemDamage"`
}

func parseStrike(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &StrikeEvent{Game: game, Pitch: c.parsePitch()}
	switch {
	case c.scan.TryTag("Strikes, swinging. "):
		p.Kind = StrikeSwinging
		if p.Pitch.DoubleStrike == nil {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "double strike text without a double strike",
				c.tagMeta(nil))
		}
	case c.scan.TryTag("Strike, swinging. "):
		p.Kind = StrikeSwinging
	case c.scan.TryTag("Strike, looking. "):
		p.Kind = StrikeLooking
	case c.scan.TryTag("Strike, flinching. "):
		p.Kind = StrikeFlinching
	default:
		return nil, c.descErr(c.scan.Tag("Strike"))
	}
	if p.Balls, p.Strikes, err = c.parseCount(); err != nil {
		return nil, err
	}
	if p.PitcherItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *StrikeEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Pitch.DoubleStrike != nil))
	b.pushPitch(p.Pitch)
	plural := ""
	if p.Kind == StrikeSwinging && p.Pitch.DoubleStrike != nil {
		plural = "s"
	}
	b.pushDescription("Strike" + plural + ", " + p.Kind.String() + ". " +
		strconv.Itoa(p.Balls) + "-" + strconv.Itoa(p.Strikes))
	b.pushNamedItemDamage(p.PitcherItemDamage)
	return b.build(wire.Strike)
}

// FoulBallEvent is a foul ball. Seasons 20 onward spell it with a stray
// leading space.
type FoulBallEvent struct {
	Game             GameRef          `json:"game"`
	Pitch            GamePitch        `json:"pitch"`
	Balls            int              `json:"balls"`
	Strikes          int              `json:"strikes"`
	BatterItemDamage *NamedItemDamage `json:"batterItemDamage"`
}

func parseFoulBall(c *cursor, season int) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &FoulBallEvent{Game: game, Pitch: c.parsePitch()}
	if err := c.scan.Tag(foulBallText(p.Pitch, season) + ". "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Balls, p.Strikes, err = c.parseCount(); err != nil {
		return nil, err
	}
	if p.BatterItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func foulBallText(pitch GamePitch, season int) string {
	switch {
	case pitch.DoubleStrike != nil:
		return "Foul Balls"
	case season < 19:
		return "Foul Ball"
	default:
		return " Foul Ball"
	}
}

func (p *FoulBallEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Pitch.DoubleStrike != nil))
	b.pushPitch(p.Pitch)
	b.pushDescription(foulBallText(p.Pitch, b.rec.Season) + ". " +
		strconv.Itoa(p.Balls) + "-" + strconv.Itoa(p.Strikes))
	b.pushNamedItemDamage(p.BatterItemDamage)
	return b.build(wire.FoulBall)
}

// WalkEvent is an ordinary walk.
type WalkEvent struct {
	Game             GameRef     `json:"game"`
	Pitch            GamePitch   `json:"pitch"`
	BatterName       string      `json:"batterName"`
	BatterID         uuid.UUID   `json:"batterId"`
	BaseInstincts    *Base       `json:"baseInstincts"`
	BatterItemDamage *ItemDamage `json:"batterItemDamage"`
	Scores           Scores      `json:"scores"`

	StoppedInhabiting *StoppedInhabiting `json:"stoppedInhabiting"`
	IsSpecial         bool               `json:"isSpecial"`
}

// CharmWalk is a walk charmed out of the pitcher.
type CharmWalk struct {
	Game              GameRef     `json:"game"`
	Pitch             GamePitch   `json:"pitch"`
	BatterName        string      `json:"batterName"`
	BatterID          uuid.UUID   `json:"batterId"`
	PitcherName       string      `json:"pitcherName"`
	PitcherItemDamage *ItemDamage `json:"pitcherItemDamage"`
	BatterItemDamage  *ItemDamage `json:"batterItemDamage"`
	Scores            Scores      `json:"scores"`
}

func parseWalk(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	pitch := c.parsePitch()

	pos := c.scan.Pos()
	// A charmed walk can open with item damage lines for either party.
	var damages []NamedItemDamage
	for {
		line := restOfLine(c.scan)
		body, plural, ok := cutItemDamageSuffix(line)
		if !ok {
			break
		}
		owner, _, ok := cutPossessive(body)
		if !ok {
			break
		}
		if err := c.scan.Tag(line + "\n"); err != nil {
			return nil, c.descErr(err)
		}
		dmg, err := c.parseItemDamageChild(line, plural)
		if err != nil {
			return nil, err
		}
		damages = append(damages, NamedItemDamage{Name: owner, Damage: *dmg})
	}
	if batter, err := c.scan.Terminated(" charms "); err == nil {
		p := &CharmWalk{Game: game, Pitch: pitch, BatterName: batter}
		if p.PitcherName, err = c.scan.Terminated("!\n"); err != nil {
			return nil, c.descErr(err)
		}
		if err := c.scan.Tag(batter + " walks to first base."); err != nil {
			return nil, c.descErr(err)
		}
		for i := range damages {
			d := &damages[i]
			switch d.Name {
			case p.PitcherName:
				p.PitcherItemDamage = &d.Damage
			case p.BatterName:
				p.BatterItemDamage = &d.Damage
			default:
				return nil, errors.WithMetadata(errors.CodeInvalidRecord, "damage line names a bystander",
					c.tagMeta(map[string]string{"name": d.Name}))
			}
		}
		first, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		second, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if first != second {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "charm batter tags differ",
				c.tagMeta(nil))
		}
		p.BatterID = first
		if p.Scores, err = c.parseScores(" scores!"); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	if len(damages) > 0 {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "damage line before an uncharmed walk",
			c.tagMeta(nil))
	}

	p := &WalkEvent{Game: game, Pitch: pitch, IsSpecial: c.category() == wire.CategorySpecial}
	if p.BatterName, err = c.scan.Terminated(" draws a walk."); err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag("\nBase Instincts take them directly to ") {
		base, err := c.parseNamedBase()
		if err != nil {
			return nil, err
		}
		if err := c.scan.Tag(" base!"); err != nil {
			return nil, c.descErr(err)
		}
		p.BaseInstincts = &base
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.BatterItemDamage, err = c.parseItemDamage(p.BatterName); err != nil {
		return nil, err
	}
	if p.Scores, err = c.parseScores(" scores!"); err != nil {
		return nil, err
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *WalkEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Scores.UsedRefill() || p.BaseInstincts != nil || p.IsSpecial))
	b.pushPitch(p.Pitch)
	b.pushDescription(p.BatterName + " draws a walk.")
	if p.BaseInstincts != nil {
		b.pushDescription("Base Instincts take them directly to " + p.BaseInstincts.String() + " base!")
	}
	b.pushPlayerTag(p.BatterID)
	b.pushItemDamage(p.BatterItemDamage, p.BatterName)
	b.pushScores(p.Scores, " scores!")
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	return b.build(wire.Walk)
}

func (p *CharmWalk) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushPitch(p.Pitch)
	b.pushItemDamage(p.PitcherItemDamage, p.PitcherName)
	b.pushItemDamage(p.BatterItemDamage, p.BatterName)
	b.pushDescription(p.BatterName + " charms " + p.PitcherName + "!")
	b.pushDescription(p.BatterName + " walks to first base.")
	b.pushPlayerTag(p.BatterID)
	b.pushPlayerTag(p.BatterID)
	b.pushScores(p.Scores, " scores!")
	return b.build(wire.Walk)
}

// StrikeoutEvent is a batter striking out swinging or looking.
type StrikeoutEvent struct {
	Game              GameRef            `json:"game"`
	Pitch             GamePitch          `json:"pitch"`
	Kind              StrikeoutKind      `json:"kind"`
	BatterName        string             `json:"batterName"`
	PitcherItemDamage *NamedItemDamage   `json:"pitcherItemDamage"`
	StoppedInhabiting *StoppedInhabiting `json:"stoppedInhabiting"`
	FreeRefill        *FreeRefill        `json:"freeRefill"`
	IsSpecial         bool               `json:"isSpecial"`
}

// CharmStrikeout is a batter charmed into striking out.
type CharmStrikeout struct {
	Game        GameRef   `json:"game"`
	CharmerID   uuid.UUID `json:"charmerId"`
	CharmerName string    `json:"charmerName"`
	CharmedID   uuid.UUID `json:"charmedId"`
	CharmedName string    `json:"charmedName"`
	NumSwings   int       `json:"numSwings"`

	StoppedInhabiting *StoppedInhabiting `json:"stoppedInhabiting"`
}

func parseStrikeout(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	pitch := c.parsePitch()

	pos := c.scan.Pos()
	if charmer, err := c.scan.Terminated(" charmed "); err == nil && pitch.DoubleStrike == nil {
		p := &CharmStrikeout{Game: game, CharmerName: charmer}
		if p.CharmedName, err = c.scan.Terminated("!\n"); err != nil {
			return nil, c.descErr(err)
		}
		if err := c.scan.Tag(p.CharmedName + " swings "); err != nil {
			return nil, c.descErr(err)
		}
		if p.NumSwings, err = c.scan.WholeNumber(); err != nil {
			return nil, c.descErr(err)
		}
		if err := c.scan.Tag(" times to strike out willingly!"); err != nil {
			return nil, c.descErr(err)
		}
		first, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		second, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if first != second {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "charmer tags differ",
				c.tagMeta(nil))
		}
		p.CharmerID = first
		if p.CharmedID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)

	p := &StrikeoutEvent{Game: game, Pitch: pitch, IsSpecial: c.category() == wire.CategorySpecial}
	batter, err := c.scan.Terminated(" strikes out ")
	if err != nil {
		return nil, c.descErr(err)
	}
	p.BatterName = batter
	switch {
	case c.scan.TryTag("swinging."):
		p.Kind = StrikeoutSwinging
	case c.scan.TryTag("looking."):
		p.Kind = StrikeoutLooking
	default:
		return nil, c.descErr(c.scan.Tag("swinging."))
	}
	if p.PitcherItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	if p.FreeRefill, err = c.parseFreeRefill(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *StrikeoutEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.IsSpecial))
	b.pushPitch(p.Pitch)
	b.pushDescription(p.BatterName + " strikes out " + p.Kind.String() + ".")
	b.pushNamedItemDamage(p.PitcherItemDamage)
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushFreeRefill(p.FreeRefill)
	return b.build(wire.Strikeout)
}

func (p *CharmStrikeout) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.CharmerName + " charmed " + p.CharmedName + "!")
	b.pushDescription(p.CharmedName + " swings " + strconv.Itoa(p.NumSwings) + " times to strike out willingly!")
	b.pushPlayerTag(p.CharmerID)
	b.pushPlayerTag(p.CharmerID)
	b.pushPlayerTag(p.CharmedID)
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	return b.build(wire.Strikeout)
}

// Flyout is a caught fly ball.
type Flyout struct {
	Game        GameRef   `json:"game"`
	Pitch       GamePitch `json:"pitch"`
	BatterName  string    `json:"batterName"`
	FielderName string    `json:"fielderName"`

	BatterItemDamage      *ItemDamage      `json:"batterItemDamage"`
	FielderItemDamage     *ItemDamage      `json:"fielderItemDamage"`
	OtherPlayerItemDamage *NamedItemDamage `json:"otherPlayerItemDamage"`

	BatterDebt        *BatterDebt          `json:"batterDebt"`
	Scores            Scores               `json:"scores"`
	StoppedInhabiting *StoppedInhabiting   `json:"stoppedInhabiting"`
	CooledOff         *ModChangeWithPlayer `json:"cooledOff"`
	IsSpecial         bool                 `json:"isSpecial"`
}

func parseFlyout(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Flyout{Game: game, Pitch: c.parsePitch()}
	if p.BatterName, err = c.scan.Terminated(" hit a flyout to "); err != nil {
		return nil, c.descErr(err)
	}
	if p.FielderName, err = c.scan.Terminated("."); err != nil {
		return nil, c.descErr(err)
	}
	if p.BatterItemDamage, err = c.parseItemDamage(p.BatterName); err != nil {
		return nil, err
	}
	if p.FielderItemDamage, err = c.parseItemDamage(p.FielderName); err != nil {
		return nil, err
	}
	if p.OtherPlayerItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	if p.BatterDebt, err = c.parseBatterDebt(p.BatterName, p.FielderName); err != nil {
		return nil, err
	}
	if p.Scores, err = c.parseScores(" tags up and scores!"); err != nil {
		return nil, err
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	if p.CooledOff, err = c.parseCooledOff(p.BatterName); err != nil {
		return nil, err
	}
	p.IsSpecial = c.category() == wire.CategorySpecial &&
		!p.Scores.UsedRefill() && p.CooledOff == nil
	return p, c.finish()
}

func (p *Flyout) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Scores.UsedRefill() || p.CooledOff != nil || p.IsSpecial))
	b.pushPitch(p.Pitch)
	b.pushDescription(p.BatterName + " hit a flyout to " + p.FielderName + ".")
	b.pushItemDamage(p.BatterItemDamage, p.BatterName)
	b.pushItemDamage(p.FielderItemDamage, p.FielderName)
	b.pushNamedItemDamage(p.OtherPlayerItemDamage)
	b.pushBatterDebt(p.BatterDebt, p.BatterName, p.FielderName)
	b.pushScores(p.Scores, " tags up and scores!")
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushCooledOff(p.CooledOff, p.BatterName)
	return b.build(wire.FlyOut)
}

// GroundOutEvent is a simple ground out.
type GroundOutEvent struct {
	Game        GameRef   `json:"game"`
	Pitch       GamePitch `json:"pitch"`
	BatterName  string    `json:"batterName"`
	FielderName string    `json:"fielderName"`

	BatterDebt        *BatterDebt          `json:"batterDebt"`
	Scores            Scores               `json:"scores"`
	PitcherItemDamage *NamedItemDamage     `json:"pitcherItemDamage"`
	BatterItemDamage  *ItemDamage          `json:"batterItemDamage"`
	FielderItemDamage *ItemDamage          `json:"fielderItemDamage"`
	StoppedInhabiting *StoppedInhabiting   `json:"stoppedInhabiting"`
	CooledOff         *ModChangeWithPlayer `json:"cooledOff"`
	IsSpecial         bool                 `json:"isSpecial"`
}

// FieldersChoice is a runner forced out while the batter reaches.
type FieldersChoice struct {
	Game          GameRef   `json:"game"`
	Pitch         GamePitch `json:"pitch"`
	BatterName    string    `json:"batterName"`
	RunnerOutName string    `json:"runnerOutName"`
	OutAtBase     Base      `json:"outAtBase"`

	StoppedInhabiting *StoppedInhabiting   `json:"stoppedInhabiting"`
	Scores            Scores               `json:"scores"`
	DamagedItems      []NamedItemDamage    `json:"damagedItems"`
	CooledOff         *ModChangeWithPlayer `json:"cooledOff"`
	IsSpecial         bool                 `json:"isSpecial"`
}

// DoublePlayEvent is a batter hitting into a double play.
type DoublePlayEvent struct {
	Game       GameRef   `json:"game"`
	Pitch      GamePitch `json:"pitch"`
	BatterName string    `json:"batterName"`

	Scores            Scores               `json:"scores"`
	StoppedInhabiting *StoppedInhabiting   `json:"stoppedInhabiting"`
	CooledOff         *ModChangeWithPlayer `json:"cooledOff"`
}

func parseGroundOut(c *cursor, season int) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	pitch := c.parsePitch()

	pos := c.scan.Pos()
	if batter, err := c.scan.Terminated(" hit into a double play!"); err == nil {
		p := &DoublePlayEvent{Game: game, Pitch: pitch, BatterName: batter}
		if p.Scores, err = c.parseScores(" scores!"); err != nil {
			return nil, err
		}
		if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
			return nil, err
		}
		if p.CooledOff, err = c.parseCooledOff(batter); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)

	if runner, err := c.scan.Terminated(" out at "); err == nil {
		p := &FieldersChoice{Game: game, Pitch: pitch, RunnerOutName: runner,
			IsSpecial: c.category() == wire.CategorySpecial}
		if p.OutAtBase, err = c.parseNamedBase(); err != nil {
			return nil, err
		}
		if err := c.scan.Tag(" base."); err != nil {
			return nil, c.descErr(err)
		}
		if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
			return nil, err
		}
		for {
			scorer, ok, err := c.parseScore(" scores!")
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			p.Scores.Scores = append(p.Scores.Scores, scorer)
		}
		if p.DamagedItems, err = c.parseNamedItemDamages(); err != nil {
			return nil, err
		}
		if err := c.scan.Tag("\n"); err != nil {
			return nil, c.descErr(err)
		}
		if p.BatterName, err = c.scan.Terminated(" reaches on fielder's choice."); err != nil {
			return nil, c.descErr(err)
		}
		if p.Scores.FreeRefills, err = c.parseFreeRefills(); err != nil {
			return nil, err
		}
		if p.CooledOff, err = c.parseCooledOff(p.BatterName); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)

	p := &GroundOutEvent{Game: game, Pitch: pitch}
	if p.BatterName, err = c.scan.Terminated(" hit a ground out to "); err != nil {
		return nil, c.descErr(err)
	}
	if p.FielderName, err = c.scan.Terminated("."); err != nil {
		return nil, c.descErr(err)
	}
	if p.BatterDebt, err = c.parseBatterDebt(p.BatterName, p.FielderName); err != nil {
		return nil, err
	}
	if season < 18 {
		if p.Scores, err = c.parseScores(" advances on the sacrifice."); err != nil {
			return nil, err
		}
		if p.PitcherItemDamage, err = c.parseNamedItemDamage(); err != nil {
			return nil, err
		}
		if p.BatterItemDamage, err = c.parseItemDamage(p.BatterName); err != nil {
			return nil, err
		}
		if p.FielderItemDamage, err = c.parseItemDamage(p.FielderName); err != nil {
			return nil, err
		}
	} else {
		if p.PitcherItemDamage, err = c.parseNamedItemDamage(); err != nil {
			return nil, err
		}
		if p.BatterItemDamage, err = c.parseItemDamage(p.BatterName); err != nil {
			return nil, err
		}
		if p.FielderItemDamage, err = c.parseItemDamage(p.FielderName); err != nil {
			return nil, err
		}
		if p.Scores, err = c.parseScores(" advances on the sacrifice."); err != nil {
			return nil, err
		}
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	if p.CooledOff, err = c.parseCooledOff(p.BatterName); err != nil {
		return nil, err
	}
	p.IsSpecial = c.category() == wire.CategorySpecial &&
		!p.Scores.UsedRefill() && p.CooledOff == nil
	return p, c.finish()
}

func (p *GroundOutEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.Scores.UsedRefill() || p.CooledOff != nil || p.IsSpecial))
	b.pushPitch(p.Pitch)
	b.pushDescription(p.BatterName + " hit a ground out to " + p.FielderName + ".")
	b.pushBatterDebt(p.BatterDebt, p.BatterName, p.FielderName)
	if b.rec.Season < 18 {
		b.pushScores(p.Scores, " advances on the sacrifice.")
		b.pushNamedItemDamage(p.PitcherItemDamage)
		b.pushItemDamage(p.BatterItemDamage, p.BatterName)
		b.pushItemDamage(p.FielderItemDamage, p.FielderName)
	} else {
		b.pushNamedItemDamage(p.PitcherItemDamage)
		b.pushItemDamage(p.BatterItemDamage, p.BatterName)
		b.pushItemDamage(p.FielderItemDamage, p.FielderName)
		b.pushScores(p.Scores, " advances on the sacrifice.")
	}
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushCooledOff(p.CooledOff, p.BatterName)
	return b.build(wire.GroundOut)
}

func (p *FieldersChoice) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.IsSpecial))
	b.pushPitch(p.Pitch)
	b.pushDescription(p.RunnerOutName + " out at " + p.OutAtBase.String() + " base.")
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushScorers(p.Scores.Scores, " scores!")
	b.pushNamedItemDamages(p.DamagedItems)
	b.pushDescription(p.BatterName + " reaches on fielder's choice.")
	b.pushFreeRefills(p.Scores.FreeRefills)
	b.pushCooledOff(p.CooledOff, p.BatterName)
	return b.build(wire.GroundOut)
}

func (p *DoublePlayEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushPitch(p.Pitch)
	b.pushDescription(p.BatterName + " hit into a double play!")
	b.pushScores(p.Scores, " scores!")
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushCooledOff(p.CooledOff, p.BatterName)
	return b.build(wire.GroundOut)
}

// HitEvent is a base hit.
type HitEvent struct {
	Game       GameRef   `json:"game"`
	Pitch      GamePitch `json:"pitch"`
	BatterName string    `json:"batterName"`
	BatterID   uuid.UUID `json:"batterId"`
	HitType    HitType   `json:"hitType"`

	PitcherItemDamage     *NamedItemDamage `json:"pitcherItemDamage"`
	BatterItemDamage      *ItemDamage      `json:"batterItemDamage"`
	OtherPlayerItemDamage *NamedItemDamage `json:"otherPlayerItemDamage"`

	// ChargeBlood is set when aa or aaa blood procced on the hit.
	ChargeBlood *ModChange `json:"chargeBlood"`

	StoppedInhabiting *StoppedInhabiting `json:"stoppedInhabiting"`
	Scores            Scores             `json:"scores"`
	SpicyStatus       SpicyStatus        `json:"spicyStatus"`
	IsSpecial         bool               `json:"isSpecial"`
}

func parseHit(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HitEvent{Game: game, Pitch: c.parsePitch()}
	// Up to two damage lines precede the hit: the pitcher's and then the
	// batter's. Which is which only becomes clear once the batter is named.
	dmg1, err := c.parseNamedItemDamage()
	if err != nil {
		return nil, err
	}
	var dmg2 *NamedItemDamage
	if dmg1 != nil {
		if dmg2, err = c.parseNamedItemDamage(); err != nil {
			return nil, err
		}
	}
	batter, err := c.scan.Terminated(" hits a ")
	if err != nil {
		return nil, c.descErr(err)
	}
	p.BatterName = batter
	switch {
	case dmg2 != nil:
		p.PitcherItemDamage = dmg1
		p.BatterItemDamage = &dmg2.Damage
	case dmg1 != nil && dmg1.Name == batter:
		p.BatterItemDamage = &dmg1.Damage
	default:
		p.PitcherItemDamage = dmg1
	}
	switch {
	case c.scan.TryTag("Single!"):
		p.HitType = HitSingle
	case c.scan.TryTag("Double!"):
		p.HitType = HitDouble
	case c.scan.TryTag("Triple!"):
		p.HitType = HitTriple
	case c.scan.TryTag("Quadruple!"):
		p.HitType = HitQuadruple
	default:
		return nil, c.descErr(c.scan.Tag("a hit type"))
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.HitType == HitDouble || p.HitType == HitTriple {
		if p.ChargeBlood, err = c.parseChargeBlood(batter); err != nil {
			return nil, err
		}
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	if p.Scores, err = c.parseScores(" scores!"); err != nil {
		return nil, err
	}
	if p.SpicyStatus, err = c.parseSpicyStatus(batter); err != nil {
		return nil, err
	}
	if p.OtherPlayerItemDamage, err = c.parseNamedItemDamage(); err != nil {
		return nil, err
	}
	p.IsSpecial = c.category() == wire.CategorySpecial
	return p, c.finish()
}

func (p *HitEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushPitch(p.Pitch)
	b.setCategory(wire.SpecialIf(p.IsSpecial))
	b.pushNamedItemDamage(p.PitcherItemDamage)
	b.pushItemDamage(p.BatterItemDamage, p.BatterName)
	b.pushDescription(p.BatterName + " hits a " + p.HitType.String() + "!")
	b.pushPlayerTag(p.BatterID)
	switch p.HitType {
	case HitDouble:
		b.pushChargeBlood(p.ChargeBlood, p.BatterName, p.BatterID, "aa")
	case HitTriple:
		b.pushChargeBlood(p.ChargeBlood, p.BatterName, p.BatterID, "aaa")
	}
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushScores(p.Scores, " scores!")
	b.pushSpicy(p.SpicyStatus, p.BatterName, p.BatterID)
	b.pushNamedItemDamage(p.OtherPlayerItemDamage)
	return b.build(wire.Hit)
}

// HomeRunEvent is a home run of any size.
type HomeRunEvent struct {
	Game       GameRef     `json:"game"`
	Pitch      GamePitch   `json:"pitch"`
	BatterName string      `json:"batterName"`
	BatterID   uuid.UUID   `json:"batterId"`
	Kind       HomeRunKind `json:"kind"`

	DamagedItems []NamedItemDamage `json:"damagedItems"`

	// Magmatic is the mod removal left when the batter spent Magmatic.
	Magmatic *ModChange `json:"magmatic"`

	BigBucket         bool                  `json:"bigBucket"`
	StoppedInhabiting *StoppedInhabiting    `json:"stoppedInhabiting"`
	FreeRefills       []FreeRefill          `json:"freeRefills"`
	SpicyStatus       SpicyStatus           `json:"spicyStatus"`
	Attraction        *AttractionWithPlayer `json:"attraction"`
	IsSpecial         bool                  `json:"isSpecial"`
}

func parseHomeRun(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HomeRunEvent{Game: game, Pitch: c.parsePitch(), IsSpecial: c.category() == wire.CategorySpecial}
	if p.DamagedItems, err = c.parseNamedItemDamages(); err != nil {
		return nil, err
	}
	if p.Magmatic, err = c.parseMagmatic(); err != nil {
		return nil, err
	}
	if p.BatterName, err = c.scan.Terminated(" hits a "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("solo home run!"):
		p.Kind = HomeRunSolo
	case c.scan.TryTag("2-run home run!"):
		p.Kind = HomeRunTwo
	case c.scan.TryTag("3-run home run!"):
		p.Kind = HomeRunThree
	case c.scan.TryTag("grand slam!"):
		p.Kind = HomeRunGrandSlam
	default:
		return nil, c.descErr(c.scan.Tag("a home run size"))
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if c.scan.TryTag("\nThe ball lands in a Big Bucket. An extra Run scores!") {
		p.BigBucket = true
	}
	if p.StoppedInhabiting, err = c.parseStoppedInhabiting(); err != nil {
		return nil, err
	}
	if p.FreeRefills, err = c.parseFreeRefills(); err != nil {
		return nil, err
	}
	if p.SpicyStatus, err = c.parseSpicyStatus(p.BatterName); err != nil {
		return nil, err
	}
	if p.Attraction, err = c.parseAttractionWithPlayer(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *HomeRunEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	if p.IsSpecial {
		b.setCategory(wire.CategorySpecial)
	}
	b.pushPitch(p.Pitch)
	b.pushNamedItemDamages(p.DamagedItems)
	b.pushMagmatic(p.Magmatic, p.BatterName, p.BatterID)
	b.pushDescription(p.BatterName + " hits a " + p.Kind.String() + "!")
	b.pushPlayerTag(p.BatterID)
	if p.BigBucket {
		b.pushDescription("The ball lands in a Big Bucket. An extra Run scores!")
	}
	b.pushStoppedInhabiting(p.StoppedInhabiting)
	b.pushFreeRefills(p.FreeRefills)
	b.pushSpicy(p.SpicyStatus, p.BatterName, p.BatterID)
	b.pushAttractionWithPlayer(p.Attraction)
	return b.build(wire.HomeRun)
}

// StolenBaseEvent is a successful steal.
type StolenBaseEvent struct {
	Game       GameRef   `json:"game"`
	RunnerName string    `json:"runnerName"`
	RunnerID   uuid.UUID `json:"runnerId"`
	BaseStolen Base      `json:"baseStolen"`

	Blaserunning     bool        `json:"blaserunning"`
	FreeRefill       *FreeRefill `json:"freeRefill"`
	RunnerItemDamage *ItemDamage `json:"runnerItemDamage"`
	IsSpecial        bool        `json:"isSpecial"`
}

// CaughtStealingEvent is a failed steal.
type CaughtStealingEvent struct {
	Game              GameRef          `json:"game"`
	RunnerName        string           `json:"runnerName"`
	BaseStolen        Base             `json:"baseStolen"`
	FielderItemDamage *NamedItemDamage `json:"fielderItemDamage"`
}

func parseStolenBase(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	pos := c.scan.Pos()
	if runner, err := c.scan.Terminated(" gets caught stealing "); err == nil {
		p := &CaughtStealingEvent{Game: game, RunnerName: runner}
		if p.BaseStolen, err = c.parseNamedBase(); err != nil {
			return nil, err
		}
		if err := c.scan.Tag(" base."); err != nil {
			return nil, c.descErr(err)
		}
		if p.FielderItemDamage, err = c.parseNamedItemDamage(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)

	p := &StolenBaseEvent{Game: game, IsSpecial: c.category() == wire.CategorySpecial}
	if p.RunnerName, err = c.scan.Terminated(" steals "); err != nil {
		return nil, c.descErr(err)
	}
	if p.BaseStolen, err = c.parseNamedBase(); err != nil {
		return nil, err
	}
	if err := c.scan.Tag(" base!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.RunnerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if c.scan.TryTag("\n" + p.RunnerName + " scores with Blaserunning!") {
		p.Blaserunning = true
		second, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if second != p.RunnerID {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "blaserunning tags differ",
				c.tagMeta(nil))
		}
	}
	if p.FreeRefill, err = c.parseFreeRefill(); err != nil {
		return nil, err
	}
	if p.RunnerItemDamage, err = c.parseItemDamage(p.RunnerName); err != nil {
		return nil, err
	}
	p.IsSpecial = p.IsSpecial && !p.Blaserunning && p.FreeRefill == nil
	return p, c.finish()
}

func (p *StolenBaseEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushPlayerTag(p.RunnerID)
	b.setCategory(wire.SpecialIf(p.Blaserunning || p.FreeRefill != nil || p.IsSpecial))
	b.pushDescription(p.RunnerName + " steals " + p.BaseStolen.String() + " base!")
	if p.Blaserunning {
		b.pushDescription(p.RunnerName + " scores with Blaserunning!")
		b.pushPlayerTag(p.RunnerID)
	}
	b.pushFreeRefill(p.FreeRefill)
	b.pushItemDamage(p.RunnerItemDamage, p.RunnerName)
	return b.build(wire.StolenBase)
}

func (p *CaughtStealingEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription(p.RunnerName + " gets caught stealing " + p.BaseStolen.String() + " base.")
	b.pushNamedItemDamage(p.FielderItemDamage)
	return b.build(wire.StolenBase)
}

// InningEndEvent closes an inning, shedding expired Triple Threats.
type InningEndEvent struct {
	Game             GameRef                    `json:"game"`
	Inning           int                        `json:"inning"`
	LostTripleThreat []ModChangeWithNamedPlayer `json:"lostTripleThreat"`
}

func parseInningEnd(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &InningEndEvent{Game: game}
	if err := c.scan.Tag("Inning "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Inning, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" is now an Outing."); err != nil {
		return nil, c.descErr(err)
	}
	for {
		name, ok := tryScoreLine(c.scan, " is no longer a Triple Threat.")
		if !ok {
			break
		}
		m := ModChangeWithNamedPlayer{PlayerName: name}
		if m.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		child, err := c.nextChild(wire.RemovedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(name + " is no longer a Triple Threat."); err != nil {
			return nil, child.descErr(err)
		}
		m.SubEvent = child.subEvent()
		if _, err := child.nextPlayerID(); err != nil {
			return nil, err
		}
		if m.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
		p.LostTripleThreat = append(p.LostTripleThreat, m)
	}
	return p, c.finish()
}

func (p *InningEndEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription("Inning " + strconv.Itoa(p.Inning) + " is now an Outing.")
	for i := range p.LostTripleThreat {
		m := &p.LostTripleThreat[i]
		b.pushDescription(m.PlayerName + " is no longer a Triple Threat.")
		b.pushPlayerTag(m.PlayerID)
		teamID := m.TeamID
		b.pushModEffect(m.SubEvent, wire.RemovedMod,
			m.PlayerName+" is no longer a Triple Threat.", &teamID, m.PlayerID, "TRIPLE_THREAT", 0)
	}
	return b.build(wire.InningEnd)
}

// GameEndEvent closes a game with the final score.
type GameEndEvent struct {
	Game     GameRef   `json:"game"`
	WinnerID uuid.UUID `json:"winnerId"`

	WinningTeamName  string  `json:"winningTeamName"`
	WinningTeamScore float64 `json:"winningTeamScore"`
	LosingTeamName   string  `json:"losingTeamName"`
	LosingTeamScore  float64 `json:"losingTeamScore"`

	// TempStolenPlayerReturned is the roster move undoing a temporary
	// player theft at the end of the game.
	TempStolenPlayerReturned *PlayerMove `json:"tempStolenPlayerReturned"`
}

// parseTeamScore reads "{team} {score}", where a negative score leaves a
// bare minus stuck to the team name.
func (c *cursor) parseTeamScore() (string, float64, error) {
	rest := c.scan.Rest()
	idx := strings.IndexFunc(rest, func(r rune) bool { return r >= '0' && r <= '9' })
	if idx < 0 {
		return "", 0, c.descErr(c.scan.Tag("a score"))
	}
	seg := rest[:idx]
	neg := false
	name := seg
	if s, ok := strings.CutSuffix(name, "-"); ok {
		neg = true
		name = s
	}
	name, ok := strings.CutSuffix(name, " ")
	if !ok {
		return "", 0, c.descErr(c.scan.Tag("a score"))
	}
	if err := c.scan.Tag(seg); err != nil {
		return "", 0, c.descErr(err)
	}
	score, err := c.scan.Float()
	if err != nil {
		return "", 0, c.descErr(err)
	}
	if neg {
		score = -score
	}
	return name, score, nil
}

func parseGameEnd(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &GameEndEvent{Game: game}
	if p.WinningTeamName, p.WinningTeamScore, err = c.parseTeamScore(); err != nil {
		return nil, err
	}
	if err := c.scan.Tag(", "); err != nil {
		return nil, c.descErr(err)
	}
	if p.LosingTeamName, p.LosingTeamScore, err = c.parseTeamScore(); err != nil {
		return nil, err
	}
	for _, want := range []uuid.UUID{game.HomeTeam, game.AwayTeam} {
		id, err := c.nextTeamID()
		if err != nil {
			return nil, err
		}
		if id != want {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "repeated team tags differ",
				c.tagMeta(nil))
		}
	}
	if c.hasChildren() {
		child, err := c.nextChild(wire.PlayerMoved)
		if err != nil {
			return nil, err
		}
		move := &PlayerMove{SubEvent: child.subEvent()}
		if move.PlayerName, err = child.scan.Terminated(" is returned to the "); err != nil {
			return nil, child.descErr(err)
		}
		if move.NewTeamNickname, err = child.scan.Terminated("."); err != nil {
			return nil, child.descErr(err)
		}
		if move.PlayerID, err = child.nextPlayerID(); err != nil {
			return nil, err
		}
		if move.PreviousTeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if move.NewTeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		location, err := child.metaInt("location")
		if err != nil {
			return nil, err
		}
		if move.Location, err = PositionFromValue(location); err != nil {
			return nil, err
		}
		if _, err = child.metaUUID("playerId"); err != nil {
			return nil, err
		}
		if _, err = child.metaString("playerName"); err != nil {
			return nil, err
		}
		if _, err = child.metaInt("receiveLocation"); err != nil {
			return nil, err
		}
		if _, err = child.metaUUID("receiveTeamId"); err != nil {
			return nil, err
		}
		if _, err = child.metaString("receiveTeamName"); err != nil {
			return nil, err
		}
		if _, err = child.metaUUID("sendTeamId"); err != nil {
			return nil, err
		}
		if move.PreviousTeamNickname, err = child.metaString("sendTeamName"); err != nil {
			return nil, err
		}
		if err := child.finish(); err != nil {
			return nil, err
		}
		p.TempStolenPlayerReturned = move
	}
	if p.WinnerID, err = c.metaUUID("winner"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func formatScore(score float64) string {
	if score < 0 {
		return "-" + encodeScore(-score)
	}
	return encodeScore(score)
}

func encodeScore(score float64) string {
	if score == float64(int64(score)) {
		return strconv.FormatInt(int64(score), 10)
	}
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func (p *GameEndEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription(p.WinningTeamName + " " + formatScore(p.WinningTeamScore) + ", " +
		p.LosingTeamName + " " + formatScore(p.LosingTeamScore))
	b.pushTeamTag(p.Game.HomeTeam)
	b.pushTeamTag(p.Game.AwayTeam)
	b.pushMetaUUID("winner", p.WinnerID)
	if move := p.TempStolenPlayerReturned; move != nil {
		b.pushChild(move.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(move.PlayerName + " is returned to the " + move.NewTeamNickname + ".")
			child.pushPlayerTag(move.PlayerID)
			child.pushTeamTag(move.PreviousTeamID)
			child.pushTeamTag(move.NewTeamID)
			child.pushMetaInt("location", int64(move.Location))
			child.pushMetaUUID("playerId", move.PlayerID)
			child.pushMetaString("playerName", move.PlayerName)
			child.pushMetaInt("receiveLocation", int64(move.Location))
			child.pushMetaUUID("receiveTeamId", move.NewTeamID)
			child.pushMetaString("receiveTeamName", move.NewTeamNickname)
			child.pushMetaUUID("sendTeamId", move.PreviousTeamID)
			child.pushMetaString("sendTeamName", move.PreviousTeamNickname)
			return child.build(wire.PlayerMoved)
		})
	}
	return b.build(wire.GameEnd)
}

// MildPitchEvent is a Mild pitch thrown as a ball.
type MildPitchEvent struct {
	Game        GameRef   `json:"game"`
	PitcherID   uuid.UUID `json:"pitcherId"`
	PitcherName string    `json:"pitcherName"`
	Balls       int       `json:"balls"`
	Strikes     int       `json:"strikes"`

	RunnersAdvance bool   `json:"runnersAdvance"`
	Scores         Scores `json:"scores"`
}

// MildPitchWalk is a Mild pitch that walked the batter.
type MildPitchWalk struct {
	Game        GameRef   `json:"game"`
	PitcherID   uuid.UUID `json:"pitcherId"`
	PitcherName string    `json:"pitcherName"`
	BatterID    uuid.UUID `json:"batterId"`
	BatterName  string    `json:"batterName"`
	Scores      Scores    `json:"scores"`
}

func parseMildPitch(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	pitcher, err := c.scan.Terminated(" throws a Mild pitch!\n")
	if err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag("Ball, ") {
		p := &MildPitchEvent{Game: game, PitcherName: pitcher}
		if p.Balls, p.Strikes, err = c.parseCount(); err != nil {
			return nil, err
		}
		if err := c.scan.Tag("."); err != nil {
			return nil, c.descErr(err)
		}
		p.RunnersAdvance = c.scan.TryTag("\nRunners advance on the pathetic play!")
		if p.Scores, err = c.parseScores(" scores!"); err != nil {
			return nil, err
		}
		if p.PitcherID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	p := &MildPitchWalk{Game: game, PitcherName: pitcher}
	if p.BatterName, err = c.scan.Terminated(" draws a walk."); err != nil {
		return nil, c.descErr(err)
	}
	if p.Scores, err = c.parseScores(" scores!"); err != nil {
		return nil, err
	}
	if p.PitcherID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *MildPitchEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PitcherName + " throws a Mild pitch!")
	b.pushDescription("Ball, " + strconv.Itoa(p.Balls) + "-" + strconv.Itoa(p.Strikes) + ".")
	if p.RunnersAdvance {
		b.pushDescription("Runners advance on the pathetic play!")
	}
	b.pushScores(p.Scores, " scores!")
	b.pushPlayerTag(p.PitcherID)
	return b.build(wire.MildPitch)
}

func (p *MildPitchWalk) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PitcherName + " throws a Mild pitch!")
	b.pushDescription(p.BatterName + " draws a walk.")
	b.pushScores(p.Scores, " scores!")
	b.pushPlayerTag(p.PitcherID)
	b.pushPlayerTag(p.BatterID)
	return b.build(wire.MildPitch)
}

// HitByPitchEvent marks the batter Observed after a plunking.
type HitByPitchEvent struct {
	Game        GameRef   `json:"game"`
	PitcherID   uuid.UUID `json:"pitcherId"`
	PitcherName string    `json:"pitcherName"`
	BatterID    uuid.UUID `json:"batterId"`
	BatterName  string    `json:"batterName"`

	Observed ModChange `json:"observed"`
	Scores   Scores    `json:"scores"`
}

func parseHitByPitch(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HitByPitchEvent{Game: game}
	if p.PitcherName, err = c.scan.Terminated(" hits "); err != nil {
		return nil, c.descErr(err)
	}
	if p.BatterName, err = c.scan.Terminated(" with a pitch!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(p.BatterName + " is now being Observed..."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PitcherID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.Scores, err = c.parseScores(" scores!"); err != nil {
		return nil, err
	}
	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.BatterName + " is now being Observed..."); err != nil {
		return nil, child.descErr(err)
	}
	p.Observed.SubEvent = child.subEvent()
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.Observed.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *HitByPitchEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PitcherName + " hits " + p.BatterName + " with a pitch!")
	b.pushDescription(p.BatterName + " is now being Observed...")
	b.pushPlayerTag(p.PitcherID)
	b.pushPlayerTag(p.BatterID)
	b.pushScores(p.Scores, " scores!")
	teamID := p.Observed.TeamID
	b.pushModEffect(p.Observed.SubEvent, wire.AddedMod,
		p.BatterName+" is now being Observed...", &teamID, p.BatterID, "COFFEE_PERIL", 2)
	return b.build(wire.HitByPitch)
}

// BatterSkippedEvent is a batter skipped while Shelled or Elsewhere.
type BatterSkippedEvent struct {
	Game       GameRef `json:"game"`
	BatterName string  `json:"batterName"`

	// Elsewhere selects the Elsewhere phrasing over the Shelled one.
	Elsewhere bool `json:"elsewhere"`
}

func parseBatterSkipped(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BatterSkippedEvent{Game: game}
	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" is Shelled and cannot escape!"); err == nil {
		p.BatterName = name
		return p, c.finish()
	}
	c.scan.Reset(pos)
	if p.BatterName, err = c.scan.Terminated(" is Elsewhere.."); err != nil {
		return nil, c.descErr(err)
	}
	p.Elsewhere = true
	return p, c.finish()
}

func (p *BatterSkippedEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	if p.Elsewhere {
		b.pushDescription(p.BatterName + " is Elsewhere..")
	} else {
		b.pushDescription(p.BatterName + " is Shelled and cannot escape!")
	}
	return b.build(wire.BatterSkipped)
}

// StrikeZappedEvent is Electricity zapping a strike away.
type StrikeZappedEvent struct {
	Game GameRef `json:"game"`
}

func parseStrikeZapped(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("The Electricity zaps a strike away!"); err != nil {
		return nil, c.descErr(err)
	}
	return &StrikeZappedEvent{Game: game}, c.finish()
}

func (p *StrikeZappedEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Electricity zaps a strike away!")
	return b.build(wire.StrikeZapped)
}

// PeanutFlavorTextEvent is free-text peanut flavor during a game.
type PeanutFlavorTextEvent struct {
	Game    GameRef `json:"game"`
	Message string  `json:"message"`
}

func parsePeanutFlavorText(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	return &PeanutFlavorTextEvent{Game: game, Message: takeRest(c.scan)}, c.finish()
}

func (p *PeanutFlavorTextEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.Message)
	return b.build(wire.PeanutFlavorText)
}

// BeingSpeech is a narrative Big Deal record voiced by one of the Beings.
type BeingSpeech struct {
	Being   Being  `json:"being"`
	Message string `json:"message"`
}

func parseBeingSpeech(c *cursor) (Payload, error) {
	p := &BeingSpeech{Message: takeRest(c.scan)}
	being, err := c.metaInt("being")
	if err != nil {
		return nil, err
	}
	if p.Being, err = BeingFromValue(being); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BeingSpeech) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryNarrative)
	b.pushDescription(p.Message)
	b.pushMetaInt("being", int64(p.Being))
	return b.build(wire.BigDeal)
}
