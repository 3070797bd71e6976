package feed

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/wire"
)

// trimPossessive undoes possessive: "Chorby's" and "Spears'" both yield
// the bare name.
func trimPossessive(s string) (string, bool) {
	if strings.HasSuffix(s, "'s") {
		return strings.TrimSuffix(s, "'s"), true
	}
	if strings.HasSuffix(s, "'") {
		return strings.TrimSuffix(s, "'"), true
	}
	return s, false
}

// Superyummy is a Superyummy player reacting to the game's peanut state.
// Toggle is null on the echoed form, which leaves no child.
type Superyummy struct {
	Game         GameRef `json:"game"`
	PlayerName   string  `json:"playerName"`
	LovesPeanuts bool    `json:"lovesPeanuts"`

	Toggle *TogglePerforming `json:"toggle"`
}

func parseSuperyummy(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Superyummy{Game: game}
	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" loves Peanuts."); err == nil {
		p.PlayerName, p.LovesPeanuts = name, true
	} else {
		c.scan.Reset(pos)
		name, err := c.scan.Terminated(" misses Peanuts.")
		if err != nil {
			return nil, c.descErr(err)
		}
		p.PlayerName = name
	}
	if c.hasChildren() {
		verb := " misses"
		if p.LovesPeanuts {
			verb = " loves"
		}
		toggle, err := c.parseTogglePerforming(p.PlayerName + verb + " Peanuts.")
		if err != nil {
			return nil, err
		}
		toggle.PlayerName = p.PlayerName
		p.Toggle = toggle
	}
	return p, c.finish()
}

func (p *Superyummy) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	verb := " misses"
	if p.LovesPeanuts {
		verb = " loves"
	}
	desc := p.PlayerName + verb + " Peanuts."
	b.pushDescription(desc)
	if p.Toggle != nil {
		b.pushTogglePerforming(p.Toggle, desc, "SUPERYUMMY")
	}
	return b.build(wire.Superyummy)
}

// HomebodyToggle is one Homebody player settling in or pining.
type HomebodyToggle struct {
	HappyToBeHome bool             `json:"happyToBeHome"`
	Toggle        TogglePerforming `json:"toggle"`
}

func (h *HomebodyToggle) line() string {
	if h.HappyToBeHome {
		return h.Toggle.PlayerName + " is happy to be home."
	}
	return h.Toggle.PlayerName + " is homesick."
}

// Homebody is the game-start roll call of every Homebody on the field.
type Homebody struct {
	Game       GameRef          `json:"game"`
	Homebodies []HomebodyToggle `json:"homebodies"`
}

func parseHomebody(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Homebody{Game: game}
	for {
		var h HomebodyToggle
		pos := c.scan.Pos()
		if name, err := c.scan.Terminated(" is happy to be home."); err == nil {
			h.HappyToBeHome = true
			h.Toggle.PlayerName = name
		} else {
			c.scan.Reset(pos)
			name, err := c.scan.Terminated(" is homesick.")
			if err != nil {
				if len(p.Homebodies) == 0 {
					return nil, c.descErr(err)
				}
				c.scan.Reset(pos)
				break
			}
			h.Toggle.PlayerName = name
		}
		toggle, err := c.parseTogglePerforming(h.line())
		if err != nil {
			return nil, err
		}
		toggle.PlayerName = h.Toggle.PlayerName
		h.Toggle = *toggle
		p.Homebodies = append(p.Homebodies, h)
		c.scan.TryTag("\n")
	}
	return p, c.finish()
}

func (p *Homebody) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	for i := range p.Homebodies {
		h := &p.Homebodies[i]
		b.pushDescription(h.line())
		toggle := h.Toggle
		b.pushTogglePerforming(&toggle, h.line(), "HOMEBODY")
	}
	return b.build(wire.Homebody)
}

// PerkPlayer is one player Perking up in Coffee weather.
type PerkPlayer struct {
	PlayerName string           `json:"playerName"`
	Change     PerformingChange `json:"change"`
}

// Perk is the game-start list of Perk players gaining Overperforming.
type Perk struct {
	Game    GameRef      `json:"game"`
	Players []PerkPlayer `json:"players"`
}

func parsePerk(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Perk{Game: game}
	for {
		pos := c.scan.Pos()
		name, err := c.scan.Terminated(" Perks up.")
		if err != nil {
			c.scan.Reset(pos)
			break
		}
		change, err := c.parsePerformingChange(name+" Perks up.", true)
		if err != nil {
			return nil, err
		}
		p.Players = append(p.Players, PerkPlayer{PlayerName: name, Change: *change})
		c.scan.TryTag("\n")
	}
	if len(p.Players) == 0 {
		return nil, c.descErr(c.scan.Tag(" Perks up."))
	}
	return p, c.finish()
}

func (p *Perk) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	for i := range p.Players {
		pl := &p.Players[i]
		line := pl.PlayerName + " Perks up."
		b.pushDescription(line)
		change := pl.Change
		b.pushPerformingChange(&change, line)
	}
	return b.build(wire.Perk)
}

// UnderOver is the Under Over mod toggling at game boundaries.
type UnderOver struct {
	Game       GameRef          `json:"game"`
	PlayerName string           `json:"playerName"`
	On         bool             `json:"on"`
	Change     PerformingChange `json:"change"`
}

func underOverLine(name, label string, on bool) string {
	state := "Off"
	if on {
		state = "On"
	}
	return name + ", " + label + ", " + state + "."
}

func parseUnderOver(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &UnderOver{Game: game}
	if p.PlayerName, err = c.scan.Terminated(", Under Over, "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("On."):
		p.On = true
	case c.scan.TryTag("Off."):
	default:
		return nil, c.descErr(c.scan.Tag("On."))
	}
	change, err := c.parsePerformingChange(underOverLine(p.PlayerName, "Under Over", p.On), true)
	if err != nil {
		return nil, err
	}
	p.Change = *change
	return p, c.finish()
}

func (p *UnderOver) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	line := underOverLine(p.PlayerName, "Under Over", p.On)
	b.pushDescription(line)
	change := p.Change
	b.pushPerformingChange(&change, line)
	return b.build(wire.UnderOver)
}

// OverUnder is the Over Under mod toggling at game boundaries.
type OverUnder struct {
	Game       GameRef          `json:"game"`
	PlayerName string           `json:"playerName"`
	On         bool             `json:"on"`
	Change     PerformingChange `json:"change"`
}

func parseOverUnder(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &OverUnder{Game: game}
	if p.PlayerName, err = c.scan.Terminated(", Over Under, "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("On."):
		p.On = true
	case c.scan.TryTag("Off."):
	default:
		return nil, c.descErr(c.scan.Tag("On."))
	}
	change, err := c.parsePerformingChange(underOverLine(p.PlayerName, "Over Under", p.On), true)
	if err != nil {
		return nil, err
	}
	p.Change = *change
	return p, c.finish()
}

func (p *OverUnder) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	line := underOverLine(p.PlayerName, "Over Under", p.On)
	b.pushDescription(line)
	change := p.Change
	b.pushPerformingChange(&change, line)
	return b.build(wire.OverUnder)
}

// Undersea is an Undersea team going Overperforming as they fall behind.
type Undersea struct {
	Game     GameRef          `json:"game"`
	TeamName string           `json:"teamName"`
	Change   PerformingChange `json:"change"`
}

func parseUndersea(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Undersea{Game: game}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamName, err = c.scan.Terminated(" go Undersea. They're now Overperforming!"); err != nil {
		return nil, c.descErr(err)
	}
	change, err := c.parsePerformingChange(
		"The "+p.TeamName+" go Undersea. They're now Overperforming!", false)
	if err != nil {
		return nil, err
	}
	p.Change = *change
	return p, c.finish()
}

func (p *Undersea) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	line := "The " + p.TeamName + " go Undersea. They're now Overperforming!"
	b.pushDescription(line)
	change := p.Change
	b.pushPerformingChange(&change, line)
	return b.build(wire.Undersea)
}

// HighPressure is a High Pressure team toggling Overperforming with
// runners on.
type HighPressure struct {
	Game         GameRef          `json:"game"`
	TeamNickname string           `json:"teamNickname"`
	On           bool             `json:"on"`
	Change       PerformingChange `json:"change"`
}

func highPressureLine(nickname string, on bool) string {
	if on {
		return "The pressure is on! The " + nickname + " are Overperforming."
	}
	return "The pressure is off. The " + nickname + " are no longer Overperforming."
}

func parseHighPressure(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HighPressure{Game: game}
	switch {
	case c.scan.TryTag("The pressure is on! The "):
		p.On = true
		if p.TeamNickname, err = c.scan.Terminated(" are Overperforming."); err != nil {
			return nil, c.descErr(err)
		}
	default:
		if err := c.scan.Tag("The pressure is off. The "); err != nil {
			return nil, c.descErr(err)
		}
		if p.TeamNickname, err = c.scan.Terminated(" are no longer Overperforming."); err != nil {
			return nil, c.descErr(err)
		}
	}
	change, err := c.parsePerformingChange(highPressureLine(p.TeamNickname, p.On), false)
	if err != nil {
		return nil, err
	}
	p.Change = *change
	return p, c.finish()
}

func (p *HighPressure) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	line := highPressureLine(p.TeamNickname, p.On)
	b.pushDescription(line)
	change := p.Change
	b.pushPerformingChange(&change, line)
	return b.build(wire.HighPressure)
}

// Psychoacoustics is a Resonating stadium echoing a mod to the other
// team. Before season 15 day 33 the sim said "at" and left the parent
// text blank.
type Psychoacoustics struct {
	Game GameRef `json:"game"`

	Mods []SubseasonalMod `json:"mods"`

	StadiumName  string      `json:"stadiumName"`
	TeamID       uuid.UUID   `json:"teamId"`
	TeamNickname string      `json:"teamNickname"`
	ModName      string      `json:"modName"`
	ModID        string      `json:"modId"`
	SubEvent     SubEventRef `json:"subEvent"`
}

func psychoacousticsEarly(season, day int) bool {
	return season < 15 || (season == 15 && day < 33)
}

func psychoacousticsLine(p *Psychoacoustics, early bool) string {
	word := " to the "
	if early {
		word = " at the "
	}
	return p.StadiumName + " is Resonating.\nPsychoAcoustics Echo " + p.ModName + word + p.TeamNickname + "."
}

func parsePsychoacoustics(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Psychoacoustics{Game: game}
	if p.Mods, err = c.parseSubseasonalMods(c.record.Season); err != nil {
		return nil, err
	}
	early := psychoacousticsEarly(c.record.Season, c.record.Day)
	word := " to the "
	if early {
		word = " at the "
	}
	if !early {
		if p.StadiumName, err = c.scan.Terminated(" is Resonating.\nPsychoAcoustics Echo "); err != nil {
			return nil, c.descErr(err)
		}
		if p.ModName, err = c.scan.Terminated(word); err != nil {
			return nil, c.descErr(err)
		}
		if p.TeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
			return nil, c.descErr(err)
		}
	}

	child, err := c.nextChild(wire.AddedModFromOtherMod)
	if err != nil {
		return nil, err
	}
	if early {
		if p.StadiumName, err = child.scan.Terminated(" is Resonating.\nPsychoAcoustics Echo "); err != nil {
			return nil, child.descErr(err)
		}
		if p.ModName, err = child.scan.Terminated(word); err != nil {
			return nil, child.descErr(err)
		}
		if p.TeamNickname, err = child.scan.UntilPeriodEOF(); err != nil {
			return nil, child.descErr(err)
		}
	} else {
		if err := child.scan.Tag(psychoacousticsLine(p, early)); err != nil {
			return nil, child.descErr(err)
		}
	}
	p.SubEvent = child.subEvent()
	if p.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if p.ModID, err = child.metaString("mod"); err != nil {
		return nil, err
	}
	if got, err := child.metaString("source"); err != nil {
		return nil, err
	} else if got != "PSYCHOACOUSTICS" {
		return nil, child.metaTypeError("source", "PSYCHOACOUSTICS", nil)
	}
	if _, err := child.metaInt("type"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *Psychoacoustics) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushSubseasonalMods(p.Mods, b.rec.Season)
	early := psychoacousticsEarly(b.rec.Season, b.rec.Day)
	line := psychoacousticsLine(p, early)
	if !early {
		b.pushDescription(line)
	}
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(line)
		child.pushTeamTag(p.TeamID)
		child.pushMetaString("mod", p.ModID)
		child.pushMetaString("source", "PSYCHOACOUSTICS")
		child.pushMetaInt("type", int64(ModGame))
		return child.build(wire.AddedModFromOtherMod)
	})
	return b.build(wire.Psychoacoustics)
}

// SeasonalModsChange covers the Earlbird, Late to the Party, Middling,
// Ambitious and Coasting announcements. The record kind comes from the
// last toggle's source mod.
type SeasonalModsChange struct {
	Game    GameRef          `json:"game"`
	Changes []SubseasonalMod `json:"changes"`
}

func subseasonalKind(modID string) wire.EventType {
	for _, src := range subseasonalSources {
		if src.modID == modID {
			return src.kind
		}
	}
	return wire.Undefined
}

func parseSeasonalModsChange(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &SeasonalModsChange{Game: game}
	if p.Changes, err = c.parseSubseasonalMods(c.record.Season); err != nil {
		return nil, err
	}
	if len(p.Changes) == 0 {
		return nil, errors.WithMetadata(errors.CodeDescriptionParseFailed,
			"no seasonal mod change matched", c.tagMeta(map[string]string{"rest": c.scan.Rest()}))
	}
	return p, c.finish()
}

func (p *SeasonalModsChange) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushSubseasonalMods(p.Changes, b.rec.Season)
	return b.build(subseasonalKind(p.Changes[len(p.Changes)-1].SourceModID))
}

// PlayerModExpires is a player's timed mods wearing off at a phase
// boundary.
type PlayerModExpires struct {
	TeamID     uuid.UUID   `json:"teamId"`
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
	ModIDs     []string    `json:"modIds"`
	Duration   ModDuration `json:"duration"`
}

// TeamModExpires is a team's timed mods wearing off.
type TeamModExpires struct {
	TeamID       uuid.UUID   `json:"teamId"`
	TeamNickname string      `json:"teamNickname"`
	ModIDs       []string    `json:"modIds"`
	Duration     ModDuration `json:"duration"`
}

func parseModExpires(c *cursor) (Payload, error) {
	typ, err := c.metaInt("type")
	if err != nil {
		return nil, err
	}
	duration, err := ModDurationFromValue(typ)
	if err != nil {
		return nil, err
	}
	mods, err := c.metaStrings("mods")
	if err != nil {
		return nil, err
	}
	tail := " " + duration.String() + " mods wore off."
	if c.hasPlayerTags() {
		p := &PlayerModExpires{ModIDs: mods, Duration: duration}
		poss, err := c.scan.Terminated(tail)
		if err != nil {
			return nil, c.descErr(err)
		}
		name, ok := trimPossessive(poss)
		if !ok {
			return nil, errors.WithMetadata(errors.CodeDescriptionParseFailed,
				"expected possessive name", c.tagMeta(map[string]string{"name": poss}))
		}
		p.PlayerName = name
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	p := &TeamModExpires{ModIDs: mods, Duration: duration}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	poss, err := c.scan.Terminated(tail)
	if err != nil {
		return nil, c.descErr(err)
	}
	name, ok := trimPossessive(poss)
	if !ok {
		return nil, errors.WithMetadata(errors.CodeDescriptionParseFailed,
			"expected possessive name", c.tagMeta(map[string]string{"name": poss}))
	}
	p.TeamNickname = name
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerModExpires) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(possessive(p.PlayerName) + " " + p.Duration.String() + " mods wore off.")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaStrings("mods", p.ModIDs)
	b.pushMetaInt("type", int64(p.Duration))
	return b.build(wire.ModExpires)
}

func (p *TeamModExpires) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + possessive(p.TeamNickname) + " " + p.Duration.String() + " mods wore off.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaStrings("mods", p.ModIDs)
	b.pushMetaInt("type", int64(p.Duration))
	return b.build(wire.ModExpires)
}

// TeamEnteredPartyTime is a team dropping out of contention.
type TeamEnteredPartyTime struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func (p *TeamEnteredPartyTime) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " have entered Party Time!")
	b.pushTeamTag(p.TeamID)
	b.pushMetaString("mod", "PARTY_TIME")
	b.pushMetaInt("type", int64(ModSeasonal))
	return b.build(wire.AddedMod)
}

// TeamLeftPartyTime is a partying team clawing back into the Postseason.
type TeamLeftPartyTime struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func (p *TeamLeftPartyTime) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " have been removed from Party Time to join the Postseason!")
	b.pushTeamTag(p.TeamID)
	b.pushMetaString("mod", "PARTY_TIME")
	b.pushMetaInt("type", int64(ModSeasonal))
	return b.build(wire.RemovedMod)
}

// TeamGainedFreeWill is a team winning Free Will in the election.
type TeamGainedFreeWill struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func (p *TeamGainedFreeWill) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " gain Free Will.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaString("mod", "FREE_WILL")
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.AddedMod)
}

// TeamUsedFreeWill is a team spending their Free Will.
type TeamUsedFreeWill struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func (p *TeamUsedFreeWill) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " used their Free Will.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaString("mod", "FREE_WILL")
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.RemovedMod)
}

// PlayerLostMod is a player losing a named mod outside any game.
type PlayerLostMod struct {
	TeamID     uuid.UUID `json:"teamId"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	ModID      string    `json:"modId"`
	ModName    string    `json:"modName"`
}

func (p *PlayerLostMod) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " lost the " + p.ModName + " mod.")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaString("mod", p.ModID)
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.RemovedMod)
}

// PlayerNamedMVP is a player collecting an Ego star. The first award
// adds EGO1; later awards step the mod up a level.
type PlayerNamedMVP struct {
	TeamID     uuid.UUID `json:"teamId"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Level      int       `json:"level"`
}

func (p *PlayerNamedMVP) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	if p.Level <= 1 {
		b.pushDescription(p.PlayerName + " is named an MVP.")
		b.pushTeamTag(p.TeamID)
		b.pushPlayerTag(p.PlayerID)
		b.pushMetaString("mod", "EGO1")
		b.pushMetaInt("type", int64(ModPermanent))
		return b.build(wire.AddedMod)
	}
	punct := "!"
	if p.Level == 2 {
		punct = "."
	}
	b.pushDescription(p.PlayerName + " is named a " + strconv.Itoa(p.Level) + "-Time MVP" + punct)
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaString("from", "EGO"+strconv.Itoa(p.Level-1))
	b.pushMetaString("to", "EGO"+strconv.Itoa(p.Level))
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.ModChange)
}

// InvestigationConcluded closes out a stadium's Crime Scene.
type InvestigationConcluded struct {
	TeamID      uuid.UUID `json:"teamId"`
	StadiumName string    `json:"stadiumName"`
}

func (p *InvestigationConcluded) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The Crime Scene Investigation at " + p.StadiumName + " has concluded.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaString("mod", "CRIME_SCENE")
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.RemovedMod)
}

// parseAddedMod routes the standalone AddedMod grammars.
func parseAddedMod(c *cursor) (Payload, error) {
	pos := c.scan.Pos()
	if c.scan.TryTag("The ") {
		if team, err := c.scan.Terminated(" have entered Party Time!"); err == nil {
			p := &TeamEnteredPartyTime{TeamNickname: team}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			if err := consumeModMeta(c); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
		c.scan.TryTag("The ")
		if team, err := c.scan.Terminated(" gain Free Will."); err == nil {
			p := &TeamGainedFreeWill{TeamNickname: team}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			if err := consumeModMeta(c); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
	}
	if name, err := c.scan.Terminated(" faded to dust."); err == nil {
		p := &ReplicaDustAdded{PlayerName: name}
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if err := consumeModMeta(c); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	name, err := c.scan.Terminated(" is named an MVP.")
	if err != nil {
		return nil, c.descErr(err)
	}
	p := &PlayerNamedMVP{PlayerName: name, Level: 1}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if err := consumeModMeta(c); err != nil {
		return nil, err
	}
	return p, c.finish()
}

// parseRemovedMod routes the standalone RemovedMod grammars.
func parseRemovedMod(c *cursor) (Payload, error) {
	pos := c.scan.Pos()
	if c.scan.TryTag("The Crime Scene Investigation at ") {
		p := &InvestigationConcluded{}
		var err error
		if p.StadiumName, err = c.scan.Terminated(" has concluded."); err != nil {
			return nil, c.descErr(err)
		}
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if err := consumeModMeta(c); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	if c.scan.TryTag("The ") {
		if team, err := c.scan.Terminated(" have been removed from Party Time to join the Postseason!"); err == nil {
			p := &TeamLeftPartyTime{TeamNickname: team}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			if err := consumeModMeta(c); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
		c.scan.TryTag("The ")
		if team, err := c.scan.Terminated(" used their Free Will."); err == nil {
			p := &TeamUsedFreeWill{TeamNickname: team}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			if err := consumeModMeta(c); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
	}
	p := &PlayerLostMod{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" lost the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ModName, err = c.scan.Terminated(" mod."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.ModID, err = c.metaString("mod"); err != nil {
		return nil, err
	}
	if _, err := c.metaInt("type"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

// parseModChange routes the standalone ModChange grammars. The only one
// observed is the repeat MVP award.
func parseModChange(c *cursor) (Payload, error) {
	p := &PlayerNamedMVP{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" is named a "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Level, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	punct := "!"
	if p.Level == 2 {
		punct = "."
	}
	if err := c.scan.Tag("-Time MVP" + punct); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err := c.metaString("from"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("to"); err != nil {
		return nil, err
	}
	if _, err := c.metaInt("type"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

// consumeModMeta reads the "mod" and "type" keys of a standalone mod
// record whose values are fixed by its grammar.
func consumeModMeta(c *cursor) error {
	if _, err := c.metaString("mod"); err != nil {
		return err
	}
	_, err := c.metaInt("type")
	return err
}

// LineupSorted is the Tot Clark blessing optimizing a lineup.
type LineupSorted struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func parseLineupSorted(c *cursor) (Payload, error) {
	p := &LineupSorted{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	poss, err := c.scan.Terminated(" lineup has been optimized.")
	if err != nil {
		return nil, c.descErr(err)
	}
	name, ok := trimPossessive(poss)
	if !ok {
		return nil, errors.WithMetadata(errors.CodeDescriptionParseFailed,
			"expected possessive name", c.tagMeta(map[string]string{"name": poss}))
	}
	p.TeamNickname = name
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *LineupSorted) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + possessive(p.TeamNickname) + " lineup has been optimized.")
	b.pushTeamTag(p.TeamID)
	return b.build(wire.LineupSorted)
}
