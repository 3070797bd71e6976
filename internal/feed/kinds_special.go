package feed

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

// PeanutMister is the Peanut Mister curing a player's allergy.
type PeanutMister struct {
	Game       GameRef   `json:"game"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`

	// SuperallergyRemoved is set when the cured allergy was a Superallergy.
	SuperallergyRemoved *ModChange `json:"superallergyRemoved"`
}

func parsePeanutMister(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &PeanutMister{Game: game}
	if err := c.scan.Tag("The Peanut Mister activates!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, err = c.scan.Terminated(" "); err != nil {
		return nil, c.descErr(err)
	}
	superallergic := false
	switch {
	case c.scan.TryTag("has been cured of their peanut allergy!"):
	case c.scan.TryTag("is no longer Superallergic!"):
		superallergic = true
	default:
		return nil, c.descErr(c.scan.Tag("has been cured of their peanut allergy!"))
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if superallergic {
		child, err := c.nextChild(wire.RemovedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(p.PlayerName + " lost the Superallergic mod."); err != nil {
			return nil, child.descErr(err)
		}
		m := &ModChange{SubEvent: child.subEvent()}
		if _, err := child.nextPlayerID(); err != nil {
			return nil, err
		}
		if m.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
		p.SuperallergyRemoved = m
	}
	return p, c.finish()
}

func (p *PeanutMister) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	effect := "has been cured of their peanut allergy"
	if p.SuperallergyRemoved != nil {
		effect = "is no longer Superallergic"
	}
	b.pushDescription("The Peanut Mister activates!\n" + p.PlayerName + " " + effect + "!")
	b.pushPlayerTag(p.PlayerID)
	if m := p.SuperallergyRemoved; m != nil {
		teamID := m.TeamID
		b.pushModEffect(m.SubEvent, wire.RemovedMod,
			p.PlayerName+" lost the Superallergic mod.", &teamID, p.PlayerID, "SUPERALLERGIC", int64(ModPermanent))
	}
	return b.build(wire.PeanutMister)
}

// Party is a player partying under Party Time.
type Party struct {
	Game   GameRef          `json:"game"`
	Change PlayerStatChange `json:"change"`
}

func parseParty(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Party{Game: game}
	name, err := c.scan.Terminated(" is Partying!")
	if err != nil {
		return nil, c.descErr(err)
	}
	if _, err := c.nextPlayerID(); err != nil {
		return nil, err
	}
	change, err := c.parseStatChangeChild(name+" is Partying!", StatChangeAll)
	if err != nil {
		return nil, err
	}
	change.PlayerName = name
	p.Change = *change
	return p, c.finish()
}

func (p *Party) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription(p.Change.PlayerName + " is Partying!")
	b.pushPlayerTag(p.Change.PlayerID)
	change := p.Change
	b.pushStatChangeChild(&change, p.Change.PlayerName+" is Partying!", StatChangeAll)
	return b.build(wire.Party)
}

// RunsOverflowing is overflow runs spilling onto a team under Polarity.
// Runs is negative for Unruns.
type RunsOverflowing struct {
	Game         GameRef `json:"game"`
	TeamNickname string  `json:"teamNickname"`
	Runs         float64 `json:"runs"`
}

// runsOverflowingAmount renders the signed run count with its unit.
func runsOverflowingAmount(runs float64) string {
	switch {
	case runs == -1:
		return "1 Unrun"
	case runs == 1:
		return "1 Run"
	case runs < 0:
		return formatRuns(-runs) + " Unruns"
	default:
		return formatRuns(runs) + " Runs"
	}
}

func parseRunsOverflowing(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &RunsOverflowing{Game: game}
	if err := c.scan.Tag("Runs are Overflowing!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" gain "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Runs, err = c.scan.Float(); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag(" Run."), c.scan.TryTag(" Runs."):
	case c.scan.TryTag(" Unrun."), c.scan.TryTag(" Unruns."):
		p.Runs = -p.Runs
	default:
		return nil, c.descErr(c.scan.Tag(" Runs."))
	}
	return p, c.finish()
}

func (p *RunsOverflowing) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Runs are Overflowing!\n" + p.TeamNickname + " gain " + runsOverflowingAmount(p.Runs) + ".")
	return b.build(wire.RunsOverflowing)
}

// HomeFieldAdvantage is the home team starting with a run.
type HomeFieldAdvantage struct {
	Game         GameRef `json:"game"`
	TeamNickname string  `json:"teamNickname"`
}

func parseHomeFieldAdvantage(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HomeFieldAdvantage{Game: game}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" apply Home Field advantage!"); err != nil {
		return nil, c.descErr(err)
	}
	return p, c.finish()
}

func (p *HomeFieldAdvantage) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The " + p.TeamNickname + " apply Home Field advantage!")
	return b.build(wire.HomeFieldAdvantage)
}

// HolidayInning is Hotel Motel weather comping an inning.
type HolidayInning struct {
	Game   GameRef `json:"game"`
	Inning int     `json:"inning"`
}

func parseHolidayInning(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &HolidayInning{Game: game}
	if err := c.scan.Tag("Hotel Motel\nInning "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Inning, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" is a Holiday Inning!"); err != nil {
		return nil, c.descErr(err)
	}
	return p, c.finish()
}

func (p *HolidayInning) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription("Hotel Motel")
	b.pushDescription("Inning " + strconv.Itoa(p.Inning) + " is a Holiday Inning!")
	return b.build(wire.HolidayInning)
}

// PrizeMatch announces the item the winning team will receive. The item
// name runs to the end of the text with no closing punctuation.
type PrizeMatch struct {
	Game     GameRef `json:"game"`
	ItemName string  `json:"itemName"`
}

func parsePrizeMatch(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &PrizeMatch{Game: game}
	if err := c.scan.Tag("Prize Match!\nThe Winner gets "); err != nil {
		return nil, c.descErr(err)
	}
	p.ItemName = takeRest(c.scan)
	return p, c.finish()
}

func (p *PrizeMatch) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Prize Match!\nThe Winner gets " + p.ItemName)
	return b.build(wire.PrizeMatch)
}

// SolarPanelsAwait is the Solar Panels lining up before Sun 2 weather.
type SolarPanelsAwait struct {
	Game GameRef `json:"game"`
}

func parseSolarPanelsAwait(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("The Solar Panels are angled toward Sun 2."); err != nil {
		return nil, c.descErr(err)
	}
	return &SolarPanelsAwait{Game: game}, c.finish()
}

func (p *SolarPanelsAwait) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Solar Panels are angled toward Sun 2.")
	return b.build(wire.SolarPanelsAwait)
}

// SolarPanelsActivation is the Solar Panels banking runs that Sun 2
// would have spent.
type SolarPanelsActivation struct {
	Game         GameRef `json:"game"`
	NumRuns      int     `json:"numRuns"`
	TeamNickname string  `json:"teamNickname"`
}

func parseSolarPanelsActivation(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &SolarPanelsActivation{Game: game}
	if err := c.scan.Tag("The Solar Panels absorb Sun 2's energy!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.NumRuns, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" Runs are collected and saved for the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated("'s next game."); err != nil {
		return nil, c.descErr(err)
	}
	return p, c.finish()
}

func (p *SolarPanelsActivation) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Solar Panels absorb Sun 2's energy!\n" + strconv.Itoa(p.NumRuns) +
		" Runs are collected and saved for the " + p.TeamNickname + "'s next game.")
	return b.build(wire.SolarPanelsActivation)
}

// TeamDidShame records a shaming from the shaming team's side. It stands
// alone outside any game.
type TeamDidShame struct {
	ShamingTeamID       uuid.UUID `json:"shamingTeamId"`
	ShamingTeamNickname string    `json:"shamingTeamNickname"`
	ShamedTeamNickname  string    `json:"shamedTeamNickname"`
	TotalShames         int64     `json:"totalShames"`
	TotalShamings       int64     `json:"totalShamings"`
}

func parseTeamDidShame(c *cursor) (Payload, error) {
	p := &TeamDidShame{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.ShamingTeamNickname, err = c.scan.Terminated(" shamed the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShamedTeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShamingTeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.TotalShames, err = c.metaInt("totalShames"); err != nil {
		return nil, err
	}
	if p.TotalShamings, err = c.metaInt("totalShamings"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *TeamDidShame) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription("The " + p.ShamingTeamNickname + " shamed the " + p.ShamedTeamNickname + ".")
	b.pushTeamTag(p.ShamingTeamID)
	b.pushMetaInt("totalShames", p.TotalShames)
	b.pushMetaInt("totalShamings", p.TotalShamings)
	return b.build(wire.TeamDidShame)
}

// TeamWasShamed records a shaming from the shamed team's side.
type TeamWasShamed struct {
	ShamedTeamID        uuid.UUID `json:"shamedTeamId"`
	ShamedTeamNickname  string    `json:"shamedTeamNickname"`
	ShamingTeamNickname string    `json:"shamingTeamNickname"`
	TotalShames         int64     `json:"totalShames"`
	TotalShamings       int64     `json:"totalShamings"`
}

func parseTeamWasShamed(c *cursor) (Payload, error) {
	p := &TeamWasShamed{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.ShamedTeamNickname, err = c.scan.Terminated(" were shamed by the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShamingTeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShamedTeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.TotalShames, err = c.metaInt("totalShames"); err != nil {
		return nil, err
	}
	if p.TotalShamings, err = c.metaInt("totalShamings"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *TeamWasShamed) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription("The " + p.ShamedTeamNickname + " were shamed by the " + p.ShamingTeamNickname + ".")
	b.pushTeamTag(p.ShamedTeamID)
	b.pushMetaInt("totalShames", p.TotalShames)
	b.pushMetaInt("totalShamings", p.TotalShamings)
	return b.build(wire.TeamWasShamed)
}

// DonatedShame is a shamed team spending donated Unruns.
type DonatedShame struct {
	Game         GameRef `json:"game"`
	TeamNickname string  `json:"teamNickname"`
	Unruns       float64 `json:"unruns"`
}

func parseDonatedShame(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &DonatedShame{Game: game}
	if err := c.scan.Tag("Shame Donations are granted!\nThe "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" receive "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Unruns, err = c.scan.Float(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" Unruns."); err != nil {
		return nil, c.descErr(err)
	}
	return p, c.finish()
}

func (p *DonatedShame) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Shame Donations are granted!")
	b.pushDescription("The " + p.TeamNickname + " receive " + formatRuns(p.Unruns) + " Unruns.")
	return b.build(wire.ShameDonor)
}

// EnterSecretBase is a runner slipping into the Secret Base.
type EnterSecretBase struct {
	Game       GameRef   `json:"game"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parseEnterSecretBase(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &EnterSecretBase{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" enters the Secret Base..."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *EnterSecretBase) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " enters the Secret Base...")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.EnterSecretBase)
}

// ExitSecretBase is the runner emerging onto second base.
type ExitSecretBase struct {
	Game       GameRef   `json:"game"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parseExitSecretBase(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &ExitSecretBase{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" exits the Secret Base to Second Base!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *ExitSecretBase) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " exits the Secret Base to Second Base!")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.ExitSecretBase)
}

// GrindRail is a runner grinding toward third. The first trick always
// lands; the second decides the outcome.
type GrindRail struct {
	Game       GameRef        `json:"game"`
	PlayerID   uuid.UUID      `json:"playerId"`
	PlayerName string         `json:"playerName"`
	FirstTrick GrindRailTrick `json:"firstTrick"`

	Outcome GrindRailOutcome `json:"outcome"`

	// SecondTrick is null on a bail.
	SecondTrick *GrindRailTrick `json:"secondTrick"`
}

// grindRailTrickText renders "{name} ({points})".
func grindRailTrickText(t GrindRailTrick) string {
	return t.TrickName + " (" + strconv.Itoa(t.Points) + ")"
}

// parseGrindRailTrick reads a trick up to the given terminator after the
// closing paren.
func (c *cursor) parseGrindRailTrick(terminator string) (GrindRailTrick, error) {
	var t GrindRailTrick
	var err error
	if t.TrickName, err = c.scan.Terminated(" ("); err != nil {
		return t, c.descErr(err)
	}
	if t.Points, err = c.scan.WholeNumber(); err != nil {
		return t, c.descErr(err)
	}
	if err := c.scan.Tag(")" + terminator); err != nil {
		return t, c.descErr(err)
	}
	return t, nil
}

func parseGrindRail(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &GrindRail{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" hops on the Grind Rail toward third base.\nThey do a "); err != nil {
		return nil, c.descErr(err)
	}
	if p.FirstTrick, err = c.parseGrindRailTrick("!\n"); err != nil {
		return nil, err
	}
	switch {
	case c.scan.TryTag("They land a "):
		p.Outcome = GrindRailSafe
		trick, err := c.parseGrindRailTrick("!\nSafe!")
		if err != nil {
			return nil, err
		}
		p.SecondTrick = &trick
	case c.scan.TryTag("They're tagged out doing a "):
		p.Outcome = GrindRailTaggedOut
		trick, err := c.parseGrindRailTrick("!")
		if err != nil {
			return nil, err
		}
		p.SecondTrick = &trick
	default:
		p.Outcome = GrindRailBailed
		if err := c.scan.Tag("... but lose their balance and bail!\nOut!"); err != nil {
			return nil, c.descErr(err)
		}
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *GrindRail) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	var success string
	switch p.Outcome {
	case GrindRailSafe:
		success = "They land a " + grindRailTrickText(*p.SecondTrick) + "!\nSafe!"
	case GrindRailTaggedOut:
		success = "They're tagged out doing a " + grindRailTrickText(*p.SecondTrick) + "!"
	default:
		success = "... but lose their balance and bail!\nOut!"
	}
	b.pushDescription(p.PlayerName + " hops on the Grind Rail toward third base.\nThey do a " +
		grindRailTrickText(p.FirstTrick) + "!\n" + success)
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.GrindRail)
}

// ABloodType is a whole team drawing a blood type under A blood.
type ABloodType struct {
	Game           GameRef     `json:"game"`
	TeamID         uuid.UUID   `json:"teamId"`
	TeamNickname   string      `json:"teamNickname"`
	BloodTypeModID string      `json:"bloodTypeModId"`
	SubEvent       SubEventRef `json:"subEvent"`
}

func parseABloodType(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &ABloodType{Game: game}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" have A Blood Type."); err != nil {
		return nil, c.descErr(err)
	}

	child, err := c.nextChild(wire.AddedModFromOtherMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("The " + p.TeamNickname + " have A Blood Type."); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if p.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if p.BloodTypeModID, err = child.metaString("mod"); err != nil {
		return nil, err
	}
	if source, err := child.metaString("source"); err != nil {
		return nil, err
	} else if source != "A" {
		return nil, child.metaTypeError("source", "A", nil)
	}
	if _, err := child.metaInt("type"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *ABloodType) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	desc := "The " + p.TeamNickname + " have A Blood Type."
	b.pushDescription(desc)
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushTeamTag(p.TeamID)
		child.pushMetaString("mod", p.BloodTypeModID)
		child.pushMetaString("source", "A")
		child.pushMetaInt("type", int64(ModGame))
		return child.build(wire.AddedModFromOtherMod)
	})
	return b.build(wire.GainBloodType)
}
