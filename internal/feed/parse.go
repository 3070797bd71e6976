package feed

import (
	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/wire"
)

// Redacted is a record scrubbed from the public feed. Only the strikeout
// bars survive in the description, plus the scales counter. Redacted
// records are the one place the tag lists are null rather than empty, so
// the payload rebuilds the record without the builder's empty tag lists.
type Redacted struct {
	Description string `json:"description"`
	Scales      int64  `json:"scales"`
}

func parseRedacted(c *cursor) (Payload, error) {
	p := &Redacted{Description: takeRest(c.scan)}
	redacted, err := c.metaBool("redacted")
	if err != nil {
		return nil, err
	}
	if !redacted {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "undefined event is not marked redacted",
			c.tagMeta(nil))
	}
	if p.Scales, err = c.metaInt("scales"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *Redacted) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryRedacted)
	b.pushDescription(p.Description)
	b.pushMetaBool("redacted", true)
	b.pushMetaInt("scales", p.Scales)
	rec := b.build(wire.Undefined)
	rec.PlayerTags = nil
	rec.GameTags = nil
	rec.TeamTags = nil
	return rec
}

// Parse decodes one wire record into its typed occurrence. Children are
// sorted into canonical sub-play order before parsing, so Build on the
// result reproduces the canonicalized input bit for bit.
func Parse(rec wire.Record) (Occurrence, error) {
	wire.SortChildren(&rec)
	c := newCursor(&rec)
	payload, err := parsePayload(c)
	if err != nil {
		return Occurrence{}, err
	}
	return Occurrence{
		ID:         rec.ID,
		Created:    rec.Created,
		Sim:        rec.Sim,
		Day:        rec.Day,
		Season:     rec.Season,
		Tournament: rec.Tournament,
		Phase:      rec.Phase,
		Nuts:       rec.Nuts,
		Payload:    payload,
	}, nil
}

func notImplemented(c *cursor) error {
	return errors.WithMetadata(errors.CodeNotImplemented, "event type not implemented",
		c.tagMeta(nil))
}

// parsePayload dispatches on the record's discriminant. A handful of
// kinds share a discriminant and are told apart by context: tarot readings
// reuse the mod and item kinds, the community chest kind covers both the
// in-game message and the per-player ledger record, and the blessing kind
// covers gifts.
func parsePayload(c *cursor) (Payload, error) {
	switch c.kind() {
	case wire.Undefined:
		return parseRedacted(c)
	case wire.LetsGo:
		return parseGameStart(c)
	case wire.PlayBall:
		return parsePlayBall(c)
	case wire.HalfInning:
		return parseHalfInningStart(c, c.record.Season)
	case wire.PitcherChange:
		return parsePitcherChange(c)
	case wire.StolenBase:
		return parseStolenBase(c)
	case wire.Walk:
		return parseWalk(c)
	case wire.Strikeout:
		return parseStrikeout(c)
	case wire.FlyOut:
		return parseFlyout(c)
	case wire.GroundOut:
		return parseGroundOut(c, c.record.Season)
	case wire.HomeRun:
		return parseHomeRun(c)
	case wire.Hit:
		return parseHit(c)
	case wire.GameEnd:
		return parseGameEnd(c)
	case wire.BatterUp:
		return parseBatterUp(c)
	case wire.Strike:
		return parseStrike(c)
	case wire.Ball:
		return parseBall(c)
	case wire.FoulBall:
		return parseFoulBall(c, c.record.Season)
	case wire.RunsOverflowing:
		return parseRunsOverflowing(c)
	case wire.HomeFieldAdvantage:
		return parseHomeFieldAdvantage(c)
	case wire.HitByPitch:
		return parseHitByPitch(c)
	case wire.BatterSkipped:
		return parseBatterSkipped(c)
	case wire.Party:
		return parseParty(c)
	case wire.StrikeZapped:
		return parseStrikeZapped(c)
	case wire.MildPitch:
		return parseMildPitch(c)
	case wire.InningEnd:
		return parseInningEnd(c)
	case wire.BigDeal:
		return parseBeingSpeech(c)
	case wire.BlackHole:
		return parseBlackHole(c)
	case wire.Sun2:
		return parseSun2(c)
	case wire.BirdsCircle:
		return parseBirdsCircle(c)
	case wire.AmbushedByCrows:
		return parseAmbushedByCrows(c)
	case wire.BirdsUnshell:
		return parseBirdsUnshell(c)
	case wire.BecomeTripleThreat:
		return parseBecomeTripleThreat(c)
	case wire.GainFreeRefill:
		return parseGainFreeRefill(c)
	case wire.CoffeeBean:
		return parseCoffeeBean(c)
	case wire.FeedbackBlocked:
		return parseFeedbackBlocked(c)
	case wire.FeedbackSwap:
		return parseFeedbackSwap(c)
	case wire.SuperallergicReaction:
		return parseSuperallergicReaction(c)
	case wire.AllergicReaction:
		return parseAllergicReaction(c)
	case wire.ReverbBestowsReverberating:
		return parseBestowReverberating(c)
	case wire.ReverbRosterShuffle:
		return parseRosterReverb(c)
	case wire.Blooddrain:
		return parseBlooddrain(c, false)
	case wire.BlooddrainSiphon:
		return parseBlooddrain(c, true)
	case wire.BlooddrainBlocked:
		return parseBlooddrainBlocked(c)
	case wire.Incineration:
		return parseIncineration(c)
	case wire.IncinerationBlocked:
		return parseIncinerationBlocked(c)
	case wire.FlagPlanted:
		return parseFlagPlanted(c)
	case wire.RenovationBuilt:
		return parseRenovationBuilt(c)
	case wire.DecreePassed:
		return parseDecreePassed(c)
	case wire.BlessingOrGiftWon:
		return parseBlessingOrGiftWon(c)
	case wire.WillRecieved:
		return parseWillReceived(c)
	case wire.FloodingSwept:
		return parseFloodingSwept(c)
	case wire.SalmonSwim:
		return parseSalmonSwim(c)
	case wire.PolarityShift:
		return parsePolarityShift(c)
	case wire.EnterSecretBase:
		return parseEnterSecretBase(c)
	case wire.ExitSecretBase:
		return parseExitSecretBase(c)
	case wire.ConsumersAttack:
		return parseConsumersAttack(c)
	case wire.EchoChamber:
		return parseEchoChamber(c)
	case wire.GrindRail:
		return parseGrindRail(c)
	case wire.PeanutMister:
		return parsePeanutMister(c)
	case wire.PeanutFlavorText:
		return parsePeanutFlavorText(c)
	case wire.TasteTheInfinite:
		return parseTasteTheInfinite(c)
	case wire.SolarPanelsAwait:
		return parseSolarPanelsAwait(c)
	case wire.SolarPanelsActivation:
		return parseSolarPanelsActivation(c)
	case wire.TarotReading:
		return parseTarotReading(c)
	case wire.EmergencyAlert:
		return parseEmergencyAlert(c)
	case wire.ReturnFromElsewhere:
		return parseReturnFromElsewhere(c)
	case wire.OverUnder:
		return parseOverUnder(c)
	case wire.UnderOver:
		return parseUnderOver(c)
	case wire.Undersea:
		return parseUndersea(c)
	case wire.Homebody:
		return parseHomebody(c)
	case wire.Superyummy:
		return parseSuperyummy(c)
	case wire.Perk:
		return parsePerk(c)
	case wire.Earlbird, wire.LateToTheParty, wire.Middling, wire.Ambitious, wire.Coasting:
		return parseSeasonalModsChange(c)
	case wire.ShameDonor:
		return parseDonatedShame(c)
	case wire.AddedMod:
		if isTarotEvent(c.record.ID) {
			return parseTarotModChange(c)
		}
		return parseAddedMod(c)
	case wire.RemovedMod:
		if isTarotEvent(c.record.ID) {
			return parseTarotModChange(c)
		}
		return parseRemovedMod(c)
	case wire.ModExpires:
		return parseModExpires(c)
	case wire.PlayerAddedToTeam:
		return parsePlayerAddedToTeam(c)
	case wire.PlayerReplacesReturned:
		return parsePlayerReplacesReturned(c)
	case wire.PlayerRemovedFromTeam:
		return parsePlayerRemovedFromTeam(c)
	case wire.PlayerMoved:
		return parsePlayerMoved(c)
	case wire.PlayerStatIncrease:
		return parsePlayerStatIncrease(c)
	case wire.EnterHallOfFlame:
		return parsePlayerCalledBackToHall(c)
	case wire.ExitHallOfFlame:
		return parseExitHallOfFlame(c)
	case wire.PlayerGainedItem:
		if isTarotEvent(c.record.ID) {
			return parseTarotItemChange(c)
		}
		return parseWonPrizeMatch(c)
	case wire.PlayerLostItem:
		if isTarotEvent(c.record.ID) {
			return parseTarotItemChange(c)
		}
		return parsePlayerDropsItem(c)
	case wire.TeamDivisionMove:
		return parseTeamDivisionMove(c)
	case wire.PlayerDivisionMove:
		return parsePlayerDivisionMove(c)
	case wire.PlayerHatched:
		return parsePlayerHatched(c)
	case wire.TeamWonInternetSeries:
		return parseTeamWonInternetSeries(c)
	case wire.EarnedPostseasonSlot:
		return parseEarnedPostseasonSlot(c)
	case wire.FinalStandings:
		return parseFinalStandings(c)
	case wire.ModChange:
		return parseModChange(c)
	case wire.PlayerPermittedToStay:
		return parsePlayerPermittedToStay(c)
	case wire.TeamWasShamed:
		return parseTeamWasShamed(c)
	case wire.TeamDidShame:
		return parseTeamDidShame(c)
	case wire.Sun2SetWin:
		return parseSun2GrantedWin(c)
	case wire.BlackHoleSwallowedWin:
		return parseBlackHoleSwallowedWin(c)
	case wire.PostseasonEliminated:
		return parsePostseasonEliminated(c)
	case wire.PostseasonAdvance:
		return parsePostseasonAdvance(c)
	case wire.GainBloodType:
		return parseABloodType(c)
	case wire.HighPressure:
		return parseHighPressure(c)
	case wire.LineupSorted:
		return parseLineupSorted(c)
	case wire.Echo:
		return parseEcho(c)
	case wire.EchoIntoStatic:
		return parseEchoIntoStatic(c)
	case wire.RemovedModsFromAnotherMod:
		return parseModsFromAnotherModRemoved(c)
	case wire.Psychoacoustics:
		return parsePsychoacoustics(c)
	case wire.EchoReciever:
		return parseEchoReceiver(c)
	case wire.InvestigationMessage:
		return parseInvestigationMessage(c)
	case wire.Tidings:
		return parseTidings(c)
	case wire.GlitterCrateDrop:
		return parseGlitterCrateDrop(c)
	case wire.EnterCrimeScene:
		return parseEnterCrimeScene(c)
	case wire.CommunityChestOpens:
		if len(tags(c.record.GameTags)) > 0 {
			return parseCommunityChestGameMessage(c)
		}
		return parseCommunityChestOpen(c)
	case wire.FaxMachine:
		return parseFaxMachine(c)
	case wire.HolidayInning:
		return parseHolidayInning(c)
	case wire.PrizeMatch:
		return parsePrizeMatch(c)
	case wire.TeamReceivedGifts:
		return parseTeamReceivedGifts(c)
	case wire.Smithy:
		return parseSmithy(c)
	}
	return nil, notImplemented(c)
}
