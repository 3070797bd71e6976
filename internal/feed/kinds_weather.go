package feed

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/textparse"
	"github.com/calliehart/blasefeed/internal/wire"
)

// formatRuns renders a run count the way the game does: shortest float
// spelling at 32-bit precision, so 2 stays "2" and 2.5 stays "2.5".
func formatRuns(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// BirdsCircle is the Birds weather doing nothing at all.
type BirdsCircle struct {
	Game GameRef `json:"game"`
}

func parseBirdsCircle(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("The Birds circle ... but they don't find what they're looking for."); err != nil {
		return nil, c.descErr(err)
	}
	return &BirdsCircle{Game: game}, c.finish()
}

func (p *BirdsCircle) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Birds circle ... but they don't find what they're looking for.")
	return b.build(wire.BirdsCircle)
}

// AmbushedByCrows is a murder of Crows putting the batter out, sometimes
// called in by a pitcher with Friend of Crows.
type AmbushedByCrows struct {
	Game          GameRef     `json:"game"`
	BatterID      uuid.UUID   `json:"batterId"`
	BatterName    string      `json:"batterName"`
	FriendOfCrows *PitcherRef `json:"friendOfCrows"`
}

func parseAmbushedByCrows(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &AmbushedByCrows{Game: game}
	if line := restOfLine(c.scan); strings.HasSuffix(line, " calls upon their Friends!") {
		name := strings.TrimSuffix(line, " calls upon their Friends!")
		if err := c.scan.Tag(line + "\n"); err != nil {
			return nil, c.descErr(err)
		}
		p.FriendOfCrows = &PitcherRef{PitcherName: name}
	}
	if err := c.scan.Tag("A murder of Crows ambush "); err != nil {
		return nil, c.descErr(err)
	}
	if p.BatterName, err = c.scan.Terminated("!\nThey run to safety, resulting in an out."); err != nil {
		return nil, c.descErr(err)
	}
	if p.FriendOfCrows != nil {
		if p.FriendOfCrows.PitcherID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
	}
	if p.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *AmbushedByCrows) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	if p.FriendOfCrows != nil {
		b.pushDescription(p.FriendOfCrows.PitcherName + " calls upon their Friends!")
	}
	b.pushDescription("A murder of Crows ambush " + p.BatterName + "!\nThey run to safety, resulting in an out.")
	if p.FriendOfCrows != nil {
		b.pushPlayerTag(p.FriendOfCrows.PitcherID)
	}
	b.pushPlayerTag(p.BatterID)
	return b.build(wire.AmbushedByCrows)
}

// BirdsUnshell is the Birds pecking a Shelled player free, leaving them
// with a Superallergy.
type BirdsUnshell struct {
	Game               GameRef     `json:"game"`
	TeamID             uuid.UUID   `json:"teamId"`
	PlayerID           uuid.UUID   `json:"playerId"`
	PlayerName         string      `json:"playerName"`
	PeckedFree         SubEventRef `json:"peckedFree"`
	SuperallergyGained SubEventRef `json:"superallergyGained"`
}

func parseBirdsUnshell(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BirdsUnshell{Game: game}
	if err := c.scan.Tag("The Birds circle...\nThe Birds pecked "); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, err = c.scan.Terminated(" free!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	pecked, err := c.nextChild(wire.RemovedMod)
	if err != nil {
		return nil, err
	}
	if err := pecked.scan.Tag("The Birds pecked " + p.PlayerName + " free!"); err != nil {
		return nil, pecked.descErr(err)
	}
	p.PeckedFree = pecked.subEvent()
	id, err := pecked.nextPlayerID()
	if err != nil {
		return nil, err
	}
	if id != p.PlayerID {
		return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "unshelled child tags a different player",
			pecked.tagMeta(nil))
	}
	if p.TeamID, err = pecked.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(pecked); err != nil {
		return nil, err
	}

	allergy, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := allergy.scan.Tag(p.PlayerName + " emerges from the shell with a Superallergy!"); err != nil {
		return nil, allergy.descErr(err)
	}
	p.SuperallergyGained = allergy.subEvent()
	if _, err := allergy.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := allergy.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(allergy); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BirdsUnshell) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Birds circle...\nThe Birds pecked " + p.PlayerName + " free!")
	b.pushPlayerTag(p.PlayerID)
	teamID := p.TeamID
	b.pushModEffect(p.PeckedFree, wire.RemovedMod,
		"The Birds pecked "+p.PlayerName+" free!", &teamID, p.PlayerID, "SHELLED", int64(ModPermanent))
	b.pushModEffect(p.SuperallergyGained, wire.AddedMod,
		p.PlayerName+" emerges from the shell with a Superallergy!", &teamID, p.PlayerID, "SUPERALLERGIC", int64(ModPermanent))
	return b.build(wire.BirdsUnshell)
}

// Sun2GrantedWin is Sun 2 setting a Win upon a team, as its own record
// outside the game feed.
type Sun2GrantedWin struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func parseSun2GrantedWin(c *cursor) (Payload, error) {
	p := &Sun2GrantedWin{}
	if err := c.scan.Tag("Sun 2 set a Win upon the "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.TeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *Sun2GrantedWin) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription("Sun 2 set a Win upon the " + p.TeamNickname + ".")
	b.pushTeamTag(p.TeamID)
	return b.build(wire.Sun2SetWin)
}

// BlackHoleSwallowedWin is the Black Hole eating a team's Win, as its own
// record outside the game feed.
type BlackHoleSwallowedWin struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
}

func parseBlackHoleSwallowedWin(c *cursor) (Payload, error) {
	p := &BlackHoleSwallowedWin{}
	if err := c.scan.Tag("The Black Hole swallowed a Win from the "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.TeamNickname, err = c.scan.Terminated("!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BlackHoleSwallowedWin) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription("The Black Hole swallowed a Win from the " + p.TeamNickname + "!")
	b.pushTeamTag(p.TeamID)
	return b.build(wire.BlackHoleSwallowedWin)
}

// Sun2 is a team collecting 10 runs under Sun 2, with the occasional
// Sunshine player catching some rays.
type Sun2 struct {
	Game           GameRef           `json:"game"`
	TeamNickname   string            `json:"teamNickname"`
	CaughtSomeRays *PlayerStatChange `json:"caughtSomeRays"`
}

func parseSun2(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Sun2{Game: game}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" collect 10! Sun 2 smiles.\nSun 2 set a Win upon the "); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(p.TeamNickname + "."); err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag("\n") {
		name, err := c.scan.Terminated(" catches some rays.")
		if err != nil {
			return nil, c.descErr(err)
		}
		if _, err := c.nextPlayerID(); err != nil {
			return nil, err
		}
		rays, err := c.parseStatChangeChild(name+" caught some rays.", StatChangeAll)
		if err != nil {
			return nil, err
		}
		rays.PlayerName = name
		p.CaughtSomeRays = rays
	}
	return p, c.finish()
}

func (p *Sun2) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	desc := "The " + p.TeamNickname + " collect 10! Sun 2 smiles.\nSun 2 set a Win upon the " + p.TeamNickname + "."
	if rays := p.CaughtSomeRays; rays != nil {
		desc += "\n" + rays.PlayerName + " catches some rays."
	}
	b.pushDescription(desc)
	if rays := p.CaughtSomeRays; rays != nil {
		b.pushPlayerTag(rays.PlayerID)
		b.pushStatChangeChild(rays, rays.PlayerName+" caught some rays.", StatChangeAll)
	}
	return b.build(wire.Sun2)
}

// BlackHole is a team collecting 10 runs under the Black Hole. Late
// seasons added carcinization steals and gamma compression to it.
type BlackHole struct {
	Game                GameRef `json:"game"`
	ScoringTeamNickname string  `json:"scoringTeamNickname"`
	VictimTeamNickname  string  `json:"victimTeamNickname"`

	Carcinization     *Carcinization    `json:"carcinization"`
	CompressedByGamma *PlayerStatChange `json:"compressedByGamma"`
}

func parseBlackHole(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BlackHole{Game: game}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ScoringTeamNickname, err = c.scan.Terminated(" collect 10!\nThe Black Hole swallows the Runs and a "); err != nil {
		return nil, c.descErr(err)
	}
	if p.VictimTeamNickname, err = c.scan.Terminated(" Win."); err != nil {
		return nil, c.descErr(err)
	}

	if t, ok := c.peekChildType(); ok && t == wire.PlayerMoved {
		if p.Carcinization, err = c.parseCarcinization(); err != nil {
			return nil, err
		}
	}
	if c.scan.TryTag("\nThe Black Hole burps!\n") {
		name, err := c.scan.Terminated(" is compressed by gamma!")
		if err != nil {
			return nil, c.descErr(err)
		}
		if _, err := c.nextPlayerID(); err != nil {
			return nil, err
		}
		gamma, err := c.parseStatChangeChild(name+" was compressed by gamma!", StatChangeAll)
		if err != nil {
			return nil, err
		}
		gamma.PlayerName = name
		p.CompressedByGamma = gamma
	}
	return p, c.finish()
}

// parseCarcinization reads the steal line and its PlayerMoved/AddedMod
// child pair.
func (c *cursor) parseCarcinization() (*Carcinization, error) {
	if err := c.scan.Tag("\nThe "); err != nil {
		return nil, c.descErr(err)
	}
	carc := &Carcinization{}
	var err error
	if carc.NewTeamName, err = c.scan.Terminated(" steal "); err != nil {
		return nil, c.descErr(err)
	}
	name, err := c.scan.Terminated(" for the remainder of the game.")
	if err != nil {
		return nil, c.descErr(err)
	}
	desc := "The " + carc.NewTeamName + " steal " + name + " for the remainder of the game."

	moved, err := c.nextChild(wire.PlayerMoved)
	if err != nil {
		return nil, err
	}
	if err := moved.scan.Tag(desc); err != nil {
		return nil, moved.descErr(err)
	}
	move := PlayerMove{PlayerName: name, SubEvent: moved.subEvent()}
	if move.PlayerID, err = moved.nextPlayerID(); err != nil {
		return nil, err
	}
	if move.PreviousTeamID, err = moved.nextTeamID(); err != nil {
		return nil, err
	}
	if move.NewTeamID, err = moved.nextTeamID(); err != nil {
		return nil, err
	}
	location, err := moved.metaInt("location")
	if err != nil {
		return nil, err
	}
	if move.Location, err = PositionFromValue(location); err != nil {
		return nil, err
	}
	for key, want := range map[string]uuid.UUID{
		"playerId":      move.PlayerID,
		"receiveTeamId": move.NewTeamID,
		"sendTeamId":    move.PreviousTeamID,
	} {
		id, err := moved.metaUUID(key)
		if err != nil {
			return nil, err
		}
		if id != want {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "move metadata does not match tags",
				moved.tagMeta(map[string]string{"key": key}))
		}
	}
	if _, err := moved.metaString("playerName"); err != nil {
		return nil, err
	}
	receiveLocation, err := moved.metaInt("receiveLocation")
	if err != nil {
		return nil, err
	}
	if receiveLocation != location {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "receive location differs from location",
			moved.tagMeta(nil))
	}
	if move.NewTeamNickname, err = moved.metaString("receiveTeamName"); err != nil {
		return nil, err
	}
	if move.PreviousTeamNickname, err = moved.metaString("sendTeamName"); err != nil {
		return nil, err
	}
	if err := c.finishChild(moved); err != nil {
		return nil, err
	}
	carc.Move = move

	added, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := added.scan.Tag(name + " was temporarily stolen."); err != nil {
		return nil, added.descErr(err)
	}
	carc.ModAddedSubEvent = added.subEvent()
	if _, err := added.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := added.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(added); err != nil {
		return nil, err
	}
	return carc, nil
}

func (b *builder) pushCarcinization(carc *Carcinization) {
	move := carc.Move
	desc := "The " + carc.NewTeamName + " steal " + move.PlayerName + " for the remainder of the game."
	b.pushDescription(desc)
	b.pushChild(move.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
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
	newTeamID := move.NewTeamID
	b.pushModEffect(carc.ModAddedSubEvent, wire.AddedMod,
		move.PlayerName+" was temporarily stolen.", &newTeamID, move.PlayerID, "TEMP_STOLEN", int64(ModGame))
}

func (p *BlackHole) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The " + p.ScoringTeamNickname + " collect 10!")
	b.pushDescription("The Black Hole swallows the Runs and a " + p.VictimTeamNickname + " Win.")
	if p.Carcinization != nil {
		b.pushCarcinization(p.Carcinization)
	}
	if gamma := p.CompressedByGamma; gamma != nil {
		b.pushDescription("The Black Hole burps!")
		b.pushDescription(gamma.PlayerName + " is compressed by gamma!")
		b.pushPlayerTag(gamma.PlayerID)
		b.pushStatChangeChild(gamma, gamma.PlayerName+" was compressed by gamma!", StatChangeAll)
	}
	return b.build(wire.BlackHole)
}

// AllergicReaction is a peanut-allergic player swallowing a stray peanut.
type AllergicReaction struct {
	Game       GameRef          `json:"game"`
	PlayerID   uuid.UUID        `json:"playerId"`
	PlayerName string           `json:"playerName"`
	Change     PlayerStatChange `json:"change"`
}

func parseAllergicReaction(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &AllergicReaction{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" swallowed a stray peanut and had an allergic reaction!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	change, err := c.parseStatChangeChild(p.PlayerName+" had an allergic reaction.", StatChangeAll)
	if err != nil {
		return nil, err
	}
	change.PlayerName = p.PlayerName
	p.Change = *change
	return p, c.finish()
}

func (p *AllergicReaction) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " swallowed a stray peanut and had an allergic reaction!")
	b.pushPlayerTag(p.PlayerID)
	change := p.Change
	b.pushStatChangeChild(&change, p.PlayerName+" had an allergic reaction.", StatChangeAll)
	return b.build(wire.AllergicReaction)
}

// SuperallergicReaction is the Superallergic version, with its dedicated
// stat-decrease child kind.
type SuperallergicReaction struct {
	Game       GameRef          `json:"game"`
	PlayerID   uuid.UUID        `json:"playerId"`
	PlayerName string           `json:"playerName"`
	Change     PlayerStatChange `json:"change"`
}

func parseSuperallergicReaction(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &SuperallergicReaction{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" swallowed a stray peanut and had a Superallergic reaction!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.PlayerStatDecreaseFromSuperallergic)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.PlayerName + " had a Superallergic reaction."); err != nil {
		return nil, child.descErr(err)
	}
	change := PlayerStatChange{PlayerName: p.PlayerName, SubEvent: child.subEvent()}
	if change.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if change.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if change.RatingAfter, err = child.metaFloat("after"); err != nil {
		return nil, err
	}
	if change.RatingBefore, err = child.metaFloat("before"); err != nil {
		return nil, err
	}
	typ, err := child.metaInt("type")
	if err != nil {
		return nil, err
	}
	if typ != int64(StatChangeAll) {
		return nil, child.metaTypeError("type", "stat category 4", nil)
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	p.Change = change
	return p, c.finish()
}

func (p *SuperallergicReaction) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " swallowed a stray peanut and had a Superallergic reaction!")
	b.pushPlayerTag(p.PlayerID)
	change := p.Change
	b.pushChild(change.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.PlayerName + " had a Superallergic reaction.")
		child.pushPlayerTag(change.PlayerID)
		child.pushTeamTag(change.TeamID)
		child.pushMetaFloat("after", change.RatingAfter)
		child.pushMetaFloat("before", change.RatingBefore)
		child.pushMetaInt("type", int64(StatChangeAll))
		return child.build(wire.PlayerStatDecreaseFromSuperallergic)
	})
	return b.build(wire.SuperallergicReaction)
}

// TasteTheInfinite is a peanut-sheller Shelling an opponent. The mod
// child tags the sheller rather than the shelled player; the upstream
// data has it that way and the codec preserves it.
type TasteTheInfinite struct {
	Game          GameRef     `json:"game"`
	ShellerID     uuid.UUID   `json:"shellerId"`
	ShellerName   string      `json:"shellerName"`
	ShelleeTeamID uuid.UUID   `json:"shelleeTeamId"`
	ShelleeID     uuid.UUID   `json:"shelleeId"`
	ShelleeName   string      `json:"shelleeName"`
	SubEvent      SubEventRef `json:"subEvent"`
}

func parseTasteTheInfinite(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &TasteTheInfinite{Game: game}
	if p.ShellerName, err = c.scan.Terminated(" tastes the infinite!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShelleeName, err = c.scan.Terminated(" is Shelled!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.ShellerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.ShelleeID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.ShelleeName + " is Shelled!"); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	id, err := child.nextPlayerID()
	if err != nil {
		return nil, err
	}
	if id != p.ShellerID {
		return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "shell child does not tag the sheller",
			child.tagMeta(nil))
	}
	if p.ShelleeTeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *TasteTheInfinite) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.ShellerName + " tastes the infinite!\n" + p.ShelleeName + " is Shelled!")
	b.pushPlayerTag(p.ShellerID)
	b.pushPlayerTag(p.ShelleeID)
	teamID := p.ShelleeTeamID
	b.pushModEffect(p.SubEvent, wire.AddedMod,
		p.ShelleeName+" is Shelled!", &teamID, p.ShellerID, "SHELLED", int64(ModPermanent))
	return b.build(wire.TasteTheInfinite)
}

// CoffeeBean is a player being Beaned, toggling Wired or Tired.
type CoffeeBean struct {
	Game       GameRef       `json:"game"`
	PlayerID   uuid.UUID     `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Roast      string        `json:"roast"`
	Notes      string        `json:"notes"`
	Mod        CoffeeBeanMod `json:"mod"`
	GainedMod  bool          `json:"gainedMod"`
	SubEvent   SubEventRef   `json:"subEvent"`

	// TeamID is null for ghosts without a recorded team.
	TeamID *uuid.UUID `json:"teamId"`

	// Previous is set when the bean replaced the opposite mod instead of
	// adding or removing one.
	Previous *CoffeeBeanMod `json:"previous"`
}

// coffeeBeanChange renders the mod toggle the way the bean text spells
// it.
func coffeeBeanChange(mod CoffeeBeanMod, gained bool) string {
	switch {
	case gained && mod == CoffeeWired:
		return "is Wired!"
	case gained:
		return "is Tired."
	case mod == CoffeeWired:
		return "is no longer Wired."
	default:
		return "is no longer Tired!"
	}
}

func parseCoffeeBean(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &CoffeeBean{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" is Beaned by a "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Roast, err = c.scan.Terminated(" roast with "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Notes, err = c.scan.Terminated(".\n"); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(p.PlayerName + " "); err != nil {
		return nil, c.descErr(err)
	}
	var change string
	switch {
	case c.scan.TryTag("is Wired!"):
		p.Mod, p.GainedMod, change = CoffeeWired, true, "is Wired!"
	case c.scan.TryTag("is Tired."):
		p.Mod, p.GainedMod, change = CoffeeTired, true, "is Tired."
	case c.scan.TryTag("is no longer Wired."):
		p.Mod, change = CoffeeWired, "is no longer Wired."
	case c.scan.TryTag("is no longer Tired!"):
		p.Mod, change = CoffeeTired, "is no longer Tired!"
	default:
		return nil, c.descErr(c.scan.Tag("is Wired!"))
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.AddedMod, wire.RemovedMod, wire.ModChange)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.PlayerName + " " + change); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if child.hasTeamTags() {
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		p.TeamID = &teamID
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if child.kind() == wire.ModChange {
		from, err := child.metaString("from")
		if err != nil {
			return nil, err
		}
		previous, err := CoffeeBeanModFromID(from)
		if err != nil {
			return nil, err
		}
		p.Previous = &previous
		to, err := child.metaString("to")
		if err != nil {
			return nil, err
		}
		if to != p.Mod.ModID() {
			return nil, child.metaTypeError("to", p.Mod.ModID(), nil)
		}
	} else {
		mod, err := child.metaString("mod")
		if err != nil {
			return nil, err
		}
		if mod != p.Mod.ModID() {
			return nil, child.metaTypeError("mod", p.Mod.ModID(), nil)
		}
		wantGained := child.kind() == wire.AddedMod
		if wantGained != p.GainedMod {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "bean child kind disagrees with the toggle text",
				child.tagMeta(nil))
		}
	}
	if _, err := child.metaInt("type"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *CoffeeBean) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	change := coffeeBeanChange(p.Mod, p.GainedMod)
	b.pushDescription(p.PlayerName + " is Beaned by a " + p.Roast + " roast with " + p.Notes + ".\n" +
		p.PlayerName + " " + change)
	b.pushPlayerTag(p.PlayerID)

	kind := wire.RemovedMod
	if p.Previous != nil {
		kind = wire.ModChange
	} else if p.GainedMod {
		kind = wire.AddedMod
	}
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.PlayerName + " " + change)
		if p.TeamID != nil {
			child.pushTeamTag(*p.TeamID)
		}
		child.pushPlayerTag(p.PlayerID)
		if p.Previous != nil {
			child.pushMetaString("from", p.Previous.ModID())
			child.pushMetaString("to", p.Mod.ModID())
		} else {
			child.pushMetaString("mod", p.Mod.ModID())
		}
		child.pushMetaInt("type", int64(ModGame))
		return child.build(kind)
	})
	return b.build(wire.CoffeeBean)
}

// GainFreeRefill is a player being Poured Over under Coffee 2 weather.
type GainFreeRefill struct {
	Game        GameRef     `json:"game"`
	PlayerID    uuid.UUID   `json:"playerId"`
	PlayerName  string      `json:"playerName"`
	Roast       string      `json:"roast"`
	Ingredient1 string      `json:"ingredient1"`
	Ingredient2 string      `json:"ingredient2"`
	SubEvent    SubEventRef `json:"subEvent"`

	// TeamID is null for ghosts without a recorded team.
	TeamID *uuid.UUID `json:"teamId"`
}

func parseGainFreeRefill(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &GainFreeRefill{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" is Poured Over with a "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Roast, err = c.scan.Terminated(" roast blending "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Ingredient1, err = c.scan.Terminated(" and "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Ingredient2, err = c.scan.Terminated("!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(p.PlayerName + " got a Free Refill."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.PlayerName + " got a Free Refill."); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if child.hasTeamTags() {
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		p.TeamID = &teamID
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *GainFreeRefill) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " is Poured Over with a " + p.Roast + " roast blending " +
		p.Ingredient1 + " and " + p.Ingredient2 + "!\n" + p.PlayerName + " got a Free Refill.")
	b.pushPlayerTag(p.PlayerID)
	b.pushModEffect(p.SubEvent, wire.AddedMod,
		p.PlayerName+" got a Free Refill.", p.TeamID, p.PlayerID, "COFFEE_RALLY", int64(ModPermanent))
	return b.build(wire.GainFreeRefill)
}

// BecomeTripleThreat is one or both pitchers chugging a Third Wave of
// Coffee.
type BecomeTripleThreat struct {
	Game     GameRef                    `json:"game"`
	Pitchers []ModChangeWithNamedPlayer `json:"pitchers"`
}

func parseBecomeTripleThreat(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BecomeTripleThreat{Game: game}
	var names []string
	pos := c.scan.Pos()
	if joined, err := c.scan.Terminated(" chug a Third Wave of Coffee!\nThey are now Triple Threats!"); err == nil {
		names = strings.SplitN(joined, " and ", 2)
		if len(names) != 2 {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "dual chug names one pitcher",
				c.tagMeta(map[string]string{"names": joined}))
		}
	} else {
		c.scan.Reset(pos)
		name, err := c.scan.Terminated(" chugs a Third Wave of Coffee!\nThey are now a Triple Threat!")
		if err != nil {
			return nil, c.descErr(err)
		}
		names = []string{name}
	}
	for _, name := range names {
		id, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		p.Pitchers = append(p.Pitchers, ModChangeWithNamedPlayer{PlayerID: id, PlayerName: name})
	}
	for i := range p.Pitchers {
		pitcher := &p.Pitchers[i]
		child, err := c.nextChild(wire.AddedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(pitcher.PlayerName + " is a Triple Threat."); err != nil {
			return nil, child.descErr(err)
		}
		pitcher.SubEvent = child.subEvent()
		if pitcher.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		id, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if id != pitcher.PlayerID {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "triple threat child tags a different pitcher",
				child.tagMeta(nil))
		}
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
	}
	return p, c.finish()
}

func (p *BecomeTripleThreat) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	if len(p.Pitchers) == 2 {
		b.pushDescription(p.Pitchers[0].PlayerName + " and " + p.Pitchers[1].PlayerName +
			" chug a Third Wave of Coffee!\nThey are now Triple Threats!")
	} else {
		b.pushDescription(p.Pitchers[0].PlayerName + " chugs a Third Wave of Coffee!\nThey are now a Triple Threat!")
	}
	for _, pitcher := range p.Pitchers {
		b.pushPlayerTag(pitcher.PlayerID)
	}
	for _, pitcher := range p.Pitchers {
		teamID := pitcher.TeamID
		b.pushModEffect(pitcher.SubEvent, wire.AddedMod,
			pitcher.PlayerName+" is a Triple Threat.", &teamID, pitcher.PlayerID, "TRIPLE_THREAT", int64(ModPermanent))
	}
	return b.build(wire.BecomeTripleThreat)
}

// parseMaintenanceMode reads the optional Maintenance Mode child that
// blooddrains emit when the drained rating would go out of range.
func (c *cursor) parseMaintenanceMode(teamID uuid.UUID) (*SubEventRef, error) {
	child, ok := c.nextChildIfModEffect(wire.AddedMod, "EXTRA_OUT")
	if !ok {
		return nil, nil
	}
	if err := child.scan.Tag("Impairment Detected. Entering Maintenance Mode."); err != nil {
		return nil, child.descErr(err)
	}
	id, err := child.nextTeamID()
	if err != nil {
		return nil, err
	}
	if id != teamID {
		return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "maintenance mode tags a different team",
			child.tagMeta(nil))
	}
	sub := child.subEvent()
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (b *builder) pushMaintenanceMode(sub *SubEventRef, teamID uuid.UUID) {
	if sub == nil {
		return
	}
	b.pushChild(*sub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription("Impairment Detected. Entering Maintenance Mode.")
		child.pushTeamTag(teamID)
		child.pushMetaString("mod", "EXTRA_OUT")
		child.pushMetaInt("type", int64(ModGame))
		return child.build(wire.AddedMod)
	})
}

// parseBlooddrainAbility reads "{poss(sipped)} {category} ability!" and
// returns the sipped player's name and the drained category.
func (c *cursor) parseBlooddrainAbility() (string, AttrCategory, error) {
	chunk, err := c.scan.Terminated(" ability!")
	if err != nil {
		return "", 0, c.descErr(err)
	}
	for _, cat := range []AttrCategory{AttrBatting, AttrPitching, AttrDefense, AttrBaserunning} {
		if poss, ok := strings.CutSuffix(chunk, " "+cat.String()); ok {
			switch {
			case strings.HasSuffix(poss, "'s"):
				return strings.TrimSuffix(poss, "'s"), cat, nil
			case strings.HasSuffix(poss, "'"):
				return strings.TrimSuffix(poss, "'"), cat, nil
			}
		}
	}
	return "", 0, errors.WithMetadata(errors.CodeInvalidRecord, "unrecognized drained ability",
		c.tagMeta(map[string]string{"text": chunk}))
}

// Blooddrain is one player siphoning another's ability and keeping the
// blood for themselves.
type Blooddrain struct {
	Game     GameRef          `json:"game"`
	IsSiphon bool             `json:"isSiphon"`
	Category AttrCategory     `json:"category"`
	Sipper   PlayerStatChange `json:"sipper"`
	Sipped   PlayerStatChange `json:"sipped"`

	MaintenanceMode *SubEventRef `json:"maintenanceMode"`
}

// BlooddrainSiphonAction is a Siphon spending the drained blood on the
// game state instead of themselves.
type BlooddrainSiphonAction struct {
	Game       GameRef          `json:"game"`
	Category   AttrCategory     `json:"category"`
	SipperID   uuid.UUID        `json:"sipperId"`
	SipperName string           `json:"sipperName"`
	Sipped     PlayerStatChange `json:"sipped"`
	Action     BlooddrainAction `json:"action"`

	// StruckOutName is set when an added strike struck the batter out.
	StruckOutName *string `json:"struckOutName"`

	MaintenanceMode *SubEventRef `json:"maintenanceMode"`
}

// blooddrainActionText renders the action clause that follows the
// sipper's name.
func blooddrainActionText(action BlooddrainAction, struckOutName *string) string {
	switch action {
	case BlooddrainAddBall:
		return "adds a Ball!"
	case BlooddrainRemoveBall:
		return "removes a Ball!"
	case BlooddrainAddStrike:
		if struckOutName != nil {
			return "adds a Strike!\n" + *struckOutName + " strikes out looking."
		}
		return "adds a Strike!"
	case BlooddrainRemoveStrike:
		return "removes a Strike!"
	case BlooddrainAddOut:
		return "adds a Out!"
	default:
		return "removes a Out!"
	}
}

func parseBlooddrain(c *cursor, siphon bool) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if err := c.scan.Tag("The Blooddrain gurgled!\n"); err != nil {
		return nil, c.descErr(err)
	}
	var sipperName string
	if siphon {
		if sipperName, err = c.scan.Terminated("'s Siphon activates!\n"); err != nil {
			return nil, c.descErr(err)
		}
		if err := c.scan.Tag(sipperName + " siphoned some of "); err != nil {
			return nil, c.descErr(err)
		}
	} else {
		if sipperName, err = c.scan.Terminated(" siphoned some of "); err != nil {
			return nil, c.descErr(err)
		}
	}
	sippedName, category, err := c.parseBlooddrainAbility()
	if err != nil {
		return nil, err
	}

	if c.scan.TryTag("\n" + sipperName + " increased their " + category.String() + " ability!") {
		p := &Blooddrain{Game: game, IsSiphon: siphon, Category: category}
		if _, err := c.nextPlayerID(); err != nil {
			return nil, err
		}
		if _, err := c.nextPlayerID(); err != nil {
			return nil, err
		}
		sipped, err := c.parseStatChangeChild(sippedName+" had blood drained by "+sipperName+".",
			StatChangeCategory(category))
		if err != nil {
			return nil, err
		}
		sipped.PlayerName = sippedName
		p.Sipped = *sipped
		if p.MaintenanceMode, err = c.parseMaintenanceMode(sipped.TeamID); err != nil {
			return nil, err
		}
		sipper, err := c.parseStatChangeChild(sipperName+" drained blood from "+sippedName+".",
			StatChangeCategory(category))
		if err != nil {
			return nil, err
		}
		sipper.PlayerName = sipperName
		p.Sipper = *sipper
		return p, c.finish()
	}

	if !siphon {
		return nil, c.descErr(c.scan.Tag("\n" + sipperName + " increased their " + category.String() + " ability!"))
	}
	p := &BlooddrainSiphonAction{Game: game, Category: category, SipperName: sipperName}
	if err := c.scan.Tag("\n" + sipperName + " "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("adds a Ball!"):
		p.Action = BlooddrainAddBall
	case c.scan.TryTag("removes a Ball!"):
		p.Action = BlooddrainRemoveBall
	case c.scan.TryTag("adds a Strike!"):
		p.Action = BlooddrainAddStrike
		if c.scan.TryTag("\n") {
			name, err := c.scan.Terminated(" strikes out looking.")
			if err != nil {
				return nil, c.descErr(err)
			}
			p.StruckOutName = &name
		}
	case c.scan.TryTag("removes a Strike!"):
		p.Action = BlooddrainRemoveStrike
	case c.scan.TryTag("adds a Out!"):
		p.Action = BlooddrainAddOut
	case c.scan.TryTag("removes a Out!"):
		p.Action = BlooddrainRemoveOut
	default:
		return nil, c.descErr(c.scan.Tag("adds a Ball!"))
	}
	if p.SipperID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := c.nextPlayerID(); err != nil {
		return nil, err
	}
	sipped, err := c.parseStatChangeChild(sippedName+" had blood drained by "+sipperName+".",
		StatChangeCategory(category))
	if err != nil {
		return nil, err
	}
	sipped.PlayerName = sippedName
	p.Sipped = *sipped
	if p.MaintenanceMode, err = c.parseMaintenanceMode(sipped.TeamID); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *Blooddrain) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Blooddrain gurgled!")
	if p.IsSiphon {
		b.pushDescription(p.Sipper.PlayerName + "'s Siphon activates!")
	}
	b.pushDescription(p.Sipper.PlayerName + " siphoned some of " + possessive(p.Sipped.PlayerName) +
		" " + p.Category.String() + " ability!")
	b.pushDescription(p.Sipper.PlayerName + " increased their " + p.Category.String() + " ability!")
	b.pushPlayerTag(p.Sipper.PlayerID)
	b.pushPlayerTag(p.Sipped.PlayerID)

	sipped := p.Sipped
	b.pushStatChangeChild(&sipped, p.Sipped.PlayerName+" had blood drained by "+p.Sipper.PlayerName+".",
		StatChangeCategory(p.Category))
	b.pushMaintenanceMode(p.MaintenanceMode, p.Sipped.TeamID)
	sipper := p.Sipper
	b.pushStatChangeChild(&sipper, p.Sipper.PlayerName+" drained blood from "+p.Sipped.PlayerName+".",
		StatChangeCategory(p.Category))

	kind := wire.Blooddrain
	if p.IsSiphon {
		kind = wire.BlooddrainSiphon
	}
	return b.build(kind)
}

func (p *BlooddrainSiphonAction) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Blooddrain gurgled!")
	b.pushDescription(p.SipperName + "'s Siphon activates!")
	b.pushDescription(p.SipperName + " siphoned some of " + possessive(p.Sipped.PlayerName) +
		" " + p.Category.String() + " ability!")
	b.pushDescription(p.SipperName + " " + blooddrainActionText(p.Action, p.StruckOutName))
	b.pushPlayerTag(p.SipperID)
	b.pushPlayerTag(p.Sipped.PlayerID)

	sipped := p.Sipped
	b.pushStatChangeChild(&sipped, p.Sipped.PlayerName+" had blood drained by "+p.SipperName+".",
		StatChangeCategory(p.Category))
	b.pushMaintenanceMode(p.MaintenanceMode, p.Sipped.TeamID)
	return b.build(wire.BlooddrainSiphon)
}

// BlooddrainBlocked is a drain attempt bouncing off a Sealed player.
type BlooddrainBlocked struct {
	Game       GameRef   `json:"game"`
	IsSiphon   bool      `json:"isSiphon"`
	SipperID   uuid.UUID `json:"sipperId"`
	SipperName string    `json:"sipperName"`
	SippeeID   uuid.UUID `json:"sippeeId"`
	SippeeName string    `json:"sippeeName"`
}

func parseBlooddrainBlocked(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BlooddrainBlocked{Game: game}
	if err := c.scan.Tag("The Blooddrain gurgled!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if line := restOfLine(c.scan); strings.HasSuffix(line, "'s Siphon activates!") {
		p.IsSiphon = true
		p.SipperName = strings.TrimSuffix(line, "'s Siphon activates!")
		if err := c.scan.Tag(line + "\n" + p.SipperName + " tried to siphon blood from "); err != nil {
			return nil, c.descErr(err)
		}
	} else if p.SipperName, err = c.scan.Terminated(" tried to siphon blood from "); err != nil {
		return nil, c.descErr(err)
	}
	if p.SippeeName, err = c.scan.Terminated(", but they were Sealed!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.SipperID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.SippeeID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BlooddrainBlocked) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Blooddrain gurgled!")
	if p.IsSiphon {
		b.pushDescription(p.SipperName + "'s Siphon activates!")
	}
	b.pushDescription(p.SipperName + " tried to siphon blood from " + p.SippeeName + ", but they were Sealed!")
	b.pushPlayerTag(p.SipperID)
	b.pushPlayerTag(p.SippeeID)
	return b.build(wire.BlooddrainBlocked)
}

// Incineration is a Rogue Umpire incinerating a player, hatching their
// replacement, and sometimes chaining Instability to a teammate.
type Incineration struct {
	Game            GameRef   `json:"game"`
	TeamID          uuid.UUID `json:"teamId"`
	TeamNickname    string    `json:"teamNickname"`
	VictimID        uuid.UUID `json:"victimId"`
	VictimName      string    `json:"victimName"`
	ReplacementID   uuid.UUID `json:"replacementId"`
	ReplacementName string    `json:"replacementName"`
	Location        int64     `json:"location"`

	IncinerationSub SubEventRef `json:"incinerationSub"`
	EnterHallSub    SubEventRef `json:"enterHallSub"`
	HatchSub        SubEventRef `json:"hatchSub"`
	ReplaceSub      SubEventRef `json:"replaceSub"`

	// UnstableChain is set when the victim was Unstable and the
	// Instability chained to another player.
	UnstableChain *ModChangeWithNamedPlayer `json:"unstableChain"`
}

func parseIncineration(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Incineration{Game: game}
	unstable := false
	if line := restOfLine(c.scan); strings.HasSuffix(line, " is Unstable!") {
		unstable = true
		if err := c.scan.Tag(line + "\nA Debt was collected.\n"); err != nil {
			return nil, c.descErr(err)
		}
	}
	if err := c.scan.Tag("Rogue Umpire incinerated "); err != nil {
		return nil, c.descErr(err)
	}
	if p.VictimName, err = c.scan.Terminated("!\nThey're replaced by "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ReplacementName, err = c.scan.Terminated("."); err != nil {
		return nil, c.descErr(err)
	}
	if p.VictimID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.ReplacementID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	incin, err := c.nextChild(wire.Incineration)
	if err != nil {
		return nil, err
	}
	if err := incin.scan.Tag("Rogue Umpire incinerated " + p.VictimName + "!"); err != nil {
		return nil, incin.descErr(err)
	}
	p.IncinerationSub = incin.subEvent()
	if _, err := incin.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = incin.nextTeamID(); err != nil {
		return nil, err
	}
	if err := c.finishChild(incin); err != nil {
		return nil, err
	}

	hall, err := c.nextChild(wire.EnterHallOfFlame)
	if err != nil {
		return nil, err
	}
	if err := hall.scan.Tag(p.VictimName + " entered the Hall of Flame."); err != nil {
		return nil, hall.descErr(err)
	}
	p.EnterHallSub = hall.subEvent()
	if _, err := hall.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := c.finishChild(hall); err != nil {
		return nil, err
	}

	hatch, err := c.nextChild(wire.PlayerHatched)
	if err != nil {
		return nil, err
	}
	if err := hatch.scan.Tag(p.ReplacementName + " has been hatched from the field of eggs."); err != nil {
		return nil, hatch.descErr(err)
	}
	p.HatchSub = hatch.subEvent()
	if _, err := hatch.nextPlayerID(); err != nil {
		return nil, err
	}
	if id, err := hatch.metaUUID("id"); err != nil {
		return nil, err
	} else if id != p.ReplacementID {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "hatch metadata does not name the replacement",
			hatch.tagMeta(nil))
	}
	if err := c.finishChild(hatch); err != nil {
		return nil, err
	}

	replace, err := c.nextChild(wire.PlayerBornFromIncineration)
	if err != nil {
		return nil, err
	}
	if err := replace.scan.Tag(p.ReplacementName + " replaced the incinerated " + p.VictimName + "."); err != nil {
		return nil, replace.descErr(err)
	}
	p.ReplaceSub = replace.subEvent()
	if _, err := replace.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := replace.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := replace.nextTeamID(); err != nil {
		return nil, err
	}
	for key, want := range map[string]uuid.UUID{
		"inPlayerId":  p.ReplacementID,
		"outPlayerId": p.VictimID,
		"teamId":      p.TeamID,
	} {
		id, err := replace.metaUUID(key)
		if err != nil {
			return nil, err
		}
		if id != want {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "replacement metadata does not match tags",
				replace.tagMeta(map[string]string{"key": key}))
		}
	}
	if _, err := replace.metaString("inPlayerName"); err != nil {
		return nil, err
	}
	if _, err := replace.metaString("outPlayerName"); err != nil {
		return nil, err
	}
	if p.Location, err = replace.metaInt("location"); err != nil {
		return nil, err
	}
	if p.TeamNickname, err = replace.metaString("teamName"); err != nil {
		return nil, err
	}
	if err := c.finishChild(replace); err != nil {
		return nil, err
	}

	if unstable {
		if err := c.scan.Tag("\nThe Instability chains to "); err != nil {
			return nil, c.descErr(err)
		}
		name, err := c.scan.Terminated("!")
		if err != nil {
			return nil, c.descErr(err)
		}
		chain := &ModChangeWithNamedPlayer{PlayerName: name}
		child, err := c.nextChild(wire.AddedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag("The Instability chains to " + name + "!"); err != nil {
			return nil, child.descErr(err)
		}
		chain.SubEvent = child.subEvent()
		if chain.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if chain.PlayerID, err = child.nextPlayerID(); err != nil {
			return nil, err
		}
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
		p.UnstableChain = chain
	}
	return p, c.finish()
}

func (p *Incineration) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushPlayerTag(p.VictimID)
	b.pushPlayerTag(p.ReplacementID)
	if p.UnstableChain != nil {
		b.pushDescription(p.VictimName + " is Unstable!")
		b.pushDescription("A Debt was collected.")
	}
	b.pushDescription("Rogue Umpire incinerated " + p.VictimName + "!")
	b.pushDescription("They're replaced by " + p.ReplacementName + ".")

	b.pushChild(p.IncinerationSub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription("Rogue Umpire incinerated " + p.VictimName + "!")
		child.pushPlayerTag(p.VictimID)
		child.pushTeamTag(p.TeamID)
		return child.build(wire.Incineration)
	})
	b.pushChild(p.EnterHallSub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.VictimName + " entered the Hall of Flame.")
		child.pushPlayerTag(p.VictimID)
		return child.build(wire.EnterHallOfFlame)
	})
	b.pushChild(p.HatchSub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.ReplacementName + " has been hatched from the field of eggs.")
		child.pushPlayerTag(p.ReplacementID)
		child.pushMetaUUID("id", p.ReplacementID)
		return child.build(wire.PlayerHatched)
	})
	b.pushChild(p.ReplaceSub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.ReplacementName + " replaced the incinerated " + p.VictimName + ".")
		child.pushPlayerTag(p.VictimID)
		child.pushPlayerTag(p.ReplacementID)
		child.pushTeamTag(p.TeamID)
		child.pushMetaUUID("inPlayerId", p.ReplacementID)
		child.pushMetaString("inPlayerName", p.ReplacementName)
		child.pushMetaInt("location", p.Location)
		child.pushMetaUUID("outPlayerId", p.VictimID)
		child.pushMetaString("outPlayerName", p.VictimName)
		child.pushMetaUUID("teamId", p.TeamID)
		child.pushMetaString("teamName", p.TeamNickname)
		return child.build(wire.PlayerBornFromIncineration)
	})

	if chain := p.UnstableChain; chain != nil {
		desc := "The Instability chains to " + chain.PlayerName + "!"
		b.pushDescription(desc)
		teamID := chain.TeamID
		b.pushModEffect(chain.SubEvent, wire.AddedMod, desc, &teamID, chain.PlayerID, "MARKED", int64(ModWeekly))
	}
	return b.build(wire.Incineration)
}

// IncinerationBlocked is an incineration attempt failing, either eaten
// by a Magmatic player or reflected by a Fireproof one.
type IncinerationBlocked struct {
	Game       GameRef   `json:"game"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`

	// Fireproof marks the reflected variant.
	Fireproof bool `json:"fireproof"`

	// IsUnstable and MagmaticModAdded only apply to the eaten variant.
	IsUnstable       bool       `json:"isUnstable"`
	MagmaticModAdded *ModChange `json:"magmaticModAdded"`
}

func parseIncinerationBlocked(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &IncinerationBlocked{Game: game}
	if line := restOfLine(c.scan); strings.HasSuffix(line, " is Unstable!") {
		p.IsUnstable = true
		if err := c.scan.Tag(line + "\n"); err != nil {
			return nil, c.descErr(err)
		}
	}
	if err := c.scan.Tag("Rogue Umpire tried to incinerate "); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, err = c.scan.Terminated(", but "); err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag("they're Fireproof! The Umpire was incinerated instead!") {
		p.Fireproof = true
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	if err := c.scan.Tag(p.PlayerName + " ate the flame! They became Magmatic!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if child, ok := c.nextChildIfModEffect(wire.AddedMod, "MAGMATIC"); ok {
		if err := child.scan.Tag(p.PlayerName + " ate some flame."); err != nil {
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
		p.MagmaticModAdded = m
	}
	return p, c.finish()
}

func (p *IncinerationBlocked) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	if p.Fireproof {
		b.pushDescription("Rogue Umpire tried to incinerate " + p.PlayerName +
			", but they're Fireproof! The Umpire was incinerated instead!")
		b.pushPlayerTag(p.PlayerID)
		return b.build(wire.IncinerationBlocked)
	}
	if p.IsUnstable {
		b.pushDescription(p.PlayerName + " is Unstable!")
	}
	b.pushDescription("Rogue Umpire tried to incinerate " + p.PlayerName + ", but " + p.PlayerName +
		" ate the flame! They became Magmatic!")
	b.pushPlayerTag(p.PlayerID)
	if m := p.MagmaticModAdded; m != nil {
		teamID := m.TeamID
		b.pushModEffect(m.SubEvent, wire.AddedMod,
			p.PlayerName+" ate some flame.", &teamID, p.PlayerID, "MAGMATIC", int64(ModPermanent))
	}
	return b.build(wire.IncinerationBlocked)
}

// FloodingEffect is one baserunner's fate in a flood.
type FloodingEffect struct {
	PlayerName string `json:"playerName"`

	// Exactly one of the three outcomes is set.
	SweptElsewhere *ModChangeWithPlayer `json:"sweptElsewhere"`
	UsedFlippers   *uuid.UUID           `json:"usedFlippers"`
	EgoKeptOnBase  *uuid.UUID           `json:"egoKeptOnBase"`
}

// FloodingSwept is Immateria sweeping the baserunners from play.
type FloodingSwept struct {
	Game        GameRef          `json:"game"`
	Effects     []FloodingEffect `json:"effects"`
	FreeRefills []FreeRefill     `json:"freeRefills"`
	FloodPumps  bool             `json:"floodPumps"`
}

func parseFloodingSwept(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &FloodingSwept{Game: game}
	if err := c.scan.Tag("A surge of Immateria rushes up from Under!\nBaserunners are swept from play!"); err != nil {
		return nil, c.descErr(err)
	}
	for {
		pos := c.scan.Pos()
		if !c.scan.TryTag("\n") {
			break
		}
		line := restOfLine(c.scan)
		var effect FloodingEffect
		switch {
		case strings.HasSuffix(line, " is swept Elsewhere!") || strings.HasSuffix(line, " was swept Elsewhere!"):
			effect.PlayerName = strings.TrimSuffix(strings.TrimSuffix(line, " is swept Elsewhere!"), " was swept Elsewhere!")
			if err := c.scan.Tag(line); err != nil {
				return nil, c.descErr(err)
			}
			if effect.SweptElsewhere, err = c.parseSentElsewhere(line); err != nil {
				return nil, err
			}
		case strings.HasSuffix(line, " uses their Flippers to slingshot home!"):
			effect.PlayerName = strings.TrimSuffix(line, " uses their Flippers to slingshot home!")
			if err := c.scan.Tag(line); err != nil {
				return nil, c.descErr(err)
			}
			id, err := c.nextPlayerID()
			if err != nil {
				return nil, err
			}
			effect.UsedFlippers = &id
		case strings.HasSuffix(line, "'s Ego keeps them on base!"):
			effect.PlayerName = strings.TrimSuffix(line, "'s Ego keeps them on base!")
			if err := c.scan.Tag(line); err != nil {
				return nil, c.descErr(err)
			}
			id, err := c.nextPlayerID()
			if err != nil {
				return nil, err
			}
			effect.EgoKeptOnBase = &id
		default:
			c.scan.Reset(pos)
			if c.scan.TryTag("\nThe Flood Pumps activate!") {
				p.FloodPumps = true
			}
			if p.FreeRefills, err = c.parseFreeRefills(); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		p.Effects = append(p.Effects, effect)
	}
	return p, c.finish()
}

func (p *FloodingSwept) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("A surge of Immateria rushes up from Under!")
	b.pushDescription("Baserunners are swept from play!")
	verb := " was swept Elsewhere!"
	if b.rec.Season < 18 {
		verb = " is swept Elsewhere!"
	}
	for _, effect := range p.Effects {
		switch {
		case effect.SweptElsewhere != nil:
			desc := effect.PlayerName + verb
			b.pushDescription(desc)
			b.pushSentElsewhere(effect.SweptElsewhere, desc)
		case effect.UsedFlippers != nil:
			b.pushDescription(effect.PlayerName + " uses their Flippers to slingshot home!")
			b.pushPlayerTag(*effect.UsedFlippers)
		case effect.EgoKeptOnBase != nil:
			b.pushDescription(effect.PlayerName + "'s Ego keeps them on base!")
			b.pushPlayerTag(*effect.EgoKeptOnBase)
		}
	}
	if p.FloodPumps {
		b.pushDescription("The Flood Pumps activate!")
	}
	b.pushFreeRefills(p.FreeRefills)
	return b.build(wire.FloodingSwept)
}

// ItemRestored is an item regaining health during a salmon swim.
type ItemRestored struct {
	Item ItemRepaired `json:"item"`

	// WasBroken picks "restored!" over "repaired." and the broken child
	// kind. Only zero-versus-nonzero prior health survives the text.
	WasBroken bool `json:"wasBroken"`
}

// itemRestoredLine renders the restoration sentence. Plurality comes
// from the item's base name, the part before any " of ".
func itemRestoredLine(r *ItemRestored) string {
	base := r.Item.ItemName
	if idx := strings.Index(base, " of "); idx >= 0 {
		base = base[:idx]
	}
	verb := " was "
	if strings.HasSuffix(base, "s") {
		verb = " were "
	}
	outcome := "repaired."
	if r.WasBroken {
		outcome = "restored!"
	}
	return possessive(r.Item.PlayerName) + " " + r.Item.ItemName + verb + outcome
}

// SalmonSwim is the Salmon swimming upstream and replaying an inning.
type SalmonSwim struct {
	Game      GameRef        `json:"game"`
	Inning    int            `json:"inning"`
	RunLosses []TeamRunsLost `json:"runLosses"`

	ItemRestored *ItemRestored `json:"itemRestored"`

	// PlayerExpelled is set when the Salmon Cannons catch a player in
	// the bind.
	PlayerExpelled *ModChangeWithNamedPlayer `json:"playerExpelled"`
}

func parseSalmonSwim(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &SalmonSwim{Game: game}
	if err := c.scan.Tag("The Salmon swim upstream!\nInning "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Inning, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" begins again.\n"); err != nil {
		return nil, c.descErr(err)
	}
	if !c.scan.TryTag("No Runs are lost.") {
		for {
			loss := TeamRunsLost{}
			if loss.RunsLost, err = c.scan.Float(); err != nil {
				return nil, c.descErr(err)
			}
			if err := c.scan.Tag(" of the "); err != nil {
				return nil, c.descErr(err)
			}
			if loss.TeamName, err = c.scan.Terminated("'s Runs are lost!"); err != nil {
				return nil, c.descErr(err)
			}
			p.RunLosses = append(p.RunLosses, loss)
			rest := c.scan.Rest()
			if len(p.RunLosses) == 2 || len(rest) < 2 || rest[0] != '\n' || rest[1] < '0' || rest[1] > '9' {
				break
			}
			c.scan.Reset(c.scan.Pos() + 1)
		}
	}

	if line, ok := salmonRestoredLine(c.scan); ok {
		if err := c.scan.Tag("\n" + line); err != nil {
			return nil, c.descErr(err)
		}
		restored, err := c.parseItemRestoredChild(line)
		if err != nil {
			return nil, err
		}
		p.ItemRestored = restored
	}

	pos := c.scan.Pos()
	if c.scan.TryTag("\n") {
		line := restOfLine(c.scan)
		if name, ok := strings.CutSuffix(line, " is caught in the bind!"); ok {
			if err := c.scan.Tag(line); err != nil {
				return nil, c.descErr(err)
			}
			id, err := c.nextPlayerID()
			if err != nil {
				return nil, err
			}
			m, err := c.parseSentElsewhere("Salmon Cannons expelled " + name + " Elsewhere.")
			if err != nil {
				return nil, err
			}
			if m.PlayerID != id {
				return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "expelled child tags a different player",
					c.tagMeta(nil))
			}
			p.PlayerExpelled = &ModChangeWithNamedPlayer{
				SubEvent: m.SubEvent, TeamID: m.TeamID, PlayerID: m.PlayerID, PlayerName: name,
			}
		} else {
			c.scan.Reset(pos)
		}
	}
	return p, c.finish()
}

// salmonRestoredLine peeks the next line and reports whether it is an
// item restoration sentence.
func salmonRestoredLine(s *textparse.Scanner) (string, bool) {
	rest := s.Rest()
	if !strings.HasPrefix(rest, "\n") {
		return "", false
	}
	line := rest[1:]
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if strings.HasSuffix(line, " restored!") || strings.HasSuffix(line, " repaired.") {
		return line, true
	}
	return "", false
}

// parseItemRestoredChild reads the repaired-item child that mirrors the
// damage children's metadata.
func (c *cursor) parseItemRestoredChild(line string) (*ItemRestored, error) {
	child, err := c.nextChild(wire.BrokenItemRepaired, wire.DamagedItemRepaired)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("The Salmon swam upstream!\n" + line); err != nil {
		return nil, child.descErr(err)
	}
	owner, _, ok := cutPossessive(line)
	if !ok {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "restoration line has no owner",
			child.tagMeta(map[string]string{"line": line}))
	}
	restored := &ItemRestored{WasBroken: child.kind() == wire.BrokenItemRepaired}
	item := ItemRepaired{PlayerName: owner, SubEvent: child.subEvent()}
	if item.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if item.ItemID, err = child.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if item.ItemName, err = child.metaString("itemName"); err != nil {
		return nil, err
	}
	if item.ItemMods, err = child.metaStrings("mods"); err != nil {
		return nil, err
	}
	if item.Durability, err = child.metaInt("itemDurability"); err != nil {
		return nil, err
	}
	if item.Health, err = child.metaInt("itemHealthAfter"); err != nil {
		return nil, err
	}
	if item.PlayerItemRatingBefore, err = child.metaFloat("playerItemRatingBefore"); err != nil {
		return nil, err
	}
	if item.PlayerItemRatingAfter, err = child.metaFloat("playerItemRatingAfter"); err != nil {
		return nil, err
	}
	if item.PlayerRating, err = child.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	if item.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	restored.Item = item
	return restored, nil
}

func (b *builder) pushItemRestored(r *ItemRestored) {
	line := itemRestoredLine(r)
	b.pushDescription(line)
	kind := wire.DamagedItemRepaired
	if r.WasBroken {
		kind = wire.BrokenItemRepaired
	}
	item := r.Item
	b.pushChild(item.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription("The Salmon swam upstream!")
		child.pushDescription(line)
		child.pushTeamTag(item.TeamID)
		child.pushMetaUUID("itemId", item.ItemID)
		child.pushMetaString("itemName", item.ItemName)
		child.pushMetaStrings("mods", item.ItemMods)
		child.pushMetaInt("itemDurability", item.Durability)
		child.pushMetaInt("itemHealthAfter", item.Health)
		child.pushMetaFloat("playerItemRatingBefore", item.PlayerItemRatingBefore)
		child.pushMetaFloat("playerItemRatingAfter", item.PlayerItemRatingAfter)
		child.pushMetaFloat("playerRating", item.PlayerRating)
		child.pushPlayerTag(item.PlayerID)
		return child.build(kind)
	})
}

func (p *SalmonSwim) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.SpecialIf(p.PlayerExpelled != nil))
	b.pushDescription("The Salmon swim upstream!")
	b.pushDescription("Inning " + strconv.Itoa(p.Inning) + " begins again.")
	if len(p.RunLosses) == 0 {
		b.pushDescription("No Runs are lost.")
	} else {
		lines := make([]string, 0, 2)
		for _, loss := range p.RunLosses {
			lines = append(lines, formatRuns(loss.RunsLost)+" of the "+loss.TeamName+"'s Runs are lost!")
		}
		b.pushDescription(strings.Join(lines, "\n"))
	}
	if p.ItemRestored != nil {
		b.pushItemRestored(p.ItemRestored)
	}
	if expelled := p.PlayerExpelled; expelled != nil {
		b.pushPlayerTag(expelled.PlayerID)
		b.pushDescription(expelled.PlayerName + " is caught in the bind!")
		m := &ModChangeWithPlayer{SubEvent: expelled.SubEvent, TeamID: expelled.TeamID, PlayerID: expelled.PlayerID}
		b.pushSentElsewhere(m, "Salmon Cannons expelled "+expelled.PlayerName+" Elsewhere.")
	}
	return b.build(wire.SalmonSwim)
}

// PolarityShift is Polarity weather flipping between plus and minus.
type PolarityShift struct {
	Game     GameRef     `json:"game"`
	Up       bool        `json:"up"`
	SubEvent SubEventRef `json:"subEvent"`
}

func parsePolarityShift(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &PolarityShift{Game: game}
	if err := c.scan.Tag("The Polarity shifted!\nNumbers go "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("up."):
		p.Up = true
	case c.scan.TryTag("down."):
	default:
		return nil, c.descErr(c.scan.Tag("up."))
	}

	child, err := c.nextChild(wire.WeatherChange)
	if err != nil {
		return nil, err
	}
	direction := "down."
	if p.Up {
		direction = "up."
	}
	if err := child.scan.Tag("The Polarity shifted!\nNumbers go " + direction); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	before, err := child.metaInt("before")
	if err != nil {
		return nil, err
	}
	after, err := child.metaInt("after")
	if err != nil {
		return nil, err
	}
	wantBefore, wantAfter := int64(wire.WeatherPolarityPlus), int64(wire.WeatherPolarityMinus)
	if p.Up {
		wantBefore, wantAfter = wantAfter, wantBefore
	}
	if before != wantBefore || after != wantAfter {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "polarity weather codes disagree with the direction",
			child.tagMeta(nil))
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PolarityShift) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	direction := "down."
	before, after := int64(wire.WeatherPolarityPlus), int64(wire.WeatherPolarityMinus)
	if p.Up {
		direction = "up."
		before, after = after, before
	}
	desc := "The Polarity shifted!\nNumbers go " + direction
	b.pushDescription(desc)
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushMetaInt("before", before)
		child.pushMetaInt("after", after)
		return child.build(wire.WeatherChange)
	})
	return b.build(wire.PolarityShift)
}

// ConsumersAttack is a Consumer chomping a player, unless an item or the
// Salmon Cannons got in the way.
type ConsumersAttack struct {
	Game GameRef `json:"game"`

	TeamID    uuid.UUID `json:"teamId"`
	PlayerID  uuid.UUID `json:"playerId"`
	// PlayerNameAllCaps is the name as shouted, uppercased upstream.
	PlayerNameAllCaps string `json:"playerNameAllCaps"`

	Scattered bool                 `json:"scattered"`
	Effect    ConsumerAttackEffect `json:"effect"`

	// SensedSomethingFishy is set when a detective noticed the attack.
	SensedSomethingFishy *DetectiveActivity `json:"sensedSomethingFishy"`
}

// ConsumerExpelled is the Salmon Cannons firing a Consumer away before
// it could chomp.
type ConsumerExpelled struct {
	Game     GameRef   `json:"game"`
	PlayerID uuid.UUID `json:"playerId"`
}

func parseConsumersAttack(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	if c.scan.TryTag("SALMON CANNONS FIRE\nCONSUMER EXPELLED") {
		p := &ConsumerExpelled{Game: game}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}

	p := &ConsumersAttack{Game: game}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := c.scan.Tag("CONSUMERS ATTACK"); err != nil {
		return nil, c.descErr(err)
	}
	if c.scan.TryTag("\nSCATTERED") {
		p.Scattered = true
	}
	if err := c.scan.Tag("\n"); err != nil {
		return nil, c.descErr(err)
	}

	line := restOfLine(c.scan)
	if strings.HasSuffix(line, " DEFENDS") {
		p.PlayerNameAllCaps = strings.TrimSuffix(line, " DEFENDS")
		if err := c.scan.Tag(line + "\n\n"); err != nil {
			return nil, c.descErr(err)
		}
		damageLine := restOfLine(c.scan)
		if err := c.scan.Tag(damageLine); err != nil {
			return nil, c.descErr(err)
		}
		fullDesc := "CONSUMERS ATTACK"
		if p.Scattered {
			fullDesc += "\nSCATTERED"
		}
		fullDesc += "\n" + line + "\n\n" + damageLine

		damage, err := c.parseItemDamageChild(fullDesc, nil)
		if err != nil {
			return nil, err
		}
		p.TeamID = damage.TeamID
		p.Effect = ConsumerAttackEffect{DefendedWithItem: damage}
	} else {
		p.PlayerNameAllCaps = line
		if err := c.scan.Tag(line); err != nil {
			return nil, c.descErr(err)
		}
		fullDesc := "CONSUMERS ATTACK"
		if p.Scattered {
			fullDesc += "\nSCATTERED"
		}
		fullDesc += "\n" + line

		change, err := c.parseStatChangeChild(fullDesc, StatChangeAll)
		if err != nil {
			return nil, err
		}
		if change.PlayerID != p.PlayerID {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "chomp child tags a different player",
				c.tagMeta(nil))
		}
		p.TeamID = change.TeamID
		sub := change.SubEvent
		before, after := change.RatingBefore, change.RatingAfter
		p.Effect = ConsumerAttackEffect{RatingBefore: &before, RatingAfter: &after, SubEvent: &sub}
	}

	if t, ok := c.peekChildType(); ok && t == wire.InvestigationMessage {
		child, err := c.nextChild(wire.InvestigationMessage)
		if err != nil {
			return nil, err
		}
		name, err := child.scan.Terminated(" sensed something fishy.")
		if err != nil {
			return nil, child.descErr(err)
		}
		fishy := &DetectiveActivity{DetectiveName: name, SubEvent: child.subEvent()}
		if fishy.DetectiveID, err = child.nextPlayerID(); err != nil {
			return nil, err
		}
		if err := c.finishChild(child); err != nil {
			return nil, err
		}
		p.SensedSomethingFishy = fishy
	}
	return p, c.finish()
}

func (p *ConsumersAttack) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushPlayerTag(p.PlayerID)
	b.pushDescription("CONSUMERS ATTACK")
	if p.Scattered {
		b.pushDescription("SCATTERED")
	}

	if damage := p.Effect.DefendedWithItem; damage != nil {
		// The upstream text carries two newlines in a row here.
		b.pushDescription(p.PlayerNameAllCaps + " DEFENDS\n")
		outcome := "DAMAGED"
		if damage.Broke() {
			outcome = "BREAKS"
			if strings.HasSuffix(damage.ItemName, "s") {
				outcome = "BREAK"
			}
		}
		b.pushDescription(strings.ToUpper(damage.ItemName) + " " + outcome)
		b.pushItemDamageChild(damage, b.rec.Description)
	} else {
		b.pushDescription(p.PlayerNameAllCaps)
		change := PlayerStatChange{
			TeamID:       p.TeamID,
			PlayerID:     p.PlayerID,
			RatingBefore: *p.Effect.RatingBefore,
			RatingAfter:  *p.Effect.RatingAfter,
			SubEvent:     *p.Effect.SubEvent,
		}
		b.pushStatChangeChild(&change, b.rec.Description, StatChangeAll)
	}

	if fishy := p.SensedSomethingFishy; fishy != nil {
		b.pushChild(fishy.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategorySpecial)
			child.pushDescription(fishy.DetectiveName + " sensed something fishy.")
			child.pushPlayerTag(fishy.DetectiveID)
			return child.build(wire.InvestigationMessage)
		})
	}
	return b.build(wire.ConsumersAttack)
}

func (p *ConsumerExpelled) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("SALMON CANNONS FIRE")
	b.pushDescription("CONSUMER EXPELLED")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.ConsumersAttack)
}

// ElsewhereReturnEntry is one player's return in a ReturnFromElsewhere
// record, which can carry several.
type ElsewhereReturnEntry struct {
	PlayerName string          `json:"playerName"`
	Return     ElsewhereReturn `json:"return"`

	// IsPeanut swaps "returned" for "rolled back".
	IsPeanut bool `json:"isPeanut"`
}

// ReturnFromElsewhere is one or more players coming back from Elsewhere.
type ReturnFromElsewhere struct {
	Game    GameRef                `json:"game"`
	Returns []ElsewhereReturnEntry `json:"returns"`
}

// timeElsewhereText renders the duration clause of a full return.
func timeElsewhereText(t TimeElsewhere) string {
	if t.Seasons {
		if t.Count == 1 {
			return "one season"
		}
		return strconv.Itoa(t.Count) + " seasons"
	}
	if t.Count == 1 {
		return "1 day"
	}
	return strconv.Itoa(t.Count) + " days"
}

// parseTimeElsewhere reads the duration clause up to its closing bang.
func (c *cursor) parseTimeElsewhere() (TimeElsewhere, error) {
	if c.scan.TryTag("one season!") {
		return TimeElsewhere{Seasons: true, Count: 1}, nil
	}
	n, err := c.scan.WholeNumber()
	if err != nil {
		return TimeElsewhere{}, c.descErr(err)
	}
	switch {
	case c.scan.TryTag(" day!"), c.scan.TryTag(" days!"):
		return TimeElsewhere{Count: n}, nil
	case c.scan.TryTag(" seasons!"):
		return TimeElsewhere{Seasons: true, Count: n}, nil
	}
	return TimeElsewhere{}, c.descErr(c.scan.Tag(" days!"))
}

func parseReturnFromElsewhere(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &ReturnFromElsewhere{Game: game}
	for {
		if len(p.Returns) > 0 && !c.scan.TryTag("\n") {
			break
		}
		entry, err := c.parseElsewhereReturn()
		if err != nil {
			return nil, err
		}
		p.Returns = append(p.Returns, *entry)
	}
	return p, c.finish()
}

func (c *cursor) parseElsewhereReturn() (*ElsewhereReturnEntry, error) {
	line := restOfLine(c.scan)
	entry := &ElsewhereReturnEntry{}
	ret := &entry.Return

	parseVerb := func(name string) (string, bool) {
		if n, ok := strings.CutSuffix(name, " rolled back from Elsewhere"); ok {
			entry.IsPeanut = true
			return n, true
		}
		if n, ok := strings.CutSuffix(name, " returned from Elsewhere"); ok {
			return n, true
		}
		return name, false
	}

	switch {
	case strings.Contains(line, " from Elsewhere after "):
		// Full return: "{name} [has ]{returned|rolled back} from
		// Elsewhere after {time}!".
		ret.Kind = ElsewhereReturnFull
		idx := strings.Index(line, " from Elsewhere after ")
		head := line[:idx]
		name, ok := parseVerb(head + " from Elsewhere")
		if !ok {
			return nil, c.descErr(c.scan.Tag(" returned from Elsewhere after "))
		}
		name = strings.TrimSuffix(name, " has")
		entry.PlayerName = name
		prefix := line[:idx+len(" from Elsewhere after ")]
		if err := c.scan.Tag(prefix); err != nil {
			return nil, c.descErr(err)
		}
		t, err := c.parseTimeElsewhere()
		if err != nil {
			return nil, err
		}
		ret.TimeElsewhere = &t

		if child, ok := c.nextChildIfModEffect(wire.AddedMod, "SCATTERED"); ok {
			scatteredName, err := child.scan.Terminated(" was Scattered...")
			if err != nil {
				return nil, child.descErr(err)
			}
			scattered := &Scattered{ScatteredName: scatteredName, SubEvent: child.subEvent()}
			if _, err := child.nextTeamID(); err != nil {
				return nil, err
			}
			if _, err := child.nextPlayerID(); err != nil {
				return nil, err
			}
			if err := finishModEffect(child); err != nil {
				return nil, err
			}
			ret.Scattered = scattered
		}

		child, err := c.nextChild(wire.RemovedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(line); err != nil {
			return nil, child.descErr(err)
		}
		sub := child.subEvent()
		ret.SubEvent = &sub
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		ret.TeamID = &teamID
		playerID, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		ret.PlayerID = &playerID
		if err := finishModEffect(child); err != nil {
			return nil, err
		}

		if recongealed, ok := c.nextChildIfStatReroll(entry.PlayerName); ok {
			ret.RecongealedDifferently = recongealed
		}
		return entry, nil

	case strings.HasSuffix(line, " from Elsewhere!") && !c.hasChildrenOfKind(wire.RemovedMod, line):
		// False return: the line alone, no child.
		ret.Kind = ElsewhereReturnFalse
		name, ok := parseVerb(strings.TrimSuffix(line, "!"))
		if !ok {
			return nil, c.descErr(c.scan.Tag(" returned from Elsewhere!"))
		}
		entry.PlayerName = strings.TrimSuffix(name, " has")
		if err := c.scan.Tag(line); err != nil {
			return nil, c.descErr(err)
		}
		return entry, nil

	default:
		// Short return: "{name} has {verb} from Elsewhere!" before
		// season 18, "{name} {verb} from Elsewhere." after.
		ret.Kind = ElsewhereReturnShort
		trimmed := strings.TrimSuffix(strings.TrimSuffix(line, "!"), ".")
		name, ok := parseVerb(trimmed)
		if !ok {
			return nil, c.descErr(c.scan.Tag(" returned from Elsewhere."))
		}
		entry.PlayerName = strings.TrimSuffix(name, " has")
		if err := c.scan.Tag(line); err != nil {
			return nil, c.descErr(err)
		}
		child, err := c.nextChild(wire.RemovedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(line); err != nil {
			return nil, child.descErr(err)
		}
		sub := child.subEvent()
		ret.SubEvent = &sub
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		ret.TeamID = &teamID
		playerID, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		ret.PlayerID = &playerID
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
		return entry, nil
	}
}

// hasChildrenOfKind reports whether the next unread child has the given
// kind and opens with the given description.
func (c *cursor) hasChildrenOfKind(kind wire.EventType, desc string) bool {
	t, ok := c.peekChildType()
	if !ok || t != kind {
		return false
	}
	child := c.record.Metadata.Children[c.childIdx]
	return strings.HasPrefix(child.Description, desc)
}

// nextChildIfStatReroll consumes a re-congealed differently child when
// one follows.
func (c *cursor) nextChildIfStatReroll(playerName string) (*PlayerStatChange, bool) {
	t, ok := c.peekChildType()
	if !ok || (t != wire.PlayerStatIncrease && t != wire.PlayerStatDecrease) {
		return nil, false
	}
	change, err := c.parseStatChangeChild(playerName+" re-congealed differently.", StatChangeAll)
	if err != nil {
		return nil, false
	}
	change.PlayerName = playerName
	return change, true
}

func (p *ReturnFromElsewhere) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	for _, entry := range p.Returns {
		b.pushElsewhereReturn(entry)
	}
	return b.build(wire.ReturnFromElsewhere)
}

func (b *builder) pushElsewhereReturn(entry ElsewhereReturnEntry) {
	ret := entry.Return
	verb := "returned"
	if entry.IsPeanut {
		verb = "rolled back"
	}
	has := ""
	if b.rec.Season < 18 {
		has = "has "
	}

	switch ret.Kind {
	case ElsewhereReturnFull:
		desc := entry.PlayerName + " " + has + verb + " from Elsewhere after " +
			timeElsewhereText(*ret.TimeElsewhere) + "!"
		b.pushDescription(desc)
		if scattered := ret.Scattered; scattered != nil {
			teamID := *ret.TeamID
			b.pushChild(scattered.SubEvent, func(child *builder) wire.Record {
				child.setCategory(wire.CategoryChanges)
				child.pushDescription(scattered.ScatteredName + " was Scattered...")
				child.pushTeamTag(teamID)
				child.pushPlayerTag(*ret.PlayerID)
				child.pushMetaString("mod", "SCATTERED")
				child.pushMetaInt("type", int64(ModPermanent))
				return child.build(wire.AddedMod)
			})
		}
		b.pushChild(*ret.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(desc)
			child.pushTeamTag(*ret.TeamID)
			child.pushPlayerTag(*ret.PlayerID)
			child.pushMetaString("mod", "ELSEWHERE")
			child.pushMetaInt("type", int64(ModPermanent))
			return child.build(wire.RemovedMod)
		})
		if recongealed := ret.RecongealedDifferently; recongealed != nil {
			b.pushStatChangeChild(recongealed, entry.PlayerName+" re-congealed differently.", StatChangeAll)
		}
	case ElsewhereReturnShort:
		var desc string
		if b.rec.Season < 18 {
			desc = entry.PlayerName + " has " + verb + " from Elsewhere!"
		} else {
			desc = entry.PlayerName + " " + verb + " from Elsewhere."
		}
		b.pushDescription(desc)
		b.pushChild(*ret.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(desc)
			child.pushTeamTag(*ret.TeamID)
			child.pushPlayerTag(*ret.PlayerID)
			child.pushMetaString("mod", "ELSEWHERE")
			child.pushMetaInt("type", int64(ModPermanent))
			return child.build(wire.RemovedMod)
		})
	default:
		b.pushDescription(entry.PlayerName + " has " + verb + " from Elsewhere!")
	}
}

// FeedbackSwap is two players switching teams in the feedback.
type FeedbackSwap struct {
	Game     GameRef        `json:"game"`
	PlayerA  FeedbackPlayer `json:"playerA"`
	PlayerB  FeedbackPlayer `json:"playerB"`
	Position ActivePosition `json:"position"`
	SubEvent SubEventRef    `json:"subEvent"`
}

func parseFeedbackSwap(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &FeedbackSwap{Game: game}
	if err := c.scan.Tag("Reality flickers. Things look different ...\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerA.PlayerName, err = c.scan.Terminated(" and "); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerB.PlayerName, err = c.scan.Terminated(" switch teams in the feedback!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(p.PlayerB.PlayerName + " is now "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("batting."):
		p.Position = PositionLineup
	case c.scan.TryTag("pitching."):
		p.Position = PositionRotation
	default:
		return nil, c.descErr(c.scan.Tag("batting."))
	}
	if p.PlayerA.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.PlayerB.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.PlayerTraded)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("Reality flickered in the Feedback."); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	for _, id := range []uuid.UUID{p.PlayerA.PlayerID, p.PlayerB.PlayerID} {
		got, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if got != id {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "trade child tags different players",
				child.tagMeta(nil))
		}
	}
	if p.PlayerA.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if p.PlayerB.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	for prefix, side := range map[string]*FeedbackPlayer{"a": &p.PlayerA, "b": &p.PlayerB} {
		location, err := child.metaInt(prefix + "Location")
		if err != nil {
			return nil, err
		}
		if side.Location, err = ActivePositionFromValue(location); err != nil {
			return nil, err
		}
		id, err := child.metaUUID(prefix + "PlayerId")
		if err != nil {
			return nil, err
		}
		if id != side.PlayerID {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "trade metadata does not match tags",
				child.tagMeta(map[string]string{"key": prefix + "PlayerId"}))
		}
		if _, err := child.metaString(prefix + "PlayerName"); err != nil {
			return nil, err
		}
		teamID, err := child.metaUUID(prefix + "TeamId")
		if err != nil {
			return nil, err
		}
		if teamID != side.TeamID {
			return nil, errors.WithMetadata(errors.CodeInvalidRecord, "trade metadata does not match tags",
				child.tagMeta(map[string]string{"key": prefix + "TeamId"}))
		}
		if side.TeamNickname, err = child.metaString(prefix + "TeamName"); err != nil {
			return nil, err
		}
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *FeedbackSwap) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Reality flickers. Things look different ...")
	b.pushDescription(p.PlayerA.PlayerName + " and " + p.PlayerB.PlayerName + " switch teams in the feedback!")
	b.pushDescription(p.PlayerB.PlayerName + " is now " + p.Position.Role() + ".")
	b.pushPlayerTag(p.PlayerA.PlayerID)
	b.pushPlayerTag(p.PlayerB.PlayerID)
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription("Reality flickered in the Feedback.")
		child.pushPlayerTag(p.PlayerA.PlayerID)
		child.pushPlayerTag(p.PlayerB.PlayerID)
		child.pushTeamTag(p.PlayerA.TeamID)
		child.pushTeamTag(p.PlayerB.TeamID)
		child.pushMetaInt("aLocation", int64(p.PlayerA.Location))
		child.pushMetaUUID("aPlayerId", p.PlayerA.PlayerID)
		child.pushMetaString("aPlayerName", p.PlayerA.PlayerName)
		child.pushMetaUUID("aTeamId", p.PlayerA.TeamID)
		child.pushMetaString("aTeamName", p.PlayerA.TeamNickname)
		child.pushMetaInt("bLocation", int64(p.PlayerB.Location))
		child.pushMetaUUID("bPlayerId", p.PlayerB.PlayerID)
		child.pushMetaString("bPlayerName", p.PlayerB.PlayerName)
		child.pushMetaUUID("bTeamId", p.PlayerB.TeamID)
		child.pushMetaString("bTeamName", p.PlayerB.TeamNickname)
		return child.build(wire.PlayerTraded)
	})
	return b.build(wire.FeedbackSwap)
}

// FeedbackBlocked is feedback tangling a player who resisted it.
type FeedbackBlocked struct {
	Game         GameRef          `json:"game"`
	ResistedID   uuid.UUID        `json:"resistedId"`
	ResistedName string           `json:"resistedName"`
	Tangled      PlayerStatChange `json:"tangled"`
}

func parseFeedbackBlocked(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &FeedbackBlocked{Game: game}
	if err := c.scan.Tag("Reality begins to flicker ...\nBut "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ResistedName, err = c.scan.Terminated(" resists!\n"); err != nil {
		return nil, c.descErr(err)
	}
	tangledName, err := c.scan.Terminated(" is tangled in the flicker!")
	if err != nil {
		return nil, c.descErr(err)
	}
	if p.ResistedID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := c.nextPlayerID(); err != nil {
		return nil, err
	}
	tangled, err := c.parseStatChangeChild(tangledName+" is tangled in the flicker!", StatChangeAll)
	if err != nil {
		return nil, err
	}
	tangled.PlayerName = tangledName
	p.Tangled = *tangled
	return p, c.finish()
}

func (p *FeedbackBlocked) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Reality begins to flicker ...\nBut " + p.ResistedName + " resists!\n" +
		p.Tangled.PlayerName + " is tangled in the flicker!")
	b.pushPlayerTag(p.ResistedID)
	b.pushPlayerTag(p.Tangled.PlayerID)
	tangled := p.Tangled
	b.pushStatChangeChild(&tangled, p.Tangled.PlayerName+" is tangled in the flicker!", StatChangeAll)
	return b.build(wire.FeedbackBlocked)
}

// BestowReverberating is Reverb weather making a player Reverberating.
type BestowReverberating struct {
	Game       GameRef     `json:"game"`
	PlayerID   uuid.UUID   `json:"playerId"`
	PlayerName string      `json:"playerName"`
	TeamID     uuid.UUID   `json:"teamId"`
	SubEvent   SubEventRef `json:"subEvent"`
}

func parseBestowReverberating(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &BestowReverberating{Game: game}
	if err := c.scan.Tag("Reverberations are at dangerous levels!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, err = c.scan.Terminated(" is now Reverberating wildly!"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.PlayerName + " is now Reverberating wildly!"); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *BestowReverberating) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Reverberations are at dangerous levels!\n" + p.PlayerName + " is now Reverberating wildly!")
	b.pushPlayerTag(p.PlayerID)
	teamID := p.TeamID
	b.pushModEffect(p.SubEvent, wire.AddedMod,
		p.PlayerName+" is now Reverberating wildly!", &teamID, p.PlayerID, "REVERBERATING", int64(ModPermanent))
	return b.build(wire.ReverbBestowsReverberating)
}

// RosterReverb is Reverb weather shuffling a roster, in one of its four
// shapes.
type RosterReverb struct {
	Game         GameRef   `json:"game"`
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	Reverb       Reverb    `json:"reverb"`

	// GravityPlayers stayed in place, tagged after the shuffle.
	GravityPlayers []PlayerRef `json:"gravityPlayers"`
}

func parseRosterReverb(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &RosterReverb{Game: game}

	type shuffleShape struct {
		kind      ReverbKind
		level     string
		parentEnd string
		childKind wire.EventType
		childDesc func(team string) string
	}
	shapes := []shuffleShape{
		{ReverbLineup, "unsafe", " had their lineup shuffled in the Reverb!", wire.ReverbLineupShuffle,
			func(team string) string { return "The " + team + " had their lineup shuffled." }},
		{ReverbRotation, "unsafe", " had their rotation shuffled in the Reverb!", wire.ReverbRotationShuffle,
			func(team string) string { return "The " + team + " had their rotation shuffled in the Reverb!" }},
		{ReverbFull, "dangerous", " were shuffled in the Reverb!", wire.ReverbFullShuffle,
			func(team string) string { return "The " + team + " were shuffled in the Reverb!" }},
	}

	for _, shape := range shapes {
		pos := c.scan.Pos()
		if !c.scan.TryTag("Reverberations are at " + shape.level + " levels!\nThe ") {
			continue
		}
		team, err := c.scan.Terminated(shape.parentEnd)
		if err != nil {
			c.scan.Reset(pos)
			continue
		}
		p.TeamNickname = team
		p.Reverb.Kind = shape.kind

		child, err := c.nextChild(shape.childKind)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(shape.childDesc(team)); err != nil {
			return nil, child.descErr(err)
		}
		sub := child.subEvent()
		p.Reverb.SubEvent = &sub
		if p.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if err := c.finishChild(child); err != nil {
			return nil, err
		}
		if p.GravityPlayers, err = c.parseGravityPlayers(); err != nil {
			return nil, err
		}
		return p, c.finish()
	}

	if err := c.scan.Tag("Reverberations are at high levels!\nThe "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.Terminated(" had several players shuffled in the Reverb!"); err != nil {
		return nil, c.descErr(err)
	}
	p.Reverb.Kind = ReverbSeveralPlayers
	common := "The " + p.TeamNickname + " had several players shuffled in the Reverb!"

	gravityCount := strings.Count(c.scan.Rest(), "'s Gravity kept them in place!")
	remaining := len(c.remainingPlayerIDs()) - gravityCount
	if remaining < 0 || remaining%2 != 0 {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "reverb tags do not pair up",
			c.tagMeta(map[string]string{"count": strconv.Itoa(remaining)}))
	}
	for i := 0; i < remaining/2; i++ {
		first, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		second, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if first == second {
			id := first
			p.Reverb.Effects = append(p.Reverb.Effects, ReverbEffect{RepeatID: &id})
			continue
		}
		swap, err := c.parseReverbSwapChild(common, first, second)
		if err != nil {
			return nil, err
		}
		if p.TeamID == uuid.Nil {
			p.TeamID = swap.teamID
		}
		p.Reverb.Effects = append(p.Reverb.Effects, ReverbEffect{Swap: &swap.reverb})
	}
	if p.GravityPlayers, err = c.parseGravityPlayers(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

type reverbSwap struct {
	reverb PlayerReverb
	teamID uuid.UUID
}

func (c *cursor) parseReverbSwapChild(desc string, first, second uuid.UUID) (*reverbSwap, error) {
	child, err := c.nextChild(wire.PlayerSwap)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(desc); err != nil {
		return nil, child.descErr(err)
	}
	swap := &reverbSwap{reverb: PlayerReverb{
		FirstPlayerID:  first,
		SecondPlayerID: second,
		SubEvent:       child.subEvent(),
	}}
	if swap.teamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	for _, want := range []uuid.UUID{first, second} {
		got, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		if got != want {
			return nil, errors.WithMetadata(errors.CodeExpectedEqualTags, "swap child tags different players",
				child.tagMeta(nil))
		}
	}
	aLocation, err := child.metaInt("aLocation")
	if err != nil {
		return nil, err
	}
	if swap.reverb.FirstPlayerNewLocation, err = ActivePositionFromValue(aLocation); err != nil {
		return nil, err
	}
	if id, err := child.metaUUID("aPlayerId"); err != nil {
		return nil, err
	} else if id != first {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "swap metadata does not match tags",
			child.tagMeta(map[string]string{"key": "aPlayerId"}))
	}
	if swap.reverb.FirstPlayerName, err = child.metaString("aPlayerName"); err != nil {
		return nil, err
	}
	bLocation, err := child.metaInt("bLocation")
	if err != nil {
		return nil, err
	}
	if swap.reverb.SecondPlayerNewLocation, err = ActivePositionFromValue(bLocation); err != nil {
		return nil, err
	}
	if id, err := child.metaUUID("bPlayerId"); err != nil {
		return nil, err
	} else if id != second {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "swap metadata does not match tags",
			child.tagMeta(map[string]string{"key": "bPlayerId"}))
	}
	if swap.reverb.SecondPlayerName, err = child.metaString("bPlayerName"); err != nil {
		return nil, err
	}
	if id, err := child.metaUUID("teamId"); err != nil {
		return nil, err
	} else if id != swap.teamID {
		return nil, errors.WithMetadata(errors.CodeInvalidRecord, "swap metadata does not match tags",
			child.tagMeta(map[string]string{"key": "teamId"}))
	}
	if _, err := child.metaString("teamName"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return swap, nil
}

// parseGravityPlayers reads the trailing Gravity lines and their tags.
func (c *cursor) parseGravityPlayers() ([]PlayerRef, error) {
	var players []PlayerRef
	for {
		pos := c.scan.Pos()
		if !c.scan.TryTag("\n") {
			return players, nil
		}
		name, err := c.scan.Terminated("'s Gravity kept them in place!")
		if err != nil {
			c.scan.Reset(pos)
			return players, nil
		}
		id, err := c.nextPlayerID()
		if err != nil {
			return nil, err
		}
		players = append(players, PlayerRef{PlayerID: id, PlayerName: name})
	}
}

func (b *builder) pushGravityPlayers(players []PlayerRef) {
	for _, player := range players {
		b.pushDescription(player.PlayerName + "'s Gravity kept them in place!")
		b.pushPlayerTag(player.PlayerID)
	}
}

func (p *RosterReverb) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	switch p.Reverb.Kind {
	case ReverbLineup:
		b.pushDescription("Reverberations are at unsafe levels!")
		b.pushDescription("The " + p.TeamNickname + " had their lineup shuffled in the Reverb!")
		b.pushReverbShuffleChild(*p.Reverb.SubEvent, wire.ReverbLineupShuffle,
			"The "+p.TeamNickname+" had their lineup shuffled.", p.TeamID)
	case ReverbRotation:
		b.pushDescription("Reverberations are at unsafe levels!")
		b.pushDescription("The " + p.TeamNickname + " had their rotation shuffled in the Reverb!")
		b.pushReverbShuffleChild(*p.Reverb.SubEvent, wire.ReverbRotationShuffle,
			"The "+p.TeamNickname+" had their rotation shuffled in the Reverb!", p.TeamID)
	case ReverbFull:
		b.pushDescription("Reverberations are at dangerous levels!")
		b.pushDescription("The " + p.TeamNickname + " were shuffled in the Reverb!")
		b.pushReverbShuffleChild(*p.Reverb.SubEvent, wire.ReverbFullShuffle,
			"The "+p.TeamNickname+" were shuffled in the Reverb!", p.TeamID)
	default:
		b.pushDescription("Reverberations are at high levels!")
		common := "The " + p.TeamNickname + " had several players shuffled in the Reverb!"
		b.pushDescription(common)
		for _, effect := range p.Reverb.Effects {
			if effect.RepeatID != nil {
				b.pushPlayerTag(*effect.RepeatID)
				b.pushPlayerTag(*effect.RepeatID)
				continue
			}
			swap := effect.Swap
			b.pushPlayerTag(swap.FirstPlayerID)
			b.pushPlayerTag(swap.SecondPlayerID)
			b.pushChild(swap.SubEvent, func(child *builder) wire.Record {
				child.setCategory(wire.CategoryChanges)
				child.pushDescription(common)
				child.pushTeamTag(p.TeamID)
				child.pushPlayerTag(swap.FirstPlayerID)
				child.pushPlayerTag(swap.SecondPlayerID)
				child.pushMetaInt("aLocation", int64(swap.FirstPlayerNewLocation))
				child.pushMetaUUID("aPlayerId", swap.FirstPlayerID)
				child.pushMetaString("aPlayerName", swap.FirstPlayerName)
				child.pushMetaInt("bLocation", int64(swap.SecondPlayerNewLocation))
				child.pushMetaUUID("bPlayerId", swap.SecondPlayerID)
				child.pushMetaString("bPlayerName", swap.SecondPlayerName)
				child.pushMetaUUID("teamId", p.TeamID)
				child.pushMetaString("teamName", p.TeamNickname)
				return child.build(wire.PlayerSwap)
			})
		}
	}
	b.pushGravityPlayers(p.GravityPlayers)
	return b.build(wire.ReverbRosterShuffle)
}

func (b *builder) pushReverbShuffleChild(sub SubEventRef, kind wire.EventType, desc string, teamID uuid.UUID) {
	b.pushChild(sub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushTeamTag(teamID)
		return child.build(kind)
	})
}

// EchoChamber is the Echo Chamber trapping a wave.
type EchoChamber struct {
	Game       GameRef        `json:"game"`
	PlayerID   uuid.UUID      `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Mod        EchoChamberMod `json:"mod"`
	SubEvent   SubEventRef    `json:"subEvent"`

	// TeamID is null for ghosts without a recorded team.
	TeamID *uuid.UUID `json:"teamId"`
}

func parseEchoChamber(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &EchoChamber{Game: game}
	if err := c.scan.Tag("The Echo Chamber traps a wave.\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, err = c.scan.Terminated(" is temporarily "); err != nil {
		return nil, c.descErr(err)
	}
	switch {
	case c.scan.TryTag("Repeating!"):
		p.Mod = EchoChamberRepeating
	case c.scan.TryTag("Reverberating!"):
		p.Mod = EchoChamberReverberating
	default:
		return nil, c.descErr(c.scan.Tag("Repeating!"))
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("The Echo Chamber traps a wave."); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if child.hasTeamTags() {
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		p.TeamID = &teamID
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *EchoChamber) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Echo Chamber traps a wave.\n" + p.PlayerName + " is temporarily " + p.Mod.String() + "!")
	b.pushPlayerTag(p.PlayerID)
	b.pushModEffect(p.SubEvent, wire.AddedMod,
		"The Echo Chamber traps a wave.", p.TeamID, p.PlayerID, p.Mod.ModID(), int64(ModGame))
	return b.build(wire.EchoChamber)
}

// modEntry is one element of an echo child's adds or removes array.
type modEntry struct {
	Type int64  `json:"type"`
	Mod  string `json:"mod"`
}

// EchoEvent is a player Echoing another's mods, possibly cascading to
// other Receivers.
type EchoEvent struct {
	Game       GameRef      `json:"game"`
	EchoeeName string       `json:"echoeeName"`
	Primary    EchoResult   `json:"primary"`
	Receivers  []EchoResult `json:"receivers"`
}

func parseEcho(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &EchoEvent{Game: game}
	receiverName, err := c.scan.Terminated(" Echoed ")
	if err != nil {
		return nil, c.descErr(err)
	}
	if p.EchoeeName, err = c.scan.Terminated("!"); err != nil {
		return nil, c.descErr(err)
	}

	primary, err := c.parseEchoResult(receiverName, 0,
		receiverName+"'s Echo faded.",
		receiverName+" Echoed "+p.EchoeeName+"!")
	if err != nil {
		return nil, err
	}
	p.Primary = *primary

	for c.hasChildren() {
		child := c.record.Metadata.Children[c.childIdx]
		name, ok := echoReceiverName(child.Description, receiverName)
		if !ok {
			break
		}
		receiver, err := c.parseEchoResult(name, 1,
			name+"'s Echoed Echo faded.",
			name+"'s Echoed an Echo from "+receiverName+"!")
		if err != nil {
			return nil, err
		}
		p.Receivers = append(p.Receivers, *receiver)
	}
	return p, c.finish()
}

// echoReceiverName extracts the receiver from a cascade child's opening
// description.
func echoReceiverName(desc, mainReceiver string) (string, bool) {
	if name, ok := strings.CutSuffix(desc, "'s Echoed Echo faded."); ok {
		return name, true
	}
	if idx := strings.Index(desc, "'s Echoed an Echo from "+mainReceiver+"!"); idx >= 0 {
		return desc[:idx], true
	}
	return "", false
}

// parseEchoResult reads the optional faded child and the mandatory
// added child for one receiver.
func (c *cursor) parseEchoResult(name string, modType int64, fadedDesc, addedDesc string) (*EchoResult, error) {
	result := &EchoResult{ReceiverName: name}
	source := "ECHO"
	if modType == 1 {
		source = "RECEIVER"
	}

	if t, ok := c.peekChildType(); ok && t == wire.RemovedModsFromAnotherMod {
		child, err := c.nextChild(wire.RemovedModsFromAnotherMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(fadedDesc); err != nil {
			return nil, child.descErr(err)
		}
		removed := &MultipleMods{SubEvent: child.subEvent()}
		if _, err := child.nextPlayerID(); err != nil {
			return nil, err
		}
		if _, err := child.nextTeamID(); err != nil {
			return nil, err
		}
		if removed.ModIDs, err = child.readModEntries("removes", modType); err != nil {
			return nil, err
		}
		if got, err := child.metaString("source"); err != nil {
			return nil, err
		} else if got != source {
			return nil, child.metaTypeError("source", source, nil)
		}
		if err := c.finishChild(child); err != nil {
			return nil, err
		}
		result.ModsRemoved = removed
	}

	child, err := c.nextChild(wire.AddedModsFromAnotherMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(addedDesc); err != nil {
		return nil, child.descErr(err)
	}
	result.ModsAdded.SubEvent = child.subEvent()
	if result.ReceiverID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if result.ReceiverTeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if result.ModsAdded.ModIDs, err = child.readModEntries("adds", modType); err != nil {
		return nil, err
	}
	if got, err := child.metaString("source"); err != nil {
		return nil, err
	} else if got != source {
		return nil, child.metaTypeError("source", source, nil)
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return result, nil
}

// readModEntries decodes an adds or removes array, checking every entry
// carries the expected mod type.
func (c *cursor) readModEntries(key string, modType int64) ([]string, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return nil, err
	}
	var entries []modEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, c.metaTypeError(key, "a mod list", err)
	}
	mods := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != modType {
			return nil, c.metaTypeError(key, "mod type "+strconv.FormatInt(modType, 10), nil)
		}
		mods = append(mods, entry.Mod)
	}
	return mods, nil
}

func (b *builder) pushModEntries(key string, mods []string, modType int64) {
	entries := make([]modEntry, 0, len(mods))
	for _, mod := range mods {
		entries = append(entries, modEntry{Type: modType, Mod: mod})
	}
	raw, _ := json.Marshal(entries)
	b.pushMetaRaw(key, raw)
}

func (b *builder) pushEchoResult(result EchoResult, modType int64, fadedDesc, addedDesc string) {
	source := "ECHO"
	if modType == 1 {
		source = "RECEIVER"
	}
	if removed := result.ModsRemoved; removed != nil {
		b.pushChild(removed.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(fadedDesc)
			child.pushPlayerTag(result.ReceiverID)
			child.pushTeamTag(result.ReceiverTeamID)
			child.pushModEntries("removes", removed.ModIDs, modType)
			child.pushMetaString("source", source)
			return child.build(wire.RemovedModsFromAnotherMod)
		})
	}
	b.pushChild(result.ModsAdded.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(addedDesc)
		child.pushPlayerTag(result.ReceiverID)
		child.pushTeamTag(result.ReceiverTeamID)
		child.pushModEntries("adds", result.ModsAdded.ModIDs, modType)
		child.pushMetaString("source", source)
		return child.build(wire.AddedModsFromAnotherMod)
	})
}

func (p *EchoEvent) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	main := p.Primary.ReceiverName
	b.pushDescription(main + " Echoed " + p.EchoeeName + "!")
	b.pushEchoResult(p.Primary, 0,
		main+"'s Echo faded.",
		main+" Echoed "+p.EchoeeName+"!")
	for _, receiver := range p.Receivers {
		b.pushEchoResult(receiver, 1,
			receiver.ReceiverName+"'s Echoed Echo faded.",
			receiver.ReceiverName+"'s Echoed an Echo from "+main+"!")
	}
	return b.build(wire.Echo)
}

// EchoIntoStatic is two Echoes fading each other into Static.
type EchoIntoStatic struct {
	Game   GameRef    `json:"game"`
	Echoer StaticEcho `json:"echoer"`
	Echoee StaticEcho `json:"echoee"`
}

func parseEchoIntoStatic(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &EchoIntoStatic{Game: game}
	if err := c.scan.Tag("ECHO "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Echoer.PlayerName, err = c.scan.Terminated(" STATIC\nECHO "); err != nil {
		return nil, c.descErr(err)
	}
	if p.Echoee.PlayerName, err = c.scan.Terminated(" STATIC"); err != nil {
		return nil, c.descErr(err)
	}
	desc := "ECHO " + p.Echoer.PlayerName + " STATIC\nECHO " + p.Echoee.PlayerName + " STATIC"

	for _, side := range []*StaticEcho{&p.Echoer, &p.Echoee} {
		child, err := c.nextChild(wire.PlayerRemovedFromTeam)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(desc); err != nil {
			return nil, child.descErr(err)
		}
		side.RemovedFromTeamSubEvent = child.subEvent()
		if side.PlayerID, err = child.nextPlayerID(); err != nil {
			return nil, err
		}
		if side.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		for key, want := range map[string]uuid.UUID{"playerId": side.PlayerID, "teamId": side.TeamID} {
			id, err := child.metaUUID(key)
			if err != nil {
				return nil, err
			}
			if id != want {
				return nil, errors.WithMetadata(errors.CodeInvalidRecord, "static metadata does not match tags",
					child.tagMeta(map[string]string{"key": key}))
			}
		}
		if _, err := child.metaString("playerName"); err != nil {
			return nil, err
		}
		if side.TeamNickname, err = child.metaString("teamName"); err != nil {
			return nil, err
		}
		if err := c.finishChild(child); err != nil {
			return nil, err
		}
	}
	for _, side := range []*StaticEcho{&p.Echoer, &p.Echoee} {
		child, err := c.nextChild(wire.ModChange)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(desc); err != nil {
			return nil, child.descErr(err)
		}
		side.ModChangedSubEvent = child.subEvent()
		if _, err := child.nextPlayerID(); err != nil {
			return nil, err
		}
		if _, err := child.nextTeamID(); err != nil {
			return nil, err
		}
		if from, err := child.metaString("from"); err != nil {
			return nil, err
		} else if from != "ECHO" {
			return nil, child.metaTypeError("from", "ECHO", nil)
		}
		if to, err := child.metaString("to"); err != nil {
			return nil, err
		} else if to != "STATIC" {
			return nil, child.metaTypeError("to", "STATIC", nil)
		}
		if _, err := child.metaInt("type"); err != nil {
			return nil, err
		}
		if err := c.finishChild(child); err != nil {
			return nil, err
		}
	}
	return p, c.finish()
}

func (p *EchoIntoStatic) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	desc := "ECHO " + p.Echoer.PlayerName + " STATIC\nECHO " + p.Echoee.PlayerName + " STATIC"
	b.pushDescription(desc)
	for _, side := range []StaticEcho{p.Echoer, p.Echoee} {
		b.pushChild(side.RemovedFromTeamSubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(desc)
			child.pushPlayerTag(side.PlayerID)
			child.pushTeamTag(side.TeamID)
			child.pushMetaUUID("playerId", side.PlayerID)
			child.pushMetaString("playerName", side.PlayerName)
			child.pushMetaUUID("teamId", side.TeamID)
			child.pushMetaString("teamName", side.TeamNickname)
			return child.build(wire.PlayerRemovedFromTeam)
		})
	}
	for _, side := range []StaticEcho{p.Echoer, p.Echoee} {
		b.pushChild(side.ModChangedSubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(desc)
			child.pushPlayerTag(side.PlayerID)
			child.pushTeamTag(side.TeamID)
			child.pushMetaString("from", "ECHO")
			child.pushMetaString("to", "STATIC")
			child.pushMetaInt("type", int64(ModPermanent))
			return child.build(wire.ModChange)
		})
	}
	return b.build(wire.EchoIntoStatic)
}

// EchoReceiver is a Receiver turning into an Echo.
type EchoReceiver struct {
	Game         GameRef     `json:"game"`
	EchoerName   string      `json:"echoerName"`
	EchoeeName   string      `json:"echoeeName"`
	EchoeeID     uuid.UUID   `json:"echoeeId"`
	EchoeeTeamID uuid.UUID   `json:"echoeeTeamId"`
	SubEvent     SubEventRef `json:"subEvent"`
}

func parseEchoReceiver(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &EchoReceiver{Game: game}
	if err := c.scan.Tag("ECHO "); err != nil {
		return nil, c.descErr(err)
	}
	if p.EchoerName, err = c.scan.Terminated(" ECHO "); err != nil {
		return nil, c.descErr(err)
	}
	if p.EchoeeName, err = c.scan.Terminated(" ECHO"); err != nil {
		return nil, c.descErr(err)
	}
	desc := "ECHO " + p.EchoerName + " ECHO " + p.EchoeeName + " ECHO"

	child, err := c.nextChild(wire.ModChange)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(desc); err != nil {
		return nil, child.descErr(err)
	}
	p.SubEvent = child.subEvent()
	if p.EchoeeID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.EchoeeTeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if from, err := child.metaString("from"); err != nil {
		return nil, err
	} else if from != "RECEIVER" {
		return nil, child.metaTypeError("from", "RECEIVER", nil)
	}
	if to, err := child.metaString("to"); err != nil {
		return nil, err
	} else if to != "ECHO" {
		return nil, child.metaTypeError("to", "ECHO", nil)
	}
	if _, err := child.metaInt("type"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *EchoReceiver) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	desc := "ECHO " + p.EchoerName + " ECHO " + p.EchoeeName + " ECHO"
	b.pushDescription(desc)
	b.pushChild(p.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushPlayerTag(p.EchoeeID)
		child.pushTeamTag(p.EchoeeTeamID)
		child.pushMetaString("from", "RECEIVER")
		child.pushMetaString("to", "ECHO")
		child.pushMetaInt("type", int64(ModPermanent))
		return child.build(wire.ModChange)
	})
	return b.build(wire.EchoReciever)
}
