package feed

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/textparse"
	"github.com/calliehart/blasefeed/internal/wire"
)

// possessive renders a name the way the feed does: a bare apostrophe
// after a trailing s, "'s" otherwise.
func possessive(name string) string {
	if strings.HasSuffix(name, "s") {
		return name + "'"
	}
	return name + "'s"
}

// cutPossessive splits "{owner}'s {rest}" text, handling owners that end
// in s. The "'s " form is tried first so an owner whose name contains an
// apostrophe does not split early.
func cutPossessive(s string) (owner, rest string, ok bool) {
	if i := strings.Index(s, "'s "); i >= 0 {
		return s[:i], s[i+3:], true
	}
	if i := strings.Index(s, "' "); i >= 0 {
		return s[:i], s[i+2:], true
	}
	return "", "", false
}

// restOfLine returns the unconsumed remainder of the current line without
// advancing the scanner.
func restOfLine(s *textparse.Scanner) string {
	rest := s.Rest()
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// descErr wraps a scanner failure with the record's kind.
func (c *cursor) descErr(err error) error {
	return errors.WrapWithMetadata(errors.CodeDescriptionParseFailed, "description did not match",
		c.tagMeta(nil), err)
}

// hasTeamTags reports whether unread team tags remain.
func (c *cursor) hasTeamTags() bool {
	return c.teamIdx < len(tags(c.record.TeamTags))
}

// nextChildIfModEffect consumes the next child only when it has the given
// kind and its "mod" metadata names the given modifier. Several optional
// children are distinguishable only this way.
func (c *cursor) nextChildIfModEffect(kind wire.EventType, modID string) (*cursor, bool) {
	t, ok := c.peekChildType()
	if !ok || t != kind {
		return nil, false
	}
	child := &c.record.Metadata.Children[c.childIdx]
	raw, ok := child.Metadata.Other["mod"]
	if !ok {
		return nil, false
	}
	var mod string
	if json.Unmarshal(raw, &mod) != nil || mod != modID {
		return nil, false
	}
	c.childIdx++
	return newChildCursor(child), true
}

// finishModEffect consumes the "mod" and "type" keys every mod change
// child carries, then closes the child.
func finishModEffect(child *cursor) error {
	if _, err := child.metaString("mod"); err != nil {
		return err
	}
	if _, err := child.metaInt("type"); err != nil {
		return err
	}
	return child.finish()
}

// parseGame reads the game context shared by every in-game record: the
// game tag, the away and home team tags and the play number, plus the
// unscatter child and attractor line that can lead any game event. It
// must run before any other consumption on the cursor.
func (c *cursor) parseGame() (GameRef, error) {
	var game GameRef
	var err error
	if game.GameID, err = c.nextGameID(); err != nil {
		return game, err
	}
	if game.AwayTeam, err = c.nextTeamID(); err != nil {
		return game, err
	}
	if game.HomeTeam, err = c.nextTeamID(); err != nil {
		return game, err
	}
	if game.Play, err = c.play(); err != nil {
		return game, err
	}

	if child, ok := c.nextChildIfModEffect(wire.RemovedMod, "SCATTERED"); ok {
		name, err := child.scan.Terminated(" was Unscattered.")
		if err != nil {
			return game, child.descErr(err)
		}
		unscatter := &Unscatter{SubEvent: child.subEvent(), PlayerName: name}
		if unscatter.PlayerID, err = child.nextPlayerID(); err != nil {
			return game, err
		}
		if unscatter.TeamID, err = child.nextTeamID(); err != nil {
			return game, err
		}
		if err := finishModEffect(child); err != nil {
			return game, err
		}
		game.Unscatter = unscatter
	}

	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" enters the Secret Base...\n"); err == nil {
		id, err := c.nextPlayerID()
		if err != nil {
			return game, err
		}
		game.AttractorSecretBase = &PlayerRef{PlayerID: id, PlayerName: name}
	} else {
		c.scan.Reset(pos)
	}
	return game, nil
}

// parsePitch reads the Double Strike line that can lead the basic pitch
// outcomes.
func (c *cursor) parsePitch() GamePitch {
	pos := c.scan.Pos()
	name, err := c.scan.Terminated(" fires a Double Strike!\n")
	if err != nil {
		c.scan.Reset(pos)
		return GamePitch{}
	}
	return GamePitch{DoubleStrike: &name}
}

const (
	itemBrokeSuffix       = " broke!"
	itemWasDamagedSuffix  = " was damaged."
	itemWereDamagedSuffix = " were damaged."
)

// cutItemDamageSuffix splits an "{item} broke!" style line, reporting the
// plurality the phrasing implies. Plural is nil for breaks, which do not
// reveal it.
func cutItemDamageSuffix(line string) (item string, plural *bool, ok bool) {
	if s, found := strings.CutSuffix(line, itemBrokeSuffix); found {
		return s, nil, true
	}
	if s, found := strings.CutSuffix(line, itemWasDamagedSuffix); found {
		p := false
		return s, &p, true
	}
	if s, found := strings.CutSuffix(line, itemWereDamagedSuffix); found {
		p := true
		return s, &p, true
	}
	return "", nil, false
}

// itemDamageLine renders the "{item} broke!" style phrase for a damage.
func itemDamageLine(d *ItemDamage) string {
	switch {
	case d.Broke():
		return d.ItemName + itemBrokeSuffix
	case d.ItemNamePlural != nil && *d.ItemNamePlural:
		return d.ItemName + itemWereDamagedSuffix
	default:
		return d.ItemName + itemWasDamagedSuffix
	}
}

// parseItemDamageChild consumes the break-or-damage child whose
// description must repeat the parent's damage line.
func (c *cursor) parseItemDamageChild(line string, plural *bool) (*ItemDamage, error) {
	child, err := c.nextChild(wire.ItemBreaks, wire.ItemDamaged)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(line); err != nil {
		return nil, child.descErr(err)
	}
	dmg := &ItemDamage{ItemNamePlural: plural, SubEvent: child.subEvent()}
	if dmg.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if dmg.ItemID, err = child.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if dmg.ItemName, err = child.metaString("itemName"); err != nil {
		return nil, err
	}
	if dmg.ItemMods, err = child.metaStrings("mods"); err != nil {
		return nil, err
	}
	if dmg.Durability, err = child.metaInt("itemDurability"); err != nil {
		return nil, err
	}
	if dmg.Health, err = child.metaInt("itemHealthAfter"); err != nil {
		return nil, err
	}
	if dmg.PlayerItemRatingBefore, err = child.metaFloat("playerItemRatingBefore"); err != nil {
		return nil, err
	}
	if dmg.PlayerItemRatingAfter, err = child.metaFloat("playerItemRatingAfter"); err != nil {
		return nil, err
	}
	if dmg.PlayerRating, err = child.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	if dmg.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	return dmg, nil
}

// parseItemDamage reads an optional damage line for a player already
// named on the event, plus the child that goes with it.
func (c *cursor) parseItemDamage(owner string) (*ItemDamage, error) {
	pos := c.scan.Pos()
	if !c.scan.TryTag("\n" + possessive(owner) + " ") {
		return nil, nil
	}
	line := restOfLine(c.scan)
	_, plural, ok := cutItemDamageSuffix(line)
	if !ok {
		c.scan.Reset(pos)
		return nil, nil
	}
	if err := c.scan.Tag(line); err != nil {
		return nil, c.descErr(err)
	}
	return c.parseItemDamageChild(possessive(owner)+" "+line, plural)
}

// parseNamedItemDamage reads an optional damage line whose owner is known
// only from the possessive in the text.
func (c *cursor) parseNamedItemDamage() (*NamedItemDamage, error) {
	pos := c.scan.Pos()
	// The damage line can open the description when no pitch event
	// preceded it.
	if !c.scan.TryTag("\n") && pos != 0 {
		return nil, nil
	}
	line := restOfLine(c.scan)
	body, plural, ok := cutItemDamageSuffix(line)
	if !ok {
		c.scan.Reset(pos)
		return nil, nil
	}
	owner, _, ok := cutPossessive(body)
	if !ok {
		c.scan.Reset(pos)
		return nil, nil
	}
	if err := c.scan.Tag(line); err != nil {
		return nil, c.descErr(err)
	}
	dmg, err := c.parseItemDamageChild(line, plural)
	if err != nil {
		return nil, err
	}
	return &NamedItemDamage{Name: owner, Damage: *dmg}, nil
}

func (c *cursor) parseNamedItemDamages() ([]NamedItemDamage, error) {
	var out []NamedItemDamage
	for {
		d, err := c.parseNamedItemDamage()
		if err != nil {
			return nil, err
		}
		if d == nil {
			return out, nil
		}
		out = append(out, *d)
	}
}

// tryScoreLine matches "\n{name}{label}" and returns the name.
func tryScoreLine(s *textparse.Scanner, label string) (string, bool) {
	pos := s.Pos()
	if !s.TryTag("\n") {
		return "", false
	}
	name, err := s.Terminated(label)
	if err != nil {
		s.Reset(pos)
		return "", false
	}
	return name, true
}

// parseScoreAttraction reads the attraction line that can follow a score,
// plus the roster-move child that goes with it.
func (c *cursor) parseScoreAttraction(playerName string) (*Attraction, error) {
	pos := c.scan.Pos()
	if !c.scan.TryTag("\nThe ") {
		return nil, nil
	}
	team, err := c.scan.Terminated(" Attract " + playerName + "!")
	if err != nil || !isKnownTeamNickname(team) {
		c.scan.Reset(pos)
		return nil, nil
	}
	child, err := c.nextChild(wire.PlayerAddedToTeam)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("The " + team + " Attracted " + playerName + "!"); err != nil {
		return nil, child.descErr(err)
	}
	att := &Attraction{TeamNickname: team, SubEvent: child.subEvent()}
	if att.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err = child.metaInt("location"); err != nil {
		return nil, err
	}
	if _, err = child.metaUUID("playerId"); err != nil {
		return nil, err
	}
	if _, err = child.metaString("playerName"); err != nil {
		return nil, err
	}
	if _, err = child.metaUUID("teamId"); err != nil {
		return nil, err
	}
	if _, err = child.metaString("teamName"); err != nil {
		return nil, err
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	return att, nil
}

// parseScore reads one scoring line: an optional damage line whose owner
// must be the scorer, the score line itself, the scorer's parent player
// tag, and an optional attraction.
func (c *cursor) parseScore(label string) (ScoringPlayer, bool, error) {
	var p ScoringPlayer
	pos := c.scan.Pos()

	var damageLine string
	var plural *bool
	if name, ok := tryScoreLine(c.scan, label); ok {
		p.PlayerName = name
	} else {
		c.scan.Reset(pos)
		if !c.scan.TryTag("\n") {
			return p, false, nil
		}
		line := restOfLine(c.scan)
		body, pl, ok := cutItemDamageSuffix(line)
		if !ok {
			c.scan.Reset(pos)
			return p, false, nil
		}
		owner, _, ok := cutPossessive(body)
		if !ok {
			c.scan.Reset(pos)
			return p, false, nil
		}
		if err := c.scan.Tag(line); err != nil {
			return p, false, c.descErr(err)
		}
		name, ok := tryScoreLine(c.scan, label)
		if !ok || name != owner {
			c.scan.Reset(pos)
			return p, false, nil
		}
		p.PlayerName = name
		damageLine, plural = line, pl
	}

	if damageLine != "" {
		dmg, err := c.parseItemDamageChild(damageLine, plural)
		if err != nil {
			return p, false, err
		}
		p.ItemDamage = dmg
	}

	id, err := c.nextPlayerID()
	if err != nil {
		return p, false, err
	}
	p.PlayerID = id

	att, err := c.parseScoreAttraction(p.PlayerName)
	if err != nil {
		return p, false, err
	}
	p.Attraction = att
	return p, true, nil
}

// parseScores reads the scoring lines on an event, each with its optional
// damage and attraction, followed by the free refills spent.
func (c *cursor) parseScores(label string) (Scores, error) {
	var s Scores
	for {
		scorer, ok, err := c.parseScore(label)
		if err != nil {
			return s, err
		}
		if !ok {
			break
		}
		s.Scores = append(s.Scores, scorer)
	}
	refills, err := c.parseFreeRefills()
	if err != nil {
		return s, err
	}
	s.FreeRefills = refills
	return s, nil
}

// parseFreeRefill reads one optional Free Refill pair of lines and the
// mod-removal child that goes with it.
func (c *cursor) parseFreeRefill() (*FreeRefill, error) {
	pos := c.scan.Pos()
	if !c.scan.TryTag("\n") {
		return nil, nil
	}
	name, err := c.scan.Terminated(" used their Free Refill.\n")
	if err != nil {
		c.scan.Reset(pos)
		return nil, nil
	}
	if err := c.scan.Tag(name + " Refills the In!"); err != nil {
		return nil, c.descErr(err)
	}

	child, err := c.nextChild(wire.RemovedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(name + " used their Free Refill."); err != nil {
		return nil, child.descErr(err)
	}
	refill := &FreeRefill{SubEvent: child.subEvent(), PlayerName: name}
	if refill.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if child.hasTeamTags() {
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		refill.TeamID = &teamID
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return refill, nil
}

func (c *cursor) parseFreeRefills() ([]FreeRefill, error) {
	var out []FreeRefill
	for {
		r, err := c.parseFreeRefill()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return out, nil
		}
		out = append(out, *r)
	}
}

// parseStoppedInhabiting reads the mod-removal child left behind when an
// inhabiting ghost departs. It has no line on the parent.
func (c *cursor) parseStoppedInhabiting() (*StoppedInhabiting, error) {
	child, ok := c.nextChildIfModEffect(wire.RemovedMod, "INHABITING")
	if !ok {
		return nil, nil
	}
	name, err := child.scan.Terminated(" stopped Inhabiting.")
	if err != nil {
		return nil, child.descErr(err)
	}
	si := &StoppedInhabiting{SubEvent: child.subEvent(), InhabitingPlayerName: name}
	if si.InhabitingPlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	// Ghosts from before team ids were stored on player objects have no
	// team tag here.
	if child.hasTeamTags() {
		teamID, err := child.nextTeamID()
		if err != nil {
			return nil, err
		}
		si.InhabitingPlayerTeamID = &teamID
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return si, nil
}

// parseSpicyStatus reads the Heating Up or Red Hot line that can follow a
// batter's hit.
func (c *cursor) parseSpicyStatus(batterName string) (SpicyStatus, error) {
	var s SpicyStatus
	if c.scan.TryTag("\n" + batterName + " is Heating Up!") {
		s.HeatingUp = true
		if _, err := c.nextPlayerID(); err != nil {
			return s, err
		}
		return s, nil
	}
	if !c.scan.TryTag("\n" + batterName + " is Red Hot!") {
		return s, nil
	}
	s.RedHot = true
	if _, err := c.nextPlayerID(); err != nil {
		return s, err
	}
	if child, ok := c.nextChildIfModEffect(wire.AddedMod, "ON_FIRE"); ok {
		if err := child.scan.Tag(batterName + " is Red Hot!"); err != nil {
			return s, child.descErr(err)
		}
		mod := &ModChange{SubEvent: child.subEvent()}
		var err error
		if mod.TeamID, err = child.nextTeamID(); err != nil {
			return s, err
		}
		if _, err := child.nextPlayerID(); err != nil {
			return s, err
		}
		if err := finishModEffect(child); err != nil {
			return s, err
		}
		s.Mod = mod
	}
	return s, nil
}

// parseCooledOff reads the cooled-off line, its mod-removal child and the
// batter's extra parent tag.
func (c *cursor) parseCooledOff(batterName string) (*ModChangeWithPlayer, error) {
	if !c.scan.TryTag("\n" + batterName + " cooled off.") {
		return nil, nil
	}
	child, err := c.nextChild(wire.RemovedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(batterName + " cooled off."); err != nil {
		return nil, child.descErr(err)
	}
	m := &ModChangeWithPlayer{SubEvent: child.subEvent()}
	if m.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	if m.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return m, nil
}

// parseChargeBlood reads the Power Chaaarge line for aa or aaa blood and
// the mod-added child it leaves.
func (c *cursor) parseChargeBlood(batterName string) (*ModChange, error) {
	if !c.scan.TryTag("\n" + batterName + " Power Chaaarges!") {
		return nil, nil
	}
	child, err := c.nextChild(wire.AddedModFromOtherMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(batterName + " Power Chaaarges!"); err != nil {
		return nil, child.descErr(err)
	}
	m := &ModChange{SubEvent: child.subEvent()}
	if m.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := child.metaString("mod"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("source"); err != nil {
		return nil, err
	}
	if _, err := child.metaInt("type"); err != nil {
		return nil, err
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// parseBatterDebt reads the Debt proc line, the Observed child when the
// fielder was not already Observed, and the two parent tags.
func (c *cursor) parseBatterDebt(batterName, fielderName string) (*BatterDebt, error) {
	if !c.scan.TryTag("\n" + batterName + " hit a ball at " + fielderName + "...") {
		return nil, nil
	}
	debt := &BatterDebt{}
	if c.scan.TryTag("\n" + fielderName + " is now being Observed...") {
		child, err := c.nextChild(wire.AddedMod)
		if err != nil {
			return nil, err
		}
		if err := child.scan.Tag(fielderName + " is now being Observed..."); err != nil {
			return nil, child.descErr(err)
		}
		mod := &ModChange{SubEvent: child.subEvent()}
		if mod.TeamID, err = child.nextTeamID(); err != nil {
			return nil, err
		}
		if _, err := child.nextPlayerID(); err != nil {
			return nil, err
		}
		if err := finishModEffect(child); err != nil {
			return nil, err
		}
		debt.SubEvent = mod
	}
	var err error
	if debt.BatterID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if debt.FielderID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return debt, nil
}

// parseMagmatic reads the Magmatic prefix on a home run and the
// mod-removal child for the spent mod. It runs before the home run line,
// so the batter's name comes from the prefix itself.
func (c *cursor) parseMagmatic() (*ModChange, error) {
	pos := c.scan.Pos()
	name, err := c.scan.Terminated(" is Magmatic!\n")
	if err != nil {
		c.scan.Reset(pos)
		return nil, nil
	}
	child, err := c.nextChild(wire.RemovedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(name + " hit a Magmatic home run!"); err != nil {
		return nil, child.descErr(err)
	}
	m := &ModChange{SubEvent: child.subEvent()}
	if m.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return m, nil
}

// parseAttractionWithPlayer reads the attraction line on a home run,
// where the attracted player is named nowhere else on the event, plus the
// roster-move child and the parent tag for the attracted player.
func (c *cursor) parseAttractionWithPlayer() (*AttractionWithPlayer, error) {
	pos := c.scan.Pos()
	if !c.scan.TryTag("\nThe ") {
		return nil, nil
	}
	team, err := c.scan.Terminated(" Attract ")
	if err != nil || !isKnownTeamNickname(team) {
		c.scan.Reset(pos)
		return nil, nil
	}
	name, err := c.scan.Terminated("!")
	if err != nil {
		c.scan.Reset(pos)
		return nil, nil
	}
	child, err := c.nextChild(wire.PlayerAddedToTeam)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag("The " + team + " Attracted " + name + "!"); err != nil {
		return nil, child.descErr(err)
	}
	att := &AttractionWithPlayer{TeamNickname: team, PlayerName: name, SubEvent: child.subEvent()}
	if att.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if att.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := child.metaInt("location"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("playerId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("playerName"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("teamId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("teamName"); err != nil {
		return nil, err
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	if _, err := c.nextPlayerID(); err != nil {
		return nil, err
	}
	return att, nil
}

// pushModEffect renders the mod added/removed child shared by the in-game
// status changes.
func (b *builder) pushModEffect(sub SubEventRef, kind wire.EventType, desc string, teamID *uuid.UUID, playerID uuid.UUID, modID string, modType int64) {
	b.pushChild(sub, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushPlayerTag(playerID)
		if teamID != nil {
			child.pushTeamTag(*teamID)
		}
		child.pushMetaString("mod", modID)
		child.pushMetaInt("type", modType)
		return child.build(kind)
	})
}

func (b *builder) pushPitch(pitch GamePitch) {
	if pitch.DoubleStrike != nil {
		b.pushDescription(*pitch.DoubleStrike + " fires a Double Strike!")
	}
}

func (b *builder) pushItemDamageChild(d *ItemDamage, desc string) {
	kind := wire.ItemDamaged
	if d.Broke() {
		kind = wire.ItemBreaks
	}
	b.pushChild(d.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushPlayerTag(d.PlayerID)
		child.pushTeamTag(d.TeamID)
		child.pushMetaUUID("itemId", d.ItemID)
		child.pushMetaString("itemName", d.ItemName)
		child.pushMetaStrings("mods", d.ItemMods)
		child.pushMetaInt("itemDurability", d.Durability)
		child.pushMetaInt("itemHealthAfter", d.Health)
		child.pushMetaFloat("playerItemRatingAfter", d.PlayerItemRatingAfter)
		child.pushMetaFloat("playerItemRatingBefore", d.PlayerItemRatingBefore)
		child.pushMetaFloat("playerRating", d.PlayerRating)
		return child.build(kind)
	})
}

func (b *builder) pushItemDamage(d *ItemDamage, owner string) {
	if d == nil {
		return
	}
	line := possessive(owner) + " " + itemDamageLine(d)
	b.pushDescription(line)
	b.pushItemDamageChild(d, line)
}

func (b *builder) pushNamedItemDamage(d *NamedItemDamage) {
	if d == nil {
		return
	}
	b.pushItemDamage(&d.Damage, d.Name)
}

func (b *builder) pushNamedItemDamages(ds []NamedItemDamage) {
	for i := range ds {
		b.pushNamedItemDamage(&ds[i])
	}
}

// pushScorers renders the scoring lines, their children and the parent
// tags for the scorers.
func (b *builder) pushScorers(scorers []ScoringPlayer, label string) {
	for i := range scorers {
		p := &scorers[i]
		b.pushItemDamage(p.ItemDamage, p.PlayerName)
		b.pushDescription(p.PlayerName + label)
		b.pushPlayerTag(p.PlayerID)
		if att := p.Attraction; att != nil {
			b.pushDescription("The " + att.TeamNickname + " Attract " + p.PlayerName + "!")
			b.pushChild(att.SubEvent, func(child *builder) wire.Record {
				child.setCategory(wire.CategoryChanges)
				child.pushDescription("The " + att.TeamNickname + " Attracted " + p.PlayerName + "!")
				child.pushPlayerTag(p.PlayerID)
				child.pushTeamTag(att.TeamID)
				child.pushMetaInt("location", 2)
				child.pushMetaUUID("playerId", p.PlayerID)
				child.pushMetaString("playerName", p.PlayerName)
				child.pushMetaUUID("teamId", att.TeamID)
				child.pushMetaString("teamName", att.TeamNickname)
				return child.build(wire.PlayerAddedToTeam)
			})
		}
	}
}

func (b *builder) pushScores(s Scores, label string) {
	b.pushScorers(s.Scores, label)
	b.pushFreeRefills(s.FreeRefills)
}

func (b *builder) pushFreeRefill(r *FreeRefill) {
	if r == nil {
		return
	}
	b.pushDescription(r.PlayerName + " used their Free Refill.")
	b.pushDescription(r.PlayerName + " Refills the In!")
	b.pushModEffect(r.SubEvent, wire.RemovedMod,
		r.PlayerName+" used their Free Refill.", r.TeamID, r.PlayerID, "COFFEE_RALLY", 0)
}

func (b *builder) pushFreeRefills(refills []FreeRefill) {
	for i := range refills {
		b.pushFreeRefill(&refills[i])
	}
}

func (b *builder) pushStoppedInhabiting(si *StoppedInhabiting) {
	if si == nil {
		return
	}
	b.pushModEffect(si.SubEvent, wire.RemovedMod,
		si.InhabitingPlayerName+" stopped Inhabiting.",
		si.InhabitingPlayerTeamID, si.InhabitingPlayerID, "INHABITING", 0)
}

func (b *builder) pushSpicy(s SpicyStatus, batterName string, batterID uuid.UUID) {
	if s.HeatingUp {
		b.pushDescription(batterName + " is Heating Up!")
		b.pushPlayerTag(batterID)
		return
	}
	if !s.RedHot {
		return
	}
	b.pushDescription(batterName + " is Red Hot!")
	b.pushPlayerTag(batterID)
	if mod := s.Mod; mod != nil {
		teamID := mod.TeamID
		b.pushModEffect(mod.SubEvent, wire.AddedMod,
			batterName+" is Red Hot!", &teamID, batterID, "ON_FIRE", 0)
	}
}

func (b *builder) pushCooledOff(m *ModChangeWithPlayer, batterName string) {
	if m == nil {
		return
	}
	b.pushDescription(batterName + " cooled off.")
	teamID := m.TeamID
	b.pushModEffect(m.SubEvent, wire.RemovedMod,
		batterName+" cooled off.", &teamID, m.PlayerID, "ON_FIRE", 0)
	b.pushPlayerTag(m.PlayerID)
}

func (b *builder) pushChargeBlood(m *ModChange, batterName string, batterID uuid.UUID, source string) {
	if m == nil {
		return
	}
	b.pushDescription(batterName + " Power Chaaarges!")
	b.pushChild(m.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(batterName + " Power Chaaarges!")
		child.pushPlayerTag(batterID)
		child.pushTeamTag(m.TeamID)
		child.pushMetaString("mod", "OVERPERFORMING")
		child.pushMetaString("source", source)
		child.pushMetaInt("type", int64(ModGame))
		return child.build(wire.AddedModFromOtherMod)
	})
}

func (b *builder) pushBatterDebt(d *BatterDebt, batterName, fielderName string) {
	if d == nil {
		return
	}
	b.pushDescription(batterName + " hit a ball at " + fielderName + "...")
	if mod := d.SubEvent; mod != nil {
		b.pushDescription(fielderName + " is now being Observed...")
		teamID := mod.TeamID
		b.pushModEffect(mod.SubEvent, wire.AddedMod,
			fielderName+" is now being Observed...", &teamID, d.FielderID, "COFFEE_PERIL", 2)
	}
	b.pushPlayerTag(d.BatterID)
	b.pushPlayerTag(d.FielderID)
}

func (b *builder) pushMagmatic(m *ModChange, batterName string, batterID uuid.UUID) {
	if m == nil {
		return
	}
	b.pushDescription(batterName + " is Magmatic!")
	teamID := m.TeamID
	b.pushModEffect(m.SubEvent, wire.RemovedMod,
		batterName+" hit a Magmatic home run!", &teamID, batterID, "MAGMATIC", 0)
}

func (b *builder) pushAttractionWithPlayer(a *AttractionWithPlayer) {
	if a == nil {
		return
	}
	b.pushDescription("The " + a.TeamNickname + " Attract " + a.PlayerName + "!")
	b.pushChild(a.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription("The " + a.TeamNickname + " Attracted " + a.PlayerName + "!")
		child.pushPlayerTag(a.PlayerID)
		child.pushTeamTag(a.TeamID)
		child.pushMetaInt("location", 2)
		child.pushMetaUUID("playerId", a.PlayerID)
		child.pushMetaString("playerName", a.PlayerName)
		child.pushMetaUUID("teamId", a.TeamID)
		child.pushMetaString("teamName", a.TeamNickname)
		return child.build(wire.PlayerAddedToTeam)
	})
	b.pushPlayerTag(a.PlayerID)
}
