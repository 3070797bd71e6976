package feed

import (
	"strings"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

// parseGainedItem reads the gained-item sentence and children that mirror
// pushGainedItem: an optional dropped-item child first, then the gained
// child carrying the item metadata.
func (c *cursor) parseGainedItem() (string, ItemGained, error) {
	gained := ItemGained{}
	name, err := c.scan.Terminated(" gained ")
	if err != nil {
		return "", gained, c.descErr(err)
	}
	var droppedName string
	pos := c.scan.Pos()
	if item, err := c.scan.Terminated(" and dropped "); err == nil {
		gained.ItemName = item
		if droppedName, err = c.scan.UntilPeriodEOF(); err != nil {
			return "", gained, c.descErr(err)
		}
	} else {
		c.scan.Reset(pos)
		if gained.ItemName, err = c.scan.UntilPeriodEOF(); err != nil {
			return "", gained, c.descErr(err)
		}
	}

	if droppedName != "" {
		child, err := c.nextChild(wire.PlayerLostItem)
		if err != nil {
			return "", gained, err
		}
		if err := child.scan.Tag(name + " dropped " + droppedName + "."); err != nil {
			return "", gained, child.descErr(err)
		}
		lost := &ItemDropped{ItemName: droppedName, SubEvent: child.subEvent()}
		if _, err := child.nextPlayerID(); err != nil {
			return "", gained, err
		}
		if _, err := child.nextTeamID(); err != nil {
			return "", gained, err
		}
		if lost.ItemID, err = child.metaUUID("itemId"); err != nil {
			return "", gained, err
		}
		if _, err := child.metaString("itemName"); err != nil {
			return "", gained, err
		}
		if lost.ItemMods, err = child.metaStrings("mods"); err != nil {
			return "", gained, err
		}
		if lost.PlayerItemRatingAfter, err = child.metaFloat("playerItemRatingAfter"); err != nil {
			return "", gained, err
		}
		if lost.PlayerItemRatingBefore, err = child.metaFloat("playerItemRatingBefore"); err != nil {
			return "", gained, err
		}
		if _, err := child.metaFloat("playerRating"); err != nil {
			return "", gained, err
		}
		if err := c.finishChild(child); err != nil {
			return "", gained, err
		}
		gained.DroppedItem = lost
	}

	child, err := c.nextChild(wire.PlayerGainedItem)
	if err != nil {
		return "", gained, err
	}
	if err := child.scan.Tag(name + " gained " + gained.ItemName + "."); err != nil {
		return "", gained, child.descErr(err)
	}
	gained.SubEvent = child.subEvent()
	if gained.PlayerID, err = child.nextPlayerID(); err != nil {
		return "", gained, err
	}
	if gained.TeamID, err = child.nextTeamID(); err != nil {
		return "", gained, err
	}
	if gained.ItemID, err = child.metaUUID("itemId"); err != nil {
		return "", gained, err
	}
	if _, err := child.metaString("itemName"); err != nil {
		return "", gained, err
	}
	if gained.ItemMods, err = child.metaStrings("mods"); err != nil {
		return "", gained, err
	}
	if gained.PlayerItemRatingAfter, err = child.metaFloat("playerItemRatingAfter"); err != nil {
		return "", gained, err
	}
	if gained.PlayerItemRatingBefore, err = child.metaFloat("playerItemRatingBefore"); err != nil {
		return "", gained, err
	}
	if gained.PlayerRating, err = child.metaFloat("playerRating"); err != nil {
		return "", gained, err
	}
	if err := c.finishChild(child); err != nil {
		return "", gained, err
	}
	return name, gained, nil
}

// GlitterCrateDrop is a Glitter weather crate handing a player an item.
type GlitterCrateDrop struct {
	Game       GameRef    `json:"game"`
	PlayerName string     `json:"playerName"`
	Gained     ItemGained `json:"gained"`
}

func parseGlitterCrateDrop(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &GlitterCrateDrop{Game: game}
	if err := c.scan.Tag("A shimmering Crate descends.\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerName, p.Gained, err = c.parseGainedItem(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *GlitterCrateDrop) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.pushDescription("A shimmering Crate descends.")
	b.pushGainedItem(p.PlayerName, p.Gained)
	return b.build(wire.GlitterCrateDrop)
}

// CommunityChestOpen is the per-player ledger record for a community
// chest. Early seasons filed it as Special, later ones as Changes, and
// the rating pair is absent on some records.
type CommunityChestOpen struct {
	TeamID     uuid.UUID `json:"teamId"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`

	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore *float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  *float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64  `json:"playerRating"`
}

func parseCommunityChestOpen(c *cursor) (Payload, error) {
	p := &CommunityChestOpen{}
	if err := c.scan.Tag("The Community Chest Opens! "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" gained "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ItemName, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.ItemID, err = c.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("itemName"); err != nil {
		return nil, err
	}
	if p.ItemMods, err = c.metaStrings("mods"); err != nil {
		return nil, err
	}
	if c.hasMeta("playerItemRatingBefore") {
		before, err := c.metaFloat("playerItemRatingBefore")
		if err != nil {
			return nil, err
		}
		p.PlayerItemRatingBefore = &before
	}
	if c.hasMeta("playerItemRatingAfter") {
		after, err := c.metaFloat("playerItemRatingAfter")
		if err != nil {
			return nil, err
		}
		p.PlayerItemRatingAfter = &after
	}
	if p.PlayerRating, err = c.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *CommunityChestOpen) buildInto(b *builder) wire.Record {
	category := wire.CategoryChanges
	if b.rec.Season < 17 || (b.rec.Season == 17 && b.rec.Day < 58) {
		category = wire.CategorySpecial
	}
	b.setCategory(category)
	b.pushDescription("The Community Chest Opens! " + p.PlayerName + " gained " + p.ItemName + ".")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaUUID("itemId", p.ItemID)
	b.pushMetaString("itemName", p.ItemName)
	b.pushMetaStrings("mods", p.ItemMods)
	if p.PlayerItemRatingBefore != nil {
		b.pushMetaFloat("playerItemRatingBefore", *p.PlayerItemRatingBefore)
	}
	if p.PlayerItemRatingAfter != nil {
		b.pushMetaFloat("playerItemRatingAfter", *p.PlayerItemRatingAfter)
	}
	b.pushMetaFloat("playerRating", p.PlayerRating)
	return b.build(wire.CommunityChestOpens)
}

// ChestGain is one player's line in the community chest game message.
type ChestGain struct {
	PlayerName  string `json:"playerName"`
	ItemName    string `json:"itemName"`
	DroppedItem string `json:"droppedItem,omitempty"`
}

func (g *ChestGain) line() string {
	if g.DroppedItem != "" {
		return g.PlayerName + " gained " + g.ItemName + " and dropped " + g.DroppedItem + "."
	}
	return g.PlayerName + " gained " + g.ItemName + "."
}

// CommunityChestGameMessage is the in-game announcement of a community
// chest. The real item records are the standalone CommunityChestOpen
// entries; this one carries names only.
type CommunityChestGameMessage struct {
	Game   GameRef   `json:"game"`
	First  ChestGain `json:"first"`
	Second ChestGain `json:"second"`
}

func (c *cursor) parseChestGain() (ChestGain, error) {
	g := ChestGain{}
	var err error
	if g.PlayerName, err = c.scan.Terminated(" gained "); err != nil {
		return g, c.descErr(err)
	}
	line := restOfLine(c.scan)
	body, ok := strings.CutSuffix(line, ".")
	if !ok {
		return g, c.descErr(c.scan.Tag(line + "."))
	}
	if err := c.scan.Tag(line); err != nil {
		return g, c.descErr(err)
	}
	if item, dropped, ok := strings.Cut(body, " and dropped "); ok {
		g.ItemName, g.DroppedItem = item, dropped
	} else {
		g.ItemName = body
	}
	return g, nil
}

func parseCommunityChestGameMessage(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &CommunityChestGameMessage{Game: game}
	if err := c.scan.Tag("The Community Chest Opens!\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.First, err = c.parseChestGain(); err != nil {
		return nil, err
	}
	if err := c.scan.Tag("\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.Second, err = c.parseChestGain(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *CommunityChestGameMessage) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("The Community Chest Opens!")
	b.pushDescription(p.First.line())
	b.pushDescription(p.Second.line())
	return b.build(wire.CommunityChestOpens)
}

// PlayerDropsItem is a player discarding an item outside a gain.
type PlayerDropsItem struct {
	TeamID     uuid.UUID `json:"teamId"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`

	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64 `json:"playerRating"`
}

func parsePlayerDropsItem(c *cursor) (Payload, error) {
	p := &PlayerDropsItem{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" dropped "); err != nil {
		return nil, c.descErr(err)
	}
	if p.ItemName, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.ItemID, err = c.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("itemName"); err != nil {
		return nil, err
	}
	if p.ItemMods, err = c.metaStrings("mods"); err != nil {
		return nil, err
	}
	if p.PlayerItemRatingAfter, err = c.metaFloat("playerItemRatingAfter"); err != nil {
		return nil, err
	}
	if p.PlayerItemRatingBefore, err = c.metaFloat("playerItemRatingBefore"); err != nil {
		return nil, err
	}
	if p.PlayerRating, err = c.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerDropsItem) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " dropped " + p.ItemName + ".")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaUUID("itemId", p.ItemID)
	b.pushMetaString("itemName", p.ItemName)
	b.pushMetaStrings("mods", p.ItemMods)
	b.pushMetaFloat("playerItemRatingAfter", p.PlayerItemRatingAfter)
	b.pushMetaFloat("playerItemRatingBefore", p.PlayerItemRatingBefore)
	b.pushMetaFloat("playerRating", p.PlayerRating)
	return b.build(wire.PlayerLostItem)
}

// TarotItemChange is an item granted or taken by a tarot reading. Like
// the tarot mod records, the description is upstream prose and the
// record is recognized by id.
type TarotItemChange struct {
	TeamID      uuid.UUID `json:"teamId"`
	PlayerID    uuid.UUID `json:"playerId"`
	Description string    `json:"description"`

	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore float64 `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64 `json:"playerRating"`

	ItemGained bool `json:"itemGained"`
}

func parseTarotItemChange(c *cursor) (Payload, error) {
	p := &TarotItemChange{
		Description: takeRest(c.scan),
		ItemGained:  c.kind() == wire.PlayerGainedItem,
	}
	var err error
	if p.ItemID, err = c.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if p.ItemName, err = c.metaString("itemName"); err != nil {
		return nil, err
	}
	if p.ItemMods, err = c.metaStrings("mods"); err != nil {
		return nil, err
	}
	if p.PlayerItemRatingBefore, err = c.metaFloat("playerItemRatingBefore"); err != nil {
		return nil, err
	}
	if p.PlayerItemRatingAfter, err = c.metaFloat("playerItemRatingAfter"); err != nil {
		return nil, err
	}
	if p.PlayerRating, err = c.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *TarotItemChange) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.Description)
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaUUID("itemId", p.ItemID)
	b.pushMetaString("itemName", p.ItemName)
	b.pushMetaStrings("mods", p.ItemMods)
	b.pushMetaFloat("playerItemRatingBefore", p.PlayerItemRatingBefore)
	b.pushMetaFloat("playerItemRatingAfter", p.PlayerItemRatingAfter)
	b.pushMetaFloat("playerRating", p.PlayerRating)
	kind := wire.PlayerLostItem
	if p.ItemGained {
		kind = wire.PlayerGainedItem
	}
	return b.build(kind)
}

// WonPrizeMatch is the prize item landing after a Prize Match. The sim
// credited either the winning team or the receiving player, depending on
// the era.
type WonPrizeMatch struct {
	TeamID   uuid.UUID `json:"teamId"`
	PlayerID uuid.UUID `json:"playerId"`

	// Exactly one of TeamNickname and PlayerName is set, matching the
	// two description forms.
	TeamNickname string `json:"teamNickname,omitempty"`
	PlayerName   string `json:"playerName,omitempty"`

	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	ItemMods []string  `json:"itemMods"`

	PlayerItemRatingBefore float64  `json:"playerItemRatingBefore"`
	PlayerItemRatingAfter  *float64 `json:"playerItemRatingAfter"`
	PlayerRating           float64  `json:"playerRating"`
}

func parseWonPrizeMatch(c *cursor) (Payload, error) {
	p := &WonPrizeMatch{}
	pos := c.scan.Pos()
	if c.scan.TryTag("The ") {
		if team, err := c.scan.Terminated(" won the Prize Match!"); err == nil && isKnownTeamNickname(team) {
			p.TeamNickname = team
		} else {
			c.scan.Reset(pos)
		}
	}
	var err error
	if p.TeamNickname == "" {
		if p.PlayerName, err = c.scan.Terminated(" gained the Prized "); err != nil {
			return nil, c.descErr(err)
		}
		if p.ItemName, err = c.scan.UntilPeriodEOF(); err != nil {
			return nil, c.descErr(err)
		}
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.ItemID, err = c.metaUUID("itemId"); err != nil {
		return nil, err
	}
	itemName, err := c.metaString("itemName")
	if err != nil {
		return nil, err
	}
	p.ItemName = itemName
	if p.ItemMods, err = c.metaStrings("mods"); err != nil {
		return nil, err
	}
	if c.hasMeta("playerItemRatingAfter") {
		after, err := c.metaFloat("playerItemRatingAfter")
		if err != nil {
			return nil, err
		}
		p.PlayerItemRatingAfter = &after
	}
	if p.PlayerItemRatingBefore, err = c.metaFloat("playerItemRatingBefore"); err != nil {
		return nil, err
	}
	if p.PlayerRating, err = c.metaFloat("playerRating"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *WonPrizeMatch) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	if p.TeamNickname != "" {
		b.pushDescription("The " + p.TeamNickname + " won the Prize Match!")
	} else {
		b.pushDescription(p.PlayerName + " gained the Prized " + p.ItemName + ".")
	}
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaUUID("itemId", p.ItemID)
	b.pushMetaString("itemName", p.ItemName)
	b.pushMetaStrings("mods", p.ItemMods)
	if p.PlayerItemRatingAfter != nil {
		b.pushMetaFloat("playerItemRatingAfter", *p.PlayerItemRatingAfter)
	}
	b.pushMetaFloat("playerItemRatingBefore", p.PlayerItemRatingBefore)
	b.pushMetaFloat("playerRating", p.PlayerRating)
	return b.build(wire.PlayerGainedItem)
}

// Smithy is the Smithy renovation repairing an item mid-game.
type Smithy struct {
	Game   GameRef      `json:"game"`
	Repair ItemRepaired `json:"repair"`

	// WasBroken picks the child kind, matching the restoration records.
	WasBroken bool `json:"wasBroken"`
}

func parseSmithy(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Smithy{Game: game}
	if err := c.scan.Tag("Smithy beckons to "); err != nil {
		return nil, c.descErr(err)
	}
	name, err := c.scan.Terminated(".\n")
	if err != nil {
		return nil, c.descErr(err)
	}
	item := ItemRepaired{PlayerName: name}
	if item.ItemName, err = c.scan.Terminated(" is repaired!"); err != nil {
		return nil, c.descErr(err)
	}
	if item.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.BrokenItemRepaired, wire.DamagedItemRepaired)
	if err != nil {
		return nil, err
	}
	p.WasBroken = child.kind() == wire.BrokenItemRepaired
	if err := child.scan.Tag(possessive(name) + " " + item.ItemName + " was repaired by Smithy."); err != nil {
		return nil, child.descErr(err)
	}
	item.SubEvent = child.subEvent()
	if item.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if item.ItemID, err = child.metaUUID("itemId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("itemName"); err != nil {
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
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}
	p.Repair = item
	return p, c.finish()
}

func (p *Smithy) buildInto(b *builder) wire.Record {
	item := p.Repair
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("Smithy beckons to " + item.PlayerName + ".")
	b.pushPlayerTag(item.PlayerID)
	b.pushDescription(item.ItemName + " is repaired!")
	kind := wire.DamagedItemRepaired
	if p.WasBroken {
		kind = wire.BrokenItemRepaired
	}
	b.pushChild(item.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(possessive(item.PlayerName) + " " + item.ItemName + " was repaired by Smithy.")
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
	return b.build(wire.Smithy)
}
