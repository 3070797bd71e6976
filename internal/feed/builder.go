package feed

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

// builder assembles one wire record. Children are assembled through
// push-style helpers so the inherited fields and the sub-play numbering
// stay consistent.
type builder struct {
	rec wire.Record
}

func newBuilder(env *Occurrence) *builder {
	empty := func() *[]uuid.UUID { s := []uuid.UUID{}; return &s }
	b := &builder{rec: wire.Record{
		ID:         env.ID,
		Created:    env.Created,
		Sim:        env.Sim,
		Day:        env.Day,
		Season:     env.Season,
		Tournament: env.Tournament,
		Phase:      env.Phase,
		Nuts:       env.Nuts,
		PlayerTags: empty(),
		GameTags:   empty(),
		TeamTags:   empty(),
		Metadata:   wire.Metadata{Other: map[string]json.RawMessage{}},
	}}
	return b
}

func (b *builder) setCategory(category wire.Category) {
	b.rec.Category = category
}

// setGame applies the game context: the game tag, the away-then-home team
// tags, the play number, and the fixed sub-play of -1 that game roots
// carry. It also renders the unscatter child and the attractor suffix.
func (b *builder) setGame(game GameRef) {
	*b.rec.GameTags = append(*b.rec.GameTags, game.GameID)
	*b.rec.TeamTags = append(*b.rec.TeamTags, game.AwayTeam, game.HomeTeam)
	play := game.Play
	b.rec.Metadata.Play = &play
	subPlay := int64(-1)
	b.rec.Metadata.SubPlay = &subPlay

	if unscatter := game.Unscatter; unscatter != nil {
		teamID := unscatter.TeamID
		b.pushModEffect(unscatter.SubEvent, wire.RemovedMod,
			unscatter.PlayerName+" was Unscattered.", &teamID, unscatter.PlayerID, "SCATTERED", 0)
	}

	// setGame runs before any other description push, so the attractor
	// line lands at the head of the description and its player tag comes
	// first.
	if attractor := game.AttractorSecretBase; attractor != nil {
		b.pushDescription(attractor.PlayerName + " enters the Secret Base...")
		b.pushPlayerTag(attractor.PlayerID)
	}
}

// pushChild assembles a child record inheriting sim, day, season,
// tournament, phase and game tags from the parent, numbered by its
// position among the children.
func (b *builder) pushChild(sub SubEventRef, buildFunc func(*builder) wire.Record) {
	gameTags := append([]uuid.UUID{}, *b.rec.GameTags...)
	emptyTags := func() *[]uuid.UUID { s := []uuid.UUID{}; return &s }
	child := &builder{rec: wire.Record{
		ID:         sub.ID,
		Created:    sub.Created,
		Sim:        b.rec.Sim,
		Day:        b.rec.Day,
		Season:     b.rec.Season,
		Tournament: b.rec.Tournament,
		Phase:      b.rec.Phase,
		Nuts:       sub.Nuts,
		PlayerTags: emptyTags(),
		GameTags:   &gameTags,
		TeamTags:   emptyTags(),
		Metadata:   wire.Metadata{Other: map[string]json.RawMessage{}},
	}}
	parent := b.rec.ID
	child.rec.Metadata.Parent = &parent
	if b.rec.Metadata.Play != nil {
		play := *b.rec.Metadata.Play
		child.rec.Metadata.Play = &play
	}
	subPlay := int64(len(b.rec.Metadata.Children))
	child.rec.Metadata.SubPlay = &subPlay
	b.rec.Metadata.Children = append(b.rec.Metadata.Children, buildFunc(child))
}

// clearSubPlay drops the child's sub-play number. One renovation child in
// the historical record was emitted without it.
func (b *builder) clearSubPlay() {
	b.rec.Metadata.SubPlay = nil
}

// pushDescription appends one sentence, joining sentences with a newline.
func (b *builder) pushDescription(desc string) {
	if b.rec.Description != "" {
		b.rec.Description += "\n"
	}
	b.rec.Description += desc
}

func (b *builder) pushPlayerTag(playerID uuid.UUID) {
	*b.rec.PlayerTags = append(*b.rec.PlayerTags, playerID)
}

func (b *builder) pushTeamTag(teamID uuid.UUID) {
	*b.rec.TeamTags = append(*b.rec.TeamTags, teamID)
}

func (b *builder) pushMetaRaw(key string, raw json.RawMessage) {
	b.rec.Metadata.Other[key] = raw
}

// pushMetaAll writes an opaque metadata block captured at parse time.
func (b *builder) pushMetaAll(meta map[string]json.RawMessage) {
	for key, raw := range meta {
		b.pushMetaRaw(key, raw)
	}
}

func (b *builder) pushMetaString(key, value string) {
	raw, _ := json.Marshal(value)
	b.pushMetaRaw(key, raw)
}

func (b *builder) pushMetaStrings(key string, values []string) {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	b.pushMetaRaw(key, raw)
}

func (b *builder) pushMetaUUID(key string, value uuid.UUID) {
	b.pushMetaString(key, value.String())
}

func (b *builder) pushMetaInt(key string, value int64) {
	b.pushMetaRaw(key, json.RawMessage(strconv.FormatInt(value, 10)))
}

func (b *builder) pushMetaBool(key string, value bool) {
	b.pushMetaRaw(key, json.RawMessage(strconv.FormatBool(value)))
}

// pushMetaFloat writes a numeric value in the upstream float spelling,
// except that zero is written as the integer 0. Some layer upstream
// collapses 0-valued floats to ints and the diff cares.
func (b *builder) pushMetaFloat(key string, value float64) {
	if value == 0 {
		b.pushMetaInt(key, 0)
		return
	}
	b.pushMetaRaw(key, json.RawMessage(encodeFloat(value)))
}

// pushMetaFloatForced writes the float spelling even for zero.
func (b *builder) pushMetaFloatForced(key string, value float64) {
	b.pushMetaRaw(key, json.RawMessage(encodeFloat(value)))
}

// encodeFloat renders a float the way the upstream serializer does:
// integral values keep a trailing ".0".
func encodeFloat(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return s + ".0"
	}
	return s
}

// pushGainedItem renders the gained-item text and children shared by the
// item-drop events.
func (b *builder) pushGainedItem(playerName string, gained ItemGained) {
	if lost := gained.DroppedItem; lost != nil {
		b.pushDescription(playerName + " gained " + gained.ItemName + " and dropped " + lost.ItemName + ".")
		b.pushChild(lost.SubEvent, func(child *builder) wire.Record {
			child.setCategory(wire.CategoryChanges)
			child.pushDescription(playerName + " dropped " + lost.ItemName + ".")
			child.pushPlayerTag(gained.PlayerID)
			child.pushTeamTag(gained.TeamID)
			child.pushMetaUUID("itemId", lost.ItemID)
			child.pushMetaString("itemName", lost.ItemName)
			child.pushMetaStrings("mods", lost.ItemMods)
			child.pushMetaFloat("playerItemRatingAfter", lost.PlayerItemRatingAfter)
			child.pushMetaFloat("playerItemRatingBefore", lost.PlayerItemRatingBefore)
			child.pushMetaFloat("playerRating", gained.PlayerRating)
			return child.build(wire.PlayerLostItem)
		})
	} else {
		b.pushDescription(playerName + " gained " + gained.ItemName + ".")
	}

	b.pushChild(gained.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(playerName + " gained " + gained.ItemName + ".")
		child.pushPlayerTag(gained.PlayerID)
		child.pushTeamTag(gained.TeamID)
		child.pushMetaUUID("itemId", gained.ItemID)
		child.pushMetaString("itemName", gained.ItemName)
		child.pushMetaStrings("mods", gained.ItemMods)
		child.pushMetaFloat("playerItemRatingAfter", gained.PlayerItemRatingAfter)
		child.pushMetaFloat("playerItemRatingBefore", gained.PlayerItemRatingBefore)
		child.pushMetaFloat("playerRating", gained.PlayerRating)
		return child.build(wire.PlayerGainedItem)
	})
}

func (b *builder) build(eventType wire.EventType) wire.Record {
	b.rec.Type = eventType
	return b.rec
}
