package feed

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

// category returns the record's category code.
func (c *cursor) category() wire.Category {
	return c.record.Category
}

// parseCount reads a "{balls}-{strikes}" pair.
func (c *cursor) parseCount() (int, int, error) {
	balls, err := c.scan.WholeNumber()
	if err != nil {
		return 0, 0, c.descErr(err)
	}
	if err := c.scan.Tag("-"); err != nil {
		return 0, 0, c.descErr(err)
	}
	strikes, err := c.scan.WholeNumber()
	if err != nil {
		return 0, 0, c.descErr(err)
	}
	return balls, strikes, nil
}

// PerformingChange is the mod-from-other-mod child left behind when a
// source mod toggles Over/Underperforming. The parse keeps the child's own
// mod ids so the build can replay them without knowing the source's rules.
type PerformingChange struct {
	SubEvent SubEventRef `json:"subEvent"`
	TeamID   uuid.UUID   `json:"teamId"`

	// PlayerID is null on team-level changes.
	PlayerID *uuid.UUID `json:"playerId"`

	// Kind is AddedModFromOtherMod, RemovedModFromOtherMod or
	// ChangedModFromOtherMod.
	Kind wire.EventType `json:"kind"`

	// ModID is the performing mod, or the new mod on a change.
	ModID string `json:"modId"`

	// FromModID is set only on ChangedModFromOtherMod.
	FromModID string `json:"fromModId"`

	SourceModID string      `json:"sourceModId"`
	Duration    ModDuration `json:"duration"`
}

// parsePerformingChange consumes the next child as a performing toggle
// whose description must equal desc. withPlayer selects whether the child
// carries a player tag.
func (c *cursor) parsePerformingChange(desc string, withPlayer bool) (*PerformingChange, error) {
	child, err := c.nextChild(wire.AddedModFromOtherMod, wire.RemovedModFromOtherMod, wire.ChangedModFromOtherMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(desc); err != nil {
		return nil, child.descErr(err)
	}
	pc := &PerformingChange{SubEvent: child.subEvent(), Kind: child.kind()}
	if withPlayer {
		id, err := child.nextPlayerID()
		if err != nil {
			return nil, err
		}
		pc.PlayerID = &id
	}
	if pc.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if pc.Kind == wire.ChangedModFromOtherMod {
		if pc.FromModID, err = child.metaString("from"); err != nil {
			return nil, err
		}
		if pc.ModID, err = child.metaString("to"); err != nil {
			return nil, err
		}
	} else {
		if pc.ModID, err = child.metaString("mod"); err != nil {
			return nil, err
		}
	}
	if pc.SourceModID, err = child.metaString("source"); err != nil {
		return nil, err
	}
	modType, err := child.metaInt("type")
	if err != nil {
		return nil, err
	}
	if pc.Duration, err = ModDurationFromValue(modType); err != nil {
		return nil, err
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	return pc, nil
}

// tryPerformingChange is parsePerformingChange for optional children. It
// matches only when the next child has a from-other-mod kind.
func (c *cursor) tryPerformingChange(desc string, withPlayer bool) (*PerformingChange, error) {
	t, ok := c.peekChildType()
	if !ok {
		return nil, nil
	}
	switch t {
	case wire.AddedModFromOtherMod, wire.RemovedModFromOtherMod, wire.ChangedModFromOtherMod:
		return c.parsePerformingChange(desc, withPlayer)
	}
	return nil, nil
}

func (b *builder) pushPerformingChange(pc *PerformingChange, desc string) {
	if pc == nil {
		return
	}
	b.pushChild(pc.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		if pc.PlayerID != nil {
			child.pushPlayerTag(*pc.PlayerID)
		}
		child.pushTeamTag(pc.TeamID)
		if pc.Kind == wire.ChangedModFromOtherMod {
			child.pushMetaString("from", pc.FromModID)
			child.pushMetaString("source", pc.SourceModID)
			child.pushMetaString("to", pc.ModID)
		} else {
			child.pushMetaString("mod", pc.ModID)
			child.pushMetaString("source", pc.SourceModID)
		}
		child.pushMetaInt("type", int64(pc.Duration))
		return child.build(pc.Kind)
	})
}

// parseStatChangeChild consumes a stat-change child: the given
// description, a player tag, a team tag and the before/after/type keys.
// The expected kind is implied by comparing before and after.
func (c *cursor) parseStatChangeChild(desc string, category StatChangeCategory) (*PlayerStatChange, error) {
	child, err := c.nextChild(wire.PlayerStatIncrease, wire.PlayerStatDecrease)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(desc); err != nil {
		return nil, child.descErr(err)
	}
	sc := &PlayerStatChange{SubEvent: child.subEvent()}
	if sc.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if sc.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if sc.RatingAfter, err = child.metaFloat("after"); err != nil {
		return nil, err
	}
	if sc.RatingBefore, err = child.metaFloat("before"); err != nil {
		return nil, err
	}
	typ, err := child.metaInt("type")
	if err != nil {
		return nil, err
	}
	if typ != int64(category) {
		return nil, child.metaTypeError("type", "stat category "+strconv.FormatInt(int64(category), 10), nil)
	}
	if err := child.finish(); err != nil {
		return nil, err
	}
	return sc, nil
}

// pushStatChangeChild renders a stat-change child, picking increase or
// decrease from the rating movement.
func (b *builder) pushStatChangeChild(sc *PlayerStatChange, desc string, category StatChangeCategory) {
	kind := wire.PlayerStatIncrease
	if sc.RatingAfter < sc.RatingBefore {
		kind = wire.PlayerStatDecrease
	}
	b.pushChild(sc.SubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(desc)
		child.pushPlayerTag(sc.PlayerID)
		child.pushTeamTag(sc.TeamID)
		child.pushMetaFloat("after", sc.RatingAfter)
		child.pushMetaFloat("before", sc.RatingBefore)
		child.pushMetaInt("type", int64(category))
		return child.build(kind)
	})
}

// parseSentElsewhere consumes the mod-added child for a player swept or
// expelled Elsewhere. The child repeats the given line.
func (c *cursor) parseSentElsewhere(desc string) (*ModChangeWithPlayer, error) {
	child, err := c.nextChild(wire.AddedMod)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(desc); err != nil {
		return nil, child.descErr(err)
	}
	m := &ModChangeWithPlayer{SubEvent: child.subEvent()}
	if m.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if m.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if err := finishModEffect(child); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *builder) pushSentElsewhere(m *ModChangeWithPlayer, desc string) {
	teamID := m.TeamID
	b.pushModEffect(m.SubEvent, wire.AddedMod, desc, &teamID, m.PlayerID, "ELSEWHERE", int64(ModPermanent))
}

// SubseasonalMod is one seasonal-phase performing toggle, on a player or
// (when Player is nil) a whole team.
type SubseasonalMod struct {
	// SourceModID is the seasonal mod whose phase toggled, like EARLBIRDS.
	SourceModID string `json:"sourceModId"`

	// Label is the display name in the text, like "Earlbirds".
	Label    string `json:"label"`
	WasAdded bool   `json:"wasAdded"`

	Player       *PlayerRef `json:"player"`
	TeamID       uuid.UUID  `json:"teamId"`
	TeamNickname string     `json:"teamNickname"`

	// Change is null when the toggle left no child.
	Change *PerformingChange `json:"change"`
}

// subseasonalSources maps source mod ids to display labels and subject
// level.
var subseasonalSources = []struct {
	modID      string
	label      string
	prefix     string
	playerMod  bool
	kind       wire.EventType
	onText     string
	offText    string
}{
	{modID: "EARLBIRDS", label: "Earlbirds", prefix: "Happy Earlseason!", kind: wire.Earlbird},
	{modID: "LATE_TO_PARTY", label: "Late to the Party", prefix: "Late to the Party!", kind: wire.LateToTheParty},
	{modID: "MIDDLING", label: "Middling", prefix: "Happy Midseason!", kind: wire.Middling},
	{modID: "AMBITIOUS", label: "Ambitious", playerMod: true, kind: wire.Ambitious, offText: " loses their Ambition."},
	{modID: "COASTING", label: "Coasting", playerMod: true, kind: wire.Coasting, offText: " stops Coasting."},
}

// subseasonalLine renders the parent line for one toggle the way the sim
// spelled it in the record's season.
func subseasonalLine(m *SubseasonalMod, season int) string {
	if m.Player != nil {
		if m.WasAdded {
			return m.Player.PlayerName + " is " + m.Label + "."
		}
		for _, src := range subseasonalSources {
			if src.modID == m.SourceModID && src.offText != "" {
				return m.Player.PlayerName + src.offText
			}
		}
		return m.Player.PlayerName + " is no longer " + m.Label + "."
	}
	if season < 15 {
		if m.WasAdded {
			return "The " + m.TeamNickname + " are " + m.Label + "!"
		}
		return m.Label + " wears off for the " + m.TeamNickname + "."
	}
	if m.WasAdded {
		return "The " + m.TeamNickname + " are " + m.Label + "."
	}
	return m.TeamNickname + " are no longer " + m.Label + "."
}

// parseSubseasonalMod tries each toggle grammar at the current position.
// It returns nil with no error when none match.
func (c *cursor) parseSubseasonalMod(season int) (*SubseasonalMod, error) {
	for _, src := range subseasonalSources {
		pos := c.scan.Pos()
		m, ok := c.trySubseasonalText(src.modID, src.label, src.prefix, src.offText, src.playerMod, season)
		if !ok {
			c.scan.Reset(pos)
			continue
		}
		line := subseasonalLine(m, season)
		if m.Player != nil {
			id, err := c.nextPlayerID()
			if err != nil {
				return nil, err
			}
			player := *m.Player
			player.PlayerID = id
			m.Player = &player
		}
		if c.hasChildren() {
			change, err := c.tryPerformingChange(line, m.Player != nil)
			if err != nil {
				return nil, err
			}
			m.Change = change
		}
		if m.Change != nil {
			m.TeamID = m.Change.TeamID
		}
		return m, nil
	}
	return nil, nil
}

// trySubseasonalText matches the parent text for one source mod. The
// caller resets the scanner when it reports no match.
func (c *cursor) trySubseasonalText(modID, label, prefix, offText string, playerMod bool, season int) (*SubseasonalMod, bool) {
	s := c.scan
	m := &SubseasonalMod{SourceModID: modID, Label: label}
	if playerMod {
		if name, err := s.Terminated(" is " + label + "."); err == nil {
			m.Player = &PlayerRef{PlayerName: name}
			m.WasAdded = true
			return m, true
		}
		off := offText
		if off == "" {
			off = " is no longer " + label + "."
		}
		if name, err := s.Terminated(off); err == nil {
			m.Player = &PlayerRef{PlayerName: name}
			return m, true
		}
		return nil, false
	}
	if season < 15 {
		// The announcement line precedes both the on and the off text in
		// the early-era spelling.
		if prefix != "" && !s.TryTag(prefix+"\n") {
			return nil, false
		}
		if s.TryTag("The ") {
			team, err := s.Terminated(" are " + label + "!")
			if err != nil {
				return nil, false
			}
			m.TeamNickname = team
			m.WasAdded = true
			return m, true
		}
		if s.TryTag(label + " wears off for the ") {
			team, err := s.Terminated(".")
			if err != nil {
				return nil, false
			}
			m.TeamNickname = team
			return m, true
		}
		return nil, false
	}
	if s.TryTag("The ") {
		team, err := s.Terminated(" are " + label + ".")
		if err != nil || !teamNicknameOrObject(team) {
			return nil, false
		}
		m.TeamNickname = team
		m.WasAdded = true
		return m, true
	}
	team, err := s.Terminated(" are no longer " + label + ".")
	if err != nil || !teamNicknameOrObject(team) {
		return nil, false
	}
	m.TeamNickname = team
	return m, true
}

// teamNicknameOrObject accepts known nicknames plus the stringified-null
// artifact the sim sometimes emitted.
func teamNicknameOrObject(name string) bool {
	return isKnownTeamNickname(name) || name == "[object Object]"
}

// parseSubseasonalMods reads toggles until the grammar stops matching.
func (c *cursor) parseSubseasonalMods(season int) ([]SubseasonalMod, error) {
	var out []SubseasonalMod
	for {
		m, err := c.parseSubseasonalMod(season)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return out, nil
		}
		out = append(out, *m)
		// Toggles are newline separated from whatever follows.
		c.scan.TryTag("\n")
	}
}

// pushSubseasonalMods renders the toggles ahead of whatever the event
// pushes next.
func (b *builder) pushSubseasonalMods(mods []SubseasonalMod, season int) {
	for i := range mods {
		m := &mods[i]
		line := subseasonalLine(m, season)
		if m.Player == nil && season < 15 {
			for _, src := range subseasonalSources {
				if src.modID == m.SourceModID && src.prefix != "" {
					b.pushDescription(src.prefix)
				}
			}
		}
		b.pushDescription(line)
		if m.Player != nil {
			b.pushPlayerTag(m.Player.PlayerID)
		}
		b.pushPerformingChange(m.Change, line)
	}
}

// TogglePerforming build/parse for the Superyummy and Homebody style
// toggles: the first proc adds the performing mod, later procs change it
// from the opposite one.
func (c *cursor) parseTogglePerforming(desc string) (*TogglePerforming, error) {
	pc, err := c.parsePerformingChange(desc, true)
	if err != nil {
		return nil, err
	}
	t := &TogglePerforming{
		TeamID:           pc.TeamID,
		IsOverperforming: pc.ModID == "OVERPERFORMING",
		IsFirstProc:      pc.Kind == wire.AddedModFromOtherMod,
		SubEvent:         pc.SubEvent,
	}
	if pc.PlayerID != nil {
		t.PlayerID = *pc.PlayerID
	}
	return t, nil
}

func (b *builder) pushTogglePerforming(t *TogglePerforming, desc, source string) {
	kind := wire.ChangedModFromOtherMod
	if t.IsFirstProc {
		kind = wire.AddedModFromOtherMod
	}
	mod, opposite := "OVERPERFORMING", "UNDERPERFORMING"
	if !t.IsOverperforming {
		mod, opposite = opposite, mod
	}
	playerID := t.PlayerID
	pc := &PerformingChange{
		SubEvent:    t.SubEvent,
		TeamID:      t.TeamID,
		PlayerID:    &playerID,
		Kind:        kind,
		ModID:       mod,
		FromModID:   opposite,
		SourceModID: source,
		Duration:    ModPermanent,
	}
	b.pushPerformingChange(pc, desc)
}
