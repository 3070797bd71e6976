package feed

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/wire"
)

// PlayerHatched is a player emerging from the field of eggs.
type PlayerHatched struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parsePlayerHatched(c *cursor) (Payload, error) {
	p := &PlayerHatched{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" has been hatched from the field of eggs."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("id"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerHatched) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " has been hatched from the field of eggs.")
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaUUID("id", p.PlayerID)
	return b.build(wire.PlayerHatched)
}

// rosterMoveMeta reads the playerId/playerName/teamId/teamName block the
// roster-move records share.
func rosterMoveMeta(c *cursor) (playerName string, err error) {
	if _, err := c.metaUUID("playerId"); err != nil {
		return "", err
	}
	name, err := c.metaString("playerName")
	if err != nil {
		return "", err
	}
	if _, err := c.metaUUID("teamId"); err != nil {
		return "", err
	}
	if _, err := c.metaString("teamName"); err != nil {
		return "", err
	}
	return name, nil
}

// PostseasonBirth is a team pulling a new player from the shadows for the
// postseason.
type PostseasonBirth struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	Location     Position  `json:"location"`
}

func (p *PostseasonBirth) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " earn a Postseason Birth!")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaInt("location", int64(p.Location))
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.PlayerAddedToTeam)
}

// PlayerLocalized is a breach player Localizing into a team.
type PlayerLocalized struct {
	TeamID       uuid.UUID      `json:"teamId"`
	TeamNickname string         `json:"teamNickname"`
	PlayerID     uuid.UUID      `json:"playerId"`
	PlayerName   string         `json:"playerName"`
	Location     ActivePosition `json:"location"`
}

func (p *PlayerLocalized) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " Localized into the " + possessive(p.TeamNickname) + " " + p.Location.Location() + ".")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaInt("location", int64(p.Location))
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.PlayerAddedToTeam)
}

// RoamedIntoTeam is a Roamer arriving from the Hall of Flame.
type RoamedIntoTeam struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	Location     Position  `json:"location"`
}

func (p *RoamedIntoTeam) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " roamed to The " + p.TeamNickname + ".")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaInt("location", int64(p.Location))
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.PlayerAddedToTeam)
}

// parsePlayerAddedToTeam routes the standalone PlayerAddedToTeam
// grammars.
func parsePlayerAddedToTeam(c *cursor) (Payload, error) {
	pos := c.scan.Pos()
	if c.scan.TryTag("The ") {
		if team, err := c.scan.Terminated(" earn a Postseason Birth!"); err == nil {
			p := &PostseasonBirth{TeamNickname: team}
			if p.PlayerID, err = c.nextPlayerID(); err != nil {
				return nil, err
			}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			location, err := c.metaInt("location")
			if err != nil {
				return nil, err
			}
			if p.Location, err = PositionFromValue(location); err != nil {
				return nil, err
			}
			if p.PlayerName, err = rosterMoveMeta(c); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
	}
	if name, err := c.scan.Terminated(" Localized into the "); err == nil {
		p := &PlayerLocalized{PlayerName: name}
		rest, err := c.scan.UntilPeriodEOF()
		if err != nil {
			return nil, c.descErr(err)
		}
		team, loc, ok := cutPossessive(rest)
		if !ok {
			return nil, errors.WithMetadata(errors.CodeDescriptionParseFailed,
				"expected possessive team name", c.tagMeta(map[string]string{"rest": rest}))
		}
		p.TeamNickname = team
		switch loc {
		case "lineup":
			p.Location = PositionLineup
		case "rotation":
			p.Location = PositionRotation
		default:
			return nil, errors.WithMetadata(errors.CodeUnknownEnumValue, "unknown roster location",
				c.tagMeta(map[string]string{"location": loc}))
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if _, err := c.metaInt("location"); err != nil {
			return nil, err
		}
		if _, err := rosterMoveMeta(c); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	name, err := c.scan.Terminated(" roamed to The ")
	if err != nil {
		return nil, c.descErr(err)
	}
	p := &RoamedIntoTeam{PlayerName: name}
	if p.TeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	location, err := c.metaInt("location")
	if err != nil {
		return nil, err
	}
	if p.Location, err = PositionFromValue(location); err != nil {
		return nil, err
	}
	if _, err := rosterMoveMeta(c); err != nil {
		return nil, err
	}
	return p, c.finish()
}

// PlayerRoamed is a Roamer wandering from one team to another. Before
// season 18 the sim said "wandered".
type PlayerRoamed struct {
	PlayerID         uuid.UUID `json:"playerId"`
	PlayerName       string    `json:"playerName"`
	Location         Position  `json:"location"`
	PreviousTeamID   uuid.UUID `json:"previousTeamId"`
	PreviousTeamName string    `json:"previousTeamName"`
	NewTeamID        uuid.UUID `json:"newTeamId"`
	NewTeamName      string    `json:"newTeamName"`
}

func roamVerb(season int) string {
	if season < 17 {
		return " wandered to a new team."
	}
	return " roamed to a new team."
}

func (p *PlayerRoamed) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + roamVerb(b.rec.Season))
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.PreviousTeamID)
	b.pushTeamTag(p.NewTeamID)
	b.pushMetaInt("location", int64(p.Location))
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaInt("receiveLocation", int64(p.Location))
	b.pushMetaUUID("receiveTeamId", p.NewTeamID)
	b.pushMetaString("receiveTeamName", p.NewTeamName)
	b.pushMetaUUID("sendTeamId", p.PreviousTeamID)
	b.pushMetaString("sendTeamName", p.PreviousTeamName)
	return b.build(wire.PlayerMoved)
}

// InvestigationReturn is a detective coming back from a Crime Scene.
type InvestigationReturn struct {
	PlayerID         uuid.UUID `json:"playerId"`
	PlayerName       string    `json:"playerName"`
	PreviousTeamID   uuid.UUID `json:"previousTeamId"`
	PreviousTeamName string    `json:"previousTeamName"`
	NewLocation      Position  `json:"newLocation"`
	NewTeamID        uuid.UUID `json:"newTeamId"`
	NewTeamName      string    `json:"newTeamName"`
	Emptyhanded      bool      `json:"emptyhanded"`
}

func (p *InvestigationReturn) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	suffix := "."
	if p.Emptyhanded {
		suffix = " emptyhanded."
	}
	b.pushDescription(p.PlayerName + " returns from the Investigation" + suffix)
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.PreviousTeamID)
	b.pushTeamTag(p.NewTeamID)
	b.pushMetaInt("location", int64(PositionBullpen))
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaInt("receiveLocation", int64(p.NewLocation))
	b.pushMetaUUID("receiveTeamId", p.NewTeamID)
	b.pushMetaString("receiveTeamName", p.NewTeamName)
	b.pushMetaUUID("sendTeamId", p.PreviousTeamID)
	b.pushMetaString("sendTeamName", p.PreviousTeamName)
	return b.build(wire.PlayerMoved)
}

// moveMeta reads the send/receive metadata block shared by PlayerMoved
// records, returning the receive location.
func moveMeta(c *cursor, p *struct {
	PlayerName                    string
	PreviousTeamID, NewTeamID     uuid.UUID
	PreviousTeamName, NewTeamName string
}) (int64, error) {
	if _, err := c.metaUUID("playerId"); err != nil {
		return 0, err
	}
	var err error
	if p.PlayerName, err = c.metaString("playerName"); err != nil {
		return 0, err
	}
	receiveLocation, err := c.metaInt("receiveLocation")
	if err != nil {
		return 0, err
	}
	if p.NewTeamID, err = c.metaUUID("receiveTeamId"); err != nil {
		return 0, err
	}
	if p.NewTeamName, err = c.metaString("receiveTeamName"); err != nil {
		return 0, err
	}
	if p.PreviousTeamID, err = c.metaUUID("sendTeamId"); err != nil {
		return 0, err
	}
	if p.PreviousTeamName, err = c.metaString("sendTeamName"); err != nil {
		return 0, err
	}
	return receiveLocation, nil
}

// parsePlayerMoved routes the standalone PlayerMoved grammars.
func parsePlayerMoved(c *cursor) (Payload, error) {
	var shared struct {
		PlayerName                    string
		PreviousTeamID, NewTeamID     uuid.UUID
		PreviousTeamName, NewTeamName string
	}
	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" returns from the Investigation"); err == nil {
		p := &InvestigationReturn{PlayerName: name}
		p.Emptyhanded = c.scan.TryTag(" emptyhanded")
		if err := c.scan.Tag("."); err != nil {
			return nil, c.descErr(err)
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if p.PreviousTeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if p.NewTeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if _, err := c.metaInt("location"); err != nil {
			return nil, err
		}
		receiveLocation, err := moveMeta(c, &shared)
		if err != nil {
			return nil, err
		}
		if p.NewLocation, err = PositionFromValue(receiveLocation); err != nil {
			return nil, err
		}
		p.PlayerName = shared.PlayerName
		p.PreviousTeamName, p.NewTeamName = shared.PreviousTeamName, shared.NewTeamName
		return p, c.finish()
	}
	c.scan.Reset(pos)

	p := &PlayerRoamed{}
	name, err := c.scan.Terminated(roamVerb(c.record.Season))
	if err != nil {
		return nil, c.descErr(err)
	}
	p.PlayerName = name
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.PreviousTeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.NewTeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	location, err := c.metaInt("location")
	if err != nil {
		return nil, err
	}
	if p.Location, err = PositionFromValue(location); err != nil {
		return nil, err
	}
	if _, err := moveMeta(c, &shared); err != nil {
		return nil, err
	}
	p.PlayerName = shared.PlayerName
	p.PreviousTeamName, p.NewTeamName = shared.PreviousTeamName, shared.NewTeamName
	return p, c.finish()
}

// ExitHallOfFlame is a Roamer leaving the Hall.
type ExitHallOfFlame struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parseExitHallOfFlame(c *cursor) (Payload, error) {
	p := &ExitHallOfFlame{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" roamed out of the Hall of Flame."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *ExitHallOfFlame) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " roamed out of the Hall of Flame.")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.ExitHallOfFlame)
}

// PlayerCalledBackToHall is a released player returning to the Hall of
// Flame.
type PlayerCalledBackToHall struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parsePlayerCalledBackToHall(c *cursor) (Payload, error) {
	p := &PlayerCalledBackToHall{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" entered the Hall of Flame."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerCalledBackToHall) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " entered the Hall of Flame.")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.EnterHallOfFlame)
}

// PlayerReplacesReturned is a team cutting a player to make room for one
// coming back from elsewhere.
type PlayerReplacesReturned struct {
	TeamID             uuid.UUID `json:"teamId"`
	TeamNickname       string    `json:"teamNickname"`
	PromotedPlayerID   uuid.UUID `json:"promotedPlayerId"`
	PromotedPlayerName string    `json:"promotedPlayerName"`
	PromotedLocation   Position  `json:"promotedLocation"`
	RemovedPlayerID    uuid.UUID `json:"removedPlayerId"`
	RemovedPlayerName  string    `json:"removedPlayerName"`
	RemovedLocation    Position  `json:"removedLocation"`
}

func parsePlayerReplacesReturned(c *cursor) (Payload, error) {
	p := &PlayerReplacesReturned{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.TeamNickname, err = c.scan.Terminated(" cut a player and promoted another from the shadows."); err != nil {
		return nil, c.descErr(err)
	}
	if p.RemovedPlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.PromotedPlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	promoteLocation, err := c.metaInt("promoteLocation")
	if err != nil {
		return nil, err
	}
	if p.PromotedLocation, err = PositionFromValue(promoteLocation); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("promotePlayerId"); err != nil {
		return nil, err
	}
	if p.PromotedPlayerName, err = c.metaString("promotePlayerName"); err != nil {
		return nil, err
	}
	removeLocation, err := c.metaInt("removeLocation")
	if err != nil {
		return nil, err
	}
	if p.RemovedLocation, err = PositionFromValue(removeLocation); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("removePlayerId"); err != nil {
		return nil, err
	}
	if p.RemovedPlayerName, err = c.metaString("removePlayerName"); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("teamId"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("teamName"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerReplacesReturned) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " cut a player and promoted another from the shadows.")
	b.pushPlayerTag(p.RemovedPlayerID)
	b.pushPlayerTag(p.PromotedPlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaInt("promoteLocation", int64(p.PromotedLocation))
	b.pushMetaUUID("promotePlayerId", p.PromotedPlayerID)
	b.pushMetaString("promotePlayerName", p.PromotedPlayerName)
	b.pushMetaInt("removeLocation", int64(p.RemovedLocation))
	b.pushMetaUUID("removePlayerId", p.RemovedPlayerID)
	b.pushMetaString("removePlayerName", p.RemovedPlayerName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.PlayerReplacesReturned)
}

// ReplicaDusted is a replica fading away from its team at the end of a
// postseason. The DUST record follows as its own entry.
type ReplicaDusted struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
}

func parsePlayerRemovedFromTeam(c *cursor) (Payload, error) {
	p := &ReplicaDusted{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" faded away from the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamNickname, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := rosterMoveMeta(c); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *ReplicaDusted) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " faded away from the " + p.TeamNickname + ".")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaUUID("playerId", p.PlayerID)
	b.pushMetaString("playerName", p.PlayerName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.PlayerRemovedFromTeam)
}

// ReplicaDustAdded is the DUST mod landing on a fading replica.
type ReplicaDustAdded struct {
	TeamID     uuid.UUID `json:"teamId"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func (p *ReplicaDustAdded) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " faded to dust.")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaString("mod", "DUST")
	b.pushMetaInt("type", int64(ModPermanent))
	return b.build(wire.AddedMod)
}

// PlayerJoinedILB is a new player entering the league.
type PlayerJoinedILB struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func (p *PlayerJoinedILB) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " has joined the ILB.")
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaUUID("id", p.PlayerID)
	return b.build(wire.PlayerDivisionMove)
}

// PlayerPulledThroughRift is a breach player arriving through the Rift.
type PlayerPulledThroughRift struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func (p *PlayerPulledThroughRift) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " was pulled through the Rift.")
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaUUID("id", p.PlayerID)
	return b.build(wire.PlayerDivisionMove)
}

// parsePlayerDivisionMove routes the standalone PlayerDivisionMove
// grammars.
func parsePlayerDivisionMove(c *cursor) (Payload, error) {
	pos := c.scan.Pos()
	if name, err := c.scan.Terminated(" has joined the ILB."); err == nil {
		p := &PlayerJoinedILB{PlayerName: name}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if _, err := c.metaUUID("id"); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	name, err := c.scan.Terminated(" was pulled through the Rift.")
	if err != nil {
		return nil, c.descErr(err)
	}
	p := &PlayerPulledThroughRift{PlayerName: name}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("id"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

// TeamJoinedILB is a breach team entering the league.
type TeamJoinedILB struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	DivisionID   uuid.UUID `json:"divisionId"`
	DivisionName string    `json:"divisionName"`
}

func parseTeamDivisionMove(c *cursor) (Payload, error) {
	p := &TeamJoinedILB{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.TeamNickname, err = c.scan.Terminated(" have joined the ILB!\nThey will play in the "); err != nil {
		return nil, c.descErr(err)
	}
	if p.DivisionName, err = c.scan.Terminated(" division."); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.DivisionID, err = c.metaUUID("divisionId"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("divisionName"); err != nil {
		return nil, err
	}
	if _, err := c.metaUUID("teamId"); err != nil {
		return nil, err
	}
	if _, err := c.metaString("teamName"); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *TeamJoinedILB) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " have joined the ILB!\nThey will play in the " + p.DivisionName + " division.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaUUID("divisionId", p.DivisionID)
	b.pushMetaString("divisionName", p.DivisionName)
	b.pushMetaUUID("teamId", p.TeamID)
	b.pushMetaString("teamName", p.TeamNickname)
	return b.build(wire.TeamDivisionMove)
}

// PlayerPermittedToStay is a player declining to roam.
type PlayerPermittedToStay struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
}

func parsePlayerPermittedToStay(c *cursor) (Payload, error) {
	p := &PlayerPermittedToStay{}
	var err error
	if p.PlayerName, err = c.scan.Terminated(" has been permitted to stay."); err != nil {
		return nil, c.descErr(err)
	}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *PlayerPermittedToStay) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " has been permitted to stay.")
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.PlayerPermittedToStay)
}

// CrimeSceneEntry is a detective moving into a stadium's Crime Scene.
type CrimeSceneEntry struct {
	Game             GameRef   `json:"game"`
	PlayerID         uuid.UUID `json:"playerId"`
	PlayerName       string    `json:"playerName"`
	PreviousTeamID   uuid.UUID `json:"previousTeamId"`
	PreviousTeamName string    `json:"previousTeamName"`
	PreviousLocation Position  `json:"previousLocation"`
	NewTeamID        uuid.UUID `json:"newTeamId"`
	NewTeamName      string    `json:"newTeamName"`
	StadiumName      string    `json:"stadiumName"`

	MoveSubEvent SubEventRef      `json:"moveSubEvent"`
	Shadows      PlayerStatChange `json:"shadows"`
}

func parseEnterCrimeScene(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &CrimeSceneEntry{Game: game}
	if p.PlayerName, err = c.scan.Terminated(" enters the Crime Scene at "); err != nil {
		return nil, c.descErr(err)
	}
	if p.StadiumName, err = c.scan.Terminated(" to Investigate..."); err != nil {
		return nil, c.descErr(err)
	}

	child, err := c.nextChild(wire.PlayerMoved)
	if err != nil {
		return nil, err
	}
	if err := child.scan.Tag(p.PlayerName + " entered the Crime Scene at " + p.StadiumName + " to Investigate..."); err != nil {
		return nil, child.descErr(err)
	}
	p.MoveSubEvent = child.subEvent()
	if p.PlayerID, err = child.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.PreviousTeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if p.NewTeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	location, err := child.metaInt("location")
	if err != nil {
		return nil, err
	}
	if p.PreviousLocation, err = PositionFromValue(location); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("playerId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("playerName"); err != nil {
		return nil, err
	}
	if _, err := child.metaInt("receiveLocation"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("receiveTeamId"); err != nil {
		return nil, err
	}
	if p.NewTeamName, err = child.metaString("receiveTeamName"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("sendTeamId"); err != nil {
		return nil, err
	}
	if p.PreviousTeamName, err = child.metaString("sendTeamName"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}

	shadows, err := c.parseStatChangeChild(p.PlayerName+" entered the Shadows.", StatChangeAll)
	if err != nil {
		return nil, err
	}
	shadows.PlayerName = p.PlayerName
	p.Shadows = *shadows
	return p, c.finish()
}

func (p *CrimeSceneEntry) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.PlayerName + " enters the Crime Scene at " + p.StadiumName + " to Investigate...")
	b.pushChild(p.MoveSubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		child.pushDescription(p.PlayerName + " entered the Crime Scene at " + p.StadiumName + " to Investigate...")
		child.pushPlayerTag(p.PlayerID)
		child.pushTeamTag(p.PreviousTeamID)
		child.pushTeamTag(p.NewTeamID)
		child.pushMetaInt("location", int64(p.PreviousLocation))
		child.pushMetaUUID("playerId", p.PlayerID)
		child.pushMetaString("playerName", p.PlayerName)
		child.pushMetaInt("receiveLocation", int64(PositionBullpen))
		child.pushMetaUUID("receiveTeamId", p.NewTeamID)
		child.pushMetaString("receiveTeamName", p.NewTeamName)
		child.pushMetaUUID("sendTeamId", p.PreviousTeamID)
		child.pushMetaString("sendTeamName", p.PreviousTeamName)
		return child.build(wire.PlayerMoved)
	})
	shadows := p.Shadows
	b.pushStatChangeChild(&shadows, p.PlayerName+" entered the Shadows.", StatChangeAll)
	return b.build(wire.EnterCrimeScene)
}

// EarnedPostseasonSlot is a team locking in a postseason spot.
type EarnedPostseasonSlot struct {
	TeamID          uuid.UUID `json:"teamId"`
	TeamNickname    string    `json:"teamNickname"`
	DisplayedSeason int       `json:"displayedSeason"`
}

func parseEarnedPostseasonSlot(c *cursor) (Payload, error) {
	p := &EarnedPostseasonSlot{}
	if err := c.scan.Tag("The "); err != nil {
		return nil, c.descErr(err)
	}
	var err error
	if p.TeamNickname, err = c.scan.Terminated(" earned a spot in the Season "); err != nil {
		return nil, c.descErr(err)
	}
	if p.DisplayedSeason, err = c.scan.WholeNumber(); err != nil {
		return nil, c.descErr(err)
	}
	if err := c.scan.Tag(" Postseason."); err != nil {
		return nil, c.descErr(err)
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *EarnedPostseasonSlot) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription("The " + p.TeamNickname + " earned a spot in the Season " +
		strconv.Itoa(p.DisplayedSeason) + " Postseason.")
	b.pushTeamTag(p.TeamID)
	return b.build(wire.EarnedPostseasonSlot)
}

// InvestigationUpdate is the free-text progress note detectives leave.
type InvestigationUpdate struct {
	PlayerID uuid.UUID `json:"playerId"`
	Message  string    `json:"message"`
}

func parseInvestigationMessage(c *cursor) (Payload, error) {
	p := &InvestigationUpdate{Message: takeRest(c.scan)}
	var err error
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	return p, c.finish()
}

func (p *InvestigationUpdate) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategorySpecial)
	b.pushDescription(p.Message)
	b.pushPlayerTag(p.PlayerID)
	return b.build(wire.InvestigationMessage)
}

// Tidings is an upstream announcement with opaque metadata.
type Tidings struct {
	Message   string                     `json:"message"`
	PlayerIDs []uuid.UUID                `json:"playerIds"`
	Metadata  map[string]json.RawMessage `json:"metadata"`
}

func parseTidings(c *cursor) (Payload, error) {
	p := &Tidings{Message: takeRest(c.scan)}
	p.PlayerIDs = c.remainingPlayerIDs()
	p.Metadata = c.metaRest()
	return p, c.finish()
}

func (p *Tidings) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryOutcomes)
	b.pushDescription(p.Message)
	for _, id := range p.PlayerIDs {
		b.pushPlayerTag(id)
	}
	b.pushMetaAll(p.Metadata)
	return b.build(wire.Tidings)
}

// PlayerBoosted is a flat boost to every attribute, usually from a
// blessing.
type PlayerBoosted struct {
	TeamID       uuid.UUID `json:"teamId"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	RatingBefore float64   `json:"ratingBefore"`
	RatingAfter  float64   `json:"ratingAfter"`
}

func (p *PlayerBoosted) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " was boosted.")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaFloat("after", p.RatingAfter)
	b.pushMetaFloat("before", p.RatingBefore)
	b.pushMetaInt("type", int64(StatChangeAll))
	return b.build(wire.PlayerStatIncrease)
}

// PlayerEnteredShadows is the shadow-boost record that accompanies roster
// moves into the shadows.
type PlayerEnteredShadows struct {
	TeamID       uuid.UUID `json:"teamId"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	RatingBefore float64   `json:"ratingBefore"`
	RatingAfter  float64   `json:"ratingAfter"`
}

func (p *PlayerEnteredShadows) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " entered the Shadows.")
	b.pushTeamTag(p.TeamID)
	b.pushPlayerTag(p.PlayerID)
	b.pushMetaFloat("after", p.RatingAfter)
	b.pushMetaFloat("before", p.RatingBefore)
	b.pushMetaInt("type", int64(StatChangeAll))
	return b.build(wire.PlayerStatIncrease)
}

// PlayerPartied is the standalone party boost a Roamer's old team throws.
type PlayerPartied struct {
	TeamID       uuid.UUID `json:"teamId"`
	PlayerID     uuid.UUID `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	RatingBefore float64   `json:"ratingBefore"`
	RatingAfter  float64   `json:"ratingAfter"`
}

func (p *PlayerPartied) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription(p.PlayerName + " is Partying!")
	b.pushPlayerTag(p.PlayerID)
	b.pushTeamTag(p.TeamID)
	b.pushMetaFloat("before", p.RatingBefore)
	b.pushMetaFloat("after", p.RatingAfter)
	b.pushMetaInt("type", int64(StatChangeAll))
	return b.build(wire.PlayerStatIncrease)
}

// BottomDwellers is a last-place team's full roster boost.
type BottomDwellers struct {
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`
	RatingBefore float64   `json:"ratingBefore"`
	RatingAfter  float64   `json:"ratingAfter"`
}

func (p *BottomDwellers) buildInto(b *builder) wire.Record {
	b.setCategory(wire.CategoryChanges)
	b.pushDescription("The " + p.TeamNickname + " are Bottom Dwellers.")
	b.pushTeamTag(p.TeamID)
	b.pushMetaFloat("before", p.RatingBefore)
	b.pushMetaFloat("after", p.RatingAfter)
	b.pushMetaInt("type", 5)
	return b.build(wire.PlayerStatIncrease)
}

// Fax is the Fax Machine replacing a shelled-out pitcher after ten runs.
type Fax struct {
	Game         GameRef   `json:"game"`
	TeamID       uuid.UUID `json:"teamId"`
	TeamNickname string    `json:"teamNickname"`

	ExitingPitcherID    uuid.UUID `json:"exitingPitcherId"`
	ExitingPitcherName  string    `json:"exitingPitcherName"`
	EnteringPitcherID   uuid.UUID `json:"enteringPitcherId"`
	EnteringPitcherName string    `json:"enteringPitcherName"`

	ShadowsLocation Position    `json:"shadowsLocation"`
	SwapSubEvent    SubEventRef `json:"swapSubEvent"`

	Shadows PlayerStatChange `json:"shadows"`
}

func parseFaxMachine(c *cursor) (Payload, error) {
	game, err := c.parseGame()
	if err != nil {
		return nil, err
	}
	p := &Fax{Game: game}
	if err := c.scan.Tag("10 Runs collected.\nIncoming Shadow Fax...\n"); err != nil {
		return nil, c.descErr(err)
	}
	if p.ExitingPitcherName, err = c.scan.Terminated(" is replaced by "); err != nil {
		return nil, c.descErr(err)
	}
	if p.EnteringPitcherName, err = c.scan.UntilPeriodEOF(); err != nil {
		return nil, c.descErr(err)
	}
	if p.ExitingPitcherID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.EnteringPitcherID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}

	child, err := c.nextChild(wire.PlayerSwap)
	if err != nil {
		return nil, err
	}
	// The swap text changed in season 18.
	if c.record.Season < 17 {
		if err := child.scan.Tag("The "); err != nil {
			return nil, child.descErr(err)
		}
		if _, err := child.scan.Terminated(" made a roster move."); err != nil {
			return nil, child.descErr(err)
		}
	} else if err := child.scan.Tag(p.ExitingPitcherName + " was replaced by an incoming Fax."); err != nil {
		return nil, child.descErr(err)
	}
	p.SwapSubEvent = child.subEvent()
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if _, err := child.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = child.nextTeamID(); err != nil {
		return nil, err
	}
	if _, err := child.metaInt("aLocation"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("aPlayerId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("aPlayerName"); err != nil {
		return nil, err
	}
	shadowsLocation, err := child.metaInt("bLocation")
	if err != nil {
		return nil, err
	}
	if p.ShadowsLocation, err = PositionFromValue(shadowsLocation); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("bPlayerId"); err != nil {
		return nil, err
	}
	if _, err := child.metaString("bPlayerName"); err != nil {
		return nil, err
	}
	if _, err := child.metaUUID("teamId"); err != nil {
		return nil, err
	}
	if p.TeamNickname, err = child.metaString("teamName"); err != nil {
		return nil, err
	}
	if err := c.finishChild(child); err != nil {
		return nil, err
	}

	shadows, err := c.parseStatChangeChild(p.ExitingPitcherName+" entered the Shadows.", StatChangeAll)
	if err != nil {
		return nil, err
	}
	shadows.PlayerName = p.ExitingPitcherName
	p.Shadows = *shadows
	return p, c.finish()
}

func (p *Fax) buildInto(b *builder) wire.Record {
	b.setGame(p.Game)
	b.setCategory(wire.CategorySpecial)
	b.pushDescription("10 Runs collected.")
	b.pushDescription("Incoming Shadow Fax...")
	b.pushDescription(p.ExitingPitcherName + " is replaced by " + p.EnteringPitcherName + ".")
	b.pushPlayerTag(p.ExitingPitcherID)
	b.pushPlayerTag(p.EnteringPitcherID)
	b.pushChild(p.SwapSubEvent, func(child *builder) wire.Record {
		child.setCategory(wire.CategoryChanges)
		if b.rec.Season < 17 {
			child.pushDescription("The " + p.TeamNickname + " made a roster move.")
		} else {
			child.pushDescription(p.ExitingPitcherName + " was replaced by an incoming Fax.")
		}
		child.pushPlayerTag(p.ExitingPitcherID)
		child.pushPlayerTag(p.EnteringPitcherID)
		child.pushTeamTag(p.TeamID)
		child.pushMetaInt("aLocation", int64(PositionRotation))
		child.pushMetaUUID("aPlayerId", p.ExitingPitcherID)
		child.pushMetaString("aPlayerName", p.ExitingPitcherName)
		child.pushMetaInt("bLocation", int64(p.ShadowsLocation))
		child.pushMetaUUID("bPlayerId", p.EnteringPitcherID)
		child.pushMetaString("bPlayerName", p.EnteringPitcherName)
		child.pushMetaUUID("teamId", p.TeamID)
		child.pushMetaString("teamName", p.TeamNickname)
		return child.build(wire.PlayerSwap)
	})
	shadows := p.Shadows
	b.pushStatChangeChild(&shadows, p.ExitingPitcherName+" entered the Shadows.", StatChangeAll)
	return b.build(wire.FaxMachine)
}

// statAdjustmentMeta reads the before/after pair and checks the category
// value.
func statAdjustmentMeta(c *cursor, category int64) (before, after float64, err error) {
	if after, err = c.metaFloat("after"); err != nil {
		return 0, 0, err
	}
	if before, err = c.metaFloat("before"); err != nil {
		return 0, 0, err
	}
	typ, err := c.metaInt("type")
	if err != nil {
		return 0, 0, err
	}
	if typ != category {
		return 0, 0, c.metaTypeError("type", "stat category "+strconv.FormatInt(category, 10), nil)
	}
	return before, after, nil
}

// parsePlayerStatIncrease routes the standalone stat-boost grammars.
func parsePlayerStatIncrease(c *cursor) (Payload, error) {
	pos := c.scan.Pos()
	if c.scan.TryTag("The ") {
		if team, err := c.scan.Terminated(" are Bottom Dwellers."); err == nil && isKnownTeamNickname(team) {
			p := &BottomDwellers{TeamNickname: team}
			if p.TeamID, err = c.nextTeamID(); err != nil {
				return nil, err
			}
			if p.RatingBefore, p.RatingAfter, err = statAdjustmentMeta(c, 5); err != nil {
				return nil, err
			}
			return p, c.finish()
		}
		c.scan.Reset(pos)
	}
	if name, err := c.scan.Terminated(" was boosted."); err == nil {
		p := &PlayerBoosted{PlayerName: name}
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if p.RatingBefore, p.RatingAfter, err = statAdjustmentMeta(c, int64(StatChangeAll)); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	if name, err := c.scan.Terminated(" entered the Shadows."); err == nil {
		p := &PlayerEnteredShadows{PlayerName: name}
		if p.TeamID, err = c.nextTeamID(); err != nil {
			return nil, err
		}
		if p.PlayerID, err = c.nextPlayerID(); err != nil {
			return nil, err
		}
		if p.RatingBefore, p.RatingAfter, err = statAdjustmentMeta(c, int64(StatChangeAll)); err != nil {
			return nil, err
		}
		return p, c.finish()
	}
	c.scan.Reset(pos)
	name, err := c.scan.Terminated(" is Partying!")
	if err != nil {
		return nil, c.descErr(err)
	}
	p := &PlayerPartied{PlayerName: name}
	if p.PlayerID, err = c.nextPlayerID(); err != nil {
		return nil, err
	}
	if p.TeamID, err = c.nextTeamID(); err != nil {
		return nil, err
	}
	if p.RatingBefore, p.RatingAfter, err = statAdjustmentMeta(c, int64(StatChangeAll)); err != nil {
		return nil, err
	}
	return p, c.finish()
}
