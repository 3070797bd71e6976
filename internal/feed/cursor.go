package feed

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/textparse"
	"github.com/calliehart/blasefeed/internal/wire"
)

// cursor tracks consumption of one record during a parse. The description
// scanner, the three tag lists, the children and the metadata keys are all
// drawn in grammar order, and Finish fails unless everything was used.
type cursor struct {
	record *wire.Record
	scan   *textparse.Scanner

	playerIdx int
	teamIdx   int
	gameIdx   int
	childIdx  int

	metaRead map[string]bool
}

func newCursor(record *wire.Record) *cursor {
	return &cursor{
		record:   record,
		scan:     textparse.NewScanner(record.Description),
		metaRead: map[string]bool{},
	}
}

// newChildCursor wraps a child record drawn by nextChild. Children carry
// the parent's game tags verbatim and no child grammar reads them, so
// they start consumed and are exempt from the leftover check.
func newChildCursor(record *wire.Record) *cursor {
	c := newCursor(record)
	c.gameIdx = len(tags(record.GameTags))
	return c
}

func (c *cursor) kind() wire.EventType {
	return c.record.Type
}

func (c *cursor) tagMeta(extra map[string]string) map[string]string {
	meta := map[string]string{"eventType": c.record.Type.String()}
	for k, v := range extra {
		meta[k] = v
	}
	return meta
}

func tags(list *[]uuid.UUID) []uuid.UUID {
	if list == nil {
		return nil
	}
	return *list
}

func (c *cursor) nextTag(list *[]uuid.UUID, idx *int, tagType string) (uuid.UUID, error) {
	all := tags(list)
	if *idx >= len(all) {
		return uuid.Nil, errors.WithMetadata(errors.CodeNotEnoughTags, "ran out of "+tagType+" tags",
			c.tagMeta(map[string]string{"tagType": tagType}))
	}
	id := all[*idx]
	*idx++
	return id, nil
}

// nextPlayerID consumes the next player tag.
func (c *cursor) nextPlayerID() (uuid.UUID, error) {
	return c.nextTag(c.record.PlayerTags, &c.playerIdx, "player")
}

// nextTeamID consumes the next team tag.
func (c *cursor) nextTeamID() (uuid.UUID, error) {
	return c.nextTag(c.record.TeamTags, &c.teamIdx, "team")
}

// nextGameID consumes the next game tag.
func (c *cursor) nextGameID() (uuid.UUID, error) {
	return c.nextTag(c.record.GameTags, &c.gameIdx, "game")
}

// peekPlayerID returns the next player tag without consuming it.
func (c *cursor) peekPlayerID() (uuid.UUID, error) {
	all := tags(c.record.PlayerTags)
	if c.playerIdx >= len(all) {
		return uuid.Nil, errors.WithMetadata(errors.CodeNotEnoughTags, "ran out of player tags",
			c.tagMeta(map[string]string{"tagType": "player"}))
	}
	return all[c.playerIdx], nil
}

// remainingPlayerIDs consumes and returns all unread player tags.
func (c *cursor) remainingPlayerIDs() []uuid.UUID {
	all := tags(c.record.PlayerTags)
	rest := all[c.playerIdx:]
	c.playerIdx = len(all)
	return append([]uuid.UUID(nil), rest...)
}

// remainingTeamIDs consumes and returns all unread team tags.
func (c *cursor) remainingTeamIDs() []uuid.UUID {
	all := tags(c.record.TeamTags)
	rest := all[c.teamIdx:]
	c.teamIdx = len(all)
	return append([]uuid.UUID(nil), rest...)
}

// hasPlayerTags reports whether unread player tags remain.
func (c *cursor) hasPlayerTags() bool {
	return c.playerIdx < len(tags(c.record.PlayerTags))
}

// hasChildren reports whether unread children remain.
func (c *cursor) hasChildren() bool {
	return c.childIdx < len(c.record.Metadata.Children)
}

// peekChildType returns the kind of the next child without consuming it.
func (c *cursor) peekChildType() (wire.EventType, bool) {
	if !c.hasChildren() {
		return 0, false
	}
	return c.record.Metadata.Children[c.childIdx].Type, true
}

// nextChild consumes the next child record, requiring one of the expected
// kinds when any are given. The child gets its own cursor so its own
// accounting is enforced by finishChild.
func (c *cursor) nextChild(expected ...wire.EventType) (*cursor, error) {
	if !c.hasChildren() {
		return nil, errors.WithMetadata(errors.CodeNotEnoughChildren, "ran out of children",
			c.tagMeta(nil))
	}
	child := &c.record.Metadata.Children[c.childIdx]
	if len(expected) > 0 {
		ok := false
		for _, t := range expected {
			if child.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return nil, errors.WithMetadata(errors.CodeUnexpectedChildType, "unexpected child type",
				c.tagMeta(map[string]string{"childType": child.Type.String()}))
		}
	}
	c.childIdx++
	return newChildCursor(child), nil
}

// subEvent captures the child fields that are not inherited from the
// parent.
func (c *cursor) subEvent() SubEventRef {
	return SubEventRef{
		ID:      c.record.ID,
		Created: c.record.Created,
		Nuts:    c.record.Nuts,
	}
}

func (c *cursor) metaRaw(key string) (json.RawMessage, error) {
	raw, ok := c.record.Metadata.Other[key]
	if !ok {
		return nil, errors.WithMetadata(errors.CodeMissingMetadata, "missing metadata key",
			c.tagMeta(map[string]string{"key": key}))
	}
	c.metaRead[key] = true
	return raw, nil
}

// metaRest consumes every metadata key not yet read. Election results and
// narrative events carry upstream-defined metadata that round-trips as an
// opaque block.
func (c *cursor) metaRest() map[string]json.RawMessage {
	rest := make(map[string]json.RawMessage, len(c.record.Metadata.Other))
	for key, raw := range c.record.Metadata.Other {
		if c.metaRead[key] {
			continue
		}
		c.metaRead[key] = true
		rest[key] = raw
	}
	return rest
}

// hasMeta reports whether the key is present, without consuming it.
func (c *cursor) hasMeta(key string) bool {
	_, ok := c.record.Metadata.Other[key]
	return ok
}

func (c *cursor) metaTypeError(key string, want string, err error) error {
	return errors.WrapWithMetadata(errors.CodeMetadataTypeError, "metadata key is not a "+want,
		c.tagMeta(map[string]string{"key": key}), err)
}

// metaString reads a string metadata value.
func (c *cursor) metaString(key string) (string, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", c.metaTypeError(key, "string", err)
	}
	return s, nil
}

// metaInt reads an integer metadata value.
func (c *cursor) metaInt(key string) (int64, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, c.metaTypeError(key, "integer", err)
	}
	return n, nil
}

// metaFloat reads a numeric metadata value as a float.
func (c *cursor) metaFloat(key string) (float64, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, c.metaTypeError(key, "number", err)
	}
	return f, nil
}

// metaBool reads a boolean metadata value.
func (c *cursor) metaBool(key string) (bool, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return false, err
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, c.metaTypeError(key, "boolean", err)
	}
	return b, nil
}

// metaUUID reads a uuid metadata value.
func (c *cursor) metaUUID(key string) (uuid.UUID, error) {
	s, err := c.metaString(key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, c.metaTypeError(key, "uuid", err)
	}
	return id, nil
}

// metaStrings reads a list-of-strings metadata value.
func (c *cursor) metaStrings(key string) ([]string, error) {
	raw, err := c.metaRaw(key)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, c.metaTypeError(key, "string list", err)
	}
	return list, nil
}

// play reads the record's play number from metadata.
func (c *cursor) play() (int64, error) {
	if c.record.Metadata.Play == nil {
		return 0, errors.WithMetadata(errors.CodeMissingMetadata, "missing metadata key",
			c.tagMeta(map[string]string{"key": "play"}))
	}
	return *c.record.Metadata.Play, nil
}

// finish fails unless the description, all tags, all children and all
// metadata keys have been consumed.
func (c *cursor) finish() error {
	if err := c.scan.EOF(); err != nil {
		return errors.WrapWithMetadata(errors.CodeDescriptionNotFullyParsed, "description not fully parsed",
			c.tagMeta(map[string]string{"rest": c.scan.Rest()}), err)
	}
	for _, leftover := range []struct {
		tagType string
		idx     int
		list    *[]uuid.UUID
	}{
		{"player", c.playerIdx, c.record.PlayerTags},
		{"team", c.teamIdx, c.record.TeamTags},
		{"game", c.gameIdx, c.record.GameTags},
	} {
		if n := len(tags(leftover.list)) - leftover.idx; n > 0 {
			return errors.WithMetadata(errors.CodeTooManyTags, "unread "+leftover.tagType+" tags",
				c.tagMeta(map[string]string{"tagType": leftover.tagType, "count": fmt.Sprint(n)}))
		}
	}
	if n := len(c.record.Metadata.Children) - c.childIdx; n > 0 {
		return errors.WithMetadata(errors.CodeTooManyChildren, "unread children",
			c.tagMeta(map[string]string{"count": fmt.Sprint(n)}))
	}
	for key := range c.record.Metadata.Other {
		if !c.metaRead[key] {
			return errors.WithMetadata(errors.CodeUnreadMetadata, "unread metadata key",
				c.tagMeta(map[string]string{"key": key}))
		}
	}
	return nil
}

// finishChild runs finish on a child cursor produced by nextChild.
func (c *cursor) finishChild(child *cursor) error {
	return child.finish()
}
