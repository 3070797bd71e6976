package feed

import (
	"encoding/json"
	"testing"

	"github.com/calliehart/blasefeed/internal/errors"
	"github.com/calliehart/blasefeed/internal/wire"
)

func decodeRecord(t *testing.T, raw string) wire.Record {
	t.Helper()
	rec, err := wire.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return rec
}

// roundTrip parses raw, rebuilds it, and requires the rebuilt record to be
// byte-identical to the canonicalized input.
func roundTrip(t *testing.T, raw string) Occurrence {
	t.Helper()
	occ, err := Parse(decodeRecord(t, raw))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	canonical := decodeRecord(t, raw)
	wire.SortChildren(&canonical)
	want, err := json.Marshal(canonical)
	if err != nil {
		t.Fatalf("Marshal(canonical) error = %v", err)
	}
	got, err := json.Marshal(Build(occ))
	if err != nil {
		t.Fatalf("Marshal(rebuilt) error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("round trip mismatch\n got: %s\nwant: %s", got, want)
	}
	return occ
}

func TestParse_BallCount(t *testing.T) {
	raw := `{
		"id": "79b73ef9-6e5c-469d-9da8-e7b0861ba93e",
		"created": "2021-04-14T16:20:06.825Z",
		"type": 14,
		"category": 0,
		"description": "Ball. 2-1",
		"playerTags": [],
		"gameTags": ["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],
		"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
		"metadata": {"play": 42, "subPlay": -1},
		"sim": "thisidisstaticyo",
		"day": 64,
		"season": 14,
		"tournament": -1,
		"phase": 6,
		"nuts": 0
	}`
	occ := roundTrip(t, raw)

	ball, ok := occ.Payload.(*BallEvent)
	if !ok {
		t.Fatalf("Payload = %T, want *BallEvent", occ.Payload)
	}
	if ball.Balls != 2 || ball.Strikes != 1 {
		t.Errorf("count = %d-%d, want 2-1", ball.Balls, ball.Strikes)
	}
}

func TestParse_StrikeoutStoppedInhabiting(t *testing.T) {
	raw := `{
		"id": "e3a3cf24-7a56-4d4f-8d4e-84cb1ae0a8e5",
		"created": "2021-04-14T17:25:12.402Z",
		"type": 6,
		"category": 0,
		"description": "Workman Gloom strikes out swinging.",
		"playerTags": [],
		"gameTags": ["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],
		"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
		"metadata": {
			"play": 111,
			"subPlay": -1,
			"children": [{
				"id": "7c4b3c86-2d94-4f29-9a61-0d5f0c9d6a26",
				"created": "2021-04-14T17:25:12.412Z",
				"type": 107,
				"category": 1,
				"description": "Sutton Dreamy stopped Inhabiting.",
				"playerTags": ["e6502bc7-5b76-4939-9fb8-132057390b30"],
				"gameTags": ["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],
				"teamTags": ["c6c01051-cdd4-47d6-8a98-bb5b754f937f"],
				"metadata": {
					"play": 111,
					"subPlay": 0,
					"parent": "e3a3cf24-7a56-4d4f-8d4e-84cb1ae0a8e5",
					"mod": "INHABITING",
					"type": 0
				},
				"sim": "thisidisstaticyo",
				"day": 64,
				"season": 14,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}]
		},
		"sim": "thisidisstaticyo",
		"day": 64,
		"season": 14,
		"tournament": -1,
		"phase": 6,
		"nuts": 0
	}`
	occ := roundTrip(t, raw)

	so, ok := occ.Payload.(*StrikeoutEvent)
	if !ok {
		t.Fatalf("Payload = %T, want *StrikeoutEvent", occ.Payload)
	}
	if so.BatterName != "Workman Gloom" {
		t.Errorf("BatterName = %q, want %q", so.BatterName, "Workman Gloom")
	}
	if so.Kind != StrikeoutSwinging {
		t.Errorf("Kind = %v, want swinging", so.Kind)
	}
	if so.StoppedInhabiting == nil {
		t.Fatal("StoppedInhabiting = nil, want the departing ghost")
	}
	if got := so.StoppedInhabiting.InhabitingPlayerName; got != "Sutton Dreamy" {
		t.Errorf("InhabitingPlayerName = %q, want %q", got, "Sutton Dreamy")
	}
}

func TestParse_HomeRunMagmaticFreeRefills(t *testing.T) {
	// The refill children are listed out of sub-play order on purpose:
	// canonicalization must put them back before comparing.
	raw := `{
		"id": "a21c4b66-8a0b-4df5-b3fb-9b0fb7f24026",
		"created": "2021-04-16T02:07:39.218Z",
		"type": 9,
		"category": 2,
		"description": "Valentine Games is Magmatic!\nValentine Games hits a solo home run!\nJaxon Buckley used their Free Refill.\nJaxon Buckley Refills the In!\nSixpack Dogwalker used their Free Refill.\nSixpack Dogwalker Refills the In!",
		"playerTags": ["0295c6c2-b33c-47dd-affa-349da7fa1760"],
		"gameTags": ["56a3f276-e1cc-4e96-9e71-0b97aeeb17c5"],
		"teamTags": ["105bc3ff-1320-4e37-8ef0-8d595cb95dd0", "8d87c468-699a-47a8-b40d-cfb73a5660ad"],
		"metadata": {
			"play": 236,
			"subPlay": -1,
			"children": [{
				"id": "c3a3e452-7a99-44b1-8a88-3d709e3e5c2a",
				"created": "2021-04-16T02:07:39.228Z",
				"type": 107,
				"category": 1,
				"description": "Valentine Games hit a Magmatic home run!",
				"playerTags": ["0295c6c2-b33c-47dd-affa-349da7fa1760"],
				"gameTags": ["56a3f276-e1cc-4e96-9e71-0b97aeeb17c5"],
				"teamTags": ["105bc3ff-1320-4e37-8ef0-8d595cb95dd0"],
				"metadata": {
					"play": 236,
					"subPlay": 0,
					"parent": "a21c4b66-8a0b-4df5-b3fb-9b0fb7f24026",
					"mod": "MAGMATIC",
					"type": 0
				},
				"sim": "thisidisstaticyo",
				"day": 71,
				"season": 14,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}, {
				"id": "8c36a48e-7b60-4b6a-a763-7c4ed4a3ee4a",
				"created": "2021-04-16T02:07:39.248Z",
				"type": 107,
				"category": 1,
				"description": "Sixpack Dogwalker used their Free Refill.",
				"playerTags": ["0bb35615-63f2-4492-80ec-b6b322dc5450"],
				"gameTags": ["56a3f276-e1cc-4e96-9e71-0b97aeeb17c5"],
				"teamTags": ["105bc3ff-1320-4e37-8ef0-8d595cb95dd0"],
				"metadata": {
					"play": 236,
					"subPlay": 2,
					"parent": "a21c4b66-8a0b-4df5-b3fb-9b0fb7f24026",
					"mod": "COFFEE_RALLY",
					"type": 0
				},
				"sim": "thisidisstaticyo",
				"day": 71,
				"season": 14,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}, {
				"id": "4a190cbc-8a9c-4c06-9e42-0b4cd29a2d3d",
				"created": "2021-04-16T02:07:39.238Z",
				"type": 107,
				"category": 1,
				"description": "Jaxon Buckley used their Free Refill.",
				"playerTags": ["c0177f76-67fc-4316-b650-894159dede45"],
				"gameTags": ["56a3f276-e1cc-4e96-9e71-0b97aeeb17c5"],
				"teamTags": ["105bc3ff-1320-4e37-8ef0-8d595cb95dd0"],
				"metadata": {
					"play": 236,
					"subPlay": 1,
					"parent": "a21c4b66-8a0b-4df5-b3fb-9b0fb7f24026",
					"mod": "COFFEE_RALLY",
					"type": 0
				},
				"sim": "thisidisstaticyo",
				"day": 71,
				"season": 14,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}]
		},
		"sim": "thisidisstaticyo",
		"day": 71,
		"season": 14,
		"tournament": -1,
		"phase": 6,
		"nuts": 0
	}`
	occ := roundTrip(t, raw)

	hr, ok := occ.Payload.(*HomeRunEvent)
	if !ok {
		t.Fatalf("Payload = %T, want *HomeRunEvent", occ.Payload)
	}
	if hr.Magmatic == nil {
		t.Error("Magmatic = nil, want the spent mod removal")
	}
	if len(hr.FreeRefills) != 2 {
		t.Fatalf("FreeRefills = %d, want 2", len(hr.FreeRefills))
	}
	if hr.FreeRefills[0].PlayerName != "Jaxon Buckley" || hr.FreeRefills[1].PlayerName != "Sixpack Dogwalker" {
		t.Errorf("FreeRefills order = %q, %q, want Jaxon Buckley then Sixpack Dogwalker",
			hr.FreeRefills[0].PlayerName, hr.FreeRefills[1].PlayerName)
	}
}

func TestParse_UnimplementedKind(t *testing.T) {
	tests := []struct {
		name string
		kind int
	}{
		{"game over", 216},
		{"unknown discriminant", 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decodeRecord(t, `{
				"id": "2e6f4a8f-ef5f-4f4f-9931-6e8dd1a41b8c",
				"created": "2021-07-01T04:05:06.700Z",
				"playerTags": [], "gameTags": [], "teamTags": [],
				"metadata": {}
			}`)
			rec.Type = wire.EventType(tt.kind)

			_, err := Parse(rec)
			if err == nil {
				t.Fatal("Parse() error = nil, want not implemented")
			}
			if code := errors.CodeOf(err); code != errors.CodeNotImplemented {
				t.Errorf("CodeOf() = %v, want CodeNotImplemented", code)
			}
			domain, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if domain.Metadata["eventType"] == "" {
				t.Error("error metadata does not name the event type")
			}
		})
	}
}

func TestParse_MissingMetadataKey(t *testing.T) {
	// A Let's Go record without its weather key.
	raw := `{
		"id": "4f4b7c3a-20cc-4e14-9e82-6f9e06d392a2",
		"created": "2021-04-14T16:00:00.000Z",
		"type": 0,
		"category": 0,
		"description": "Let's Go!",
		"playerTags": [],
		"gameTags": ["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],
		"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
		"metadata": {
			"play": 0,
			"subPlay": -1,
			"away": "36569151-a2fb-43c1-9df7-2df512424c82",
			"home": "b72f3061-f573-40d7-832a-5ad475bd7909"
		},
		"sim": "thisidisstaticyo",
		"day": 64,
		"season": 14,
		"tournament": -1,
		"phase": 6,
		"nuts": 0
	}`
	_, err := Parse(decodeRecord(t, raw))
	if err == nil {
		t.Fatal("Parse() error = nil, want missing metadata")
	}
	if code := errors.CodeOf(err); code != errors.CodeMissingMetadata {
		t.Errorf("CodeOf() = %v, want CodeMissingMetadata", code)
	}
	domain, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if got := domain.Metadata["key"]; got != "weather" {
		t.Errorf("error metadata key = %q, want %q", got, "weather")
	}
	if domain.Metadata["eventType"] == "" {
		t.Error("error metadata does not name the event type")
	}
}

func TestParse_RoundTrips(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "walk",
			raw: `{
				"id": "1dc9e570-7a06-4bb4-a2fe-a71cd2f42c4b",
				"created": "2021-04-14T19:04:11.520Z",
				"type": 5,
				"category": 0,
				"description": "Goodwin Morin draws a walk.",
				"playerTags": ["864b3be8-e836-426e-ae56-20345b41d03d"],
				"gameTags": ["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],
				"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
				"metadata": {"play": 180, "subPlay": -1},
				"sim": "thisidisstaticyo",
				"day": 64,
				"season": 14,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}`,
		},
		{
			name: "player hatched",
			raw: `{
				"id": "f8a7c1f1-29cc-4cb9-b9ad-0e0b2b7e2637",
				"created": "2021-04-12T09:10:00.000Z",
				"type": 137,
				"category": 1,
				"description": "Nerd Pacheco has been hatched from the field of eggs.",
				"playerTags": ["7b1f6b27-dde8-4a59-aae3-481c41a4c2c4"],
				"gameTags": [],
				"teamTags": [],
				"metadata": {"id": "7b1f6b27-dde8-4a59-aae3-481c41a4c2c4"},
				"sim": "thisidisstaticyo",
				"day": 40,
				"season": 13,
				"tournament": -1,
				"phase": 13,
				"nuts": 0
			}`,
		},
		{
			name: "redacted",
			raw: `{
				"id": "12a79aa6-4d07-4c27-9e4e-bd8f89a0d4e1",
				"created": "2021-06-15T22:01:15.102Z",
				"type": -1,
				"category": -1,
				"description": "|3||||||2|||||1||||",
				"playerTags": null,
				"gameTags": null,
				"teamTags": null,
				"metadata": {"redacted": true, "scales": 3},
				"sim": "thisidisstaticyo",
				"day": 92,
				"season": 18,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.raw)
		})
	}
}
