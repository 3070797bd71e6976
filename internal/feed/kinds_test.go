package feed

import (
	"strings"
	"testing"

	"github.com/calliehart/blasefeed/internal/errors"
)

// elsewhereShortReturn is a minimal child-bearing game record. The child
// repeats the parent's game tag, as every builder-emitted child does.
const elsewhereShortReturn = `{
	"id": "e53e4f14-7c1f-4a86-9c31-0d7e2a3e41b6",
	"created": "2021-06-30T13:20:09.441Z",
	"type": 84,
	"category": 0,
	"description": "Sutton Picklestein returned from Elsewhere.",
	"playerTags": [],
	"gameTags": ["c7f2e7b9-93e0-4a7e-9ae5-6d0e7a1c2b3d"],
	"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
	"metadata": {
		"play": 12,
		"subPlay": -1,
		"children": [{
			"id": "9c2e12a4-4b61-4f9e-8f2b-20b1a2d3c4e5",
			"created": "2021-06-30T13:20:09.451Z",
			"type": 107,
			"category": 1,
			"description": "Sutton Picklestein returned from Elsewhere.",
			"playerTags": ["add7f1f9-e0b7-4a2f-9c31-5a1e2d3c4b6a"],
			"gameTags": ["c7f2e7b9-93e0-4a7e-9ae5-6d0e7a1c2b3d"],
			"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82"],
			"metadata": {
				"play": 12,
				"subPlay": 0,
				"parent": "e53e4f14-7c1f-4a86-9c31-0d7e2a3e41b6",
				"mod": "ELSEWHERE",
				"type": 0
			},
			"sim": "thisidisstaticyo",
			"day": 80,
			"season": 19,
			"tournament": -1,
			"phase": 6,
			"nuts": 0
		}]
	},
	"sim": "thisidisstaticyo",
	"day": 80,
	"season": 19,
	"tournament": -1,
	"phase": 6,
	"nuts": 3
}`

func TestParse_ChildGameTagAccounting(t *testing.T) {
	t.Run("inherited game tags are exempt", func(t *testing.T) {
		occ := roundTrip(t, elsewhereShortReturn)
		ret, ok := occ.Payload.(*ReturnFromElsewhere)
		if !ok {
			t.Fatalf("Payload = %T, want *ReturnFromElsewhere", occ.Payload)
		}
		if len(ret.Returns) != 1 || ret.Returns[0].Return.Kind != ElsewhereReturnShort {
			t.Errorf("Returns = %+v, want one short return", ret.Returns)
		}
	})

	t.Run("other leftover child tags still fail", func(t *testing.T) {
		raw := strings.Replace(elsewhereShortReturn,
			`"playerTags": ["add7f1f9-e0b7-4a2f-9c31-5a1e2d3c4b6a"]`,
			`"playerTags": ["add7f1f9-e0b7-4a2f-9c31-5a1e2d3c4b6a", "bd47f1f9-e0b7-4a2f-9c31-5a1e2d3c4b6a"]`, 1)
		_, err := Parse(decodeRecord(t, raw))
		if err == nil {
			t.Fatal("Parse() error = nil, want a leftover tag failure")
		}
		if code := errors.CodeOf(err); code != errors.CodeTooManyTags {
			t.Errorf("CodeOf() = %v, want CodeTooManyTags (err: %v)", code, err)
		}
	})
}

func TestParse_WeatherRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, occ Occurrence)
	}{
		{
			name: "incineration",
			raw: `{
				"id": "d0e3b8a9-4b1e-4f9e-8c31-9a4d5e6f7a81",
				"created": "2021-04-20T21:15:32.541Z",
				"type": 54,
				"category": 2,
				"description": "Rogue Umpire incinerated Lenjamin Zhuge!\nThey're replaced by Fenry Marlow.",
				"playerTags": ["17397256-c28c-4cad-85f2-a21768c66e67", "378c07b0-5645-44b5-869f-497d144c7b35"],
				"gameTags": ["3c1f5f30-7a22-4a52-a1e7-f1c2ab9e7a10"],
				"teamTags": ["b63be8c2-576a-456a-9ecd-0c0d3aca1b95", "105bc3ff-1320-4e37-8ef0-8d595cb95dd0"],
				"metadata": {
					"play": 17,
					"subPlay": -1,
					"children": [{
						"id": "6f21c8a1-0d3e-4a9b-8e31-1a2b3c4d5e6f",
						"created": "2021-04-20T21:15:32.551Z",
						"type": 54,
						"category": 1,
						"description": "Rogue Umpire incinerated Lenjamin Zhuge!",
						"playerTags": ["17397256-c28c-4cad-85f2-a21768c66e67"],
						"gameTags": ["3c1f5f30-7a22-4a52-a1e7-f1c2ab9e7a10"],
						"teamTags": ["b63be8c2-576a-456a-9ecd-0c0d3aca1b95"],
						"metadata": {"play": 17, "subPlay": 0, "parent": "d0e3b8a9-4b1e-4f9e-8c31-9a4d5e6f7a81"},
						"sim": "thisidisstaticyo", "day": 3, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}, {
						"id": "7a32d9b2-1e4f-4b0c-9f42-2b3c4d5e6f70",
						"created": "2021-04-20T21:15:32.561Z",
						"type": 125,
						"category": 1,
						"description": "Lenjamin Zhuge entered the Hall of Flame.",
						"playerTags": ["17397256-c28c-4cad-85f2-a21768c66e67"],
						"gameTags": ["3c1f5f30-7a22-4a52-a1e7-f1c2ab9e7a10"],
						"teamTags": [],
						"metadata": {"play": 17, "subPlay": 1, "parent": "d0e3b8a9-4b1e-4f9e-8c31-9a4d5e6f7a81"},
						"sim": "thisidisstaticyo", "day": 3, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}, {
						"id": "8b43eac3-2f50-4c1d-a053-3c4d5e6f7081",
						"created": "2021-04-20T21:15:32.571Z",
						"type": 137,
						"category": 1,
						"description": "Fenry Marlow has been hatched from the field of eggs.",
						"playerTags": ["378c07b0-5645-44b5-869f-497d144c7b35"],
						"gameTags": ["3c1f5f30-7a22-4a52-a1e7-f1c2ab9e7a10"],
						"teamTags": [],
						"metadata": {
							"play": 17,
							"subPlay": 2,
							"parent": "d0e3b8a9-4b1e-4f9e-8c31-9a4d5e6f7a81",
							"id": "378c07b0-5645-44b5-869f-497d144c7b35"
						},
						"sim": "thisidisstaticyo", "day": 3, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}, {
						"id": "9c54fbd4-3061-4d2e-b164-4d5e6f708192",
						"created": "2021-04-20T21:15:32.581Z",
						"type": 116,
						"category": 1,
						"description": "Fenry Marlow replaced the incinerated Lenjamin Zhuge.",
						"playerTags": ["17397256-c28c-4cad-85f2-a21768c66e67", "378c07b0-5645-44b5-869f-497d144c7b35"],
						"gameTags": ["3c1f5f30-7a22-4a52-a1e7-f1c2ab9e7a10"],
						"teamTags": ["b63be8c2-576a-456a-9ecd-0c0d3aca1b95"],
						"metadata": {
							"play": 17,
							"subPlay": 3,
							"parent": "d0e3b8a9-4b1e-4f9e-8c31-9a4d5e6f7a81",
							"inPlayerId": "378c07b0-5645-44b5-869f-497d144c7b35",
							"inPlayerName": "Fenry Marlow",
							"location": 1,
							"outPlayerId": "17397256-c28c-4cad-85f2-a21768c66e67",
							"outPlayerName": "Lenjamin Zhuge",
							"teamId": "b63be8c2-576a-456a-9ecd-0c0d3aca1b95",
							"teamName": "Millennials"
						},
						"sim": "thisidisstaticyo", "day": 3, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}]
				},
				"sim": "thisidisstaticyo",
				"day": 3,
				"season": 15,
				"tournament": -1,
				"phase": 6,
				"nuts": 2
			}`,
			check: func(t *testing.T, occ Occurrence) {
				p, ok := occ.Payload.(*Incineration)
				if !ok {
					t.Fatalf("Payload = %T, want *Incineration", occ.Payload)
				}
				if p.VictimName != "Lenjamin Zhuge" || p.ReplacementName != "Fenry Marlow" {
					t.Errorf("victim/replacement = %q/%q, want Lenjamin Zhuge/Fenry Marlow",
						p.VictimName, p.ReplacementName)
				}
			},
		},
		{
			name: "blooddrain",
			raw: `{
				"id": "b1c2d3e4-5f60-4718-8293-a4b5c6d7e8f9",
				"created": "2021-04-21T05:04:11.021Z",
				"type": 51,
				"category": 2,
				"description": "The Blooddrain gurgled!\nJessica Telephone siphoned some of Nagomi Mcdaniel's hitting ability!\nJessica Telephone increased their hitting ability!",
				"playerTags": ["083d09d4-7ed3-4100-b021-8fbe30dd43e8", "c22e3af1-9e26-4c79-a0b2-6ddc7b6ab938"],
				"gameTags": ["d4e5f607-1829-4a3b-9c4d-5e6f70819203"],
				"teamTags": ["23e4cbc1-e9cd-47fa-a35b-bfa06f726cb7", "747b8e4a-7e50-4638-a973-ea7950a3e739"],
				"metadata": {
					"play": 88,
					"subPlay": -1,
					"children": [{
						"id": "e5f60718-293a-4b4c-8d5e-6f7081920314",
						"created": "2021-04-21T05:04:11.031Z",
						"type": 118,
						"category": 1,
						"description": "Nagomi Mcdaniel had blood drained by Jessica Telephone.",
						"playerTags": ["c22e3af1-9e26-4c79-a0b2-6ddc7b6ab938"],
						"gameTags": ["d4e5f607-1829-4a3b-9c4d-5e6f70819203"],
						"teamTags": ["23e4cbc1-e9cd-47fa-a35b-bfa06f726cb7"],
						"metadata": {
							"play": 88,
							"subPlay": 0,
							"parent": "b1c2d3e4-5f60-4718-8293-a4b5c6d7e8f9",
							"after": 0.5592,
							"before": 0.6092,
							"type": 0
						},
						"sim": "thisidisstaticyo", "day": 44, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}, {
						"id": "f6071829-3a4b-4c5d-9e6f-708192031425",
						"created": "2021-04-21T05:04:11.041Z",
						"type": 117,
						"category": 1,
						"description": "Jessica Telephone drained blood from Nagomi Mcdaniel.",
						"playerTags": ["083d09d4-7ed3-4100-b021-8fbe30dd43e8"],
						"gameTags": ["d4e5f607-1829-4a3b-9c4d-5e6f70819203"],
						"teamTags": ["747b8e4a-7e50-4638-a973-ea7950a3e739"],
						"metadata": {
							"play": 88,
							"subPlay": 1,
							"parent": "b1c2d3e4-5f60-4718-8293-a4b5c6d7e8f9",
							"after": 0.7133,
							"before": 0.6633,
							"type": 0
						},
						"sim": "thisidisstaticyo", "day": 44, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}]
				},
				"sim": "thisidisstaticyo",
				"day": 44,
				"season": 15,
				"tournament": -1,
				"phase": 6,
				"nuts": 1
			}`,
			check: func(t *testing.T, occ Occurrence) {
				p, ok := occ.Payload.(*Blooddrain)
				if !ok {
					t.Fatalf("Payload = %T, want *Blooddrain", occ.Payload)
				}
				if p.IsSiphon || p.Category != AttrBatting {
					t.Errorf("got siphon=%v category=%v, want plain hitting drain", p.IsSiphon, p.Category)
				}
			},
		},
		{
			name: "feedback swap",
			raw: `{
				"id": "a9b8c7d6-e5f4-4312-8190-fedcba987654",
				"created": "2021-04-22T18:40:55.112Z",
				"type": 41,
				"category": 2,
				"description": "Reality flickers. Things look different ...\nAlyssa Harrell and Hobbs Cain switch teams in the feedback!\nHobbs Cain is now batting.",
				"playerTags": ["f2a27a7e-bf04-4d31-86f5-16bfa3addbe7", "b348c037-eefc-4b81-8edd-dfa96188a97e"],
				"gameTags": ["0192a3b4-c5d6-4e7f-8091-a2b3c4d5e6f7"],
				"teamTags": ["747b8e4a-7e50-4638-a973-ea7950a3e739", "c73b705c-40ad-4633-a6ed-d357ee2e2bcf"],
				"metadata": {
					"play": 130,
					"subPlay": -1,
					"children": [{
						"id": "1203b4c5-d6e7-4f80-91a2-b3c4d5e6f708",
						"created": "2021-04-22T18:40:55.122Z",
						"type": 113,
						"category": 1,
						"description": "Reality flickered in the Feedback.",
						"playerTags": ["f2a27a7e-bf04-4d31-86f5-16bfa3addbe7", "b348c037-eefc-4b81-8edd-dfa96188a97e"],
						"gameTags": ["0192a3b4-c5d6-4e7f-8091-a2b3c4d5e6f7"],
						"teamTags": ["747b8e4a-7e50-4638-a973-ea7950a3e739", "c73b705c-40ad-4633-a6ed-d357ee2e2bcf"],
						"metadata": {
							"play": 130,
							"subPlay": 0,
							"parent": "a9b8c7d6-e5f4-4312-8190-fedcba987654",
							"aLocation": 0,
							"aPlayerId": "f2a27a7e-bf04-4d31-86f5-16bfa3addbe7",
							"aPlayerName": "Alyssa Harrell",
							"aTeamId": "747b8e4a-7e50-4638-a973-ea7950a3e739",
							"aTeamName": "Tigers",
							"bLocation": 0,
							"bPlayerId": "b348c037-eefc-4b81-8edd-dfa96188a97e",
							"bPlayerName": "Hobbs Cain",
							"bTeamId": "c73b705c-40ad-4633-a6ed-d357ee2e2bcf",
							"bTeamName": "Lift"
						},
						"sim": "thisidisstaticyo", "day": 58, "season": 15, "tournament": -1, "phase": 6, "nuts": 0
					}]
				},
				"sim": "thisidisstaticyo",
				"day": 58,
				"season": 15,
				"tournament": -1,
				"phase": 6,
				"nuts": 7
			}`,
			check: func(t *testing.T, occ Occurrence) {
				p, ok := occ.Payload.(*FeedbackSwap)
				if !ok {
					t.Fatalf("Payload = %T, want *FeedbackSwap", occ.Payload)
				}
				if p.Position != PositionLineup {
					t.Errorf("Position = %v, want lineup", p.Position)
				}
			},
		},
		{
			name: "consumers attack",
			raw: `{
				"id": "23b4c5d6-e7f8-4091-a2b3-c4d5e6f70819",
				"created": "2021-06-18T03:11:40.790Z",
				"type": 67,
				"category": 2,
				"description": "CONSUMERS ATTACK\nNAGOMI NAVA",
				"playerTags": ["ae4acebd-edb5-4d20-bf69-f2d5151312ff"],
				"gameTags": ["34c5d6e7-f809-41a2-b3c4-d5e6f7081920"],
				"teamTags": ["8d87c468-699a-47a8-b40d-cfb73a5660ad", "36569151-a2fb-43c1-9df7-2df512424c82"],
				"metadata": {
					"play": 201,
					"subPlay": -1,
					"children": [{
						"id": "45d6e7f8-091a-42b3-94c5-e6f708192031",
						"created": "2021-06-18T03:11:40.800Z",
						"type": 118,
						"category": 1,
						"description": "CONSUMERS ATTACK\nNAGOMI NAVA",
						"playerTags": ["ae4acebd-edb5-4d20-bf69-f2d5151312ff"],
						"gameTags": ["34c5d6e7-f809-41a2-b3c4-d5e6f7081920"],
						"teamTags": ["8d87c468-699a-47a8-b40d-cfb73a5660ad"],
						"metadata": {
							"play": 201,
							"subPlay": 0,
							"parent": "23b4c5d6-e7f8-4091-a2b3-c4d5e6f70819",
							"after": 0.4123,
							"before": 0.5123,
							"type": 4
						},
						"sim": "thisidisstaticyo", "day": 74, "season": 18, "tournament": -1, "phase": 6, "nuts": 0
					}]
				},
				"sim": "thisidisstaticyo",
				"day": 74,
				"season": 18,
				"tournament": -1,
				"phase": 6,
				"nuts": 5
			}`,
			check: func(t *testing.T, occ Occurrence) {
				p, ok := occ.Payload.(*ConsumersAttack)
				if !ok {
					t.Fatalf("Payload = %T, want *ConsumersAttack", occ.Payload)
				}
				if p.PlayerNameAllCaps != "NAGOMI NAVA" || p.Scattered {
					t.Errorf("got %q scattered=%v, want a plain chomp on NAGOMI NAVA",
						p.PlayerNameAllCaps, p.Scattered)
				}
			},
		},
		{
			name: "consumer expelled",
			raw: `{
				"id": "56e7f809-1a2b-43c4-a5d6-f70819203142",
				"created": "2021-06-18T09:22:13.515Z",
				"type": 67,
				"category": 2,
				"description": "SALMON CANNONS FIRE\nCONSUMER EXPELLED",
				"playerTags": ["ae4acebd-edb5-4d20-bf69-f2d5151312ff"],
				"gameTags": ["34c5d6e7-f809-41a2-b3c4-d5e6f7081920"],
				"teamTags": ["8d87c468-699a-47a8-b40d-cfb73a5660ad", "36569151-a2fb-43c1-9df7-2df512424c82"],
				"metadata": {"play": 233, "subPlay": -1},
				"sim": "thisidisstaticyo",
				"day": 74,
				"season": 18,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}`,
			check: func(t *testing.T, occ Occurrence) {
				if _, ok := occ.Payload.(*ConsumerExpelled); !ok {
					t.Fatalf("Payload = %T, want *ConsumerExpelled", occ.Payload)
				}
			},
		},
		{
			name: "salmon swim",
			raw: `{
				"id": "67f8091a-2b3c-44d5-b6e7-081920314253",
				"created": "2021-05-11T16:05:27.332Z",
				"type": 63,
				"category": 0,
				"description": "The Salmon swim upstream!\nInning 5 begins again.\nNo Runs are lost.",
				"playerTags": [],
				"gameTags": ["78091a2b-3c4d-45e6-87f8-192031425364"],
				"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
				"metadata": {"play": 154, "subPlay": -1},
				"sim": "thisidisstaticyo",
				"day": 20,
				"season": 16,
				"tournament": -1,
				"phase": 6,
				"nuts": 0
			}`,
			check: func(t *testing.T, occ Occurrence) {
				p, ok := occ.Payload.(*SalmonSwim)
				if !ok {
					t.Fatalf("Payload = %T, want *SalmonSwim", occ.Payload)
				}
				if p.Inning != 5 || len(p.RunLosses) != 0 {
					t.Errorf("Inning = %d, RunLosses = %d, want inning 5 with no losses",
						p.Inning, len(p.RunLosses))
				}
			},
		},
		{
			name: "return from elsewhere",
			raw:  elsewhereShortReturn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ := roundTrip(t, tt.raw)
			if tt.check != nil {
				tt.check(t, occ)
			}
		})
	}
}

func TestParse_ItemRoundTrips(t *testing.T) {
	// A Glitter crate handing out an item, with the gained child carrying
	// the full item metadata.
	raw := `{
		"id": "891a2b3c-4d5e-46f7-a809-203142536475",
		"created": "2021-06-25T07:33:02.614Z",
		"type": 177,
		"category": 0,
		"description": "A shimmering Crate descends.\nDominic Marijuana gained Chaotic Sunglasses.",
		"playerTags": [],
		"gameTags": ["9a2b3c4d-5e6f-4708-b91a-314253647586"],
		"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82", "b72f3061-f573-40d7-832a-5ad475bd7909"],
		"metadata": {
			"play": 96,
			"subPlay": -1,
			"children": [{
				"id": "ab3c4d5e-6f70-4819-8a2b-425364758697",
				"created": "2021-06-25T07:33:02.624Z",
				"type": 127,
				"category": 1,
				"description": "Dominic Marijuana gained Chaotic Sunglasses.",
				"playerTags": ["9820f2c5-f9da-4a07-b610-c2dd7bee2ef6"],
				"gameTags": ["9a2b3c4d-5e6f-4708-b91a-314253647586"],
				"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82"],
				"metadata": {
					"play": 96,
					"subPlay": 0,
					"parent": "891a2b3c-4d5e-46f7-a809-203142536475",
					"itemId": "bc4d5e6f-7081-492a-9b3c-5364758697a8",
					"itemName": "Chaotic Sunglasses",
					"mods": ["CHAOTIC"],
					"playerItemRatingAfter": 0.3425,
					"playerItemRatingBefore": 0.1125,
					"playerRating": 0.5521
				},
				"sim": "thisidisstaticyo", "day": 88, "season": 18, "tournament": -1, "phase": 6, "nuts": 0
			}]
		},
		"sim": "thisidisstaticyo",
		"day": 88,
		"season": 18,
		"tournament": -1,
		"phase": 6,
		"nuts": 2
	}`
	occ := roundTrip(t, raw)
	p, ok := occ.Payload.(*GlitterCrateDrop)
	if !ok {
		t.Fatalf("Payload = %T, want *GlitterCrateDrop", occ.Payload)
	}
	if p.Gained.ItemName != "Chaotic Sunglasses" || p.Gained.DroppedItem != nil {
		t.Errorf("Gained = %+v, want Chaotic Sunglasses with nothing dropped", p.Gained)
	}
}

func TestParse_ElectionRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "decree passed",
			raw: `{
				"id": "cd5e6f70-8192-4a3b-8c4d-6475869708b9",
				"created": "2021-05-23T18:00:00.000Z",
				"type": 59,
				"category": 3,
				"description": "Decree Passed: Book of Blaseball",
				"playerTags": [],
				"gameTags": [],
				"teamTags": [],
				"metadata": {"totalVotes": 21342},
				"sim": "thisidisstaticyo",
				"day": 118,
				"season": 16,
				"tournament": -1,
				"phase": 12,
				"nuts": 9
			}`,
		},
		{
			name: "blessing won",
			raw: `{
				"id": "de6f7081-92a3-4b4c-9d5e-75869708b9ca",
				"created": "2021-05-23T18:00:01.000Z",
				"type": 60,
				"category": 3,
				"description": "Blessing Won: Nut Button",
				"playerTags": [],
				"gameTags": [],
				"teamTags": ["23e4cbc1-e9cd-47fa-a35b-bfa06f726cb7"],
				"metadata": {
					"teamId": "23e4cbc1-e9cd-47fa-a35b-bfa06f726cb7",
					"teamName": "Pies",
					"totalVotes": 4136
				},
				"sim": "thisidisstaticyo",
				"day": 118,
				"season": 16,
				"tournament": -1,
				"phase": 12,
				"nuts": 4
			}`,
		},
		{
			name: "gift received",
			raw: `{
				"id": "ef708192-a3b4-4c5d-ae6f-869708b9cadb",
				"created": "2021-06-27T18:00:02.000Z",
				"type": 60,
				"category": 3,
				"description": "Gift Received: Shremp Mode for the Moist Talkers",
				"playerTags": [],
				"gameTags": [],
				"teamTags": ["eb67ae5e-c4bf-46ca-bbbc-425cd34182ff"],
				"metadata": {"teamName": "Moist Talkers"},
				"sim": "thisidisstaticyo",
				"day": 99,
				"season": 18,
				"tournament": -1,
				"phase": 12,
				"nuts": 1
			}`,
		},
		{
			name: "will received",
			raw: `{
				"id": "f08192a3-b4c5-4d6e-bf70-9708b9cadbec",
				"created": "2021-05-23T18:00:03.000Z",
				"type": 61,
				"category": 3,
				"description": "Will Received: Foreshadow",
				"playerTags": [],
				"gameTags": [],
				"teamTags": ["747b8e4a-7e50-4638-a973-ea7950a3e739"],
				"metadata": {
					"id": "0192a3b4-c5d6-4e7f-8091-a2b3c4d5e6f8",
					"title": "Foreshadow"
				},
				"sim": "thisidisstaticyo",
				"day": 118,
				"season": 16,
				"tournament": -1,
				"phase": 12,
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
