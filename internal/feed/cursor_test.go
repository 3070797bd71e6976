package feed

import (
	"strings"
	"testing"

	"github.com/calliehart/blasefeed/internal/errors"
)

func TestParse_AccountingErrors(t *testing.T) {
	base := `{
		"id": "4f4b7c3a-20cc-4e14-9e82-6f9e06d392a2",
		"created": "2021-07-19T08:00:00.000Z",
		"type": 150,
		"category": 2,
		"description": "Don Mitchell has been permitted to stay.",
		"playerTags": ["f3ddfd87-73a2-4dbd-8d02-6379a025c281"],
		"gameTags": [],
		"teamTags": [],
		"metadata": {},
		"sim": "thisidisstaticyo",
		"day": 99,
		"season": 18,
		"tournament": -1,
		"phase": 9,
		"nuts": 4
	}`

	tests := []struct {
		name   string
		mutate func(string) string
		want   errors.Code
	}{
		{
			name: "leftover description",
			mutate: func(raw string) string {
				return strings.Replace(raw, "to stay.", "to stay. Extra words.", 1)
			},
			want: errors.CodeDescriptionNotFullyParsed,
		},
		{
			name: "missing player tag",
			mutate: func(raw string) string {
				return strings.Replace(raw, `["f3ddfd87-73a2-4dbd-8d02-6379a025c281"]`, "[]", 1)
			},
			want: errors.CodeNotEnoughTags,
		},
		{
			name: "surplus team tag",
			mutate: func(raw string) string {
				return strings.Replace(raw, `"teamTags": []`,
					`"teamTags": ["36569151-a2fb-43c1-9df7-2df512424c82"]`, 1)
			},
			want: errors.CodeTooManyTags,
		},
		{
			name: "unread metadata key",
			mutate: func(raw string) string {
				return strings.Replace(raw, `"metadata": {}`, `"metadata": {"surprise": 1}`, 1)
			},
			want: errors.CodeUnreadMetadata,
		},
		{
			name: "unexpected child",
			mutate: func(raw string) string {
				return strings.Replace(raw, `"metadata": {}`,
					`"metadata": {"children": [{"type": 107, "metadata": {"mod": "X", "type": 0}}]}`, 1)
			},
			want: errors.CodeTooManyChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(decodeRecord(t, tt.mutate(base)))
			if err == nil {
				t.Fatal("Parse() error = nil, want an accounting failure")
			}
			if code := errors.CodeOf(err); code != tt.want {
				t.Errorf("CodeOf() = %v, want %v (err: %v)", code, tt.want, err)
			}
		})
	}

	t.Run("intact record parses", func(t *testing.T) {
		roundTrip(t, base)
	})
}

func TestParse_SeasonRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "final standings",
			raw: `{
				"id": "e0df6147-7a49-4cf8-a3f6-54f4f8fbd5a5",
				"created": "2021-05-09T01:30:00.000Z",
				"type": 143,
				"category": 3,
				"description": "The Fridays finished 3rd in the Wild High.",
				"playerTags": [],
				"gameTags": [],
				"teamTags": ["979aee4a-6d80-4863-bf1c-ee1a78e06024"],
				"metadata": {"place": 2},
				"sim": "thisidisstaticyo",
				"day": 111,
				"season": 15,
				"tournament": -1,
				"phase": 7,
				"nuts": 0
			}`,
		},
		{
			name: "internet series",
			raw: `{
				"id": "0a1c7b4e-84b3-4f3a-b0d9-2a1c5f70b3ee",
				"created": "2021-05-23T02:00:00.000Z",
				"type": 141,
				"category": 3,
				"description": "The Pies won the Season 17 Internet Series!",
				"playerTags": [],
				"gameTags": [],
				"teamTags": ["23e4cbc1-e9cd-47fa-a35b-bfa06f726cb7"],
				"metadata": {"championships": 2},
				"sim": "thisidisstaticyo",
				"day": 118,
				"season": 16,
				"tournament": -1,
				"phase": 10,
				"nuts": 11
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.raw)
		})
	}
}
