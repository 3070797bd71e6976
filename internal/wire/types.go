package wire

import "strconv"

// EventType is the integer discriminant that selects which per-kind
// grammar applies to a record. The numbering is owned by the upstream
// feed; gaps are values that never appeared in practice.
type EventType int

const (
	Undefined                           EventType = -1
	LetsGo                              EventType = 0
	PlayBall                            EventType = 1
	HalfInning                          EventType = 2
	PitcherChange                       EventType = 3
	StolenBase                          EventType = 4
	Walk                                EventType = 5
	Strikeout                           EventType = 6
	FlyOut                              EventType = 7
	GroundOut                           EventType = 8
	HomeRun                             EventType = 9
	Hit                                 EventType = 10
	GameEnd                             EventType = 11
	BatterUp                            EventType = 12
	Strike                              EventType = 13
	Ball                                EventType = 14
	FoulBall                            EventType = 15
	RunsOverflowing                     EventType = 20
	HomeFieldAdvantage                  EventType = 21
	HitByPitch                          EventType = 22
	BatterSkipped                       EventType = 23
	Party                               EventType = 24
	StrikeZapped                        EventType = 25
	WeatherChange                       EventType = 26
	MildPitch                           EventType = 27
	InningEnd                           EventType = 28
	BigDeal                             EventType = 29
	BlackHole                           EventType = 30
	Sun2                                EventType = 31
	BirdsCircle                         EventType = 33
	AmbushedByCrows                     EventType = 34
	BirdsUnshell                        EventType = 35
	BecomeTripleThreat                  EventType = 36
	GainFreeRefill                      EventType = 37
	CoffeeBean                          EventType = 39
	FeedbackBlocked                     EventType = 40
	FeedbackSwap                        EventType = 41
	SuperallergicReaction               EventType = 45
	AllergicReaction                    EventType = 47
	ReverbBestowsReverberating          EventType = 48
	ReverbRosterShuffle                 EventType = 49
	Blooddrain                          EventType = 51
	BlooddrainSiphon                    EventType = 52
	BlooddrainBlocked                   EventType = 53
	Incineration                        EventType = 54
	IncinerationBlocked                 EventType = 55
	FlagPlanted                         EventType = 56
	RenovationBuilt                     EventType = 57
	LightSwitchToggled                  EventType = 58
	DecreePassed                        EventType = 59
	BlessingOrGiftWon                   EventType = 60
	WillRecieved                        EventType = 61
	FloodingSwept                       EventType = 62
	SalmonSwim                          EventType = 63
	PolarityShift                       EventType = 64
	EnterSecretBase                     EventType = 65
	ExitSecretBase                      EventType = 66
	ConsumersAttack                     EventType = 67
	EchoChamber                         EventType = 69
	GrindRail                           EventType = 70
	TunnelsUsed                         EventType = 71
	PeanutMister                        EventType = 72
	PeanutFlavorText                    EventType = 73
	TasteTheInfinite                    EventType = 74
	EventHorizonActivation              EventType = 76
	EventHorizonAwaits                  EventType = 77
	SolarPanelsAwait                    EventType = 78
	SolarPanelsActivation               EventType = 79
	TarotReading                        EventType = 81
	EmergencyAlert                      EventType = 82
	ReturnFromElsewhere                 EventType = 84
	OverUnder                           EventType = 85
	UnderOver                           EventType = 86
	Undersea                            EventType = 88
	Homebody                            EventType = 91
	Superyummy                          EventType = 92
	Perk                                EventType = 93
	Earlbird                            EventType = 96
	LateToTheParty                      EventType = 97
	ShameDonor                          EventType = 99
	AddedMod                            EventType = 106
	RemovedMod                          EventType = 107
	ModExpires                          EventType = 108
	PlayerAddedToTeam                   EventType = 109
	PlayerReplacedByNecromancy          EventType = 110
	PlayerReplacesReturned              EventType = 111
	PlayerRemovedFromTeam               EventType = 112
	PlayerTraded                        EventType = 113
	PlayerSwap                          EventType = 114
	PlayerMoved                         EventType = 115
	PlayerBornFromIncineration          EventType = 116
	PlayerStatIncrease                  EventType = 117
	PlayerStatDecrease                  EventType = 118
	PlayerStatReroll                    EventType = 119
	PlayerStatDecreaseFromSuperallergic EventType = 122
	PlayerMoveFailedForce               EventType = 124
	EnterHallOfFlame                    EventType = 125
	ExitHallOfFlame                     EventType = 126
	PlayerGainedItem                    EventType = 127
	PlayerLostItem                      EventType = 128
	ReverbFullShuffle                   EventType = 130
	ReverbLineupShuffle                 EventType = 131
	ReverbRotationShuffle               EventType = 132
	TeamDivisionMove                    EventType = 135
	PlayerDivisionMove                  EventType = 136
	PlayerHatched                       EventType = 137
	PlayerEvolves                       EventType = 139
	TeamWonInternetSeries               EventType = 141
	EarnedPostseasonSlot                EventType = 142
	FinalStandings                      EventType = 143
	ModChange                           EventType = 144
	PlayerAlternated                    EventType = 145
	AddedModFromOtherMod                EventType = 146
	RemovedModFromOtherMod              EventType = 147
	ChangedModFromOtherMod              EventType = 148
	NecromancyOrPlunderNarration        EventType = 149
	PlayerPermittedToStay               EventType = 150
	DecreeNarration                     EventType = 151
	WillResults                         EventType = 152
	TeamStatAdjustment                  EventType = 153
	TeamWasShamed                       EventType = 154
	TeamDidShame                        EventType = 155
	Sun2SetWin                          EventType = 156
	BlackHoleSwallowedWin               EventType = 157
	PostseasonEliminated                EventType = 158
	PostseasonAdvance                   EventType = 159
	GainBloodType                       EventType = 161
	HighPressure                        EventType = 165
	LineupSorted                        EventType = 166
	NutButton                           EventType = 168
	Echo                                EventType = 169
	EchoIntoStatic                      EventType = 170
	RemovedModsFromAnotherMod           EventType = 171
	AddedModsFromAnotherMod             EventType = 172
	Psychoacoustics                     EventType = 173
	EchoReciever                        EventType = 174
	InvestigationMessage                EventType = 175
	Tidings                             EventType = 176
	GlitterCrateDrop                    EventType = 177
	Middling                            EventType = 178
	PlayerAttributeIncrease             EventType = 179
	PlayerAttributeDecrease             EventType = 180
	EnterCrimeScene                     EventType = 181
	Ambitious                           EventType = 182
	Coasting                            EventType = 184
	ItemBreaks                          EventType = 185
	ItemDamaged                         EventType = 186
	BrokenItemRepaired                  EventType = 187
	DamagedItemRepaired                 EventType = 188
	CommunityChestOpens                 EventType = 189
	NoFreeItemSlot                      EventType = 190
	FaxMachine                          EventType = 191
	HolidayInning                       EventType = 192
	PrizeMatch                          EventType = 193
	TeamReceivedGifts                   EventType = 194
	Smithy                              EventType = 195
	PlayerSoulIncrease                  EventType = 199
	Announcement                        EventType = 201
	RunsScored                          EventType = 209
	WinCollectedRegular                 EventType = 214
	WinCollectedPostseason              EventType = 215
	GameOver                            EventType = 216
	StormWarning                        EventType = 263
	Snowflakes                          EventType = 264
)

var eventTypeNames = map[EventType]string{
	Undefined:                           "Undefined",
	LetsGo:                              "LetsGo",
	PlayBall:                            "PlayBall",
	HalfInning:                          "HalfInning",
	PitcherChange:                       "PitcherChange",
	StolenBase:                          "StolenBase",
	Walk:                                "Walk",
	Strikeout:                           "Strikeout",
	FlyOut:                              "FlyOut",
	GroundOut:                           "GroundOut",
	HomeRun:                             "HomeRun",
	Hit:                                 "Hit",
	GameEnd:                             "GameEnd",
	BatterUp:                            "BatterUp",
	Strike:                              "Strike",
	Ball:                                "Ball",
	FoulBall:                            "FoulBall",
	RunsOverflowing:                     "RunsOverflowing",
	HomeFieldAdvantage:                  "HomeFieldAdvantage",
	HitByPitch:                          "HitByPitch",
	BatterSkipped:                       "BatterSkipped",
	Party:                               "Party",
	StrikeZapped:                        "StrikeZapped",
	WeatherChange:                       "WeatherChange",
	MildPitch:                           "MildPitch",
	InningEnd:                           "InningEnd",
	BigDeal:                             "BigDeal",
	BlackHole:                           "BlackHole",
	Sun2:                                "Sun2",
	BirdsCircle:                         "BirdsCircle",
	AmbushedByCrows:                     "AmbushedByCrows",
	BirdsUnshell:                        "BirdsUnshell",
	BecomeTripleThreat:                  "BecomeTripleThreat",
	GainFreeRefill:                      "GainFreeRefill",
	CoffeeBean:                          "CoffeeBean",
	FeedbackBlocked:                     "FeedbackBlocked",
	FeedbackSwap:                        "FeedbackSwap",
	SuperallergicReaction:               "SuperallergicReaction",
	AllergicReaction:                    "AllergicReaction",
	ReverbBestowsReverberating:          "ReverbBestowsReverberating",
	ReverbRosterShuffle:                 "ReverbRosterShuffle",
	Blooddrain:                          "Blooddrain",
	BlooddrainSiphon:                    "BlooddrainSiphon",
	BlooddrainBlocked:                   "BlooddrainBlocked",
	Incineration:                        "Incineration",
	IncinerationBlocked:                 "IncinerationBlocked",
	FlagPlanted:                         "FlagPlanted",
	RenovationBuilt:                     "RenovationBuilt",
	LightSwitchToggled:                  "LightSwitchToggled",
	DecreePassed:                        "DecreePassed",
	BlessingOrGiftWon:                   "BlessingOrGiftWon",
	WillRecieved:                        "WillRecieved",
	FloodingSwept:                       "FloodingSwept",
	SalmonSwim:                          "SalmonSwim",
	PolarityShift:                       "PolarityShift",
	EnterSecretBase:                     "EnterSecretBase",
	ExitSecretBase:                      "ExitSecretBase",
	ConsumersAttack:                     "ConsumersAttack",
	EchoChamber:                         "EchoChamber",
	GrindRail:                           "GrindRail",
	TunnelsUsed:                         "TunnelsUsed",
	PeanutMister:                        "PeanutMister",
	PeanutFlavorText:                    "PeanutFlavorText",
	TasteTheInfinite:                    "TasteTheInfinite",
	EventHorizonActivation:              "EventHorizonActivation",
	EventHorizonAwaits:                  "EventHorizonAwaits",
	SolarPanelsAwait:                    "SolarPanelsAwait",
	SolarPanelsActivation:               "SolarPanelsActivation",
	TarotReading:                        "TarotReading",
	EmergencyAlert:                      "EmergencyAlert",
	ReturnFromElsewhere:                 "ReturnFromElsewhere",
	OverUnder:                           "OverUnder",
	UnderOver:                           "UnderOver",
	Undersea:                            "Undersea",
	Homebody:                            "Homebody",
	Superyummy:                          "Superyummy",
	Perk:                                "Perk",
	Earlbird:                            "Earlbird",
	LateToTheParty:                      "LateToTheParty",
	ShameDonor:                          "ShameDonor",
	AddedMod:                            "AddedMod",
	RemovedMod:                          "RemovedMod",
	ModExpires:                          "ModExpires",
	PlayerAddedToTeam:                   "PlayerAddedToTeam",
	PlayerReplacedByNecromancy:          "PlayerReplacedByNecromancy",
	PlayerReplacesReturned:              "PlayerReplacesReturned",
	PlayerRemovedFromTeam:               "PlayerRemovedFromTeam",
	PlayerTraded:                        "PlayerTraded",
	PlayerSwap:                          "PlayerSwap",
	PlayerMoved:                         "PlayerMoved",
	PlayerBornFromIncineration:          "PlayerBornFromIncineration",
	PlayerStatIncrease:                  "PlayerStatIncrease",
	PlayerStatDecrease:                  "PlayerStatDecrease",
	PlayerStatReroll:                    "PlayerStatReroll",
	PlayerStatDecreaseFromSuperallergic: "PlayerStatDecreaseFromSuperallergic",
	PlayerMoveFailedForce:               "PlayerMoveFailedForce",
	EnterHallOfFlame:                    "EnterHallOfFlame",
	ExitHallOfFlame:                     "ExitHallOfFlame",
	PlayerGainedItem:                    "PlayerGainedItem",
	PlayerLostItem:                      "PlayerLostItem",
	ReverbFullShuffle:                   "ReverbFullShuffle",
	ReverbLineupShuffle:                 "ReverbLineupShuffle",
	ReverbRotationShuffle:               "ReverbRotationShuffle",
	TeamDivisionMove:                    "TeamDivisionMove",
	PlayerDivisionMove:                  "PlayerDivisionMove",
	PlayerHatched:                       "PlayerHatched",
	PlayerEvolves:                       "PlayerEvolves",
	TeamWonInternetSeries:               "TeamWonInternetSeries",
	EarnedPostseasonSlot:                "EarnedPostseasonSlot",
	FinalStandings:                      "FinalStandings",
	ModChange:                           "ModChange",
	PlayerAlternated:                    "PlayerAlternated",
	AddedModFromOtherMod:                "AddedModFromOtherMod",
	RemovedModFromOtherMod:              "RemovedModFromOtherMod",
	ChangedModFromOtherMod:              "ChangedModFromOtherMod",
	NecromancyOrPlunderNarration:        "NecromancyOrPlunderNarration",
	PlayerPermittedToStay:               "PlayerPermittedToStay",
	DecreeNarration:                     "DecreeNarration",
	WillResults:                         "WillResults",
	TeamStatAdjustment:                  "TeamStatAdjustment",
	TeamWasShamed:                       "TeamWasShamed",
	TeamDidShame:                        "TeamDidShame",
	Sun2SetWin:                          "Sun2SetWin",
	BlackHoleSwallowedWin:               "BlackHoleSwallowedWin",
	PostseasonEliminated:                "PostseasonEliminated",
	PostseasonAdvance:                   "PostseasonAdvance",
	GainBloodType:                       "GainBloodType",
	HighPressure:                        "HighPressure",
	LineupSorted:                        "LineupSorted",
	NutButton:                           "NutButton",
	Echo:                                "Echo",
	EchoIntoStatic:                      "EchoIntoStatic",
	RemovedModsFromAnotherMod:           "RemovedModsFromAnotherMod",
	AddedModsFromAnotherMod:             "AddedModsFromAnotherMod",
	Psychoacoustics:                     "Psychoacoustics",
	EchoReciever:                        "EchoReciever",
	InvestigationMessage:                "InvestigationMessage",
	Tidings:                             "Tidings",
	GlitterCrateDrop:                    "GlitterCrateDrop",
	Middling:                            "Middling",
	PlayerAttributeIncrease:             "PlayerAttributeIncrease",
	PlayerAttributeDecrease:             "PlayerAttributeDecrease",
	EnterCrimeScene:                     "EnterCrimeScene",
	Ambitious:                           "Ambitious",
	Coasting:                            "Coasting",
	ItemBreaks:                          "ItemBreaks",
	ItemDamaged:                         "ItemDamaged",
	BrokenItemRepaired:                  "BrokenItemRepaired",
	DamagedItemRepaired:                 "DamagedItemRepaired",
	CommunityChestOpens:                 "CommunityChestOpens",
	NoFreeItemSlot:                      "NoFreeItemSlot",
	FaxMachine:                          "FaxMachine",
	HolidayInning:                       "HolidayInning",
	PrizeMatch:                          "PrizeMatch",
	TeamReceivedGifts:                   "TeamReceivedGifts",
	Smithy:                              "Smithy",
	PlayerSoulIncrease:                  "PlayerSoulIncrease",
	Announcement:                        "Announcement",
	RunsScored:                          "RunsScored",
	WinCollectedRegular:                 "WinCollectedRegular",
	WinCollectedPostseason:              "WinCollectedPostseason",
	GameOver:                            "GameOver",
	StormWarning:                        "StormWarning",
	Snowflakes:                          "Snowflakes",
}

// Known reports whether the discriminant value has ever been observed in
// the upstream feed.
func (t EventType) Known() bool {
	_, ok := eventTypeNames[t]
	return ok
}

// String returns the upstream name for the discriminant, or the numeric
// value for discriminants outside the known table.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// Category is the coarse classification code carried by every record.
type Category int

const (
	CategoryRedacted  Category = -1
	CategoryGame      Category = 0
	CategoryChanges   Category = 1
	CategorySpecial   Category = 2
	CategoryOutcomes  Category = 3
	CategoryNarrative Category = 4
)

// String returns the upstream name for the category.
func (c Category) String() string {
	switch c {
	case CategoryRedacted:
		return "Redacted"
	case CategoryGame:
		return "Game"
	case CategoryChanges:
		return "Changes"
	case CategorySpecial:
		return "Special"
	case CategoryOutcomes:
		return "Outcomes"
	case CategoryNarrative:
		return "Narrative"
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// SpecialIf returns CategorySpecial when cond holds and CategoryGame
// otherwise. Many in-game kinds flip to Special when a side effect fired.
func SpecialIf(cond bool) Category {
	if cond {
		return CategorySpecial
	}
	return CategoryGame
}

// Weather is the game weather code carried in LetsGo metadata.
type Weather int

const (
	WeatherVoid               Weather = 0
	WeatherSun2               Weather = 1
	WeatherOvercast           Weather = 2
	WeatherRainy              Weather = 3
	WeatherSandstorm          Weather = 4
	WeatherSnowy              Weather = 5
	WeatherAcidic             Weather = 6
	WeatherSolarEclipse       Weather = 7
	WeatherGlitter            Weather = 8
	WeatherBlooddrain         Weather = 9
	WeatherPeanuts            Weather = 10
	WeatherBirds              Weather = 11
	WeatherFeedback           Weather = 12
	WeatherReverb             Weather = 13
	WeatherBlackHole          Weather = 14
	WeatherCoffee             Weather = 15
	WeatherCoffee2            Weather = 16
	WeatherCoffee3s           Weather = 17
	WeatherFlooding           Weather = 18
	WeatherSalmon             Weather = 19
	WeatherPolarityPlus       Weather = 20
	WeatherPolarityMinus      Weather = 21
	WeatherSun90              Weather = 23
	WeatherSunPoint1          Weather = 24
	WeatherSumSun             Weather = 25
	WeatherSupernovaEclipse   Weather = 26
	WeatherBlackHoleBlackHole Weather = 27
	WeatherJazz               Weather = 28
	WeatherNight              Weather = 29
)

// KnownWeather reports whether the weather code is inside the upstream
// table (22 is a real gap).
func KnownWeather(w Weather) bool {
	return w >= WeatherVoid && w <= WeatherNight && w != 22
}
