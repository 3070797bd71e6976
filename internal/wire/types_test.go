package wire

import "testing"

func TestEventType_Known(t *testing.T) {
	tests := []struct {
		name string
		typ  EventType
		want bool
	}{
		{"ball", Ball, true},
		{"snowflakes", Snowflakes, true},
		{"undefined", Undefined, true},
		{"gap value", EventType(19), false},
		{"beyond table", EventType(300), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Known(); got != tt.want {
				t.Errorf("EventType(%d).Known() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestEventType_String(t *testing.T) {
	if got := HomeRun.String(); got != "HomeRun" {
		t.Errorf("String() = %q, want HomeRun", got)
	}
	if got := EventType(999).String(); got != "EventType(999)" {
		t.Errorf("String() = %q, want EventType(999)", got)
	}
}

func TestSpecialIf(t *testing.T) {
	if got := SpecialIf(true); got != CategorySpecial {
		t.Errorf("SpecialIf(true) = %v, want Special", got)
	}
	if got := SpecialIf(false); got != CategoryGame {
		t.Errorf("SpecialIf(false) = %v, want Game", got)
	}
}

func TestKnownWeather(t *testing.T) {
	tests := []struct {
		weather Weather
		want    bool
	}{
		{WeatherVoid, true},
		{WeatherNight, true},
		{Weather(22), false},
		{Weather(-1), false},
		{Weather(30), false},
	}

	for _, tt := range tests {
		if got := KnownWeather(tt.weather); got != tt.want {
			t.Errorf("KnownWeather(%d) = %v, want %v", tt.weather, got, tt.want)
		}
	}
}
