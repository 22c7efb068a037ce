package models

import "testing"

func TestStartHour(t *testing.T) {
	s := NewDefaultRhythmSettings(1)
	if got := s.StartHour(RhythmReveille); got != 6 {
		t.Errorf("reveille start = %d, want 6", got)
	}
	if got := s.StartHour(RhythmReckoning); got != 18 {
		t.Errorf("reckoning start = %d, want 18", got)
	}

	s.ReveilleTime = "07:30"
	if got := s.StartHour(RhythmReveille); got != 7 {
		t.Errorf("start = %d, want 7", got)
	}

	s.ReveilleTime = "not a time"
	if got := s.StartHour(RhythmReveille); got != 6 {
		t.Errorf("unparsable time should fall back to 6, got %d", got)
	}
}

func TestSettingsValidate(t *testing.T) {
	s := NewDefaultRhythmSettings(1)
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}

	s.Timezone = "Mars/OlympusMons"
	if err := s.Validate(); err == nil {
		t.Error("invalid timezone should fail validation")
	}

	s = NewDefaultRhythmSettings(1)
	s.RotationPolicy = "hourly"
	if err := s.Validate(); err == nil {
		t.Error("unknown rotation policy should fail validation")
	}

	s = NewDefaultRhythmSettings(1)
	s.ReckoningTime = "25:99"
	if err := s.Validate(); err == nil {
		t.Error("out-of-range time should fail validation")
	}
}

func TestPromptFrequenciesJSONRoundTrip(t *testing.T) {
	f := PromptFrequencies{Gratitude: 1, Joy: 3, Anticipation: 14}
	data, err := f.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got PromptFrequencies
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("round trip changed value: %+v", got)
	}
}
