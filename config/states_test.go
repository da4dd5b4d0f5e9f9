package config

import (
	"errors"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"", Standard},
		{"red", Standard},
		{"Yellow", SpeedBoost},
		{" splitter ", Splitter},
		{"blue", Splitter},
		{"black", Shaker},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseVariant("green"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(green) err = %v, want ErrUnknownVariant", err)
	}
}

func TestProjectilesCoverEveryVariant(t *testing.T) {
	for _, v := range []Variant{Standard, SpeedBoost, Splitter, Shaker} {
		pc, ok := Projectiles[v]
		if !ok || pc.Radius <= 0 || pc.Density <= 0 {
			t.Errorf("Projectiles[%s] = %+v, %v", v, pc, ok)
		}
	}
}
