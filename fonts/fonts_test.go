package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(16); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get of an unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 12); err == nil {
		t.Error("LoadFontWithSize with garbage: err = nil")
	}
}
