package text

import (
	"sync"
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"
)

// TestGoTextShaper_Advance verifies advances grow with text length and size.
func TestGoTextShaper_Advance(t *testing.T) {
	src := testSource(t, goregular.TTF)
	shaper := NewGoTextShaper()

	tests := []struct {
		name  string
		short string
		long  string
	}{
		{"latin", "Hel", "Hello"},
		{"digits", "12", "12345"},
		{"punctuation", "Hi", "Hi, World!"},
		{"cyrillic", "При", "Привет"},
		{"greek", "Γει", "Γειά σου"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			short := shaper.Advance(src, tt.short, 16)
			long := shaper.Advance(src, tt.long, 16)
			if short <= 0 {
				t.Fatalf("Advance(%q) = %g, want > 0", tt.short, short)
			}
			if long <= short {
				t.Errorf("Advance(%q) = %g, want > Advance(%q) = %g", tt.long, long, tt.short, short)
			}
			if big := shaper.Advance(src, tt.long, 32); big <= long {
				t.Errorf("Advance at 32 = %g, want > %g at 16", big, long)
			}
		})
	}
}

// TestGoTextShaper_Empty covers inputs that produce no glyphs.
func TestGoTextShaper_Empty(t *testing.T) {
	src := testSource(t, goregular.TTF)
	shaper := NewGoTextShaper()

	if got := shaper.Advance(src, "", 16); got != 0 {
		t.Errorf("Advance(\"\") = %g, want 0", got)
	}
	if got := shaper.Advance(nil, "abc", 16); got != 0 {
		t.Errorf("Advance(nil source) = %g, want 0", got)
	}
}

// TestGoTextShaper_Concurrent shapes from many goroutines; run with -race.
func TestGoTextShaper_Concurrent(t *testing.T) {
	src := testSource(t, goregular.TTF)
	shaper := NewGoTextShaper()
	want := shaper.Advance(src, "Concurrent", 14)

	const goroutines = 32
	var wg sync.WaitGroup
	got := make([]float64, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = shaper.Advance(src, "Concurrent", 14)
		}()
	}
	wg.Wait()

	for i, g := range got {
		if g != want {
			t.Errorf("goroutine %d: Advance = %g, want %g", i, g, want)
		}
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		text string
		want language.Script
	}{
		{"  abc", language.Latin},
		{"\tПривет", language.Cyrillic},
		{"Γειά", language.Greek},
		{"   ", language.Latin},
	}
	for _, tt := range tests {
		if got := detectScript([]rune(tt.text)); got != tt.want {
			t.Errorf("detectScript(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
