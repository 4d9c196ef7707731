package constants

import "testing"

func TestIsImageExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".jpg", true},
		{"jpg", true},
		{".JPEG", true},
		{".PNG", true},
		{".bmp", true},
		{".tif", true},
		{".tiff", true},
		{".gif", false},
		{".pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsImageExt(tt.ext); got != tt.want {
			t.Errorf("IsImageExt(%q): got %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		suffix string
		want   string
	}{
		{"default suffix", "/in/photo.jpg", "", "/out/photo_ocr.md"},
		{"custom suffix", "/in/photo.jpg", "_text.md", "/out/photo_text.md"},
		{"dotted stem", "/in/scan.v2.png", "", "/out/scan.v2_ocr.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArtifactPath("/out", tt.source, tt.suffix); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"general", ModeGeneral, true},
		{"Accurate", ModeAccurate, true},
		{" table ", ModeTable, true},
		{"HANDWRITING", ModeHandwriting, true},
		{"fast", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q): got (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
