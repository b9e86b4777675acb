package assets

import (
	"strings"
	"testing"
)

func TestLocalFilename(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		preferExt string
		want      string
	}{
		{
			name: "plain path keeps base name",
			url:  "https://framerusercontent.com/images/pic.png",
			want: "pic.png",
		},
		{
			name: "query string inserts hash fragment",
			url:  "https://framerusercontent.com/images/pic.png?scale=0.5",
			want: "pic.3ab49c.png",
		},
		{
			name: "framer sized image with query",
			url:  "https://framerusercontent.com/sizes/WqTSOIZ3eBvUwyjramOpBPCLg.jpg?scale=1024",
			want: "WqTSOIZ3eBvUwyjramOpBPCLg.2256ee.jpg",
		},
		{
			name:      "missing extension takes preferred",
			url:       "https://framerusercontent.com/modules/runtime",
			preferExt: ".mjs",
			want:      "runtime.mjs",
		},
		{
			name:      "preferred extension without leading dot",
			url:       "https://framerusercontent.com/modules/runtime",
			preferExt: "mjs",
			want:      "runtime.mjs",
		},
		{
			name:      "path extension wins over preferred",
			url:       "https://framerusercontent.com/images/pic.png",
			preferExt: ".jpg",
			want:      "pic.png",
		},
		{
			name: "empty path falls back to hashed name",
			url:  "https://framerusercontent.com/",
			want: "asset-74823a9c2c.bin",
		},
		{
			name: "unparseable URL falls back to hashed name",
			url:  "https://framerusercontent.com/images/pic%zz.png",
			want: "asset-1c9c573ef7.bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalFilename(tt.url, tt.preferExt); got != tt.want {
				t.Errorf("LocalFilename() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalFilename_Deterministic(t *testing.T) {
	url := "https://framerusercontent.com/images/pic.png?scale=0.5"

	first := LocalFilename(url, "")
	for i := 0; i < 10; i++ {
		if got := LocalFilename(url, ""); got != first {
			t.Fatalf("LocalFilename() = %v on repeat, want %v", got, first)
		}
	}
}

func TestLocalFilename_QueryCollisionAvoidance(t *testing.T) {
	a := LocalFilename("https://framerusercontent.com/images/img.png?a=1", "")
	b := LocalFilename("https://framerusercontent.com/images/img.png?a=2", "")

	if a == b {
		t.Errorf("expected distinct filenames, both derived %v", a)
	}
	if !strings.HasPrefix(a, "img.") || !strings.HasPrefix(b, "img.") {
		t.Errorf("expected shared stem img., got %v and %v", a, b)
	}
	if !strings.HasSuffix(a, ".png") || !strings.HasSuffix(b, ".png") {
		t.Errorf("expected shared extension .png, got %v and %v", a, b)
	}
}
