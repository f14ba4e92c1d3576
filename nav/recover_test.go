package nav

import "testing"

func TestRecover(t *testing.T) {
	tests := []struct {
		name    string
		current ID
		known   []string
		active  string
		want    ID
	}{
		{
			name:    "stale image moves to active master",
			current: ImageID("stale"),
			known:   []string{"img-1", "img-2"},
			active:  "img-2",
			want:    ImageID("img-2"),
		},
		{
			name:    "stale image with no active falls back to artboard",
			current: ImageID("stale"),
			known:   nil,
			active:  "",
			want:    ArtboardID(),
		},
		{
			name:    "artboard selection unaffected by image changes",
			current: ArtboardID(),
			known:   []string{"img-1"},
			active:  "img-1",
			want:    ArtboardID(),
		},
		{
			name:    "no selection passes through",
			current: ID{},
			known:   []string{"img-1"},
			active:  "img-1",
			want:    ID{},
		},
		{
			name:    "valid image selection kept",
			current: ImageID("img-1"),
			known:   []string{"img-1", "img-2"},
			active:  "img-2",
			want:    ImageID("img-1"),
		},
		{
			name:    "filter under surviving image kept",
			current: FilterID("img-1", "flt-7"),
			known:   []string{"img-1"},
			active:  "img-1",
			want:    FilterID("img-1", "flt-7"),
		},
		{
			name:    "filter under deleted image moves to active master",
			current: FilterID("gone", "flt-7"),
			known:   []string{"img-1"},
			active:  "img-1",
			want:    ImageID("img-1"),
		},
		{
			name:    "filter under deleted image with no active falls back",
			current: FilterID("gone", "flt-7"),
			known:   nil,
			active:  "",
			want:    ArtboardID(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recover(tt.current, tt.known, tt.active)
			if got != tt.want {
				t.Errorf("Recover(%v, %v, %q) = %v, want %v",
					tt.current, tt.known, tt.active, got, tt.want)
			}
		})
	}
}

// Recovery is referentially transparent: re-running it on its own
// output with the same state is a no-op.
func TestRecoverStable(t *testing.T) {
	known := []string{"img-1"}
	first := Recover(ImageID("stale"), known, "img-1")
	second := Recover(first, known, "img-1")
	if first != second {
		t.Errorf("recovery not stable: %v then %v", first, second)
	}
}
