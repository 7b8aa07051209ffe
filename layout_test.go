package zeste

import "testing"

func TestLayoutPadToAlign(t *testing.T) {
	tests := []struct {
		name string
		in   Layout
		want uintptr
	}{
		{"already aligned", Layout{Size: 8, Align: 8}, 8},
		{"needs one pad word", Layout{Size: 5, Align: 4}, 8},
		{"zero align passthrough", Layout{Size: 3, Align: 0}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.PadToAlign().Size
			if got != tt.want {
				t.Fatalf("PadToAlign().Size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutRepeat(t *testing.T) {
	l := Layout{Size: 5, Align: 4}
	got := l.Repeat(3)
	if got.Size != 8*3 {
		t.Fatalf("Repeat(3).Size = %d, want %d", got.Size, 8*3)
	}
	if got.Align != 4 {
		t.Fatalf("Repeat(3).Align = %d, want 4", got.Align)
	}
}

func TestLayoutOf(t *testing.T) {
	type pair struct {
		A uint8
		B uint32
	}
	l := LayoutOf[pair]()
	if l.Align != 4 {
		t.Fatalf("LayoutOf[pair]().Align = %d, want 4", l.Align)
	}
	if l.Size < 5 {
		t.Fatalf("LayoutOf[pair]().Size = %d, too small", l.Size)
	}
}
