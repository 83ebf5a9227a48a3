package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateText fuzzes TruncateText with random text and widths.
func FuzzTruncateText(f *testing.F) {
	f.Add("Khabib Nurmagomedov", 10)
	f.Add("", 0)
	f.Add("Zé", 4)
	f.Add("abc", -1)

	f.Fuzz(func(t *testing.T, text string, width int) {
		got := TruncateText(text, width)
		n := utf8.RuneCountInString(text)
		if width > 3 && n > width && utf8.RuneCountInString(got) != width {
			t.Fatalf("TruncateText(%q, %d) = %q, want %d runes", text, width, got, width)
		}
		if (width <= 3 || n <= width) && got != text {
			t.Fatalf("TruncateText(%q, %d) changed text to %q", text, width, got)
		}
	})
}
