package mock

import (
	"reflect"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"two sentences", "AI is transforming work. It raises ethical questions.", []string{"AI is transforming work.", "It raises ethical questions."}},
		{"mixed terminators", "Really? Yes!  Absolutely.\nDone", []string{"Really?", "Yes!", "Absolutely.", "Done"}},
		{"no terminator", "just some words without an end", []string{"just some words without an end"}},
		{"terminator without space", "version 1.2.3 is out", []string{"version 1.2.3 is out"}},
		{"ellipsis", "Wait... what happened", []string{"Wait...", "what happened"}},
		{"surrounding whitespace", "  First one.   Second one.  ", []string{"First one.", "Second one."}},
		{"empty", "", nil},
		{"whitespace only", " \n\t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}
