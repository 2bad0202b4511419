package buffer

import "testing"

func TestNew_SplitsIntoClusters(t *testing.T) {
	b := New("a\r\nb", Options{})
	if got, want := b.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got, want := b.Text(), "a\r\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestTextIn_ClampsRange(t *testing.T) {
	b := New("hello", Options{})
	if got, want := b.TextIn(Range{Location: 1, Length: 3}), "ell"; got != want {
		t.Fatalf("text in=%q, want %q", got, want)
	}
	if got, want := b.TextIn(Range{Location: 3, Length: 99}), "lo"; got != want {
		t.Fatalf("text in past end=%q, want %q", got, want)
	}
	if got := b.TextIn(Range{Location: -4, Length: 2}); got != "" {
		t.Fatalf("text in before start=%q, want empty", got)
	}
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		in   Range
		n    int
		want Range
	}{
		{in: Range{Location: 2, Length: 2}, n: 5, want: Range{Location: 2, Length: 2}},
		{in: Range{Location: 4, Length: 9}, n: 5, want: Range{Location: 4, Length: 1}},
		{in: Range{Location: 9, Length: 1}, n: 5, want: Range{Location: 5, Length: 0}},
		{in: Range{Location: 3, Length: -2}, n: 5, want: Range{Location: 1, Length: 2}},
		{in: Range{Location: -1, Length: 3}, n: 5, want: Range{Location: 0, Length: 2}},
	}
	for _, tc := range cases {
		if got := ClampRange(tc.in, tc.n); got != tc.want {
			t.Fatalf("ClampRange(%v, %d)=%v, want %v", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestSetSelection_PlacesCursorAtEnd(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Location: 1, Length: 3})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if got, want := r, (Range{Location: 1, Length: 3}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	v := b.Version()
	b.SetSelection(Range{Location: 1, Length: 3})
	if b.Version() != v {
		t.Fatalf("re-setting same selection bumped version")
	}

	b.SetSelection(Range{Location: 2})
	if _, ok := b.Selection(); ok {
		t.Fatalf("empty selection should clear")
	}
}

func TestTypingStyle_FollowsCursor(t *testing.T) {
	list := &ParagraphStyle{TextLists: []TextList{{Format: MarkerDecimal, StartingItemNumber: 1}}}
	b := New("ab\ncd", Options{})
	b.SetParagraphStyle(Range{Location: 0, Length: 3}, list)

	b.SetCursor(2)
	if got := b.TypingStyle(); got != list {
		t.Fatalf("typing style after cursor in list=%v, want list style", got)
	}

	b.SetCursor(5)
	if got := b.TypingStyle(); got != nil {
		t.Fatalf("typing style in plain paragraph=%v, want nil", got)
	}

	b.SetCursor(0)
	if got := b.TypingStyle(); got != list {
		t.Fatalf("typing style at doc start=%v, want first cluster style", got)
	}
}

func TestTypingStyle_AppliedToInsertedText(t *testing.T) {
	list := &ParagraphStyle{TextLists: []TextList{{StartingItemNumber: 3}}}
	b := New("", Options{TypingStyle: list})
	b.InsertText("xy")

	for i := 0; i < b.Len(); i++ {
		s, ok := b.ParagraphStyleAt(i)
		if !ok || s != list {
			t.Fatalf("style at %d=%v, want typing style", i, s)
		}
	}

	b.SetTypingStyle(nil)
	b.InsertText("z")
	if _, ok := b.ParagraphStyleAt(2); ok {
		t.Fatalf("expected no style after clearing typing style")
	}
}
