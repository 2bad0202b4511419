package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if got, want := Join(got), text; got != want {
		t.Fatalf("join=%q, want %q", got, want)
	}
}

func TestSplit_CRLFIsOneCluster(t *testing.T) {
	got := Split("a\r\nb")
	if len(got) != 3 {
		t.Fatalf("split len=%d, want %d", len(got), 3)
	}
	if got[1] != "\r\n" {
		t.Fatalf("split[1]=%q, want CRLF", got[1])
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}

	cases := []struct {
		cluster string
		want    bool
	}{
		{cluster: "7", want: true},
		{cluster: "\u0663", want: true}, // Arabic-Indic three
		{cluster: "7\u20e3", want: false},
		{cluster: "\t", want: false},
		{cluster: "x", want: false},
		{cluster: "", want: false},
	}
	for _, tc := range cases {
		if got := IsDigit(tc.cluster); got != tc.want {
			t.Fatalf("IsDigit(%q): got %v, want %v", tc.cluster, got, tc.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got, want := Width("a"), 1; got != want {
		t.Fatalf("width(a)=%d, want %d", got, want)
	}
	if got, want := Width("\u4e2d"), 2; got != want {
		t.Fatalf("width(CJK)=%d, want %d", got, want)
	}
}
