package othello

import (
	"errors"
	"strings"
	"testing"
)

func TestNotationStartingPositions(t *testing.T) {
	for size, want := range map[int]string{6: StartingPosition6, 8: StartingPosition8} {
		pos := mustPosition(t, size)
		if got := pos.Notation(); got != want {
			t.Errorf("size %d: notation = %s, want %s", size, got, want)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	positions := []string{
		StartingPosition6,
		StartingPosition8,
		"ld4/6/6/6/6/6 d",
		"2l5/1ldl3l/1dddddd1/ldlddl2/1ddlld2/2lddl2/3ld3/8 d",
		"16/16/16/16/16/16/16/7ld7/7dl7/16/16/16/16/16/16/16 l",
	}

	for _, notation := range positions {
		t.Run(strings.ReplaceAll(notation, "/", "|"), func(t *testing.T) {
			pos := mustNotation(t, notation)
			if got := pos.Notation(); got != notation {
				t.Errorf("round trip = %s, want %s", got, notation)
			}
			checkConservation(t, pos)
		})
	}
}

func TestFromNotationErrors(t *testing.T) {
	invalid := []string{
		"",
		"6/6/2ld2/2dl2/6/6",
		"6/6/2ld2/2dl2/6/6 x",
		"6/6/2ld2/2dl2/6 l",
		"6/6/2ld2/2dl3/6/6 l",
		"6/6/2lq2/2dl2/6/6 l",
		"5/5/5/5/5 l",
		"6/6/2ldddd/2dl2/6/6 l",
		"99/6/6/6/6/6 l",
		"d9223372036854775807" + strings.Repeat("d", 130) + "/4/1ld1/1dl1 l",
		"99999999999999999999999/4/1ld1/1dl1 l",
	}

	for _, notation := range invalid {
		if _, err := FromNotation(notation, Dark); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("%q: err = %v, want ErrInvalidNotation", notation, err)
		}
	}
}

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{NewPos(0, 0), "a1"},
		{NewPos(2, 3), "d3"},
		{NewPos(7, 7), "h8"},
		{NewPos(11, 15), "p12"},
		{PassMove, "pass"},
	}

	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("%v.String() = %s, want %s", tt.pos, got, tt.want)
		}
		parsed, err := ParsePos(tt.want)
		if err != nil || parsed != tt.pos {
			t.Errorf("ParsePos(%s) = %v, %v", tt.want, parsed, err)
		}
	}

	for _, bad := range []string{"", "a", "1a", "a0", "a17", "ab"} {
		if _, err := ParsePos(bad); err == nil {
			t.Errorf("ParsePos(%q) should fail", bad)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, s := range []string{"dark", "Black", "d", "B"} {
		if side, err := ParseSide(s); err != nil || side != Dark {
			t.Errorf("ParseSide(%q) = %s, %v", s, side, err)
		}
	}
	for _, s := range []string{"light", "WHITE", "l", "w"} {
		if side, err := ParseSide(s); err != nil || side != Light {
			t.Errorf("ParseSide(%q) = %s, %v", s, side, err)
		}
	}
	if _, err := ParseSide("grey"); err == nil {
		t.Error("ParseSide(grey) should fail")
	}
}
