package playdata

import "testing"

func TestPeriodFileName(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "period-0.json", 1: "period-1.json", 12: "period-12.json"}
	for day, want := range cases {
		if got := PeriodFileName(day); got != want {
			t.Fatalf("PeriodFileName(%d)=%q, want %q", day, got, want)
		}
	}
}

const fixturePeriod = `{
  "type": "progress",
  "day": 2,
  "elements": [
    {"type": "openRole", "lines": [], "roleHeads": {"innocent": 13, "wolf": 3}},
    {"type": "counting", "victim": "gerd", "lines": [], "votes": {"peter": "gerd", "liesa": "gerd"}},
    {"type": "execution", "lines": [], "nominated": {"gerd": 5, "peter": 1}},
    {"type": "murdered", "lines": ["next morning"], "avatarIds": ["gerd", "liesa"]},
    {"type": "talk", "talkType": "public", "lines": ["hello"]}
  ]
}`

func TestQueryAccessors(t *testing.T) {
	t.Parallel()

	raw := []byte(fixturePeriod)

	if n := ElementCount(raw); n != 5 {
		t.Fatalf("ElementCount=%d", n)
	}
	if typ := ElementType(raw, 1); typ != "counting" {
		t.Fatalf("ElementType(1)=%q", typ)
	}
	if typ := ElementType(raw, 99); typ != "" {
		t.Fatalf("ElementType(99)=%q, want empty", typ)
	}

	heads := RoleHeads(raw, 0)
	if heads["innocent"] != 13 || heads["wolf"] != 3 {
		t.Fatalf("RoleHeads=%v", heads)
	}
	if RoleHeads(raw, 1) != nil {
		t.Fatalf("RoleHeads on counting should be nil")
	}

	votes := Votes(raw, 1)
	if votes["peter"] != "gerd" || votes["liesa"] != "gerd" {
		t.Fatalf("Votes=%v", votes)
	}

	nominated := Nominated(raw, 2)
	if nominated["gerd"] != 5 || nominated["peter"] != 1 {
		t.Fatalf("Nominated=%v", nominated)
	}

	ids := AvatarRefs(raw, 3)
	if len(ids) != 2 || ids[0] != "gerd" || ids[1] != "liesa" {
		t.Fatalf("AvatarRefs=%v", ids)
	}
	if AvatarRefs(raw, 4) != nil {
		t.Fatalf("AvatarRefs on talk should be nil")
	}
}
