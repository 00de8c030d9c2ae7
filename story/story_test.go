package story

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/sjson"

	"github.com/fogbound/wolfstory/playdata"
)

const fixtureVillage = `{
  "fullName": "F1899 高嶺村",
  "landName": "人狼BBS:F国",
  "graveIconURI": "plugin_wolf/img/face99.jpg",
  "origencoding": "Shift_JIS",
  "avatarList": [
    {"avatarId": "gerd", "fullName": "楽天家 ゲルト", "shortName": "ゲルト", "faceIconURI": "img/face01.jpg"},
    {"avatarId": "peter", "fullName": "少年 ペーター", "shortName": "ペーター"}
  ],
  "periods": [
    {"type": "prologue", "day": 0, "href": "period-0.json"},
    {"type": "progress", "day": 1, "href": "period-1.json"}
  ]
}`

func buildStory(t *testing.T, raw string) (*Story, error) {
	t.Helper()

	var doc playdata.VillageDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal village fixture: %v", err)
	}
	return NewStory(&doc, t.TempDir())
}

func mustDelete(t *testing.T, raw, path string) string {
	t.Helper()

	out, err := sjson.Delete(raw, path)
	if err != nil {
		t.Fatalf("sjson.Delete(%s): %v", path, err)
	}
	return out
}

func mustSet(t *testing.T, raw, path string, v any) string {
	t.Helper()

	out, err := sjson.Set(raw, path, v)
	if err != nil {
		t.Fatalf("sjson.Set(%s): %v", path, err)
	}
	return out
}

func TestNewStory(t *testing.T) {
	t.Parallel()

	s, err := buildStory(t, fixtureVillage)
	if err != nil {
		t.Fatalf("NewStory: %v", err)
	}
	if s.FullName != "F1899 高嶺村" || s.LandName != "人狼BBS:F国" {
		t.Fatalf("story=%+v", s)
	}
	if s.OrigEncoding != "Shift_JIS" {
		t.Fatalf("origencoding=%q", s.OrigEncoding)
	}

	if len(s.Avatars()) != 2 {
		t.Fatalf("avatars=%d", len(s.Avatars()))
	}
	gerd, ok := s.Avatar("gerd")
	if !ok || gerd.ShortName != "ゲルト" || gerd.FaceIconURI != "img/face01.jpg" {
		t.Fatalf("avatar gerd=%+v (ok=%v)", gerd, ok)
	}
	if _, ok := s.Avatar("nobody"); ok {
		t.Fatalf("unexpected avatar resolution")
	}

	if len(s.Periods) != 2 {
		t.Fatalf("periods=%d", len(s.Periods))
	}
	if s.Periods[0].Type != PeriodPrologue || s.Periods[0].Day != 0 || s.Periods[0].Href != "period-0.json" {
		t.Fatalf("period ref 0=%+v", s.Periods[0])
	}
	if s.Periods[1].Type != PeriodProgress {
		t.Fatalf("period ref 1=%+v", s.Periods[1])
	}
}

func TestNewStory_MissingData(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"fullName":         mustDelete(t, fixtureVillage, "fullName"),
		"graveIconURI":     mustDelete(t, fixtureVillage, "graveIconURI"),
		"avatarList":       mustDelete(t, fixtureVillage, "avatarList"),
		"periods":          mustDelete(t, fixtureVillage, "periods"),
		"avatar shortName": mustDelete(t, fixtureVillage, "avatarList.1.shortName"),
		"period href":      mustDelete(t, fixtureVillage, "periods.0.href"),
	}
	for name, raw := range cases {
		if _, err := buildStory(t, raw); !errors.Is(err, ErrMissingData) {
			t.Fatalf("%s: err=%v, want ErrMissingData", name, err)
		}
	}
}

func TestNewStory_UnknownPeriodType(t *testing.T) {
	t.Parallel()

	raw := mustSet(t, fixtureVillage, "periods.0.type", "weird")
	_, err := buildStory(t, raw)
	if !errors.Is(err, ErrUnknownValue) {
		t.Fatalf("err=%v, want ErrUnknownValue", err)
	}
	if !strings.Contains(err.Error(), "weird") {
		t.Fatalf("err=%v, want it to cite the raw value", err)
	}
}

func TestNewStory_DuplicateAvatarID(t *testing.T) {
	t.Parallel()

	raw := mustSet(t, fixtureVillage, "avatarList.1.avatarId", "gerd")
	if _, err := buildStory(t, raw); !errors.Is(err, ErrUnknownValue) {
		t.Fatalf("err=%v, want ErrUnknownValue", err)
	}
}

func TestNewStoryFromFile_AndLoadPeriod(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, playdata.VillageFile), []byte(fixtureVillage), 0o644); err != nil {
		t.Fatalf("write village: %v", err)
	}
	period := `{"type":"prologue","day":0,"elements":[{"type":"startEntry","lines":["はじまり"]}]}`
	if err := os.WriteFile(filepath.Join(dir, "period-0.json"), []byte(period), 0o644); err != nil {
		t.Fatalf("write period: %v", err)
	}

	s, err := NewStoryFromFile(filepath.Join(dir, playdata.VillageFile))
	if err != nil {
		t.Fatalf("NewStoryFromFile: %v", err)
	}

	p, err := s.LoadPeriod(s.Periods[0])
	if err != nil {
		t.Fatalf("LoadPeriod: %v", err)
	}
	if p.Day != 0 || p.Type != PeriodPrologue || len(p.Elements) != 1 {
		t.Fatalf("period=%+v", p)
	}
	if p.Story() != s {
		t.Fatalf("period back-reference broken")
	}

	// period-1.json was never written.
	if _, err := s.LoadPeriod(s.Periods[1]); !errors.Is(err, ErrCannotLoad) {
		t.Fatalf("err=%v, want ErrCannotLoad", err)
	}
}

func TestNewStoryFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewStoryFromFile(filepath.Join(t.TempDir(), playdata.VillageFile))
	if !errors.Is(err, ErrCannotLoad) {
		t.Fatalf("err=%v, want ErrCannotLoad", err)
	}
}
