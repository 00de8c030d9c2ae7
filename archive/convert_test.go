package archive

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fogbound/wolfstory/playdata"
)

const testNS = "http://jindolf.sourceforge.jp/xml/ns/501"

// fixtureArchive is a small but complete village: two avatars, a
// prologue and one progress day with talks, an assault and events
// carrying every kind of typed child collection.
const fixtureArchive = `<?xml version="1.0" encoding="UTF-8"?>
<village xmlns="` + testNS + `"
  fullName="F1899 高嶺村" vid="1899" state="gameover"
  landName="人狼BBS:F国" formalName="人狼BBS F" landId="wolff"
  graveIconURI="plugin_wolf/img/face99.jpg">
<avatarList>
<avatar avatarId="gerd" fullName="楽天家 ゲルト" shortName="ゲルト" faceIconURI="plugin_wolf/img/face01.jpg"/>
<avatar avatarId="peter" fullName="少年 ペーター" shortName="ペーター"/>
</avatarList>
<period type="prologue" day="0" nextCommitDay="1" commitTime="08:15:00+09:00" sourceURI="index.rb?vid=1899&amp;meslog=0">
<startEntry><li>昼間は人間のふりをして、夜に正体を現すという人狼。</li></startEntry>
<onStage entryNo="1" avatarId="gerd"><li>1人目、楽天家 ゲルト。</li></onStage>
<talk type="public" avatarId="gerd" xname="mes1" time="08:15:00+09:00"><li>人狼なんているわけないじゃん。</li></talk>
<talk type="public" avatarId="peter" xname="mes2" time="09:30:10+09:00"><li>ねえ、本当に人狼がいるの？</li></talk>
</period>
<period type="progress" day="1" nextCommitDay="2" commitTime="08:15:00+09:00" sourceURI="index.rb?vid=1899&amp;meslog=1">
<talk type="public" avatarId="peter" xname="mes3" time="08:20:00+09:00"><li>朝だ。</li><li></li><li>誰か騙られている気がする。</li></talk>
<talk type="wolf" avatarId="peter" xname="mes4" time="22:00:00+09:00"><li>今夜はどうする。</li></talk>
<assault byWhom="peter" target="gerd" xname="mes5" time="02:00:00+09:00"><li>グルルルル……</li></assault>
<openRole><roleHeads role="innocent" heads="13"/><roleHeads role="wolf" heads="3"/></openRole>
<counting victim="gerd"><vote byWhom="peter" target="gerd"/><li>投票の結果。</li></counting>
<execution victim="gerd"><nominated avatarId="gerd" count="5"/><li>処刑。</li></execution>
<murdered><avatarRef avatarId="gerd"/><li>翌朝、無残な姿で発見された。</li></murdered>
<talk type="public" avatarId="gerd" xname="mes6" time="08:30:00+09:00"><li>最後の言葉。</li></talk>
</period>
</village>`

func convertFixture(t *testing.T, doc string) string {
	t.Helper()

	outDir := filepath.Join(t.TempDir(), "playdata")
	_, err := ConvertReader(context.Background(), strings.NewReader(doc), outDir, Options{})
	if err != nil {
		t.Fatalf("ConvertReader: %v", err)
	}
	return outDir
}

func readRecord(t *testing.T, path string) map[string]any {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var rec map[string]any
	if err := json.Unmarshal(b, &rec); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return rec
}

func elements(t *testing.T, rec map[string]any) []any {
	t.Helper()

	els, ok := rec[playdata.KeyElements].([]any)
	if !ok {
		t.Fatalf("elements missing or wrong shape: %T", rec[playdata.KeyElements])
	}
	return els
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	outDir := convertFixture(t, fixtureArchive)

	village := readRecord(t, filepath.Join(outDir, playdata.VillageFile))
	if got := village[playdata.KeyLandName]; got != "人狼BBS:F国" {
		t.Fatalf("landName=%v", got)
	}
	if got := village[playdata.KeyVid]; got != float64(1899) {
		t.Fatalf("vid=%v", got)
	}

	avatars, ok := village[playdata.KeyAvatarList].([]any)
	if !ok || len(avatars) != 2 {
		t.Fatalf("avatarList=%v", village[playdata.KeyAvatarList])
	}
	first := avatars[0].(map[string]any)
	if first[playdata.KeyAvatarID] != "gerd" || first[playdata.KeyShortName] != "ゲルト" {
		t.Fatalf("avatar[0]=%v", first)
	}

	periods, ok := village[playdata.KeyPeriods].([]any)
	if !ok || len(periods) != 2 {
		t.Fatalf("periods=%v", village[playdata.KeyPeriods])
	}
	p0 := periods[0].(map[string]any)
	if p0[playdata.KeyHref] != "period-0.json" || p0[playdata.KeyDay] != float64(0) {
		t.Fatalf("period summary 0=%v", p0)
	}

	deep := readRecord(t, filepath.Join(outDir, "period-0.json"))
	els := elements(t, deep)
	if len(els) != 4 {
		t.Fatalf("len(elements)=%d, want 4", len(els))
	}
	third := els[2].(map[string]any)
	lines := third[playdata.KeyLines].([]any)
	if lines[0] != "人狼なんているわけないじゃん。" {
		t.Fatalf("third element first line=%q", lines[0])
	}
}

func TestConvert_PublicTalkNumbering(t *testing.T) {
	t.Parallel()

	outDir := convertFixture(t, fixtureArchive)

	var got []int
	for _, name := range []string{"period-0.json", "period-1.json"} {
		for _, el := range elements(t, readRecord(t, filepath.Join(outDir, name))) {
			rec := el.(map[string]any)
			if rec[playdata.KeyType] != playdata.TypeTalk {
				continue
			}
			no, present := rec[playdata.KeyPublicTalkNo]
			if rec[playdata.KeyTalkType] == "public" {
				if !present {
					t.Fatalf("public talk without publicTalkNo: %v", rec)
				}
				got = append(got, int(no.(float64)))
			} else if present {
				t.Fatalf("non-public talk carries publicTalkNo: %v", rec)
			}
		}
	}

	if len(got) != 4 {
		t.Fatalf("public talks=%d, want 4", len(got))
	}
	for i, no := range got {
		if no != i+1 {
			t.Fatalf("publicTalkNo sequence=%v", got)
		}
	}
}

func TestConvert_VillageDefaults(t *testing.T) {
	t.Parallel()

	minimal := `<village xmlns="` + testNS + `" fullName="V" vid="1" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg"></village>`
	outDir := convertFixture(t, minimal)

	village := readRecord(t, filepath.Join(outDir, playdata.VillageFile))
	wantDefaults := map[string]any{
		playdata.KeyLang:         "ja-JP",
		playdata.KeyLocale:       "ja-JP",
		playdata.KeyDisclosure:   "complete",
		playdata.KeyIsValid:      true,
		playdata.KeyOrigEncoding: "Shift_JIS",
		playdata.KeyTimezone:     "GMT+09:00",
	}
	for key, want := range wantDefaults {
		if got := village[key]; got != want {
			t.Fatalf("%s=%v, want %v", key, got, want)
		}
	}
}

func TestConvert_VillageDefaultOverride(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V" vid="1" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg"
  lang="en-US" disclosure="hot" isValid="0" locale="en-US" origencoding="UTF-8" timezone="GMT+00:00"></village>`
	outDir := convertFixture(t, doc)

	village := readRecord(t, filepath.Join(outDir, playdata.VillageFile))
	if village[playdata.KeyLang] != "en-US" || village[playdata.KeyLocale] != "en-US" {
		t.Fatalf("lang/locale=%v/%v", village[playdata.KeyLang], village[playdata.KeyLocale])
	}
	if village[playdata.KeyDisclosure] != "hot" {
		t.Fatalf("disclosure=%v", village[playdata.KeyDisclosure])
	}
	if village[playdata.KeyIsValid] != false {
		t.Fatalf("isValid=%v", village[playdata.KeyIsValid])
	}
	if village[playdata.KeyOrigEncoding] != "UTF-8" || village[playdata.KeyTimezone] != "GMT+00:00" {
		t.Fatalf("origencoding/timezone=%v/%v", village[playdata.KeyOrigEncoding], village[playdata.KeyTimezone])
	}
}

func TestConvert_MissingMandatoryAttr(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V" vid="1"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg"></village>`
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := ConvertReader(context.Background(), strings.NewReader(doc), outDir, Options{})
	if !errors.Is(err, ErrMissingAttr) {
		t.Fatalf("err=%v, want ErrMissingAttr", err)
	}
	if !strings.Contains(err.Error(), "state") {
		t.Fatalf("err=%v, want it to cite \"state\"", err)
	}
}

func TestConvert_InvalidAttrValue(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V" vid="abc" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg"></village>`
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := ConvertReader(context.Background(), strings.NewReader(doc), outDir, Options{})
	if !errors.Is(err, ErrInvalidAttrValue) {
		t.Fatalf("err=%v, want ErrInvalidAttrValue", err)
	}
	if !strings.Contains(err.Error(), "vid") || !strings.Contains(err.Error(), "abc") {
		t.Fatalf("err=%v, want it to cite vid and the raw value", err)
	}
}

func TestConvert_MalformedXML(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V"`
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := ConvertReader(context.Background(), strings.NewReader(doc), outDir, Options{})
	if !errors.Is(err, ErrMalformedXML) {
		t.Fatalf("err=%v, want ErrMalformedXML", err)
	}
}

func TestConvert_SkipsUnknownElements(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V" vid="1" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg">
<mystery><deeply><nested>stuff</nested></deeply></mystery>
<avatarList>
<avatar avatarId="a" fullName="A" shortName="a"/>
<junk><more/></junk>
</avatarList>
<period type="prologue" day="0" nextCommitDay="1" commitTime="08:15:00+09:00" sourceURI="u">
<unknownEvent><li>not collected</li></unknownEvent>
<talk type="public" avatarId="a" xname="m1" time="08:15:00+09:00"><li>still here</li></talk>
</period>
</village>`
	outDir := convertFixture(t, doc)

	deep := readRecord(t, filepath.Join(outDir, "period-0.json"))
	els := elements(t, deep)
	if len(els) != 1 {
		t.Fatalf("len(elements)=%d, want only the talk", len(els))
	}
	talk := els[0].(map[string]any)
	if talk[playdata.KeyType] != playdata.TypeTalk {
		t.Fatalf("element=%v", talk)
	}
}

func TestConvert_AlternateNamespace(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="http://jindolf.sfo.jp/xml/ns/501" fullName="V" vid="1" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg"></village>`
	outDir := convertFixture(t, doc)
	village := readRecord(t, filepath.Join(outDir, playdata.VillageFile))
	if village[playdata.KeyFullName] != "V" {
		t.Fatalf("fullName=%v", village[playdata.KeyFullName])
	}
}

func TestConvert_ForeignRoot(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="http://example.com/other" fullName="V"/>`
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := ConvertReader(context.Background(), strings.NewReader(doc), outDir, Options{})
	if err == nil {
		t.Fatalf("expected error for foreign root namespace")
	}
}

func TestConvert_EventCollections(t *testing.T) {
	t.Parallel()

	outDir := convertFixture(t, fixtureArchive)
	els := elements(t, readRecord(t, filepath.Join(outDir, "period-1.json")))

	byType := map[string]map[string]any{}
	for _, el := range els {
		rec := el.(map[string]any)
		byType[rec[playdata.KeyType].(string)] = rec
	}

	openRole := byType["openRole"]
	heads := openRole[playdata.KeyRoleHeads].(map[string]any)
	if heads["innocent"] != float64(13) || heads["wolf"] != float64(3) {
		t.Fatalf("roleHeads=%v", heads)
	}

	counting := byType["counting"]
	if counting[playdata.KeyVictim] != "gerd" {
		t.Fatalf("counting victim=%v", counting[playdata.KeyVictim])
	}
	votes := counting[playdata.KeyVotes].(map[string]any)
	if votes["peter"] != "gerd" {
		t.Fatalf("votes=%v", votes)
	}

	execution := byType["execution"]
	nominated := execution[playdata.KeyNominated].(map[string]any)
	if nominated["gerd"] != float64(5) {
		t.Fatalf("nominated=%v", nominated)
	}

	murdered := byType["murdered"]
	ids := murdered[playdata.KeyAvatarIDs].([]any)
	if len(ids) != 1 || ids[0] != "gerd" {
		t.Fatalf("avatarIds=%v", ids)
	}

	assault := byType[playdata.TypeAssault]
	if assault[playdata.KeyByWhom] != "peter" || assault[playdata.KeyTarget] != "gerd" {
		t.Fatalf("assault=%v", assault)
	}
}

func TestConvert_RawdataInterleaving(t *testing.T) {
	t.Parallel()

	doc := `<village xmlns="` + testNS + `" fullName="V" vid="1" state="gameover"
  landName="L" formalName="FL" landId="l" graveIconURI="g.jpg">
<period type="prologue" day="0" nextCommitDay="1" commitTime="08:15:00+09:00" sourceURI="u">
<talk type="private" avatarId="a" xname="m1" time="08:15:00+09:00">
<li>前<rawdata encoding="Shift_JIS" hexBin="82A0">あ</rawdata>後</li>
<li></li>
<li>単独</li>
<li><rawdata encoding="Shift_JIS" hexBin="82A2">い</rawdata></li>
</talk>
</period>
</village>`
	outDir := convertFixture(t, doc)

	els := elements(t, readRecord(t, filepath.Join(outDir, "period-0.json")))
	talk := els[0].(map[string]any)
	lines := talk[playdata.KeyLines].([]any)
	if len(lines) != 4 {
		t.Fatalf("len(lines)=%d, want 4", len(lines))
	}

	interleaved, ok := lines[0].([]any)
	if !ok || len(interleaved) != 3 {
		t.Fatalf("lines[0]=%v, want 3-piece array", lines[0])
	}
	if interleaved[0] != "前" || interleaved[2] != "後" {
		t.Fatalf("interleaved=%v", interleaved)
	}
	rd := interleaved[1].(map[string]any)
	if rd[playdata.KeyEncoding] != "Shift_JIS" || rd[playdata.KeyHexBin] != "82A0" || rd[playdata.KeyChar] != "あ" {
		t.Fatalf("rawdata=%v", rd)
	}

	if lines[1] != "" {
		t.Fatalf("empty li=%v, want \"\"", lines[1])
	}
	if lines[2] != "単独" {
		t.Fatalf("single text li=%v", lines[2])
	}
	if rd, ok := lines[3].(map[string]any); !ok || rd[playdata.KeyChar] != "い" {
		t.Fatalf("single rawdata li=%v", lines[3])
	}
}
