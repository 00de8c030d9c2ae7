// Command story-dump loads a playdata directory back through the typed
// story model and prints either the story index or one period's
// elements. Kind-specific event extras (role tallies, vote maps,
// victim lists) are read straight from the intermediate artifacts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fogbound/wolfstory/playdata"
	"github.com/fogbound/wolfstory/story"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	s, err := story.NewStoryFromFile(filepath.Join(cfg.DataDir, playdata.VillageFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if cfg.Day < 0 {
		dumpIndex(s)
		return
	}
	if err := dumpPeriod(s, cfg.DataDir, cfg.Day); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func dumpIndex(s *story.Story) {
	fmt.Printf("%s (%s)\n", s.FullName, s.LandName)
	fmt.Printf("avatars=%d periods=%d\n", len(s.Avatars()), len(s.Periods))
	for _, av := range s.Avatars() {
		fmt.Printf("  %-12s %s (%s)\n", av.AvatarID, av.FullName, av.ShortName)
	}
	for _, ref := range s.Periods {
		fmt.Printf("  day %d (%s) -> %s\n", ref.Day, ref.Type, ref.Href)
	}
}

func dumpPeriod(s *story.Story, dir string, day int) error {
	var ref story.PeriodRef
	found := false
	for _, r := range s.Periods {
		if r.Day == day {
			ref, found = r, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no period with day %d", day)
	}

	p, err := s.LoadPeriod(ref)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(filepath.Join(dir, ref.Href))
	if err != nil {
		return err
	}

	fmt.Printf("day %d (%s), %d elements\n", p.Day, p.Type, len(p.Elements))
	for i, el := range p.Elements {
		switch e := el.(type) {
		case *story.WolfAttackTalk:
			fmt.Printf("[%s] %s (assault): %s\n", e.Time, e.Speaker.ShortName, firstLine(e.Lines()))
		case *story.Talk:
			no := ""
			if e.PublicTalkNo > 0 {
				no = fmt.Sprintf(" #%d", e.PublicTalkNo)
			}
			fmt.Printf("[%s]%s %s: %s\n", e.Time, no, e.Speaker.ShortName, firstLine(e.Lines()))
		case *story.StoryEvent:
			fmt.Printf("<%s/%s> %s\n", e.Type, e.Family, firstLine(e.Lines()))
			printExtras(raw, i)
		}
	}
	return nil
}

func printExtras(raw []byte, i int) {
	if heads := playdata.RoleHeads(raw, i); len(heads) > 0 {
		for _, role := range sortedKeys(heads) {
			fmt.Printf("    role %s: %d\n", role, heads[role])
		}
	}
	if votes := playdata.Votes(raw, i); len(votes) > 0 {
		for _, who := range sortedKeys(votes) {
			fmt.Printf("    vote %s -> %s\n", who, votes[who])
		}
	}
	if nominated := playdata.Nominated(raw, i); len(nominated) > 0 {
		for _, who := range sortedKeys(nominated) {
			fmt.Printf("    nominated %s: %d\n", who, nominated[who])
		}
	}
	if ids := playdata.AvatarRefs(raw, i); len(ids) > 0 {
		fmt.Printf("    avatars: %v\n", ids)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
