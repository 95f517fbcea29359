package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/instantiate"
)

// stateSummary renders s as one line per instance ("name @ location")
// sorted by instance name, followed by the DBM's aligned matrix — the
// CLI's `state` view (spec.md §6.3).
func stateSummary(s *engine.State) string {
	byName := make(map[string]*instantiate.Instance, len(s.Instances))
	names := make([]string, len(s.Instances))
	for i, inst := range s.Instances {
		names[i] = inst.Name
		byName[inst.Name] = inst
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		inst := byName[name]
		loc := inst.Template.Locations[inst.Active]
		fmt.Fprintf(&b, "%s @ %s\n", inst.Name, loc.Name)
	}
	b.WriteString(s.DBM.String())
	return b.String()
}

// rawDump renders s with go-spew, for the `state -v`-equivalent detail a
// plain stateSummary can't show (exact Go types, pointer identity of
// shared immutable Template/System nodes).
func rawDump(s *engine.State) string {
	return spew.Sdump(s)
}

// stepDiff renders a unified diff between two states' summaries, the
// per-step view printed after each `t<i>` and after each step of `r`.
func stepDiff(before, after *engine.State) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(stateSummary(before)),
		B:        difflib.SplitLines(stateSummary(after)),
		FromFile: "before",
		ToFile:   "after",
		Context:  2,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// enabledSummary lists each currently enabled transition's index and the
// edges it fires, the index space `t<i>` addresses.
func enabledSummary(outcomes []engine.Outcome) string {
	if len(outcomes) == 0 {
		return "(no enabled transitions)\n"
	}
	var b strings.Builder
	for i, o := range outcomes {
		fmt.Fprintf(&b, "t%d:", i)
		for _, f := range o.Transition.Fired {
			fmt.Fprintf(&b, " %s/%s", f.Instance, f.EdgeID)
		}
		b.WriteString("\n")
	}
	return b.String()
}
