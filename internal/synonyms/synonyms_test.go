package synonyms

import "testing"

func TestTableGroupsCanonicalNameWithAliases(t *testing.T) {
	table := Table()

	golangSynonyms := table["golang"]
	if !contains(golangSynonyms, "go") {
		t.Fatalf("table[golang] = %v, want it to include the canonical name %q", golangSynonyms, "go")
	}
}

func TestTableGroupingIsBidirectional(t *testing.T) {
	table := Table()

	if !contains(table["go"], "golang") {
		t.Fatalf("table[go] = %v, want it to include alias %q", table["go"], "golang")
	}
	if !contains(table["golang"], "go") {
		t.Fatalf("table[golang] = %v, want it to include canonical %q", table["golang"], "go")
	}
}

func TestTableEntryNeverContainsItself(t *testing.T) {
	table := Table()
	for key, group := range table {
		if contains(group, key) {
			t.Fatalf("table[%q] = %v contains itself", key, group)
		}
	}
}

func TestTableHasNoDuplicateEntriesPerGroup(t *testing.T) {
	table := Table()
	for key, group := range table {
		seen := make(map[string]bool, len(group))
		for _, v := range group {
			if seen[v] {
				t.Fatalf("table[%q] = %v has a duplicate entry %q", key, group, v)
			}
			seen[v] = true
		}
	}
}

func TestCanonicalizeResolvesAliasToCanonicalName(t *testing.T) {
	canonical, category, ok := Canonicalize("golang")
	if !ok {
		t.Fatal("Canonicalize(golang) ok = false, want true")
	}
	if canonical != "Go" {
		t.Fatalf("Canonicalize(golang) canonical = %q, want Go", canonical)
	}
	if category != CategoryLanguage {
		t.Fatalf("Canonicalize(golang) category = %q, want %q", category, CategoryLanguage)
	}
}

func TestCanonicalizeIsCaseAndWhitespaceInsensitive(t *testing.T) {
	canonical, _, ok := Canonicalize("  ReactJS  ")
	if !ok || canonical != "React" {
		t.Fatalf("Canonicalize(  ReactJS  ) = (%q, %v), want (React, true)", canonical, ok)
	}
}

func TestCanonicalizeUnknownTokenReturnsFalse(t *testing.T) {
	if _, _, ok := Canonicalize("underwater basket weaving"); ok {
		t.Fatal("Canonicalize(unknown) ok = true, want false")
	}
}

func TestIsSoftSkillClassifiesLeadershipAsSoft(t *testing.T) {
	_, category, ok := Canonicalize("tech lead")
	if !ok {
		t.Fatal("Canonicalize(tech lead) ok = false, want true")
	}
	if !IsSoftSkill(category) {
		t.Fatalf("IsSoftSkill(%q) = false, want true", category)
	}
}

func TestIsSoftSkillClassifiesLanguageAsTechnical(t *testing.T) {
	if IsSoftSkill(CategoryLanguage) {
		t.Fatal("IsSoftSkill(language) = true, want false")
	}
}

func TestFindMentionedMatchesWholeWordsOnly(t *testing.T) {
	found := FindMentioned("Built a service in Go using PostgreSQL and gRPC for internal APIs.")
	if !contains(found, "Go") {
		t.Fatalf("FindMentioned = %v, want it to include Go", found)
	}
	if !contains(found, "PostgreSQL") {
		t.Fatalf("FindMentioned = %v, want it to include PostgreSQL", found)
	}
	if !contains(found, "gRPC") {
		t.Fatalf("FindMentioned = %v, want it to include gRPC", found)
	}
}

func TestFindMentionedDoesNotMatchSubstringWithinALargerWord(t *testing.T) {
	found := FindMentioned("We used Kafka-adjacent tooling but nothing named gorilla or algorithm here.")
	if contains(found, "Go") {
		t.Fatalf("FindMentioned = %v, should not match Go inside algorithm/gorilla", found)
	}
}

func TestFindMentionedDeduplicatesRepeatedMentions(t *testing.T) {
	found := FindMentioned("Go, Go, and more Go. Also golang.")
	count := 0
	for _, f := range found {
		if f == "Go" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("FindMentioned found Go %d times, want exactly 1 (deduplicated)", count)
	}
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
