package biz

import "testing"

func TestCategories(t *testing.T) {
	all := Categories()
	if len(all) != 31 {
		t.Fatalf("got %d categories, want 31", len(all))
	}
	seen := map[Category]bool{}
	for _, c := range all {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
		if c.Label() == "" {
			t.Errorf("category %q has no label", c)
		}
	}
	if !seen[DefaultCategory] {
		t.Errorf("default category %q is not a member", DefaultCategory)
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("anime"); !ok || c != CategoryAnime {
		t.Errorf("ParseCategory(anime) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("western"); ok {
		t.Error("ParseCategory accepted an unknown value")
	}
	if Category("western").Label() != "" {
		t.Error("unknown category has a label")
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"The Batman":                          "the-batman",
		"Avatar: The Way of Water":            "avatar-the-way-of-water",
		"Spider-Man: Across the Spider-Verse": "spider-man-across-the-spider-verse",
		"  Amélie  ":                          "amelie",
		"John Wick: Chapter 4":                "john-wick-chapter-4",
		"O'zbek -- kino":                      "ozbek-kino",
		"!!!":                                 "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	movies := []*Movie{
		{Title: "a", Category: CategoryDrama},
		{Title: "b", Category: CategoryAnime},
		{Title: "c", Category: CategoryDrama},
	}
	sections := GroupByCategory(movies)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Category != CategoryDrama || len(sections[0].Movies) != 2 || sections[0].Movies[1].Title != "c" {
		t.Errorf("first section = %+v", sections[0])
	}
	if sections[1].Category != CategoryAnime {
		t.Errorf("second section = %+v", sections[1])
	}
	if GroupByCategory(nil) != nil {
		t.Error("grouping nothing returned sections")
	}
}
