package parser

import (
	"testing"
	"time"
)

func TestParsePlainEntry(t *testing.T) {
	res, err := Parse([]byte("# TIL - 2025-07-20\n\n- learned about #goroutines\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Title != "TIL - 2025-07-20" {
		t.Errorf("title = %q", res.Title)
	}
	if len(res.Tags) != 1 || res.Tags[0] != "goroutines" {
		t.Errorf("tags = %v", res.Tags)
	}
	if res.Frontmatter != nil {
		t.Errorf("frontmatter = %v, want nil", res.Frontmatter)
	}
}

func TestParseFrontmatter(t *testing.T) {
	data := []byte(`---
title: Context cancellation
tags:
  - go
  - concurrency
---
Body text with #context tag.
`)
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Title != "Context cancellation" {
		t.Errorf("title = %q", res.Title)
	}
	want := []string{"go", "concurrency", "context"}
	if len(res.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", res.Tags, want)
	}
	for i, tag := range want {
		if res.Tags[i] != tag {
			t.Errorf("tags[%d] = %q, want %q", i, res.Tags[i], tag)
		}
	}
}

func TestParseUnclosedFrontmatterIsBody(t *testing.T) {
	data := []byte("---\ntitle: broken\nno closing delimiter\n")
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Frontmatter != nil {
		t.Error("expected nil frontmatter")
	}
	if res.Body != string(data) {
		t.Errorf("body = %q", res.Body)
	}
}

func TestExtractURLs(t *testing.T) {
	body := "See [the blog](https://go.dev/blog/context) and " +
		"[docs](https://pkg.go.dev/context), also [the blog](https://go.dev/blog/context) again.\n" +
		"Relative [link](./other.md) is ignored."
	urls := extractURLs(body)
	if len(urls) != 2 {
		t.Fatalf("urls = %v, want 2 distinct", urls)
	}
	if urls[0] != "https://go.dev/blog/context" || urls[1] != "https://pkg.go.dev/context" {
		t.Errorf("urls = %v", urls)
	}
}

func TestEntryDate(t *testing.T) {
	cases := []struct {
		path string
		ok   bool
		date string
	}{
		{"go/2025-07-29.md", true, "2025-07-29"},
		{"2025-07-29.md", true, "2025-07-29"},
		{"go/notes.md", false, ""},
		{"README.md", false, ""},
		{"2025-07-Links.md", false, ""},
		{"zip-2025-07.md", false, ""},
		{"go/2025-13-40.md", false, ""}, // not a real date
	}
	for _, c := range cases {
		got, ok := EntryDate(c.path)
		if ok != c.ok {
			t.Errorf("EntryDate(%q) ok = %v, want %v", c.path, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		want, _ := time.Parse(DateLayout, c.date)
		if !got.Equal(want) {
			t.Errorf("EntryDate(%q) = %v, want %v", c.path, got, want)
		}
	}
}
