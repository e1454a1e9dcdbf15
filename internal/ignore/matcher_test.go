package ignore

import "testing"

func TestMatcher_DefaultAndUserOverrides(t *testing.T) {
	m := NewMatcher([]string{
		"generated/**",
		"!generated/keep/File.kt",
		"*.tmp",
	})

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{path: ".git/config", isDir: false, ignored: true},
		{path: ".gradle/caches/journal.lock", isDir: false, ignored: true},
		{path: "app/build/tmp/Foo.kt", isDir: false, ignored: true},
		{path: "generated/lib/A.kt", isDir: false, ignored: true},
		{path: "generated/keep/File.kt", isDir: false, ignored: false},
		{path: "nested/cache.tmp", isDir: false, ignored: true},
		{path: "src/main/kotlin/Main.kt", isDir: false, ignored: false},
	}

	for _, tc := range cases {
		got := m.ShouldIgnore(tc.path, tc.isDir)
		if got != tc.ignored {
			t.Fatalf("path %s: expected ignored=%v, got %v", tc.path, tc.ignored, got)
		}
	}
}

func TestMatcher_NegatedDirectoryRule(t *testing.T) {
	m := NewMatcher([]string{
		"target/",
		"!target/include/",
	})

	if !m.ShouldIgnore("target/out/File.kt", false) {
		t.Fatalf("expected target/out/File.kt to be ignored")
	}
	if m.ShouldIgnore("target/include/File.kt", false) {
		t.Fatalf("expected target/include/File.kt to be included")
	}
}
