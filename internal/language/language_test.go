package language

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"eng", "English"},
		{"ENG", "English"},
		{"fre", "French"},
		{"fra", "French"},
		{"ger", "German"},
		{"und", "Unknown"},
		{"", "Unknown"},
		{"xxx", "XXX"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.code); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestExtractFromTags(t *testing.T) {
	if got := ExtractFromTags(map[string]string{"LANGUAGE": " ENG "}); got != "eng" {
		t.Fatalf("expected eng, got %q", got)
	}
	if got := ExtractFromTags(map[string]string{"title": "Director Commentary"}); got != "" {
		t.Fatalf("expected empty language, got %q", got)
	}
	if got := ExtractFromTags(nil); got != "" {
		t.Fatalf("expected empty language for nil tags, got %q", got)
	}
}
