package util

import "testing"

func TestNamespaced(t *testing.T) {
	cases := []struct {
		ns, key, want string
	}{
		{"", "abc", "abc"},
		{"app", "abc", "app:abc"},
		{"app:prod", "kvcache.Cache.Store", "app:prod:kvcache.Cache.Store"},
	}
	for _, tc := range cases {
		if got := Namespaced(tc.ns, tc.key); got != tc.want {
			t.Fatalf("Namespaced(%q, %q) = %q, want %q", tc.ns, tc.key, got, tc.want)
		}
	}
}
