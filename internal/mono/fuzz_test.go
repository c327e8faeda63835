package mono

import (
	"strings"
	"testing"
)

// FuzzSpecializedName ensures mangling never panics and always produces a
// deterministic, identifier-safe name for arbitrary value tuples.
func FuzzSpecializedName(f *testing.F) {
	seeds := []struct {
		base string
		n    int64
		b    bool
	}{
		{"foo", 0, false},
		{"foo", 256, true},
		{"configure", 512, true},
		{"offset", -10, false},
		{"f", -9223372036854775808, true},
		{"f", 9223372036854775807, false},
	}
	for _, s := range seeds {
		f.Add(s.base, s.n, s.b)
	}

	f.Fuzz(func(t *testing.T, base string, n int64, b bool) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("mangling panicked for %q, %d, %v: %v", base, n, b, r)
			}
		}()

		args := []Value{IntVal(n), BoolVal(b)}
		name := SpecializedName(base, args)

		if name != SpecializedName(base, args) {
			t.Fatalf("mangling is not deterministic for %q, %d, %v", base, n, b)
		}
		if !strings.HasPrefix(name, base+"_") {
			t.Fatalf("name %q does not extend base %q", name, base)
		}
		if strings.Contains(name[len(base):], "-") {
			t.Fatalf("name %q carries a minus sign", name)
		}
	})
}
