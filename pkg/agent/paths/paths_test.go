package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"webpack:///src/api/users.ts", "src/api/users.ts"},
		{"/usr/src/app/src/handlers/pay.ts", "src/handlers/pay.ts"},
		{"/app/packages/core/index.ts", "packages/core/index.ts"},
		{"builds/worker-1/src/api/users.ts", "src/api/users.ts"},
		{"apps/web/pages/index.tsx", "apps/web/pages/index.tsx"},
		{"/app/node_modules/express/lib/router.js", ""},
		{"src/components/.next/chunk.js", ""},
		{"node:internal/modules/cjs/loader", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeAll_DedupsAndSorts(t *testing.T) {
	got := NormalizeAll([]string{
		"webpack:///src/b.ts",
		"/app/src/a.ts",
		"src/a.ts",
		"/app/node_modules/lodash/index.js",
	})
	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, got)
}

func TestIsDependencyPath(t *testing.T) {
	assert.True(t, IsDependencyPath("node_modules/express/lib/router.js"))
	assert.True(t, IsDependencyPath("/app/vendor/pkg/x.go"))
	assert.False(t, IsDependencyPath("src/api/users.ts"))
}

func TestIsSuspicious(t *testing.T) {
	assert.True(t, IsSuspicious("/app/src/x.ts"))
	assert.True(t, IsSuspicious("dist/main.js"))
	assert.False(t, IsSuspicious("src/api/users.ts"))
}

func TestHints_SuggestsNormalizedPath(t *testing.T) {
	hints := Hints("/app/src/api/users.ts")
	assert.Contains(t, hints[len(hints)-1], `"src/api/users.ts"`)
}
