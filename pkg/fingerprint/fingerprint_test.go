package fingerprint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_ReplacesVolatileFragments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "iso timestamp",
			in:   "request failed at 2026-08-25T10:15:30.123Z",
			want: "request failed at [TIMESTAMP]",
		},
		{
			name: "timestamp with offset",
			in:   "started 2026-08-25 10:15:30+02:00 then crashed",
			want: "started [TIMESTAMP] then crashed",
		},
		{
			name: "ipv4",
			in:   "dial tcp 10.0.42.7: connection refused",
			want: "dial tcp [IP]: connection refused",
		},
		{
			name: "uuid",
			in:   "user 6fa459ea-ee8a-3ca4-894e-db77e160355e not found",
			want: "user [UUID] not found",
		},
		{
			name: "all combined",
			in:   "2026-01-02T03:04:05Z 192.168.1.1 6fa459ea-ee8a-3ca4-894e-db77e160355e boom",
			want: "[TIMESTAMP] [IP] [UUID] boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Truncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	assert.Len(t, Normalize(long), 200)
}

func TestCompute_StableAndHexShaped(t *testing.T) {
	h := Header{IncidentID: "inc-1", ServiceName: "svc-a", Source: "app", Severity: "HIGH"}
	msgs := []string{"NullPointerException at X", "retrying", "gave up"}

	fp1 := Compute(h, msgs)
	fp2 := Compute(h, msgs)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", fp1)
}

func TestCompute_OnlyFirstThreeLogsParticipate(t *testing.T) {
	h := Header{ServiceName: "svc", Source: "app", Severity: "HIGH"}
	base := []string{"m1", "m2", "m3"}

	assert.Equal(t, Compute(h, base), Compute(h, append(append([]string{}, base...), "m4", "m5")))
}

func TestCompute_DifferentServiceDiffers(t *testing.T) {
	msgs := []string{"same message"}
	a := Compute(Header{ServiceName: "svc-a", Source: "app", Severity: "HIGH"}, msgs)
	b := Compute(Header{ServiceName: "svc-b", Source: "app", Severity: "HIGH"}, msgs)
	assert.NotEqual(t, a, b)
}

// Fingerprint stability: permuting concrete timestamps, IPs, and UUIDs inside
// the first three messages must not change the fingerprint.
func TestCompute_StableUnderVolatileFragmentPermutation(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	genOctet := gen.IntRange(1, 254)
	genTimestampParts := gopter.CombineGens(gen.IntRange(0, 23), gen.IntRange(0, 59), gen.IntRange(0, 59))

	properties.Property("timestamp and IP permutations are invariant", prop.ForAll(
		func(parts []interface{}, a, b, c, d int) bool {
			hh, mm, ss := parts[0].(int), parts[1].(int), parts[2].(int)
			msg := fmt.Sprintf("failed at 2026-08-25T%02d:%02d:%02dZ from %d.%d.%d.%d", hh, mm, ss, a, b, c, d)
			h := Header{ServiceName: "svc", Source: "app", Severity: "HIGH"}

			reference := Compute(h, []string{"failed at [TIMESTAMP] from [IP]"})
			return Compute(h, []string{msg}) == reference
		},
		genTimestampParts, genOctet, genOctet, genOctet, genOctet,
	))

	properties.TestingRun(t)
}

func TestClassifyErrorType(t *testing.T) {
	tests := []struct {
		rootCause string
		want      string
	}{
		{"NullPointerException in OrderService.total()", ErrorTypeNullDeref},
		{"upstream call timed out after 30s", ErrorTypeTimeout},
		{"dial tcp: connection refused", ErrorTypeConnection},
		{"request rejected with 401 Unauthorized", ErrorTypeAuth},
		{"schema validation failed for payload", ErrorTypeValidation},
		{"container killed: out of memory", ErrorTypeResource},
		{"something entirely novel", ErrorTypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyErrorType("abcd1234abcd1234", tt.rootCause), tt.rootCause)
	}
}

func TestClassifyErrorType_EmptyRootCause(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, ClassifyErrorType("abcd1234abcd1234", ""))
}
