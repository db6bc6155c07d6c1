package boundaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceModulesRespectLayerBoundaries(t *testing.T) {
	violations, err := Check("../../../contexts", Rules{
		Module:               "campaignhub",
		ApplicationLibraries: []string{"github.com/go-playground/validator/v10"},
	})
	require.NoError(t, err)
	for _, v := range violations {
		t.Errorf("boundary violation: %s", v)
	}
}

func TestCheckReportsEachBrokenRule(t *testing.T) {
	violations, err := Check("testdata/contexts", Rules{
		Module:               "example.com/shop",
		ApplicationLibraries: []string{"github.com/go-playground/validator/v10"},
	})
	require.NoError(t, err)

	type finding struct{ file, imp, rule string }
	got := make([]finding, 0, len(violations))
	for _, v := range violations {
		got = append(got, finding{v.File, v.Import, v.Rule})
	}
	assert.Equal(t, []finding{
		{"shop/cart-service/application/checkout.go", "example.com/shop/internal/platform/db", "application must not import adapters or runtime infrastructure"},
		{"shop/cart-service/application/checkout.go", "github.com/google/uuid", "application import is outside explicit allowlist"},
		{"shop/cart-service/domain/cart.go", "example.com/shop/contexts/shop/cart-service/adapters/memory", "domain must not import adapters or runtime infrastructure"},
		{"shop/cart-service/domain/cart.go", "example.com/shop/contexts/shop/other-service/domain", "cross-module imports are forbidden"},
		{"shop/cart-service/domain/cart.go", "example.com/shop/contexts/shop/other-service/domain", "domain import is outside explicit allowlist"},
	}, got)
}

func TestViolationString(t *testing.T) {
	v := Violation{File: "a/b/domain/x.go", Line: 7, Import: "net/http", Rule: "nope"}
	assert.Equal(t, `a/b/domain/x.go:7 imports "net/http" (nope)`, v.String())
}
