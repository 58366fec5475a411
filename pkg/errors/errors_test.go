package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, MetadataFor(tc.code).HTTPStatus, "code %s", tc.code)
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	require.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(CodeDependency, cause, "load art toy")

	require.ErrorIs(t, err, cause)
	require.Equal(t, CodeDependency, err.Code())
	require.Equal(t, "load art toy", err.Message())
}

func TestAsUnwrapsThroughChains(t *testing.T) {
	inner := New(CodeNotFound, "art toy not found")
	outer := fmt.Errorf("handler: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	require.Equal(t, CodeNotFound, typed.Code())

	require.Nil(t, As(fmt.Errorf("plain")))
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, fmt.Errorf("inner"), "outer")
	dump := Dump(err)
	require.Equal(t, CodeInternal, dump.Code)
	require.Len(t, dump.Chain, 2)
}
