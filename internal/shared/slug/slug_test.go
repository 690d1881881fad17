package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"FCSB Home Kit 2025", "fcsb-home-kit-2025"},
		{"  Tricou   Oficial  ", "tricou-oficial"},
		{"Rapid/București!", "rapid-bucure-ti"},
		{"---", "product"},
		{"", "product"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FromName(tc.in), "input %q", tc.in)
	}
}
