package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Michael H. Lemelin", "michaelh.lemelin"},
		{"  MICHAEL H.  LEMELIN\n", "michaelh.lemelin"},
		{"Lucien J.B. Daigle", "lucienj.b.daigle"},
		{"", ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeName(test.input))
	}
}
