package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCompactText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Chad R. Perkins  ", "Chad R. Perkins"},
		{"Randolph\n\n - District 53", "Randolph - District 53"},
		{"\t(207)\t279-0927\t", "(207) 279-0927"},
		{"", ""},
		{"   \n\t  ", ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, CompactText(test.input))
	}
}

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<p><a href="x"><i class="fas fa-envelope"></i> View</a> Profile</p>`,
	))
	require.NoError(t, err)
	require.Equal(t, " View Profile", GetText(doc))
}
