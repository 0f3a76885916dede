package storefront

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	t.Parallel()

	cases := map[string]Section{
		"home":    SectionHome,
		"Shop":    SectionShop,
		" about ": SectionAbout,
		"contact": SectionContact,
		"product": SectionProduct,
		"detail":  SectionProduct,
	}
	for input, want := range cases {
		got, err := ParseSection(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := ParseSection("checkout")
	require.Error(t, err)
}

func TestSectionStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range append(Sections(), SectionProduct) {
		parsed, err := ParseSection(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
		require.NotEmpty(t, s.Title())
	}
	require.Equal(t, "section(9)", Section(9).String())
}

func TestSectionsExcludeProductDetail(t *testing.T) {
	t.Parallel()
	require.NotContains(t, Sections(), SectionProduct)
	require.Equal(t, SectionHome, Sections()[0])
}
