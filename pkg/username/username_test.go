package username

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Jane Doe":      "janedoe",
		"José Álvarez":  "josealvarez",
		"  o'neil_42 ":  "oneil42",
		"!!!":           "",
		"ÅNGSTRÖM-Lab":  "angstromlab",
		"mary.sue+test": "marysuetest",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestBase(t *testing.T) {
	assert.Equal(t, "janedoe", Base("Jane Doe", "jd@example.com"))
	assert.Equal(t, "jd", Base("", "jd@example.com"))
	assert.Equal(t, "jd", Base("???", "JD@example.com"))
	assert.Equal(t, "user", Base("", "@example.com"))
}

func TestGenerate_AppendsSuffixOnCollision(t *testing.T) {
	taken := map[string]bool{"janedoe": true, "janedoe1": true}
	got, err := Generate(context.Background(), "Jane Doe", "", func(_ context.Context, c string) (bool, error) {
		return taken[c], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "janedoe2", got)
}

func TestGenerate_PropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Generate(context.Background(), "Jane", "", func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}
