package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pet_care", Slugify("Pet Care"))
	assert.Equal(t, "a_b", Slugify("  A \t\n B "))
	assert.Equal(t, "café", Slugify("Café"))
	assert.Equal(t, "food_drinks", Slugify("Food/Drinks"))
	assert.Equal(t, "50_off", Slugify("50% off"))
	assert.Equal(t, "alimentação", Slugify("Alimentação?#"))
	assert.Equal(t, "", Slugify("%/?"))
}

func TestRandomHexColor(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	u := New()
	for i := 0; i < 20; i++ {
		assert.Regexp(t, hex, u.RandomHexColor())
	}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	got, err := ParseDate("2024-03-05", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, loc), got)

	got, err = ParseDate("2024-03-05T10:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)))

	_, err = ParseDate("05/03/2024", loc)
	assert.Error(t, err)
}

func TestAppLocation(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	assert.Equal(t, "UTC", AppLocation().String())

	t.Setenv("APP_TIMEZONE", "Not/AZone")
	assert.Equal(t, time.Local, AppLocation())
}
