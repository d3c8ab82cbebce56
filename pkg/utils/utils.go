package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	RandomHexColor() string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// RandomHexColor returns a #RRGGBB color, used when a custom category is created without one.
func (u *utils) RandomHexColor() string {
	n, err := rand.Int(rand.Reader, big.NewInt(0x1000000))
	if err != nil {
		return "#6B7280"
	}
	return fmt.Sprintf("#%06X", n.Int64())
}

var separators = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slugify lower-cases name and collapses every run of characters that are not
// letters or digits into one underscore, so the result is a single path segment.
// Letters outside ASCII are kept.
func Slugify(name string) string {
	slug := separators.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}

// AppLocation loads APP_TIMEZONE, falling back to the process' local zone.
func AppLocation() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// ParseDate accepts RFC3339 timestamps or plain dates; values without an offset
// are read in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
