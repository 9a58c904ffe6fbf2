package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestYesterday(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), Yesterday(now))

	now = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), Yesterday(now))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, defaultIDSize)

	short, err := GenerateIDWithSize(6)
	require.NoError(t, err)
	assert.Len(t, short, 6)

	for _, c := range id + short {
		assert.True(t, strings.ContainsRune(characters, c))
	}
}
