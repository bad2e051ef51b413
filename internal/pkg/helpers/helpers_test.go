package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 45*time.Second, ParseDuration("45s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("later", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("0s", time.Minute))
}

func TestNullStringRoundTrip(t *testing.T) {
	name := "Jane Doe"
	blank := "  "

	assert.Equal(t, sql.NullString{String: name, Valid: true}, GetNullString(&name))
	assert.False(t, GetNullString(nil).Valid)
	assert.False(t, GetNullString(&blank).Valid)

	assert.Nil(t, StringPtr(sql.NullString{}))
	assert.Equal(t, name, *StringPtr(sql.NullString{String: name, Valid: true}))
}
