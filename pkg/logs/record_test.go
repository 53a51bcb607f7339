package logs

import (
	"testing"

	"github.com/routerops/mikrotik-mcp/pkg/routeros"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	rec := newRecord(routeros.Record{
		"time":       "10:01",
		"topics":     "dhcp,info",
		"message":    "assigned 10.0.0.5",
		"buffer":     "main",
		"extra-info": "lease 10m",
		".id":        "*1A",
	})

	assert.Equal(t, "10:01", rec.Time)
	assert.Equal(t, "dhcp,info", rec.Topics)
	assert.Equal(t, "assigned 10.0.0.5", rec.Message)
	assert.Equal(t, "main", rec.Buffer)
	assert.True(t, rec.HasBuffer)
	assert.Equal(t, "lease 10m", rec.Extra["extra-info"])
	assert.Equal(t, "*1A", rec.Extra[".id"])
}

func TestNewRecordWithoutBuffer(t *testing.T) {
	rec := newRecord(routeros.Record{
		"time":    "10:01",
		"topics":  "system,info",
		"message": "login ok",
	})

	assert.False(t, rec.HasBuffer)
	assert.Nil(t, rec.Extra)

	v, ok := rec.Field("buffer")
	assert.Equal(t, "", v)
	assert.False(t, ok)

	v, ok = rec.Field("topics")
	assert.Equal(t, "system,info", v)
	assert.True(t, ok)
}

func TestNewRecordNonStringValues(t *testing.T) {
	rec := newRecord(routeros.Record{
		"time":    "10:01",
		"topics":  "system,info",
		"message": "login ok",
		"repeat":  float64(3),
	})
	assert.Equal(t, "3", rec.Extra["repeat"])
}
