package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	l := Default("typeahead")
	assert.Equal(t, "typeahead", l.GetPrefix())
	assert.Equal(t, log.GetLevel(), l.GetLevel())
}

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("srv", log.DebugLevel, true, false, log.TextFormatter)
	assert.Equal(t, "srv", l.GetPrefix())
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}
