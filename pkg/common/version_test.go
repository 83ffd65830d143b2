package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerName(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.Equal(t, strings.TrimSpace(v), v, "version should be trimmed")
	assert.Equal(t, "SmartNeighborhood/"+v, ServerName())
}
