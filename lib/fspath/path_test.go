package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	{
		// New cleans the path
		assert.Equal(t, Path("/tmp/data"), New("/tmp//data/"))
		assert.Equal(t, Path("data"), New("./data"))
	}
	{
		// Components
		path := New("/etc/app/config.yaml")
		assert.Equal(t, "config.yaml", path.Base())
		assert.Equal(t, Path("/etc/app"), path.Dir())
		assert.Equal(t, ".yaml", path.Ext())
		assert.True(t, path.IsAbs())
	}
	{
		// Join
		path := New("/var/log").Join("app", "out.log")
		assert.Equal(t, Path("/var/log/app/out.log"), path)
	}
	{
		// Relative paths
		assert.False(t, New("logs/app").IsAbs())
	}
}
