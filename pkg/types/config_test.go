package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{DataDir: "/data", DatabaseName: "custom.db"}.Validate())
	assert.ErrorIs(t, Config{DatabaseName: "nested/evil.db"}.Validate(), ErrDatabaseNameInvalid)
}

func TestConfigDatabase(t *testing.T) {
	assert.Equal(t, DefaultDatabaseName, Config{}.Database())
	assert.Equal(t, "custom.db", Config{DatabaseName: "custom.db"}.Database())
}
