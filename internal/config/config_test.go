package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "stayvista", cfg.MongoDatabase)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.CORSOrigins)
}

func TestLoad_BuildsAtlasURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "alice")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_HOST", "cluster0.example.net")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb+srv://alice:pw@cluster0.example.net/?retryWrites=true&w=majority", cfg.MongoURI)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
