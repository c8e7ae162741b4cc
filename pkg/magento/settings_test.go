package magento_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magerest/magento-go/pkg/magento"
)

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	settings := &magento.Settings{
		Domain:    "store.example.com",
		Username:  "admin",
		Password:  "secret",
		Scope:     "en_us",
		UserAgent: "custom-agent/1.0",
		Token:     "abc123",
		LogLevel:  "debug",
	}

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, settings.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := magento.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsMissingDomain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("username: admin\n"), 0o600))

	_, err := magento.LoadSettings(path)
	assert.ErrorIs(t, err, magento.ErrDomainRequired)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := magento.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPackUnpackAttributes(t *testing.T) {
	t.Parallel()

	data := map[string]interface{}{"meta_title": "Hat", "price": 12.5}

	packed := magento.PackAttributes(data)
	require.Len(t, packed, 2)
	assert.Equal(t, data, magento.UnpackAttributes(packed))
}
