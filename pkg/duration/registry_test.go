package duration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytq/bytq/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndDefault(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, "", reg.Default())

	// The first language loaded becomes the default.
	require.NoError(t, reg.Add(French()))
	assert.Equal(t, "fr", reg.Default())
	require.NoError(t, reg.Add(German()))
	assert.Equal(t, "fr", reg.Default())

	require.NoError(t, reg.SetDefault("de"))
	assert.Equal(t, "de", reg.Default())

	err := reg.SetDefault("ru")
	assert.Equal(t, errcode.CodeUnknownLanguage, errcode.CodeOf(err))

	assert.True(t, reg.IsLoaded("fr"))
	assert.False(t, reg.IsLoaded("ru"))
	assert.Equal(t, []string{"de", "fr"}, reg.Codes())

	err = reg.Add(Lang{})
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
}

const polishJSON = `{
	"code": "pl",
	"time": {
		"format": "{value} {unit}",
		"separator": " i ",
		"less_than_second": "mniej niż sekunda",
		"units": {
			"second": "sekunda", "seconds": "sekund",
			"minute": "minuta", "minutes": "minut",
			"hour": "godzina", "hours": "godzin",
			"day": "dzień", "days": "dni"
		}
	}
}`

func TestLoad(t *testing.T) {
	reg := NewRegistry()
	code, err := reg.Load(strings.NewReader(polishJSON))
	require.NoError(t, err)
	assert.Equal(t, "pl", code)
	assert.Equal(t, "pl", reg.Default())

	out, err := reg.Format(125, "pl")
	require.NoError(t, err)
	assert.Equal(t, "2 minut i 5 sekund", out)

	_, err = reg.Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pl.json"), []byte(polishJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	reg := NewRegistry()
	codes, err := reg.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"pl"}, codes)
	assert.True(t, reg.IsLoaded("pl"))
}

func TestRegisterPluralRule(t *testing.T) {
	rule := func(count float64, baseUnit string) string {
		if count < 5 {
			return baseUnit
		}
		return baseUnit + "s"
	}

	// Registering before loading attaches the rule on load.
	reg := NewRegistry()
	reg.RegisterPluralRule("pl", rule)
	_, err := reg.Load(strings.NewReader(polishJSON))
	require.NoError(t, err)

	out, err := reg.Format(3*60, "pl")
	require.NoError(t, err)
	assert.Equal(t, "3 minuta", out)

	// Registering after loading updates the table in place.
	reg2 := NewRegistry()
	_, err = reg2.Load(strings.NewReader(polishJSON))
	require.NoError(t, err)
	reg2.RegisterPluralRule("pl", rule)

	out, err = reg2.Format(3*60, "pl")
	require.NoError(t, err)
	assert.Equal(t, "3 minuta", out)
}
