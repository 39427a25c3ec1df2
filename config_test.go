package bossfx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, float32(60000), cfg.Balance.BossMaxHP)
	assert.Equal(t, float32(100), cfg.Balance.PlayerMaxHP)
	assert.Equal(t, float32(85), cfg.Balance.RifleDmg)
	assert.Equal(t, float32(90), cfg.Balance.VoidCannonDmg)
	assert.Equal(t, float32(150), cfg.Player.Shield)
	assert.Equal(t, 5000, cfg.Effects.MaxParticles)
	assert.Len(t, cfg.Difficulties, 3)

	normal := cfg.Difficulties["NORMAL"]
	assert.Equal(t, "NORMAL", normal.Name)
	assert.Equal(t, float32(1), normal.Mult)
	assert.Equal(t, time.Second, normal.AggressionInterval())
	assert.Equal(t, "Soldier", normal.Label)
}

func TestConfig_Difficulty(t *testing.T) {
	cfg := DefaultConfig()

	hard, err := cfg.Difficulty(" hard ")
	require.NoError(t, err)
	assert.Equal(t, "HARD", hard.Name)
	assert.Equal(t, float32(1.5), hard.Mult)
	assert.Equal(t, 600, hard.Aggression)
	assert.Equal(t, "Sultan's Nightmare", hard.Label)

	_, err = cfg.Difficulty("nightmare")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
	assert.Contains(t, err.Error(), "EASY, HARD, NORMAL")
}

func TestParseConfig_OverridesKeepDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
balance:
  boss_max_hp: 1000
difficulties:
  HARD:
    mult: 3
  CUSTOM:
    mult: 2
    aggression: 250
    label: Custom
`))
	require.NoError(t, err)

	assert.Equal(t, float32(1000), cfg.Balance.BossMaxHP)
	assert.Equal(t, float32(100), cfg.Balance.PlayerMaxHP, "untouched keys keep their default")

	hard := cfg.Difficulties["HARD"]
	assert.Equal(t, float32(3), hard.Mult)
	assert.Equal(t, 600, hard.Aggression, "partial difficulty is backfilled")
	assert.Equal(t, "Sultan's Nightmare", hard.Label)

	custom, err := cfg.Difficulty("custom")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", custom.Name)
	assert.Equal(t, 250*time.Millisecond, custom.AggressionInterval())
}

func TestParseConfig_LowerCaseDifficultyKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
difficulties:
  hard:
    mult: 2
  " custom ":
    mult: 1.2
    aggression: 900
    label: Custom
`))
	require.NoError(t, err)

	assert.Len(t, cfg.Difficulties, 4)
	assert.NotContains(t, cfg.Difficulties, "hard")
	hard := cfg.Difficulties["HARD"]
	assert.Equal(t, "HARD", hard.Name)
	assert.Equal(t, float32(2), hard.Mult)
	assert.Equal(t, 600, hard.Aggression)
	assert.Equal(t, "Sultan's Nightmare", hard.Label)

	custom, err := cfg.Difficulty("Custom")
	require.NoError(t, err)
	assert.Equal(t, 900*time.Millisecond, custom.AggressionInterval())
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative hp":      "balance:\n  boss_max_hp: -1\n",
		"no particles":     "effects:\n  max_particles: 0\n",
		"bad mult":         "difficulties:\n  EXTREME:\n    mult: -2\n    aggression: 100\n",
		"missing interval": "difficulties:\n  EXTREME:\n    mult: 2\n",
		"not yaml":         "balance: [1, 2",
	}
	for name, data := range cases {
		_, err := ParseConfig([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestConfig_ValidateRequiresNormal(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Difficulties, "NORMAL")
	assert.ErrorContains(t, cfg.Validate(), "NORMAL")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  shield: 0\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0), cfg.Player.Shield)
	assert.Equal(t, float32(100), cfg.Player.HP)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
