package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	s := Default()
	s.Teleport.Strategy = "hover"
	assert.Error(t, s.Validate())

	s = Default()
	s.Teleport.LaunchSpeed = 0
	assert.Error(t, s.Validate())

	s = Default()
	s.Teleport.Strategy = StrategyDirect
	s.Teleport.LaunchSpeed = 0
	assert.NoError(t, s.Validate(), "launch speed is irrelevant to the direct strategy")
	s.Teleport.MaxDistance = -1
	assert.Error(t, s.Validate())

	s = Default()
	s.Teleport.ProjectionExtent.Z = -1
	assert.Error(t, s.Validate())

	s = Default()
	s.Transition.FadeDuration = -0.5
	assert.Error(t, s.Validate())

	s = Default()
	s.Character.Radius = -1
	assert.Error(t, s.Validate())
}

func TestValidateAllowsZeroDurations(t *testing.T) {
	s := Default()
	s.Transition.FadeDuration = 0
	s.Character.WalkSpeed = 0
	s.Character.Radius = 0
	assert.NoError(t, s.Validate(), "a zero fade teleports instantly")
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locomotion.toml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Error(t, SaveDefault(path), "second save must not overwrite")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), again)
}

func TestLoadReadsEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locomotion.toml")
	edited := Default()
	edited.Teleport.Strategy = StrategyDirect
	edited.Teleport.MaxDistance = 2500
	edited.Transition.FadeDuration = 0.25
	edited.Vignette.RadiusVsVelocity = []CurveKey{{Time: 0, Value: 1}, {Time: 300, Value: 0.4}}

	data, err := toml.Marshal(edited)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, s.Teleport.Strategy)
	assert.Equal(t, float32(2500), s.Teleport.MaxDistance)
	assert.Equal(t, float32(0.25), s.Transition.FadeDuration)
	assert.Len(t, s.Vignette.RadiusVsVelocity, 2)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locomotion.yaml")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	edited := Default()
	edited.Teleport.Strategy = StrategyDirect
	edited.Character.WalkSpeed = 300
	data, err := Encode(path, edited)
	require.NoError(t, err)
	assert.Contains(t, string(data), "strategy: direct")
	require.NoError(t, os.WriteFile(path, data, 0644))

	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, edited, s)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locomotion.toml")
	bad := Default()
	bad.Teleport.Strategy = "hover"
	data, err := toml.Marshal(bad)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestSortedCurveKeys(t *testing.T) {
	s := Default()
	s.Vignette.RadiusVsVelocity = []CurveKey{{Time: 300, Value: 0.2}, {Time: 0, Value: 1}}
	keys := s.SortedCurveKeys()
	assert.Equal(t, float32(0), keys[0].Time)
	assert.Equal(t, float32(300), s.Vignette.RadiusVsVelocity[0].Time, "original order is untouched")
}
