package wizard

import (
	"testing"

	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnswers(t *testing.T) {
	a := DefaultAnswers(projectconfig.New())
	assert.Equal(t, ".", a.DataDir)
	assert.Equal(t, "1:5", a.Seeds)
	assert.Equal(t, "Set2", a.Palette)
	assert.True(t, a.Show)
	assert.False(t, a.SaveToFile)
}

func TestApply(t *testing.T) {
	base := projectconfig.New()
	a := DefaultAnswers(base)
	a.DataDir = " logs "
	a.Seeds = "2:4"
	a.Palette = "Dark2"
	a.SaveToFile = true

	got, err := Apply(base, a)
	require.NoError(t, err)
	assert.Equal(t, "logs", got.Paths.Data)
	assert.Equal(t, projectconfig.SeedsConfig{First: 2, Last: 4}, got.Seeds)
	assert.Equal(t, "Dark2", got.Plot.ColorPalette)
	assert.True(t, got.Plot.SaveToFile)
	assert.Equal(t, ".", base.Paths.Data, "base config is not modified")

	data, err := projectconfig.Marshal(got)
	require.NoError(t, err)
	reloaded, err := projectconfig.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, got.Seeds, reloaded.Seeds)
	assert.Equal(t, "Dark2", reloaded.Plot.ColorPalette)
}

func TestApply_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Answers)
	}{
		{"bad seeds", func(a *Answers) { a.Seeds = "9:1" }},
		{"bad palette", func(a *Answers) { a.Palette = "Viridis" }},
		{"bad band", func(a *Answers) { a.ErrorBand = "iqr" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAnswers(projectconfig.New())
			tt.modify(&a)
			_, err := Apply(projectconfig.New(), a)
			assert.Error(t, err)
		})
	}
}

func TestPalettesAreValid(t *testing.T) {
	for _, p := range Palettes {
		a := DefaultAnswers(projectconfig.New())
		a.Palette = p
		_, err := Apply(projectconfig.New(), a)
		assert.NoError(t, err, p)
	}
}
