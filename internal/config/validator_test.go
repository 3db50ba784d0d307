package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

func TestValidatePresets(t *testing.T) {
	t.Parallel()

	valid := func() *File {
		return &File{
			Version: "1.0.0",
			Presets: []Preset{
				{Name: "nova", Hue: 232, Saturation: 78, Lightness: 54, Depth: 3, Radius: 18},
				{Name: "night_2", Hue: 0, Saturation: 0, Lightness: 100, Depth: 6, Radius: 64, Dark: true},
			},
		}
	}

	cases := []struct {
		name   string
		mutate func(f *File)
		field  string
	}{
		{name: "valid", mutate: func(*File) {}},
		{name: "missing version", mutate: func(f *File) { f.Version = "" }, field: "version"},
		{name: "no presets", mutate: func(f *File) { f.Presets = nil }, field: "presets"},
		{name: "upper-case name", mutate: func(f *File) { f.Presets[0].Name = "Nova" }, field: "presets[0].name"},
		{name: "empty name", mutate: func(f *File) { f.Presets[1].Name = "" }, field: "presets[1].name"},
		{name: "hue above range", mutate: func(f *File) { f.Presets[0].Hue = 361 }, field: "presets[0].hue"},
		{name: "negative saturation", mutate: func(f *File) { f.Presets[1].Saturation = -1 }, field: "presets[1].saturation"},
		{name: "depth above range", mutate: func(f *File) { f.Presets[0].Depth = 7 }, field: "presets[0].depth"},
		{name: "radius above range", mutate: func(f *File) { f.Presets[0].Radius = 65 }, field: "presets[0].radius"},
		{name: "duplicate name", mutate: func(f *File) { f.Presets[1].Name = "nova" }, field: "presets[1].name"},
		{name: "unknown default", mutate: func(f *File) { f.Default = "ember" }, field: "default"},
		{name: "malformed default", mutate: func(f *File) { f.Default = "Ember!" }, field: "default"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := valid()
			tc.mutate(file)
			err := ValidatePresets(file)

			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *spectrumerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidatePresetsNil(t *testing.T) {
	t.Parallel()

	var validationErr *spectrumerrors.ValidationError
	require.ErrorAs(t, ValidatePresets(nil), &validationErr)
}

func TestValidatePreset(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePreset(Preset{Name: "ok", Hue: 10, Saturation: 10, Lightness: 10}))

	err := ValidatePreset(Preset{Name: "ok", Lightness: 101})
	var validationErr *spectrumerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "lightness", validationErr.Field)
	assert.Contains(t, validationErr.Message, "max=100")
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	t.Parallel()

	file := Builtin()
	require.NoError(t, ValidatePresets(file))
	assert.Equal(t, []string{"ember", "midnight", "nova"}, file.Names())

	nova, err := file.DefaultPreset()
	require.NoError(t, err)
	assert.Equal(t, "nova", nova.Name)

	midnight, err := file.Lookup("midnight")
	require.NoError(t, err)
	assert.True(t, midnight.Controls().Dark)
}

func TestLookupUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := Builtin().Lookup("aurora")

	var notFound *spectrumerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "preset", notFound.Kind)
	assert.Equal(t, "aurora", notFound.Name)

	var empty *File
	_, err = empty.DefaultPreset()
	require.ErrorAs(t, err, &notFound)
}
