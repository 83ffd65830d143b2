package fleet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	homes := DefaultCatalog()
	require.Len(t, homes, 6)

	names := make([]string, len(homes))
	for i, h := range homes {
		names[i] = h.Name
		assert.Empty(t, h.Status)
	}
	assert.Equal(t, []string{
		"Villa Noord",
		"Huis Zuid",
		"Woning Oost",
		"Appartement West",
		"Rijwoning Centrum",
		"Villa Park",
	}, names)

	assert.Nil(t, homes[1].EV)
	assert.Nil(t, homes[4].Battery)
	require.NotNil(t, homes[0].EV)
	assert.Equal(t, "07:30", homes[0].EV.Departure)
	assert.Equal(t, 13.5, homes[0].Battery.CapacityKWH)
	assert.Equal(t, -2.1, homes[0].Battery.PowerKW)
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		count   int
	}{
		{
			name:  "empty document",
			yaml:  "",
			count: 0,
		},
		{
			name: "single home",
			yaml: `
- id: 7
  name: Tiny House
  solar: {powerKW: 0.9, capacityKWP: 0}
`,
			count: 1,
		},
		{
			name: "duplicate id",
			yaml: `
- id: 1
  name: A
- id: 1
  name: B
`,
			wantErr: true,
		},
		{
			name: "missing name",
			yaml: `
- id: 1
`,
			wantErr: true,
		},
		{
			name: "soc above 100",
			yaml: `
- id: 1
  name: A
  battery: {soc: 120, capacityKWH: 10, powerKW: 0}
`,
			wantErr: true,
		},
		{
			name: "zero battery capacity",
			yaml: `
- id: 1
  name: A
  battery: {soc: 50, capacityKWH: 0, powerKW: 0}
`,
			wantErr: true,
		},
		{
			name: "negative ev power",
			yaml: `
- id: 1
  name: A
  ev: {soc: 50, departure: "07:00", powerKW: -1}
`,
			wantErr: true,
		},
		{
			name: "bad departure",
			yaml: `
- id: 1
  name: A
  ev: {soc: 50, departure: "7 am", powerKW: 0}
`,
			wantErr: true,
		},
		{
			name: "nan solar capacity",
			yaml: `
- id: 1
  name: A
  solar: {powerKW: 2, capacityKWP: .nan}
`,
			wantErr: true,
		},
		{
			name: "infinite battery capacity",
			yaml: `
- id: 1
  name: A
  battery: {soc: 50, capacityKWH: .inf, powerKW: 0}
`,
			wantErr: true,
		},
		{
			name: "nan battery power",
			yaml: `
- id: 1
  name: A
  battery: {soc: 50, capacityKWH: 10, powerKW: .nan}
`,
			wantErr: true,
		},
		{
			name: "nan battery soc",
			yaml: `
- id: 1
  name: A
  battery: {soc: .nan, capacityKWH: 10, powerKW: 0}
`,
			wantErr: true,
		},
		{
			name: "infinite ev power",
			yaml: `
- id: 1
  name: A
  ev: {soc: 50, departure: "07:00", powerKW: .inf}
`,
			wantErr: true,
		},
		{
			name: "negative infinite heat pump temperature",
			yaml: `
- id: 1
  name: A
  heatPump: {powerKW: 1, currentTempC: -.inf, targetTempC: 21}
`,
			wantErr: true,
		},
		{
			name: "status is derived, not configured",
			yaml: `
- id: 1
  name: A
  status: exporting
`,
			wantErr: true,
		},
		{
			name:    "not a list",
			yaml:    "name: A",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homes, err := ParseCatalog([]byte(tt.yaml))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Len(t, homes, tt.count)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path is the default", func(t *testing.T) {
		homes, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), homes)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- {id: 3, name: Loft, heatPump: {powerKW: 1, currentTempC: 20, targetTempC: 21}}\n"), 0o600))

		homes, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, homes, 1)
		assert.Equal(t, "Loft", homes[0].Name)
		assert.Equal(t, 21.0, homes[0].HeatPump.TargetTempC)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
