package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCylinder_SetGasKg(t *testing.T) {
	c := &Cylinder{}

	c.SetGasKg(2.0)
	assert.InDelta(t, 1912.0, c.LitersEquivalent, 1e-9)

	c.SetGasKg(DefaultGasKg)
	assert.InDelta(t, 956.0, c.LitersEquivalent, 1e-9)
}

func TestCylinderStatus_IsValid(t *testing.T) {
	for _, s := range CylinderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, CylinderStatus("ativo").IsValid())
	assert.False(t, CylinderStatus("").IsValid())
}

func TestFlameTimeRecord_TotalSeconds(t *testing.T) {
	rec := &FlameTimeRecord{Hours: 0, Minutes: 10, Seconds: 0}
	assert.Equal(t, 600, rec.TotalSeconds())

	rec = &FlameTimeRecord{Hours: 1, Minutes: 2, Seconds: 3}
	assert.Equal(t, 3723, rec.TotalSeconds())
}

func TestConsumptionLiters(t *testing.T) {
	assert.InDelta(t, 45.0, ConsumptionLiters(4.5, 600), 1e-9)
	assert.InDelta(t, 0.0, ConsumptionLiters(0, 600), 1e-9)
	assert.InDelta(t, 1.5, ConsumptionLiters(1.5, 60), 1e-9)
}

func TestKilogramsForLiters(t *testing.T) {
	assert.InDelta(t, 2.0, KilogramsForLiters(1912.0), 1e-9)
	assert.InDelta(t, 2.0, KilogramsForLiters(LitersForMass(2.0)), 1e-9)
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 25.0, Percentage(1, 4), 1e-9)
	assert.InDelta(t, 0.0, Percentage(1, 0), 1e-9)
}

func TestRoleOrDefault(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleOrDefault("admin"))
	assert.Equal(t, RoleViewer, RoleOrDefault("viewer"))
	assert.Equal(t, RoleViewer, RoleOrDefault(""))
	assert.Equal(t, RoleViewer, RoleOrDefault("root"))
}

func TestElementCatalog(t *testing.T) {
	catalog := ElementCatalog()
	require.Len(t, catalog, 20)

	seen := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		assert.False(t, seen[entry.Name], "duplicate catalog entry %s", entry.Name)
		assert.GreaterOrEqual(t, entry.ConsumptionLPM, 0.0)
		seen[entry.Name] = true
	}
	assert.True(t, seen["Estanho FAAS"])
	assert.True(t, seen["Estanho HG"])
}

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.String())

	b, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-01-01"}`, string(b))

	var decoded struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2023-12-31"}`), &decoded))
	assert.Equal(t, "2023-12-31", decoded.D.String())

	require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &decoded))
	assert.True(t, decoded.D.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"01/01/2024"}`), &decoded))
}

func TestNewDate_Truncates(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 5, 17, 45, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, 0, d.Hour())
}
