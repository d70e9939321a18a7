package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaco/ouilookup/internal/config"
	"github.com/jaco/ouilookup/internal/logger"
	"github.com/jaco/ouilookup/internal/mac"
	"github.com/jaco/ouilookup/internal/vendor"
)

func newService(t *testing.T, rows string) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "IEEE_OUI.csv")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0o644))
	return &Service{Table: vendor.Table{Path: path}, Log: logger.Nop()}
}

func TestLookup(t *testing.T) {
	svc := newService(t, "AABBCC;Acme Corp\n001122;\n")

	tests := []struct {
		raw  string
		want Outcome
		line string
	}{
		{"aa:bb:cc:dd:ee:ff", Outcome{OUI: "AABBCC", Vendor: "Acme Corp", Found: true, Source: SourceTable}, "Acme Corp"},
		{"AABB.CCDD.EEFF", Outcome{OUI: "AABBCC", Vendor: "Acme Corp", Found: true, Source: SourceTable}, "Acme Corp"},
		{"00-11-22-33-44-55", Outcome{OUI: "001122", Vendor: vendor.UnknownVendor, Found: true, Source: SourceTable}, "Unknown vendor"},
		{"12:34:56:78:9a:bc", Outcome{OUI: "123456"}, "No match."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := svc.Lookup(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.String())
		})
	}
}

func TestLookupErrors(t *testing.T) {
	svc := newService(t, "AABBCC;Acme Corp\n")

	_, err := svc.Lookup("AA:BB:CC")
	assert.ErrorIs(t, err, mac.ErrInvalidLength)

	svc.Table.Path = filepath.Join(t.TempDir(), "missing.csv")
	_, err = svc.Lookup("AA:BB:CC:DD:EE:FF")
	assert.ErrorIs(t, err, vendor.ErrTableUnavailable)
}

func TestLookupNormalizesBeforeOpeningTable(t *testing.T) {
	svc := &Service{Table: vendor.Table{Path: filepath.Join(t.TempDir(), "missing.csv")}, Log: logger.Nop()}

	_, err := svc.Lookup("AABBCCDDEEFF00112233")
	assert.ErrorIs(t, err, mac.ErrInvalidLength)
}

func TestLookupStrictHex(t *testing.T) {
	svc := newService(t, "ZZYYXX;Not Hex\n")

	got, err := svc.Lookup("zz:yy:xx:ww:vv:uu")
	require.NoError(t, err)
	assert.Equal(t, "Not Hex", got.Vendor)

	svc.StrictHex = true
	_, err = svc.Lookup("zz:yy:xx:ww:vv:uu")
	assert.ErrorIs(t, err, mac.ErrNotHex)
}

func TestLookupBuiltinFallback(t *testing.T) {
	svc := newService(t, "AABBCC;Acme Corp\n")

	got, err := svc.Lookup("00:00:0c:12:34:56")
	require.NoError(t, err)
	assert.False(t, got.Found)

	svc.BuiltinFallback = true
	got, err = svc.Lookup("00:00:0c:12:34:56")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, SourceBuiltin, got.Source)

	// The table still wins when it has the OUI.
	got, err = svc.Lookup("aa:bb:cc:12:34:56")
	require.NoError(t, err)
	assert.Equal(t, SourceTable, got.Source)
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Lookup.StrictHex = true
	cfg.Table.SkipHeader = true

	svc, err := New(cfg, "/data/oui.csv", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/data/oui.csv", svc.Table.Path)
	assert.Equal(t, vendor.FormatCSV, svc.Table.Format)
	assert.True(t, svc.Table.SkipHeader)
	assert.True(t, svc.StrictHex)
	assert.False(t, svc.BuiltinFallback)

	t.Setenv("HOME", "")
	cfg.Table.Location = config.LocationHome
	_, err = New(cfg, "", logger.Nop())
	assert.ErrorIs(t, err, config.ErrHomeUnset)
}
