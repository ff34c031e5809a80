package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/batch"
	"focusgen/core/catalog"
	"focusgen/core/engine"
	"focusgen/core/focus"
	"focusgen/core/profile"
	"focusgen/core/table"
	"focusgen/core/trend"
	"focusgen/internal/errors"
)

type mapSink map[string][]byte

func (s mapSink) Put(_ context.Context, name string, data []byte) error {
	s[name] = data
	return nil
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{" json ", FormatJSON, false},
		{"parquet", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				assert.True(t, errors.IsType(err, errors.TypeInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(NewJSONFormatter())
	assert.Error(t, r.Register(NewJSONFormatter()))
	assert.Equal(t, []Format{FormatJSON}, r.Formats())

	f, err := r.Get(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, ".json", f.Extension())

	_, err = r.Get(FormatCSV)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestJSONFormatter(t *testing.T) {
	tbl := table.New([]string{focus.BilledCost, focus.SkuId, focus.Tags})
	r := table.NewRow(3)
	require.NoError(t, r.Set(focus.BilledCost, decimal.RequireFromString("3.10")))
	require.NoError(t, r.Set(focus.SkuId, nil))
	require.NoError(t, r.Set(focus.Tags, map[string]string{"env": "dev"}))
	tbl.Append(r)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Render(&buf, tbl))
	assert.JSONEq(t, `{"columns":["BilledCost","SkuId","Tags"],"rows":[["3.1",null,{"env":"dev"}]]}`, buf.String())
}

func TestExportTrendBatch(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)
	b, err := batch.NewBuilder(e, 0).Build(context.Background(), batch.Request{
		Providers:    []catalog.Provider{catalog.AWS},
		RowCount:     3,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
		Seed:         4,
		Trend:        &trend.Options{Scenario: trend.Linear, Months: 2},
	})
	require.NoError(t, err)

	sink := mapSink{}
	res, err := Export(context.Background(), sink, NewJSONFormatter(), b)
	require.NoError(t, err)

	assert.Equal(t, []string{"aws-focus-2024-01.json", "aws-focus-2024-02.json", ManifestName}, res.Files)
	assert.Equal(t, 6, res.Summary.TotalRows)
	assert.Len(t, sink, 3)

	var manifest batch.Manifest
	require.NoError(t, json.Unmarshal(sink[ManifestName], &manifest))
	assert.Equal(t, "linear", manifest.TrendScenario)
	assert.Equal(t, []string{"aws-focus-2024-01.json", "aws-focus-2024-02.json"}, manifest.Files)

	var doc struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(sink["aws-focus-2024-01.json"], &doc))
	assert.Len(t, doc.Rows, 3)
	assert.Equal(t, e.Columns(), doc.Columns)
}

func TestExportWithoutTrendHasNoManifest(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)
	b, err := batch.NewBuilder(e, 0).Build(context.Background(), batch.Request{
		Providers:    []catalog.Provider{catalog.GCP, catalog.Azure},
		RowCount:     2,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
	})
	require.NoError(t, err)

	sink := mapSink{}
	res, err := Export(context.Background(), sink, NewJSONFormatter(), b)
	require.NoError(t, err)
	assert.Len(t, res.Files, 2)
	assert.NotContains(t, sink, ManifestName)
}
