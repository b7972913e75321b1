package citynet_test

import (
	"testing"

	"github.com/katalvlaran/portway/citynet" // package under test
	"github.com/stretchr/testify/assert"     // assertion library
)

// validInstance builds a small well-formed instance shared across tests:
// 4 cities, a port in city 1 (cost 4), highways 1-2(3), 2-3(1), 3-4(2).
func validInstance(t *testing.T) *citynet.Instance {
	t.Helper()
	in, err := citynet.NewInstance(4,
		[]citynet.Port{{City: 1, Cost: 4}},
		[]citynet.Highway{
			{A: 1, B: 2, Cost: 3},
			{A: 2, B: 3, Cost: 1},
			{A: 3, B: 4, Cost: 2},
		},
		citynet.DefaultOptions(),
	)
	assert.NoError(t, err)

	return in
}

// TestNewInstance_Accessors verifies the cached aggregates and accessors of
// a well-formed instance.
func TestNewInstance_Accessors(t *testing.T) {
	in := validInstance(t)

	assert.Equal(t, 4, in.NumCities())
	assert.Equal(t, 3, in.NumHighways())
	assert.Equal(t, 1, in.Ports())
	assert.Equal(t, int64(4), in.PortCostTotal())
	assert.Equal(t, 1, in.FirstPort())
	assert.True(t, in.HasPort(1))
	assert.False(t, in.HasPort(2))
	assert.Equal(t, int64(4), in.PortCost(1))
	assert.Zero(t, in.PortCost(3))
}

// TestNewInstance_HighwaysCopy verifies that mutating the slice returned by
// Highways (or the input slice) cannot corrupt the instance.
func TestNewInstance_HighwaysCopy(t *testing.T) {
	input := []citynet.Highway{{A: 1, B: 2, Cost: 7}}
	in, err := citynet.NewInstance(2, nil, input, citynet.DefaultOptions())
	assert.NoError(t, err)

	// Mutate both the input slice and an accessor copy.
	input[0].Cost = 999
	got := in.Highways()
	got[0].Cost = -1

	fresh := in.Highways()
	assert.Equal(t, int64(7), fresh[0].Cost, "instance must own its highway list")
}

// TestNewInstance_Validation exercises every rejection path of the
// construction boundary with its expected sentinel.
func TestNewInstance_Validation(t *testing.T) {
	opts := citynet.DefaultOptions()
	tests := []struct {
		name     string
		cities   int
		ports    []citynet.Port
		highways []citynet.Highway
		opts     citynet.Options
		want     error
	}{
		{
			name: "negative city count", cities: -1, opts: opts,
			want: citynet.ErrNegativeCities,
		},
		{
			name: "too many cities", cities: 10, opts: citynet.Options{MaxCities: 5},
			want: citynet.ErrTooLarge,
		},
		{
			name: "too many highways", cities: 3,
			highways: []citynet.Highway{{A: 1, B: 2}, {A: 2, B: 3}},
			opts:     citynet.Options{MaxHighways: 1},
			want:     citynet.ErrTooLarge,
		},
		{
			name: "port city out of range", cities: 3,
			ports: []citynet.Port{{City: 4, Cost: 1}}, opts: opts,
			want: citynet.ErrCityRange,
		},
		{
			name: "port city zero", cities: 3,
			ports: []citynet.Port{{City: 0, Cost: 1}}, opts: opts,
			want: citynet.ErrCityRange,
		},
		{
			name: "zero port cost", cities: 3,
			ports: []citynet.Port{{City: 1, Cost: 0}}, opts: opts,
			want: citynet.ErrBadPortCost,
		},
		{
			name: "negative port cost", cities: 3,
			ports: []citynet.Port{{City: 1, Cost: -5}}, opts: opts,
			want: citynet.ErrBadPortCost,
		},
		{
			name: "duplicate port", cities: 3,
			ports: []citynet.Port{{City: 2, Cost: 1}, {City: 2, Cost: 9}}, opts: opts,
			want: citynet.ErrDuplicatePort,
		},
		{
			name: "highway endpoint out of range", cities: 3,
			highways: []citynet.Highway{{A: 1, B: 9, Cost: 1}}, opts: opts,
			want: citynet.ErrCityRange,
		},
		{
			name: "self-loop highway", cities: 3,
			highways: []citynet.Highway{{A: 2, B: 2, Cost: 1}}, opts: opts,
			want: citynet.ErrSelfLoop,
		},
		{
			name: "negative highway cost", cities: 3,
			highways: []citynet.Highway{{A: 1, B: 2, Cost: -1}}, opts: opts,
			want: citynet.ErrBadHighwayCost,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := citynet.NewInstance(tc.cities, tc.ports, tc.highways, tc.opts)
			assert.Nil(t, in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewInstance_DisabledCeilings verifies that non-positive ceilings
// disable the corresponding capacity check.
func TestNewInstance_DisabledCeilings(t *testing.T) {
	in, err := citynet.NewInstance(3, nil,
		[]citynet.Highway{{A: 1, B: 2, Cost: 1}, {A: 2, B: 3, Cost: 1}},
		citynet.Options{}, // both ceilings off
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, in.NumCities())
}

// TestDOT_RendersCitiesAndPlan verifies that the Graphviz dump names every
// city, labels highway costs, and highlights selected plan edges.
func TestDOT_RendersCitiesAndPlan(t *testing.T) {
	in := validInstance(t)

	// Raw dump: all cities present, the ported city filled.
	raw := in.DOT(nil)
	for _, node := range []string{"c1", "c2", "c3", "c4"} {
		assert.Contains(t, raw, node)
	}
	assert.Contains(t, raw, "lightskyblue")
	assert.NotContains(t, raw, "forestgreen", "no plan means nothing highlighted")

	// Plan dump: the selected highway must be highlighted.
	plan := []citynet.Highway{{A: 2, B: 3, Cost: 1}}
	assert.Contains(t, in.DOT(plan), "forestgreen")
}
