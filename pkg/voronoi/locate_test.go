package voronoi_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
)

func TestLocatorAgreesWithNearestSite(t *testing.T) {
	opts := voronoi.DefaultOptions()
	d, err := voronoi.CreateDiagram(randomPoints(200, 5), opts, nil)
	require.NoError(t, err)

	locator, err := voronoi.NewLocator(d)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 1000; i++ {
		q := voronoi.Point{X: rnd.Float64(), Y: rnd.Float64()}

		var nearest *voronoi.Site
		for _, site := range d.Sites() {
			if nearest == nil || site.Point.Distance(q) < nearest.Point.Distance(q) {
				nearest = site
			}
		}

		face := locator.FaceAt(q)
		require.NotNil(t, face, "no face at %v", q)
		assert.Equal(t, nearest.Index, face.Site.Index, "face at %v", q)
		assert.Equal(t, nearest.Index, locator.NearestSite(q).Index, "nearest site to %v", q)
	}

	assert.Nil(t, locator.FaceAt(voronoi.Point{X: 2, Y: 2}))
}

func TestLocatorSkipsEmptyFaces(t *testing.T) {
	pts := []voronoi.Point{{X: 0.3, Y: 0.3}, {X: 0.3, Y: 0.3}, {X: 0.7, Y: 0.6}}
	d, err := voronoi.CreateDiagram(pts, voronoi.DefaultOptions(), nil)
	require.NoError(t, err)

	locator, err := voronoi.NewLocator(d)
	require.NoError(t, err)
	assert.Equal(t, 0, locator.NearestSite(voronoi.Point{X: 0.3, Y: 0.3}).Index)
	assert.Equal(t, 0, locator.FaceAt(voronoi.Point{X: 0.1, Y: 0.1}).Site.Index)
	assert.Equal(t, 2, locator.FaceAt(voronoi.Point{X: 0.9, Y: 0.9}).Site.Index)
}
