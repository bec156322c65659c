package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBannerWide(t *testing.T) {
	got := RenderBanner(80)

	assert.Contains(t, got, "███")
	assert.GreaterOrEqual(t, strings.Count(got, "\n"), 11, "block art spans both words")
}

func TestRenderBannerNarrow(t *testing.T) {
	got := RenderBanner(40)

	assert.Contains(t, got, bannerCompact)
	assert.NotContains(t, got, "███")
}

func TestRenderBannerBoundary(t *testing.T) {
	assert.Contains(t, RenderBanner(bannerWidth), "███")
	assert.Contains(t, RenderBanner(bannerWidth-1), bannerCompact)
}
