package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quentinhas/quentinhas-api/models"
)

func TestRenderThemeCSSDefaults(t *testing.T) {
	css := RenderThemeCSS(nil)

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "--color-primary: #FF6B35;")
	assert.Contains(t, css, "--color-secondary: #F7931E;")
	assert.Contains(t, css, "--color-accent: #FFD23F;")
	assert.Contains(t, css, "--color-background: #FFFFFF;")
	assert.Contains(t, css, "--font-primary: Inter;")
}

func TestRenderThemeCSSCustomTheme(t *testing.T) {
	theme := &models.TenantTheme{
		Colors:    models.ThemeColors{Primary: "#123456"},
		Fonts:     models.ThemeFonts{Primary: "Roboto"},
		Layout:    &models.ThemeLayout{HeaderStyle: "minimal", FooterStyle: "compact"},
		CustomCSS: ".hero { display: none; }",
	}

	css := RenderThemeCSS(theme)

	assert.Contains(t, css, "--color-primary: #123456;")
	assert.Contains(t, css, "--font-primary: Roboto;")
	// Unset properties are omitted rather than rendered empty
	assert.NotContains(t, css, "--color-secondary")
	assert.Contains(t, css, "--header-style: minimal;")
	assert.Contains(t, css, "--footer-style: compact;")
	// Custom CSS is appended last, newline terminated
	assert.True(t, strings.HasSuffix(css, ".hero { display: none; }\n"))
}

func TestMergeThemeKeepsCurrentForEmptyFields(t *testing.T) {
	current := DefaultTheme()
	current.Logo = "tenants/t1/logo_1.png"

	merged := MergeTheme(current, &models.TenantTheme{
		Colors: models.ThemeColors{Primary: "#000000"},
	})

	assert.Equal(t, "#000000", merged.Colors.Primary)
	assert.Equal(t, DefaultSecondaryColor, merged.Colors.Secondary)
	assert.Equal(t, "tenants/t1/logo_1.png", merged.Logo)
	assert.Equal(t, DefaultFont, merged.Fonts.Primary)

	// The current theme is not mutated
	assert.Equal(t, DefaultPrimaryColor, current.Colors.Primary)
}

func TestMergeThemeNilInputs(t *testing.T) {
	merged := MergeTheme(nil, nil)
	assert.Equal(t, DefaultTheme(), merged)

	merged = MergeTheme(nil, &models.TenantTheme{Logo: "x.png"})
	assert.Equal(t, "x.png", merged.Logo)
	assert.Equal(t, DefaultPrimaryColor, merged.Colors.Primary)
}

func TestMergeThemeReplacesLayoutWholesale(t *testing.T) {
	current := &models.TenantTheme{
		Layout: &models.ThemeLayout{HeaderStyle: "classic", FooterStyle: "full"},
	}
	update := &models.TenantTheme{
		Layout: &models.ThemeLayout{HeaderStyle: "minimal"},
	}

	merged := MergeTheme(current, update)
	assert.Equal(t, "minimal", merged.Layout.HeaderStyle)
	assert.Equal(t, "", merged.Layout.FooterStyle)
	// The update's layout is copied, not aliased
	update.Layout.HeaderStyle = "changed"
	assert.Equal(t, "minimal", merged.Layout.HeaderStyle)
}
