package services

import (
	"fmt"
	"strings"

	"github.com/quentinhas/quentinhas-api/models"
)

// RenderThemeCSS renders a tenant theme as a stylesheet of CSS custom
// properties, followed by any tenant custom CSS. The storefront links this
// as /api/v1/theme.css; applying it is the client's job.
func RenderThemeCSS(theme *models.TenantTheme) string {
	if theme == nil {
		theme = DefaultTheme()
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	writeProperty(&b, "--color-primary", theme.Colors.Primary)
	writeProperty(&b, "--color-secondary", theme.Colors.Secondary)
	writeProperty(&b, "--color-accent", theme.Colors.Accent)
	writeProperty(&b, "--color-background", theme.Colors.Background)
	writeProperty(&b, "--color-foreground", theme.Colors.Foreground)
	writeProperty(&b, "--color-muted", theme.Colors.Muted)
	writeProperty(&b, "--font-primary", theme.Fonts.Primary)
	writeProperty(&b, "--font-secondary", theme.Fonts.Secondary)
	b.WriteString("}\n")

	if theme.Layout != nil {
		fmt.Fprintf(&b, "[data-header-style] { --header-style: %s; }\n", theme.Layout.HeaderStyle)
		fmt.Fprintf(&b, "[data-footer-style] { --footer-style: %s; }\n", theme.Layout.FooterStyle)
	}

	if theme.CustomCSS != "" {
		b.WriteString("\n")
		b.WriteString(theme.CustomCSS)
		if !strings.HasSuffix(theme.CustomCSS, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeProperty(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s;\n", name, value)
}

// MergeTheme overlays a partial theme update onto the tenant's current
// theme. Empty fields in the update keep their current value, so a settings
// page can submit only what changed.
func MergeTheme(current, update *models.TenantTheme) *models.TenantTheme {
	if current == nil {
		current = DefaultTheme()
	}
	merged := *current
	if update == nil {
		return &merged
	}

	if update.Colors.Primary != "" {
		merged.Colors.Primary = update.Colors.Primary
	}
	if update.Colors.Secondary != "" {
		merged.Colors.Secondary = update.Colors.Secondary
	}
	if update.Colors.Accent != "" {
		merged.Colors.Accent = update.Colors.Accent
	}
	if update.Colors.Background != "" {
		merged.Colors.Background = update.Colors.Background
	}
	if update.Colors.Foreground != "" {
		merged.Colors.Foreground = update.Colors.Foreground
	}
	if update.Colors.Muted != "" {
		merged.Colors.Muted = update.Colors.Muted
	}
	if update.Fonts.Primary != "" {
		merged.Fonts.Primary = update.Fonts.Primary
	}
	if update.Fonts.Secondary != "" {
		merged.Fonts.Secondary = update.Fonts.Secondary
	}
	if update.Logo != "" {
		merged.Logo = update.Logo
	}
	if update.Favicon != "" {
		merged.Favicon = update.Favicon
	}
	if update.CustomCSS != "" {
		merged.CustomCSS = update.CustomCSS
	}
	if update.Layout != nil {
		layout := *update.Layout
		merged.Layout = &layout
	}
	return &merged
}
