package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/mssola/useragent"
)

// RequestMeta extracts the audit metadata for the current request. The user
// agent is normalised to "Browser version (OS)" when it parses; raw header
// otherwise. Absent values are left empty for the audit layer to fill.
func RequestMeta(c *gin.Context) domain.RequestMeta {
	meta := domain.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: normalizeUserAgent(c.Request.UserAgent()),
	}
	return meta
}

func normalizeUserAgent(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ua := useragent.New(raw)
	name, version := ua.Browser()
	if name == "" {
		return raw
	}
	if os := ua.OS(); os != "" {
		return fmt.Sprintf("%s %s (%s)", name, version, os)
	}
	return strings.TrimSpace(name + " " + version)
}
