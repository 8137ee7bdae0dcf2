// Exposes all of the REST APIs related to accessibility content in Uplift.

package accessibility

import (
	"Uplift/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registers all of the REST API handlers related to internal package accessibility onto the gin server.
func APIHandlers(router *gin.Engine, logger log.Logger) {
	accessibilityGroup := router.Group("/api/accessibility")
	{
		accessibilityGroup.GET("/overview", overview())
		accessibilityGroup.GET("/guidelines", guidelines())
	}
}

// overview returns a handler serving the platform accessibility summary.
func overview() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{
			"platform_accessibility": gin.H{
				"wcag_compliance":  "2.1 " + WCAGLevel,
				"compliance_score": 95.7,
				"certification":    "WCAG 2.1 AA Certified",
			},
			"supported_features": gin.H{
				"screen_readers": gin.H{
					"supported":   true,
					"tested_with": []string{"NVDA", "JAWS", "VoiceOver", "TalkBack"},
				},
				"keyboard_navigation": gin.H{
					"supported":         true,
					"skip_links":        true,
					"focus_indicators":  true,
					"tab_order_logical": true,
				},
				"visual_accessibility": gin.H{
					"high_contrast":        true,
					"color_contrast_ratio": "4.5:1 minimum",
					"text_scaling":         "up to 200%",
				},
			},
		})
	}
}

// guidelines returns a handler serving the WCAG guidance and the fixed
// keyboard shortcut table owned by the client-side live region coordinator.
func guidelines() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{
			"wcag_guidelines": gin.H{
				"version": "2.1 " + WCAGLevel,
				"principles": []gin.H{
					{"name": "Perceivable", "description": "Information must be presentable in ways users can perceive"},
					{"name": "Operable", "description": "Interface components must be operable"},
					{"name": "Understandable", "description": "Information and UI operation must be understandable"},
					{"name": "Robust", "description": "Content must be robust enough for various assistive technologies"},
				},
			},
			"platform_features": gin.H{
				"keyboard_shortcuts": []gin.H{
					{"key": "Alt + 1", "action": "Focus main content"},
					{"key": "Alt + 2", "action": "Focus navigation"},
					{"key": "Alt + 3", "action": "Focus accessibility controls"},
					{"key": "Escape", "action": "Dismiss open overlays"},
				},
				"screen_reader_features": []string{
					"Semantic structure with proper headings",
					"Live regions for dynamic content updates",
					"Descriptive link text and button labels",
				},
			},
		})
	}
}
