// Empowerment classifier tests in Uplift.

package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyJobsPath(t *testing.T) {
	classification := Classify("/api/v1/jobs")
	assert.True(t, classification.Jobs)
	assert.False(t, classification.SocialSecurity)
	assert.False(t, classification.Housing)
	assert.False(t, classification.BusinessFunding)
	assert.False(t, classification.NonDiscrimination)
	assert.False(t, classification.Accessibility)
	assert.False(t, classification.AIAssistance)
}

func TestClassifyUnmappedPath(t *testing.T) {
	for _, path := range []string{"/favicon.ico", "/health", "/", "/api/v1/users"} {
		classification := Classify(path)
		assert.False(t, classification.Any(), "expected no category for %s", path)
	}
}

func TestClassifyMultiMembership(t *testing.T) {
	// "/assistance" is shared between socialSecurity and aiAssistance on purpose
	classification := Classify("/api/v1/assistance")
	assert.True(t, classification.SocialSecurity)
	assert.True(t, classification.AIAssistance)

	// "/accessibility-housing" satisfies both housing and accessibility
	classification = Classify("/api/v1/accessibility-housing")
	assert.True(t, classification.Housing)
	assert.True(t, classification.Accessibility)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.True(t, Classify("/API/V1/JOBS").Jobs)
	assert.True(t, Classify("/api/v1/Social-Security").SocialSecurity)
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("/api/v1/funding")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("/api/v1/funding"))
	}
	assert.True(t, first.BusinessFunding)
}

func TestClassifyCategoryRules(t *testing.T) {
	assert.True(t, Classify("/api/v1/benefits").SocialSecurity)
	assert.True(t, Classify("/api/v1/accommodation").Housing)
	assert.True(t, Classify("/api/v1/grants").BusinessFunding)
	assert.True(t, Classify("/api/v1/careers").Jobs)
	assert.True(t, Classify("/api/v1/discrimination/report").NonDiscrimination)
	assert.True(t, Classify("/api/v1/wcag").Accessibility)
	assert.True(t, Classify("/api/v1/recommendations").AIAssistance)
}
