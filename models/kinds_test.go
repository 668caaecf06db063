package models_test

import (
	"testing"

	"github.com/alwitt/larder/models"
	"github.com/stretchr/testify/assert"
)

// TestDocumentKindRegistry verifies the Safe Catering kind registry contents.
func TestDocumentKindRegistry(t *testing.T) {
	assert := assert.New(t)

	// 1 – Registry order
	assert.Equal([]string{
		"SC1:", "SC2:", "SC3:", "SC4:", "SC5:", "SC6:", "SC7:", "SC8:", "SC9:", "OPN:", "CLS:",
	}, models.KnownDocumentKinds())

	// 2 – Descriptions match the paper forms
	expected := map[string]string{
		"SC1:": "Deliveries-In",
		"SC2:": "Chiller Checks",
		"SC3:": "Cooking Log",
		"SC4:": "Hot Holding",
		"SC5:": "Hygiene Inspection",
		"SC6:": "Hygiene Training",
		"SC7:": "Fitness To Work",
		"SC8:": "All-In-One Form (SC1: - SC4: inc)",
		"SC9:": "Deliveries-Out",
		"OPN:": "Opening Checks",
		"CLS:": "Closing Checks",
	}
	for code, description := range expected {
		found, ok := models.DocumentKindDescription(code)
		assert.True(ok)
		assert.Equal(description, found)
	}

	// 3 – Unknown codes are rejected
	_, ok := models.DocumentKindDescription("SC10:")
	assert.False(ok)
}
