package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCount(t *testing.T) {
	assert.NoError(t, ValidateCount("num_users", 1, MaxUsers))
	assert.NoError(t, ValidateCount("num_users", MaxUsers, MaxUsers))

	err := ValidateCount("num_users", 0, MaxUsers)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "num_users")

	assert.Error(t, ValidateCount("num_users", -5, MaxUsers))
	assert.Error(t, ValidateCount("num_users", MaxUsers+1, MaxUsers))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("min_fulfillment_rate", 0.9, 0, 1))
	assert.NoError(t, ValidateRange("min_fulfillment_rate", 0, 0, 1))
	assert.NoError(t, ValidateRange("min_fulfillment_rate", 1, 0, 1))

	err := ValidateRange("min_fulfillment_rate", 1.5, 0, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_fulfillment_rate")

	assert.Error(t, ValidateRange("min_trust_index", -1, 0, 100))
	assert.Error(t, ValidateRange("min_trust_index", 100.5, 0, 100))
}
