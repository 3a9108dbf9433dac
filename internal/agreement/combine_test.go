package agreement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineClientNames(t *testing.T) {
	assert.Equal(t, "Asha & Vikram", CombineClientNames("Asha", "Vikram"))
	assert.Equal(t, "Asha", CombineClientNames("Asha", ""))
	assert.Equal(t, "Vikram", CombineClientNames("", "Vikram"))
	assert.Equal(t, "Unknown", CombineClientNames("", ""))
}

func TestCombineAgentNames(t *testing.T) {
	assert.Equal(t, "Raj", CombineAgentNames("Raj", "Raj"))
	assert.Equal(t, "Raj (Owner) & Priya (Tenant)", CombineAgentNames("Raj", "Priya"))
	assert.Equal(t, "Raj", CombineAgentNames("Raj", ""))
	assert.Equal(t, "Priya", CombineAgentNames("", "Priya"))
	assert.Equal(t, "", CombineAgentNames("", ""))
}
