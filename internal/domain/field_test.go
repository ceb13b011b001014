package domain_test

import (
	"encoding/json"
	"testing"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalJSON(t *testing.T) {
	var patch domain.ApplicationPatch
	err := json.Unmarshal([]byte(`{
		"name": "Jane",
		"interest": null,
		"age": "thirty",
		"images": ["a", "b"]
	}`), &patch)
	require.NoError(t, err)

	t.Run("present value", func(t *testing.T) {
		assert.True(t, patch.Name.Present())
		assert.Equal(t, "Jane", *patch.Name.Ptr())
	})

	t.Run("explicit null", func(t *testing.T) {
		assert.True(t, patch.Interest.Null())
		assert.False(t, patch.Interest.Present())
		assert.Nil(t, patch.Interest.Ptr())
	})

	t.Run("wrong type is absent", func(t *testing.T) {
		assert.False(t, patch.Age.Set)
	})

	t.Run("missing key", func(t *testing.T) {
		assert.False(t, patch.Phone.Set)
		assert.False(t, patch.Phone.Null())
	})

	t.Run("slice value", func(t *testing.T) {
		require.True(t, patch.Images.Present())
		assert.Equal(t, []string{"a", "b"}, *patch.Images.Value)
	})
}

func TestOf(t *testing.T) {
	f := domain.Of(42)
	assert.True(t, f.Present())
	assert.Equal(t, 42, *f.Value)
}

func TestIsValidApplicationStatus(t *testing.T) {
	for _, s := range []string{"new", "reviewed", "contacted", "rejected", "hired"} {
		assert.True(t, domain.IsValidApplicationStatus(s), s)
	}
	assert.False(t, domain.IsValidApplicationStatus("archived"))
	assert.False(t, domain.IsValidApplicationStatus(""))
}
