package rsearch_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/rsearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := rsearch.Errorf(rsearch.EINVALID, "bad input")
		assert.Equal(t, rsearch.EINVALID, rsearch.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", rsearch.Errorf(rsearch.ENOTFOUND, "missing"))
		assert.Equal(t, rsearch.ENOTFOUND, rsearch.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, rsearch.EINTERNAL, rsearch.ErrorCode(fmt.Errorf("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", rsearch.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := rsearch.Errorf(rsearch.EUNAVAILABLE, "feed %s unreachable", "https://example.com")
	assert.Equal(t, "feed https://example.com unreachable", rsearch.ErrorMessage(err))
	assert.Equal(t, "Internal error.", rsearch.ErrorMessage(fmt.Errorf("boom")))
}
