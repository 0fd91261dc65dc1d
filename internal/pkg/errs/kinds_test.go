//go:build unit

package errs_test

import (
	"testing"

	"lendhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := errs.NewKind(errs.KindConflict, "dates already booked")

	t.Run("bare sentinel", func(t *testing.T) {
		assert.Equal(t, errs.KindConflict, errs.KindOf(sentinel))
		assert.True(t, errs.IsKind(sentinel, errs.KindConflict))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "while requesting rental")
		assert.Equal(t, errs.KindConflict, errs.KindOf(wrapped))
	})

	t.Run("mark ties a low-level error to a sentinel", func(t *testing.T) {
		marked := errs.Mark(errs.New("pg: something low level"), sentinel)
		assert.True(t, errs.Is(marked, sentinel))
	})

	t.Run("unclassified error", func(t *testing.T) {
		assert.Equal(t, errs.KindUnknown, errs.KindOf(errs.New("plain failure")))
		assert.Empty(t, errs.Message(errs.New("plain failure")))
	})

	t.Run("message comes from the sentinel", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "internal detail")
		assert.Equal(t, "dates already booked", errs.Message(wrapped))
	})
}
