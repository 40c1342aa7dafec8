package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answer string
	err    error
}

func (f *fakePrompter) Prompt(string) (string, error) { return f.answer, f.err }
func (*fakePrompter) Close() error                    { return nil }

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "yes", want: true},
		{name: "y", answer: "y", want: true},
		{name: "uppercase Y", answer: "Y", want: true},
		{name: "padded yes", answer: "  yes  ", want: true},
		{name: "no", answer: "no", want: false},
		{name: "empty defaults to no", answer: "", want: false},
		{name: "garbage", answer: "sure", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Confirm(&fakePrompter{answer: tt.answer}, "Install?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmEOFIsDecline(t *testing.T) {
	t.Parallel()

	got, err := Confirm(&fakePrompter{err: io.EOF}, "Install?")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestConfirmOtherErrorsPropagate(t *testing.T) {
	t.Parallel()

	_, err := Confirm(&fakePrompter{err: errors.New("tty gone")}, "Install?")
	assert.Error(t, err)
}
