package comment

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

func TestNewValidator(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	valid := domain.AddCommentInput{BlogID: 1, UserID: 2, Content: "hi"}
	assert.NoError(t, v.Struct(valid))

	tests := []struct {
		name    string
		content string
		tag     string
	}{
		{"blank", " \t\n ", "notblank"},
		{"empty", "", "required"},
		{"too long", strings.Repeat("a", 2001), "max"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			in.Content = tc.content
			err := v.Struct(in)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.Equal(t, tc.tag, verrs[0].Tag())
		})
	}
}
