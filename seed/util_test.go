package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SplitLinex(t *testing.T) {
	lines := splitLinex("a \r\n b\r c \n\nd")
	assert.Equal(t, []string{"a", "b", "c", "", "d"}, lines)
}

func Test_PreviewSql(t *testing.T) {
	assert.Equal(t, "SELECT 1", previewSql("SELECT   1", 80))
	assert.Equal(t, "SELECT...", previewSql("SELECT 'a long statement'", 6))
	assert.Equal(t, "SELECT 1", previewSql("SELECT 1", 0))
}

func Test_SquashBlank(t *testing.T) {
	assert.Equal(t, "a b c", squashBlank("a \t b  \t\tc"))
}
