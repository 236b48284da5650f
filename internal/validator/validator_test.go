package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatorIsValid(t *testing.T) {
	v := New()
	assert.True(t, v.IsValid())
}

func TestCheckNotBlank(t *testing.T) {
	v := New()
	v.CheckNotBlank("", "title", "must be provided")
	v.CheckNotBlank("   ", "userId", "must be provided")
	v.CheckNotBlank("ok", "contentType", "must be provided")

	assert.False(t, v.IsValid())
	assert.Equal(t, "must be provided", v.Errors["title"])
	assert.Equal(t, "must be provided", v.Errors["userId"])
	assert.NotContains(t, v.Errors, "contentType")
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("title", "first")
	v.AddError("title", "second")

	assert.Equal(t, "first", v.Errors["title"])
}

func TestCheck(t *testing.T) {
	v := New()
	v.Check(1 > 0, "ok", "should not appear")
	v.Check(false, "bad", "should appear")

	assert.NotContains(t, v.Errors, "ok")
	assert.Equal(t, "should appear", v.Errors["bad"])
}
