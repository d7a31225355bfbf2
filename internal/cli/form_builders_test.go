package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateAmount("3"))
	assert.NoError(t, validateAmount("0.5"))
	assert.Error(t, validateAmount("-1"))
	assert.Error(t, validateAmount("three"))

	assert.NoError(t, validateDate("2023-03-24"))
	assert.Error(t, validateDate("24/03/2023"))

	assert.NoError(t, validateRequired("x"))
	assert.Error(t, validateRequired(""))
}

func TestNewItemForm_Builds(t *testing.T) {
	var kind, text, amount, date string
	assert.NotNil(t, newItemForm(&kind, &text, &amount, &date))
}
