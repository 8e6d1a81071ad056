package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrAnalysisNotFound(t *testing.T) {
	id := uuid.MustParse("be96ebc0-47a4-4a45-b9ac-38718fc2e9e4")
	err := &ErrAnalysisNotFound{ID: id}

	assert.Contains(t, err.Error(), "analysis not found")
	assert.Contains(t, err.Error(), id.String())
}
