package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperation_IsValid(t *testing.T) {
	assert.True(t, OperationSave.IsValid())
	assert.True(t, OperationLoad.IsValid())
	assert.False(t, Operation("delete").IsValid())
	assert.False(t, Operation("").IsValid())
}

func TestActivityFromSave(t *testing.T) {
	now := time.Now()
	result := SaveResult{
		Outcome:      SaveWritten,
		Path:         "/tmp/out.json",
		BytesWritten: 42,
	}

	a := ActivityFromSave("act-1", result, now)

	assert.Equal(t, "act-1", a.ID)
	assert.Equal(t, OperationSave, a.Operation)
	assert.Equal(t, "/tmp/out.json", a.Path)
	assert.Equal(t, "written", a.Outcome)
	assert.Equal(t, 42, a.Bytes)
	assert.Empty(t, a.Error)
	assert.Equal(t, now, a.At)
	assert.True(t, a.Succeeded())
}

func TestActivityFromSave_WithError(t *testing.T) {
	result := SaveResult{
		Outcome: SaveOpenFailed,
		Path:    "/root/locked.json",
		Err:     fmt.Errorf("open /root/locked.json: %w", ErrOpenFailed),
	}

	a := ActivityFromSave("act-2", result, time.Now())

	assert.Equal(t, "open_failed", a.Outcome)
	assert.Contains(t, a.Error, "open failed")
	assert.False(t, a.Succeeded())
}

func TestActivityFromLoad(t *testing.T) {
	result := LoadResult{
		Content: "hello world",
		Path:    "/tmp/hello.txt",
		Outcome: LoadOK,
	}

	a := ActivityFromLoad("act-3", result, time.Now())

	assert.Equal(t, OperationLoad, a.Operation)
	assert.Equal(t, 11, a.Bytes)
	assert.Equal(t, "loaded", a.Outcome)
	assert.True(t, a.Succeeded())
}

func TestActivity_Succeeded_UnknownOperation(t *testing.T) {
	a := Activity{Operation: "rename", Outcome: "written"}
	assert.False(t, a.Succeeded())
}
