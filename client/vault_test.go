package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaultGate_UnlocksWithCorrectPIN(t *testing.T) {
	gate := NewVaultGate()
	assert.False(t, gate.Unlocked())

	assert.True(t, gate.Unlock("9669"))
	assert.True(t, gate.Unlocked())
}

func TestVaultGate_StaysLockedOnWrongPIN(t *testing.T) {
	gate := NewVaultGate()

	for _, pin := range []string{"", "0000", "9696", "966", "96699"} {
		assert.Falsef(t, gate.Unlock(pin), "pin %q", pin)
		assert.False(t, gate.Unlocked())
	}
}

func TestVaultGate_LockResets(t *testing.T) {
	gate := NewVaultGate()
	gate.Unlock("9669")

	gate.Lock()
	assert.False(t, gate.Unlocked())
}
