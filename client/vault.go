package client

import "sync"

// vaultPIN is the shared static PIN gating the password vault views.
// This is a convenience gate, not a security boundary: the server only
// requires authentication, and the PIN is never sent over the wire.
const vaultPIN = "9669"

// VaultGate tracks whether the vault is unlocked for the current
// session. Nothing is persisted, so the gate resets with the process.
type VaultGate struct {
	mu       sync.Mutex
	unlocked bool
}

func NewVaultGate() *VaultGate {
	return &VaultGate{}
}

// Unlock compares the entered PIN and opens the gate on a match. A
// wrong PIN leaves the gate locked and returns false.
func (g *VaultGate) Unlock(pin string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pin != vaultPIN {
		return false
	}
	g.unlocked = true
	return true
}

// Unlocked reports the current gate state.
func (g *VaultGate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}

// Lock closes the gate again, e.g. when navigating away.
func (g *VaultGate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unlocked = false
}
