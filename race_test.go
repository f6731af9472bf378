package mymcp_test

import (
	"sync"
	"testing"

	mymcp "github.com/ashersu/mysql-mcp"
)

func TestRace_ConcurrentWriteGateToggles(t *testing.T) {
	engine := newTestEngine(t, mymcp.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (id+j)%2 == 0 {
					engine.EnableWriteOperations()
				} else {
					engine.DisableWriteOperations()
				}
				_ = engine.IsWriteEnabled()
			}
		}(i)
	}
	wg.Wait()
}

func TestRace_ConcurrentWhitelistAdministration(t *testing.T) {
	engine := newTestEngine(t, mymcp.Config{})

	keywords := []string{"grant", "revoke", "rename", "call", "set"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				kw := keywords[(id+j)%len(keywords)]
				if j%2 == 0 {
					engine.AddAllowedWriteCommand(kw)
				} else {
					engine.RemoveAllowedWriteCommand(kw)
				}
				_ = engine.ListWriteWhitelist()
			}
		}(i)
	}
	wg.Wait()
}

func TestRace_ConcurrentLimitUpdates(t *testing.T) {
	engine := newTestEngine(t, mymcp.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = engine.SetMaxQueryRows(100 + (id+j)%400)
				_, _ = engine.SetMaxFieldLength(64 + (id+j)%512)
				_ = engine.ResultLimitConfig()
			}
		}(i)
	}
	wg.Wait()

	limits := engine.ResultLimitConfig()
	if limits.MaxQueryRows <= 0 || limits.MaxFieldLength <= 0 {
		t.Fatalf("expected positive limits after concurrent updates, got %+v", limits)
	}
}

func TestRace_ConcurrentAuditAccess(t *testing.T) {
	engine := newTestEngine(t, mymcp.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = engine.ListWriteAudit(50)
				if j%10 == 0 {
					_ = engine.ClearWriteAudit()
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestRace_ConcurrentRegistryAccess(t *testing.T) {
	engine := newTestEngine(t, mymcp.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = engine.ListConnections()
				_ = engine.CloseConnection("no-such-handle")
			}
		}(i)
	}
	wg.Wait()
}
