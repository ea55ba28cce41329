package httpapi

import (
	"github.com/okezie/bankclients/internal/service/client"
	"github.com/okezie/bankclients/internal/storage/memory"
	"github.com/okezie/bankclients/internal/storage/postgres"
)

// Compile-time interface assertions documenting which interfaces the storage
// backends satisfy.
var (
	_ client.Store = (*memory.Store)(nil)
	_ client.Store = (*postgres.Store)(nil)
	_ ReadyChecker = (*postgres.Store)(nil)
)
