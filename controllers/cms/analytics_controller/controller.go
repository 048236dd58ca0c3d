package analytics_controller

import (
	"github.com/FrazKhan1/res-pos-admin/store"
)

var entityStore *store.EntityStore

// Init wires the analytics handlers to the live collections.
func Init(st *store.EntityStore) {
	entityStore = st
}
